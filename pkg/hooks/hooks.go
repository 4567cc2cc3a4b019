// Package hooks provides pre split and post chunk hook functionality.
package hooks

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-andiamo/splitter"
)

// ChunkFilePlaceholder is replaced by the chunk path in the post chunk command.
const ChunkFilePlaceholder = "%CHUNKFILE%"

// Hooks holds the configuration for pre split and post chunk hooks.
type Hooks struct {
	PreSplit  string `env:"PRESPLIT"  env-default:"" yaml:"presplit"`
	PostChunk string `env:"POSTCHUNK" env-default:"" yaml:"postchunk"`
}

// GeneratePreSplitCmd generates the pre split command.
func (h *Hooks) GeneratePreSplitCmd() string {
	return h.PreSplit
}

// GeneratePostChunkCmd generates the post chunk command for the given chunk file.
func (h *Hooks) GeneratePostChunkCmd(file string) string {
	return strings.ReplaceAll(h.PostChunk, ChunkFilePlaceholder, file)
}

// HasPreSplit returns true if a pre split command is defined.
func (h *Hooks) HasPreSplit() bool {
	return h.PreSplit != ""
}

// HasPostChunk returns true if a post chunk command is defined.
func (h *Hooks) HasPostChunk() bool {
	return h.PostChunk != ""
}

// ExecutePreSplit executes the pre split command.
func (h *Hooks) ExecutePreSplit(ctx context.Context) error {
	return execute(ctx, h.GeneratePreSplitCmd())
}

// ExecutePostChunk executes the post chunk command for the given chunk file.
func (h *Hooks) ExecutePostChunk(ctx context.Context, file string) error {
	return execute(ctx, h.GeneratePostChunkCmd(file))
}

// execute executes the given command.
func execute(ctx context.Context, command string) error {
	if command == "" {
		return nil
	}
	commandSplitter, err := splitter.NewSplitter(' ', splitter.SingleQuotes, splitter.DoubleQuotes)
	if err != nil {
		return fmt.Errorf("failed to create command splitter: %w", err)
	}
	trimmer := splitter.Trim("'\"")
	splitCmd, err := commandSplitter.Split(command, trimmer)
	if err != nil {
		return fmt.Errorf("failed to parse command '%s': %w", command, err)
	}
	if len(splitCmd) == 0 {
		return nil
	}
	//nolint:gosec // G204: Command execution with user input is intentional for hook functionality
	out, err := exec.CommandContext(ctx, splitCmd[0], splitCmd[1:]...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to execute %s: %w: %s", command, err, strings.TrimSpace(string(out)))
	}
	return nil
}
