package app

import (
	"fmt"
	"log/slog"
)

// Phase is a step of a split run.
type Phase string

const (
	// PhasePreSplit runs the pre split hook.
	PhasePreSplit Phase = "presplit"
	// PhaseSplit writes the chunks.
	PhaseSplit Phase = "split"
	// PhasePostChunk runs the post chunk hook on every chunk.
	PhasePostChunk Phase = "postchunk"
	// PhasePublish copies the chunks to the configured storage.
	PhasePublish Phase = "publish"
)

// ProgressReporter provides user-visible progress reporting for split runs.
type ProgressReporter interface {
	// StartPhase signals the beginning of a phase.
	StartPhase(phase Phase)

	// UpdatePhase provides mid-phase progress (e.g., "5/10 chunks published").
	UpdatePhase(phase Phase, current, total int)

	// CompletePhase signals successful phase completion.
	CompletePhase(phase Phase)

	// FailPhase signals phase failure.
	FailPhase(phase Phase, err error)

	// SkipPhase signals that a phase was skipped.
	SkipPhase(phase Phase, reason string)
}

// ConsoleProgressReporter implements ProgressReporter with console output.
type ConsoleProgressReporter struct {
	logger *slog.Logger
}

// NewConsoleProgressReporter creates a new console progress reporter.
func NewConsoleProgressReporter(logger *slog.Logger) *ConsoleProgressReporter {
	return &ConsoleProgressReporter{
		logger: logger,
	}
}

// StartPhase logs the start of a phase.
func (r *ConsoleProgressReporter) StartPhase(phase Phase) {
	r.logger.Info(fmt.Sprintf("[SPLIT] %s...", phaseMessage(phase)))
}

// UpdatePhase logs mid-phase progress.
func (r *ConsoleProgressReporter) UpdatePhase(phase Phase, current, total int) {
	r.logger.Info(fmt.Sprintf("[SPLIT] %s... (%d/%d)", phaseMessage(phase), current, total))
}

// CompletePhase logs successful phase completion.
func (r *ConsoleProgressReporter) CompletePhase(phase Phase) {
	r.logger.Info(fmt.Sprintf("[SPLIT] %s done", phaseMessage(phase)))
}

// FailPhase logs phase failure.
func (r *ConsoleProgressReporter) FailPhase(phase Phase, err error) {
	r.logger.Error(fmt.Sprintf("[SPLIT] %s failed", phaseMessage(phase)), "error", err)
}

// SkipPhase logs that a phase was skipped.
func (r *ConsoleProgressReporter) SkipPhase(phase Phase, reason string) {
	r.logger.Debug(fmt.Sprintf("[SPLIT] %s (skipped: %s)", phaseMessage(phase), reason))
}

func phaseMessage(phase Phase) string {
	switch phase {
	case PhasePreSplit:
		return "Running pre split hook"
	case PhaseSplit:
		return "Splitting input"
	case PhasePostChunk:
		return "Running post chunk hook"
	case PhasePublish:
		return "Publishing chunks"
	default:
		return string(phase)
	}
}

// NoOpProgressReporter is a progress reporter that does nothing.
type NoOpProgressReporter struct{}

// NewNoOpProgressReporter creates a new no-op progress reporter.
func NewNoOpProgressReporter() *NoOpProgressReporter {
	return &NoOpProgressReporter{}
}

// StartPhase does nothing.
func (r *NoOpProgressReporter) StartPhase(_ Phase) {}

// UpdatePhase does nothing.
func (r *NoOpProgressReporter) UpdatePhase(_ Phase, _, _ int) {}

// CompletePhase does nothing.
func (r *NoOpProgressReporter) CompletePhase(_ Phase) {}

// FailPhase does nothing.
func (r *NoOpProgressReporter) FailPhase(_ Phase, _ error) {}

// SkipPhase does nothing.
func (r *NoOpProgressReporter) SkipPhase(_ Phase, _ string) {}
