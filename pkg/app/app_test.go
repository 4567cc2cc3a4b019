package app_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/sgaunet/gosplit/pkg/app"
	"github.com/sgaunet/gosplit/pkg/chunk"
	"github.com/sgaunet/gosplit/pkg/config"
	"github.com/sgaunet/gosplit/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedLines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "%d\n", i)
	}
	return b.String()
}

func newConfig(t *testing.T, input string) *config.Config {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.OutputDir = t.TempDir()
	if input != "" {
		cfg.Input = filepath.Join(t.TempDir(), "input")
		require.NoError(t, os.WriteFile(cfg.Input, []byte(input), 0o600))
	}
	return cfg
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// recordingReporter records every phase event.
type recordingReporter struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingReporter) add(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, s)
}

func (r *recordingReporter) StartPhase(p app.Phase) {
	r.add("start:" + string(p))
}

func (r *recordingReporter) UpdatePhase(p app.Phase, _, _ int) {
	r.add("update:" + string(p))
}

func (r *recordingReporter) CompletePhase(p app.Phase) {
	r.add("complete:" + string(p))
}

func (r *recordingReporter) FailPhase(p app.Phase, _ error) {
	r.add("fail:" + string(p))
}

func (r *recordingReporter) SkipPhase(p app.Phase, _ string) {
	r.add("skip:" + string(p))
}

func TestRunDefaultInvocation(t *testing.T) {
	input := numberedLines(2500)
	cfg := newConfig(t, input)

	a, err := app.NewApp(context.Background(), cfg)
	require.NoError(t, err)

	res, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"xaa", "xab", "xac"}, res.Names())
	assert.Equal(t, []string{"xaa", "xab", "xac"}, listDir(t, cfg.OutputDir))

	var concat strings.Builder
	for _, name := range res.Names() {
		data, err := os.ReadFile(a.ChunkPath(name))
		require.NoError(t, err)
		concat.Write(data)
	}
	assert.Equal(t, input, concat.String())

	last, err := os.ReadFile(a.ChunkPath("xac"))
	require.NoError(t, err)
	assert.Equal(t, 500, strings.Count(string(last), "\n"))
}

func TestRunByteModeFromStdin(t *testing.T) {
	cfg := newConfig(t, "")
	cfg.BaseName = "y"
	cfg.SuffixLength = 1
	cfg.SetBytes("4")

	a, err := app.NewApp(context.Background(), cfg)
	require.NoError(t, err)
	a.SetStdin(strings.NewReader("0123456789"))

	res, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ya", "yb", "yc"}, res.Names())

	data, err := os.ReadFile(a.ChunkPath("yc"))
	require.NoError(t, err)
	assert.Equal(t, "89", string(data))
}

func TestRunEmptyInput(t *testing.T) {
	cfg := newConfig(t, "")
	a, err := app.NewApp(context.Background(), cfg)
	require.NoError(t, err)
	a.SetStdin(strings.NewReader(""))

	res, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Chunks)
	assert.Empty(t, listDir(t, cfg.OutputDir))
}

func TestRunSourceUnavailable(t *testing.T) {
	cfg := newConfig(t, "")
	cfg.Input = filepath.Join(t.TempDir(), "missing")

	a, err := app.NewApp(context.Background(), cfg)
	require.NoError(t, err)

	_, err = a.Run(context.Background())
	require.ErrorIs(t, err, chunk.ErrSourceUnavailable)
	assert.Empty(t, listDir(t, cfg.OutputDir))
}

func TestRunTooManyChunks(t *testing.T) {
	cfg := newConfig(t, strings.Repeat("a", 27))
	cfg.BaseName = "y"
	cfg.SuffixLength = 1
	cfg.SetBytes("1")

	a, err := app.NewApp(context.Background(), cfg)
	require.NoError(t, err)
	store := &mocks.StorageMock{
		SaveFileFunc: func(context.Context, string, string) error { return nil },
	}
	a.SetStorage(store)

	res, err := a.Run(context.Background())
	require.ErrorIs(t, err, chunk.ErrSuffixExhausted)
	assert.Contains(t, err.Error(), "too many chunks")
	assert.Len(t, res.Chunks, 26)
	assert.Len(t, listDir(t, cfg.OutputDir), 26)
	assert.Empty(t, store.SaveFileCalls(), "nothing is published after a failed split")
}

func TestRunPublish(t *testing.T) {
	cfg := newConfig(t, numberedLines(30))
	cfg.SetLines(10)
	cfg.Publish.Concurrency = 2

	a, err := app.NewApp(context.Background(), cfg)
	require.NoError(t, err)
	reporter := &recordingReporter{}
	a.SetProgressReporter(reporter)
	store := &mocks.StorageMock{
		SaveFileFunc: func(context.Context, string, string) error { return nil },
	}
	a.SetStorage(store)

	_, err = a.Run(context.Background())
	require.NoError(t, err)

	calls := store.SaveFileCalls()
	require.Len(t, calls, 3)
	var published []string
	for _, c := range calls {
		assert.Equal(t, a.ChunkPath(c.DstFilename), c.SrcFilePath)
		published = append(published, c.DstFilename)
	}
	sort.Strings(published)
	assert.Equal(t, []string{"xaa", "xab", "xac"}, published)
	assert.Contains(t, reporter.events, "complete:publish")
	assert.Contains(t, reporter.events, "skip:presplit")
}

func TestRunPublishFailure(t *testing.T) {
	cfg := newConfig(t, numberedLines(3))
	cfg.SetLines(1)
	errUpload := errors.New("upload refused")

	a, err := app.NewApp(context.Background(), cfg)
	require.NoError(t, err)
	a.SetStorage(&mocks.StorageMock{
		SaveFileFunc: func(_ context.Context, _ string, dst string) error {
			if dst == "xab" {
				return errUpload
			}
			return nil
		},
	})

	res, err := a.Run(context.Background())
	require.ErrorIs(t, err, errUpload)
	assert.Len(t, res.Chunks, 3)
}

func TestRunPublishLocal(t *testing.T) {
	cfg := newConfig(t, numberedLines(4))
	cfg.SetLines(2)
	cfg.Publish.LocalPath = t.TempDir()
	cfg.Publish.RatePerSec = 1000

	a, err := app.NewApp(context.Background(), cfg)
	require.NoError(t, err)

	_, err = a.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"xaa", "xab"}, listDir(t, cfg.Publish.LocalPath))

	data, err := os.ReadFile(filepath.Join(cfg.Publish.LocalPath, "xab"))
	require.NoError(t, err)
	assert.Equal(t, "3\n4\n", string(data))
}

func TestRunHooks(t *testing.T) {
	cfg := newConfig(t, numberedLines(4))
	cfg.SetLines(2)
	marker := filepath.Join(t.TempDir(), "presplit")
	cfg.Hooks.PreSplit = "touch " + marker
	cfg.Hooks.PostChunk = "touch %CHUNKFILE%.done"

	a, err := app.NewApp(context.Background(), cfg)
	require.NoError(t, err)
	reporter := &recordingReporter{}
	a.SetProgressReporter(reporter)

	_, err = a.Run(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, marker)
	assert.Equal(t, []string{"xaa", "xaa.done", "xab", "xab.done"}, listDir(t, cfg.OutputDir))
	assert.Equal(t, []string{
		"start:presplit", "complete:presplit",
		"start:split", "complete:split",
		"start:postchunk", "update:postchunk", "update:postchunk", "complete:postchunk",
		"skip:publish",
	}, reporter.events)
}

func TestRunPreSplitFailure(t *testing.T) {
	cfg := newConfig(t, numberedLines(4))
	cfg.Hooks.PreSplit = "false"

	a, err := app.NewApp(context.Background(), cfg)
	require.NoError(t, err)

	_, err = a.Run(context.Background())
	require.Error(t, err)
	assert.Empty(t, listDir(t, cfg.OutputDir), "no chunk is written when the pre split hook fails")
}

func TestNewAppOutputDir(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "missing")
	_, err := app.NewApp(context.Background(), cfg)
	require.ErrorIs(t, err, app.ErrOutputDir)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	cfg.OutputDir = file
	_, err = app.NewApp(context.Background(), cfg)
	require.ErrorIs(t, err, app.ErrOutputDir)
}

func TestNewAppPublishDir(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Publish.LocalPath = filepath.Join(t.TempDir(), "missing")
	_, err := app.NewApp(context.Background(), cfg)
	require.ErrorIs(t, err, app.ErrOutputDir)
}

func TestNewAppPublishDirIsOutputDir(t *testing.T) {
	input := numberedLines(30)
	cfg := newConfig(t, input)
	cfg.SetLines(10)
	cfg.Publish.LocalPath = cfg.OutputDir
	require.NoError(t, cfg.Validate())

	_, err := app.NewApp(context.Background(), cfg)
	require.ErrorIs(t, err, app.ErrOutputDir)

	// Same directory through a different spelling.
	cfg.Publish.LocalPath = filepath.Join(cfg.OutputDir, ".")
	_, err = app.NewApp(context.Background(), cfg)
	require.ErrorIs(t, err, app.ErrOutputDir)
}

func TestNewAppPublishDirIsCurrentDir(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := config.NewDefaultConfig()
	cfg.Publish.LocalPath = "."

	_, err := app.NewApp(context.Background(), cfg)
	require.ErrorIs(t, err, app.ErrOutputDir)
}
