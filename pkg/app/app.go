// Package app wires configuration, hooks, the chunk writer and publishing together.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/sgaunet/gosplit/pkg/chunk"
	"github.com/sgaunet/gosplit/pkg/config"
	"github.com/sgaunet/gosplit/pkg/storage"
	"github.com/sgaunet/gosplit/pkg/storage/localstorage"
	"github.com/sgaunet/gosplit/pkg/storage/s3storage"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ErrOutputDir is returned when the output or publish directory is unusable.
var ErrOutputDir = errors.New("invalid output directory")

// App runs one split of the configured input.
type App struct {
	cfg      *config.Config
	sink     *chunk.DirSink
	storage  storage.Storage
	stdin    io.Reader
	progress ProgressReporter
	log      Logger
}

// Logger is the logging interface used by the application.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// NewApp validates the directories of cfg and builds the publish storage, if any.
// cfg is expected to be validated already.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg.OutputDir != "" {
		if err := checkDir(cfg.OutputDir); err != nil {
			return nil, err
		}
	}

	app := &App{
		cfg:      cfg,
		sink:     chunk.NewDirSink(cfg.OutputDir),
		stdin:    os.Stdin,
		progress: NewNoOpProgressReporter(),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	switch {
	case cfg.IsS3ConfigValid():
		s3cfg := cfg.Publish.S3cfg
		s, err := s3storage.NewS3Storage(ctx, s3cfg.Region, s3cfg.Endpoint, s3cfg.BucketName, s3cfg.BucketPath,
			s3storage.Credentials{AccessKey: s3cfg.AccessKey, SecretKey: s3cfg.SecretKey})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		app.storage = s
	case cfg.IsLocalPublishValid():
		if err := checkDir(cfg.Publish.LocalPath); err != nil {
			return nil, err
		}
		if sameDir(cfg.OutputDir, cfg.Publish.LocalPath) {
			return nil, fmt.Errorf("%w: publish directory %s is the output directory", ErrOutputDir, cfg.Publish.LocalPath)
		}
		app.storage = localstorage.NewLocalStorage(cfg.Publish.LocalPath)
	}
	return app, nil
}

func checkDir(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputDir, err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrOutputDir, path)
	}
	return nil
}

// sameDir reports whether both paths name the same directory. An empty
// path is the current directory.
func sameDir(a, b string) bool {
	if a == "" {
		a = "."
	}
	if b == "" {
		b = "."
	}
	sa, err := os.Stat(a)
	if err != nil {
		return false
	}
	sb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(sa, sb)
}

// SetLogger sets the logger of the application and of the chunk writer.
func (a *App) SetLogger(l Logger) {
	a.log = l
}

// SetProgressReporter sets the reporter receiving phase progress.
func (a *App) SetProgressReporter(p ProgressReporter) {
	a.progress = p
}

// SetStorage overrides the publish storage. A nil storage disables publishing.
func (a *App) SetStorage(s storage.Storage) {
	a.storage = s
}

// SetStdin sets the reader used when the input is standard input.
func (a *App) SetStdin(r io.Reader) {
	a.stdin = r
}

// ChunkPath returns the filesystem path of the named chunk.
func (a *App) ChunkPath(name string) string {
	return a.sink.Path(name)
}

// Run splits the input, then runs the post chunk hook on every chunk and
// publishes them. The returned result lists the chunks on disk, also when an
// error occurred.
func (a *App) Run(ctx context.Context) (*chunk.Result, error) {
	src, err := chunk.OpenSource(a.cfg.Input, a.stdin)
	if err != nil {
		return &chunk.Result{}, err
	}
	defer func() { _ = src.Close() }()

	if err := a.preSplit(ctx); err != nil {
		return &chunk.Result{}, err
	}

	res, err := a.split(src)
	if err != nil {
		return res, err
	}

	if err := a.postChunk(ctx, res); err != nil {
		return res, err
	}

	if err := a.publish(ctx, res); err != nil {
		return res, err
	}

	a.log.Info("split complete", "input", a.inputName(), "chunks", len(res.Chunks))
	return res, nil
}

func (a *App) inputName() string {
	if a.cfg.Input == "" {
		return "-"
	}
	return a.cfg.Input
}

func (a *App) preSplit(ctx context.Context) error {
	if !a.cfg.Hooks.HasPreSplit() {
		a.progress.SkipPhase(PhasePreSplit, "no hook")
		return nil
	}
	a.progress.StartPhase(PhasePreSplit)
	if err := a.cfg.Hooks.ExecutePreSplit(ctx); err != nil {
		a.progress.FailPhase(PhasePreSplit, err)
		return err
	}
	a.progress.CompletePhase(PhasePreSplit)
	return nil
}

func (a *App) split(src io.Reader) (*chunk.Result, error) {
	byteLimit, err := a.cfg.ByteLimit()
	if err != nil {
		return &chunk.Result{}, err
	}
	w := chunk.NewWriter(a.sink, chunk.Options{
		BaseName:     a.cfg.BaseName,
		SuffixLength: a.cfg.SuffixLength,
		Lines:        a.cfg.Lines,
		Bytes:        byteLimit,
	})
	w.SetLogger(a.log)

	a.progress.StartPhase(PhaseSplit)
	a.log.Debug("splitting", "input", a.inputName(), "limit", w.Limit().String(), "suffixLength", a.cfg.SuffixLength)
	res, err := w.Run(src)
	if err != nil {
		a.progress.FailPhase(PhaseSplit, err)
		return res, err
	}
	a.progress.CompletePhase(PhaseSplit)
	return res, nil
}

func (a *App) postChunk(ctx context.Context, res *chunk.Result) error {
	if !a.cfg.Hooks.HasPostChunk() {
		a.progress.SkipPhase(PhasePostChunk, "no hook")
		return nil
	}
	a.progress.StartPhase(PhasePostChunk)
	for i, c := range res.Chunks {
		if err := a.cfg.Hooks.ExecutePostChunk(ctx, a.sink.Path(c.Name)); err != nil {
			a.progress.FailPhase(PhasePostChunk, err)
			return err
		}
		a.progress.UpdatePhase(PhasePostChunk, i+1, len(res.Chunks))
	}
	a.progress.CompletePhase(PhasePostChunk)
	return nil
}

// publish copies every chunk to the storage, at most Publish.Concurrency at
// a time and no faster than Publish.RatePerSec when it is set.
func (a *App) publish(ctx context.Context, res *chunk.Result) error {
	if a.storage == nil {
		a.progress.SkipPhase(PhasePublish, "no storage configured")
		return nil
	}
	if len(res.Chunks) == 0 {
		a.progress.SkipPhase(PhasePublish, "no chunk")
		return nil
	}
	a.progress.StartPhase(PhasePublish)

	var limiter *rate.Limiter
	if a.cfg.Publish.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(a.cfg.Publish.RatePerSec), 1)
	}
	concurrency := max(a.cfg.Publish.Concurrency, 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	var done atomic.Int64
	total := len(res.Chunks)
	for _, c := range res.Chunks {
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(gctx); err != nil {
					return fmt.Errorf("failed to publish %s: %w", c.Name, err)
				}
			}
			if err := a.storage.SaveFile(gctx, a.sink.Path(c.Name), c.Name); err != nil {
				return fmt.Errorf("failed to publish %s: %w", c.Name, err)
			}
			a.log.Debug("chunk published", "name", c.Name)
			a.progress.UpdatePhase(PhasePublish, int(done.Add(1)), total)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.progress.FailPhase(PhasePublish, err)
		return err
	}
	a.progress.CompletePhase(PhasePublish)
	return nil
}
