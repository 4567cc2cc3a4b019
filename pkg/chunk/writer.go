// Package chunk partitions an input stream into sequentially named output files.
package chunk

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sgaunet/gosplit/pkg/constants"
	"github.com/sgaunet/gosplit/pkg/suffix"
)

// Logger is the logging interface used by the writer.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// Options configures a split run.
type Options struct {
	// BaseName prefixes every chunk name. Empty means constants.DefaultBaseName.
	BaseName string
	// SuffixLength is the width of the alphabetic suffix.
	SuffixLength int
	// Lines is the number of lines per chunk (line mode).
	Lines uint64
	// Bytes is the number of bytes per chunk (byte mode). It takes precedence over Lines.
	Bytes uint64
}

// Chunk describes a completed output file.
type Chunk struct {
	Name  string
	Bytes int64
	Lines uint64
}

// Result lists the chunks written by a run, in suffix order.
// A failed run still returns the chunks already on disk.
type Result struct {
	Chunks []Chunk
}

// Names returns the chunk names in suffix order.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Chunks))
	for _, c := range r.Chunks {
		names = append(names, c.Name)
	}
	return names
}

// Writer splits an input into chunks created through a Sink.
type Writer struct {
	sink  Sink
	base  string
	width int
	limit Limit
	log   Logger
}

// NewWriter returns a Writer creating its chunks through sink.
func NewWriter(sink Sink, opts Options) *Writer {
	base := opts.BaseName
	if base == "" {
		base = constants.DefaultBaseName
	}
	return &Writer{
		sink:  sink,
		base:  base,
		width: opts.SuffixLength,
		limit: NewLimit(opts.Lines, opts.Bytes),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger of the writer.
func (w *Writer) SetLogger(l Logger) {
	w.log = l
}

// Limit returns the boundary policy applied by the writer.
func (w *Writer) Limit() Limit {
	return w.limit
}

// Run copies src into consecutive chunks until src is exhausted.
// src is not closed. Empty input produces no chunk.
func (w *Writer) Run(src io.Reader) (*Result, error) {
	gen, err := suffix.NewGenerator(w.width)
	if err != nil {
		return &Result{}, err
	}
	s := &state{w: w, suffixes: gen, result: &Result{}}

	buf := make([]byte, constants.ReadBufferSize)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if err := s.consume(buf[:n]); err != nil {
				s.abort()
				return s.result, err
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			s.abort()
			return s.result, fmt.Errorf("%w: %w", ErrSourceUnavailable, rerr)
		}
	}

	if err := s.closeChunk(); err != nil {
		return s.result, err
	}
	return s.result, nil
}

// state holds the per-run state machine: no open chunk when out is nil,
// chunk open otherwise.
type state struct {
	w        *Writer
	suffixes *suffix.Generator
	result   *Result

	out     io.WriteCloser
	current Chunk
	count   uint64
}

// consume writes p unit by unit, closing the open chunk whenever its limit is
// reached and opening the next one only when more data follows.
func (s *state) consume(p []byte) error {
	for len(p) > 0 {
		if s.out == nil {
			if err := s.openChunk(); err != nil {
				return err
			}
		}

		n := s.span(p)
		if _, err := s.out.Write(p[:n]); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSinkWrite, s.current.Name, err)
		}
		s.current.Bytes += int64(n)
		p = p[n:]

		if s.count == s.w.limit.Size {
			if err := s.closeChunk(); err != nil {
				return err
			}
		}
	}
	return nil
}

// span returns how many leading bytes of p belong to the open chunk and
// advances the unit counters accordingly.
func (s *state) span(p []byte) int {
	if s.w.limit.Mode == ModeBytes {
		n := len(p)
		if remaining := s.w.limit.Size - s.count; uint64(n) > remaining {
			n = int(remaining)
		}
		s.count += uint64(n)
		s.current.Lines += uint64(bytes.Count(p[:n], []byte{'\n'}))
		return n
	}

	off := 0
	for off < len(p) {
		i := bytes.IndexByte(p[off:], '\n')
		if i < 0 {
			return len(p)
		}
		off += i + 1
		s.count++
		s.current.Lines++
		if s.count == s.w.limit.Size {
			break
		}
	}
	return off
}

func (s *state) openChunk() error {
	sfx, err := s.suffixes.Next()
	if err != nil {
		if errors.Is(err, suffix.ErrExhausted) {
			return fmt.Errorf("%w: suffix length %d allows %d chunks",
				ErrSuffixExhausted, s.suffixes.Length(), suffix.Capacity(s.suffixes.Length()))
		}
		return err
	}

	name := s.w.base + sfx
	out, err := s.w.sink.Create(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	s.out = out
	s.current = Chunk{Name: name}
	s.count = 0
	s.w.log.Debug("chunk opened", "name", name)
	return nil
}

func (s *state) closeChunk() error {
	if s.out == nil {
		return nil
	}
	out := s.out
	s.out = nil
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSinkWrite, s.current.Name, err)
	}
	s.result.Chunks = append(s.result.Chunks, s.current)
	s.w.log.Debug("chunk closed", "name", s.current.Name, "bytes", s.current.Bytes, "lines", s.current.Lines)
	s.count = 0
	return nil
}

// abort releases the open chunk after a failure. The partial file stays on disk.
func (s *state) abort() {
	if s.out == nil {
		return
	}
	_ = s.out.Close()
	s.out = nil
	s.w.log.Warn("chunk left incomplete", "name", s.current.Name, "bytes", s.current.Bytes)
}
