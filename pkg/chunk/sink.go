package chunk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sgaunet/gosplit/pkg/constants"
)

//go:generate go tool github.com/matryer/moq -out mocks/sink.go -pkg mocks . Sink

// Sink creates the output file of a chunk.
type Sink interface {
	// Create creates or truncates the named chunk for writing.
	Create(name string) (io.WriteCloser, error)
}

// DirSink creates chunk files inside a directory.
type DirSink struct {
	dirpath string
}

// NewDirSink returns a DirSink writing into dirpath. An empty dirpath means
// the current working directory.
func NewDirSink(dirpath string) *DirSink {
	return &DirSink{dirpath: dirpath}
}

// Path returns the filesystem path of the named chunk.
func (s *DirSink) Path(name string) string {
	if s.dirpath == "" {
		return name
	}
	return filepath.Join(s.dirpath, name)
}

// Create truncates any existing file, chunks are never appended to.
func (s *DirSink) Create(name string) (io.WriteCloser, error) {
	path := s.Path(name)
	//nolint:gosec // G304: chunk path is built from the configured base name
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.DefaultFilePermission)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}
