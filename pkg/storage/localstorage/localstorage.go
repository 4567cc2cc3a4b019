// Package localstorage provides local file system storage implementation.
package localstorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sgaunet/gosplit/pkg/constants"
)

// ErrSameFile is returned when the destination is the source file itself.
var ErrSameFile = errors.New("destination is the source file")

// LocalStorage implements storage interface for local file system.
type LocalStorage struct {
	dirpath string
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(dirpath string) *LocalStorage {
	return &LocalStorage{
		dirpath: dirpath,
	}
}

// SaveFile copies the chunk file into the storage directory with context cancellation support.
// For large files, the copy operation checks for cancellation periodically.
func (s *LocalStorage) SaveFile(ctx context.Context, srcFilePath string, dstFilename string) error {
	if ctx.Err() != nil {
		return fmt.Errorf("operation cancelled before starting: %w", ctx.Err())
	}

	src, err := os.Open(srcFilePath) //nolint:gosec // G304: chunk path comes from the split run
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFilePath, err)
	}
	defer func() { _ = src.Close() }()

	dstPath := filepath.Join(s.dirpath, dstFilename)
	// Truncating the destination would empty the source.
	if srcInfo, err := src.Stat(); err == nil {
		if dstInfo, err := os.Stat(dstPath); err == nil && os.SameFile(srcInfo, dstInfo) {
			return fmt.Errorf("%w: %s", ErrSameFile, dstPath)
		}
	}
	//nolint:gosec // G304: destination is inside the configured publish directory
	fDst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.DefaultFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstPath, err)
	}

	if err := copyWithContext(ctx, fDst, src); err != nil {
		_ = fDst.Close()
		_ = os.Remove(dstPath) // Clean up partial file
		return err
	}
	if err := fDst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return fmt.Errorf("failed to close destination %s: %w", dstPath, err)
	}
	return nil
}

func copyWithContext(ctx context.Context, dst io.Writer, src io.Reader) error {
	buf := make([]byte, constants.CopyBufferSize)
	for {
		if ctx.Err() != nil {
			return fmt.Errorf("copy cancelled: %w", ctx.Err())
		}

		nr, er := src.Read(buf)
		if nr > 0 {
			nw, ew := dst.Write(buf[0:nr])
			if ew != nil {
				return fmt.Errorf("failed to write to destination: %w", ew)
			}
			if nr != nw {
				return fmt.Errorf("short write: wrote %d bytes, expected %d", nw, nr)
			}
		}
		if er != nil {
			if !errors.Is(er, io.EOF) {
				return fmt.Errorf("failed to read from source: %w", er)
			}
			return nil
		}
	}
}
