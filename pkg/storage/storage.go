// Package storage defines where completed chunk files are published.
package storage

import (
	"context"
)

//go:generate go tool github.com/matryer/moq -out mocks/storage.go -pkg mocks . Storage

// Storage publishes a file from the local filesystem under dstFilename.
type Storage interface {
	SaveFile(ctx context.Context, srcFilePath string, dstFilename string) error
}
