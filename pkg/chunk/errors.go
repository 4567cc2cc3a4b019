package chunk

import (
	"errors"

	"github.com/sgaunet/gosplit/pkg/suffix"
)

var (
	// ErrSourceUnavailable is returned when the input cannot be opened or read.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrSinkUnavailable is returned when an output chunk file cannot be created.
	ErrSinkUnavailable = errors.New("sink unavailable")
	// ErrSinkWrite is returned when writing to or closing an output chunk fails.
	ErrSinkWrite = errors.New("sink write failed")
	// ErrSuffixExhausted is returned when the input needs more chunks than the
	// suffix width can name. It matches suffix.ErrExhausted.
	ErrSuffixExhausted = suffix.ErrExhausted
)
