package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sgaunet/gosplit/pkg/constants"
)

// ErrInvalidCount is returned for a malformed line or byte count.
var ErrInvalidCount = errors.New("invalid count")

// ParseLineCount parses a positive decimal line count.
func ParseLineCount(s string) (uint64, error) {
	n, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: line count must be positive", ErrInvalidCount)
	}
	return n, nil
}

// ParseByteCount parses a positive decimal byte count with an optional
// multiplier suffix: "k" for 1024 bytes, "m" for 1024*1024 bytes.
func ParseByteCount(s string) (uint64, error) {
	multiplier := uint64(constants.Byte)
	switch {
	case strings.HasSuffix(s, "k"):
		multiplier = constants.KB
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		multiplier = constants.MB
		s = strings.TrimSuffix(s, "m")
	}

	n, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: byte count must be positive", ErrInvalidCount)
	}
	if n > math.MaxUint64/multiplier {
		return 0, fmt.Errorf("%w: %s overflows", ErrInvalidCount, s)
	}
	return n * multiplier, nil
}

func parseDecimal(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidCount)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidCount, s)
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCount, err)
	}
	return n, nil
}
