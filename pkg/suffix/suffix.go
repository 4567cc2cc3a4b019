// Package suffix generates the fixed-width alphabetic suffixes naming output chunks.
//
// A suffix is a big-endian base-26 numeral written with the letters a-z.
// Successive suffixes are produced by an odometer walk: the rightmost letter
// is advanced to its successor in the alphabet, and a position rolling over
// past 'z' resets to 'a' and carries into its left neighbour.
package suffix

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sgaunet/gosplit/pkg/constants"
)

var (
	// ErrExhausted is returned when every suffix of the configured width has been used.
	ErrExhausted = errors.New("too many chunks")
	// ErrInvalidSuffix is returned when a suffix holds a character outside the alphabet.
	ErrInvalidSuffix = errors.New("invalid suffix")
	// ErrInvalidLength is returned for a negative suffix length.
	ErrInvalidLength = errors.New("invalid suffix length")
)

// First returns the initial suffix of the given width ("aa" for 2).
func First(length int) string {
	return strings.Repeat(constants.SuffixAlphabet[:1], length)
}

// Successor returns the suffix following s.
// It returns ErrExhausted when s is the last suffix of its width ("zz" for 2)
// and for the empty suffix, which has no successor.
func Successor(s string) (string, error) {
	next := []byte(s)
	for i, c := range next {
		if strings.IndexByte(constants.SuffixAlphabet, c) < 0 {
			return "", fmt.Errorf("%w: %q at position %d", ErrInvalidSuffix, c, i)
		}
	}
	for i := len(next) - 1; i >= 0; i-- {
		pos := strings.IndexByte(constants.SuffixAlphabet, next[i])
		if pos+1 < len(constants.SuffixAlphabet) {
			next[i] = constants.SuffixAlphabet[pos+1]
			return string(next), nil
		}
		next[i] = constants.SuffixAlphabet[0]
	}
	return "", ErrExhausted
}

// Capacity returns the number of distinct suffixes of the given width, 26^length.
// The result saturates at math.MaxUint64.
func Capacity(length int) uint64 {
	base := uint64(len(constants.SuffixAlphabet))
	n := uint64(1)
	for range length {
		if n > math.MaxUint64/base {
			return math.MaxUint64
		}
		n *= base
	}
	return n
}

// Generator hands out suffixes of a fixed width in increasing order.
type Generator struct {
	length    int
	current   string
	started   bool
	exhausted bool
}

// NewGenerator returns a Generator producing suffixes of the given width.
func NewGenerator(length int) (*Generator, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	return &Generator{length: length}, nil
}

// Length returns the width of the generated suffixes.
func (g *Generator) Length() int {
	return g.length
}

// Current returns the last suffix handed out, or "" before the first call to Next.
func (g *Generator) Current() string {
	return g.current
}

// Next returns the next suffix. Once the sequence is used up, Next keeps
// returning ErrExhausted and Current keeps the last valid suffix.
func (g *Generator) Next() (string, error) {
	if g.exhausted {
		return "", ErrExhausted
	}
	if !g.started {
		g.started = true
		g.current = First(g.length)
		return g.current, nil
	}
	next, err := Successor(g.current)
	if err != nil {
		if errors.Is(err, ErrExhausted) {
			g.exhausted = true
		}
		return "", err
	}
	g.current = next
	return next, nil
}
