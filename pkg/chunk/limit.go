package chunk

import (
	"fmt"

	"github.com/sgaunet/gosplit/pkg/constants"
)

// Mode selects the unit counted toward a chunk's limit.
type Mode int

const (
	// ModeLines closes a chunk after a number of newline characters.
	ModeLines Mode = iota
	// ModeBytes closes a chunk after a number of bytes.
	ModeBytes
)

func (m Mode) String() string {
	switch m {
	case ModeLines:
		return "lines"
	case ModeBytes:
		return "bytes"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Limit is the boundary policy of a split run.
type Limit struct {
	Mode Mode
	Size uint64
}

// NewLimit builds the boundary policy from a line and a byte count.
// A nonzero byte count selects byte mode, otherwise line mode applies with
// the given line count, or constants.DefaultLines when it is zero too.
func NewLimit(lines, bytes uint64) Limit {
	switch {
	case bytes != 0:
		return Limit{Mode: ModeBytes, Size: bytes}
	case lines != 0:
		return Limit{Mode: ModeLines, Size: lines}
	default:
		return Limit{Mode: ModeLines, Size: constants.DefaultLines}
	}
}

func (l Limit) String() string {
	return fmt.Sprintf("%d %s", l.Size, l.Mode)
}
