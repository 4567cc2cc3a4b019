package main

import (
	"strconv"

	"github.com/sgaunet/gosplit/pkg/chunk"
	"github.com/sgaunet/gosplit/pkg/config"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*linesValue)(nil)
	_ pflag.Value = (*bytesValue)(nil)
)

// limitFlags records the chunk size given on the command line. -l and -b
// share it, so the one given last wins.
type limitFlags struct {
	set   bool
	mode  chunk.Mode
	lines uint64
	bytes string
}

// linesValue implements pflag.Value for -l.
type linesValue struct {
	l *limitFlags
}

func (v *linesValue) String() string {
	if v.l.mode != chunk.ModeLines || v.l.lines == 0 {
		return ""
	}
	return strconv.FormatUint(v.l.lines, 10)
}

func (v *linesValue) Set(s string) error {
	n, err := config.ParseLineCount(s)
	if err != nil {
		return err
	}
	v.l.set = true
	v.l.mode = chunk.ModeLines
	v.l.lines = n
	v.l.bytes = ""
	return nil
}

func (v *linesValue) Type() string {
	return "line_count"
}

// bytesValue implements pflag.Value for -b. The raw value is kept so the
// configuration shows the multiplier as typed.
type bytesValue struct {
	l *limitFlags
}

func (v *bytesValue) String() string {
	if v.l.mode != chunk.ModeBytes {
		return ""
	}
	return v.l.bytes
}

func (v *bytesValue) Set(s string) error {
	if _, err := config.ParseByteCount(s); err != nil {
		return err
	}
	v.l.set = true
	v.l.mode = chunk.ModeBytes
	v.l.bytes = s
	v.l.lines = 0
	return nil
}

func (v *bytesValue) Type() string {
	return "byte_count[k|m]"
}
