// Package main provides the gosplit command-line tool splitting a file into pieces.
// Copyright (C) 2021  Sylvain Gaunet

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sgaunet/gosplit/pkg/app"
	"github.com/sgaunet/gosplit/pkg/chunk"
	"github.com/sgaunet/gosplit/pkg/config"
	"github.com/sgaunet/gosplit/pkg/constants"
	"github.com/spf13/cobra"
)

var version = "development"

const (
	exitFailure = 1
	exitUsage   = 2
)

// cliFlags holds command-line flag values.
type cliFlags struct {
	configFile   string
	limits       limitFlags
	suffixLength int
	suffixSet    bool
	outputDir    string
	printCfg     bool
}

// usageError marks command line errors, reported with exit status 2.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func loadConfiguration(cfgFile string) (*config.Config, error) {
	if len(cfgFile) > 0 {
		cfg, err := config.NewConfigFromFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyCliOverrides applies command-line flag values and positional
// arguments ([file [name]]) to the configuration.
func applyCliOverrides(cfg *config.Config, flags cliFlags, args []string) {
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.BaseName = args[1]
	}

	if flags.limits.set {
		switch flags.limits.mode {
		case chunk.ModeBytes:
			cfg.SetBytes(flags.limits.bytes)
		default:
			cfg.SetLines(flags.limits.lines)
		}
	}
	if flags.suffixSet {
		cfg.SuffixLength = flags.suffixLength
	}
	if flags.outputDir != "" {
		cfg.OutputDir = flags.outputDir
	}
	if cfg.BaseName == "" {
		cfg.BaseName = constants.DefaultBaseName
	}
}

func printConfiguration(w io.Writer, cfg *config.Config) {
	cfg.Usage()
	fmt.Fprintln(w, strings.Repeat("-", constants.SeparatorWidth))
	fmt.Fprintln(w, "gosplit configuration:")
	fmt.Fprint(w, cfg.Redacted())
}

// maxArgs accepts the optional file and name positional arguments.
func maxArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(2)(cmd, args); err != nil { //nolint:mnd // file and name
		return &usageError{err: err}
	}
	return nil
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:   "gosplit [-l line_count | -b byte_count[k|m]] [-a suffix_length] [file [name]]",
		Short: "Split a file into pieces",
		Long: `Split a file into pieces.

The input (or standard input when file is omitted or is "-") is written to
files named name followed by an alphabetic suffix: xaa, xab, ... Each file
holds line_count lines (default 1000) or byte_count bytes.

Configuration precedence: CLI flags > config file > environment variables.`,
		Example: `  # 1000 lines per chunk: xaa, xab, ...
  gosplit access.log

  # 10 KiB chunks named part-aaa, part-aab, ... from standard input
  cat dump.bin | gosplit -b 10k -a 3 - part-`,
		Version:       version,
		Args:          maxArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.suffixSet = cmd.Flags().Changed("suffix-length")
			return run(cmd.Context(), flags, args, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	f := cmd.Flags()
	f.VarP(&linesValue{l: &flags.limits}, "lines", "l", "Number of lines per chunk (default 1000)")
	f.VarP(&bytesValue{l: &flags.limits}, "bytes", "b", "Number of bytes per chunk, k multiplies by 1024, m by 1048576")
	f.IntVarP(&flags.suffixLength, "suffix-length", "a", constants.DefaultSuffixLength, "Number of letters of the suffix")
	f.StringVarP(&flags.outputDir, "output-dir", "d", "", "Directory receiving the chunks (default: current directory)")
	f.StringVarP(&flags.configFile, "config", "c", "", "Path to configuration file (YAML)")
	f.BoolVar(&flags.printCfg, "cfg", false, "Print configuration and exit")
	return cmd
}

func run(ctx context.Context, flags cliFlags, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfiguration(flags.configFile)
	if err != nil {
		return err
	}
	applyCliOverrides(cfg, flags, args)

	if flags.printCfg {
		printConfiguration(stdout, cfg)
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return &usageError{err: fmt.Errorf("configuration validation failed: %w", err)}
	}

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	l := initTrace(stderr, os.Getenv("DEBUGLEVEL"), cfg.NoLogTime)
	a.SetLogger(l)
	a.SetProgressReporter(app.NewConsoleProgressReporter(l))
	a.SetStdin(stdin)

	_, err = a.Run(ctx)
	return err
}

// exitCode maps the error returned by the root command to a process status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		return exitUsage
	}
	return exitFailure
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gosplit: %v\n", err)
	}
	code := exitCode(err)
	if code != 0 {
		stop()
		os.Exit(code)
	}
}
