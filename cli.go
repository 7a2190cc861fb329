package aoc

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls which solvers run and where their input comes from.
type Options struct {
	Day        int    // day to run; 0 runs every day
	Part       string // part to run; empty runs every part
	OnlySample bool   // only check the samples
	SkipSample bool   // skip the sample checks
	Debug      bool

	InputPath string // puzzle input file; overrides the cache and fetching
	CacheDir  string // directory holding <year>/<day>.input

	Stdout io.Writer // answers are written here, one per line
}

// NewLogger returns a console logger writing to w. Debug messages are only
// emitted if debug is set.
func NewLogger(w io.Writer, debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

// Command returns the command line interface running the solvers of slvr.
// src is the source of the file declaring the solvers, which holds the
// samples.
func Command(year int, src []byte, slvr any) *cobra.Command {
	var opts Options
	cmd := &cobra.Command{
		Use:           fmt.Sprintf("aoc%d", year),
		Short:         fmt.Sprintf("Solve Advent of Code %d puzzles", year),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := NewLogger(cmd.ErrOrStderr(), opts.Debug)
			defer logger.Sync()
			opts.Stdout = cmd.OutOrStdout()
			return run(cmd.Context(), opts, logger.Sugar(), year, src, slvr)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.Day, "day", 0, "day to run")
	f.StringVar(&opts.Part, "part", "", "part to run")
	f.BoolVar(&opts.OnlySample, "sample", false, "only run sample")
	f.BoolVar(&opts.SkipSample, "skip-sample", false, "skip sample")
	f.BoolVar(&opts.Debug, "debug", false, "debug mode")
	f.StringVar(&opts.InputPath, "input", "", "read the puzzle input from this file")
	f.StringVar(&opts.CacheDir, "cache-dir", ".", "directory of cached <year>/<day>.input files")
	cmd.MarkFlagsMutuallyExclusive("sample", "skip-sample")
	return cmd
}

// Run runs the solvers of slvr with the command line arguments and exits
// the process on failure.
func Run(year int, src []byte, slvr any) {
	if err := Command(year, src, slvr).ExecuteContext(context.Background()); err != nil {
		log.SetFlags(0)
		log.Fatal(err)
	}
}
