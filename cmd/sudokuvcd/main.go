// Package main provides the CLI entry point for sudokuvcd.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd"
	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var (
	configPath string
	scope      string
	cellMarker string
	sample     string
	empty      string
	dumpPath   string
	dumpFormat string
	xlsxPath   string
	verbose    bool

	logger *zap.Logger
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and maps its outcome to an exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, sudokuvcd.ErrUsage):
		return exitUsage
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sudokuvcd [trace.vcd]",
		Short: "Print the Sudoku grid recorded in a VCD trace",
		Long: `sudokuvcd reads the VCD trace of a SymbiYosys run, decodes the
sudoku_grid<index> signals of the sudoku scope and prints the grid.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	defaults := sudokuvcd.DefaultOptions()
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.StringVar(&scope, "scope", defaults.Scope, "Scope holding the grid signals")
	flags.StringVar(&cellMarker, "cell-marker", defaults.CellMarker, "Substring naming grid signals")
	flags.StringVar(&sample, "sample", string(defaults.Sample), "Sample to decode: first or last")
	flags.StringVar(&empty, "empty", defaults.Empty, "Marker for empty cells")
	flags.StringVar(&dumpPath, "dump", "", "Write the parsed signal tree to this file")
	flags.StringVar(&dumpFormat, "dump-format", "", "Dump format: json or yaml (default: from extension)")
	flags.StringVar(&xlsxPath, "xlsx", "", "Also export the grid to this .xlsx file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Give me a vcd file to parse")
		fmt.Fprint(out, cmd.UsageString())
		return sudokuvcd.ErrUsage
	}
	inputPath := args[0]

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	opts.Logger = logger

	grid, err := sudokuvcd.Extract(inputPath, opts)
	if err != nil {
		return err
	}

	if err := sudokuvcd.Render(cmd.OutOrStdout(), grid, opts); err != nil {
		return err
	}

	return sudokuvcd.Export(grid, opts)
}

// buildOptions layers explicitly set flags over the config file, if any,
// and the config file over the defaults.
func buildOptions(cmd *cobra.Command) (sudokuvcd.Options, error) {
	opts := sudokuvcd.DefaultOptions()
	if configPath != "" {
		var err error
		opts, err = sudokuvcd.LoadOptions(configPath)
		if err != nil {
			return opts, fmt.Errorf("config: %w", err)
		}
	}

	flags := cmd.Flags()
	if configPath == "" || flags.Changed("scope") {
		opts.Scope = scope
	}
	if configPath == "" || flags.Changed("cell-marker") {
		opts.CellMarker = cellMarker
	}
	if configPath == "" || flags.Changed("sample") {
		opts.Sample = sudokuvcd.SampleMode(sample)
	}
	if configPath == "" || flags.Changed("empty") {
		opts.Empty = empty
	}
	if flags.Changed("dump") {
		opts.DumpPath = dumpPath
	}
	if flags.Changed("dump-format") {
		opts.DumpFormat = output.DumpFormat(dumpFormat)
	}
	if flags.Changed("xlsx") {
		opts.XLSXPath = xlsxPath
	}

	return opts, opts.Validate()
}
