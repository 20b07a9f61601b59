// Package sudokuvcd extracts solved Sudoku grids from VCD waveform traces.
package sudokuvcd

import (
	"fmt"

	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/output"
	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/parser"
	"go.uber.org/zap"
)

// SampleMode selects which recorded value of a cell signal is decoded.
type SampleMode string

const (
	// SampleFirst decodes the first recorded value.
	SampleFirst SampleMode = "first"
	// SampleLast decodes the value at the end of the trace.
	SampleLast SampleMode = "last"
)

// Options configures extraction behavior.
type Options struct {
	// Scope is the name of the top-level scope holding the grid signals.
	Scope string `yaml:"scope"`
	// CellMarker is the substring identifying grid signals inside Scope.
	CellMarker string `yaml:"cell_marker"`
	// Sample selects the decoded value when a signal changes over time.
	Sample SampleMode `yaml:"sample"`
	// Empty is printed for empty cells.
	Empty string `yaml:"empty"`
	// DumpPath, if set, receives the parsed signal tree.
	DumpPath string `yaml:"dump"`
	// DumpFormat is json or yaml. If empty, it is inferred from DumpPath.
	DumpFormat output.DumpFormat `yaml:"dump_format"`
	// XLSXPath, if set, receives a spreadsheet export of the grid.
	XLSXPath string `yaml:"xlsx"`
	// Logger receives debug output. If nil, nothing is logged.
	Logger *zap.Logger `yaml:"-"`
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Scope:      parser.DefaultScope,
		CellMarker: parser.DefaultCellMarker,
		Sample:     SampleFirst,
		Empty:      output.DefaultEmpty,
	}
}

// Validate reports the first invalid option.
func (o Options) Validate() error {
	if o.Scope == "" {
		return fmt.Errorf("%w: scope must not be empty", ErrInvalidOption)
	}
	if o.CellMarker == "" {
		return fmt.Errorf("%w: cell marker must not be empty", ErrInvalidOption)
	}
	switch o.Sample {
	case SampleFirst, SampleLast:
	default:
		return fmt.Errorf("%w: sample %q (must be first or last)", ErrInvalidOption, o.Sample)
	}
	switch o.DumpFormat {
	case "", output.FormatJSON, output.FormatYAML:
	default:
		return fmt.Errorf("%w: dump format %q (must be json or yaml)", ErrInvalidOption, o.DumpFormat)
	}
	return nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) gridParams() parser.GridParams {
	return parser.GridParams{
		Scope:      o.Scope,
		CellMarker: o.CellMarker,
		UseLast:    o.Sample == SampleLast,
		Logger:     o.logger(),
	}
}
