package sudokuvcd

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUsage indicates the command line was missing the trace argument.
var ErrUsage = errors.New("usage error")

// ErrInvalidOption indicates an option or config file value is not valid.
var ErrInvalidOption = errors.New("invalid option")

// Errors reported by the parser, re-exported for errors.Is checks.
var (
	ErrMalformedTrace = parser.ErrMalformedTrace
	ErrStructure      = parser.ErrStructure
	ErrNameFormat     = parser.ErrNameFormat
	ErrIndexRange     = parser.ErrIndexRange
	ErrValueFormat    = parser.ErrValueFormat
)

// Stage names the pipeline step that failed.
type Stage string

const (
	StageLoad    Stage = "load"
	StageDump    Stage = "dump"
	StageExtract Stage = "extract"
	StageRender  Stage = "render"
	StageExport  Stage = "export"
)

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s failed (%s): %v", e.Stage, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(stage Stage, path string, err error) *ExtractionError {
	return &ExtractionError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
