package sudokuvcd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOptions reads a YAML config file over DefaultOptions.
// Unknown keys are rejected.
//
//	scope: sudoku
//	cell_marker: sudoku_grid
//	sample: last
//	dump: trace.json
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return opts, fmt.Errorf("%w: %s: %v", ErrInvalidOption, path, err)
	}

	return opts, opts.Validate()
}
