package sudokuvcd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/output"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sudokuvcd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadOptions(t *testing.T) {
	path := writeConfig(t, `
scope: board
cell_marker: cell
sample: last
empty: "_"
dump: out.yml
dump_format: yaml
xlsx: grid.xlsx
`)

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, "board", opts.Scope)
	assert.Equal(t, "cell", opts.CellMarker)
	assert.Equal(t, SampleLast, opts.Sample)
	assert.Equal(t, "_", opts.Empty)
	assert.Equal(t, "out.yml", opts.DumpPath)
	assert.Equal(t, output.FormatYAML, opts.DumpFormat)
	assert.Equal(t, "grid.xlsx", opts.XLSXPath)
}

func TestLoadOptionsKeepsDefaults(t *testing.T) {
	opts, err := LoadOptions(writeConfig(t, "sample: last\n"))
	require.NoError(t, err)

	want := DefaultOptions()
	want.Sample = SampleLast
	assert.Equal(t, want, opts)

	opts, err = LoadOptions(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestLoadOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "scop: sudoku\n"},
		{"bad sample", "sample: middle\n"},
		{"bad dump format", "dump_format: xml\n"},
		{"empty scope", "scope: \"\"\n"},
		{"not a mapping", "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadOptions(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
