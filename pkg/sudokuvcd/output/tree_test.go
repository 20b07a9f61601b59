package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/models"
)

func sampleTree() *models.SignalNode {
	return &models.SignalNode{
		Name: "root",
		Children: []*models.SignalNode{
			{
				Name: "sudoku",
				Kind: "module",
				Children: []*models.SignalNode{
					{Name: "clock", Kind: "wire", Width: 1, Data: []models.Sample{{Time: 0, Value: "0"}, {Time: 5, Value: "1"}}},
					{Name: "sudoku_grid<0>", Kind: "wire", Width: 4, Data: []models.Sample{{Time: 0, Value: "b101"}}},
				},
			},
		},
	}
}

func TestToJSONLayout(t *testing.T) {
	data, err := ToJSON(sampleTree(), false)
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, `{"name":"root","children":[`))
	assert.Contains(t, s, `"data":[[0,"0"],[5,"1"]]`)
	assert.Contains(t, s, `{"name":"sudoku_grid<0>","type":"wire","width":4,"data":[[0,"b101"]]}`)
}

func TestWriteTreeReadTree(t *testing.T) {
	tests := []struct {
		file   string
		format DumpFormat
	}{
		{"trace.json", ""},
		{"trace.yaml", ""},
		{"trace.yml", FormatYAML},
		{"trace.json", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.file+"/"+string(tt.format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, WriteTree(path, sampleTree(), tt.format))

			got, err := ReadTree(path)
			require.NoError(t, err)
			if diff := cmp.Diff(sampleTree(), got); diff != "" {
				t.Errorf("ReadTree() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestYAMLScalarValuesStayStrings(t *testing.T) {
	data, err := ToYAML(sampleTree())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[0, b101]")

	path := filepath.Join(t.TempDir(), "trace.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	got, err := ReadTree(path)
	require.NoError(t, err)
	assert.Equal(t, "1", got.Children[0].Children[0].Data[1].Value)
}

func TestWriteTreeUnknownFormat(t *testing.T) {
	err := WriteTree(filepath.Join(t.TempDir(), "trace.txt"), sampleTree(), "xml")
	assert.ErrorContains(t, err, "unknown dump format")
}

func TestReadTreeMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"root","children":[{"name":"a","data":[[0]]}]}`), 0644))

	_, err := ReadTree(path)
	assert.ErrorContains(t, err, "[time, value] pair")
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected DumpFormat
	}{
		{"trace.json", FormatJSON},
		{"trace.YAML", FormatYAML},
		{"dir/trace.yml", FormatYAML},
		{"trace", FormatJSON},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatFromPath(tt.path), tt.path)
	}
}
