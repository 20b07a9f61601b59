package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/models"
	"gopkg.in/yaml.v3"
)

// DumpFormat is the serialization used for signal tree dumps.
type DumpFormat string

const (
	// FormatJSON writes the tree as JSON.
	FormatJSON DumpFormat = "json"
	// FormatYAML writes the tree as YAML.
	FormatYAML DumpFormat = "yaml"
)

// FormatFromPath infers a dump format from a file extension.
// Unknown extensions yield FormatJSON.
func FormatFromPath(path string) DumpFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ToJSON serializes a signal tree to JSON.
// Signal names keep their angle brackets unescaped.
func ToJSON(root *models.SignalNode, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToYAML serializes a signal tree to YAML.
func ToYAML(root *models.SignalNode) ([]byte, error) {
	return yaml.Marshal(root)
}

// WriteTree writes a signal tree dump to path.
// An empty format is inferred from the extension.
func WriteTree(path string, root *models.SignalNode, format DumpFormat) error {
	if format == "" {
		format = FormatFromPath(path)
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = ToJSON(root, false)
	case FormatYAML:
		data, err = ToYAML(root)
	default:
		return fmt.Errorf("unknown dump format %q (must be json or yaml)", format)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadTree loads a signal tree dump written by WriteTree.
func ReadTree(path string) (*models.SignalNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root := &models.SignalNode{}
	switch FormatFromPath(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, root)
	default:
		err = json.Unmarshal(data, root)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return root, nil
}
