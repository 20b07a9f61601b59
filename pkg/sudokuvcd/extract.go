package sudokuvcd

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/models"
	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/output"
	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/parser"
	"go.uber.org/zap"
)

// Load reads the signal tree of a trace file.
// Files ending in .json, .yaml or .yml are read as tree dumps, anything
// else as VCD.
func Load(path string, opts Options) (*models.SignalNode, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, NewExtractionError(StageLoad, path, ErrFileNotFound)
	}

	var (
		root *models.SignalNode
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		root, err = output.ReadTree(path)
	default:
		root, err = parser.ParseVCDFile(path)
	}
	if err != nil {
		return nil, NewExtractionError(StageLoad, path, err)
	}

	opts.logger().Debug("loaded signal tree",
		zap.String("path", path),
		zap.Int("top_level", len(root.Children)))
	return root, nil
}

// Extract loads the trace at path, writes the tree dump if one is
// configured, and decodes the grid.
func Extract(path string, opts Options) (*models.Grid, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.logger()

	root, err := Load(path, opts)
	if err != nil {
		return nil, err
	}

	if opts.DumpPath != "" {
		if err := output.WriteTree(opts.DumpPath, root, opts.DumpFormat); err != nil {
			return nil, NewExtractionError(StageDump, opts.DumpPath, err)
		}
		logger.Debug("wrote signal tree dump", zap.String("path", opts.DumpPath))
	}

	grid, err := parser.ExtractGrid(root, opts.gridParams())
	if err != nil {
		return nil, NewExtractionError(StageExtract, path, err)
	}

	logger.Debug("extracted grid",
		zap.String("scope", opts.Scope),
		zap.Int("filled", grid.Filled()))
	return grid, nil
}

// Render writes the text rendering of grid to w.
func Render(w io.Writer, grid *models.Grid, opts Options) error {
	if err := output.WriteText(w, grid, opts.Empty); err != nil {
		return NewExtractionError(StageRender, "", err)
	}
	return nil
}

// Export writes the spreadsheet export of grid when XLSXPath is set.
func Export(grid *models.Grid, opts Options) error {
	if opts.XLSXPath == "" {
		return nil
	}
	if err := output.WriteXLSX(grid, opts.XLSXPath, output.DefaultSheet); err != nil {
		return NewExtractionError(StageExport, opts.XLSXPath, err)
	}
	opts.logger().Debug("wrote xlsx export", zap.String("path", opts.XLSXPath))
	return nil
}
