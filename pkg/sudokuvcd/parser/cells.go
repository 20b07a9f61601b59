package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/models"
	"go.uber.org/zap"
)

const (
	// DefaultScope is the name of the scope holding the grid signals.
	DefaultScope = "sudoku"
	// DefaultCellMarker is the substring that names a grid signal.
	DefaultCellMarker = "sudoku_grid"
)

// GridParams holds parameters for grid extraction.
type GridParams struct {
	Scope      string
	CellMarker string
	// UseLast decodes the last recorded sample instead of the first.
	UseLast bool
	Logger  *zap.Logger
}

// DefaultGridParams returns default grid extraction parameters.
func DefaultGridParams() GridParams {
	return GridParams{
		Scope:      DefaultScope,
		CellMarker: DefaultCellMarker,
	}
}

// ExtractGrid builds a grid from the cell signals of the grid scope.
// The scope must be an immediate child of root. Cells whose value decodes
// to zero stay empty. Values above 9 are stored as-is.
func ExtractGrid(root *models.SignalNode, params GridParams) (*models.Grid, error) {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	scope, err := findScope(root, params.Scope)
	if err != nil {
		return nil, err
	}

	grid := &models.Grid{}
	for _, sig := range scope.Children {
		if !strings.Contains(sig.Name, params.CellMarker) {
			continue
		}

		row, col, value, err := decodeCell(sig, params.UseLast)
		if err != nil {
			return nil, &SignalError{Signal: sig.Name, Err: err}
		}
		logger.Debug("decoded cell",
			zap.String("signal", sig.Name),
			zap.Int("row", row),
			zap.Int("col", col),
			zap.Uint64("value", value))

		if value != 0 {
			grid.Set(row, col, strconv.FormatUint(value, 10))
		}
	}

	return grid, nil
}

// findScope returns the single non-leaf child of root with the given name.
func findScope(root *models.SignalNode, name string) (*models.SignalNode, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: empty signal tree", ErrStructure)
	}

	var found *models.SignalNode
	for _, child := range root.Children {
		if child.Name != name {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: more than one %q scope under %q", ErrStructure, name, root.Name)
		}
		found = child
	}

	if found == nil {
		return nil, fmt.Errorf("%w: no %q scope under %q", ErrStructure, name, root.Name)
	}
	if found.IsLeaf() {
		return nil, fmt.Errorf("%w: %q has no child signals", ErrStructure, name)
	}
	return found, nil
}

func decodeCell(sig *models.SignalNode, useLast bool) (row, col int, value uint64, err error) {
	index, err := ParseCellIndex(sig.Name)
	if err != nil {
		return 0, 0, 0, err
	}
	row, col, err = CellPosition(index)
	if err != nil {
		return 0, 0, 0, err
	}

	if len(sig.Data) == 0 {
		return 0, 0, 0, fmt.Errorf("%w: no recorded value", ErrValueFormat)
	}
	sample := sig.Data[0]
	if useLast {
		sample = sig.Data[len(sig.Data)-1]
	}

	value, err = DecodeValue(sample.Value)
	if err != nil {
		return 0, 0, 0, err
	}
	return row, col, value, nil
}

// ParseCellIndex extracts the hexadecimal index between '<' and '>' in a
// signal name such as "sudoku_grid<4f>".
func ParseCellIndex(name string) (uint64, error) {
	open := strings.IndexByte(name, '<')
	if open < 0 {
		return 0, fmt.Errorf("%w: no '<' in %q", ErrNameFormat, name)
	}
	rest := name[open+1:]
	end := strings.IndexByte(rest, '>')
	if end < 0 {
		return 0, fmt.Errorf("%w: no '>' after '<' in %q", ErrNameFormat, name)
	}

	token := rest[:end]
	digits := strings.TrimPrefix(strings.TrimPrefix(token, "0x"), "0X")
	index, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q is not hexadecimal", ErrNameFormat, token)
	}
	return index, nil
}

// CellPosition converts a flattened index into a (row, col) pair.
// The index is split in base 9 even though it was written in hex.
func CellPosition(index uint64) (row, col int, err error) {
	r, c := models.CellAt(index)
	if r >= models.GridSize || c >= models.GridSize {
		return 0, 0, fmt.Errorf("%w: index %d maps to row %d, col %d", ErrIndexRange, index, r, c)
	}
	return int(r), int(c), nil
}

// DecodeValue strips the leading format marker of a VCD value ("b0101")
// and parses the rest as a binary number.
func DecodeValue(raw string) (uint64, error) {
	if len(raw) < 2 {
		return 0, fmt.Errorf("%w: %q has no digits after the format marker", ErrValueFormat, raw)
	}
	v, err := strconv.ParseUint(raw[1:], 2, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a binary number", ErrValueFormat, raw)
	}
	return v, nil
}
