package models

const (
	// GridSize is the number of rows and columns of a Sudoku grid.
	GridSize = 9
	// BlockSize is the side of a Sudoku block.
	BlockSize = 3
	// CellCount is the number of cells of a grid.
	CellCount = GridSize * GridSize
)

// Grid is a 9x9 Sudoku grid in row-major order.
// An empty string marks an empty cell; other cells hold decimal text.
type Grid struct {
	Cells [GridSize][GridSize]string `json:"cells" yaml:"cells"`
}

// Set stores a value at (row, col).
func (g *Grid) Set(row, col int, value string) {
	g.Cells[row][col] = value
}

// Get returns the value at (row, col).
func (g *Grid) Get(row, col int) string {
	return g.Cells[row][col]
}

// IsEmpty reports whether the cell at (row, col) holds no value.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.Cells[row][col] == ""
}

// Filled returns the number of non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for _, row := range g.Cells {
		for _, v := range row {
			if v != "" {
				n++
			}
		}
	}
	return n
}

// CellAt converts a flattened index into (row, col).
func CellAt(index uint64) (row, col uint64) {
	return index / GridSize, index % GridSize
}
