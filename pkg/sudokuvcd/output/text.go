// Package output renders extracted grids and serializes signal trees.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/models"
)

// DefaultEmpty is the marker printed for empty cells.
const DefaultEmpty = "."

// separator is printed between bands of three rows.
var separator = strings.Repeat("-", 21)

// RenderText formats a grid with '-' lines between row bands and '|'
// between column stacks. An empty marker of "" means DefaultEmpty.
func RenderText(grid *models.Grid, empty string) string {
	var b strings.Builder
	// strings.Builder never fails.
	_ = WriteText(&b, grid, empty)
	return b.String()
}

// WriteText writes the text rendering of grid to w.
func WriteText(w io.Writer, grid *models.Grid, empty string) error {
	if empty == "" {
		empty = DefaultEmpty
	}
	if grid == nil {
		grid = &models.Grid{}
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < models.GridSize; r++ {
		if r%models.BlockSize == 0 && r != 0 {
			bw.WriteString(separator)
			bw.WriteByte('\n')
		}
		for c := 0; c < models.GridSize; c++ {
			if c != 0 {
				bw.WriteByte(' ')
			}
			if c%models.BlockSize == 0 && c != 0 {
				bw.WriteString("| ")
			}
			v := grid.Get(r, c)
			if v == "" {
				v = empty
			}
			bw.WriteString(v)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
