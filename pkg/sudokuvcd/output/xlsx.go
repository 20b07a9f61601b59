package output

import (
	"strconv"

	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet name used by WriteXLSX.
const DefaultSheet = "Sudoku"

const (
	borderThin   = 1
	borderMedium = 2

	cellWidth  = 4.5
	cellHeight = 24
)

// edges records which sides of a cell lie on a block boundary.
type edges struct {
	top, left, bottom, right bool
}

// WriteXLSX exports a grid to a single-sheet workbook at path.
// Digits are written as numbers in A1:I9 and block edges get medium borders.
func WriteXLSX(grid *models.Grid, path, sheetName string) error {
	if sheetName == "" {
		sheetName = DefaultSheet
	}
	if grid == nil {
		grid = &models.Grid{}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	styles := make(map[edges]int)
	for r := 0; r < models.GridSize; r++ {
		for c := 0; c < models.GridSize; c++ {
			cellName, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}

			if v := grid.Get(r, c); v != "" {
				var value interface{} = v
				if n, err := strconv.Atoi(v); err == nil {
					value = n
				}
				if err := f.SetCellValue(sheetName, cellName, value); err != nil {
					return err
				}
			}

			style, err := cellStyle(f, styles, blockEdges(r, c))
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheetName, cellName, cellName, style); err != nil {
				return err
			}
		}
		if err := f.SetRowHeight(sheetName, r+1, cellHeight); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(models.GridSize)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "A", lastCol, cellWidth); err != nil {
		return err
	}

	ref, err := FormatAreaReference(sheetName, models.GridArea())
	if err != nil {
		return err
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: ref,
		Scope:    sheetName,
	}); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func blockEdges(r, c int) edges {
	last := models.BlockSize - 1
	return edges{
		top:    r%models.BlockSize == 0,
		left:   c%models.BlockSize == 0,
		bottom: r%models.BlockSize == last,
		right:  c%models.BlockSize == last,
	}
}

// cellStyle returns the style id for a border combination, creating it once.
func cellStyle(f *excelize.File, cache map[edges]int, e edges) (int, error) {
	if id, ok := cache[e]; ok {
		return id, nil
	}

	id, err := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			border("top", e.top),
			border("left", e.left),
			border("bottom", e.bottom),
			border("right", e.right),
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Font:      &excelize.Font{Size: 14},
	})
	if err != nil {
		return 0, err
	}
	cache[e] = id
	return id, nil
}

func border(side string, block bool) excelize.Border {
	style := borderThin
	if block {
		style = borderMedium
	}
	return excelize.Border{Type: side, Color: "000000", Style: style}
}
