package output

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sudokuvcd-go/pkg/sudokuvcd/models"
	"github.com/xuri/excelize/v2"
)

// printAreaName is the built-in defined name Excel uses for print areas.
const printAreaName = "_xlnm.Print_Area"

// FormatAreaReference formats a print area as an absolute reference.
// Format: 'SheetName'!$A$1:$I$9
func FormatAreaReference(sheetName string, area models.PrintArea) (string, error) {
	start, err := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	if err != nil {
		return "", err
	}
	quoted := strings.ReplaceAll(sheetName, "'", "''")
	return fmt.Sprintf("'%s'!%s:%s", quoted, start, end), nil
}

// ParseAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$I$9 or SheetName!$A$1:$I$9
func ParseAreaReference(ref string) (string, *models.PrintArea) {
	ref = strings.TrimSpace(ref)
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", nil
	}

	sheet := ref[:idx]
	if len(sheet) >= 2 && strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") {
		sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
	}
	return sheet, parseRangeToArea(ref[idx+1:])
}

// parseRangeToArea parses a range string like $A$1:$I$9 to PrintArea.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.PrintArea{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
