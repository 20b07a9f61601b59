package models

// PrintArea represents cell coordinate bounds for a print area.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// GridArea returns the print area covering a grid placed at A1.
func GridArea() PrintArea {
	return PrintArea{R1: 1, C1: 1, R2: GridSize, C2: GridSize}
}
