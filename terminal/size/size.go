package size

// CellCountInt is the integer type used for cell counts: rows, columns
// and offsets into the grid. A terminal never addresses more than
// 65535 cells in either dimension.
type CellCountInt uint16
