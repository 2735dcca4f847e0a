package align

import "math"

// Matrix is the dense row-major DP grid. Cells default to a score of
// math.MinInt32, the "unreachable" sentinel, until the fill engine writes
// them; after fill the grid is read-only.
type Matrix struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// NewMatrix allocates a rows x cols grid of unreachable cells.
func NewMatrix(rows, cols int) *Matrix {
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i].Score = math.MinInt32
	}

	return &Matrix{Rows: rows, Cols: cols, Cells: cells}
}

// At returns the cell at (i, j), or ErrOutOfRange.
func (m *Matrix) At(i, j int) (Cell, error) {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		return Cell{}, ErrOutOfRange
	}

	return m.Cells[i*m.Cols+j], nil
}

// at is the unchecked accessor used by the fill and traceback hot loops.
func (m *Matrix) at(i, j int) Cell {
	return m.Cells[i*m.Cols+j]
}

// set writes one cell. Each cell is written exactly once during fill.
func (m *Matrix) set(i, j int, c Cell) {
	m.Cells[i*m.Cols+j] = c
}
