package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and loading.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrDimensions indicates a flat cell slice that does not match rows×cols.
	ErrDimensions = errors.New("grid: cell count does not match dimensions")
	// ErrBadRune indicates an unknown symbol in a text map.
	ErrBadRune = errors.New("grid: unknown cell symbol")
)

// Text symbols written by String and understood by Parse.
const (
	SymbolFree    = '.'
	SymbolBlocked = '#'
)

// Cell is a (row, col) coordinate. Two cells are equal iff both components match.
type Cell struct {
	Row, Col int
}

// Less orders cells by row, then by column.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Add returns c shifted by the given row and column deltas.
func (c Cell) Add(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

// String renders the cell as "[row, col]".
func (c Cell) String() string {
	return fmt.Sprintf("[%d, %d]", c.Row, c.Col)
}

// Grid is an immutable occupancy map of Rows×Cols cells.
// passable[Index(c)] is true when c can be entered.
type Grid struct {
	rows, cols int
	passable   []bool
}

// straight and diagonal neighbour offsets as (dRow, dCol).
var (
	offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}, {-1, 1}, {-1, -1}, {1, 1}, {1, -1}}
)
