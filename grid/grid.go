package grid

import (
	"strings"
)

// New constructs a Grid from a flat, row-major passability slice.
// It deep-copies passable to ensure immutability.
// Returns ErrEmptyGrid if rows or cols is not positive,
// ErrDimensions if len(passable) != rows*cols.
// Complexity: O(R×C) time and memory.
func New(rows, cols int, passable []bool) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(passable) != rows*cols {
		return nil, ErrDimensions
	}
	cells := make([]bool, len(passable))
	copy(cells, passable)

	return &Grid{rows: rows, cols: cols, passable: cells}, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice
// where values[row][col] is true for passable cells.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(values [][]bool) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	cells := make([]bool, 0, rows*cols)
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid{rows: rows, cols: cols, passable: cells}, nil
}

// FromInts constructs a Grid from a flat integer matrix; any non-zero
// value is passable, zero is blocked.
func FromInts(rows, cols int, values []int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(values) != rows*cols {
		return nil, ErrDimensions
	}
	cells := make([]bool, len(values))
	for i, v := range values {
		cells[i] = v != 0
	}

	return &Grid{rows: rows, cols: cols, passable: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells (Rows×Cols).
func (g *Grid) Len() int { return len(g.passable) }

// InBounds reports whether c lies within [0,Rows)×[0,Cols).
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Blocked reports whether c cannot be entered.
// c must be in bounds; callers check InBounds first.
func (g *Grid) Blocked(c Cell) bool {
	return !g.passable[g.Index(c)]
}

// Passable reports whether c is in bounds and not blocked.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.passable[g.Index(c)]
}

// Index maps c to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// String renders the grid in the text format accepted by Parse,
// one line per row terminated by '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for i, ok := range g.passable {
		if ok {
			sb.WriteByte(SymbolFree)
		} else {
			sb.WriteByte(SymbolBlocked)
		}
		if (i+1)%g.cols == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
