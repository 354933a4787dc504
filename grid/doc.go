// Package grid models a rectangular occupancy map: every cell is either
// passable or blocked, addressed by a (row, col) Cell.
//
// What:
//
//   - Grid wraps a row-major []bool passability slice with fixed Rows×Cols extent.
//   - Constructors deep-copy their input, so a Grid is immutable once built.
//   - Loaders accept a flat slice, a 2D slice, an integer matrix or a text map.
//   - Identifies connected regions of passable cells under 4- or 8-connectivity.
//
// Why:
//
//   - Search engines read the grid concurrently without locks.
//   - Callers can tell "blocked endpoint" from "disconnected endpoints"
//     before asking for a path (Passable, Connected).
//
// Complexity:
//
//   - InBounds, Blocked, Index, CellAt: O(1).
//   - Components, Connected: O(R×C×d), Memory: O(R×C)  (d = 4 or 8).
//   - Parse: O(R×C).
//
// Text format (Parse, String):
//
//   - '.', ' ' and '1' are passable; '#' and '0' are blocked.
//   - Blank lines are skipped; all remaining lines must have equal length.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDimensions: flat slice length differs from rows×cols.
//   - ErrBadRune: text map contains an unknown cell symbol.
package grid
