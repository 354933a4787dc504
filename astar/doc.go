// Package astar finds shortest paths between two cells of a grid.Grid with
// the A* informed-search algorithm.
//
// Overview:
//
//   - Engine holds configuration only: the heuristic Metric, the
//     diagonal-movement flag and optional hooks. Every call to Path or Search
//     allocates its own records, frontier and closed set.
//   - Straight steps cost StraightCost (1.0); diagonal steps cost
//     DiagonalCost (1.414213), approximating √2.
//   - Failure is never an error: out-of-bounds or blocked endpoints and an
//     unreachable destination all yield an empty path. Use grid.Grid.Passable
//     and grid.Grid.Connected beforehand to tell them apart.
//
// Heuristics:
//
//   - Manhattan: |Δrow| + |Δcol|. Admissible for 4-directional movement.
//   - Euclidean: √(Δrow² + Δcol²). Admissible for 8-directional movement.
//
// Pairing the metric with the movement model is the caller's responsibility.
// By default NewEngine enables diagonals for Euclidean and disables them for
// Manhattan; WithDiagonal overrides that, and WithStrictPairing rejects a
// mismatched pair with ErrMetricMismatch.
//
// Search loop:
//
//  1. Seed the frontier with start (g=0, f=h, parent=start).
//  2. Pop the entry with the lowest f; ties go to the smaller cell (row, then col).
//  3. Skip entries for cells already closed, otherwise close the cell.
//  4. For each direction (N, S, E, W, then NE, NW, SE, SW): a neighbour equal to
//     finish ends the search; an open, passable neighbour whose f strictly
//     improves is recorded and pushed.
//
// The frontier uses lazy deletion: improved cells are pushed again and stale
// entries are discarded by the closed-set check, never re-expanded.
//
// Complexity:
//
//   - Time:  O(E log V), V = cells, E ≤ 8V.
//   - Space: O(V) records and closed flags, O(E) frontier entries.
//
// Thread safety:
//
//   - Concurrent Path/Search calls on one Engine and one Grid are safe.
//   - SetAllowDiagonal must not race with a running search.
package astar
