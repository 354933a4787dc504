package astar

import (
	"fmt"

	"github.com/katalvlaran/astargrid/grid"
)

// reconstruct walks parent links from dest back to the origin (the cell whose
// parent is itself) and returns the cells in start..dest order.
//
// Parents are only set on strict f improvement and step costs are positive,
// so the chain is acyclic; a chain longer than the grid means the records are
// corrupt and reconstruct panics rather than loop.
func (r *runner) reconstruct(dest grid.Cell) []grid.Cell {
	var rev []grid.Cell
	cur := dest
	for {
		rev = append(rev, cur)
		parent := r.records[r.grid.Index(cur)].parent
		if parent == cur {
			break
		}
		if len(rev) > len(r.records) || !r.grid.InBounds(parent) {
			panic(fmt.Sprintf("astar: broken parent chain at %v", cur))
		}
		cur = parent
	}

	// reverse into start..dest order
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// PathCost returns the accumulated step cost of path: StraightCost per
// axis-aligned step and DiagonalCost per diagonal step. Paths with fewer
// than two cells cost 0. Consecutive cells are assumed adjacent.
func PathCost(path []grid.Cell) float64 {
	var cost float64
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if a.Row != b.Row && a.Col != b.Col {
			cost += DiagonalCost
		} else {
			cost += StraightCost
		}
	}

	return cost
}
