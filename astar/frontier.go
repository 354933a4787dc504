package astar

import (
	"github.com/katalvlaran/astargrid/grid"
)

// entry is one frontier element: a cell and the f value it was pushed with.
type entry struct {
	f    float64
	cell grid.Cell
}

// frontier is a min-heap of entries ordered by f ascending, then by cell
// (row, then col) so that equal-cost entries pop deterministically.
// Improved cells are pushed again rather than fixed in place; the outdated
// entry stays until popped and is then ignored via the closed set.
type frontier []entry

// Len returns the number of entries in the heap.
func (q frontier) Len() int { return len(q) }

// Less orders by f, breaking ties on the cell coordinate.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].cell.Less(q[j].cell)
}

// Swap swaps two elements in the heap.
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds x onto the heap. Called by heap.Push; x must be an entry.
func (q *frontier) Push(x interface{}) { *q = append(*q, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
