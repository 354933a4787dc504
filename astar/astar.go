package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/astargrid/grid"
)

// direction is a neighbour offset and the cost of taking it.
type direction struct {
	dRow, dCol int
	cost       float64
}

// straight and diagonal moves, in expansion order.
var (
	straightMoves = []direction{
		{-1, 0, StraightCost}, // north
		{1, 0, StraightCost},  // south
		{0, 1, StraightCost},  // east
		{0, -1, StraightCost}, // west
	}
	diagonalMoves = []direction{
		{-1, 1, DiagonalCost},  // north-east
		{-1, -1, DiagonalCost}, // north-west
		{1, 1, DiagonalCost},   // south-east
		{1, -1, DiagonalCost},  // south-west
	}
	allMoves = append(append([]direction{}, straightMoves...), diagonalMoves...)
)

// NewEngine builds an Engine for the given metric.
//
// Returns ErrOptionViolation for an unknown metric and, under
// WithStrictPairing, ErrMetricMismatch when the metric is not admissible
// for the movement model.
func NewEngine(metric Metric, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := metric.Heuristic()
	if h == nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, metric)
	}

	diagonal := metric == Euclidean
	if cfg.Diagonal != nil {
		diagonal = *cfg.Diagonal
	}
	if cfg.StrictPairing && !metric.admissible(diagonal) {
		return nil, fmt.Errorf("%w: %v with diagonal=%t", ErrMetricMismatch, metric, diagonal)
	}

	return &Engine{
		metric:        metric,
		heuristic:     h,
		allowDiagonal: diagonal,
		onEnqueue:     cfg.OnEnqueue,
		onExpand:      cfg.OnExpand,
	}, nil
}

// Metric returns the configured heuristic metric.
func (e *Engine) Metric() Metric { return e.metric }

// AllowDiagonal reports whether diagonal moves are enabled.
func (e *Engine) AllowDiagonal() bool { return e.allowDiagonal }

// SetAllowDiagonal toggles diagonal movement for subsequent searches.
// It must not be called while a search on this Engine is running.
func (e *Engine) SetAllowDiagonal(allow bool) { e.allowDiagonal = allow }

// Path returns the cells from start to finish inclusive, or an empty
// slice when the endpoints are invalid, blocked or disconnected.
func (e *Engine) Path(g *grid.Grid, start, finish grid.Cell) []grid.Cell {
	return e.Search(g, start, finish).Path
}

// Search runs A* from start to finish over g.
//
// Preconditions are checked in order, each failing to an empty Result:
//  1. g non-nil and both endpoints in bounds.
//  2. Neither endpoint blocked.
//  3. start == finish yields the single-cell path [start].
//
// Complexity: O(E log V) time, O(V + E) space.
func (e *Engine) Search(g *grid.Grid, start, finish grid.Cell) Result {
	empty := Result{Path: []grid.Cell{}}
	if g == nil || !g.InBounds(start) || !g.InBounds(finish) {
		return empty
	}
	if g.Blocked(start) || g.Blocked(finish) {
		return empty
	}
	if start == finish {
		return Result{Path: []grid.Cell{start}, Found: true}
	}

	moves := straightMoves
	if e.allowDiagonal {
		moves = allMoves
	}

	r := &runner{
		engine:  e,
		grid:    g,
		finish:  finish,
		moves:   moves,
		records: make([]record, g.Len()),
		closed:  make([]bool, g.Len()),
		open:    make(frontier, 0, g.Len()),
	}
	r.init(start)
	path := r.process()
	if len(path) == 0 {
		return Result{Path: []grid.Cell{}, Expanded: r.expanded}
	}

	return Result{
		Path:     path,
		Cost:     PathCost(path),
		Expanded: r.expanded,
		Found:    true,
	}
}

// record is the per-cell search state. parent == own cell marks the origin.
type record struct {
	g, h, f float64
	parent  grid.Cell
}

// runner holds the mutable state for a single search.
type runner struct {
	engine   *Engine
	grid     *grid.Grid
	finish   grid.Cell
	moves    []direction
	records  []record // indexed by grid.Index
	closed   []bool   // indexed by grid.Index
	open     frontier
	expanded int
}

// init resets every record to +∞ and seeds the frontier with start.
func (r *runner) init(start grid.Cell) {
	inf := math.Inf(1)
	for i := range r.records {
		r.records[i] = record{g: inf, h: inf, f: inf, parent: grid.Cell{Row: -1, Col: -1}}
	}

	h := r.engine.heuristic(start, r.finish)
	r.records[r.grid.Index(start)] = record{g: 0, h: h, f: h, parent: start}

	heap.Init(&r.open)
	r.push(h, start)
}

// push inserts (f, c) into the frontier and fires OnEnqueue.
func (r *runner) push(f float64, c grid.Cell) {
	heap.Push(&r.open, entry{f: f, cell: c})
	r.engine.onEnqueue(c, f)
}

// process is the main A* loop. It returns the reconstructed path as soon as
// finish is generated as a neighbour, or nil once the frontier is exhausted.
func (r *runner) process() []grid.Cell {
	for r.open.Len() > 0 {
		cur := heap.Pop(&r.open).(entry)
		ci := r.grid.Index(cur.cell)

		// Stale duplicate of a cell expanded earlier.
		if r.closed[ci] {
			continue
		}
		r.closed[ci] = true
		r.expanded++
		r.engine.onExpand(cur.cell, cur.f)

		if path := r.relax(cur.cell, ci); path != nil {
			return path
		}
	}

	return nil
}

// relax examines every neighbour of cur. When finish is among them it links
// finish to cur and returns the path; otherwise it returns nil.
func (r *runner) relax(cur grid.Cell, ci int) []grid.Cell {
	base := r.records[ci].g
	for _, d := range r.moves {
		next := cur.Add(d.dRow, d.dCol)
		if !r.grid.InBounds(next) {
			continue
		}
		ni := r.grid.Index(next)

		if next == r.finish {
			r.records[ni].parent = cur
			return r.reconstruct(next)
		}

		if r.closed[ni] || r.grid.Blocked(next) {
			continue
		}

		g := base + d.cost
		h := r.engine.heuristic(next, r.finish)
		f := g + h
		// Strict improvement only: an equal-cost route keeps the first parent.
		if !(f < r.records[ni].f) {
			continue
		}
		r.records[ni] = record{g: g, h: h, f: f, parent: cur}
		r.push(f, next)
	}

	return nil
}
