package astar

import (
	"container/heap"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astargrid/grid"
)

func TestHeuristics(t *testing.T) {
	a, b := grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 4, Col: 5}

	assert.Equal(t, 7.0, ManhattanDistance(a, b))
	assert.Equal(t, 5.0, EuclideanDistance(a, b))
	assert.Equal(t, ManhattanDistance(a, b), ManhattanDistance(b, a))
	assert.Zero(t, EuclideanDistance(a, a))
	assert.InDelta(t, math.Sqrt2, EuclideanDistance(a, grid.Cell{Row: 0, Col: 0}), 1e-12)
}

func TestMetric_Heuristic(t *testing.T) {
	a, b := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 3, Col: 4}

	assert.Equal(t, 7.0, Manhattan.Heuristic()(a, b))
	assert.Equal(t, 5.0, Euclidean.Heuristic()(a, b))
	assert.Nil(t, Metric(-1).Heuristic())
}

func TestMetric_Admissible(t *testing.T) {
	assert.True(t, Manhattan.admissible(false))
	assert.False(t, Manhattan.admissible(true))
	assert.True(t, Euclidean.admissible(true))
	assert.False(t, Euclidean.admissible(false))
}

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric(" Euclidean ")
	require.NoError(t, err)
	assert.Equal(t, Euclidean, m)
	assert.Equal(t, "euclidean", m.String())

	m, err = ParseMetric("MANHATTAN")
	require.NoError(t, err)
	assert.Equal(t, Manhattan, m)

	_, err = ParseMetric("chebyshev")
	assert.ErrorIs(t, err, ErrUnknownMetric)
	assert.Equal(t, "metric(5)", Metric(5).String())
}

// TestFrontier_Order pops by f, then by row, then by column, keeping duplicates.
func TestFrontier_Order(t *testing.T) {
	q := frontier{}
	heap.Init(&q)
	for _, e := range []entry{
		{f: 2, cell: grid.Cell{Row: 0, Col: 0}},
		{f: 1, cell: grid.Cell{Row: 3, Col: 1}},
		{f: 1, cell: grid.Cell{Row: 3, Col: 0}},
		{f: 1, cell: grid.Cell{Row: 2, Col: 9}},
		{f: 2, cell: grid.Cell{Row: 0, Col: 0}},
		{f: 0.5, cell: grid.Cell{Row: 9, Col: 9}},
	} {
		heap.Push(&q, e)
	}

	var got []entry
	for q.Len() > 0 {
		got = append(got, heap.Pop(&q).(entry))
	}
	want := []entry{
		{f: 0.5, cell: grid.Cell{Row: 9, Col: 9}},
		{f: 1, cell: grid.Cell{Row: 2, Col: 9}},
		{f: 1, cell: grid.Cell{Row: 3, Col: 0}},
		{f: 1, cell: grid.Cell{Row: 3, Col: 1}},
		{f: 2, cell: grid.Cell{Row: 0, Col: 0}},
		{f: 2, cell: grid.Cell{Row: 0, Col: 0}},
	}
	assert.Equal(t, want, got)
}

// TestReconstruct_SelfParentTerminates walks a hand-built chain and rejects a corrupt one.
func TestReconstruct_SelfParentTerminates(t *testing.T) {
	g := grid.MustParse("...\n")
	r := &runner{grid: g, records: make([]record, g.Len())}
	r.records[0] = record{parent: grid.Cell{Row: 0, Col: 0}}
	r.records[1] = record{parent: grid.Cell{Row: 0, Col: 0}}
	r.records[2] = record{parent: grid.Cell{Row: 0, Col: 1}}

	assert.Equal(t, []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, r.reconstruct(grid.Cell{Row: 0, Col: 2}))

	// 1 -> 2 -> 1 never reaches a self-parent.
	r.records[1] = record{parent: grid.Cell{Row: 0, Col: 2}}
	assert.Panics(t, func() { r.reconstruct(grid.Cell{Row: 0, Col: 2}) })

	r.records[2] = record{parent: grid.Cell{Row: -1, Col: -1}}
	assert.Panics(t, func() { r.reconstruct(grid.Cell{Row: 0, Col: 2}) })
}
