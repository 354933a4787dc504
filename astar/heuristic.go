package astar

import (
	"math"

	"github.com/katalvlaran/astargrid/grid"
)

// Heuristic estimates the remaining cost from one cell to another.
type Heuristic func(from, to grid.Cell) float64

// ManhattanDistance returns |Δrow| + |Δcol|.
func ManhattanDistance(from, to grid.Cell) float64 {
	return math.Abs(float64(from.Row-to.Row)) + math.Abs(float64(from.Col-to.Col))
}

// EuclideanDistance returns √(Δrow² + Δcol²).
func EuclideanDistance(from, to grid.Cell) float64 {
	return math.Hypot(float64(from.Row-to.Row), float64(from.Col-to.Col))
}

// Heuristic returns the distance function for m, or nil for an unknown metric.
func (m Metric) Heuristic() Heuristic {
	switch m {
	case Manhattan:
		return ManhattanDistance
	case Euclidean:
		return EuclideanDistance
	default:
		return nil
	}
}

// admissible reports whether m never overestimates under the movement model.
func (m Metric) admissible(diagonal bool) bool {
	return (m == Manhattan && !diagonal) || (m == Euclidean && diagonal)
}
