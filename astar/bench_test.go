package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/grid"
)

// benchmarkSearch runs corner-to-corner searches on an n×n grid with 20% walls.
// Complexity: O(E log V)
func benchmarkSearch(b *testing.B, n int, metric astar.Metric) {
	rng := rand.New(rand.NewSource(42))
	g := randomGrid(rng, n, n, 0.2)
	start, finish := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: n - 1, Col: n - 1}
	e, err := astar.NewEngine(metric)
	if err != nil {
		b.Fatalf("NewEngine: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Search(g, start, finish)
	}
}

func BenchmarkSearch_Manhattan_100(b *testing.B)  { benchmarkSearch(b, 100, astar.Manhattan) }
func BenchmarkSearch_Euclidean_100(b *testing.B)  { benchmarkSearch(b, 100, astar.Euclidean) }
func BenchmarkSearch_Manhattan_1000(b *testing.B) { benchmarkSearch(b, 1000, astar.Manhattan) }

// BenchmarkReferenceMaze measures the demo query.
func BenchmarkReferenceMaze(b *testing.B) {
	g := grid.ReferenceMaze()
	e, _ := astar.NewEngine(astar.Manhattan)
	start, finish := grid.Cell{Row: 8, Col: 0}, grid.Cell{Row: 0, Col: 10}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Path(g, start, finish)
	}
}
