package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/astargrid/grid"
)

// randomGrid builds an n×n grid where roughly 30% of cells are blocked.
func randomGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	cells := make([]bool, n*n)
	for i := range cells {
		cells[i] = rng.Intn(10) >= 3
	}
	g, err := grid.New(n, n, cells)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	return g
}

// BenchmarkComponents measures Components on a random 1000×1000 grid.
// Complexity: O(R×C×d)
func BenchmarkComponents(b *testing.B) {
	g := randomGrid(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components(false)
	}
}

// BenchmarkParse measures loading the reference maze from text.
func BenchmarkParse(b *testing.B) {
	text := grid.ReferenceMaze().String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.MustParse(text)
	}
}
