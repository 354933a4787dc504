// Package astar_test provides examples demonstrating how to use the A* engine.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package astar_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/grid"
)

// ExampleEngine_Path finds the corridor through the reference maze with the
// Manhattan heuristic and 4-directional movement.
func ExampleEngine_Path() {
	e, err := astar.NewEngine(astar.Manhattan, astar.WithDiagonal(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path := e.Path(grid.ReferenceMaze(), grid.Cell{Row: 8, Col: 0}, grid.Cell{Row: 0, Col: 10})
	fmt.Println("cells:", len(path))
	fmt.Println("first:", path[0], "last:", path[len(path)-1])
	// Output:
	// cells: 43
	// first: [8, 0] last: [0, 10]
}

// ExampleEngine_Search compares straight-only and diagonal movement on an open room.
func ExampleEngine_Search() {
	room, _ := grid.Parse(strings.NewReader(`
....
....
....
`))
	start, finish := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 3}

	straight, _ := astar.NewEngine(astar.Manhattan)
	diagonal, _ := astar.NewEngine(astar.Euclidean)

	for _, e := range []*astar.Engine{straight, diagonal} {
		res := e.Search(room, start, finish)
		fmt.Printf("%s: %v cost=%.3f\n", e.Metric(), res.Path, res.Cost)
	}
	// Output:
	// manhattan: [[0, 0] [0, 1] [0, 2] [0, 3] [1, 3] [2, 3]] cost=5.000
	// euclidean: [[0, 0] [1, 1] [2, 2] [2, 3]] cost=3.828
}

// ExampleEngine_Path_unreachable shows that invalid and unreachable queries
// both come back empty; the grid tells them apart.
func ExampleEngine_Path_unreachable() {
	g := grid.MustParse("..#..\n")
	e, _ := astar.NewEngine(astar.Manhattan)
	start, finish := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 4}

	fmt.Println(len(e.Path(g, start, finish)), g.Passable(finish), g.Connected(start, finish, false))
	fmt.Println(len(e.Path(g, start, grid.Cell{Row: 0, Col: 2})), g.Passable(grid.Cell{Row: 0, Col: 2}))
	// Output:
	// 0 true false
	// 0 false
}
