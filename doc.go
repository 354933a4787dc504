// Package astargrid is a small toolkit for shortest paths on 2D occupancy
// grids with the A* algorithm.
//
// What is in the box?
//
//	A grid model, a search engine and the glue around them:
//		• grid/  : immutable passable/blocked grid, text loader, connected regions
//		• astar/ : A* engine with Manhattan or Euclidean heuristics, optional diagonals
//		• render/: terminal drawing of a grid and a path
//		• server/: HTTP JSON API over the engine
//		• cmd/astar: command-line demo and server entry point
//
// Quick ASCII example (reference maze, '#' blocked, '*' path):
//
//	|*|*|*|#| | | |#|*|*|*|
//	|*|#|*|#| |#| |#|*|#| |
//	       …
//	|*|#|*|*|*|#|*|*|*|#| |
//
// Minimal usage:
//
//	e, _ := astar.NewEngine(astar.Manhattan)
//	path := e.Path(grid.ReferenceMaze(), grid.Cell{Row: 8, Col: 0}, grid.Cell{Row: 0, Col: 10})
//
//	go get github.com/katalvlaran/astargrid
package astargrid
