package grid

// referenceMaze is the 9×11 serpentine maze used by the demo program.
// Row 8 col 0 and row 0 col 10 are the usual endpoints.
const referenceMaze = `
...#...#...
.#.#.#.#.#.
.#.#.#.#.#.
.#.#.#.#.#.
.#.#...#.#.
.#.#.#.#.#.
.#.#.#.#.#.
.#.#.#.#.#.
.#...#...#.
`

// ReferenceMaze returns a fresh copy of the 9×11 demo maze.
func ReferenceMaze() *Grid {
	return MustParse(referenceMaze)
}
