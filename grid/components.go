package grid

// Components finds all contiguous regions of passable cells. With diagonal
// set, cells touching at a corner are connected as well.
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS discovery order. Components are ordered by their
// first cell in row-major order.
//
// To convert an index back to a Cell, use CellAt.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Components(diagonal bool) [][]int {
	_, comps := g.label(diagonal)

	return comps
}

// Connected reports whether a and b are both passable and lie in the same
// component under the given movement model. A passable cell is connected
// to itself.
func (g *Grid) Connected(a, b Cell, diagonal bool) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	labels, _ := g.label(diagonal)

	return labels[g.Index(a)] == labels[g.Index(b)]
}

// Neighbors returns the in-bounds passable neighbours of c, in the
// fixed direction order N, S, E, W (then NE, NW, SE, SW when diagonal).
func (g *Grid) Neighbors(c Cell, diagonal bool) []Cell {
	offsets := offsets4
	if diagonal {
		offsets = offsets8
	}
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		n := c.Add(d[0], d[1])
		if g.Passable(n) {
			out = append(out, n)
		}
	}

	return out
}

// label assigns every passable cell a component number (blocked cells get -1)
// and returns the components themselves.
func (g *Grid) label(diagonal bool) ([]int, [][]int) {
	labels := make([]int, len(g.passable))
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int

	for i0, ok := range g.passable {
		if !ok || labels[i0] >= 0 {
			continue
		}
		id := len(comps)
		// BFS to collect component
		queue := []int{i0}
		labels[i0] = id
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(g.CellAt(queue[qi]), diagonal) {
				vi := g.Index(n)
				if labels[vi] < 0 {
					labels[vi] = id
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return labels, comps
}
