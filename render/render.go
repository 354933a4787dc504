package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/astargrid/grid"
)

// Options controls rendering.
type Options struct {
	// Color enables ANSI escape sequences.
	Color bool
}

// DefaultOptions renders with colours.
func DefaultOptions() Options {
	return Options{Color: true}
}

// FormatPath lists the cells of path joined by " -> ", or "no path" when empty.
func FormatPath(path []grid.Cell) string {
	if len(path) == 0 {
		return "no path"
	}
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}

	return strings.Join(parts, " -> ")
}

// Render writes the path listing followed by the framed grid to w.
func Render(w io.Writer, g *grid.Grid, path []grid.Cell, opts Options) error {
	au := aurora.NewAurora(opts.Color)
	onPath := mapset.NewThreadUnsafeSet()
	for _, c := range path {
		onPath.Add(c)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, FormatPath(path))
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			c := grid.Cell{Row: row, Col: col}
			bw.WriteByte('|')
			switch {
			case onPath.Contains(c):
				fmt.Fprint(bw, pathMark(au, c, path))
			case g.Blocked(c):
				if opts.Color {
					fmt.Fprint(bw, au.BgCyan(" ").Bold())
				} else {
					bw.WriteByte(grid.SymbolBlocked)
				}
			default:
				bw.WriteByte(' ')
			}
		}
		bw.WriteString("|\n")
	}

	return bw.Flush()
}

// pathMark colours c by its role on path.
func pathMark(au aurora.Aurora, c grid.Cell, path []grid.Cell) aurora.Value {
	switch c {
	case path[0]:
		return au.Green("*").Bold()
	case path[len(path)-1]:
		return au.Blue("*").Bold()
	default:
		return au.Red("*").Bold()
	}
}
