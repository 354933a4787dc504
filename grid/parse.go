package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a text map from r. Each non-empty line is one row;
// '.', ' ' and '1' are passable, '#' and '0' are blocked, so a line of
// spaces is a row of free cells. Only empty lines are skipped.
// Trailing '\r' is stripped so CRLF files load unchanged.
//
// Returns ErrEmptyGrid for input without rows, ErrNonRectangular for
// ragged rows and ErrBadRune (wrapped with line and column) for unknown symbols.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	var (
		cells []bool
		cols  int
		rows  int
		line  int
	)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		runes := []rune(text)
		if rows == 0 {
			cols = len(runes)
		} else if len(runes) != cols {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, line, len(runes), cols)
		}
		for col, ch := range runes {
			switch ch {
			case SymbolFree, ' ', '1':
				cells = append(cells, true)
			case SymbolBlocked, '0':
				cells = append(cells, false)
			default:
				return nil, fmt.Errorf("%w %q at line %d, column %d", ErrBadRune, ch, line, col+1)
			}
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read map: %w", err)
	}
	if rows == 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{rows: rows, cols: cols, passable: cells}, nil
}

// MustParse is like Parse over a string but panics on error.
// Intended for fixtures and package-level maps.
func MustParse(s string) *Grid {
	g, err := Parse(strings.NewReader(s))
	if err != nil {
		panic(err)
	}

	return g
}
