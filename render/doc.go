// Package render draws a grid.Grid and a path on a terminal.
//
// The first line lists the path as "[r, c] -> [r, c] -> ...". Each grid row
// follows, every cell framed by '|':
//
//   - start:    '*' (bold green)
//   - finish:   '*' (bold blue)
//   - on path:  '*' (bold red)
//   - blocked:  ' ' on a cyan background, or '#' without colours
//   - free:     ' '
package render
