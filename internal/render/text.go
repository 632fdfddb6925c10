package render

import (
	"strings"

	"mazegen/internal/maze"
)

// Text renders cp as ASCII art. Markers: S start, E end, @ active cell while
// generation is running, . unvisited.
func Text(cp maze.Checkpoint) string {
	v := cp.View
	if v == nil {
		return ""
	}
	rows, cols := v.Rows(), v.Cols()

	var b strings.Builder
	b.Grow((rows*2 + 1) * (cols*4 + 2))
	for r := 0; r < rows; r++ {
		b.WriteByte('+')
		for c := 0; c < cols; c++ {
			if r == 0 || v.Cell(maze.Coord{Row: r, Col: c}).Walls.Has(maze.North) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteByte('\n')

		b.WriteByte('|')
		for c := 0; c < cols; c++ {
			at := maze.Coord{Row: r, Col: c}
			cell := v.Cell(at)
			b.WriteByte(' ')
			b.WriteByte(marker(cp, at, cell))
			b.WriteByte(' ')
			if c == cols-1 || cell.Walls.Has(maze.East) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteByte('+')
	b.WriteString(strings.Repeat("---+", cols))
	b.WriteByte('\n')
	return b.String()
}

// TextGrid renders a finished maze with the default start and end cells.
func TextGrid(v maze.View) string {
	return Text(maze.Checkpoint{
		View:  v,
		Start: maze.Coord{},
		End:   maze.Coord{Row: v.Rows() - 1, Col: v.Cols() - 1},
	})
}

func marker(cp maze.Checkpoint, at maze.Coord, cell maze.Cell) byte {
	switch {
	case len(cp.Path) > 0 && at == cp.Active:
		return '@'
	case at == cp.Start:
		return 'S'
	case at == cp.End:
		return 'E'
	case !cell.Visited:
		return '.'
	}
	return ' '
}
