package maze

import (
	"errors"
	"fmt"
)

// ErrNotPerfect is wrapped by every violation Verify reports.
var ErrNotPerfect = errors.New("maze is not perfect")

// Open reports whether the passage from c towards d is open. It is always
// false at the boundary, where there is no neighbor to pass to.
func Open(v View, c Coord, d Direction) bool {
	n := c.Step(d)
	if !inside(v, c) || !inside(v, n) {
		return false
	}
	return !v.Cell(c).Walls.Has(d)
}

// Passages counts open edges between adjacent cells.
func Passages(v View) int {
	n := 0
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			at := Coord{Row: r, Col: c}
			if Open(v, at, East) {
				n++
			}
			if Open(v, at, South) {
				n++
			}
		}
	}
	return n
}

// Verify checks a finished maze: boundary walls absent, walls paired across
// every shared edge, every cell visited, and the open passages forming a
// spanning tree. All violations are joined into the returned error.
func Verify(v View) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrNotPerfect}, args...)...))
	}

	rows, cols := v.Rows(), v.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			at := Coord{Row: r, Col: c}
			cell := v.Cell(at)
			if !cell.Visited {
				fail("cell (%d,%d) never visited", r, c)
			}
			for _, d := range Directions {
				n := at.Step(d)
				if !inside(v, n) {
					if cell.Walls.Has(d) {
						fail("cell (%d,%d) has a %s wall on the boundary", r, c, d)
					}
					continue
				}
				if cell.Walls.Has(d) != v.Cell(n).Walls.Has(d.Opposite()) {
					fail("wall between (%d,%d) and (%d,%d) is one-sided", r, c, n.Row, n.Col)
				}
			}
		}
	}

	if p, want := Passages(v), rows*cols-1; p != want {
		fail("%d open passages, want %d", p, want)
	}
	if reached := reachable(v, Coord{}); reached != rows*cols {
		fail("%d of %d cells reachable from (0,0)", reached, rows*cols)
	}
	return errors.Join(errs...)
}

// reachable counts cells connected to from through open passages.
func reachable(v View, from Coord) int {
	if !inside(v, from) {
		return 0
	}
	seen := make([]bool, v.Rows()*v.Cols())
	seen[from.Row*v.Cols()+from.Col] = true
	queue := []Coord{from}
	count := 0
	for len(queue) > 0 {
		at := queue[0]
		queue = queue[1:]
		count++
		for _, d := range Directions {
			if !Open(v, at, d) {
				continue
			}
			n := at.Step(d)
			i := n.Row*v.Cols() + n.Col
			if seen[i] {
				continue
			}
			seen[i] = true
			queue = append(queue, n)
		}
	}
	return count
}

func inside(v View, c Coord) bool {
	return c.Row >= 0 && c.Row < v.Rows() && c.Col >= 0 && c.Col < v.Cols()
}
