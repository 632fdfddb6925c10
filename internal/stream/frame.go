package stream

import "mazegen/internal/maze"

const visitedBit = 1 << 4

// Frame is one published checkpoint. Cells holds one byte per cell in
// row-major order: the low nibble is the wall mask (N=1 E=2 S=4 W=8) and bit 4
// is the visited flag. It is base64 encoded on the wire.
type Frame struct {
	Session string       `json:"session"`
	Step    int          `json:"step"`
	Carved  int          `json:"carved"`
	Rows    int          `json:"rows"`
	Cols    int          `json:"cols"`
	Active  *maze.Coord  `json:"active,omitempty"`
	Start   maze.Coord   `json:"start"`
	End     maze.Coord   `json:"end"`
	Path    []maze.Coord `json:"path"`
	Cells   []byte       `json:"cells"`
	Done    bool         `json:"done"`
}

// NewFrame snapshots cp. The frame owns its data, so it stays valid after the
// generator moves on.
func NewFrame(session string, cp maze.Checkpoint, done bool) Frame {
	v := cp.View
	f := Frame{
		Session: session,
		Step:    cp.Step,
		Carved:  cp.Carved,
		Rows:    v.Rows(),
		Cols:    v.Cols(),
		Start:   cp.Start,
		End:     cp.End,
		Path:    append([]maze.Coord{}, cp.Path...),
		Cells:   make([]byte, 0, v.Rows()*v.Cols()),
		Done:    done,
	}
	if !done && len(cp.Path) > 0 {
		active := cp.Active
		f.Active = &active
	}
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			cell := v.Cell(maze.Coord{Row: r, Col: c})
			b := byte(cell.Walls)
			if cell.Visited {
				b |= visitedBit
			}
			f.Cells = append(f.Cells, b)
		}
	}
	return f
}

// Grid exposes the frame's cells as a read-only maze view.
func (f Frame) Grid() maze.View {
	return frameGrid{rows: f.Rows, cols: f.Cols, cells: f.Cells}
}

type frameGrid struct {
	rows, cols int
	cells      []byte
}

func (g frameGrid) Rows() int { return g.rows }

func (g frameGrid) Cols() int { return g.cols }

func (g frameGrid) Cell(c maze.Coord) maze.Cell {
	if c.Row < 0 || c.Row >= g.rows || c.Col < 0 || c.Col >= g.cols {
		return maze.Cell{}
	}
	i := c.Row*g.cols + c.Col
	if i >= len(g.cells) {
		return maze.Cell{}
	}
	b := g.cells[i]
	return maze.Cell{Walls: maze.Walls(b & 0x0f), Visited: b&visitedBit != 0}
}
