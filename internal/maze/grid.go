package maze

import "math"

// View is the read-only face of a Grid handed to renderers.
type View interface {
	Rows() int
	Cols() int
	// Cell returns a copy of the cell at c. Out-of-range coordinates yield
	// the zero Cell.
	Cell(c Coord) Cell
}

// Grid stores rows*cols cells in row-major order.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// New allocates a grid with every interior-facing wall up, every
// boundary-facing wall absent and no cell visited. Dimensions whose product
// overflows int are rejected like non-positive ones.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows > math.MaxInt/cols {
		return nil, &ConfigError{Rows: rows, Cols: cols}
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			w := AllWalls
			if r == 0 {
				w &^= Walls(North)
			}
			if r == rows-1 {
				w &^= Walls(South)
			}
			if c == 0 {
				w &^= Walls(West)
			}
			if c == cols-1 {
				w &^= Walls(East)
			}
			g.cells[g.index(Coord{Row: r, Col: c})] = Cell{Walls: w}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Contains reports whether c addresses a cell of g.
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Start is the top-left cell.
func (g *Grid) Start() Coord { return Coord{} }

// End is the bottom-right cell.
func (g *Grid) End() Coord { return Coord{Row: g.rows - 1, Col: g.cols - 1} }

func (g *Grid) index(c Coord) int { return c.Row*g.cols + c.Col }

// CellAt returns a copy of the cell at c.
func (g *Grid) CellAt(c Coord) (Cell, error) {
	if !g.Contains(c) {
		return Cell{}, g.outOfBounds(c)
	}
	return g.cells[g.index(c)], nil
}

// Cell implements View.
func (g *Grid) Cell(c Coord) Cell {
	if !g.Contains(c) {
		return Cell{}
	}
	return g.cells[g.index(c)]
}

// Neighbor returns the coordinate one step from c in direction d, or false
// when that step leaves the grid.
func (g *Grid) Neighbor(c Coord, d Direction) (Coord, bool) {
	n := c.Step(d)
	if !g.Contains(n) {
		return Coord{}, false
	}
	return n, true
}

// Carve opens the passage between c and its neighbor in direction d,
// clearing both sides of the shared edge. Whether carving is allowed is the
// caller's decision; an off-grid cell or neighbor panics.
func (g *Grid) Carve(c Coord, d Direction) {
	n := c.Step(d)
	a, b := g.mustIndex(c), g.mustIndex(n)
	g.cells[a].Walls &^= Walls(d)
	g.cells[b].Walls &^= Walls(d.Opposite())
}

// MarkVisited flags the cell at c as entered.
func (g *Grid) MarkVisited(c Coord) {
	g.cells[g.mustIndex(c)].Visited = true
}

// Visited reports whether the cell at c has been entered.
func (g *Grid) Visited(c Coord) bool {
	return g.cells[g.mustIndex(c)].Visited
}

func (g *Grid) mustIndex(c Coord) int {
	if !g.Contains(c) {
		panic(g.outOfBounds(c))
	}
	return g.index(c)
}

func (g *Grid) outOfBounds(c Coord) *OutOfBoundsError {
	return &OutOfBoundsError{Coord: c, Rows: g.rows, Cols: g.cols}
}
