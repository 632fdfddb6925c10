package render

import (
	"image/color"

	"mazegen/internal/core"
	"mazegen/internal/maze"
)

// Palette colors the parts of a maze frame.
type Palette struct {
	Background color.RGBA
	Wall       color.RGBA
	Unvisited  color.RGBA
	OnPath     color.RGBA
	Finished   color.RGBA
	Active     color.RGBA
	Start      color.RGBA
	End        color.RGBA
}

// DefaultPalette returns the classic scheme: white floor, near-black walls,
// pale green for cells still on the stack, orange for the active cell, green
// start and red end.
func DefaultPalette() Palette {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	return Palette{
		Background: white,
		Wall:       color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		Unvisited:  white,
		OnPath:     color.RGBA{R: 0x98, G: 0xfb, B: 0x98, A: 0xff},
		Finished:   white,
		Active:     color.RGBA{R: 0xee, G: 0x44, B: 0x00, A: 0xff},
		Start:      color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
		End:        color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	}
}

// Layout maps grid cells onto pixels.
type Layout struct {
	Rows, Cols int
	CellPx     int
	Margin     int
}

// Size returns the pixel dimensions of a full frame, including the margin
// and the one-pixel closing edge of the border.
func (l Layout) Size() core.Size {
	return core.Size{
		W: 2*l.Margin + l.Cols*l.CellPx + 1,
		H: 2*l.Margin + l.Rows*l.CellPx + 1,
	}
}

// Origin returns the top-left pixel of cell c.
func (l Layout) Origin(c maze.Coord) (x, y int) {
	return l.Margin + c.Col*l.CellPx, l.Margin + c.Row*l.CellPx
}

// Rasterizer turns checkpoints into RGBA pixel buffers.
type Rasterizer struct {
	layout  Layout
	palette Palette
	buf     []byte
	onPath  []bool
}

// NewRasterizer allocates buffers for frames of the given layout.
func NewRasterizer(layout Layout, palette Palette) *Rasterizer {
	if layout.CellPx < 3 {
		layout.CellPx = 3
	}
	if layout.Margin < 0 {
		layout.Margin = 0
	}
	size := layout.Size()
	return &Rasterizer{
		layout:  layout,
		palette: palette,
		buf:     make([]byte, 4*size.W*size.H),
		onPath:  make([]bool, layout.Rows*layout.Cols),
	}
}

// Layout returns the effective layout.
func (r *Rasterizer) Layout() Layout { return r.layout }

// Render draws cp into the internal buffer and returns it. The active cell is
// highlighted only while cp.Path is non-empty, so a finished maze can be drawn
// by passing a checkpoint without a path. The returned slice is reused by the
// next call.
func (r *Rasterizer) Render(cp maze.Checkpoint) []byte {
	l := r.layout
	v := cp.View
	if v == nil || v.Rows() != l.Rows || v.Cols() != l.Cols {
		fillRGBA(r.buf, r.palette.Background)
		return r.buf
	}

	for i := range r.onPath {
		r.onPath[i] = false
	}
	for _, c := range cp.Path {
		r.onPath[c.Row*l.Cols+c.Col] = true
	}

	fillRGBA(r.buf, r.palette.Background)
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			at := maze.Coord{Row: row, Col: col}
			cell := v.Cell(at)
			ox, oy := l.Origin(at)
			r.fillRect(ox+1, oy+1, l.CellPx-1, l.CellPx-1, r.cellColor(cp, at, cell))
			if cell.Walls.Has(maze.North) {
				r.fillRect(ox, oy, l.CellPx+1, 1, r.palette.Wall)
			}
			if cell.Walls.Has(maze.West) {
				r.fillRect(ox, oy, 1, l.CellPx+1, r.palette.Wall)
			}
		}
	}

	// The grid carries no boundary walls, so the border is drawn separately.
	w, h := l.Cols*l.CellPx, l.Rows*l.CellPx
	r.fillRect(l.Margin, l.Margin, w+1, 1, r.palette.Wall)
	r.fillRect(l.Margin, l.Margin+h, w+1, 1, r.palette.Wall)
	r.fillRect(l.Margin, l.Margin, 1, h+1, r.palette.Wall)
	r.fillRect(l.Margin+w, l.Margin, 1, h+1, r.palette.Wall)
	return r.buf
}

func (r *Rasterizer) cellColor(cp maze.Checkpoint, at maze.Coord, cell maze.Cell) color.RGBA {
	switch {
	case at == cp.Start:
		return r.palette.Start
	case at == cp.End:
		return r.palette.End
	case len(cp.Path) > 0 && at == cp.Active:
		return r.palette.Active
	case !cell.Visited:
		return r.palette.Unvisited
	case r.onPath[at.Row*r.layout.Cols+at.Col]:
		return r.palette.OnPath
	}
	return r.palette.Finished
}

func (r *Rasterizer) fillRect(x, y, w, h int, col color.RGBA) {
	stride := r.layout.Size().W
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			setRGBA(r.buf, py*stride+px, col)
		}
	}
}

// fillRGBA sets every pixel in buf to col.
func fillRGBA(buf []byte, col color.RGBA) {
	for i := 0; i < len(buf)/4; i++ {
		setRGBA(buf, i, col)
	}
}

func setRGBA(buf []byte, i int, col color.RGBA) {
	base := i * 4
	if base < 0 || base+3 >= len(buf) {
		return
	}
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
