package render

import (
	"image/color"
	"testing"

	"mazegen/internal/maze"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carvedTwoByTwo returns a fully visited 2x2 grid with passages
// (0,0)-(0,1), (0,1)-(1,1) and (1,1)-(1,0).
func carvedTwoByTwo(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.New(2, 2)
	require.NoError(t, err)
	g.Carve(maze.Coord{Row: 0, Col: 0}, maze.East)
	g.Carve(maze.Coord{Row: 0, Col: 1}, maze.South)
	g.Carve(maze.Coord{Row: 1, Col: 1}, maze.West)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			g.MarkVisited(maze.Coord{Row: r, Col: c})
		}
	}
	return g
}

func TestTextGrid(t *testing.T) {
	want := "" +
		"+---+---+\n" +
		"| S     |\n" +
		"+---+   +\n" +
		"|     E |\n" +
		"+---+---+\n"
	assert.Equal(t, want, TextGrid(carvedTwoByTwo(t)))
}

func TestTextMarksActiveAndUnvisited(t *testing.T) {
	g, err := maze.New(1, 3)
	require.NoError(t, err)
	g.MarkVisited(maze.Coord{Row: 0, Col: 0})
	g.MarkVisited(maze.Coord{Row: 0, Col: 1})
	g.Carve(maze.Coord{Row: 0, Col: 0}, maze.East)

	cp := maze.Checkpoint{
		View:   g,
		Active: maze.Coord{Row: 0, Col: 1},
		Start:  maze.Coord{},
		End:    maze.Coord{Row: 0, Col: 2},
		Path:   []maze.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
	}
	want := "" +
		"+---+---+---+\n" +
		"| S   @ | E |\n" +
		"+---+---+---+\n"
	assert.Equal(t, want, Text(cp))
}

func pixelAt(buf []byte, l Layout, x, y int) color.RGBA {
	i := 4 * (y*l.Size().W + x)
	return color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
}

func TestLayoutSize(t *testing.T) {
	l := Layout{Rows: 20, Cols: 25, CellPx: 20, Margin: 50}
	size := l.Size()
	assert.Equal(t, 601, size.W)
	assert.Equal(t, 501, size.H)

	x, y := l.Origin(maze.Coord{Row: 1, Col: 2})
	assert.Equal(t, 90, x)
	assert.Equal(t, 70, y)
}

func TestRasterizerDrawsWallsAndMarkers(t *testing.T) {
	g := carvedTwoByTwo(t)
	pal := DefaultPalette()
	l := Layout{Rows: 2, Cols: 2, CellPx: 10, Margin: 2}
	r := NewRasterizer(l, pal)
	buf := r.Render(maze.Checkpoint{View: g, Start: maze.Coord{}, End: maze.Coord{Row: 1, Col: 1}})
	require.Len(t, buf, 4*l.Size().W*l.Size().H)

	// Margin stays background, border is wall-colored.
	assert.Equal(t, pal.Background, pixelAt(buf, l, 0, 0))
	assert.Equal(t, pal.Wall, pixelAt(buf, l, 2, 2))
	assert.Equal(t, pal.Wall, pixelAt(buf, l, 22, 15))

	// (1,0) keeps its north wall; (1,1) had it carved.
	assert.Equal(t, pal.Wall, pixelAt(buf, l, 7, 12))
	assert.Equal(t, pal.Background, pixelAt(buf, l, 17, 12))
	// The wall between (0,0) and (0,1) is open.
	assert.Equal(t, pal.Background, pixelAt(buf, l, 12, 7))

	// Cell interiors.
	assert.Equal(t, pal.Start, pixelAt(buf, l, 7, 7))
	assert.Equal(t, pal.Finished, pixelAt(buf, l, 17, 7))
	assert.Equal(t, pal.End, pixelAt(buf, l, 17, 17))
}

func TestRasterizerHighlightsPath(t *testing.T) {
	g, err := maze.New(1, 4)
	require.NoError(t, err)
	for c := 0; c < 3; c++ {
		g.MarkVisited(maze.Coord{Row: 0, Col: c})
	}
	g.Carve(maze.Coord{Row: 0, Col: 0}, maze.East)
	g.Carve(maze.Coord{Row: 0, Col: 1}, maze.East)

	pal := DefaultPalette()
	pal.Unvisited = color.RGBA{R: 1, G: 2, B: 3, A: 0xff}
	l := Layout{Rows: 1, Cols: 4, CellPx: 8}
	r := NewRasterizer(l, pal)
	buf := r.Render(maze.Checkpoint{
		View:   g,
		Active: maze.Coord{Row: 0, Col: 2},
		Start:  maze.Coord{},
		End:    maze.Coord{Row: 3, Col: 3},
		Path:   []maze.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	})

	assert.Equal(t, pal.Start, pixelAt(buf, l, 4, 4))
	assert.Equal(t, pal.OnPath, pixelAt(buf, l, 12, 4))
	assert.Equal(t, pal.Active, pixelAt(buf, l, 20, 4))
	assert.Equal(t, pal.Unvisited, pixelAt(buf, l, 28, 4))
}

func TestRasterizerIgnoresMismatchedView(t *testing.T) {
	g, err := maze.New(3, 3)
	require.NoError(t, err)
	pal := DefaultPalette()
	l := Layout{Rows: 2, Cols: 2, CellPx: 4}
	buf := NewRasterizer(l, pal).Render(maze.Checkpoint{View: g})
	assert.Equal(t, pal.Background, pixelAt(buf, l, 4, 4))
}
