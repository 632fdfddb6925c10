package maze

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}, {math.MaxInt, math.MaxInt}, {math.MaxInt/2 + 1, 2}, {2, math.MaxInt}} {
		g, err := New(dims[0], dims[1])
		assert.Nil(t, g)
		require.Error(t, err)

		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr), "dims %v", dims)
		assert.Equal(t, dims[0], cfgErr.Rows)
		assert.Equal(t, dims[1], cfgErr.Cols)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

func TestNewBoundaryWalls(t *testing.T) {
	g, err := New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 12, g.Len())

	expect := map[Coord]Walls{
		{0, 0}: Walls(East | South),
		{0, 1}: Walls(East | South | West),
		{0, 3}: Walls(South | West),
		{1, 0}: Walls(North | East | South),
		{1, 2}: AllWalls,
		{2, 0}: Walls(North | East),
		{2, 3}: Walls(North | West),
	}
	for at, want := range expect {
		cell, err := g.CellAt(at)
		require.NoError(t, err)
		assert.Equal(t, want, cell.Walls, "cell %v", at)
		assert.False(t, cell.Visited)
	}
}

func TestSingleCellHasNoWalls(t *testing.T) {
	g, err := New(1, 1)
	require.NoError(t, err)
	cell, err := g.CellAt(Coord{})
	require.NoError(t, err)
	assert.Equal(t, Walls(0), cell.Walls)
}

func TestCellAtOutOfBounds(t *testing.T) {
	g, err := New(2, 3)
	require.NoError(t, err)

	for _, at := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := g.CellAt(at)
		var oob *OutOfBoundsError
		require.True(t, errors.As(err, &oob), "coord %v", at)
		assert.Equal(t, at, oob.Coord)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
	assert.Equal(t, Cell{}, g.Cell(Coord{Row: 9, Col: 9}))
}

func TestNeighbor(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	_, ok := g.Neighbor(Coord{0, 0}, North)
	assert.False(t, ok)
	_, ok = g.Neighbor(Coord{0, 0}, West)
	assert.False(t, ok)

	n, ok := g.Neighbor(Coord{0, 0}, East)
	require.True(t, ok)
	assert.Equal(t, Coord{0, 1}, n)

	n, ok = g.Neighbor(Coord{0, 1}, South)
	require.True(t, ok)
	assert.Equal(t, Coord{1, 1}, n)

	_, ok = g.Neighbor(Coord{1, 1}, South)
	assert.False(t, ok)
}

func TestCarveClearsBothSides(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	g.Carve(Coord{1, 1}, South)
	assert.False(t, g.Cell(Coord{1, 1}).Walls.Has(South))
	assert.False(t, g.Cell(Coord{2, 1}).Walls.Has(North))
	assert.True(t, g.Cell(Coord{1, 1}).Walls.Has(North))
	assert.True(t, Open(g, Coord{2, 1}, North))

	g.Carve(Coord{1, 1}, West)
	assert.False(t, g.Cell(Coord{1, 1}).Walls.Has(West))
	assert.False(t, g.Cell(Coord{1, 0}).Walls.Has(East))
	assert.Equal(t, 2, Passages(g))
}

func TestCarveOffGridPanics(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	assert.Panics(t, func() { g.Carve(Coord{0, 0}, North) })
	assert.Panics(t, func() { g.MarkVisited(Coord{5, 5}) })
}

func TestOpenIsFalseAtBoundary(t *testing.T) {
	g, err := New(1, 1)
	require.NoError(t, err)
	for _, d := range Directions {
		assert.False(t, Open(g, Coord{}, d), "direction %s", d)
	}
}

func TestDirectionHelpers(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		assert.Equal(t, -dr, or)
		assert.Equal(t, -dc, oc)
	}
	assert.Equal(t, "N-S-", Walls(North|South).String())
	assert.Equal(t, 2, Walls(East|West).Count())
}
