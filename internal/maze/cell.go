package maze

import "strings"

// Direction names one side of a cell. The values double as wall bits so a
// direction can be tested against a Walls mask directly.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
)

// Directions lists the four sides in a fixed order (N, E, S, W).
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the side facing d across a shared edge.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return 0
}

// Delta returns the row and column offset of a single step in d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "none"
}

// Walls is a bitmask of the sides of a cell that block passage.
type Walls uint8

// AllWalls has every side set.
const AllWalls = Walls(North | East | South | West)

// Has reports whether the wall on side d is up.
func (w Walls) Has(d Direction) bool { return w&Walls(d) != 0 }

// Count returns the number of walls that are up.
func (w Walls) Count() int {
	n := 0
	for _, d := range Directions {
		if w.Has(d) {
			n++
		}
	}
	return n
}

func (w Walls) String() string {
	var b strings.Builder
	for _, d := range Directions {
		if w.Has(d) {
			b.WriteByte(strings.ToUpper(d.String())[0])
			continue
		}
		b.WriteByte('-')
	}
	return b.String()
}

// Cell is the state of one grid position.
type Cell struct {
	Walls   Walls
	Visited bool
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Step returns the coordinate one cell away in direction d. The result may
// lie outside any particular grid.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}
