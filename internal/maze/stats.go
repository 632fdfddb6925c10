package maze

// Stats summarizes the shape of a maze by how many passages leave each cell.
type Stats struct {
	Cells     int `json:"cells"`
	Passages  int `json:"passages"`
	DeadEnds  int `json:"dead_ends"`
	Corridors int `json:"corridors"`
	Straights int `json:"straights"`
	Junctions int `json:"junctions"`
}

// Collect tallies Stats over v. Corridors are cells with exactly two
// openings; Straights is the subset whose openings face each other.
func Collect(v View) Stats {
	s := Stats{Cells: v.Rows() * v.Cols(), Passages: Passages(v)}
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			at := Coord{Row: r, Col: c}
			var exits []Direction
			for _, d := range Directions {
				if Open(v, at, d) {
					exits = append(exits, d)
				}
			}
			switch len(exits) {
			case 0:
			case 1:
				s.DeadEnds++
			case 2:
				s.Corridors++
				if exits[0].Opposite() == exits[1] {
					s.Straights++
				}
			default:
				s.Junctions++
			}
		}
	}
	return s
}
