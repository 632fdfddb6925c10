package ui

import "fmt"

// Status is the generator progress shown on the HUD.
type Status struct {
	Seed     int64
	Rows     int
	Cols     int
	Step     int
	Carved   int
	Depth    int
	MaxDepth int
	Rate     int
	Paused   bool
	Done     bool
}

// Lines formats the status as HUD rows.
func (s Status) Lines() []string {
	total := s.Rows * s.Cols
	pct := 0
	if total > 0 {
		pct = s.Step * 100 / total
	}
	state := "carving"
	switch {
	case s.Done:
		state = "done"
	case s.Paused:
		state = "paused"
	}
	rate := fmt.Sprintf("%d/s", s.Rate)
	if s.Rate == 0 {
		rate = "unpaced"
	}
	return []string{
		fmt.Sprintf("Maze %dx%d", s.Rows, s.Cols),
		fmt.Sprintf("seed   %d", s.Seed),
		fmt.Sprintf("state  %s", state),
		fmt.Sprintf("cells  %d/%d (%d%%)", s.Step, total, pct),
		fmt.Sprintf("carved %d", s.Carved),
		fmt.Sprintf("depth  %d (max %d)", s.Depth, s.MaxDepth),
		fmt.Sprintf("rate   %s", rate),
	}
}

// Help lists the key bindings.
func Help() []string {
	return []string{
		"space pause  n step",
		"r restart  s new seed",
		"+/- rate  q quit",
	}
}
