package runner

// Snapshot is the per-frame view of the game handed to the front-end.
type Snapshot struct {
	Phase      Phase
	Score      int
	HighScore  int
	Speed      int // rounded for display
	PlayerLane int
	Items      []Item
	Elapsed    float64 // seconds into the run
	Coins      int     // coins collected this run
	Frame      int     // steps executed this run
}

// ItemsIn returns the items in the given lane.
func (s Snapshot) ItemsIn(lane int) []Item {
	var out []Item
	for _, it := range s.Items {
		if it.Lane == lane {
			out = append(out, it)
		}
	}
	return out
}
