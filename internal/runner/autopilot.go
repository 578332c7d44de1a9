package runner

import "github.com/vovakirdan/lane-runner/internal/core"

// Autopilot steers the car for headless runs. It looks a fixed amount of
// time ahead in each lane and moves away from obstacles, preferring lanes
// that hold a coin.
type Autopilot struct {
	// Lookahead is how far ahead to scan, in seconds at the current speed.
	Lookahead float64
}

// NewAutopilot returns an autopilot with a reaction window that comfortably
// covers one lane change per frame at the starting speed.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: 0.45}
}

type laneView struct {
	danger bool
	coin   bool
}

// Decide returns the action to take for the given snapshot.
func (a *Autopilot) Decide(s Snapshot) core.Action {
	if s.Phase != PhaseRunning {
		return core.ActionNone
	}

	lanes := a.scan(s)
	cur := s.PlayerLane

	if !lanes[cur].danger {
		// Drift toward an adjacent coin when that lane is safe.
		for _, l := range []int{cur - 1, cur + 1} {
			if l >= 0 && l < Lanes && lanes[l].coin && !lanes[l].danger && !lanes[cur].coin {
				return towards(cur, l)
			}
		}
		return core.ActionNone
	}

	best := -1
	for _, l := range []int{cur - 1, cur + 1} {
		if l < 0 || l >= Lanes || lanes[l].danger {
			continue
		}
		if best == -1 || (lanes[l].coin && !lanes[best].coin) {
			best = l
		}
	}
	if best == -1 {
		// Both neighbours blocked: head for the far lane if it is open.
		for l := 0; l < Lanes; l++ {
			if !lanes[l].danger {
				return towards(cur, l)
			}
		}
		return core.ActionNone
	}
	return towards(cur, best)
}

func (a *Autopilot) scan(s Snapshot) [Lanes]laneView {
	var lanes [Lanes]laneView
	horizon := carSpan.Top - float64(s.Speed)*a.Lookahead
	for lane := range lanes {
		for _, it := range s.ItemsIn(lane) {
			if it.Y+ItemHeight <= horizon || it.Y >= carSpan.Bottom {
				continue
			}
			switch it.Type {
			case Obstacle:
				lanes[lane].danger = true
			case Coin:
				lanes[lane].coin = true
			}
		}
	}
	return lanes
}

func towards(from, to int) core.Action {
	switch {
	case to < from:
		return core.ActionLeft
	case to > from:
		return core.ActionRight
	default:
		return core.ActionNone
	}
}
