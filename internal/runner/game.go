package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Game holds the state of the lane runner: the lifecycle phase, the current
// run and the in-memory high score. It is not safe for concurrent use; the
// engine driver owns it and serializes every call.
type Game struct {
	phase     Phase
	lane      int
	items     []Item
	score     int
	highScore int
	speed     float64
	elapsed   float64 // seconds since run start
	coins     int     // coins collected this run
	frames    int     // steps executed this run
	lastFrame time.Duration
	hasFrame  bool // whether lastFrame is set for the current run
	spawner   *Spawner
}

// New creates a game in the Ready phase.
func New(seed int64) *Game {
	g := &Game{
		items:   make([]Item, 0, 16),
		spawner: NewSpawner(seed),
	}
	g.resetRun()
	g.phase = PhaseReady
	return g
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Running reports whether steps and lane changes currently have effect.
func (g *Game) Running() bool {
	return g.phase == PhaseRunning
}

// Start begins a new run from any phase. Calling it twice in a row yields
// the same state as calling it once.
func (g *Game) Start() {
	g.resetRun()
	g.phase = PhaseRunning
}

// resetRun zeroes everything scoped to a single run. The high score and
// the id counter survive.
func (g *Game) resetRun() {
	g.lane = CenterLane
	g.items = g.items[:0]
	g.score = 0
	g.speed = BaseSpeed
	g.elapsed = 0
	g.coins = 0
	g.frames = 0
	g.lastFrame = 0
	g.hasFrame = false
	g.spawner.Reset()
}

// MoveLeft shifts the car one lane left. Ignored outside a run and at the
// left edge.
func (g *Game) MoveLeft() {
	g.moveBy(-1)
}

// MoveRight shifts the car one lane right. Ignored outside a run and at the
// right edge.
func (g *Game) MoveRight() {
	g.moveBy(1)
}

func (g *Game) moveBy(d int) {
	if !g.Running() {
		return
	}
	g.lane = core.Clamp(g.lane+d, 0, Lanes-1)
}

// Apply routes a gameplay action to the matching command. Non-gameplay
// actions are ignored.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.MoveLeft()
	case core.ActionRight:
		g.MoveRight()
	case core.ActionStart:
		g.Start()
	}
}

// Step advances the simulation to timestamp now and returns the resulting
// snapshot. Timestamps must be monotonic within a run. Outside the Running
// phase Step does nothing.
func (g *Game) Step(now time.Duration) Snapshot {
	if !g.Running() {
		return g.Snapshot()
	}
	mustLane(g.lane)

	var delta float64
	if g.hasFrame {
		delta = (now - g.lastFrame).Seconds()
	}
	g.lastFrame = now
	g.hasFrame = true
	g.frames++

	g.elapsed += delta
	g.speed += SpeedRamp * delta
	distance := g.speed * delta

	scoreDelta, crashed := g.advance(distance)

	g.score += scoreDelta + int(math.Floor(delta*SurvivalRate))

	if crashed {
		g.phase = PhaseGameOver
		if g.score > g.highScore {
			g.highScore = g.score
		}
		return g.Snapshot()
	}

	if it, ok := g.spawner.Spawn(now, g.elapsed, g.items); ok {
		g.items = append(g.items, it)
	}
	return g.Snapshot()
}

// advance moves every item down by distance and resolves contact with the
// car in a single pass. A crash does not stop the pass: coins touched in
// the same frame still count.
func (g *Game) advance(distance float64) (scoreDelta int, crashed bool) {
	kept := g.items[:0]
	for _, it := range g.items {
		it.Y += distance

		if it.Y > ViewHeight+ItemHeight {
			continue
		}
		if it.Lane == g.lane && it.Span().Overlaps(carSpan) {
			switch it.Type {
			case Obstacle:
				crashed = true
			case Coin:
				scoreDelta += CoinBonus
				g.coins++
			}
			continue
		}
		kept = append(kept, it)
	}
	g.items = kept
	return scoreDelta, crashed
}

// Snapshot returns a read-only copy of the state for presentation.
func (g *Game) Snapshot() Snapshot {
	items := make([]Item, len(g.items))
	copy(items, g.items)
	return Snapshot{
		Phase:      g.phase,
		Score:      g.score,
		HighScore:  g.highScore,
		Speed:      int(math.Round(g.speed)),
		PlayerLane: g.lane,
		Items:      items,
		Elapsed:    g.elapsed,
		Coins:      g.coins,
		Frame:      g.frames,
	}
}
