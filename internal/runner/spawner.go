package runner

import (
	"math"
	"math/rand"
	"time"
)

// SpawnY is where new items appear: fully above the visible area.
const SpawnY = -ItemHeight

// Spawner decides when, where and what to spawn.
type Spawner struct {
	rng       *rand.Rand
	nextID    int
	lastSpawn time.Duration
	spawned   bool // whether lastSpawn is set for the current run
}

// NewSpawner creates a spawner with a deterministic RNG.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		nextID: 1,
	}
}

// Reset clears the per-run schedule. Item ids keep counting so they are
// never reused within a process.
func (s *Spawner) Reset() {
	s.lastSpawn = 0
	s.spawned = false
}

// Interval returns the minimum time between spawns after elapsed seconds
// of play: a linear ramp from SpawnMax down to the SpawnMin floor.
func Interval(elapsed float64) time.Duration {
	ms := SpawnMax.Milliseconds() - int64(math.Floor(elapsed*10))
	d := time.Duration(ms) * time.Millisecond
	if d < SpawnMin {
		return SpawnMin
	}
	return d
}

// Spawn attempts to create one item at time now. It returns false when the
// interval has not passed yet or when the chosen lane is too crowded near
// the spawn point. The first attempt of a run is never throttled.
func (s *Spawner) Spawn(now time.Duration, elapsed float64, items []Item) (Item, bool) {
	if s.spawned && now-s.lastSpawn < Interval(elapsed) {
		return Item{}, false
	}

	lane := s.rng.Intn(Lanes)
	if !laneClear(items, lane) {
		return Item{}, false
	}

	typ := Obstacle
	if s.rng.Float64() < CoinChance {
		typ = Coin
	}

	it := Item{
		ID:   s.nextID,
		Type: typ,
		Lane: mustLane(lane),
		Y:    SpawnY,
	}
	s.nextID++
	s.lastSpawn = now
	s.spawned = true
	return it, true
}

// laneClear reports whether the highest item in lane leaves at least
// MinSpawnGap item heights below the spawn point.
func laneClear(items []Item, lane int) bool {
	nearest := math.Inf(1)
	for _, it := range items {
		if it.Lane == lane && it.Y < nearest {
			nearest = it.Y
		}
	}
	return nearest-SpawnY >= MinSpawnGap*ItemHeight
}
