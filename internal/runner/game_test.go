package runner

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/lane-runner/internal/core"
)

const frame100 = 100 * time.Millisecond

// newRunningGame starts a run, records the baseline frame at t=0 and clears
// whatever the first spawn produced so tests can place items by hand.
func newRunningGame(t *testing.T) *Game {
	t.Helper()
	g := New(1)
	g.Start()
	g.Step(0)
	g.items = g.items[:0]
	return g
}

func TestNewGameIsReady(t *testing.T) {
	g := New(1)

	if g.Phase() != PhaseReady {
		t.Errorf("New game phase = %s, expected ready", g.Phase())
	}

	snap := g.Step(time.Second)
	if snap.Frame != 0 {
		t.Error("Step should not run in the Ready phase")
	}
}

func TestStartResetsRun(t *testing.T) {
	g := New(1)
	g.Start()

	snap := g.Snapshot()
	if snap.Phase != PhaseRunning {
		t.Errorf("Phase = %s, expected running", snap.Phase)
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, expected 0", snap.Score)
	}
	if snap.Speed != BaseSpeed {
		t.Errorf("Speed = %d, expected %v", snap.Speed, BaseSpeed)
	}
	if snap.Elapsed != 0 {
		t.Errorf("Elapsed = %f, expected 0", snap.Elapsed)
	}
	if len(snap.Items) != 0 {
		t.Errorf("Items = %d, expected none", len(snap.Items))
	}
	if snap.PlayerLane != 1 {
		t.Errorf("PlayerLane = %d, expected 1", snap.PlayerLane)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	g := New(5)
	g.Start()
	for i := 0; i < 30; i++ {
		g.Step(time.Duration(i) * frame100)
	}
	g.MoveLeft()

	g.Start()
	once := g.Snapshot()
	g.Start()
	twice := g.Snapshot()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Second Start changed state:\nonce:  %+v\ntwice: %+v", once, twice)
	}

	fresh := New(5)
	fresh.Start()
	want := fresh.Snapshot()
	want.HighScore = once.HighScore
	if !reflect.DeepEqual(once, want) {
		t.Errorf("Restart differs from a fresh start:\ngot:      %+v\nexpected: %+v", once, want)
	}
}

func TestLaneClamping(t *testing.T) {
	g := New(1)
	g.Start()

	for i := 0; i < 5; i++ {
		g.MoveLeft()
		if g.lane < 0 || g.lane >= Lanes {
			t.Fatalf("Lane %d out of range after MoveLeft", g.lane)
		}
	}
	if g.lane != 0 {
		t.Errorf("Lane = %d after moving left past the edge, expected 0", g.lane)
	}

	for i := 0; i < 5; i++ {
		g.MoveRight()
		if g.lane < 0 || g.lane >= Lanes {
			t.Fatalf("Lane %d out of range after MoveRight", g.lane)
		}
	}
	if g.lane != Lanes-1 {
		t.Errorf("Lane = %d after moving right past the edge, expected %d", g.lane, Lanes-1)
	}
}

func TestMovesIgnoredOutsideRun(t *testing.T) {
	g := New(1)

	g.MoveLeft()
	if g.lane != CenterLane {
		t.Errorf("MoveLeft in Ready changed lane to %d", g.lane)
	}

	g.phase = PhaseGameOver
	g.MoveRight()
	if g.lane != CenterLane {
		t.Errorf("MoveRight in GameOver changed lane to %d", g.lane)
	}
}

func TestApplyRoutesActions(t *testing.T) {
	g := New(1)

	g.Apply(core.ActionStart)
	if !g.Running() {
		t.Fatal("ActionStart should start a run")
	}
	g.Apply(core.ActionLeft)
	if g.lane != 0 {
		t.Errorf("ActionLeft: lane = %d, expected 0", g.lane)
	}
	g.Apply(core.ActionRight)
	g.Apply(core.ActionRight)
	if g.lane != 2 {
		t.Errorf("ActionRight x2: lane = %d, expected 2", g.lane)
	}
	g.Apply(core.ActionQuit)
	if !g.Running() || g.lane != 2 {
		t.Error("Non-gameplay actions should be ignored")
	}
}

func TestFirstFrameHasZeroDelta(t *testing.T) {
	g := New(1)
	g.Start()

	snap := g.Step(42 * time.Second)
	if snap.Elapsed != 0 {
		t.Errorf("Elapsed after first frame = %f, expected 0", snap.Elapsed)
	}
	if g.speed != BaseSpeed {
		t.Errorf("Speed after first frame = %f, expected %v", g.speed, BaseSpeed)
	}
	if snap.Score != 0 {
		t.Errorf("Score after first frame = %d, expected 0", snap.Score)
	}
	if snap.Frame != 1 {
		t.Errorf("Frame = %d, expected 1", snap.Frame)
	}
}

func TestStepWorkedExample(t *testing.T) {
	g := newRunningGame(t)
	g.items = append(g.items, Item{ID: 500, Type: Obstacle, Lane: 0, Y: 0})

	snap := g.Step(frame100)

	if math.Abs(g.speed-361.0) > 1e-9 {
		t.Errorf("Speed = %f, expected 361.0", g.speed)
	}
	if math.Abs(snap.Elapsed-0.1) > 1e-9 {
		t.Errorf("Elapsed = %f, expected 0.1", snap.Elapsed)
	}
	if len(snap.Items) != 1 {
		t.Fatalf("Items = %d, expected 1", len(snap.Items))
	}
	if math.Abs(snap.Items[0].Y-36.1) > 1e-9 {
		t.Errorf("Item Y = %f, expected 36.1", snap.Items[0].Y)
	}
	if snap.Score != 3 {
		t.Errorf("Score = %d, expected survival bonus 3", snap.Score)
	}
	if snap.Speed != 361 {
		t.Errorf("Rounded speed = %d, expected 361", snap.Speed)
	}
}

func TestObstacleCollisionEndsRun(t *testing.T) {
	g := newRunningGame(t)
	// Bottom edge touches the car's top edge; one frame later they overlap.
	g.items = append(g.items, Item{ID: 500, Type: Obstacle, Lane: 1, Y: carSpan.Top - ItemHeight})

	snap := g.Step(frame100)

	if snap.Phase != PhaseGameOver {
		t.Fatalf("Phase = %s, expected game_over", snap.Phase)
	}
	if len(snap.Items) != 0 {
		t.Errorf("Colliding obstacle should be removed, items = %+v", snap.Items)
	}
	if snap.HighScore != snap.Score {
		t.Errorf("HighScore = %d, expected %d", snap.HighScore, snap.Score)
	}

	after := g.Step(2 * frame100)
	if after.Frame != snap.Frame {
		t.Error("No step may run after game over")
	}
}

func TestObstacleInOtherLaneIsHarmless(t *testing.T) {
	g := newRunningGame(t)
	g.items = append(g.items, Item{ID: 500, Type: Obstacle, Lane: 2, Y: carSpan.Top - ItemHeight})

	snap := g.Step(frame100)

	if snap.Phase != PhaseRunning {
		t.Fatalf("Phase = %s, expected running", snap.Phase)
	}
	if len(snap.Items) != 1 {
		t.Errorf("Obstacle in another lane should be kept, items = %+v", snap.Items)
	}
}

func TestCoinCollection(t *testing.T) {
	g := newRunningGame(t)
	g.items = append(g.items, Item{ID: 500, Type: Coin, Lane: 1, Y: carSpan.Top - ItemHeight})

	snap := g.Step(frame100)

	if snap.Phase != PhaseRunning {
		t.Fatalf("Coin pickup should not end the run, phase = %s", snap.Phase)
	}
	if len(snap.Items) != 0 {
		t.Errorf("Collected coin should be removed, items = %+v", snap.Items)
	}
	if snap.Score != CoinBonus+3 {
		t.Errorf("Score = %d, expected %d", snap.Score, CoinBonus+3)
	}
	if snap.Coins != 1 {
		t.Errorf("Coins = %d, expected 1", snap.Coins)
	}
}

func TestCoinScoresInCrashFrame(t *testing.T) {
	g := newRunningGame(t)
	g.items = append(g.items,
		Item{ID: 500, Type: Obstacle, Lane: 1, Y: carSpan.Top - ItemHeight},
		Item{ID: 501, Type: Coin, Lane: 1, Y: carSpan.Top},
		Item{ID: 502, Type: Obstacle, Lane: 0, Y: 100},
	)

	snap := g.Step(frame100)

	if snap.Phase != PhaseGameOver {
		t.Fatalf("Phase = %s, expected game_over", snap.Phase)
	}
	if snap.Score != CoinBonus+3 {
		t.Errorf("Score = %d, expected coin and survival bonus %d", snap.Score, CoinBonus+3)
	}
	if snap.HighScore != CoinBonus+3 {
		t.Errorf("HighScore = %d, expected %d", snap.HighScore, CoinBonus+3)
	}
	if len(snap.Items) != 1 || snap.Items[0].ID != 502 {
		t.Errorf("Only the unrelated obstacle should remain, items = %+v", snap.Items)
	}
}

func TestOffscreenItemDiscarded(t *testing.T) {
	g := newRunningGame(t)
	g.items = append(g.items, Item{ID: 500, Type: Coin, Lane: 0, Y: ViewHeight + ItemHeight - 10})

	snap := g.Step(frame100)

	if len(snap.Items) != 0 {
		t.Errorf("Off-screen item should be discarded, items = %+v", snap.Items)
	}
	if snap.Score != 3 {
		t.Errorf("Off-screen coin must not score, score = %d", snap.Score)
	}
}

func TestObstacleReachesCar(t *testing.T) {
	g := New(1)
	g.Start()
	g.MoveLeft()
	g.Step(0)
	g.items = append(g.items[:0], Item{ID: 1000, Type: Obstacle, Lane: 0, Y: -ItemHeight})

	for i := 1; i < 200; i++ {
		snap := g.Step(time.Duration(i) * frame100)

		var found *Item
		for j := range snap.Items {
			if snap.Items[j].ID == 1000 {
				found = &snap.Items[j]
			}
		}

		if found == nil {
			if snap.Phase != PhaseGameOver {
				t.Fatalf("Obstacle vanished without ending the run (phase %s)", snap.Phase)
			}
			return
		}
		if snap.Phase != PhaseRunning {
			t.Fatalf("Run ended at frame %d before the obstacle reached the car", i)
		}
		if found.Y+ItemHeight > carSpan.Top {
			t.Fatalf("Obstacle overlaps the car at y=%f but was not resolved", found.Y)
		}
	}
	t.Fatal("Obstacle never reached the car")
}

func TestHighScoreIsMaximum(t *testing.T) {
	g := New(1)

	crashWithCoins := func(coins int, start time.Duration) int {
		g.Start()
		g.Step(start)
		g.items = g.items[:0]
		g.items = append(g.items, Item{ID: 900, Type: Obstacle, Lane: g.lane, Y: carSpan.Top - ItemHeight})
		for i := 0; i < coins; i++ {
			g.items = append(g.items, Item{ID: 901 + i, Type: Coin, Lane: g.lane, Y: carSpan.Top - float64(i)})
		}
		snap := g.Step(start + frame100)
		if snap.Phase != PhaseGameOver {
			t.Fatalf("Expected crash, phase = %s", snap.Phase)
		}
		return snap.Score
	}

	first := crashWithCoins(1, 0)
	if g.highScore != first {
		t.Errorf("HighScore = %d after first run, expected %d", g.highScore, first)
	}

	second := crashWithCoins(0, time.Minute)
	if second >= first {
		t.Fatalf("Test setup: second score %d should be lower than %d", second, first)
	}
	if g.highScore != first {
		t.Errorf("HighScore = %d after a worse run, expected %d", g.highScore, first)
	}

	third := crashWithCoins(2, 2*time.Minute)
	if g.highScore != third {
		t.Errorf("HighScore = %d after a better run, expected %d", g.highScore, third)
	}
}

// TestLongRunInvariants plays many frames with the autopilot and checks the
// run invariants after every step.
func TestLongRunInvariants(t *testing.T) {
	g := New(2024)
	pilot := NewAutopilot()
	g.Start()

	seen := make(map[int]bool)
	prevScore, prevSpeed := 0, BaseSpeed
	runs := 1

	for i := 0; i < 20000; i++ {
		now := time.Duration(i) * (time.Second / 60)
		snap := g.Step(now)

		if snap.Phase == PhaseRunning {
			if snap.Score < prevScore {
				t.Fatalf("Score decreased: %d -> %d", prevScore, snap.Score)
			}
			if g.speed < prevSpeed {
				t.Fatalf("Speed decreased: %f -> %f", prevSpeed, g.speed)
			}
		}
		prevScore, prevSpeed = snap.Score, g.speed

		for _, it := range snap.Items {
			if it.Lane < 0 || it.Lane >= Lanes {
				t.Fatalf("Item %d has invalid lane %d", it.ID, it.Lane)
			}
			if seen[it.ID] {
				continue
			}
			seen[it.ID] = true
			for _, other := range snap.ItemsIn(it.Lane) {
				if other.ID != it.ID && other.Y-it.Y < MinSpawnGap*ItemHeight {
					t.Fatalf("Item %d spawned %f units above item %d", it.ID, other.Y-it.Y, other.ID)
				}
			}
		}

		if snap.Phase == PhaseGameOver {
			if snap.HighScore < snap.Score {
				t.Fatalf("HighScore %d below final score %d", snap.HighScore, snap.Score)
			}
			g.Start()
			runs++
			prevScore, prevSpeed = 0, BaseSpeed
			continue
		}

		g.Apply(pilot.Decide(snap))
		if g.lane < 0 || g.lane >= Lanes {
			t.Fatalf("Player lane %d out of range", g.lane)
		}
	}

	if len(seen) == 0 {
		t.Error("No items were ever spawned")
	}
	t.Logf("%d runs, %d items spawned, high score %d", runs, len(seen), g.highScore)
}

func TestInvalidLanePanics(t *testing.T) {
	g := New(1)
	g.Start()
	g.lane = Lanes

	defer func() {
		if recover() == nil {
			t.Error("Step with an invalid lane should panic")
		}
	}()
	g.Step(0)
}
