package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// Controller picks the next action from the latest snapshot.
type Controller interface {
	Decide(runner.Snapshot) core.Action
}

// RunResult summarizes one finished (or cut short) run. HighScore is the
// game's own record, which only a crash updates; Best also counts runs
// stopped at the frame limit.
type RunResult struct {
	Run       int
	Frames    int
	Score     int
	HighScore int
	Best      int
	Coins     int
	Speed     int
	Elapsed   time.Duration
	Crashed   bool
}

// Headless plays the game without a clock, feeding it synthetic timestamps
// spaced exactly one frame apart. Results depend only on the seed, the frame
// rate and the controller.
type Headless struct {
	FPS       int
	MaxFrames int // per run; zero means unlimited
	Logger    *log.Logger
}

// Play starts runs back to back on game and returns one result per run. It
// stops early when ctx is canceled and returns the results gathered so far
// with the context error.
func (h Headless) Play(ctx context.Context, game *runner.Game, ctrl Controller, runs int) ([]RunResult, error) {
	if h.FPS < core.MinFPS || h.FPS > core.MaxFPS {
		return nil, fmt.Errorf("engine: fps %d out of range [%d, %d]", h.FPS, core.MinFPS, core.MaxFPS)
	}
	logger := h.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	frame := time.Second / time.Duration(h.FPS)

	results := make([]RunResult, 0, runs)
	best := 0
	for run := 1; run <= runs; run++ {
		game.Start()
		var now time.Duration
		snap := game.Step(now)

		for game.Running() {
			if h.MaxFrames > 0 && snap.Frame >= h.MaxFrames {
				break
			}
			if err := ctx.Err(); err != nil {
				return results, fmt.Errorf("engine: headless run %d: %w", run, err)
			}
			// Restarts are the caller's business.
			if a := ctrl.Decide(snap); a != core.ActionStart {
				game.Apply(a)
			}
			now += frame
			snap = game.Step(now)
		}

		best = max(best, snap.Score, snap.HighScore)
		res := RunResult{
			Run:       run,
			Frames:    snap.Frame,
			Score:     snap.Score,
			HighScore: snap.HighScore,
			Best:      best,
			Coins:     snap.Coins,
			Speed:     snap.Speed,
			Elapsed:   now,
			Crashed:   snap.Phase == runner.PhaseGameOver,
		}
		logger.Debug("headless run finished",
			"run", run,
			"frames", res.Frames,
			"score", res.Score,
			"crashed", res.Crashed,
		)
		results = append(results, res)
	}
	return results, nil
}
