// Package engine runs the lane runner in time. The Driver owns a
// runner.Game, paces frames with a Clock and applies player commands
// between frames, so the game is only ever touched from one goroutine.
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

const defaultQueueSize = 32

// Options configures a Driver.
type Options struct {
	// FPS is the frame rate requested from the clock.
	FPS int

	// Clock paces frames. Defaults to a RealClock.
	Clock Clock

	// Logger receives lifecycle events. Defaults to a discarding logger.
	Logger *log.Logger

	// OnFrame is called from the driver goroutine with a snapshot after
	// every step and after every applied command. It must not block for
	// long: the next frame waits for it.
	OnFrame func(runner.Snapshot)

	// QueueSize bounds the number of pending commands.
	QueueSize int
}

// Driver steps a game at a fixed rate while it is running.
type Driver struct {
	game     *runner.Game
	clock    Clock
	fps      int
	interval time.Duration
	cmds     chan core.Action
	onFrame  func(runner.Snapshot)
	logger   *log.Logger
	done     chan struct{}

	ticker Ticker
	frames <-chan time.Time // nil while no run is active
}

// New creates a driver for game. The game must not be used by anyone else
// once the driver runs.
func New(game *runner.Game, opts Options) (*Driver, error) {
	if opts.FPS < core.MinFPS || opts.FPS > core.MaxFPS {
		return nil, fmt.Errorf("engine: fps %d out of range [%d, %d]", opts.FPS, core.MinFPS, core.MaxFPS)
	}
	if opts.Clock == nil {
		opts.Clock = NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.OnFrame == nil {
		opts.OnFrame = func(runner.Snapshot) {}
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}

	return &Driver{
		game:     game,
		clock:    opts.Clock,
		fps:      opts.FPS,
		interval: time.Second / time.Duration(opts.FPS),
		cmds:     make(chan core.Action, opts.QueueSize),
		onFrame:  opts.OnFrame,
		logger:   opts.Logger,
		done:     make(chan struct{}),
	}, nil
}

// Send queues a gameplay command without blocking. It reports false when
// the command was dropped because the driver has stopped or the queue is
// full.
func (d *Driver) Send(a core.Action) bool {
	select {
	case <-d.done:
		return false
	default:
	}

	select {
	case d.cmds <- a:
		return true
	default:
		d.logger.Debug("command dropped, queue full", "action", a)
		return false
	}
}

// Done is closed when Run returns.
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// Run processes commands and frames until ctx is canceled. It publishes the
// initial snapshot before waiting for input. Once ctx is canceled no queued
// command or frame reaches the game, even if select picked it.
func (d *Driver) Run(ctx context.Context) {
	defer close(d.done)
	defer d.stopFrames()

	d.onFrame(d.game.Snapshot())

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("driver stopped", "reason", ctx.Err())
			return

		case a := <-d.cmds:
			if ctx.Err() != nil {
				return
			}
			d.apply(a)

		case <-d.frames:
			if ctx.Err() != nil {
				return
			}
			d.step()
		}
	}
}

// apply runs one command between frames.
func (d *Driver) apply(a core.Action) {
	if !a.IsGameplay() {
		return
	}
	d.game.Apply(a)

	if a == core.ActionStart {
		d.logger.Info("run started", "fps", d.fps)
	}
	if d.game.Running() && d.frames == nil {
		d.ticker = d.clock.NewTicker(d.interval)
		d.frames = d.ticker.C()
	}
	d.onFrame(d.game.Snapshot())
}

// step advances the game by one frame. When the run ends the ticker is
// stopped and its channel dropped before anything else happens, so a frame
// that was already scheduled can never reach the game.
func (d *Driver) step() {
	snap := d.game.Step(d.clock.Now())
	if !d.game.Running() {
		d.stopFrames()
		d.logger.Info("run ended",
			"score", snap.Score,
			"high_score", snap.HighScore,
			"coins", snap.Coins,
			"elapsed", fmt.Sprintf("%.1fs", snap.Elapsed),
		)
	}
	d.onFrame(snap)
}

func (d *Driver) stopFrames() {
	if d.ticker != nil {
		d.ticker.Stop()
		d.ticker = nil
	}
	d.frames = nil
}
