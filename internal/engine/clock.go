package engine

import (
	"sync"
	"time"
)

// Clock supplies frame timestamps and the ticker that paces frames.
// Timestamps are offsets from an arbitrary origin and never go backwards.
type Clock interface {
	Now() time.Duration
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers frame signals until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RealClock is a Clock backed by the monotonic wall clock.
type RealClock struct {
	start time.Time
}

// NewRealClock returns a clock whose origin is now.
func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *RealClock) Now() time.Duration {
	return time.Since(c.start)
}

// NewTicker wraps time.NewTicker.
func (c *RealClock) NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// ManualClock is a Clock driven by hand, for tests and replays. Each call to
// Advance moves time forward and fires every live ticker once, whatever its
// period.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Duration
	tickers []*manualTicker
}

// NewManualClock returns a manual clock at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// NewTicker registers a ticker that fires on every Advance.
func (c *ManualClock) NewTicker(time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTicker{clock: c, c: make(chan time.Time, 1)}
	c.tickers = append(c.tickers, t)
	return t
}

// Advance moves time forward by d and fires live tickers. A tick is dropped
// if the previous one has not been consumed, like time.Ticker does.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
	at := time.Unix(0, 0).Add(c.now)
	for _, t := range c.tickers {
		select {
		case t.c <- at:
		default:
		}
	}
}

// ActiveTickers returns the number of tickers not yet stopped.
func (c *ManualClock) ActiveTickers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

func (c *ManualClock) remove(t *manualTicker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, cur := range c.tickers {
		if cur == t {
			c.tickers = append(c.tickers[:i], c.tickers[i+1:]...)
			return
		}
	}
}

type manualTicker struct {
	clock *ManualClock
	c     chan time.Time
}

func (t *manualTicker) C() <-chan time.Time { return t.c }
func (t *manualTicker) Stop()               { t.clock.remove(t) }
