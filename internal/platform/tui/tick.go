// Package tui is the Bubble Tea front-end of the lane runner. The game
// itself runs in an engine.Driver goroutine; the model forwards key
// presses to it and draws whatever snapshot arrived last.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/runner"
)

// FrameMsg carries a snapshot published by the driver.
type FrameMsg runner.Snapshot

// driverDoneMsg is sent once the frame channel is closed.
type driverDoneMsg struct{}

// frameSink hands snapshots from the driver goroutine to the UI, keeping
// only the newest one so a slow terminal never stalls the simulation.
type frameSink chan runner.Snapshot

func newFrameSink() frameSink {
	return make(frameSink, 1)
}

// publish is the driver's OnFrame callback. It has a single caller, so
// after draining a stale snapshot the send cannot block.
func (f frameSink) publish(s runner.Snapshot) {
	select {
	case f <- s:
		return
	default:
	}
	select {
	case <-f:
	default:
	}
	f <- s
}

// waitForFrame returns a command that blocks until the next snapshot.
func waitForFrame(f frameSink) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-f
		if !ok {
			return driverDoneMsg{}
		}
		return FrameMsg(s)
	}
}
