package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/engine"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

var helpStyle = lipgloss.NewStyle().PaddingLeft(1)

// Model is the Bubble Tea model for the game screen.
type Model struct {
	driver    *engine.Driver
	runDriver tea.Cmd
	cancel    context.CancelFunc
	frames    frameSink
	snap      runner.Snapshot
	screen    *core.Screen
	theme     runner.Theme
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	width     int
	height    int
	quitting  bool
}

// NewModel creates the game screen and its driver. Pacing and seed come
// from rc, everything else from cfg. The driver starts when the program
// calls Init.
func NewModel(cfg config.Config, rc core.RuntimeConfig, clock engine.Clock, logger *log.Logger) (Model, error) {
	theme, err := cfg.Theme.Build()
	if err != nil {
		return Model{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	game := runner.New(rc.Seed)
	frames := newFrameSink()
	driver, err := engine.New(game, engine.Options{
		FPS:     rc.TickRate,
		Clock:   clock,
		Logger:  logger,
		OnFrame: frames.publish,
	})
	if err != nil {
		return Model{}, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	runDriver := func() tea.Msg {
		driver.Run(ctx)
		close(frames)
		return nil
	}

	logger.Info("game ready", "seed", rc.Seed, "fps", rc.TickRate)

	return Model{
		driver:    driver,
		runDriver: runDriver,
		cancel:    cancel,
		frames:    frames,
		snap:      game.Snapshot(),
		screen:    core.NewScreen(rc.ScreenW, rc.ScreenH),
		theme:     theme,
		keys:      NewKeyMap(cfg.Keys),
		help:      help.New(),
		logger:    logger,
		width:     rc.ScreenW,
		height:    rc.ScreenH,
	}, nil
}

// Init starts the driver and waits for its first frame.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.runDriver, waitForFrame(m.frames))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.snap = runner.Snapshot(msg)
		return m, waitForFrame(m.frames)

	case driverDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionNone:
	default:
		m.driver.Send(a)
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	runner.Render(m.screen, m.snap, m.theme)

	dir := filepath.Join(config.HomeDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("lanerunner_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the latest snapshot with the help footer below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := helpStyle.Render(m.help.View(m.keys))
	h := core.Max(m.height-lipgloss.Height(footer), 1)
	if m.screen.Width() != m.width || m.screen.Height() != h {
		m.screen.Resize(m.width, h)
	}

	runner.Render(m.screen, m.snap, m.theme)
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the interactive game and blocks until the player quits.
func Run(cfg config.Config, rc core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rc, engine.NewRealClock(), logger)
	if err != nil {
		return err
	}
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
