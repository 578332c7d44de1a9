package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	Quit  key.Binding
	Help  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Start, k.Quit, k.Help},
	}
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Left:  binding(cfg.Left, "move left"),
		Right: binding(cfg.Right, "move right"),
		Start: binding(cfg.Start, "start"),
		Quit:  binding(cfg.Quit, "quit"),
		Help:  binding(cfg.Help, "more keys"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders a key list for the help footer.
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case " ":
			names[i] = "space"
		case "left":
			names[i] = "←"
		case "right":
			names[i] = "→"
		default:
			names[i] = k
		}
	}
	return strings.Join(names, "/")
}

// Action translates a key message to an action. Quit and Help are
// handled by the model; the rest go to the driver.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Start):
		return core.ActionStart
	}
	return core.ActionNone
}
