package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDefaults(t *testing.T) {
	km := NewKeyMap(config.Default().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart},
		{"r", runeKey('r'), core.ActionStart},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help", runeKey('?'), core.ActionHelp},
		{"unbound", runeKey('x'), core.ActionNone},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapCustom(t *testing.T) {
	keys := config.Default().Keys
	keys.Left = []string{"j"}
	km := NewKeyMap(keys)

	if got := km.Action(runeKey('j')); got != core.ActionLeft {
		t.Errorf("custom left = %v", got)
	}
	if got := km.Action(runeKey('a')); got != core.ActionNone {
		t.Errorf("unbound default = %v, expected none", got)
	}
}

func TestHelpKeys(t *testing.T) {
	if got := helpKeys([]string{"enter", " ", "r"}); got != "enter/space/r" {
		t.Errorf("helpKeys = %q", got)
	}
	if got := helpKeys([]string{"left", "a"}); got != "←/a" {
		t.Errorf("helpKeys = %q", got)
	}
}
