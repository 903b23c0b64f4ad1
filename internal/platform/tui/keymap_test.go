package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestTranslate(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{"wasd", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.KeyLeft},
		{"vim", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, core.KeyDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyStart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyNone},
		{"other rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Translate(tt.msg); got != tt.want {
				t.Errorf("Translate(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHelpBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("Short help should list bindings")
	}
	for _, b := range km.ShortHelp() {
		if b.Help().Key == "" {
			t.Errorf("Binding %v has no help text", b.Keys())
		}
	}
}
