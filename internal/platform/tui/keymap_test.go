package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ametelin/tui-runner/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 || s == " " {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyGameActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		action   core.Action
		wantQuit bool
	}{
		{" ", core.ActionJump, false},
		{"up", core.ActionJump, false},
		{"w", core.ActionJump, false},
		{"enter", core.ActionRevive, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"b", core.ActionBack, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key))
		if action != tt.action {
			t.Errorf("MapKey(%q) action = %v, want %v", tt.key, action, tt.action)
		}
		if isQuit != tt.wantQuit {
			t.Errorf("MapKey(%q) isQuit = %v, want %v", tt.key, isQuit, tt.wantQuit)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"b", MenuActionBack},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
