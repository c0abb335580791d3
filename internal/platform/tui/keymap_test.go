package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quadkeys/keyhunt/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyMovement(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
	}{
		{"w", core.ActionUp},
		{"up", core.ActionUp},
		{"s", core.ActionDown},
		{"down", core.ActionDown},
		{"a", core.ActionLeft},
		{"left", core.ActionLeft},
		{"d", core.ActionRight},
		{"right", core.ActionRight},
		{"space", core.ActionJump},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(keyMsg(tc.key))
		if action != tc.action {
			t.Errorf("MapKey(%q): expected %v, got %v", tc.key, tc.action, action)
		}
		if isQuit {
			t.Errorf("MapKey(%q): should not be a quit", tc.key)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q", "ctrl+c"} {
		action, isQuit := km.MapKey(keyMsg(key))
		if !isQuit {
			t.Errorf("MapKey(%q): expected quit", key)
		}
		if action != core.ActionQuit {
			t.Errorf("MapKey(%q): expected ActionQuit, got %v", key, action)
		}
	}
}

func TestMapKeyUnknownIsNone(t *testing.T) {
	km := NewKeyMapper()

	action, isQuit := km.MapKey(keyMsg("z"))
	if action != core.ActionNone || isQuit {
		t.Errorf("expected ActionNone for unbound key, got %v quit=%v", action, isQuit)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("w"), &frame); quit {
		t.Error("movement key should not quit")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("expected ActionUp set in frame")
	}
	if frame.Has(core.ActionDown) {
		t.Error("unexpected ActionDown in frame")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	press := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !km.MapMouseToFrame(press, &frame) {
		t.Fatal("left press should be consumed")
	}
	if !frame.Click || frame.ClickX != 12 || frame.ClickY != 7 {
		t.Errorf("click not recorded: %+v", frame)
	}

	frame.Clear()
	release := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if km.MapMouseToFrame(release, &frame) {
		t.Error("release should be ignored")
	}
	right := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if km.MapMouseToFrame(right, &frame) {
		t.Error("right button should be ignored")
	}
	if frame.Click {
		t.Error("no click should be recorded for ignored events")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action MenuAction
	}{
		{"k", MenuActionUp},
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"down", MenuActionDown},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"z", MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.action {
			t.Errorf("MapKeyToMenuAction(%q): expected %v, got %v", tc.key, tc.action, got)
		}
	}
}
