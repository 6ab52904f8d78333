package tui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/matchem-poker/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"i", runeKey('i'), core.ActionInfo, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v,%v, expected %v,%v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('d'), &frame) {
		t.Fatal("d is not a quit key")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("frame should hold Right")
	}

	km.MapKeyToFrame(runeKey('z'), &frame)
	if len(frame.Actions) != 1 {
		t.Errorf("unbound key changed the frame: %v", frame.Actions)
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		ok   bool
		kind core.PointerKind
		x, y float64
	}{
		{
			"left press",
			tea.MouseMsg{X: 39, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			true, core.PointerDown, 39.5 / 80, 11.5 / 24 * 1.6,
		},
		{
			"drag",
			tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft},
			true, core.PointerDrag, 0.5 / 80, 0.5 / 24 * 1.6,
		},
		{
			"release",
			tea.MouseMsg{X: 79, Y: 23, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone},
			true, core.PointerUp, 79.5 / 80, 23.5 / 24 * 1.6,
		},
		{
			"right press",
			tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			false, 0, 0, 0,
		},
		{
			"hover",
			tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
			false, 0, 0, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			ok := km.MapMouseToFrame(tt.msg, 80, 24, 1.6, &frame)
			if ok != tt.ok {
				t.Fatalf("ok = %v, expected %v", ok, tt.ok)
			}
			if !ok {
				if len(frame.Pointers) != 0 {
					t.Errorf("ignored event added %v", frame.Pointers)
				}
				return
			}
			if len(frame.Pointers) != 1 {
				t.Fatalf("pointers = %v", frame.Pointers)
			}
			p := frame.Pointers[0]
			if p.Kind != tt.kind || math.Abs(p.X-tt.x) > 1e-9 || math.Abs(p.Y-tt.y) > 1e-9 {
				t.Errorf("pointer = %+v, expected %v at %v,%v", p, tt.kind, tt.x, tt.y)
			}
		})
	}
}

func TestMapMouseZeroSize(t *testing.T) {
	frame := core.NewInputFrame()
	msg := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if NewKeyMapper().MapMouseToFrame(msg, 0, 0, 1.6, &frame) {
		t.Error("zero-size screen should ignore the mouse")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
