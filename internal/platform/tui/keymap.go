package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/matchem-poker/internal/core"
)

// quitKeys end the program from any screen.
var quitKeys = map[string]bool{"q": true, "ctrl+c": true}

// gameKeys binds key names, as Bubble Tea spells them, to game actions.
var gameKeys = map[string]core.Action{
	"up": core.ActionUp, "w": core.ActionUp, "k": core.ActionUp,
	"down": core.ActionDown, "s": core.ActionDown, "j": core.ActionDown,
	"left": core.ActionLeft, "a": core.ActionLeft, "h": core.ActionLeft,
	"right": core.ActionRight, "d": core.ActionRight, "l": core.ActionRight,
	" ": core.ActionConfirm, "enter": core.ActionConfirm,
	"esc": core.ActionBack, "b": core.ActionBack,
	"p": core.ActionPause,
	"r": core.ActionRestart,
	"i": core.ActionInfo,
}

// MenuAction is what a key does on the mode picker.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

var menuKeys = map[string]MenuAction{
	"up": MenuActionUp, "w": MenuActionUp, "k": MenuActionUp,
	"down": MenuActionDown, "s": MenuActionDown, "j": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"esc": MenuActionBack, "b": MenuActionBack,
	"tab": MenuActionScoreboard,
}

// KeyMapper turns Bubble Tea key and mouse messages into game input.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameKeys, menu: menuKeys}
}

// MapKey returns the action bound to msg, ActionNone if unbound. quit is
// set for the keys that leave the program.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, quit bool) {
	name := msg.String()
	if quitKeys[name] {
		return core.ActionQuit, true
	}
	return km.game[name], false
}

// MapKeyToFrame records the action bound to msg in frame and reports a
// quit key.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, quit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return quit
}

// MapKeyToMenuAction returns what msg does on the mode picker.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	name := msg.String()
	if quitKeys[name] {
		return MenuActionQuit
	}
	return km.menu[name]
}

// MapMouseToFrame adds a left-button gesture to frame as a pointer event at
// the centre of its cell, with x in 0..1 across width columns and y in
// 0..aspect down height rows. Other buttons and bare hovering are dropped
// and reported false.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, width, height int, aspect float64, frame *core.InputFrame) bool {
	kind, ok := pointerKind(msg)
	if !ok || width <= 0 || height <= 0 {
		return false
	}
	frame.AddPointer(kind,
		(float64(msg.X)+0.5)/float64(width),
		(float64(msg.Y)+0.5)/float64(height)*aspect)
	return true
}

// pointerKind classifies a mouse message. Any release ends a gesture, since
// terminals often report it without a button.
func pointerKind(msg tea.MouseMsg) (core.PointerKind, bool) {
	left := msg.Button == tea.MouseButtonLeft
	switch {
	case msg.Action == tea.MouseActionPress && left:
		return core.PointerDown, true
	case msg.Action == tea.MouseActionMotion && left:
		return core.PointerDrag, true
	case msg.Action == tea.MouseActionRelease:
		return core.PointerUp, true
	}
	return 0, false
}
