package core

// Action is a key press after the host's key map, such as "move the cursor
// up". Games see actions, never key names.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm // tap the card under the cursor
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
	ActionInfo
)

var actionNames = [...]string{"None", "Up", "Down", "Left", "Right", "Confirm", "Back", "Restart", "Quit", "Pause", "Info"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// PointerKind is the phase of a mouse or touch gesture.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerDrag
	PointerUp
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "Down"
	case PointerDrag:
		return "Drag"
	case PointerUp:
		return "Up"
	}
	return "Unknown"
}

// PointerEvent is one gesture sample. X runs 0..1 across the screen and Y
// uses the same unit, so it runs 0..aspect from top to bottom.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// InputFrame is everything the player did during one tick.
type InputFrame struct {
	Actions  map[Action]bool
	Pointers []PointerEvent // in arrival order
}

func NewInputFrame() InputFrame {
	return InputFrame{Actions: map[Action]bool{}}
}

// Set records a. A zero frame allocates its action set on first use.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = map[Action]bool{}
	}
	f.Actions[a] = true
}

func (f InputFrame) Has(a Action) bool { return f.Actions[a] }

func (f *InputFrame) AddPointer(kind PointerKind, x, y float64) {
	f.Pointers = append(f.Pointers, PointerEvent{Kind: kind, X: x, Y: y})
}

// Clear empties the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Pointers = f.Pointers[:0]
}
