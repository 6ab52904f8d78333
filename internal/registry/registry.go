// Package registry is where game modes announce themselves. Each mode's
// package registers from init, and the host looks modes up by ID for the
// picker, the CLI and score keeping.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/matchem-poker/internal/core"
)

// Game is one running game as the host drives it: Reset once, then Step and
// Render every tick. Games never see the terminal.
type Game interface {
	// ID is the mode ID the game was created for. Scores and saves are
	// filed under it.
	ID() string
	Title() string

	// Reset starts over for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step runs one tick with the input gathered since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Mode describes a registered way to play.
type Mode struct {
	ID    string
	Title string
	About string // one line for pickers and `matchem list`
	New   func() Game
}

// ErrUnknownMode is returned by Create for an ID nobody registered.
var ErrUnknownMode = errors.New("registry: unknown mode")

var (
	mu    sync.RWMutex
	modes = map[string]Mode{}
)

// Register adds a mode. It panics on an empty ID, a missing constructor or
// an ID that is already taken, all of which are programming errors.
func Register(m Mode) {
	if m.ID == "" || m.New == nil {
		panic(fmt.Sprintf("registry: incomplete mode %+v", m))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, taken := modes[m.ID]; taken {
		panic(fmt.Sprintf("registry: mode %q registered twice", m.ID))
	}
	modes[m.ID] = m
}

// Modes returns every registered mode ordered by ID.
func Modes() []Mode {
	mu.RLock()
	out := make([]Mode, 0, len(modes))
	for _, m := range modes {
		out = append(out, m)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b Mode) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Lookup returns the mode registered under id.
func Lookup(id string) (Mode, bool) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := modes[id]
	return m, ok
}

// Create starts a fresh game of mode id.
func Create(id string) (Game, error) {
	m, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return m.New(), nil
}
