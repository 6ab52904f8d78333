package registry_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/matchem-poker/internal/core"
	_ "github.com/vovakirdan/matchem-poker/internal/games/matchem"
	"github.com/vovakirdan/matchem-poker/internal/registry"
)

type dummy struct{}

func (dummy) ID() string { return "dummy" }
func (dummy) Title() string { return "Dummy" }
func (dummy) Reset(core.RuntimeConfig) {}
func (dummy) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (dummy) Render(*core.Screen) {}
func (dummy) State() core.GameState { return core.GameState{} }

func TestMatchemModes(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"matchem", "Matchem Poker"},
		{"matchem_kids", "Matchem Poker (Kids)"},
	}
	for _, tt := range tests {
		m, ok := registry.Lookup(tt.id)
		if !ok {
			t.Errorf("mode %q not registered", tt.id)
			continue
		}
		if m.Title != tt.title || m.About == "" {
			t.Errorf("mode %q = %q / %q", tt.id, m.Title, m.About)
		}

		g, err := registry.Create(tt.id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", tt.id, err)
		}
		if g.ID() != tt.id || g.Title() != m.Title {
			t.Errorf("Create(%q) made %q / %q", tt.id, g.ID(), g.Title())
		}
	}
}

func TestModesSorted(t *testing.T) {
	modes := registry.Modes()
	if len(modes) < 2 {
		t.Fatalf("Modes() = %d entries", len(modes))
	}
	for i := 1; i < len(modes); i++ {
		if modes[i-1].ID >= modes[i].ID {
			t.Errorf("Modes() not sorted: %q before %q", modes[i-1].ID, modes[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := registry.Create("solitaire")
	if !errors.Is(err, registry.ErrUnknownMode) {
		t.Errorf("Create(solitaire) error = %v, expected ErrUnknownMode", err)
	}
	if _, ok := registry.Lookup("solitaire"); ok {
		t.Error("Lookup found an unregistered mode")
	}
}

func TestRegisterRejects(t *testing.T) {
	newDummy := func() registry.Game { return dummy{} }
	registry.Register(registry.Mode{ID: "dummy", Title: "Dummy", New: newDummy})

	tests := []struct {
		name string
		mode registry.Mode
	}{
		{"duplicate", registry.Mode{ID: "dummy", New: newDummy}},
		{"no id", registry.Mode{Title: "Nameless", New: newDummy}},
		{"no constructor", registry.Mode{ID: "hollow"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register should panic")
				}
			}()
			registry.Register(tt.mode)
		})
	}
}
