package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/matchem-poker/internal/core"
	"github.com/vovakirdan/matchem-poker/internal/storage"
)

// stubGame records what the platform asks of it.
type stubGame struct {
	state   core.GameState
	inputs  []core.InputFrame
	resets  int
	resizes int
	saves   int
	seeded  int
	atMenu  bool
	store   core.SessionStore
	slot    string
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen) { dst.Clear(); dst.DrawTextColored(0, 0, "stub", core.ColorDefault) }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Resize(core.RuntimeConfig) { g.resizes++ }
func (g *stubGame) Save() bool { g.saves++; return true }
func (g *stubGame) Aspect() float64 { return 2 }
func (g *stubGame) SeedHighScore(v int) { g.seeded = v }
func (g *stubGame) AtMenu() bool { return g.atMenu }
func (g *stubGame) AttachStore(s core.SessionStore, slot string) {
	g.store, g.slot = s, slot
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	seen := core.NewInputFrame()
	for a := range in.Actions {
		seen.Set(a)
	}
	seen.Pointers = append(seen.Pointers, in.Pointers...)
	g.inputs = append(g.inputs, seen)
	return core.StepResult{State: g.state}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelForwardsInput(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), "stub")

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, tea.MouseMsg{X: 19, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := update(t, m, FrameMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if len(g.inputs) != 1 {
		t.Fatalf("steps = %d, expected 1", len(g.inputs))
	}
	in := g.inputs[0]
	if !in.Has(core.ActionLeft) {
		t.Error("Left not forwarded")
	}
	if len(in.Pointers) != 1 || in.Pointers[0].X != 0.4875 || in.Pointers[0].Y != 0.9 {
		t.Errorf("pointers = %+v, expected one at 0.4875,0.9", in.Pointers)
	}

	update(t, m, FrameMsg{})
	if last := g.inputs[1]; len(last.Actions) != 0 || len(last.Pointers) != 0 {
		t.Errorf("input not cleared between ticks: %+v", last)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), "stub")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resizes != 1 || g.resets != 0 {
		t.Errorf("resizes = %d resets = %d, expected 1 and 0", g.resizes, g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitSaves(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), "stub")

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if g.saves != 1 {
		t.Errorf("saves = %d, expected 1", g.saves)
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), "stub")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back while playing belongs to the game")
	}

	g.atMenu = true
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd == nil {
		t.Error("back on the title menu should leave the game")
	}
	if g.saves != 1 {
		t.Errorf("saves = %d, expected 1", g.saves)
	}
}

func TestModelScoresOncePerGameOver(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("stub", 900, 7); err != nil {
		t.Fatal(err)
	}

	g := &stubGame{}
	m := NewModel(g, store, testConfig(), "stub:alice")
	if g.store == nil || g.slot != "stub:alice" {
		t.Fatalf("store not attached: slot %q", g.slot)
	}

	m, _ = update(t, m, FrameMsg{})
	if g.seeded != 900 {
		t.Errorf("seeded high score = %d, expected 900", g.seeded)
	}

	g.state = core.GameState{Score: 120, Level: 3, GameOver: true}
	m, _ = update(t, m, FrameMsg{})
	m, _ = update(t, m, FrameMsg{})

	g.state = core.GameState{Score: 0}
	m, _ = update(t, m, FrameMsg{})
	g.state = core.GameState{Score: 80, Level: 2, GameOver: true}
	update(t, m, FrameMsg{})

	scores, err := store.AllScores("stub")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 3 {
		t.Fatalf("scores = %d, expected 900 plus one per game over", len(scores))
	}
	if scores[1].Score != 120 || scores[1].Level != 3 || scores[2].Level != 2 {
		t.Errorf("scores = %+v, expected levels recorded with each game", scores)
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), "stub")
	if g.store != nil {
		t.Error("nil store should not be attached")
	}

	g.state = core.GameState{Score: 10, GameOver: true}
	update(t, m, FrameMsg{})
	if g.seeded != 0 {
		t.Errorf("seeded = %d without a store", g.seeded)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig(), "stub")
	if !strings.Contains(m.View(), "stub") {
		t.Errorf("view = %q", m.View())
	}
}

func TestSlotName(t *testing.T) {
	if got := SlotName("matchem", ""); got != "matchem" {
		t.Errorf("local slot = %q", got)
	}
	if got := SlotName("matchem", "bob"); got != "matchem:bob" {
		t.Errorf("ssh slot = %q", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(6, 2)
	scr.DrawTextColored(0, 0, "ab", core.ColorDefault)
	scr.DrawTextColored(2, 0, "cd", core.ColorRed)
	scr.DrawTextColored(0, 1, "xyz", core.ColorDefault)

	lines := strings.Split(RenderScreen(scr), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("row 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("row 1 = %q", lines[1])
	}
}
