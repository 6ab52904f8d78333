package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/matchem-poker/internal/core"
	"github.com/vovakirdan/matchem-poker/internal/registry"
	"github.com/vovakirdan/matchem-poker/internal/storage"
)

// Extras a game may implement; the host checks for each one.
type (
	resizer         interface{ Resize(cfg core.RuntimeConfig) }
	saver           interface{ Save() bool }
	aspectProvider  interface{ Aspect() float64 }
	highScoreSeeder interface{ SeedHighScore(v int) }
	storeAttacher   interface {
		AttachStore(store core.SessionStore, slot string)
	}
	menuReporter interface{ AtMenu() bool }
)

// defaultAspect maps the pointer for games that do not report an aspect.
const defaultAspect = 800.0 / 480.0

// SlotName returns the save slot for gameID played by user. Local play has
// no user and saves under the bare game ID.
func SlotName(gameID, user string) string {
	if user == "" {
		return gameID
	}
	return gameID + ":" + user
}

// Model hosts one game: it ticks it at the configured rate, feeds it input,
// draws its screen and records the score of every finished game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store // nil plays without scores or saves
	config core.RuntimeConfig
	keys   *KeyMapper

	input core.InputFrame // collected since the last tick
	state core.GameState

	recorded   bool // score of the current game over is stored
	seeded     bool
	quitting   bool
	backToMenu bool
}

// NewModel prepares game for play. A zero seed is replaced by the clock.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, slot string) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if a, ok := game.(storeAttacher); ok && store != nil {
		a.AttachStore(store, slot)
	}
	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		input:  core.NewInputFrame(),
	}
}

func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nextFrame(m.config.TickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		return m.tick()
	case tea.KeyMsg:
		return m.key(msg)
	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, m.screen.Width(), m.screen.Height(), m.aspect(), &m.input)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.screenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.input) {
		return m.leave(false)
	}
	// Back is the game's own until it sits on its title menu.
	if m.input.Has(core.ActionBack) {
		if r, ok := m.game.(menuReporter); ok && r.AtMenu() {
			m.input.Clear()
			return m.leave(true)
		}
	}
	return m, nil
}

// leave saves the game and ends the program, either back to the mode menu
// or out altogether.
func (m Model) leave(toMenu bool) (tea.Model, tea.Cmd) {
	m.save()
	m.backToMenu, m.quitting = toMenu, !toMenu
	return m, tea.Quit
}

func (m *Model) resize(w, h int) {
	m.config.ScreenW, m.config.ScreenH = w, h
	m.screen.Resize(w, h)
	switch r, ok := m.game.(resizer); {
	case ok:
		r.Resize(m.config)
	case !m.state.GameOver:
		m.game.Reset(m.config)
	}
}

func (m Model) tick() (tea.Model, tea.Cmd) {
	m.state = m.game.Step(m.input).State
	m.input.Clear()

	if !m.seeded {
		m.seeded = true
		m.seedHighScore()
	}

	if !m.state.GameOver {
		m.recorded = false
	} else if !m.recorded {
		m.recorded = true
		if m.store != nil && m.state.Score > 0 {
			//nolint:errcheck // a lost score does not stop play
			m.store.SaveScore(m.game.ID(), m.state.Score, m.state.Level)
		}
	}
	return m, nextFrame(m.config.TickRate)
}

func (m *Model) seedHighScore() {
	s, ok := m.game.(highScoreSeeder)
	if !ok || m.store == nil {
		return
	}
	if best, err := m.store.HighScore(m.game.ID()); err == nil {
		s.SeedHighScore(best)
	}
}

func (m *Model) save() {
	if s, ok := m.game.(saver); ok {
		s.Save()
	}
}

func (m Model) aspect() float64 {
	if a, ok := m.game.(aspectProvider); ok {
		return a.Aspect()
	}
	return defaultAspect
}

// screenshot writes the current frame as plain text under
// ~/.matchem/screenshots.
func (m *Model) screenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".matchem", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	m.game.Render(m.screen)
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // a lost screenshot does not stop play
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports a quit key.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu reports Back pressed on the game's title menu.
func (m Model) BackToMenu() bool { return m.backToMenu }

// Run plays game on the local terminal until the player leaves. A program
// killed without a quit key still saves.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	final, err := tea.NewProgram(
		NewModel(game, store, cfg, SlotName(game.ID(), "")),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()
	if m, ok := final.(Model); ok && !m.quitting && !m.backToMenu {
		m.save()
	}
	return err
}
