package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/matchem-poker/internal/core"
	"github.com/vovakirdan/matchem-poker/internal/registry"
	"github.com/vovakirdan/matchem-poker/internal/storage"
)

type view int

const (
	viewMenu view = iota
	viewScores
	viewGame
)

// SessionModel is one remote player's whole visit: the mode picker, the
// scoreboard and games, switched inside a single Bubble Tea program.
type SessionModel struct {
	store  *storage.Store
	user   string
	config core.RuntimeConfig

	on    view
	menu  MenuModel
	board ScoreboardModel
	game  Model
	done  bool
}

func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, user string) SessionModel {
	return SessionModel{store: store, user: user, config: cfg, menu: NewMenuModel(store, cfg, user)}
}

func (m SessionModel) Init() tea.Cmd { return m.menu.Init() }

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = ws.Width, ws.Height
	}

	// The inner models end their own programs with tea.Quit; here that
	// means switching views, so their commands are dropped on a switch.
	switch m.on {
	case viewScores:
		next, cmd := m.board.Update(msg)
		m.board = next.(ScoreboardModel)
		switch {
		case m.board.IsQuitting():
			return m.quit()
		case m.board.IsGoingBack():
			return m.toMenu()
		}
		return m, cmd

	case viewGame:
		next, cmd := m.game.Update(msg)
		m.game = next.(Model)
		switch {
		case m.game.BackToMenu():
			return m.toMenu()
		case m.game.IsQuitting():
			return m.quit()
		}
		return m, cmd
	}

	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)
	switch m.menu.Choice() {
	case MenuQuit:
		return m.quit()
	case MenuScores:
		m.on, m.board = viewScores, NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.board.Init()
	case MenuPlay:
		return m.play(m.menu.Mode())
	}
	return m, cmd
}

func (m SessionModel) play(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		return m.toMenu()
	}
	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	m.on, m.game = viewGame, NewModel(game, m.store, cfg, SlotName(id, m.user))
	return m, m.game.Init()
}

// toMenu rebuilds the picker so fresh scores and saves show.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.on, m.menu = viewMenu, NewMenuModel(m.store, m.config, m.user)
	m.board, m.game = ScoreboardModel{}, Model{}
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.done = true
	return m, tea.Quit
}

func (m SessionModel) View() string {
	switch {
	case m.done:
		return ""
	case m.on == viewGame:
		return m.game.View()
	case m.on == viewScores:
		return m.board.View()
	}
	return m.menu.View()
}
