package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matchem-poker/internal/registry"
	"github.com/vovakirdan/matchem-poker/internal/storage"
)

const (
	boardLimit  = 100 // games listed per mode
	boardChrome = 11  // rows taken by everything but the table body
	statsWidth  = 24  // stats panel, borders included
)

const boardDate = "Jan 02 15:04"

// ScoreboardKeyMap binds the scoreboard keys.
type ScoreboardKeyMap struct {
	Up, Down   key.Binding
	NextMode   key.Binding
	PrevMode   key.Binding
	Back, Quit key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextMode, k.PrevMode}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the stock bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardModel shows the best games of each mode with the level they
// reached, plus a summary of everything played in that mode.
type ScoreboardModel struct {
	modes  []registry.Mode
	mode   int
	store  *storage.Store
	stats  storage.GameStats
	rows   int // games loaded for the current mode
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	back, quit bool
}

// NewScoreboardModel opens the scoreboard on the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Level", Width: 6},
			{Title: "Played", Width: len(boardDate)},
		}),
		table.WithFocused(true),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)

	m := ScoreboardModel{
		modes: registry.Modes(),
		store: store,
		table: t,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
	}
	m.resize(width, height)
	m.load()
	return m
}

func (m *ScoreboardModel) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.table.SetHeight(max(height-boardChrome, 3))
}

// load fills the table and the stats panel for the current mode.
func (m *ScoreboardModel) load() {
	m.stats, m.rows = storage.GameStats{}, 0
	var rows []table.Row
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if st, err := m.store.Stats(id); err == nil {
			m.stats = st
		}
		scores, _ := m.store.TopScores(id, boardLimit) //nolint:errcheck // an unreadable table shows empty
		for i, e := range scores {
			level := "-"
			if e.Level > 0 {
				level = fmt.Sprint(e.Level)
			}
			rows = append(rows, table.Row{
				fmt.Sprint(i + 1),
				fmt.Sprintf("%05d", e.Score),
				level,
				e.CreatedAt.Format(boardDate),
			})
		}
	}
	m.rows = len(rows)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.step(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves to the next (+1) or previous (-1) mode, wrapping around.
func (m *ScoreboardModel) step(d int) {
	if n := len(m.modes); n > 0 {
		m.mode = (m.mode + d + n) % n
		m.load()
	}
}

func (m ScoreboardModel) View() string {
	if m.back || m.quit {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title = fmt.Sprintf("< %s >", m.modes[m.mode].Title)
	}

	var body string
	if m.rows == 0 {
		body = boardDimStyle.Italic(true).Padding(1, 2).Render("No games finished yet.")
	} else {
		body = m.table.View()
	}
	body = lipgloss.JoinHorizontal(lipgloss.Top, boardBoxStyle.Render(body), " ", m.statsPanel())

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	for _, l := range strings.Split(body, "\n") {
		b.WriteString(centerText(l, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(boardDimStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m ScoreboardModel) statsPanel() string {
	st := m.stats
	lines := []string{boardTitleStyle.Render("Totals")}
	if st.GamesCount == 0 {
		lines = append(lines, boardDimStyle.Render("nothing yet"))
	} else {
		lines = append(lines,
			fmt.Sprintf("games   %d", st.GamesCount),
			fmt.Sprintf("best    %05d", st.HighScore),
			fmt.Sprintf("average %.0f", st.AvgScore),
			fmt.Sprintf("level   %d", st.BestLevel),
			boardDimStyle.Render(st.LastPlayed.Format(boardDate)),
		)
	}
	return boardBoxStyle.Width(statsWidth - 2).Render(strings.Join(lines, "\n"))
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.back }

// IsQuitting reports whether the player asked to leave.
func (m ScoreboardModel) IsQuitting() bool { return m.quit }

// RunScoreboard shows the scoreboard on the local terminal. goBack is false
// when the player quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.back, nil
}
