package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matchem-poker/internal/core"
	"github.com/vovakirdan/matchem-poker/internal/registry"
	"github.com/vovakirdan/matchem-poker/internal/storage"
)

// MenuChoice is how the mode picker was left.
type MenuChoice int

const (
	MenuPending MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// MenuEntry is one mode on the picker.
type MenuEntry struct {
	Mode      registry.Mode
	Best      int  // best recorded score, 0 if none
	BestLevel int  // furthest level reached, 0 if none
	Saved     bool // a game in progress waits in the player's slot
}

// Rows before the first entry, and rows per entry.
const (
	menuHeaderRows = 5
	menuEntryRows  = 2
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuSavedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// MenuModel picks a mode, or heads to the scoreboard.
type MenuModel struct {
	entries []MenuEntry
	cursor  int
	config  core.RuntimeConfig
	keys    *KeyMapper
	choice  MenuChoice
}

// NewMenuModel lists the registered modes with user's records ("" for local
// play). A nil store lists the modes alone.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, user string) MenuModel {
	var stats map[string]storage.GameStats
	if store != nil {
		//nolint:errcheck // missing stats only hide the records
		stats, _ = store.AllStats()
	}

	var entries []MenuEntry
	for _, mode := range registry.Modes() {
		e := MenuEntry{Mode: mode}
		if st, ok := stats[mode.ID]; ok {
			e.Best, e.BestLevel = st.HighScore, st.BestLevel
		}
		if store != nil {
			data, err := store.LoadSession(SlotName(mode.ID, user))
			e.Saved = err == nil && len(data) > 0
		}
		entries = append(entries, e)
	}

	return MenuModel{entries: entries, config: cfg, keys: NewKeyMapper()}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if i := (msg.Y - menuHeaderRows) / menuEntryRows; msg.Y >= menuHeaderRows && i < len(m.entries) {
			m.cursor = i
			return m.leave(MenuPlay)
		}

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.entries)-1)
		case MenuActionSelect:
			if len(m.entries) > 0 {
				return m.leave(MenuPlay)
			}
		case MenuActionScoreboard:
			return m.leave(MenuScores)
		case MenuActionQuit, MenuActionBack:
			return m.leave(MenuQuit)
		}
	}
	return m, nil
}

func (m MenuModel) leave(c MenuChoice) (tea.Model, tea.Cmd) {
	m.choice = c
	return m, tea.Quit
}

func (m MenuModel) View() string {
	if m.choice == MenuQuit {
		return ""
	}
	width := m.config.ScreenW

	lines := []string{
		"",
		menuTitleStyle.Render("M A T C H E M   P O K E R"),
		"",
		menuDimStyle.Render("swap cards, make hands, beat the clock"),
		"",
	}
	for i, e := range m.entries {
		title := "  " + e.Mode.Title
		if i == m.cursor {
			title = menuActiveStyle.Render("> " + e.Mode.Title)
		}
		if e.Best > 0 {
			title += menuDimStyle.Render(fmt.Sprintf("   best %05d, level %d", e.Best, e.BestLevel))
		}
		if e.Saved {
			title += menuSavedStyle.Render("   [resume]")
		}
		lines = append(lines, title, menuDimStyle.Render("    "+e.Mode.About))
	}
	lines = append(lines, "", menuDimStyle.Render("up/down: choose   enter: play   tab: scores   q: quit"))

	for i, l := range lines {
		lines[i] = centerText(l, width)
	}
	return strings.Join(lines, "\n")
}

// Choice reports how the picker was left; MenuPending while it is open.
func (m MenuModel) Choice() MenuChoice { return m.choice }

// Mode returns the highlighted mode ID.
func (m MenuModel) Mode() string {
	if len(m.entries) == 0 {
		return ""
	}
	return m.entries[m.cursor].Mode.ID
}

// Config returns the runtime config, resized to the latest window.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText pads text to sit in the middle of width columns. Styling does
// not count towards its width.
func centerText(text string, width int) string {
	if w := lipgloss.Width(text); w < width {
		return strings.Repeat(" ", (width-w)/2) + text
	}
	return text
}

// RunMenu shows the picker on the local terminal and returns the finished model.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuModel, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg, ""), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return MenuModel{config: cfg, choice: MenuQuit}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuModel{config: cfg, choice: MenuQuit}, nil
	}
	return m, nil
}
