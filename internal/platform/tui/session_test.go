package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/matchem-poker/internal/registry"
)

func init() {
	registry.Register(registry.Mode{
		ID:    "stub",
		Title: "Stub",
		About: "a game that does nothing",
		New:   func() registry.Game { return &stubGame{} },
	})
}

func TestMenuShowsRecords(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("stub", 900, 7); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveSession(SlotName("stub", "ann"), []byte{1}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		user   string
		resume bool
	}{
		{"ann", true},
		{"bob", false},
	}
	for _, tc := range tests {
		t.Run(tc.user, func(t *testing.T) {
			view := NewMenuModel(store, testConfig(), tc.user).View()
			for _, want := range []string{"Stub", "a game that does nothing", "best 00900, level 7"} {
				if !strings.Contains(view, want) {
					t.Errorf("menu lacks %q:\n%s", want, view)
				}
			}
			if got := strings.Contains(view, "[resume]"); got != tc.resume {
				t.Errorf("resume marker = %v, want %v", got, tc.resume)
			}
		})
	}
}

func TestMenuChoices(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want MenuChoice
	}{
		{"enter plays", tea.KeyMsg{Type: tea.KeyEnter}, MenuPlay},
		{"space plays", runeKey(' '), MenuPlay},
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, MenuScores},
		{"q quits", runeKey('q'), MenuQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, MenuQuit},
		{"down stays", tea.KeyMsg{Type: tea.KeyDown}, MenuPending},
		{"click on a mode plays", tea.MouseMsg{Y: menuHeaderRows + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, MenuPlay},
		{"click on the title stays", tea.MouseMsg{Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, MenuPending},
		{"release stays", tea.MouseMsg{Y: menuHeaderRows, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, MenuPending},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, cmd := NewMenuModel(nil, testConfig(), "").Update(tc.msg)
			m := next.(MenuModel)
			if m.Choice() != tc.want {
				t.Fatalf("Choice() = %v, want %v", m.Choice(), tc.want)
			}
			if (cmd != nil) != (tc.want != MenuPending) {
				t.Errorf("cmd = %v, want a quit only when leaving", cmd)
			}
			if m.Mode() != "stub" {
				t.Errorf("Mode() = %q", m.Mode())
			}
		})
	}
}

func TestScoreboardListsLevels(t *testing.T) {
	store := openStore(t)
	for _, g := range []struct{ score, level int }{{900, 7}, {300, 2}} {
		if _, err := store.SaveScore("stub", g.score, g.level); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 80, 24)
	if m.rows != 2 || m.stats.BestLevel != 7 || m.stats.GamesCount != 2 {
		t.Fatalf("rows = %d stats = %+v", m.rows, m.stats)
	}
	view := m.View()
	for _, want := range []string{"< Stub >", "Level", "00900", "00300", "games   2", "level   7"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard lacks %q:\n%s", want, view)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	view := m.View()
	if !strings.Contains(view, "No games finished yet.") || !strings.Contains(view, "nothing yet") {
		t.Errorf("empty scoreboard:\n%s", view)
	}
}

func TestScoreboardExits(t *testing.T) {
	tests := []struct {
		msg        tea.KeyMsg
		back, quit bool
	}{
		{tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{runeKey('b'), true, false},
		{runeKey('q'), false, true},
		{tea.KeyMsg{Type: tea.KeyTab}, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			next, _ := NewScoreboardModel(nil, 80, 24).Update(tc.msg)
			m := next.(ScoreboardModel)
			if m.IsGoingBack() != tc.back || m.IsQuitting() != tc.quit {
				t.Errorf("back = %v quit = %v, want %v %v", m.IsGoingBack(), m.IsQuitting(), tc.back, tc.quit)
			}
		})
	}
}

func step(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, testConfig(), "ann")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.on != viewScores {
		t.Fatalf("tab: view = %v, want scores", m.on)
	}
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.on != viewMenu || m.done {
		t.Fatalf("esc: view = %v done = %v, want menu", m.on, m.done)
	}

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.on != viewGame || cmd == nil {
		t.Fatalf("enter: view = %v, want a running game", m.on)
	}
	g, ok := m.game.game.(*stubGame)
	if !ok || g.slot != "stub:ann" || g.resets != 1 {
		t.Fatalf("game = %+v, want a reset stub in ann's slot", m.game.game)
	}
	if !strings.Contains(m.View(), "stub") {
		t.Errorf("view = %q, want the game frame", m.View())
	}

	g.atMenu = true
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.on != viewMenu || g.saves != 1 {
		t.Fatalf("back from game: view = %v saves = %d", m.on, g.saves)
	}

	m, cmd = step(t, m, runeKey('q'))
	if !m.done || cmd == nil || m.View() != "" {
		t.Error("q on the menu should end the session")
	}
}

func TestSessionTracksWindow(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "")
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game.screen.Width() != 120 || m.game.screen.Height() != 40 {
		t.Errorf("game screen = %dx%d, want the latest window", m.game.screen.Width(), m.game.screen.Height())
	}
}
