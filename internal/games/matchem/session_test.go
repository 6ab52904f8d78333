package matchem

import (
	"testing"

	"github.com/vovakirdan/matchem-poker/internal/config"
	"github.com/vovakirdan/matchem-poker/internal/core"
	"github.com/vovakirdan/matchem-poker/internal/games/matchem/level"
	"github.com/vovakirdan/matchem-poker/internal/random"
	"github.com/vovakirdan/matchem-poker/internal/tile"
)

const frame = 1.0 / 60

type memStore struct {
	data  map[string][]byte
	err   error
	saves int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) LoadSession(slot string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.data[slot], nil
}

func (m *memStore) SaveSession(slot string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.data[slot] = append([]byte(nil), data...)
	m.saves++
	return nil
}

func newTestSession(rec *tile.Recorder, store core.SessionStore) *Session {
	opts := Options{Renderer: rec, Effects: rec, Rand: random.New(5), Difficulty: 1}
	if store != nil {
		opts.Store = store
		opts.Slot = "test"
	}
	return NewSession(opts)
}

func tapAt(s *Session, x, y float64) {
	s.Tap(x, y, core.PointerDown)
	s.Tap(x, y, core.PointerUp)
}

// startGame opens the menu and presses start.
func startGame(t *testing.T, s *Session) {
	t.Helper()
	s.Run(frame)
	if s.AppState() != AppMenu {
		t.Fatalf("state = %v, expected menu", s.AppState())
	}
	tapAt(s, 0.5, 1.0)
	if s.AppState() != AppRunGame {
		t.Fatalf("state = %v after start, expected run_game", s.AppState())
	}
}

func runUntil(t *testing.T, s *Session, what string, done func() bool) {
	t.Helper()
	for range 1200 {
		if done() {
			return
		}
		s.Run(frame)
	}
	t.Fatalf("%s did not happen within 20 seconds", what)
}

func waitForPlay(t *testing.T, s *Session) {
	t.Helper()
	runUntil(t, s, "deal", func() bool { return s.Grid().State() == level.StateNormal })
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(Options{})
	if s.AppState() != AppNotSet {
		t.Errorf("state = %v, expected not_set", s.AppState())
	}
	if s.Aspect() != DefaultAspect {
		t.Errorf("aspect = %v, expected %v", s.Aspect(), DefaultAspect)
	}
	w, h := s.Grid().Size()
	if w != level.DefaultWidth || h != level.DefaultHeight {
		t.Errorf("grid = %dx%d", w, h)
	}
	a := s.Grid().GameArea()
	if d := a.H - (DefaultAspect + levelAreaGrow); a.Y != -levelAreaShift || d > 1e-9 || d < -1e-9 {
		t.Errorf("game area = %+v", a)
	}
	if s.Playing() {
		t.Error("new session should not be playing")
	}
}

func TestStartGameDealsFirstLevel(t *testing.T) {
	rec := &tile.Recorder{}
	s := newTestSession(rec, nil)
	startGame(t, s)

	if !s.Playing() {
		t.Error("game should be on after start")
	}
	if s.Level() != 0 || s.Score() != 0 {
		t.Errorf("level = %d, score = %d", s.Level(), s.Score())
	}
	if s.Grid().State() != level.StateBeginning {
		t.Errorf("level state = %v, expected beginning", s.Grid().State())
	}
	if s.TimerPercent() != 39 {
		t.Errorf("timer = %d%%, expected 39", s.TimerPercent())
	}
	if rec.Count(tile.EffectNewLevel) != 1 {
		t.Errorf("new level cues = %d", rec.Count(tile.EffectNewLevel))
	}
}

func TestNextLevelTimers(t *testing.T) {
	s := newTestSession(&tile.Recorder{}, nil)
	s.Run(frame)
	curve := config.DefaultTimerCurve()

	s.NextLevel(0)
	if s.timeTimerEffect != curve.TimeEffect(0) {
		t.Errorf("time effect = %v, expected %v", s.timeTimerEffect, curve.TimeEffect(0))
	}
	if s.blockTimerEffect != curve.BlockEffect(0) {
		t.Errorf("block effect = %v, expected %v", s.blockTimerEffect, curve.BlockEffect(0))
	}
	if s.waitBeforeTimerStarts != 65536*5 {
		t.Errorf("wait = %d, expected %d", s.waitBeforeTimerStarts, 65536*5)
	}
	if s.targetTimer != timerStart || s.timer != timerStart {
		t.Errorf("timer = %v/%v, expected %v", s.timer, s.targetTimer, float64(timerStart))
	}

	s.completedTextCounter = 300
	s.NextLevel(-1)
	if s.completedTextCounter != -21 {
		t.Errorf("completed text counter = %v, expected -21", s.completedTextCounter)
	}
	if s.Level() != 1 || s.Score() != 10 {
		t.Errorf("after level 2: level = %d, score = %d, expected 1 and 10", s.Level(), s.Score())
	}
	s.NextLevel(-1)
	if s.Level() != 2 || s.Score() != 50 {
		t.Errorf("after level 3: level = %d, score = %d, expected 2 and 50", s.Level(), s.Score())
	}

	s.NextLevel(0)
	if s.Level() != 0 || s.Score() != 0 || !s.Playing() {
		t.Errorf("restart: level = %d, score = %d, playing = %v", s.Level(), s.Score(), s.Playing())
	}
}

func TestMenuZones(t *testing.T) {
	s := newTestSession(&tile.Recorder{}, nil)
	s.Run(frame)

	tapAt(s, 0.8, 0.05)
	if s.AppState() != AppMenu {
		t.Errorf("corner tap: state = %v, expected menu", s.AppState())
	}

	tapAt(s, 0.5, 0.5)
	if s.AppState() != AppMenu {
		t.Errorf("logo tap: state = %v, expected menu", s.AppState())
	}
	if s.logoWobbleInc <= 0 {
		t.Error("logo tap should wobble the logo")
	}

	tapAt(s, 0.5, 1.4)
	if s.AppState() != AppInfoScreen {
		t.Fatalf("info tap: state = %v, expected info_screen", s.AppState())
	}
	tapAt(s, 0.1, 0.1)
	if s.AppState() != AppMenu {
		t.Errorf("tap on info: state = %v, expected menu", s.AppState())
	}
}

func TestPauseResumeAndEnd(t *testing.T) {
	s := newTestSession(&tile.Recorder{}, nil)
	startGame(t, s)

	tapAt(s, 0.1, 0.1)
	if s.AppState() != AppRunGame {
		t.Errorf("HUD tap outside the pause button: state = %v", s.AppState())
	}

	tapAt(s, 0.375, 0.1)
	if s.AppState() != AppPaused {
		t.Fatalf("pause tap: state = %v, expected paused", s.AppState())
	}

	tapAt(s, 0.5, 0.5)
	if s.AppState() != AppPaused {
		t.Errorf("tap above the pause buttons: state = %v", s.AppState())
	}

	tapAt(s, 0.5, 1.3)
	if s.AppState() != AppRunGame {
		t.Fatalf("resume tap: state = %v, expected run_game", s.AppState())
	}
	if !s.Playing() || s.Level() != 0 {
		t.Error("resuming should keep the running game")
	}

	tapAt(s, 0.375, 0.1)
	tapAt(s, 0.5, 1.45)
	if s.AppState() != AppGameOver {
		t.Fatalf("end tap: state = %v, expected game_over", s.AppState())
	}
	if s.Playing() {
		t.Error("game should be off after ending it")
	}
	if s.Grid().State() != level.StateGameOver {
		t.Errorf("level state = %v, expected game_over", s.Grid().State())
	}
}

func TestGameOverReturnsToMenu(t *testing.T) {
	s := newTestSession(&tile.Recorder{}, nil)
	startGame(t, s)
	s.EndGame()

	tapAt(s, 0.5, 0.5)
	if s.AppState() != AppGameOver {
		t.Fatalf("tap during the game over animation left the screen")
	}

	runUntil(t, s, "game over animation", func() bool { return s.Grid().State() == level.StateIdle })

	tapAt(s, 0.5, 0.5)
	if s.AppState() != AppGameOver {
		t.Errorf("first tap should skip the reveal, state = %v", s.AppState())
	}
	if s.gameOverCounter < 6 {
		t.Errorf("game over counter = %v, expected at least 6", s.gameOverCounter)
	}
	tapAt(s, 0.5, 0.5)
	if s.AppState() != AppMenu {
		t.Errorf("second tap: state = %v, expected menu", s.AppState())
	}
}

func TestTimerRunsOut(t *testing.T) {
	rec := &tile.Recorder{}
	s := newTestSession(rec, nil)
	startGame(t, s)
	waitForPlay(t, s)

	s.targetTimer = 1
	s.waitBeforeTimerStarts = 0
	s.Run(frame)

	if s.AppState() != AppGameOver {
		t.Fatalf("state = %v, expected game_over", s.AppState())
	}
	if rec.Count(tile.EffectGameOver) != 1 {
		t.Errorf("game over cues = %d", rec.Count(tile.EffectGameOver))
	}
}

func TestTimerWaitsBeforeDraining(t *testing.T) {
	s := newTestSession(&tile.Recorder{}, nil)
	startGame(t, s)
	waitForPlay(t, s)

	s.timeSinceLastScore = 0
	before := s.targetTimer
	s.Run(frame)
	if s.targetTimer != before {
		t.Errorf("timer moved from %v to %v during the grace time", before, s.targetTimer)
	}

	s.waitBeforeTimerStarts = 0
	s.Run(frame)
	if s.targetTimer >= before {
		t.Errorf("timer = %v, expected it to drain below %v", s.targetTimer, before)
	}
}

func TestLevelCompleted(t *testing.T) {
	rec := &tile.Recorder{}
	s := newTestSession(rec, nil)
	startGame(t, s)
	waitForPlay(t, s)

	s.targetTimer = timerCeiling
	s.Run(frame)

	if s.Grid().State() != level.StateLevelCompleted {
		t.Fatalf("level state = %v, expected level_completed", s.Grid().State())
	}
	if rec.Count(tile.EffectLevelCompleted) != 1 {
		t.Errorf("level completed cues = %d", rec.Count(tile.EffectLevelCompleted))
	}
	if s.poem != defaultCompletedTexts[0] {
		t.Errorf("poem = %q", s.poem)
	}
	if s.AppState() != AppRunGame {
		t.Errorf("state = %v, expected run_game", s.AppState())
	}

	runUntil(t, s, "level completed animation", func() bool { return s.Grid().State() == level.StateIdle })
	tapAt(s, 0.5, 0.5)
	if s.Level() != 1 {
		t.Errorf("tap on the finished level: level = %d, expected 1", s.Level())
	}
	if s.Score() != 10 {
		t.Errorf("score = %d, expected the level bonus 10", s.Score())
	}
}

func TestHighScoreFollowsScore(t *testing.T) {
	s := newTestSession(&tile.Recorder{}, nil)
	s.SetHighScore(500)
	s.SetHighScore(100)
	if s.HighScore() != 500 {
		t.Errorf("high score = %d, expected 500", s.HighScore())
	}

	startGame(t, s)
	s.score = 900
	s.advanceGame(frame)
	if s.HighScore() != 900 {
		t.Errorf("high score = %d, expected 900", s.HighScore())
	}
}

func TestDisplayScoreRolls(t *testing.T) {
	s := newTestSession(&tile.Recorder{}, nil)
	startGame(t, s)
	s.score = 1234

	runUntil(t, s, "score roll", func() bool { return s.displayScore == s.score })
	if s.rollTarget[rollCount-1] != 4 || s.rollTarget[rollCount-2] != 3 {
		t.Errorf("roll targets = %v", s.rollTarget)
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() uint64 {
		s := newTestSession(&tile.Recorder{}, nil)
		startGame(t, s)
		w, _ := s.Grid().Size()
		for i := range 900 {
			if i%45 == 0 {
				x := (float64(i/45%w) + 0.5) / float64(w)
				tapAt(s, x, 0.9)
			}
			s.Run(frame)
		}
		snap := s.Snapshot()
		return snap.Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("hashes differ: %d vs %d", a, b)
	}
}

func TestWrapWords(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"the quick brown fox", 9, []string{"the quick", "brown fox"}},
		{"one", 10, []string{"one"}},
		{"", 10, nil},
		{"a\nb c", 3, []string{"a b", "c"}},
		{"enormousword fits", 4, []string{"enormousword", "fits"}},
	}
	for _, tt := range tests {
		got := wrapWords(tt.text, tt.width)
		if len(got) != len(tt.want) {
			t.Errorf("wrapWords(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("wrapWords(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
				break
			}
		}
	}
}
