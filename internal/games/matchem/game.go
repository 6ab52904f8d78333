package matchem

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matchem-poker/internal/config"
	"github.com/vovakirdan/matchem-poker/internal/core"
	"github.com/vovakirdan/matchem-poker/internal/games/matchem/level"
	"github.com/vovakirdan/matchem-poker/internal/random"
	"github.com/vovakirdan/matchem-poker/internal/registry"
)

// Minimum terminal size that still shows readable cards.
const (
	minScreenW = 30
	minScreenH = 16
)

// Screen points the keyboard taps, in screen coordinates.
var (
	tapCenter = [2]float64{0.5, 0.5}
	tapStart  = [2]float64{0.5, 1.0}
	tapInfo   = [2]float64{0.5, 1.4}
	tapResume = [2]float64{0.5, 1.3}
	tapEnd    = [2]float64{0.5, 1.45}
	tapPause  = [2]float64{0.375, 0.1}
)

// Mode selects the rule set.
type Mode int

const (
	ModeNormal Mode = iota // only neighbouring cards swap
	ModeKids               // any two cards swap, slower timer
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("kids" or "normal").
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger sessions created by Reset write to.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Session to the terminal platform: keyboard actions become
// taps at menu buttons or at the card under the cursor, pointer events are
// passed through and the frame is drawn into a character screen.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.MatchemConfig
	session *Session
	sink    *ScreenSink

	store core.SessionStore
	slot  string

	cursor  level.Pos
	lastApp AppState
	frames  uint64
}

// New creates a new Matchem Poker game instance.
func New() *Game {
	return &Game{mode: ModeNormal}
}

// NewKids creates a game that lets any two cards swap.
func NewKids() *Game {
	return &Game{mode: ModeKids}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeKids {
		return "matchem_kids"
	}
	return "matchem"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeKids {
		return "Matchem Poker (Kids)"
	}
	return "Matchem Poker"
}

// AttachStore sets where games are saved and restored. An empty slot uses
// the game ID. It applies to the running session and to later Resets.
func (g *Game) AttachStore(store core.SessionStore, slot string) {
	g.store = store
	g.slot = slot
	if g.session != nil {
		g.session.SetStore(store, g.slotName())
	}
}

func (g *Game) slotName() string {
	if g.slot == "" {
		return g.ID()
	}
	return g.slot
}

// Reset builds a fresh session. The first Step restores a saved game when
// the store holds one, otherwise it opens the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadMatchem(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultMatchemConfig()
	}

	// Apply difficulty preset if set
	preset := difficultyPreset
	if g.mode == ModeKids {
		preset = config.DifficultyKids
	}
	if preset != "" {
		config.ApplyMatchemPreset(&cfg, preset)
	}
	g.cfg = cfg

	aspect := cfg.Screen.Aspect
	if aspect <= 0 {
		aspect = DefaultAspect
	}
	a := cfg.Screen.LevelArea
	g.sink = NewScreenSink(aspect)
	g.session = NewSession(Options{
		Width:            cfg.Grid.Width,
		Height:           cfg.Grid.Height,
		Difficulty:       cfg.Gameplay.Difficulty,
		Aspect:           aspect,
		LevelArea:        level.Area{X: a.X, Y: a.Y, W: a.Width, H: a.Height},
		ParticleCapacity: cfg.Particles.Capacity,
		Curve:            cfg.Timer,
		Renderer:         g.sink,
		Effects:          g.sink,
		Rand:             random.New(runtime.Seed),
		Logger:           logger.With("game", g.ID()),
		Store:            g.store,
		Slot:             g.slotName(),
		CompletedTexts:   cfg.Texts.LevelCompleted,
		InfoLines:        cfg.Texts.Info,
	})

	w, h := g.session.Grid().Size()
	g.cursor = level.Pos{X: w / 2, Y: h / 2}
	g.lastApp = AppNotSet
	g.frames = 0
}

// Resize adopts new screen dimensions without restarting the game.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
}

// Session exposes the running session.
func (g *Game) Session() *Session { return g.session }

// Aspect returns the screen height in screen-width units, for mapping
// terminal cells to pointer coordinates.
func (g *Game) Aspect() float64 {
	if g.session == nil {
		return DefaultAspect
	}
	return g.session.Aspect()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	g.frames++
	s := g.session

	switch s.AppState() {
	case AppMenu:
		switch {
		case in.Has(core.ActionInfo):
			g.tap(tapInfo)
		case in.Has(core.ActionConfirm):
			g.tap(tapStart)
		}

	case AppInfoScreen:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			g.tap(tapCenter)
		}

	case AppGameOver:
		switch {
		case in.Has(core.ActionRestart):
			s.Restart()
		case in.Has(core.ActionConfirm) || in.Has(core.ActionBack):
			g.tap(tapCenter)
		}

	case AppPaused:
		switch {
		case in.Has(core.ActionRestart):
			s.Restart()
		case in.Has(core.ActionBack):
			g.tap(tapEnd)
		case in.Has(core.ActionConfirm) || in.Has(core.ActionPause):
			g.tap(tapResume)
		}

	case AppRunGame:
		g.moveCursor(in)
		switch {
		case in.Has(core.ActionPause) || in.Has(core.ActionBack):
			g.tap(tapPause)
		case in.Has(core.ActionConfirm):
			if s.Grid().State() == level.StateIdle {
				g.tap(tapCenter)
			} else {
				x, y := g.cellCenter(g.cursor)
				s.Tap(x, y, core.PointerDown)
				s.Tap(x, y, core.PointerUp)
			}
		}
	}

	for _, p := range in.Pointers {
		s.Tap(p.X, p.Y, p.Kind)
	}

	s.Run(g.runtime.FrameTime())

	if app := s.AppState(); app != g.lastApp {
		if app == AppPaused || app == AppGameOver {
			g.Save()
		}
		g.lastApp = app
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) tap(p [2]float64) {
	g.session.Tap(p[0], p[1], core.PointerDown)
	g.session.Tap(p[0], p[1], core.PointerUp)
}

// moveCursor keeps the cursor off the top row, which lies under the HUD.
func (g *Game) moveCursor(in core.InputFrame) {
	w, h := g.session.Grid().Size()
	top := min(1, h-1)

	if in.Has(core.ActionLeft) {
		g.cursor.X--
	}
	if in.Has(core.ActionRight) {
		g.cursor.X++
	}
	if in.Has(core.ActionUp) {
		g.cursor.Y--
	}
	if in.Has(core.ActionDown) {
		g.cursor.Y++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, w-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, top, h-1)
}

// Cursor returns the grid position keyboard taps go to.
func (g *Game) Cursor() level.Pos { return g.cursor }

// cellCenter returns the screen point at the middle of a grid cell.
func (g *Game) cellCenter(p level.Pos) (x, y float64) {
	area := g.session.Grid().GameArea()
	w, h := g.session.Grid().Size()
	cw, ch := area.W/float64(w), area.H/float64(h)
	return area.X + (float64(p.X)+0.5)*cw, area.Y + (float64(p.Y)+0.5)*ch
}

// Save writes the running session to the attached store.
func (g *Game) Save() bool {
	if g.session == nil {
		return false
	}
	return g.session.SaveState()
}

// AtMenu reports whether the session is showing its title menu.
func (g *Game) AtMenu() bool {
	return g.session != nil && g.session.AppState() == AppMenu
}

// SeedHighScore raises the session's high score to at least v.
func (g *Game) SeedHighScore(v int) {
	if g.session != nil && v > g.session.HighScore() {
		g.session.SetHighScore(v)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	app := g.session.AppState()
	st := core.GameState{
		Score:    g.session.Score(),
		GameOver: app == AppGameOver,
		Paused:   app == AppPaused,
	}
	if g.session.Playing() || app == AppGameOver {
		st.Level = g.session.Level() + 1
	}
	return st
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	// Check for screen too small
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.sink.Attach(dst)
	g.session.Render()

	s := g.session
	if s.AppState() == AppRunGame && s.Playing() && s.Grid().State() == level.StateNormal {
		g.renderCursor(dst)
	}
	g.renderHUD(dst)
}

// renderCursor brackets the card under the cursor.
func (g *Game) renderCursor(dst *core.Screen) {
	area := g.session.Grid().GameArea()
	w, h := g.session.Grid().Size()
	cw, ch := area.W/float64(w), area.H/float64(h)
	x0 := area.X + float64(g.cursor.X)*cw
	y0 := area.Y + float64(g.cursor.Y)*ch

	c0, r0 := g.sink.Cell(x0+cw*cardMargin, y0)
	c1, r1 := g.sink.Cell(x0+cw*(1-cardMargin), y0+ch)
	row := (r0 + r1) / 2
	dst.SetColored(c0-1, row, '[', core.ColorBrightYellow)
	dst.SetColored(c1, row, ']', core.ColorBrightYellow)
}

// renderHUD writes the text status on the top row, where the meter and
// score rolls sit, and key hints on the bottom row outside the game.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	hi := fmt.Sprintf("HI %05d", s.HighScore())

	switch s.AppState() {
	case AppRunGame, AppPaused:
		status := fmt.Sprintf("LV %d  TIME %02d%%  SCORE %05d", s.Level()+1, s.TimerPercent(), s.Score())
		dst.DrawTextColored(1, 0, status, core.ColorBrightWhite)
		dst.DrawTextColored(dst.Width()-len(hi)-1, 0, hi, core.ColorGray)
		col, _ := g.sink.Cell(tapPause[0], tapPause[1])
		dst.DrawTextColored(col-1, 1, "II", core.ColorYellow)
	default:
		dst.DrawTextColored(dst.Width()-len(hi)-1, 0, hi, core.ColorGray)
	}

	var help string
	switch s.AppState() {
	case AppMenu:
		help = "enter: play  i: how to play  q: quit"
	case AppInfoScreen:
		help = "enter: back"
	case AppPaused:
		help = "enter: resume  esc: end game  r: new game"
	case AppGameOver:
		help = "enter: continue  r: play again"
	}
	if help != "" {
		dst.DrawTextColored(1, dst.Height()-1, help, core.ColorGray)
	}
}

func init() {
	registry.Register(registry.Mode{
		ID:    "matchem",
		Title: "Matchem Poker",
		About: "swap neighbouring cards into runs, flushes and sets",
		New:   func() registry.Game { return New() },
	})
	registry.Register(registry.Mode{
		ID:    "matchem_kids",
		Title: "Matchem Poker (Kids)",
		About: "any two cards swap",
		New:   func() registry.Game { return NewKids() },
	})
}
