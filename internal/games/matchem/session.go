// Package matchem is the Matchem Poker game: a Session that drives the card
// grid through levels, a Runner that moves between menu, game, pause and
// info screens, the save format, and the registry.Game adapter used by the
// terminal platform.
package matchem

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matchem-poker/internal/config"
	"github.com/vovakirdan/matchem-poker/internal/core"
	"github.com/vovakirdan/matchem-poker/internal/games/matchem/level"
	"github.com/vovakirdan/matchem-poker/internal/particle"
	"github.com/vovakirdan/matchem-poker/internal/random"
	"github.com/vovakirdan/matchem-poker/internal/tile"
)

// DefaultAspect is the screen height in screen-width units.
const DefaultAspect = 800.0 / 480

const (
	rollCount      = 7
	timerCeiling   = 256 * 65536
	timerStart     = 100 * 65536
	maxRunFrame    = 0.1
	eventRate      = 4
	levelAreaShift = 0.12
	levelAreaGrow  = 0.1
)

// Options configure a Session. Zero values pick defaults.
type Options struct {
	Width, Height    int
	Difficulty       int // 0 lets any two cards swap
	Aspect           float64
	LevelArea        level.Area // zero maps the grid just above the screen top
	ParticleCapacity int
	Curve            config.TimerCurve // zero picks config.DefaultTimerCurve

	Renderer tile.Renderer
	Effects  tile.EffectSink
	Rand     random.Source
	Logger   *log.Logger

	// Store and Slot hold the saved game. A nil Store disables saving.
	Store core.SessionStore
	Slot  string

	CompletedTexts []string
	InfoLines      []string
}

// Session is the game controller. It owns the grid, the score and the
// level timer, and implements Hooks for its Runner.
type Session struct {
	runner    *Runner
	grid      *level.Grid
	particles *particle.Engine
	renderer  tile.Renderer
	effects   tile.EffectSink
	rng       random.Source
	logger    *log.Logger
	store     core.SessionStore
	slot      string

	aspect         float64
	curve          config.TimerCurve
	completedTexts []string
	infoLines      []string

	// Saved with the game.
	difficulty            int
	blockTimerEffect      float64 // timer change per progress point
	timeTimerEffect       float64 // timer change per second
	levelIndex            int
	targetTimer           float64
	timer                 float64
	score                 int
	displayScore          int
	highScore             int
	gameIsOn              int
	waitBeforeTimerStarts int // 16.16 seconds

	rollPos       [rollCount]float64
	rollTarget    [rollCount]float64
	rollExTarget  [rollCount]float64
	rollVelocity  [rollCount]float64
	levelStateWas level.State

	infoCounter           float64
	timeSinceLastScore    float64
	logoWobble            float64
	logoWobbleInc         float64
	bgAngle               float64
	completedTextCounter  float64
	completedTextAngle    float64
	poem                  string
	levelCompletedCounter float64
	gameOverCounter       float64
	pauseCounter          float64
	eventCounter          float64
	menuCounter           float64
	menuModeCounter       float64
	effectAngle           float64
	bg1, bg2              int
	fadingBg              float64
}

// NewSession creates a session on the not-set screen. The first Run either
// restores the saved game or opens the menu.
func NewSession(opts Options) *Session {
	if opts.Aspect <= 0 {
		opts.Aspect = DefaultAspect
	}
	if opts.Renderer == nil {
		opts.Renderer = tile.Nop{}
	}
	if opts.Effects == nil {
		opts.Effects = tile.Nop{}
	}
	if opts.Rand == nil {
		opts.Rand = random.New(1)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Curve.IsZero() {
		opts.Curve = config.DefaultTimerCurve()
	}
	if len(opts.CompletedTexts) == 0 {
		opts.CompletedTexts = defaultCompletedTexts
	}
	if len(opts.InfoLines) == 0 {
		opts.InfoLines = defaultInfoLines
	}

	particles := particle.New(opts.ParticleCapacity, opts.Renderer, opts.Rand)
	grid := level.New(level.Options{
		Width:      opts.Width,
		Height:     opts.Height,
		Difficulty: opts.Difficulty,
		Renderer:   opts.Renderer,
		Effects:    opts.Effects,
		Particles:  particles,
		Rand:       opts.Rand,
	})
	area := opts.LevelArea
	if area.W <= 0 || area.H <= 0 {
		area = level.Area{X: 0, Y: -levelAreaShift, W: 1, H: opts.Aspect + levelAreaGrow}
	}
	grid.SetGameArea(area.X, area.Y, area.W, area.H)

	s := &Session{
		grid:           grid,
		particles:      particles,
		renderer:       opts.Renderer,
		effects:        opts.Effects,
		rng:            opts.Rand,
		logger:         opts.Logger,
		store:          opts.Store,
		slot:           opts.Slot,
		aspect:         opts.Aspect,
		curve:          opts.Curve,
		completedTexts: opts.CompletedTexts,
		infoLines:      opts.InfoLines,

		difficulty:           opts.Difficulty,
		timeTimerEffect:      65535,
		infoCounter:          -1,
		bg1:                  1,
		fadingBg:             -1,
		menuCounter:          -1,
		menuModeCounter:      -1,
		gameOverCounter:      -1,
		pauseCounter:         -1,
		completedTextCounter: -21,
	}
	s.runner = NewRunner(s, opts.Effects, particles)
	return s
}

// Run advances the whole application one frame of dt seconds.
func (s *Session) Run(dt float64) { s.runner.Run(dt) }

// Render draws the current frame.
func (s *Session) Render() { s.runner.Draw() }

// Tap sends a pointer event in screen coordinates: x runs 0..1 across the
// screen, y 0..Aspect down it.
func (s *Session) Tap(x, y float64, kind core.PointerKind) { s.runner.Click(x, y, kind) }

// AppState returns the current screen.
func (s *Session) AppState() AppState { return s.runner.State() }

// Grid exposes the level.
func (s *Session) Grid() *level.Grid { return s.grid }

// Particles exposes the particle engine.
func (s *Session) Particles() *particle.Engine { return s.particles }

// Aspect returns the screen height in screen-width units.
func (s *Session) Aspect() float64 { return s.aspect }

// Score returns the score of the running game.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int { return s.highScore }

// SetHighScore raises the high score, e.g. from a score table.
func (s *Session) SetHighScore(v int) {
	if v > s.highScore {
		s.highScore = v
	}
}

// Level returns the zero-based level index.
func (s *Session) Level() int { return s.levelIndex }

// Playing reports whether a game is in progress.
func (s *Session) Playing() bool { return s.gameIsOn != 0 }

// TimerPercent returns the level timer as shown on the HUD, 0..99.
func (s *Session) TimerPercent() int {
	v := int(s.timer / timerCeiling * 100)
	return core.Clamp(v, 0, 99)
}

// EndGame ends the running game.
func (s *Session) EndGame() {
	s.gameOver()
}

// Restart abandons any running game and deals level one.
func (s *Session) Restart() {
	s.gameIsOn = 0
	s.setAppState(AppRunGame)
}

// SetStore changes where the game is saved. It takes effect at the next
// Load or SaveState.
func (s *Session) SetStore(store core.SessionStore, slot string) {
	s.store = store
	s.slot = slot
}

func (s *Session) setAppState(st AppState) {
	s.logger.Debug("app state", "from", s.runner.State(), "to", st)
	s.runner.SetState(st)
}

// StateChanged implements Hooks.
func (s *Session) StateChanged() {
	s.infoCounter = -1
	s.pauseCounter = -1

	switch s.runner.State() {
	case AppPaused:
		s.completedTextCounter = -21
		s.pauseCounter = 0
	case AppGameOver:
		s.completedTextCounter = -21
		s.grid.SetState(level.StateGameOver)
	case AppRunGame:
		if s.gameIsOn == 0 {
			s.NextLevel(0)
		}
	case AppMenu:
		s.changeBg(0)
		s.timeTimerEffect = 1
		s.logoWobble = 1
		s.menuCounter = 0
		s.menuModeCounter = 0
		s.completedTextCounter = -21
	case AppInfoScreen:
		s.infoCounter = 0
	}
}

// Click implements Hooks.
func (s *Session) Click(x, y float64, kind core.PointerKind) {
	if s.runner.State() == AppInfoScreen {
		if kind == core.PointerDown {
			s.setAppState(AppMenu)
		}
		return
	}

	if kind == core.PointerDown {
		switch s.runner.State() {
		case AppGameOver:
			if s.grid.State() == level.StateIdle {
				if s.gameOverCounter < 6 {
					s.gameOverCounter = 6
				} else {
					s.setAppState(AppMenu)
				}
			}
			return

		case AppPaused:
			if y > zoneResumeTop {
				if y > zoneEndTop {
					s.gameOver()
				} else {
					s.setAppState(AppRunGame)
				}
			}
			return

		case AppMenu:
			switch {
			case x > zoneCornerLeft && y < zoneCornerBottom:
				// Reserved for an exit button.
			case y > zoneInfoTop:
				s.setAppState(AppInfoScreen)
			case y < zoneLogoBottom:
				s.logoWobbleInc += 16000.0 / 65536
			default:
				s.setAppState(AppRunGame)
				s.logoWobble = -20000.0 / 65536
			}
			return

		default:
			if s.grid.State() == level.StateIdle {
				s.NextLevel(-1)
			} else if y < zoneHudBottom {
				if x > zonePauseLeft && x < zonePauseRight {
					s.setAppState(AppPaused)
				} else {
					return
				}
			}
		}
	}

	if s.gameIsOn != 0 && s.runner.State() == AppRunGame && s.grid.State() != level.StateIdle {
		s.grid.Click(x, y, kind)
	}
}

// Screen zones in screen coordinates.
const (
	zoneResumeTop    = 83000.0 / 65536
	zoneEndTop       = 90000.0 / 65536
	zoneCornerLeft   = 42000.0 / 65536
	zoneCornerBottom = 10000.0 / 65536
	zoneInfoTop      = 84000.0 / 65536
	zoneLogoBottom   = 60000.0 / 65536
	zoneHudBottom    = 12000.0 / 65536
	zonePauseLeft    = 21000.0 / 65536
	zonePauseRight   = 28000.0 / 65536
)

// Advance implements Hooks.
func (s *Session) Advance(dt float64) {
	if dt > maxRunFrame {
		dt = maxRunFrame
	}
	app := s.runner.State()

	if s.infoCounter >= 0 {
		s.infoCounter += dt
	}
	s.effectAngle += dt

	if s.fadingBg >= 0 {
		s.fadingBg += dt
		if s.fadingBg >= 1 {
			s.bg1 = s.bg2
			s.bg2 = 0
			s.fadingBg = -1
		}
	}

	if app == AppMenu {
		s.menuCounter += dt
		s.menuModeCounter += dt
	} else {
		if s.menuCounter >= 0 {
			s.menuCounter = min(s.menuCounter, 3) - dt
		}
		if s.menuModeCounter >= 0 {
			s.menuModeCounter = min(s.menuModeCounter, 2) - dt*2
		}
	}

	ls := s.grid.State()
	if s.gameIsOn != 0 && (ls == level.StateIdle || ls == level.StateLevelCompleted) {
		s.levelCompletedCounter += dt
	} else {
		s.levelCompletedCounter = min(s.levelCompletedCounter, 3)
		if s.levelCompletedCounter > -1 {
			s.levelCompletedCounter -= dt * 2
		}
	}

	s.eventCounter += dt * eventRate
	for s.eventCounter > 1 {
		s.eventTick(app)
	}

	s.bgAngle += dt

	g := s.logoWobble * dt * 8
	s.logoWobbleInc -= g
	g = s.logoWobbleInc * dt * 4
	s.logoWobbleInc -= g
	g = s.logoWobbleInc * dt * 8
	s.logoWobble += g

	if s.gameOverCounter >= 0 {
		s.gameOverCounter += dt
	}
	if s.pauseCounter >= 0 {
		s.pauseCounter += dt
	}
	s.completedTextAngle += dt

	if app == AppGameOver || app == AppRunGame {
		s.grid.Advance(dt)
	}
	if app == AppRunGame {
		s.advanceGame(dt)
	}

	if ls := s.grid.State(); ls != s.levelStateWas {
		s.logger.Debug("level state", "level", s.levelIndex+1, "from", s.levelStateWas, "to", ls)
		s.levelStateWas = ls
	}

	s.advanceRolls(dt)
}

// eventTick runs the 4 Hz housekeeping: menu fireworks, the in-game timer
// speed-up, idle sparkles, hint wobbles and the displayed score.
func (s *Session) eventTick(app AppState) {
	sprays := s.grid.Sprays()

	switch app {
	case AppMenu:
		if s.rng.Intn(256) < 128 {
			dx := s.rng.Float64() - 0.5
			dy := s.rng.Float64() - 1
			s.particles.Spray((7+s.rng.Intn(5))*5, 0.5+dx, 0.16, s.rng.Float64()*0.1,
				dx, dy, s.rng.Float64(), 0, sprays.Fruit)
		}
		s.eventCounter = 0

	case AppRunGame:
		s.timeTimerEffect -= s.curve.SpeedUp

		if s.grid.State() == level.StateIdle {
			for j := 0; j < 3; j++ {
				if s.rng.Intn(256) < 100 {
					s.particles.Spray(10, s.rng.Float64(), 0.33+s.rng.Float64()*0.3, 0.3, 0, 0, 1.5, 0, sprays.Sparkle)
				}
			}
		}

		if s.grid.State() == level.StateNormal && s.timeSinceLastScore > float64(s.curve.HintDelay(s.levelIndex)) {
			if s.rng.Intn(256) < 32 {
				s.grid.WobbleHint()
			}
		}
	}
	s.eventCounter--

	d := (s.score - s.displayScore) / 2
	if d == 0 {
		switch {
		case s.displayScore > s.score:
			d = -1
		case s.displayScore < s.score:
			d = 1
		}
	}
	s.displayScore += d
}

// advanceGame moves score and progress from the grid into the session and
// decides when the level is won or lost.
func (s *Session) advanceGame(dt float64) {
	add := s.grid.TakeScore()
	if add > 0 {
		s.timeSinceLastScore = 0
	}
	s.score += add
	if s.score > s.highScore {
		s.highScore = s.score
	}

	s.targetTimer += float64(s.grid.TakeProgressChange()) * s.blockTimerEffect
	s.timer = s.targetTimer

	if s.completedTextCounter >= -20 && s.grid.State() != level.StateLevelCompleted {
		s.completedTextCounter += dt * 28
		if s.completedTextCounter > 800 {
			s.completedTextCounter = -21
		}
	}

	if s.grid.State() != level.StateNormal {
		return
	}
	s.timeSinceLastScore += dt
	if s.timeSinceLastScore*65536 > float64(s.waitBeforeTimerStarts) {
		s.targetTimer += dt * s.timeTimerEffect
	}
	if s.grid.DoingNothing() {
		if s.targetTimer >= timerCeiling {
			s.levelCompleted()
		}
		if s.targetTimer <= 0 {
			s.gameOver()
		}
	}
}

// advanceRolls springs the seven HUD digits toward the timer percentage and
// the displayed score.
func (s *Session) advanceRolls(dt float64) {
	v := min(int(s.timer/timerCeiling*100), 99)

	s.rollTarget[0] = float64(v / 10 % 10)
	s.rollTarget[1] = float64(v % 10)
	div := 10000
	for i := 2; i < rollCount; i++ {
		s.rollTarget[i] = float64(s.displayScore / div % 10)
		div /= 10
	}

	changed := false
	for i := range s.rollPos {
		if s.rollTarget[i] != s.rollExTarget[i] {
			changed = true
		}
		s.rollExTarget[i] = s.rollTarget[i]

		delta := s.rollTarget[i] - s.rollPos[i]
		if neg := s.rollTarget[i] - 10 - s.rollPos[i]; abs(delta) > abs(neg) {
			delta = neg
		}
		if plus := s.rollTarget[i] + 10 - s.rollPos[i]; abs(delta) > abs(plus) {
			delta = plus
		}

		s.rollVelocity[i] += delta * dt * 8
		s.rollVelocity[i] -= s.rollVelocity[i] * dt * 8
		s.rollPos[i] += s.rollVelocity[i]

		if s.rollPos[i] < 0 {
			s.rollPos[i] += 10
		} else if s.rollPos[i] >= 10 {
			s.rollPos[i] -= 10
		}
	}

	if changed {
		s.effects.EffectNotify(tile.EffectScoreChanged, 0, 0)
	}
}

// NextLevel deals the next level. A non-negative restartAt starts a new game
// at that level instead.
func (s *Session) NextLevel(restartAt int) {
	if restartAt >= 0 {
		s.levelIndex = restartAt
		s.score = 0
		s.displayScore = 0
		s.gameIsOn = 1
		s.gameOverCounter = -1
	} else {
		s.levelIndex++
		s.score += s.levelIndex * s.levelIndex * 10
	}

	s.timeSinceLastScore = 0
	s.completedTextCounter = -21
	s.targetTimer = timerStart
	s.timer = s.targetTimer
	s.timeTimerEffect = s.curve.TimeEffect(s.levelIndex)
	s.blockTimerEffect = s.curve.BlockEffect(s.levelIndex)
	s.waitBeforeTimerStarts = s.curve.GraceTime(s.levelIndex)

	s.logger.Debug("next level", "level", s.levelIndex+1, "score", s.score)
	s.grid.CreateLevel(s.levelIndex)
	s.changeBg(-1)
}

func (s *Session) levelCompleted() {
	s.levelCompletedCounter = 0
	s.completedTextCounter = -20
	s.poem = s.completedTexts[s.levelIndex%len(s.completedTexts)]
	s.effects.EffectNotify(tile.EffectLevelCompleted, 0, 0)
	s.grid.SetState(level.StateLevelCompleted)
	s.score += s.levelIndex * 100
	if s.score > s.highScore {
		s.highScore = s.score
	}
	s.particles.Spray(20, 0.5, 20000.0/65536, 1000.0/65536, 0, -50000.0/65536, 1, 0, s.grid.Sprays().Fruit)
	s.logger.Info("level completed", "level", s.levelIndex+1, "score", s.score)
}

func (s *Session) gameOver() {
	s.gameOverCounter = 0
	s.gameIsOn = 0
	s.logger.Info("game over", "level", s.levelIndex+1, "score", s.score)
	s.setAppState(AppGameOver)
}

// changeBg starts fading to background newBg; -1 alternates by level.
func (s *Session) changeBg(newBg int) {
	if newBg == -1 {
		newBg = (s.levelIndex + 1) & 1
	}
	s.bg2 = newBg
	if s.bg1 == s.bg2 {
		return
	}
	s.fadingBg = 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
