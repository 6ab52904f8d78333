package matchem

import (
	"github.com/vovakirdan/matchem-poker/internal/core"
	"github.com/vovakirdan/matchem-poker/internal/particle"
	"github.com/vovakirdan/matchem-poker/internal/tile"
)

// AppState is the screen the application is on.
type AppState int

const (
	AppNotSet AppState = iota
	AppMenu
	AppRunGame
	AppGameOver
	AppPaused
	AppInfoScreen
)

func (s AppState) String() string {
	switch s {
	case AppNotSet:
		return "not_set"
	case AppMenu:
		return "menu"
	case AppRunGame:
		return "run_game"
	case AppGameOver:
		return "game_over"
	case AppPaused:
		return "paused"
	case AppInfoScreen:
		return "info_screen"
	}
	return "unknown"
}

// Hooks is what a game plugs into a Runner.
type Hooks interface {
	StateChanged()
	Click(x, y float64, kind core.PointerKind)
	Advance(dt float64)
	Draw()
	// Load restores a saved game and reports whether one is in progress.
	Load() bool
}

// Runner is the application state machine shared by every screen: it
// chooses the first screen, fades the logo and HUD, and steps the hooks and
// the particle engine once per frame.
type Runner struct {
	state     AppState
	hooks     Hooks
	effects   tile.EffectSink
	particles *particle.Engine

	logoState float64 // 0 hidden, 1 fully visible
	hudState  float64
}

// NewRunner creates a runner in AppNotSet. The first Run decides between
// the pause screen of a restored game and the menu.
func NewRunner(hooks Hooks, effects tile.EffectSink, particles *particle.Engine) *Runner {
	if effects == nil {
		effects = tile.Nop{}
	}
	return &Runner{hooks: hooks, effects: effects, particles: particles}
}

// State returns the current screen.
func (r *Runner) State() AppState { return r.state }

// LogoState returns the logo visibility, 0..1.
func (r *Runner) LogoState() float64 { return r.logoState }

// HudState returns the HUD visibility, 0..1.
func (r *Runner) HudState() float64 { return r.hudState }

// Click forwards a pointer event to the hooks.
func (r *Runner) Click(x, y float64, kind core.PointerKind) {
	r.hooks.Click(x, y, kind)
}

// Run advances one frame of dt seconds.
func (r *Runner) Run(dt float64) {
	logoTarget, hudTarget := 0.0, 0.0

	switch r.state {
	case AppNotSet:
		if r.hooks.Load() {
			r.SetState(AppPaused)
		} else {
			r.SetState(AppMenu)
		}
	case AppMenu:
		logoTarget = 1
	case AppRunGame:
		hudTarget = 1
	}

	r.logoState += (logoTarget - r.logoState) * dt * 8
	r.hudState += (hudTarget - r.hudState) * dt * 4

	r.hooks.Advance(dt)
	if r.particles != nil {
		r.particles.Advance(dt)
	}
}

// Draw renders the current frame through the hooks.
func (r *Runner) Draw() {
	r.hooks.Draw()
}

// SetState switches screens, plays the menu and game over cues and tells
// the hooks.
func (r *Runner) SetState(s AppState) {
	switch s {
	case AppMenu:
		r.effects.EffectNotify(tile.EffectMenu, 0, 0)
	case AppGameOver:
		r.effects.EffectNotify(tile.EffectGameOver, 0, 0)
	}
	r.state = s
	r.hooks.StateChanged()
}
