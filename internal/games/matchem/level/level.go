// Package level implements the Matchem Poker card grid.
//
// A Grid owns a width x height board of cards. The player swaps neighbouring
// cards to form poker hands (straights, suit runs, rank groups) which are
// destroyed, scored and refilled from the top. All coordinates inside the
// package are grid space, 0..1 on both axes; the game area maps grid space to
// the coordinates seen by the renderer and by pointer input.
//
// A Grid is not safe for concurrent use. The host drives it with Advance and
// Draw from a single goroutine.
package level

import (
	"math"

	"github.com/vovakirdan/matchem-poker/internal/core"
	"github.com/vovakirdan/matchem-poker/internal/particle"
	"github.com/vovakirdan/matchem-poker/internal/random"
	"github.com/vovakirdan/matchem-poker/internal/tile"
)

// Default board size.
const (
	DefaultWidth  = 6
	DefaultHeight = 8
)

const (
	tileSizeAdd   = 3000.0 / 65536
	maxFrameTime  = 0.15
	spawnAttempts = 1000
	unstickTries  = 2000
	startupTime   = 5.0
	gameOverFloor = -32.0
	deadBoardTag  = 50 << 16
	hintTag       = 51 << 16
	none          = -1
)

var deckPos = core.Vec2{X: 52000.0 / 65536, Y: 14000.0 / 65536}

// State is the lifecycle of a level.
type State int

const (
	StateIdle State = iota
	StateBeginning
	StateNormal
	StateLevelCompleted
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBeginning:
		return "beginning"
	case StateNormal:
		return "normal"
	case StateLevelCompleted:
		return "level_completed"
	case StateGameOver:
		return "game_over"
	}
	return "unknown"
}

// Area is the rectangle grid space is mapped into.
type Area struct {
	X, Y, W, H float64
}

// Pos is a grid position.
type Pos struct {
	X, Y int
}

// Options configure a new Grid. Zero values pick defaults.
type Options struct {
	Width, Height int
	Difficulty    int // 0 lets any two cards swap
	Renderer      tile.Renderer
	Effects       tile.EffectSink
	Particles     *particle.Engine
	Rand          random.Source
}

// Sprays are the particle templates the grid emits.
type Sprays struct {
	Score   *particle.SprayType
	Smoke   *particle.SprayType
	Sparkle *particle.SprayType
	Fruit   *particle.SprayType
	Morph   *particle.SprayType
}

// Grid is the level simulation.
type Grid struct {
	width, height int
	item          core.Vec2 // cell size in grid space
	cells         []Cell
	state         State
	difficulty    int
	level         int

	renderer  tile.Renderer
	effects   tile.EffectSink
	particles *particle.Engine
	rng       random.Source
	area      Area
	sprays    Sprays

	changing        [2]int // cell indices of the swap pair, none when unset
	changingCounter float64
	dragBegan       bool
	hint            [2]int

	startupCounter  float64
	floatingAngle   float64
	deckVisibility  float64
	destroyingRound int

	levelScore     int
	progressChange int
	doingNothing   bool
	hasMoves       bool
}

// New creates an idle grid with every slot empty.
func New(opts Options) *Grid {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
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
	if opts.Particles == nil {
		opts.Particles = particle.New(particle.DefaultCapacity, opts.Renderer, opts.Rand)
	}

	g := &Grid{
		difficulty: opts.Difficulty,
		renderer:   opts.Renderer,
		effects:    opts.Effects,
		particles:  opts.Particles,
		rng:        opts.Rand,
		area:       Area{W: 1, H: 1},
		changing:   [2]int{none, none},
		hint:       [2]int{none, none},
	}
	g.sprays = newSprays(g)
	g.resetGrid(opts.Width, opts.Height)
	return g
}

func (g *Grid) resetGrid(width, height int) {
	g.width = width
	g.height = height
	g.hint = [2]int{none, none}
	g.item = core.Vec2{X: 1 / float64(width), Y: 1 / float64(height)}
	g.cells = make([]Cell, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := &g.cells[y*width+x]
			c.X, c.Y = x, y
			c.Index = NoCard
			c.Base = core.Vec2{
				X: float64(x)/float64(width) + 0.5/float64(width) - g.item.X/2,
				Y: float64(y)/float64(height) + 0.5/float64(height) - g.item.Y/2,
			}
			c.Destroying = -1
			c.Dropping = -1
		}
	}
}

// Size returns the board dimensions.
func (g *Grid) Size() (width, height int) { return g.width, g.height }

// Cell returns the cell at (x, y), or nil outside the board.
func (g *Grid) Cell(x, y int) *Cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil
	}
	return &g.cells[y*g.width+x]
}

func (g *Grid) at(i int) *Cell {
	if i == none {
		return nil
	}
	return &g.cells[i]
}

func (g *Grid) indexOf(c *Cell) int {
	if c == nil {
		return none
	}
	return c.Y*g.width + c.X
}

// State returns the current level state.
func (g *Grid) State() State { return g.state }

// SetState switches state and runs its entry actions.
func (g *Grid) SetState(s State) {
	g.state = s
	switch s {
	case StateBeginning:
		g.zeroMask(FlagCalcTemp)
		g.effects.EffectNotify(tile.EffectNewLevel, 0, 0)
		g.startupCounter = startupTime
	case StateGameOver:
		g.startupCounter = float64(g.width * g.height)
	case StateLevelCompleted:
		g.zeroMask(FlagCalcTemp)
		g.startupCounter = startupTime
	}
}

// Difficulty returns the swap rule, 0 meaning unrestricted swaps.
func (g *Grid) Difficulty() int { return g.difficulty }

// SetDifficulty changes the swap rule.
func (g *Grid) SetDifficulty(d int) { g.difficulty = d }

// Level returns the level index the board was created for.
func (g *Grid) Level() int { return g.level }

// SetGameArea maps grid space into the given rectangle.
func (g *Grid) SetGameArea(x, y, w, h float64) {
	g.area = Area{X: x, Y: y, W: w, H: h}
}

// GameArea returns the current mapping rectangle.
func (g *Grid) GameArea() Area { return g.area }

// Sprays returns the grid's particle templates.
func (g *Grid) Sprays() Sprays { return g.sprays }

// Particles returns the engine the grid sprays into.
func (g *Grid) Particles() *particle.Engine { return g.particles }

// DoingNothing reports whether the last Advance saw no destroy, drop or refill.
func (g *Grid) DoingNothing() bool { return g.doingNothing }

// HasMoves reports whether the last move search found a move.
func (g *Grid) HasMoves() bool { return g.hasMoves }

// TakeScore returns the score gathered since the last call and clears it.
func (g *Grid) TakeScore() int {
	v := g.levelScore
	g.levelScore = 0
	return v
}

// TakeProgressChange returns the timer progress gathered since the last call
// and clears it.
func (g *Grid) TakeProgressChange() int {
	v := g.progressChange
	g.progressChange = 0
	return v
}

func (g *Grid) toAreaX(x float64) float64 { return g.area.X + x*g.area.W }
func (g *Grid) toAreaY(y float64) float64 { return g.area.Y + y*g.area.H }

// center returns the middle of a cell in area coordinates.
func (g *Grid) center(c *Cell) (float64, float64) {
	return g.toAreaX(c.Base.X + g.item.X/2), g.toAreaY(c.Base.Y + g.item.Y/2)
}

// randomBlock draws a new card for the current level.
func (g *Grid) randomBlock() int {
	idx := g.rng.Intn(4)*13 + (13 - drawRanks) + g.rng.Intn(drawRanks)

	emptyProb := -2 + g.level*3
	if emptyProb > 38 {
		emptyProb = 48
	}
	if g.rng.Intn(256) < emptyProb {
		idx = EmptyCard
	}
	return idx
}

// CreateLevel deals a fresh board and starts the deal animation.
// Boards are redrawn until none of their cards would match and at least one
// move exists.
func (g *Grid) CreateLevel(levelIndex int) {
	g.level = levelIndex
	g.hint = [2]int{none, none}

	for {
		for i := range g.cells {
			c := &g.cells[i]
			c.Index = g.randomBlock()
			c.Flags = 0
			c.AnimationCount = g.rng.Float64() * 8
			c.Destroying = -1
			c.Dropping = -1
			c.Wobble = 0
			c.WobbleVelocity = 0
		}
		if !g.CheckDestroyWholeLevel(false) && g.HasMovesLeft() {
			break
		}
	}

	g.hasMoves = true
	g.zeroMask(All)

	g.cancelSelection(0)
	g.cancelSelection(1)
	g.changingCounter = 0
	g.levelScore = 0
	g.progressChange = 0
	g.destroyingRound = 0

	g.HasMovesLeft()
	g.SetState(StateBeginning)
}

// Advance runs the simulation for dt seconds.
func (g *Grid) Advance(dt float64) {
	if g.state == StateBeginning {
		g.deckVisibility += (1 - g.deckVisibility) * dt * 4
	} else {
		g.deckVisibility -= g.deckVisibility * dt * 4
	}
	if g.state == StateIdle {
		return
	}
	if dt > maxFrameTime {
		dt = maxFrameTime
	}

	g.floatingAngle += dt
	g.doingNothing = true

	var destroyed, dropped, destroying, dropping, created bool

	for ind := range g.cells {
		c := &g.cells[ind]

		if ind < g.width && c.Index == NoCard {
			for n := 0; n < spawnAttempts; n++ {
				c.Index = g.randomBlock()
				if !g.CheckDestroyAt(ind, 0, false) {
					break
				}
			}
			created = true
			g.doingNothing = false
		}

		if c.Destroying >= 0 {
			destroying = true
			before := c.Destroying
			c.Destroying += dt * 4

			if before <= 1.5 && c.Destroying > 1.5 {
				x, y := g.center(c)
				g.particles.Spray(10, x, y, 8000.0/65536, 0, -10000.0/65536, 0.25, 0, g.sprays.Sparkle)
				g.particles.Spray(6+g.rng.Intn(4), x, y, 6000.0/65536, 0, -40000.0/65536, 50000.0/65536, 0, g.sprays.Fruit)
			}

			if c.Destroying >= 2 {
				g.forget(ind)
				c.Index = NoCard
				c.Destroying = -1
				c.Dropping = -1
				c.OffsetX = 0
				c.OffsetY = 0
				c.Flags = 0
				c.AnimationCount = 0
				destroyed = true
			}
		}

		c.AnimationCount += dt
		c.AnimationCount -= float64(int(c.AnimationCount) / 16 * 16)

		// Two cascaded decay steps; the velocity is damped before it moves
		// the wobble.
		c.WobbleVelocity -= c.Wobble * dt * 16
		c.WobbleVelocity -= c.WobbleVelocity * dt * 8
		c.Wobble += c.WobbleVelocity * dt * 8

		if g.state != StateGameOver {
			if c.Flags.Has(FlagSelected) {
				c.GenCount += (8000.0/65536 - c.GenCount) * dt * 4
			} else {
				target := Cosine(int(g.floatingAngle*65536/16)+ind<<10) / 64
				c.GenCount += (target - c.GenCount) * dt * 8
				c.GenCount -= c.GenCount * dt * 4
			}
		}
	}

	if destroyed {
		g.effects.EffectNotify(tile.EffectDestroying, g.destroyingRound, 0)
		g.destroyingRound++
	}

	dropping, dropped = g.dropCells(dt)

	if destroyed || dropped || destroying || dropping {
		g.doingNothing = false
	}
	if g.doingNothing && (g.hint[0] == none || g.hint[1] == none) {
		g.HasMovesLeft()
	}

	switch g.state {
	case StateBeginning:
		g.advanceBeginning(dt)
	case StateLevelCompleted:
		g.advanceCompleted(dt)
	case StateGameOver:
		g.advanceGameOver(dt)
	case StateNormal:
		g.advanceNormal(dt, created, destroyed, dropped, destroying, dropping)
	}
}

func (g *Grid) advanceBeginning(dt float64) {
	g.startupCounter -= dt
	if g.startupCounter <= 0 {
		g.startupCounter = 0
		g.SetState(StateNormal)
	}

	amount := float64(len(g.cells))
	for i := range g.cells {
		c := &g.cells[i]
		p := g.startupCounter - float64(i)*4/amount
		if p < 0 {
			p = 0
			if !c.Flags.Has(FlagCalcTemp) {
				c.Flags |= FlagCalcTemp
				g.effects.EffectNotify(tile.EffectBlockBeginFinished, 0, 0)
			}
		} else {
			c.Wobble = -1000.0 / 65536
		}
		p = math.Min(p*4, 1)

		c.OffsetX = (deckPos.X - c.Base.X - g.item.X/2) * p
		c.OffsetY = (deckPos.Y - c.Base.Y - g.item.Y) * p
		c.GenCount = p * 1.25
	}
}

func (g *Grid) advanceCompleted(dt float64) {
	g.startupCounter -= dt
	if g.startupCounter <= 0 {
		g.startupCounter = 0
		g.SetState(StateIdle)
	}

	amount := float64(len(g.cells))
	for i := range g.cells {
		c := &g.cells[i]
		p := math.Min((float64(i)*4/amount-g.startupCounter)*4, 1)
		if p <= 0 {
			p = 0
		} else if !c.Flags.Has(FlagCalcTemp) {
			c.Flags |= FlagCalcTemp
			g.effects.EffectNotify(tile.EffectBlockVanishStarted, 0, 0)
		}

		c.OffsetX = (1 - c.Base.X + g.item.X/2) * p
		c.OffsetY = (1 - c.Base.Y + g.item.Y) * p
		c.GenCount = p * 1.25
	}
}

func (g *Grid) advanceGameOver(dt float64) {
	speed := float64(len(g.cells)) - g.startupCounter/2
	if speed < 1 {
		speed = 1
	}
	g.startupCounter -= speed * dt
	if g.startupCounter <= gameOverFloor {
		g.startupCounter = gameOverFloor
		g.SetState(StateIdle)
	}

	for i := range g.cells {
		p := float64(i) - g.startupCounter
		p = math.Max(0, math.Min(p, 28))
		g.cells[i].GenCount -= p / 32
	}
}

func (g *Grid) advanceNormal(dt float64, created, destroyed, dropped, destroying, dropping bool) {
	if created {
		g.CheckDestroyWholeLevel(true)
	}

	if destroyed || dropped || created {
		g.hint = [2]int{none, none}
		if !destroying && !dropping && !g.HasMovesLeft() {
			g.unstick()
		}
	}

	if g.destroyingRound > 3 && g.doingNothing {
		g.particles.Spray(1, g.toAreaX(0.5), g.toAreaY(0.5), 0, 0, 8000.0/65536, 0,
			(g.destroyingRound-1)<<16, g.sprays.Score)
		g.effects.EffectNotify(tile.EffectXBonus, 0, 0)
		g.progressChange += g.destroyingRound * 3
		g.levelScore += g.destroyingRound * 30
		g.destroyingRound = 0
	}

	if g.changingCounter > 0 {
		g.swapCards(dt)
	}
}

// unstick rewards a dead board and destroys one random card per row to
// shake it loose.
func (g *Grid) unstick() {
	g.particles.Spray(1, g.toAreaX(0.5), g.toAreaY(0.25), 0, 0, 0.122, 0, deadBoardTag, g.sprays.Score)
	g.levelScore += 800
	g.progressChange += 40

	left := g.height
	for try := 0; left > 0 && try < unstickTries; try++ {
		x := g.rng.Intn(g.width)
		y := g.rng.Intn(g.height)
		i := y*g.width + x
		c := &g.cells[i]
		if c.Index != NoCard && !c.Flags.Has(FlagMarked) && i != g.changing[0] && i != g.changing[1] {
			c.Flags |= FlagMarked
			left--
		}
	}
	g.applyDestroy(FlagMarked)
}

func (g *Grid) zeroMask(mask Flags) {
	for i := range g.cells {
		g.cells[i].Flags &^= mask
	}
}

var cosTable = func() (t [4096]float64) {
	for i := range t {
		t[i] = math.Cos(float64(i) / 4096 * math.Pi * 2)
	}
	return t
}()

// Cosine looks up cos(i/4096 * 2π); i wraps modulo 4096.
func Cosine(i int) float64 {
	return cosTable[i&4095]
}
