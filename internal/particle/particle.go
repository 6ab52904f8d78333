// Package particle implements a fixed-capacity particle system.
//
// Particles live in a ring of slots. Spraying more particles than the ring
// holds overwrites the oldest slots; nothing is ever allocated after New.
package particle

import (
	"math"

	"github.com/vovakirdan/matchem-poker/internal/random"
	"github.com/vovakirdan/matchem-poker/internal/tile"
)

// DefaultCapacity is the ring size used when New is given a non-positive capacity.
const DefaultCapacity = 512

// TextRenderer draws particles whose spray renders text instead of a tile.
type TextRenderer interface {
	RenderTextParticle(p *Particle)
}

// SprayType describes how particles of one kind are born and move.
// Every "Random" field is the upper bound of a uniform random addition to
// the field it follows.
type SprayType struct {
	FirstBlock tile.Index // first usable tile, texture included
	BlockCount int        // tiles usable after FirstBlock

	Gravity  float64 // added to DY per second
	Fraction float64 // drag, fraction of velocity lost per second

	LifeTime       float64
	LifeTimeRandom float64
	Size           float64
	SizeRandom     float64
	SizeInc        float64
	SizeIncRandom  float64
	Angle          float64
	AngleRandom    float64
	AngleInc       float64
	AngleIncRandom float64

	RenderMode int

	// Text, when set, draws the particle instead of the tile path.
	Text TextRenderer
}

// Particle is a single slot of the ring.
type Particle struct {
	X, Y     float64
	DX, DY   float64
	Size     float64
	SizeInc  float64
	Angle    float64
	AngleInc float64
	LifeTime float64
	Tile     tile.Index
	Tag      int
	Spray    *SprayType
}

// Alive reports whether the particle is still simulated and drawn.
func (p *Particle) Alive() bool {
	return p.LifeTime > 0
}

// Engine owns the particle ring.
type Engine struct {
	renderer tile.Renderer
	rng      random.Source
	slots    []Particle
	cursor   int
}

// New creates an engine with capacity slots, all inactive.
func New(capacity int, r tile.Renderer, rng random.Source) *Engine {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if r == nil {
		r = tile.Nop{}
	}
	if rng == nil {
		rng = random.New(1)
	}
	return &Engine{
		renderer: r,
		rng:      rng,
		slots:    make([]Particle, capacity),
	}
}

// Capacity returns the ring size.
func (e *Engine) Capacity() int {
	return len(e.slots)
}

// SetRenderer replaces the tile renderer used by Draw.
func (e *Engine) SetRenderer(r tile.Renderer) {
	if r == nil {
		r = tile.Nop{}
	}
	e.renderer = r
}

// Active returns the number of living particles.
func (e *Engine) Active() int {
	n := 0
	for i := range e.slots {
		if e.slots[i].LifeTime > 0 {
			n++
		}
	}
	return n
}

// Clear kills every particle.
func (e *Engine) Clear() {
	for i := range e.slots {
		e.slots[i].LifeTime = 0
	}
	e.cursor = 0
}

// Spray emits count particles of the given type around (x, y).
// Each particle gets one random unit-disc vector n; its position is
// (x, y) + n*posJitter and its velocity (dx, dy) + n*dirJitter.
func (e *Engine) Spray(count int, x, y, posJitter, dx, dy, dirJitter float64, tag int, spray *SprayType) {
	if spray == nil {
		return
	}
	for ; count > 0; count-- {
		p := &e.slots[e.cursor]
		e.cursor++
		if e.cursor >= len(e.slots) {
			e.cursor = 0
		}

		nx := (e.rng.Float64() - 0.5) * 2
		ny := (e.rng.Float64() - 0.5) * 2
		l := math.Sqrt(nx*nx + ny*ny)
		if l == 0 {
			l = 1
		}
		v := e.rng.Float64()
		nx = nx * v / l
		ny = ny * v / l

		p.Spray = spray
		p.Tag = tag
		p.X = nx*posJitter + x
		p.Y = ny*posJitter + y
		p.DX = nx*dirJitter + dx
		p.DY = ny*dirJitter + dy

		p.LifeTime = spray.LifeTime + e.rng.Float64()*spray.LifeTimeRandom
		p.Tile = spray.FirstBlock + tile.Index(e.rng.Intn(spray.BlockCount))
		p.Size = spray.Size + e.rng.Float64()*spray.SizeRandom
		p.SizeInc = spray.SizeInc + e.rng.Float64()*spray.SizeIncRandom
		p.Angle = spray.Angle + e.rng.Float64()*spray.AngleRandom
		p.AngleInc = spray.AngleInc + e.rng.Float64()*spray.AngleIncRandom
	}
}

// Advance moves every living particle forward by dt seconds.
func (e *Engine) Advance(dt float64) {
	for i := range e.slots {
		p := &e.slots[i]
		if p.LifeTime <= 0 {
			continue
		}
		p.LifeTime -= dt
		if p.LifeTime <= 0 {
			continue
		}

		p.DX -= p.DX * p.Spray.Fraction * dt
		p.DY -= p.DY * p.Spray.Fraction * dt
		p.DY += p.Spray.Gravity * dt

		p.X += p.DX * dt
		p.Y += p.DY * dt
		p.Size += p.SizeInc * dt
		p.Angle += p.AngleInc * dt

		if p.Size <= 0 {
			p.LifeTime = 0
		}
	}
}

// Draw renders living particles, newest first.
func (e *Engine) Draw() {
	n := len(e.slots)
	for k := 1; k <= n; k++ {
		p := &e.slots[(e.cursor-k+n)%n]
		if p.LifeTime <= 0 {
			continue
		}
		if p.Spray.Text != nil {
			p.Spray.Text.RenderTextParticle(p)
			continue
		}

		a := int(p.LifeTime * 1024)
		if a > 255 {
			a = 255
		}
		e.renderer.RenderTile(p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size, p.Angle,
			p.Spray.RenderMode, p.Tile.WithFade(255-a), p.Tag)
	}
}
