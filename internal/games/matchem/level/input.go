package level

import (
	"math"

	"github.com/vovakirdan/matchem-poker/internal/core"
	"github.com/vovakirdan/matchem-poker/internal/tile"
)

// Furthest a dragged card may leave its slot, in grid space.
const maxDragOffset = 6000.0 / 65536

// Click feeds one pointer event in area coordinates to the grid. Events
// outside the game area, during deal or vanish animations and while two
// cards are swapping are ignored.
func (g *Grid) Click(x, y float64, kind core.PointerKind) {
	switch g.state {
	case StateBeginning, StateLevelCompleted, StateGameOver:
		return
	}
	if g.changingCounter > 0 || g.area.W <= 0 || g.area.H <= 0 {
		return
	}

	x = (x - g.area.X) / g.area.W
	y = (y - g.area.Y) / g.area.H
	if x < 0 || y < 0 || x > 1 || y > 1 {
		return
	}
	target := g.indexOf(g.Cell(int(x*float64(g.width)), int(y*float64(g.height))))

	switch kind {
	case core.PointerDown:
		g.onPress(target)
	case core.PointerDrag:
		g.onDrag(x, y, target)
	case core.PointerUp:
		g.onRelease(target)
	}
}

func (g *Grid) onPress(target int) {
	g.dragBegan = false
	c := g.at(target)
	if c == nil || c.Index == NoCard {
		return
	}

	if target == g.changing[0] {
		g.effects.EffectNotify(tile.EffectClick, 0, 0)
		g.cancelSelection(0)
		return
	}
	if c.Busy() {
		return
	}

	if g.changing[0] != none {
		g.tryApplyChange(target)
		return
	}

	if c.Index == EmptyCard {
		g.redrawEmpty(c)
		return
	}
	g.effects.EffectNotify(tile.EffectClick, 0, 0)
	g.changing[0] = target
	c.Flags ^= FlagSelected
}

func (g *Grid) onDrag(x, y float64, target int) {
	first := g.at(g.changing[0])
	if first == nil {
		return
	}

	halfW, halfH := g.item.X/2, g.item.Y/2
	fx := x - first.Base.X - halfW
	fy := y - first.Base.Y - halfH

	if g.difficulty > 0 {
		if l := math.Hypot(fx, fy); l > maxDragOffset {
			fx = fx / l * maxDragOffset
			fy = fy / l * maxDragOffset
		}
		px := first.Base.X + fx + halfW
		py := first.Base.Y + fy + halfH
		target = g.indexOf(g.Cell(int(px*float64(g.width)), int(py*float64(g.height))))
	}
	first.OffsetX, first.OffsetY = fx, fy

	if target != g.changing[0] {
		g.changing[1] = target
		g.dragBegan = true
	}
}

func (g *Grid) onRelease(target int) {
	if g.difficulty > 0 && g.dragBegan && g.changing[1] != none {
		target = g.changing[1]
	}

	c := g.at(target)
	applied := false
	if g.changing[0] != none && target != g.changing[0] && c != nil && !c.Busy() {
		applied = g.tryApplyChange(target)
	}
	if !applied && g.dragBegan {
		g.cancelSelection(0)
		g.cancelSelection(1)
	}
	g.dragBegan = false
}

// redrawEmpty replaces a blank card at a progress cost.
func (g *Grid) redrawEmpty(c *Cell) {
	g.effects.EffectNotify(tile.EffectChangeCompleted, 0, 0)
	for n := 0; c.Index == EmptyCard && n < spawnAttempts; n++ {
		c.Index = g.randomBlock()
	}
	g.progressChange -= 20

	x, y := g.center(c)
	g.particles.Spray(1, x, y, 0.001, 0, 0, 0, 0, g.sprays.Morph)
	g.particles.Spray(20, x, y, 8000.0/65536, 0, -0.25, 1, 0, g.sprays.Sparkle)

	g.CheckDestroyAt(c.X, c.Y, true)
}

// TryApplyChange starts swapping the selected card with the one at (x, y).
// It fails outside normal play, without a selection, and, at non-zero
// difficulty, when the two cards are not neighbours. A failed attempt keeps
// the selection.
func (g *Grid) TryApplyChange(x, y int) bool {
	c := g.Cell(x, y)
	if c == nil || g.changing[0] == none {
		return false
	}
	return g.tryApplyChange(g.indexOf(c))
}

func (g *Grid) tryApplyChange(target int) bool {
	if g.state != StateNormal {
		g.effects.EffectNotify(tile.EffectIllegalMove, 0, 0)
		g.cancelSelection(0)
		g.cancelSelection(1)
		return false
	}

	first, c := g.at(g.changing[0]), g.at(target)
	if first == nil || c == nil || first == c {
		return false
	}

	if g.difficulty != 0 && core.Abs(first.X-c.X)+core.Abs(first.Y-c.Y) > 1 {
		g.effects.EffectNotify(tile.EffectIllegalMove, 0, 0)
		return false
	}

	g.effects.EffectNotify(tile.EffectChanging, 0, 0)
	g.changing[1] = target
	g.changingCounter = 1
	c.Flags ^= FlagSelected
	return true
}

// Selected returns the position of the selected card.
func (g *Grid) Selected() (Pos, bool) {
	c := g.at(g.changing[0])
	if c == nil {
		return Pos{}, false
	}
	return Pos{c.X, c.Y}, true
}

// Swapping reports whether a swap animation is running.
func (g *Grid) Swapping() bool { return g.changingCounter > 0 }

func (g *Grid) cancelSelection(k int) {
	c := g.at(g.changing[k])
	if c == nil {
		return
	}
	c.OffsetX, c.OffsetY = 0, 0
	c.Flags &^= FlagSelected
	g.changing[k] = none
}

// swapCards animates the pair along a twisted path and exchanges the cards
// when the counter runs out. Every swap is accepted; one that makes no hand
// costs progress.
func (g *Grid) swapCards(dt float64) {
	g.changingCounter -= dt * 6

	a, b := g.at(g.changing[0]), g.at(g.changing[1])
	if a == nil || b == nil {
		g.cancelSelection(0)
		g.cancelSelection(1)
		g.changingCounter = 0
		return
	}

	if g.changingCounter <= 0 {
		g.hint = [2]int{none, none}
		a.Index, b.Index = b.Index, a.Index
		g.destroyingRound = 0

		if !g.CheckDestroyAt(a.X, a.Y, true) && !g.CheckDestroyAt(b.X, b.Y, true) {
			g.progressChange -= 15
		}
		g.effects.EffectNotify(tile.EffectChangeCompleted, 0, 0)
		g.changingCounter = 0

		for _, c := range [2]*Cell{a, b} {
			c.Flags &^= FlagSelected
			c.OffsetX, c.OffsetY = 0, 0
		}
		g.changing = [2]int{none, none}
		return
	}

	t := 1 - g.changingCounter
	dx := (b.Base.X - a.Base.X) * t
	dy := (b.Base.Y - a.Base.Y) * t
	cs := Cosine(int(t * 1024))
	ndx := dy * cs
	ndy := -dx * cs

	a.OffsetX = dx + ndx*3/2
	a.OffsetY = dy + ndy
	b.OffsetX = -dx - ndx*3/2
	b.OffsetY = -dy - ndy
}
