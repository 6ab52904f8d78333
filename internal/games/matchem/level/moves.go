package level

// HasMovesLeft searches for a swap of two neighbouring cards that would make
// a hand and remembers the first one found as the hint. The two top rows are
// not searched.
func (g *Grid) HasMovesLeft() bool {
	g.hint = [2]int{none, none}
	g.hasMoves = false

	for y := g.height - 1; y > 1; y-- {
		for x := 0; x < g.width; x++ {
			a := g.Cell(x, y)
			for _, b := range [2]*Cell{g.Cell(x, y+1), g.Cell(x+1, y)} {
				if g.tryMoveWith(a, b) {
					g.hint = [2]int{g.indexOf(a), g.indexOf(b)}
					g.hasMoves = true
					return true
				}
			}
		}
	}
	return false
}

// tryMoveWith swaps a and b, checks both positions without applying and
// swaps back.
func (g *Grid) tryMoveWith(a, b *Cell) bool {
	if a == nil || b == nil {
		return false
	}
	a.Index, b.Index = b.Index, a.Index
	ok := g.CheckDestroyAt(a.X, a.Y, false) || g.CheckDestroyAt(b.X, b.Y, false)
	a.Index, b.Index = b.Index, a.Index
	return ok
}

// Hint returns the cached suggested move.
func (g *Grid) Hint() (a, b Pos, ok bool) {
	ca, cb := g.at(g.hint[0]), g.at(g.hint[1])
	if ca == nil || cb == nil {
		return Pos{}, Pos{}, false
	}
	return Pos{ca.X, ca.Y}, Pos{cb.X, cb.Y}, true
}

// WobbleHint shakes the two hinted cards. On the first level it also floats
// a "taptap" label from between them.
func (g *Grid) WobbleHint() {
	a, b := g.at(g.hint[0]), g.at(g.hint[1])
	if a == nil || b == nil {
		return
	}
	a.WobbleVelocity = -1.0 / 16
	b.WobbleVelocity = -1.0 / 15

	if g.level == 0 {
		x := g.toAreaX((1/float64(g.width) + a.Base.X + b.Base.X) / 2)
		y := g.toAreaY((1/float64(g.height) + a.Base.Y + b.Base.Y) / 2)
		dx := g.toAreaX(0.5) - x
		dy := g.toAreaY(0.5) - y
		g.particles.Spray(1, x, y, 0, dx/4, dy/4, 0, hintTag, g.sprays.Score)
	}
}
