package level

// dropCells runs gravity over every row but the last. It reports whether any
// card is falling and whether one came to rest this frame.
func (g *Grid) dropCells(dt float64) (dropping, landed bool) {
	limit := g.width * (g.height - 1)

	for i := 0; i < limit; i++ {
		c := &g.cells[i]
		below := &g.cells[i+g.width]
		if c.Index == NoCard {
			continue
		}

		if c.Dropping < 0 {
			if below.Index == NoCard || below.Dropping >= 0 {
				c.Dropping = 0.001
				c.OffsetY = 0
				dropping = true
			}
			continue
		}

		dropping = true
		c.Dropping += dt * 4
		c.OffsetY += c.Dropping * dt

		if c.OffsetY >= g.item.Y && below.Index == NoCard {
			g.moveDown(i)
			continue
		}

		if below.Index != NoCard && below.Dropping < 0 {
			g.CheckDestroyAt(c.X, c.Y, true)
			landed = true
			c.Dropping = -1
			c.WobbleVelocity = 4000.0 / 65536
			c.OffsetY = 0
		}
	}

	// The bottom row never falls.
	for i := limit; i < len(g.cells); i++ {
		c := &g.cells[i]
		if c.Dropping >= 0 {
			c.Dropping = -1
			c.OffsetY = 0
		}
	}
	return dropping, landed
}

// moveDown hands the card in cell i to the empty cell below it.
func (g *Grid) moveDown(i int) {
	g.forget(i)

	src := &g.cells[i]
	dst := &g.cells[i+g.width]

	src.OffsetY -= g.item.Y
	dst.Index = src.Index
	dst.Flags = src.Flags
	dst.AnimationCount = src.AnimationCount
	dst.Destroying = src.Destroying
	dst.Dropping = src.Dropping
	dst.OffsetX = src.OffsetX
	dst.OffsetY = src.OffsetY
	dst.Wobble = src.Wobble
	dst.WobbleVelocity = src.WobbleVelocity

	src.Index = NoCard
	src.Flags = 0
	src.resetAnimation()
}

// forget drops every swap or hint reference to cell i.
func (g *Grid) forget(i int) {
	if i == g.changing[0] || i == g.changing[1] {
		for k, j := range g.changing {
			if j == none {
				continue
			}
			c := &g.cells[j]
			c.Flags &^= FlagSelected
			if j != i {
				c.OffsetX, c.OffsetY = 0, 0
			}
			g.changing[k] = none
		}
		g.changingCounter = 0
		g.dragBegan = false
	}
	if i == g.hint[0] || i == g.hint[1] {
		g.hint = [2]int{none, none}
	}
}
