package level

// checkMode selects what "similar" means while walking a line of cards.
type checkMode int

const (
	modeSuit checkMode = iota
	modeRank
	modeMinusStraight
	modePlusStraight
)

func (m checkMode) flag() Flags {
	switch m {
	case modeRank:
		return FlagSameRank
	case modeMinusStraight:
		return FlagMinusStraight
	case modePlusStraight:
		return FlagPlusStraight
	}
	return FlagSameSuit
}

// Hand kinds as encoded in score popups.
const (
	handRank     = 0
	handFlush    = 1
	handStraight = 2
)

// Scan order and the run length each hand needs, origin included.
var handChecks = [...]struct {
	mode checkMode
	min  int
}{
	{modeMinusStraight, 4},
	{modePlusStraight, 4},
	{modeSuit, 4},
	{modeRank, 3},
}

// calculateSimilar walks from (x, y) in dir (0 up, 1 down, 2 left, 3 right)
// and counts consecutive cards matching index under mode. Every counted cell
// gets the mode's flag; a flagged cell stops the walk.
func (g *Grid) calculateSimilar(index, x, y int, mode checkMode, dir int) int {
	flag := mode.flag()
	n := 0
	for {
		switch dir {
		case 0:
			y--
		case 1:
			y++
		case 2:
			x--
		case 3:
			x++
		}

		c := g.Cell(x, y)
		if c == nil || c.Index == EmptyCard || c.Index == NoCard {
			return n
		}
		if c.Dropping >= 0 || c.Destroying > 0 {
			return n
		}
		if c.Flags.Has(flag) {
			return n
		}

		rank, want := Rank(c.Index), Rank(index)
		switch mode {
		case modeSuit:
			if Suit(c.Index) != Suit(index) {
				return n
			}
		case modeRank:
			if rank != want {
				return n
			}
		case modeMinusStraight:
			if dir&1 == 0 {
				want--
			} else {
				want++
			}
			if rank != want {
				return n
			}
		case modePlusStraight:
			if dir&1 == 0 {
				want++
			} else {
				want--
			}
			if rank != want {
				return n
			}
		}

		c.Flags |= flag
		index = c.Index
		n++
	}
}

// CheckDestroyAt reports whether the card at (x, y) completes a hand along
// either axis. With apply set, every completed hand starts destroying and is
// scored. Without it only the scratch flags change.
func (g *Grid) CheckDestroyAt(x, y int, apply bool) bool {
	c := g.Cell(x, y)
	if c == nil || c.Index == NoCard || c.Index == EmptyCard {
		return false
	}

	matched := false
	for axis := 0; axis < 2; axis++ {
		g.zeroMask(CheckDestroyMask)

		for _, hc := range handChecks {
			n := g.calculateSimilar(c.Index, x, y, hc.mode, axis*2) +
				g.calculateSimilar(c.Index, x, y, hc.mode, axis*2+1) + 1
			if n < hc.min {
				continue
			}
			flag := hc.mode.flag()
			c.Flags |= flag
			if apply {
				g.applyDestroy(flag)
			}
			matched = true
		}
	}
	return matched
}

// CheckDestroyWholeLevel runs CheckDestroyAt on every cell.
func (g *Grid) CheckDestroyWholeLevel(apply bool) bool {
	matched := false
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.CheckDestroyAt(x, y, apply) {
				matched = true
			}
		}
	}
	return matched
}

// applyDestroy starts destroying every cell carrying flag. The group is
// scored only when at least one of its cells was not already marked.
func (g *Grid) applyDestroy(flag Flags) {
	g.doingNothing = false

	first := false
	blocks := 0
	var mx, my float64

	for i := range g.cells {
		c := &g.cells[i]
		if c.Index == NoCard || !c.Flags.Has(flag) || c.Destroying >= 0 {
			continue
		}
		if !c.Flags.Has(FlagMarked) {
			first = true
		}
		mx += c.Base.X
		my += c.Base.Y
		blocks++
		c.Flags |= FlagMarked
		c.Destroying = 0.0001
	}

	if blocks < 1 || !first {
		return
	}

	score := blocks * blocks * 2 / (g.destroyingRound + 1)
	kind, mul := handRank, 1
	switch flag {
	case FlagMinusStraight, FlagPlusStraight:
		kind, mul = handStraight, 11
	case FlagSameSuit:
		kind, mul = handFlush, 3
	case FlagSameRank:
		kind, mul = handRank, 7
	}
	if score < 1 {
		score = 1
	}
	score = score * mul / 3

	g.progressChange += score
	g.levelScore += score

	x := g.toAreaX(mx/float64(blocks) + g.item.X/2)
	y := g.toAreaY(my/float64(blocks) + g.item.Y/2)
	g.particles.Spray(1, x, y, 0, g.toAreaX(0.5)-x, g.toAreaY(0.5)-y, 0, kind*256+blocks, g.sprays.Score)
}
