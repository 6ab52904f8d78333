package level

import (
	"strconv"

	"github.com/vovakirdan/matchem-poker/internal/particle"
	"github.com/vovakirdan/matchem-poker/internal/tile"
)

// Atlas layout of the pieces textures.
const (
	subCardBack  = 0
	subCardFace  = 1
	subSuitFirst = 2
	subRankFirst = 6
	subFlare     = 2 // in the particle atlas
)

// Draw renders the board. Selected and marked cards are drawn in a second
// pass so they stay on top.
func (g *Grid) Draw() {
	if g.state == StateIdle {
		return
	}

	for i := range g.cells {
		c := &g.cells[i]
		if c.Index != NoCard && !c.Flags.Has(FlagHidden|FlagSelected|FlagMarked) && c.GenCount < 1000 {
			g.renderCell(c)
		}
	}
	for i := range g.cells {
		c := &g.cells[i]
		if c.Index == NoCard || c.Flags.Has(FlagHidden) {
			continue
		}
		if c.Flags.Has(FlagSelected|FlagMarked) || c.GenCount >= 1000 {
			g.renderCell(c)
		}
	}

	if g.deckVisibility > 0.01 {
		g.drawDeck()
	}
}

func (g *Grid) drawDeck() {
	const jitter = 0.02
	w, h := g.item.X*3, g.item.Y*3
	idx := tile.BuildIndex(tile.TexPieces, subCardBack, int((1-g.deckVisibility)*255))

	for f := 0; f < 3; f++ {
		a := int(g.startupCounter*4024) + f*650
		x := deckPos.X - w/2 + Cosine(a)*Cosine(a*2+1500)*jitter
		y := deckPos.Y - h/2 + Cosine(a+1200)*jitter
		g.renderer.RenderTile(x, y, w, h, 0, 0, idx, 0)
	}
}

// faceTiles returns the suit and rank sub-tiles of a card.
func faceTiles(c *Cell) (suit, number int) {
	if c.Index == JokerCard {
		// Shimmer through faces without touching the random source.
		return int(c.AnimationCount) % 4, (6 + int(c.AnimationCount*2)%8) % 13
	}
	suit = Suit(c.Index)
	number = (Rank(c.Index) + 1) % 13
	return suit, number
}

func (g *Grid) renderCell(c *Cell) {
	sizeAdd := tileSizeAdd + c.GenCount/4

	tex := tile.TexPieces
	if c.Destroying >= 0 || c.Flags.Has(FlagMarked|FlagSelected) {
		tex = tile.TexPiecesSelected
	}

	wadd := sizeAdd*5/8 + g.item.X/2
	hadd := sizeAdd / 4
	rx := c.Base.X + c.OffsetX - wadd/2
	ry := c.Base.Y + c.OffsetY - hadd/2 + c.Wobble
	w := g.item.X + wadd
	h := g.item.Y + hadd
	if w <= 0 || h <= 0 {
		return
	}

	fade := 0
	if g.state == StateGameOver {
		fade = -int(c.GenCount / 200)
	}
	fade = clampFade(fade)

	rx2, ry2 := g.toAreaX(rx+w), g.toAreaY(ry+h)
	rx, ry = g.toAreaX(rx), g.toAreaY(ry)
	w, h = rx2-rx, ry2-ry

	if c.Destroying >= 0 {
		fade = int(c.Destroying/2 - 255.0*4/5)
		if fade < 0 {
			fade = 0
		} else {
			fade *= 10
		}
	}

	if fade < 255 {
		if c.Index == EmptyCard {
			g.renderer.RenderTile(rx, ry, w, h, 0, 0, tile.BuildIndex(tex, subCardBack, fade), 0)
		} else {
			suit, number := faceTiles(c)
			g.renderer.RenderTile(rx, ry, w, h, 0, 0, tile.BuildIndex(tex, subCardFace, fade), 0)
			g.renderer.RenderTile(rx+w/4, ry+h/16, w/2, h/2, 0, 0, tile.BuildIndex(tex, subSuitFirst+suit, fade), 0)
			g.renderer.RenderTile(rx+w/4, ry+h/2, w/2, h/2, 0, 0, tile.BuildIndex(tex, subRankFirst+number, fade), 0)
		}
	}

	if c.Destroying >= 0 {
		fade = 255 - int(c.Destroying*128)
		if fade < 0 {
			fade = 0
		}
		size := 0.001 + c.Destroying*c.Destroying*0.15
		if fade < 255 {
			g.renderer.RenderTile(rx-size, ry-size, w+size*2, h+size*2, c.AnimationCount*2, 1,
				tile.BuildIndex(tile.TexParticle, subFlare, fade), 0)
		}
	}
}

func clampFade(f int) int {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return f
}

// TagLabel decodes the user tag of a score popup. Small labels are drawn at
// half size.
func TagLabel(tag int) (text string, small bool) {
	preset := tag >> 16 & 255
	if tag>>16 == 0 {
		n := strconv.Itoa(tag & 255)
		switch tag >> 8 & 255 {
		case handFlush:
			return "flush of " + n, true
		case handStraight:
			return "straight of " + n, true
		default:
			return n + " of a kind", true
		}
	}
	switch preset {
	case deadBoardTag >> 16:
		return "solve bonus", true
	case hintTag >> 16:
		return "taptap", true
	}
	return "x" + strconv.Itoa(preset), false
}

// RenderTextParticle draws a score popup as a row of font tiles. It makes
// the grid usable as the text renderer of its score spray.
func (g *Grid) RenderTextParticle(p *particle.Particle) {
	size := (3 - p.LifeTime/2) / 14
	y := p.Y - size/2

	text, small := TagLabel(p.Tag)
	if small {
		size /= 2
	}
	x := p.X - float64(len(text))*size*3/5/2

	// End of life fade, replaced by a start fade while the first one is zero.
	fade := int(255 - p.LifeTime*256)
	if fade < 0 {
		fade = 0
	}
	if fade == 0 {
		fade = int(255 - p.LifeTime*4)
		if fade < 0 {
			fade = 0
		}
	}

	for i := 0; i < len(text); i++ {
		idx := tile.BuildIndex(tile.TexFont, int(text[i])-32, fade)
		g.renderer.RenderTile(x, y, size, size, 0, 0, idx, 0)
		x += size * 3 / 5
	}
}
