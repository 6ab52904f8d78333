package matchem

import (
	"math"

	"github.com/vovakirdan/matchem-poker/internal/core"
	"github.com/vovakirdan/matchem-poker/internal/games/matchem/level"
	"github.com/vovakirdan/matchem-poker/internal/tile"
)

// Atlas tiles of the pieces textures, as drawn by the level.
const (
	subCardBack  = 0
	subCardFace  = 1
	subSuitFirst = 2
	subRankFirst = 6
	subRankLast  = subRankFirst + 12
)

const (
	invisibleFade = 224  // tiles this faded are skipped
	cardMargin    = 1.0 / 6 // transparent border of a card texture, per side
	largeParticle = 0.15 // particle tiles wider than this are card flares
)

// ScreenSink rasterizes tiles into a character screen. Cards become boxes
// with a rank and suit, font tiles become letters and particles become
// single glyphs. Background, logo, meter and button textures have no
// terminal form and are skipped.
type ScreenSink struct {
	screen *core.Screen
	aspect float64

	face     core.Rect // last card face, for its suit and rank tiles
	hasFace  bool
	faceRed  bool
	selected bool
}

// NewScreenSink creates a sink for a screen aspect-times as tall as wide.
func NewScreenSink(aspect float64) *ScreenSink {
	if aspect <= 0 {
		aspect = DefaultAspect
	}
	return &ScreenSink{aspect: aspect}
}

// Attach directs subsequent tiles to dst.
func (k *ScreenSink) Attach(dst *core.Screen) {
	k.screen = dst
	k.hasFace = false
}

// Cell maps a point in screen coordinates to a character cell.
func (k *ScreenSink) Cell(x, y float64) (col, row int) {
	if k.screen == nil {
		return 0, 0
	}
	col = int(math.Floor(x * float64(k.screen.Width())))
	row = int(math.Floor(y / k.aspect * float64(k.screen.Height())))
	return col, row
}

// Point maps the centre of a character cell back to screen coordinates.
func (k *ScreenSink) Point(col, row int) (x, y float64) {
	if k.screen == nil {
		return 0, 0
	}
	x = (float64(col) + 0.5) / float64(k.screen.Width())
	y = (float64(row) + 0.5) / float64(k.screen.Height()) * k.aspect
	return x, y
}

// RenderTile implements tile.Renderer.
func (k *ScreenSink) RenderTile(x, y, w, h, angle float64, mode int, idx tile.Index, arg int) {
	if k.screen == nil || idx.Fade() >= invisibleFade {
		return
	}

	switch idx.Texture() {
	case tile.TexPieces, tile.TexPiecesSelected:
		if angle != 0 {
			// Cards are never rotated; rotated pieces are fruit particles.
			k.dot(x+w/2, y+h/2, '•', core.ColorOrange)
			return
		}
		k.piece(x, y, w, h, idx)
	case tile.TexFont:
		col, row := k.Cell(x+w/2, y+h/2)
		color := core.ColorBrightWhite
		if idx.Fade() > 96 {
			color = core.ColorGray
		}
		k.screen.SetColored(col, row, rune(idx.Sub()+32), color)
	case tile.TexParticle:
		if w > largeParticle {
			return
		}
		if idx.Sub() == 2 {
			k.dot(x+w/2, y+h/2, '*', core.ColorBrightYellow)
		} else {
			k.dot(x+w/2, y+h/2, '·', core.ColorYellow)
		}
	}
}

// EffectNotify implements tile.EffectSink. A terminal has no sound.
func (k *ScreenSink) EffectNotify(e tile.Effect, arg1, arg2 int) {}

func (k *ScreenSink) piece(x, y, w, h float64, idx tile.Index) {
	sub := idx.Sub()
	selected := idx.Texture() == tile.TexPiecesSelected

	switch {
	case sub == subCardBack || sub == subCardFace:
		x += w * cardMargin
		w -= w * cardMargin * 2
		c0, r0 := k.Cell(x, y)
		c1, r1 := k.Cell(x+w, y+h)
		rect := core.NewRect(c0, r0, max(c1-c0, 1), max(r1-r0, 1))

		color := core.ColorWhite
		if selected {
			color = core.ColorBrightYellow
		}
		fill := ' '
		if sub == subCardBack {
			fill = '░'
			if !selected {
				color = core.ColorGray
			}
		}
		if rect.W >= 3 && rect.H >= 3 {
			k.screen.FillRect(core.NewRect(rect.X+1, rect.Y+1, rect.W-2, rect.H-2), fill, color)
			k.screen.Frame(rect, color)
		} else {
			k.screen.FillRect(rect, '█', color)
		}
		k.face = rect
		k.hasFace = sub == subCardFace
		k.selected = selected

	case sub >= subSuitFirst && sub < subRankFirst:
		suit := sub - subSuitFirst
		k.faceRed = level.RedSuit(suit)
		col, row := k.faceCenter(x, y, w, h)
		k.screen.SetColored(col, row, []rune(level.SuitLabel(suit))[0], k.cardColor())

	case sub >= subRankFirst && sub <= subRankLast:
		// Tile n shows rank n-1, tile 0 the ace.
		rank := (sub - subRankFirst + 12) % 13
		col, row := k.faceCenter(x, y, w, h)
		k.screen.SetColored(col-1, row, rune(level.RankLabel(rank)[0]), k.cardColor())
		k.hasFace = false
	}
}

// faceCenter is where suit and rank go: the middle of the card they belong
// to, or their own middle when drawn without one.
func (k *ScreenSink) faceCenter(x, y, w, h float64) (int, int) {
	if k.hasFace {
		cx, cy := k.face.Center()
		return cx + 1, cy
	}
	return k.Cell(x+w/2, y+h/2)
}

func (k *ScreenSink) cardColor() core.Color {
	switch {
	case k.selected:
		return core.ColorBrightYellow
	case k.faceRed:
		return core.ColorBrightRed
	}
	return core.ColorBrightWhite
}

func (k *ScreenSink) dot(x, y float64, r rune, c core.Color) {
	col, row := k.Cell(x, y)
	k.screen.SetColored(col, row, r, c)
}
