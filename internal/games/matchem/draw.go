package matchem

import (
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/matchem-poker/internal/games/matchem/level"
	"github.com/vovakirdan/matchem-poker/internal/tile"
)

// HUD score roll layout.
const (
	rollWidth   = 0.1525878
	rollSpacing = 0.099
	scoreRollX  = 0.503
)

var rollX = [rollCount]float64{
	0.099, 0.099 + rollSpacing,
	scoreRollX, scoreRollX + rollSpacing, scoreRollX + rollSpacing*2, scoreRollX + rollSpacing*3, scoreRollX + rollSpacing*4,
}

const (
	infoBeginY   = 0.045776367
	infoSpaceY   = 0.083923339
	infoCharSize = 0.076293945

	poemBeginY   = 0.5798
	poemCharSize = 0.0915
	poemMaxWidth = 0.95

	pauseButtonX = 0.302
)

// Draw implements Hooks.
func (s *Session) Draw() {
	app := s.runner.State()

	s.drawBackground()

	if app != AppMenu && app != AppPaused {
		s.grid.Draw()
	}
	if s.infoCounter >= 0 {
		s.drawInfoScreen()
	}
	if s.menuCounter >= 0 {
		s.drawMenu()
	}
	if s.menuModeCounter > 0 {
		fade := max(int((1-s.menuModeCounter)*256), 0)
		s.writeEffectText((65536*5/4+4000)/65536.0, "INFO", 8000.0/65536, fade)
	}

	if app != AppMenu {
		if s.levelCompletedCounter > 0 {
			fade := max(255-int(s.levelCompletedCounter*256), 0)
			s.writeEffectText(19000.0/65536+float64(fade)/256, "LEVEL", 7000.0/65536, fade)
			s.writeEffectText(24000.0/65536+float64(fade)/256, "COMPLETED", 9500.0/65536, fade)
		}
		if s.pauseCounter > 0 {
			s.drawPauseMenu()
		}
		if s.gameOverCounter > 0 && s.infoCounter < 0 {
			s.drawGameOver()
		}
	}

	s.drawPoem()

	if s.runner.HudState() > 0 {
		s.drawHud()
	}
	if s.runner.LogoState() > 0 {
		s.drawLogo()
	}

	s.particles.Draw()
}

func (s *Session) drawBackground() {
	if s.fadingBg < 0 {
		s.renderer.RenderTile(0, 0, 1, s.aspect, 0, 0, tile.BuildIndex(tile.TexBackground, s.bg1, 0), 0)
	} else {
		a := min(int(s.fadingBg*256), 255)
		s.renderer.RenderTile(0, 0, 1, s.aspect, 0, 0, tile.BuildIndex(tile.TexBackground, s.bg1, a), 0)
		s.renderer.RenderTile(0, 0, 1, s.aspect, 0, 0, tile.BuildIndex(tile.TexBackground, s.bg2, 255-a), 0)
	}
	s.renderer.RenderTile(-0.5, -0.5, 2, 2, s.bgAngle/4, 1, tile.BuildIndex(tile.TexBackground, 2, 200), 0)
}

func (s *Session) drawMenu() {
	fade := max(int((2-s.menuCounter)*256)/2, 0)
	s.writeEffectText((65536-4500)/65536.0, "START", 14000.0/65536, fade)
	s.writeText(0, 0, "HI "+strconv.Itoa(s.highScore), fade>>8, 0.076, 0.053)
}

func (s *Session) drawPauseMenu() {
	fade := max(255-int(s.pauseCounter*2*255), 0)
	f := float64(fade)
	s.writeEffectText(0.3-f/300, "GAME", 0.144, fade)
	s.writeEffectText(0.5+f/300, "PAUSED", 0.144, fade)
	s.writeEffectText(1.4-0.061-f/256, "RESUME", 0.083, fade)
	s.writeEffectText(1.4+0.061+f/256, "END", 0.083, fade)
}

// drawGameOver reveals its lines one after another, 0.61 seconds apart.
func (s *Session) drawGameOver() {
	lines := []struct {
		y    float64
		text string
		size float64
		move float64 // slide direction while fading in
	}{
		{0.122, "TOO BAD", 0.0762, -1},
		{0.244, "GAME OVER", 0.137, 1},
		{0.61, "YOUR SCORE", 0.0762, 0},
		{0.6866, strconv.Itoa(s.score), 0.137, 0},
		{0.95, "AT LEVEL", 0.076, 0},
		{1.05, strconv.Itoa(s.levelIndex + 1), 0.137, 0},
	}
	for i, l := range lines {
		fade := int((s.gameOverCounter - 0.61*float64(i+2)) * 256)
		if fade <= 0 {
			return
		}
		fade = min(fade, 255)
		y := l.y + l.move*float64(255-fade)/256
		s.writeEffectText(y, l.text, l.size, 255-fade)
	}
}

func (s *Session) drawInfoScreen() {
	for i, line := range s.infoLines {
		if line == "" {
			continue
		}
		f := infoFade(0.5 + float64(i)*0.5 - s.infoCounter*2)
		s.writeEffectText(infoBeginY+float64(i)*infoSpaceY, line, infoCharSize, int(f*255))
	}
}

// infoFade clamps the fade factor of an info line.
func infoFade(f float64) float64 {
	if f < 0 {
		return 0
	}
	return min(f, 65535)
}

func (s *Session) drawLogo() {
	logo := s.runner.LogoState()
	w := 1 - s.logoWobble*2
	h := 1 + s.logoWobble*2
	y := -1 + logo*2
	fade := max(255-int(logo*255), 0)
	s.renderer.RenderTile(0.5-w/2, y-h, w, h, 0, 0, tile.BuildIndex(tile.TexLogo, 0, fade), 0)
}

func (s *Session) drawHud() {
	hud := s.runner.HudState()
	const (
		x = -3000.0 / 65536
		w = (65536 + 7000.0) / 65536
		h = 19000.0 / 65536
	)
	y := -(1-hud)/3 - 0.05
	r := s.renderer

	base := tile.BuildIndex(tile.TexMeterBase, 1, 0)
	r.RenderTile(2000.0/65536, y, 15000.0/65536, h, 0, 0, base, 0)
	r.RenderTile(29000.0/65536, y, 35000.0/65536, h, 0, 0, base, 0)

	for i := range rollX {
		r.RenderTile(rollX[i]-rollWidth/2, y+h/2-h*7/32, rollWidth, h*14/32, 0, 0, tile.BuildIndex(tile.TexMeter, 0, 0), 0)
	}
	for yroll := -2; yroll <= 1; yroll++ {
		for i, pos := range s.rollPos {
			num := (int(pos) - 1 - yroll) % 10
			if num < 0 {
				num += 10
			}
			yofs := pos + 100 - math.Floor(pos+100) + float64(yroll)
			ypos := math.Sin(yofs*math.Pi/4) * h / 3.3
			nh := h/2 - math.Abs(ypos)*13/8
			r.RenderTile(rollX[i]-rollWidth/2, y+h/2-nh/2+ypos, rollWidth, nh, 0, 0, tile.BuildIndex(tile.TexMeter, 1+num, 0), 0)
		}
	}
	r.RenderTile(x, y, w, h, 0, 0, tile.BuildIndex(tile.TexMeterBase, 0, 0), 0)

	button := 0
	if s.runner.State() == AppPaused {
		button = 1
	}
	r.RenderTile(x+pauseButtonX, y-1+hud, h*2/3, h*2/3*s.aspect, 0, 0, tile.BuildIndex(tile.TexExtra, button, 0), 0)

	// Level number as two meter digits on particle discs; zero uses tile 10.
	digits := [2]int{(s.levelIndex + 1) / 10, (s.levelIndex + 1) % 10}
	for i, n := range digits {
		if n == 0 {
			n = 10
		}
		dx, dy := 14000.0/65536+float64(i)*6000.0/65536, 6000.0/65536+float64(i)*3000.0/65536
		r.RenderTile(dx, dy-1+hud, 14000.0/65536, 14000.0/65536/s.aspect, 0, 0, tile.BuildIndex(tile.TexParticle, 0, 0), 0)
		r.RenderTile(dx+200.0/65536, dy+200.0/65536-1+hud, 13000.0/65536, 13000.0/65536/s.aspect, 0, 0, tile.BuildIndex(tile.TexMeter, n, 0), 0)
	}
}

// writeEffectText draws a centred line of font tiles that wobble more the
// more they are faded.
func (s *Session) writeEffectText(y float64, text string, size float64, fade int) {
	if fade < 0 {
		return
	}
	fade = min(fade, 255)

	space := size * 5 / 8
	x := 0.5 - float64(len(text))*space/2
	text = strings.ToUpper(text)

	for i := 0; i < len(text); i++ {
		yadd := level.Cosine(i*850+int(s.effectAngle*65536/70)) * float64(fade) / 50 * size
		yadd += level.Cosine(1000+int(s.effectAngle*65536/10)+i*600) / 50 * size
		xadd := level.Cosine(int(s.effectAngle*400)+i*800) / 50 * size

		idx := tile.BuildIndex(tile.TexFont, int(text[i])-32, fade)
		s.renderer.RenderTile(x+xadd, y+yadd, size, size, float64(fade)*0.1, 0, idx, 0)
		x += space
	}
}

func (s *Session) writeText(x, y float64, text string, fade int, size, space float64) {
	for i := 0; i < len(text); i++ {
		s.renderer.RenderTile(x, y, size, size, 0, 0, tile.BuildIndex(tile.TexFont, int(text[i])-32, fade), 0)
		x += space
	}
}

// drawPoem types the level completed text in, one character every 1/28
// second, and lets each character fade out 128 characters later.
func (s *Session) drawPoem() {
	if s.poem == "" {
		return
	}
	space := poemCharSize * 5 / 8
	y := poemBeginY
	total := 0

	for _, line := range wrapWords(s.poem, int(poemMaxWidth/space)) {
		line = strings.ToUpper(line)
		x := 0.5 - float64(len(line))*space/2 - space/4

		for f := 0; f < len(line); f++ {
			g := float64(total) - s.completedTextCounter
			if g < -128 {
				g += 128
			} else if g < 0 {
				g = 0
			}
			grow := -math.Abs(g) / 256
			fade := int(g * 32)
			if fade > 255 {
				return
			}
			if fade < 0 {
				fade = -fade
			}

			if fade < 255 {
				idx := tile.BuildIndex(tile.TexFont, int(line[f])-32, fade)
				s.renderer.RenderTile(
					x-grow/2+level.Cosine(1000+int(s.completedTextAngle/20)+f*600)/64,
					g/64+y-grow/2+level.Cosine(int(s.completedTextAngle/30)+f*800)/128,
					poemCharSize+grow, poemCharSize+grow, -grow*8, 0, idx, 0)
			}
			total++
			x += space
		}
		y += space * 4 / 3
	}
}

// wrapWords splits text into lines of at most width characters, breaking at
// spaces and newlines. A single word longer than width gets its own line.
func wrapWords(text string, width int) []string {
	var lines []string
	cur := ""
	for _, w := range strings.FieldsFunc(text, func(r rune) bool { return r == ' ' || r == '\n' }) {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) > width:
			lines = append(lines, cur)
			cur = w
		default:
			cur += " " + w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
