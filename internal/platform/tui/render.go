package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matchem-poker/internal/core"
)

// foreground holds one style per palette entry; colors without an ANSI code
// render plain.
var foreground = func() (out [256]lipgloss.Style) {
	for i := range out {
		out[i] = lipgloss.NewStyle()
		if code := core.Color(i).ANSI(); code != "" {
			out[i] = out[i].Foreground(lipgloss.Color(code))
		}
	}
	return out
}()

// RenderScreen turns a screen into terminal output. Each run of same-colored
// cells on a row gets one style.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var (
		out strings.Builder
		run strings.Builder
	)
	color := s.GetCell(0, y).Color
	flush := func() {
		if run.Len() > 0 {
			out.WriteString(foreground[color].Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			flush()
			color = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
	return out.String()
}
