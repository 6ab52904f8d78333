// Package tui runs games in a terminal with Bubble Tea, locally or over SSH.
// It owns the tick loop, input mapping, saved-game slots and score keeping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg advances the running game by one fixed step.
type FrameMsg time.Time

// nextFrame schedules the next FrameMsg, fps times a second. Zero or less
// falls back to 60.
func nextFrame(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return FrameMsg(t) })
}
