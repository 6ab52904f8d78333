package level

import "github.com/vovakirdan/matchem-poker/internal/core"

// Cell is one grid position and the card currently animating in it.
type Cell struct {
	Index int   // card index or one of the sentinels
	Flags Flags
	X, Y  int // grid position, never changes

	Base             core.Vec2 // resting top-left corner in grid space
	OffsetX, OffsetY float64   // animation displacement from Base

	Wobble         float64
	WobbleVelocity float64
	GenCount       float64 // visual scale pulse
	AnimationCount float64 // idle float cycle, 0..16

	Dropping   float64 // drop speed, < 0 when resting
	Destroying float64 // destroy progress 0..2, < 0 when alive
}

// Busy reports whether the cell is dropping or being destroyed.
func (c *Cell) Busy() bool {
	return c.Dropping >= 0 || c.Destroying >= 0
}

func (c *Cell) resetAnimation() {
	c.Destroying = -1
	c.Dropping = -1
	c.OffsetX = 0
	c.OffsetY = 0
	c.Wobble = 0
	c.WobbleVelocity = 0
}
