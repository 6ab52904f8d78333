package core

// Color is a cell's foreground. The palette is the handful of shades the
// table, cards and popups need.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorWhite
	ColorBrightRed    // hearts and diamonds
	ColorBrightYellow // selection, cursor, score popups
	ColorBrightWhite  // clubs and spades, HUD
	ColorOrange       // particles
	ColorGray         // dimmed text, face-down cards
	numColors
)

var ansiCodes = [numColors]string{"", "1", "3", "7", "9", "11", "15", "208", "245"}

// ANSI returns the 256-color palette index for c, or "" for the terminal's
// own foreground.
func (c Color) ANSI() string {
	if c >= numColors {
		return ""
	}
	return ansiCodes[c]
}
