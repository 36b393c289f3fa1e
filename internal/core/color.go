package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ballPalette maps a ball color index (0-based, as used by game engines)
// to a display color. Indices beyond the palette wrap around.
var ballPalette = []Color{
	ColorBrightRed,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
}

// BallColor returns the display color for a ball color index.
func BallColor(index int) Color {
	if index < 0 {
		return ColorDefault
	}
	return ballPalette[index%len(ballPalette)]
}
