package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform renderer.
type Color uint8

// Predefined colors. The bright set covers the seven tetromino hues.
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
