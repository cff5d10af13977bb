package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI styles; the simulation only picks from
// the palette.
type Color uint8

// Predefined colors for game elements. The bright entries carry the neon
// palette: cyan ship, magenta/cyan/lime/orange enemy kinds, yellow bullets,
// blue powerups.
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
