package core

// Color is the foreground of a screen cell. Hosts pick the concrete shade:
// the terminal maps it to an ANSI code, the desktop to RGBA.
type Color uint8

// Colors used by the scene. ColorDefault leaves the host's foreground.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
