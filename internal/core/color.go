package core

// Color is the foreground color of a screen cell.
// Drivers map it to lipgloss or tcell styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorBrightCyan
	ColorOrange
	ColorGray
)
