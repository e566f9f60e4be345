package core

import "strings"

// Color is a display color. It is either a palette name (e.g. "green",
// "dark green") or a literal "#rrggbb" value; the platform layer decides how
// names map to terminal colors.
type Color string

// Named colors produced by the view projection.
const (
	ColorNone       Color = ""
	ColorGreen      Color = "green"
	ColorRed        Color = "red"
	ColorBlack      Color = "black"
	ColorBlue       Color = "blue"
	ColorDarkGreen  Color = "dark green"
	ColorLightGreen Color = "light green"
	ColorYellow     Color = "yellow"
	ColorGrey       Color = "grey"
	ColorWhite      Color = "white"
)

// IsLiteral reports whether the color is a "#..." literal rather than a name.
func (c Color) IsLiteral() bool {
	return strings.HasPrefix(string(c), "#")
}

// String returns the color as written.
func (c Color) String() string {
	return string(c)
}
