package core

import "fmt"

// Color is an opaque RGB draw color.
type Color struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	ColorBlack = Color{0, 0, 0}
	ColorBlue  = Color{0, 0, 255}
	ColorWhite = Color{255, 255, 255}
)

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
