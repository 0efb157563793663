package core

import (
	"math"
	"strings"
)

// Cell is one character cell of a Screen.
type Cell struct {
	Rune rune
	Bg   Color
}

// Screen is a 2D cell buffer that rasterises playfield rectangles for terminals.
// It decouples game rendering from the terminal: games draw in playfield units
// through the Canvas interface while the platform handles actual display.
type Screen struct {
	width  int
	height int
	worldW float64
	worldH float64
	cells  [][]Cell
}

var _ Canvas = (*Screen)(nil)

// NewScreen creates a screen of width×height cells mapping a worldW×worldH playfield.
func NewScreen(width, height int, worldW, worldH float64) *Screen {
	s := &Screen{
		width:  max(width, 1),
		height: max(height, 1),
		worldW: worldW,
		worldH: worldH,
	}
	s.allocate()
	s.Clear(ColorBlack)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded since every
// frame is redrawn from scratch.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(ColorBlack)
}

// Clear fills the entire screen with blank cells of color c.
func (s *Screen) Clear(c Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Bg: c}
		}
	}
}

// FillRect paints every cell the playfield rectangle r touches.
// Rectangles thinner than a cell still cover one cell.
func (s *Screen) FillRect(r Rect, c Color) {
	w, h := float64(s.width), float64(s.height)

	x0 := int(math.Floor(r.X * w / s.worldW))
	x1 := int(math.Ceil(r.Right() * w / s.worldW))
	y0 := int(math.Floor(r.Y * h / s.worldH))
	y1 := int(math.Ceil(r.Bottom() * h / s.worldH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0, x1 = Clamp(x0, 0, s.width), Clamp(x1, 0, s.width)
	y0, y1 = Clamp(y0, 0, s.height), Clamp(y1, 0, s.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.cells[y][x] = Cell{Rune: ' ', Bg: c}
		}
	}
}

// GetCell returns the cell at the given position.
// Returns a blank black cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Bg: ColorBlack}
	}
	return s.cells[y][x]
}

// ASCII converts the screen to plain text: cells of color bg become spaces,
// everything else a full block. Each row is joined with newlines.
func (s *Screen) ASCII(bg Color) string {
	var sb strings.Builder
	sb.Grow(s.width*s.height*3 + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			if s.cells[y][x].Bg == bg {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune('█')
			}
		}
	}
	return sb.String()
}
