package core

import "strings"

// Cell is one terminal character with its palette color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorSky}

// Screen is a fixed-size cell buffer. Scenes draw into it; the platform
// layer turns it into styled terminal output.
type Screen struct {
	width  int
	height int
	cells  []Cell // Row-major
}

// NewScreen creates a cleared screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a rectangle at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize reallocates the buffer and clears it. Negative sizes become zero.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height && s.cells != nil {
		s.Clear()
		return
	}
	s.width, s.height = width, height
	s.cells = make([]Cell, width*height)
	s.Clear()
}

// Clear resets every cell to blank sky.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) inside(x, y int) bool {
	return s.Bounds().Contains(x, y)
}

// Set writes one cell. Out-of-bounds writes are ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
}

// Get returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) Get(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// FillRect fills the part of r that lies on screen.
func (s *Screen) FillRect(r Rect, ch rune, c Color) {
	r = r.Intersect(s.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.cells[y*s.width+x] = Cell{Rune: ch, Color: c}
		}
	}
}

// Text writes a string starting at (x, y), clipped at the screen edges.
func (s *Screen) Text(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// TextCentered writes a string horizontally centered on row y.
func (s *Screen) TextCentered(y int, text string, c Color) {
	n := len([]rune(text))
	s.Text((s.width-n)/2, y, text, c)
}

// Box draws a single-line frame around r and fills its inside with spaces.
func (s *Screen) Box(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	s.FillRect(NewRect(r.X+1, r.Y+1, r.W-2, r.H-2), ' ', c)

	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─', c)
		s.Set(x, bottom, '─', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│', c)
		s.Set(right, y, '│', c)
	}
	s.Set(r.X, r.Y, '┌', c)
	s.Set(right, r.Y, '┐', c)
	s.Set(r.X, bottom, '└', c)
	s.Set(right, bottom, '┘', c)
}

// Row returns the runes of row y without colors.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Runs calls fn for each maximal same-color run of row y, left to right.
// The platform renderer styles one run at a time.
func (s *Screen) Runs(y int, fn func(text string, c Color)) {
	if y < 0 || y >= s.height || s.width == 0 {
		return
	}
	row := s.cells[y*s.width : (y+1)*s.width]
	var sb strings.Builder
	cur := row[0].Color
	for _, cell := range row {
		if cell.Color != cur {
			fn(sb.String(), cur)
			sb.Reset()
			cur = cell.Color
		}
		sb.WriteRune(cell.Rune)
	}
	fn(sb.String(), cur)
}

// String returns the plain text of the whole screen, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
