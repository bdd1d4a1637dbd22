package render

import "github.com/gdamore/tcell/v2"

// Cell is one styled screen position
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is a compositor renderers draw into before a frame is flushed.
// Persistent across frames to avoid reallocation
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Clear resets all cells to blank
func (b *Buffer) Clear() {
	blank := Cell{Rune: ' ', Style: tcell.StyleDefault}
	for i := range b.cells {
		b.cells[i] = blank
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell, ignoring out-of-bounds coordinates
func (b *Buffer) Set(x, y int, ch rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: ch, Style: style}
}

// SetString writes a string starting at x, clipped to the row
func (b *Buffer) SetString(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		b.Set(x, y, ch, style)
		x++
	}
}

// Get returns the cell at the coordinates and whether they are in bounds
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Row returns the row's runes as a string, used by tests and diagnostics
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, b.width)
	for x := 0; x < b.width; x++ {
		runes[x] = b.cells[y*b.width+x].Rune
	}
	return string(runes)
}

// Flush writes the buffer contents to the screen
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
