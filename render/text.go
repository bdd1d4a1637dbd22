package render

import "github.com/gdamore/tcell/v2"

// TextRenderer draws the accumulated text buffer with a block cursor
type TextRenderer struct{}

// NewTextRenderer creates a text renderer
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render implements Renderer
func (t *TextRenderer) Render(ctx Context, buf *Buffer) {
	y := ctx.Editor.Input().Branches() + 2
	style := tcell.StyleDefault

	buf.SetString(1, y, "> ", style.Foreground(tcell.ColorGray))

	// Keep the tail visible when the text outgrows the row
	text := []rune(ctx.Editor.Text())
	avail := ctx.Width - 5 // prompt, margin and cursor
	if avail < 0 {
		avail = 0
	}
	if len(text) > avail {
		text = text[len(text)-avail:]
	}

	x := 3
	for _, ch := range text {
		buf.Set(x, y, ch, style)
		x++
	}
	buf.Set(x, y, ' ', style.Reverse(true))
}
