package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const soundIndicator = " ♪ "

// StatusBarRenderer draws the status bar at the bottom: sound state,
// navigation depth, current interval and the key hints
type StatusBarRenderer struct{}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements Renderer
func (s *StatusBarRenderer) Render(ctx Context, buf *Buffer) {
	y := ctx.Height - 1
	barStyle := tcell.StyleDefault.Reverse(true)

	for x := 0; x < ctx.Width; x++ {
		buf.Set(x, y, ' ', barStyle)
	}

	x := 0

	// Sound indicator, green when audible, red when muted
	soundBg := tcell.ColorRed
	if ctx.SoundOn {
		soundBg = tcell.ColorGreen
	}
	soundStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(soundBg)
	for _, ch := range soundIndicator {
		buf.Set(x, y, ch, soundStyle)
		x++
	}

	ci := ctx.Editor.Input()
	buf.SetString(x+1, y, fmt.Sprintf("depth %d  %s", ci.Depth(), ci.Current()), barStyle)

	hints := "arrows select  esc back  bksp delete  ^R reset  ^Q quit"
	if hx := ctx.Width - len(hints) - 1; hx > x+20 {
		buf.SetString(hx, y, hints, barStyle)
	}
}
