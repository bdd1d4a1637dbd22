package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Direction glyphs for the four-branch joystick layout
var branchGlyphs = []rune{'←', '↑', '→', '↓'}

var branchColors = []tcell.Color{
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorYellow,
	tcell.ColorPurple,
}

// RangesRenderer draws one row per branch: the direction glyph and the
// sub-range Select(branch) would narrow to. Labels come from Preview, the
// same partition computation the selection uses
type RangesRenderer struct{}

// NewRangesRenderer creates a ranges renderer
func NewRangesRenderer() *RangesRenderer {
	return &RangesRenderer{}
}

// Render implements Renderer
func (r *RangesRenderer) Render(ctx Context, buf *Buffer) {
	ci := ctx.Editor.Input()

	for n := 0; n < ci.Branches(); n++ {
		sub := ci.Preview(n)

		var label string
		if sub.Single() {
			label = fmt.Sprintf("%q", rune(sub.Start))
		} else {
			label = fmt.Sprintf("%q - %q", rune(sub.Start), rune(sub.End))
		}

		style := tcell.StyleDefault.Foreground(branchColors[n%len(branchColors)])
		buf.Set(1, 1+n, glyphFor(n, ci.Branches()), style)
		buf.SetString(3, 1+n, label, style)
	}
}

// glyphFor returns the key hint for a branch: joystick arrows for the
// four-branch layout, digits otherwise
func glyphFor(branch, branches int) rune {
	if branches == 4 {
		return branchGlyphs[branch]
	}
	return rune('1' + branch)
}
