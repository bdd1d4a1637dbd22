// Package render draws the selection screen: the candidate sub-ranges, the
// accumulated text and the status bar. Renderers draw into a shared cell
// buffer in priority order; the orchestrator flushes the result to the
// terminal once per frame.
package render

import "github.com/quadkey/quadkey/editor"

// Context carries per-frame state into renderers
type Context struct {
	Width   int
	Height  int
	Editor  *editor.Editor
	SoundOn bool
}

// Renderer is implemented by components with visual output
type Renderer interface {
	Render(ctx Context, buf *Buffer)
}

// RenderPriority orders renderers within a frame, lower draws first
type RenderPriority int

const (
	PriorityRanges RenderPriority = 100
	PriorityText   RenderPriority = 200
	PriorityUI     RenderPriority = 400
)
