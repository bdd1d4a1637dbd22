package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/quadkey/quadkey/charinput"
	"github.com/quadkey/quadkey/editor"
	"github.com/quadkey/quadkey/input"
)

func testContext(t *testing.T, width, height int) Context {
	t.Helper()
	ed, err := editor.New(charinput.Interval{Start: 32, End: 126}, 4, nil)
	if err != nil {
		t.Fatalf("editor.New: unexpected error %v", err)
	}
	return Context{Width: width, Height: height, Editor: ed, SoundOn: true}
}

func TestRangesRendererLabels(t *testing.T) {
	ctx := testContext(t, 40, 10)
	buf := NewBuffer(40, 10)

	NewRangesRenderer().Render(ctx, buf)

	// Printable ASCII over four branches: 24+24+24+23 ordinals
	expected := []string{
		"' ' - '7'",
		"'8' - 'O'",
		"'P' - 'g'",
		"'h' - '~'",
	}
	for n, want := range expected {
		row := buf.Row(1 + n)
		if !strings.Contains(row, want) {
			t.Errorf("Expected row %d to contain %q, got %q", 1+n, want, row)
		}
	}

	// Joystick glyphs lead each row
	for n, glyph := range []rune{'←', '↑', '→', '↓'} {
		cell, _ := buf.Get(1, 1+n)
		if cell.Rune != glyph {
			t.Errorf("Expected glyph %q on row %d, got %q", glyph, 1+n, cell.Rune)
		}
	}
}

func TestRangesRendererSingleCharacterLabel(t *testing.T) {
	ed, err := editor.New(charinput.Interval{Start: 65, End: 68}, 4, nil)
	if err != nil {
		t.Fatalf("editor.New: unexpected error %v", err)
	}
	ctx := Context{Width: 40, Height: 10, Editor: ed}
	buf := NewBuffer(40, 10)

	NewRangesRenderer().Render(ctx, buf)

	for n, want := range []string{"'A'", "'B'", "'C'", "'D'"} {
		row := buf.Row(1 + n)
		if !strings.Contains(row, want) {
			t.Errorf("Expected row %d to contain %q, got %q", 1+n, want, row)
		}
		if strings.Contains(row, "-") {
			t.Errorf("Expected no range dash for collapsed branch on row %d, got %q", 1+n, row)
		}
	}
}

func TestTextRendererShowsBufferTail(t *testing.T) {
	ctx := testContext(t, 40, 10)
	buf := NewBuffer(40, 10)

	// Commit a character: branch 0 until collapse
	for ctx.Editor.Text() == "" {
		ctx.Editor.HandleIntent(&input.Intent{Type: input.IntentBranch, Branch: 0})
	}

	NewTextRenderer().Render(ctx, buf)

	row := buf.Row(6) // branches + 2
	if !strings.Contains(row, "> "+ctx.Editor.Text()) {
		t.Errorf("Expected row to show prompt and text %q, got %q", ctx.Editor.Text(), row)
	}
}

func TestStatusBarShowsDepthAndInterval(t *testing.T) {
	ctx := testContext(t, 60, 10)
	buf := NewBuffer(60, 10)

	NewStatusBarRenderer().Render(ctx, buf)

	row := buf.Row(9)
	if !strings.Contains(row, "depth 1") {
		t.Errorf("Expected status bar to show depth, got %q", row)
	}
	if !strings.Contains(row, "[32, 126]") {
		t.Errorf("Expected status bar to show the current interval, got %q", row)
	}
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 5)

	o := NewOrchestrator(screen, 20, 5)
	// Register out of order; the higher priority must draw last and win
	o.Register(markRenderer('B'), PriorityUI)
	o.Register(markRenderer('A'), PriorityRanges)

	o.RenderFrame(testContext(t, 20, 5))

	pr, _, _, _ := screen.GetContent(0, 0)
	if pr != 'B' {
		t.Errorf("Expected higher-priority renderer to win cell, got %q", pr)
	}
}

// markRenderer writes its rune at the origin
type markRenderer rune

func (m markRenderer) Render(_ Context, buf *Buffer) {
	buf.Set(0, 0, rune(m), tcell.StyleDefault)
}

func TestOrchestratorResize(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 5)

	o := NewOrchestrator(screen, 20, 5)
	o.Resize(30, 8)
	if o.buffer.Width() != 30 || o.buffer.Height() != 8 {
		t.Errorf("Expected 30x8 buffer after resize, got %dx%d",
			o.buffer.Width(), o.buffer.Height())
	}
}
