package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyEvent(key tcell.Key, ch rune) *tcell.EventKey {
	return tcell.NewEventKey(key, ch, tcell.ModNone)
}

func TestDefaultBranchBindings(t *testing.T) {
	m := NewMachine()

	cases := []struct {
		name   string
		ev     *tcell.EventKey
		branch int
	}{
		{"left arrow", keyEvent(tcell.KeyLeft, 0), 0},
		{"up arrow", keyEvent(tcell.KeyUp, 0), 1},
		{"right arrow", keyEvent(tcell.KeyRight, 0), 2},
		{"down arrow", keyEvent(tcell.KeyDown, 0), 3},
		{"vi h", keyEvent(tcell.KeyRune, 'h'), 0},
		{"vi k", keyEvent(tcell.KeyRune, 'k'), 1},
		{"vi l", keyEvent(tcell.KeyRune, 'l'), 2},
		{"vi j", keyEvent(tcell.KeyRune, 'j'), 3},
		{"digit 1", keyEvent(tcell.KeyRune, '1'), 0},
		{"digit 4", keyEvent(tcell.KeyRune, '4'), 3},
	}

	for _, tc := range cases {
		in := m.Process(tc.ev)
		if in == nil {
			t.Errorf("%s: expected an intent, got nil", tc.name)
			continue
		}
		if in.Type != IntentBranch {
			t.Errorf("%s: expected IntentBranch, got %d", tc.name, in.Type)
		}
		if in.Branch != tc.branch {
			t.Errorf("%s: expected branch %d, got %d", tc.name, tc.branch, in.Branch)
		}
	}
}

func TestDefaultSystemBindings(t *testing.T) {
	m := NewMachine()

	cases := []struct {
		name   string
		ev     *tcell.EventKey
		intent IntentType
	}{
		{"ctrl+q", keyEvent(tcell.KeyCtrlQ, 0), IntentQuit},
		{"ctrl+c", keyEvent(tcell.KeyCtrlC, 0), IntentQuit},
		{"escape", keyEvent(tcell.KeyEscape, 0), IntentBack},
		{"backspace", keyEvent(tcell.KeyBackspace2, 0), IntentBackspace},
		{"ctrl+r", keyEvent(tcell.KeyCtrlR, 0), IntentReset},
		{"ctrl+s", keyEvent(tcell.KeyCtrlS, 0), IntentToggleSound},
	}

	for _, tc := range cases {
		in := m.Process(tc.ev)
		if in == nil {
			t.Errorf("%s: expected an intent, got nil", tc.name)
			continue
		}
		if in.Type != tc.intent {
			t.Errorf("%s: expected intent %d, got %d", tc.name, tc.intent, in.Type)
		}
	}
}

func TestUnboundKeyReturnsNil(t *testing.T) {
	m := NewMachine()

	if in := m.Process(keyEvent(tcell.KeyRune, 'z')); in != nil {
		t.Errorf("Expected nil for unbound rune, got %+v", in)
	}
	if in := m.Process(keyEvent(tcell.KeyF5, 0)); in != nil {
		t.Errorf("Expected nil for unbound special key, got %+v", in)
	}
}

func TestResizeEvent(t *testing.T) {
	m := NewMachine()

	in := m.Process(tcell.NewEventResize(80, 24))
	if in == nil || in.Type != IntentResize {
		t.Errorf("Expected IntentResize, got %+v", in)
	}
}
