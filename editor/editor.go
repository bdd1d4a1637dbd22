// Package editor owns one editing session: the accumulated text buffer and
// the character input machine that feeds it.
package editor

import (
	"log"

	"github.com/quadkey/quadkey/charinput"
	"github.com/quadkey/quadkey/input"
)

// Chime is the audio feedback capability
type Chime interface {
	Click() // A branch was selected
	Emit()  // A character was completed
	Deny()  // Input could not be applied

	// ToggleMute flips the mute state and reports whether sound is now on
	ToggleMute() bool
}

// NopChime is a Chime that does nothing, used when audio is unavailable
type NopChime struct{}

func (NopChime) Click()           {}
func (NopChime) Emit()            {}
func (NopChime) Deny()            {}
func (NopChime) ToggleMute() bool { return false }

// Editor applies semantic intents to the character input and accumulates
// emitted characters into its text buffer. It is the machine's sink:
// completed characters land in the buffer synchronously during dispatch
type Editor struct {
	ci      *charinput.CharacterInput
	buf     []rune
	chime   Chime
	emitted bool // Set by AcceptCharacter during a Select dispatch
}

// New creates an editor selecting from the given full ordinal range.
// A nil chime disables feedback
func New(full charinput.Interval, branches int, chime Chime) (*Editor, error) {
	if chime == nil {
		chime = NopChime{}
	}
	e := &Editor{
		buf:   make([]rune, 0, 64),
		chime: chime,
	}
	ci, err := charinput.New(full, branches, e)
	if err != nil {
		return nil, err
	}
	e.ci = ci
	return e, nil
}

// AcceptCharacter implements charinput.Sink
func (e *Editor) AcceptCharacter(ch rune) {
	log.Printf("Got character %q", ch)
	e.buf = append(e.buf, ch)
	e.emitted = true
}

// Text returns the accumulated buffer contents
func (e *Editor) Text() string {
	return string(e.buf)
}

// Input exposes the character input for rendering queries
func (e *Editor) Input() *charinput.CharacterInput {
	return e.ci
}

// HandleIntent applies one parsed intent and returns false if the session
// should end. Each intent is handled to completion before the next
func (e *Editor) HandleIntent(in *input.Intent) bool {
	if in == nil {
		return true
	}

	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentBranch:
		if in.Branch < 0 || in.Branch >= e.ci.Branches() {
			log.Printf("Branch %d not offered", in.Branch)
			e.chime.Deny()
			return true
		}
		e.emitted = false
		if err := e.ci.Select(in.Branch); err != nil {
			log.Printf("Select rejected: %v", err)
			e.chime.Deny()
			return true
		}
		if e.emitted {
			e.chime.Emit()
		} else {
			e.chime.Click()
		}

	case input.IntentBack:
		if e.ci.Back() {
			e.chime.Click()
		} else {
			log.Print("Cannot go back on first node")
			e.chime.Deny()
		}

	case input.IntentBackspace:
		if len(e.buf) > 0 {
			e.buf = e.buf[:len(e.buf)-1]
			e.chime.Click()
		} else {
			e.chime.Deny()
		}

	case input.IntentReset:
		e.ci.Reset()
		e.chime.Click()

	case input.IntentToggleSound:
		e.chime.ToggleMute()
	}

	return true
}
