package input

import "github.com/gdamore/tcell/v2"

// Action describes what a bound key does
type Action struct {
	Intent IntentType
	Branch int // Sub-range index for IntentBranch bindings
}

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Ctrl+*, Esc, Backspace)
	SpecialKeys map[tcell.Key]Action

	// Printable key bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings for four branches:
// the joystick order left, up, right, down maps to branches 0..3,
// with vi-style and digit aliases
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:  {Intent: IntentBranch, Branch: 0},
			tcell.KeyUp:    {Intent: IntentBranch, Branch: 1},
			tcell.KeyRight: {Intent: IntentBranch, Branch: 2},
			tcell.KeyDown:  {Intent: IntentBranch, Branch: 3},

			tcell.KeyEscape:     {Intent: IntentBack},
			tcell.KeyBackspace:  {Intent: IntentBackspace},
			tcell.KeyBackspace2: {Intent: IntentBackspace},

			tcell.KeyCtrlR: {Intent: IntentReset},
			tcell.KeyCtrlS: {Intent: IntentToggleSound},
			tcell.KeyCtrlQ: {Intent: IntentQuit},
			tcell.KeyCtrlC: {Intent: IntentQuit},
		},
		Runes: map[rune]Action{
			'h': {Intent: IntentBranch, Branch: 0},
			'k': {Intent: IntentBranch, Branch: 1},
			'l': {Intent: IntentBranch, Branch: 2},
			'j': {Intent: IntentBranch, Branch: 3},

			'1': {Intent: IntentBranch, Branch: 0},
			'2': {Intent: IntentBranch, Branch: 1},
			'3': {Intent: IntentBranch, Branch: 2},
			'4': {Intent: IntentBranch, Branch: 3},
		},
	}
}

// Merge applies overrides on top of the table. Overrides win on conflict;
// unbound keys in the override table are left alone
func (kt *KeyTable) Merge(overrides *KeyTable) {
	if overrides == nil {
		return
	}
	for k, a := range overrides.SpecialKeys {
		kt.SpecialKeys[k] = a
	}
	for r, a := range overrides.Runes {
		kt.Runes[r] = a
	}
}

// Lookup resolves a key event to its bound action.
// Rune keys consult the rune map, everything else the special-key map
func (kt *KeyTable) Lookup(key tcell.Key, ch rune) (Action, bool) {
	if key == tcell.KeyRune {
		a, ok := kt.Runes[ch]
		return a, ok
	}
	a, ok := kt.SpecialKeys[key]
	return a, ok
}
