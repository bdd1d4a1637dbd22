// Package input parses terminal events into semantic intents for the
// range-selection editor. The key table maps tcell keys and runes to
// intents and can be sparsely extended from configuration.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Ctrl+Q, Ctrl+C
	IntentResize // Terminal resize event

	// Range navigation
	IntentBranch // Directional select, Branch holds the sub-range index
	IntentBack   // Esc - pop one navigation level

	// Text buffer
	IntentBackspace // Remove last committed character

	// Session
	IntentReset       // Ctrl+R - back to the full range
	IntentToggleSound // Ctrl+S
)

// Intent is one semantic action parsed from a terminal event
type Intent struct {
	Type   IntentType
	Branch int // Sub-range index, valid for IntentBranch
}
