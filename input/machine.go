package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into semantic Intents
type Machine struct {
	table *KeyTable
}

// NewMachine creates an input machine with the default key table
func NewMachine() *Machine {
	return &Machine{table: DefaultKeyTable()}
}

// ApplyOverrides merges a config-derived key table over the defaults
func (m *Machine) ApplyOverrides(overrides *KeyTable) {
	m.table.Merge(overrides)
}

// Process parses a terminal event and returns an Intent.
// Returns nil for events with no bound meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	act, ok := m.table.Lookup(ev.Key(), ev.Rune())
	if !ok {
		return nil
	}
	return &Intent{Type: act.Intent, Branch: act.Branch}
}
