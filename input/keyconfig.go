package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/quadkey/quadkey/config"
)

// LoadKeyConfig parses the [keys] config section into a sparse override
// KeyTable. Only bindings present in the config are populated.
// Returns error on unknown key names or a branch list whose length does not
// match the branch count
func LoadKeyConfig(keys config.Keys, branches int) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Action),
		Runes:       make(map[rune]Action),
	}

	if len(keys.Branches) > 0 && len(keys.Branches) != branches {
		return nil, fmt.Errorf("keys.branches has %d entries, branch count is %d",
			len(keys.Branches), branches)
	}
	for n, names := range keys.Branches {
		for _, name := range names {
			if err := kt.bind(name, Action{Intent: IntentBranch, Branch: n}); err != nil {
				return nil, fmt.Errorf("keys.branches[%d]: %w", n, err)
			}
		}
	}

	sections := []struct {
		field string
		names []string
		act   Action
	}{
		{"back", keys.Back, Action{Intent: IntentBack}},
		{"backspace", keys.Backspace, Action{Intent: IntentBackspace}},
		{"reset", keys.Reset, Action{Intent: IntentReset}},
		{"sound", keys.Sound, Action{Intent: IntentToggleSound}},
		{"quit", keys.Quit, Action{Intent: IntentQuit}},
	}
	for _, s := range sections {
		for _, name := range s.names {
			if err := kt.bind(name, s.act); err != nil {
				return nil, fmt.Errorf("keys.%s: %w", s.field, err)
			}
		}
	}

	return kt, nil
}

func (kt *KeyTable) bind(name string, act Action) error {
	b, err := parseKeyName(name)
	if err != nil {
		return err
	}
	if b.key == tcell.KeyRune {
		kt.Runes[b.ch] = act
	} else {
		kt.SpecialKeys[b.key] = act
	}
	return nil
}
