package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// nameToKey maps canonical config string names to tcell key constants
var nameToKey = map[string]tcell.Key{
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backtab":   tcell.KeyBacktab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,

	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"page_up":   tcell.KeyPgUp,
	"page_down": tcell.KeyPgDn,
	"insert":    tcell.KeyInsert,

	"f1":  tcell.KeyF1,
	"f2":  tcell.KeyF2,
	"f3":  tcell.KeyF3,
	"f4":  tcell.KeyF4,
	"f5":  tcell.KeyF5,
	"f6":  tcell.KeyF6,
	"f7":  tcell.KeyF7,
	"f8":  tcell.KeyF8,
	"f9":  tcell.KeyF9,
	"f10": tcell.KeyF10,
	"f11": tcell.KeyF11,
	"f12": tcell.KeyF12,

	"ctrl_a": tcell.KeyCtrlA,
	"ctrl_b": tcell.KeyCtrlB,
	"ctrl_c": tcell.KeyCtrlC,
	"ctrl_d": tcell.KeyCtrlD,
	"ctrl_e": tcell.KeyCtrlE,
	"ctrl_f": tcell.KeyCtrlF,
	"ctrl_g": tcell.KeyCtrlG,
	"ctrl_n": tcell.KeyCtrlN,
	"ctrl_o": tcell.KeyCtrlO,
	"ctrl_p": tcell.KeyCtrlP,
	"ctrl_q": tcell.KeyCtrlQ,
	"ctrl_r": tcell.KeyCtrlR,
	"ctrl_s": tcell.KeyCtrlS,
	"ctrl_t": tcell.KeyCtrlT,
	"ctrl_u": tcell.KeyCtrlU,
	"ctrl_v": tcell.KeyCtrlV,
	"ctrl_w": tcell.KeyCtrlW,
	"ctrl_x": tcell.KeyCtrlX,
	"ctrl_y": tcell.KeyCtrlY,
	"ctrl_z": tcell.KeyCtrlZ,
}

// Rune aliases for keys that read poorly as bare single-char names
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// binding is a parsed key name: either a special key or a rune
type binding struct {
	key tcell.Key
	ch  rune
}

// parseKeyName resolves a canonical config name to a binding.
// Single-character names bind the printable rune, everything else must be
// a known special-key name
func parseKeyName(name string) (binding, error) {
	if k, ok := nameToKey[name]; ok {
		return binding{key: k}, nil
	}
	if r, ok := runeAliases[name]; ok {
		return binding{key: tcell.KeyRune, ch: r}, nil
	}
	runes := []rune(name)
	if len(runes) == 1 && runes[0] > ' ' {
		return binding{key: tcell.KeyRune, ch: runes[0]}, nil
	}
	return binding{}, fmt.Errorf("unknown key name %q", name)
}
