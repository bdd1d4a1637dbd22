// Package config handles configuration loading and validation for quadkey.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// Range is the full ordinal range characters are selected from
type Range struct {
	Start int `toml:"start"`
	End   int `toml:"end"`
}

// Sound controls audio feedback
type Sound struct {
	Enabled bool `toml:"enabled"`
}

// Keys holds sparse key binding overrides. Only names present here are
// applied on top of the default table. Branches lists key names per branch,
// outer index = branch number
type Keys struct {
	Branches  [][]string `toml:"branches"`
	Back      []string   `toml:"back"`
	Backspace []string   `toml:"backspace"`
	Reset     []string   `toml:"reset"`
	Sound     []string   `toml:"sound"`
	Quit      []string   `toml:"quit"`
}

// Config holds the complete quadkey configuration
type Config struct {
	Range    Range `toml:"range"`
	Branches int   `toml:"branches"`
	Sound    Sound `toml:"sound"`
	Keys     Keys  `toml:"keys"`
}

// Default returns the stock configuration: printable ASCII over four branches
func Default() *Config {
	return &Config{
		Range:    Range{Start: 32, End: 126},
		Branches: 4,
		Sound:    Sound{Enabled: true},
	}
}

// Load reads and parses a TOML config file.
// A missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency
func (c *Config) Validate() error {
	if c.Range.Start > c.Range.End {
		return fmt.Errorf("range start %d exceeds end %d", c.Range.Start, c.Range.End)
	}
	if c.Range.Start < 0 {
		return fmt.Errorf("range start %d is negative", c.Range.Start)
	}
	if c.Range.End > utf8.MaxRune {
		return fmt.Errorf("range end %d exceeds the maximum code point", c.Range.End)
	}
	if c.Branches < 2 {
		return fmt.Errorf("branch count %d, need at least 2", c.Branches)
	}
	if len(c.Keys.Branches) > 0 && len(c.Keys.Branches) != c.Branches {
		return fmt.Errorf("keys.branches has %d entries, branch count is %d",
			len(c.Keys.Branches), c.Branches)
	}
	// The default table only binds the four joystick directions
	if c.Branches != 4 && len(c.Keys.Branches) == 0 {
		return fmt.Errorf("branch count %d requires explicit keys.branches bindings", c.Branches)
	}
	return nil
}
