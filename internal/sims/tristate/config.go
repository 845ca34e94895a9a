package tristate

import (
	"strconv"

	"tri-ca/internal/automaton"
)

// Config holds parameters for the scrolling three-state automaton.
type Config struct {
	Width  int
	Height int
	Rule   int
	Seed   int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: automaton.NumRules / 2, Seed: 42}
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && automaton.ValidateRule(parsed) == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
