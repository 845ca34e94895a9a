// Package config loads run settings from a YAML file and command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"tri-ca/internal/automaton"
	"tri-ca/internal/export"
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	Length  int    `yaml:"length"`
	Rule    int    `yaml:"rule"`
	Time    int    `yaml:"time"`
	Seed    int64  `yaml:"seed"`
	Initial string `yaml:"initial"`
	Scale   int    `yaml:"scale"`
	Invert  bool   `yaml:"invert"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Length: 100,
		Rule:   automaton.NumRules / 2,
		Time:   100,
		Seed:   42,
		Scale:  4,
		Format: string(export.FormatText),
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Bind attaches the configuration to fs. Values already in c become the flag
// defaults, so flags given on the command line override the file.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Length, "length", "l", c.Length, "number of cells")
	fs.IntVarP(&c.Rule, "rule", "r", c.Rule, fmt.Sprintf("rule number in [0, %d]", automaton.MaxRule))
	fs.IntVarP(&c.Time, "time", "t", c.Time, "number of generations to evolve")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial row")
	fs.StringVar(&c.Initial, "initial", c.Initial, "explicit initial row as digits, e.g. 10210 (overrides --length and --seed)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell when rendering")
	fs.BoolVar(&c.Invert, "invert", c.Invert, "render state 0 as black instead of white")
	fs.StringVarP(&c.Format, "format", "f", c.Format, "output format: text, yaml or json")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "output file (default stdout)")
}

// Validate checks the settings against the automaton's domain.
func (c Config) Validate() error {
	if c.Initial == "" && c.Length <= 0 {
		return fmt.Errorf("%w: length %d must be positive", automaton.ErrInvalidArgument, c.Length)
	}
	if err := automaton.ValidateRule(c.Rule); err != nil {
		return err
	}
	if c.Time < 0 {
		return fmt.Errorf("%w: time %d must not be negative", automaton.ErrInvalidArgument, c.Time)
	}
	if c.Scale < 1 {
		return fmt.Errorf("%w: scale %d must be at least 1", automaton.ErrInvalidArgument, c.Scale)
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", automaton.ErrInvalidArgument, err)
	}
	return nil
}

// Automaton builds the automaton described by c: from Initial when set,
// otherwise a seeded random row of Length cells.
func (c Config) Automaton() (*automaton.Automaton, error) {
	if c.Initial != "" {
		row, err := export.ParseRow(c.Initial)
		if err != nil {
			return nil, err
		}
		return automaton.NewWithInitial(row, c.Rule)
	}
	return automaton.NewSeeded(c.Length, c.Rule, c.Seed)
}
