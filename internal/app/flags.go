package app

import (
	"strconv"

	"github.com/spf13/pflag"

	"tri-ca/internal/sims/tristate"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Rule   int
	Width  int
	Height int
	Invert bool
	HUD    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := tristate.DefaultConfig()
	return &Config{
		Sim:    "tristate",
		Scale:  3,
		TPS:    30,
		Seed:   def.Seed,
		Rule:   def.Rule,
		Width:  def.Width,
		Height: def.Height,
		HUD:    220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVarP(&c.Rule, "rule", "r", c.Rule, "rule number")
	fs.IntVarP(&c.Width, "width", "w", c.Width, "number of cells per row")
	fs.IntVar(&c.Height, "history", c.Height, "number of generations kept on screen")
	fs.BoolVar(&c.Invert, "invert", c.Invert, "draw state 0 as black")
	fs.IntVar(&c.HUD, "hud", c.HUD, "width of the control panel in pixels (0 hides it)")
}

// SimOptions converts the config into the string map sim factories accept.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"rule": strconv.Itoa(c.Rule),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
