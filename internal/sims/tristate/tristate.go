// Package tristate runs the three-state automaton as a scrolling core.Sim: the
// newest generation sits in the top row and history moves downwards.
package tristate

import (
	"strconv"

	"tri-ca/internal/automaton"
	"tri-ca/internal/core"
)

// World adapts an automaton.Automaton to the core.Sim contract.
type World struct {
	cfg   Config
	ca    *automaton.Automaton
	table automaton.LookupTable
	grid  *core.ByteGrid
	cur   automaton.Configuration
	nxt   automaton.Configuration
	gen   int
}

// New creates a world with the given width, history height and rule. Invalid
// rules fall back to the default rule.
func New(w, h, rule int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Rule = rule
	return NewWithConfig(cfg)
}

// NewWithConfig creates a world from cfg and seeds it with cfg.Seed.
func NewWithConfig(cfg Config) *World {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if automaton.ValidateRule(cfg.Rule) != nil {
		cfg.Rule = def.Rule
	}
	w := &World{cfg: cfg}
	w.Reset(cfg.Seed)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "tristate" }

// Size returns the simulation grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Cells exposes the render buffer. Row 0 is the newest generation.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Generation returns the number of steps taken since the last reset.
func (w *World) Generation() int { return w.gen }

// Automaton returns the automaton currently driving the world.
func (w *World) Automaton() *automaton.Automaton { return w.ca }

// Reset draws a fresh random initial row from seed and clears the history.
func (w *World) Reset(seed int64) {
	ca, err := automaton.NewSeeded(w.cfg.Width, w.cfg.Rule, seed)
	if err != nil {
		// cfg is normalised in NewWithConfig and SetIntParameter.
		panic(err)
	}
	w.cfg.Seed = seed
	w.ca = ca
	w.table = ca.LookupTable()
	w.cur = ca.InitialCondition()
	w.nxt = make(automaton.Configuration, w.cfg.Width)
	if w.grid == nil || w.grid.W != w.cfg.Width || w.grid.H != w.cfg.Height {
		w.grid = core.NewByteGrid(w.cfg.Width, w.cfg.Height)
	} else {
		w.grid.Clear()
	}
	copy(w.grid.Row(0), w.cur)
	w.gen = 0
}

// Step computes the next generation and scrolls history downwards.
func (w *World) Step() {
	automaton.Step(w.table, w.cur, w.nxt)
	w.cur, w.nxt = w.nxt, w.cur
	w.grid.ScrollDown()
	copy(w.grid.Row(0), w.cur)
	w.gen++
}

// Parameters reports the current configuration for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "History", w.cfg.Height),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(w.cfg.Seed, 10)},
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				intParam("rule", "Rule", w.cfg.Rule),
				intParam("gen", "Generation", w.gen),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rule", Label: "Rule", Step: 1, Min: 0, Max: automaton.MaxRule},
		{Key: "rule", Label: "Rule x243", Step: 243, Min: 0, Max: automaton.MaxRule},
	}
}

// SetIntParameter updates an integer parameter and restarts the world from the
// current seed. It reports whether the value was accepted.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "rule":
		if automaton.ValidateRule(value) != nil {
			return false
		}
		w.cfg.Rule = value
	default:
		return false
	}
	w.Reset(w.cfg.Seed)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func init() {
	core.Register("tristate", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
