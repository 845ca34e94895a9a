// Package automaton implements a one-dimensional, three-state cellular
// automaton whose update rule depends on a cell and its left neighbor.
//
// A rule number in [0, 3^9) encodes, in base 3, the next value for each of the
// nine (self, left) neighborhoods. The row wraps around: the leftmost cell
// reads the rightmost cell as its left neighbor.
package automaton

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"tri-ca/internal/core"
)

const (
	// States is the number of values a cell can hold.
	States = 3
	// NumRules is the number of distinct rule numbers (3^9).
	NumRules = 19683
	// MaxRule is the largest valid rule number.
	MaxRule = NumRules - 1
)

// ErrInvalidArgument reports a caller error: a non-positive length, a rule
// number outside [0, MaxRule], a negative time or a malformed configuration.
var ErrInvalidArgument = errors.New("invalid argument")

// Configuration is the row of cell values at one time step.
type Configuration []uint8

// Field is the spacetime history of an automaton. Row 0 is the initial
// configuration and row t the configuration after t steps.
type Field []Configuration

// Automaton holds a rule number and an initial configuration. Both are fixed at
// construction and never mutated, so concurrent readers need no locking.
type Automaton struct {
	rule    int
	length  int
	initial Configuration
}

// New returns an automaton of the given length whose initial configuration is
// drawn uniformly at random from {0,1,2}.
func New(length, rule int) (*Automaton, error) {
	return NewSeeded(length, rule, rand.Int64())
}

// NewSeeded is like New but draws the initial configuration from a PCG source
// seeded with seed, so the same seed always produces the same row.
func NewSeeded(length, rule int, seed int64) (*Automaton, error) {
	if err := validate(length, rule); err != nil {
		return nil, err
	}
	initial := make(Configuration, length)
	core.NewRNG(seed).FillTernary(initial)
	return &Automaton{rule: rule, length: length, initial: initial}, nil
}

// NewWithInitial returns an automaton that starts from a copy of initial.
func NewWithInitial(initial Configuration, rule int) (*Automaton, error) {
	if err := validate(len(initial), rule); err != nil {
		return nil, err
	}
	for i, v := range initial {
		if v >= States {
			return nil, fmt.Errorf("%w: cell %d has value %d, want 0, 1 or 2", ErrInvalidArgument, i, v)
		}
	}
	cp := append(Configuration(nil), initial...)
	return &Automaton{rule: rule, length: len(cp), initial: cp}, nil
}

func validate(length, rule int) error {
	if length <= 0 {
		return fmt.Errorf("%w: length %d must be positive", ErrInvalidArgument, length)
	}
	return ValidateRule(rule)
}

// ValidateRule reports whether rule lies in [0, MaxRule].
func ValidateRule(rule int) error {
	if rule < 0 || rule > MaxRule {
		return fmt.Errorf("%w: rule %d outside [0, %d]", ErrInvalidArgument, rule, MaxRule)
	}
	return nil
}

// Rule returns the rule number.
func (a *Automaton) Rule() int { return a.rule }

// Length returns the number of cells in each configuration.
func (a *Automaton) Length() int { return a.length }

// InitialCondition returns a copy of the initial configuration.
func (a *Automaton) InitialCondition() Configuration {
	return append(Configuration(nil), a.initial...)
}

// LookupTable derives the transition table from the rule number.
func (a *Automaton) LookupTable() LookupTable {
	return TableForRule(a.rule)
}

// SpacetimeField evolves the initial configuration for time steps and returns
// all time+1 configurations. The returned field is freshly allocated.
func (a *Automaton) SpacetimeField(time int) (Field, error) {
	if time < 0 {
		return nil, fmt.Errorf("%w: time %d must not be negative", ErrInvalidArgument, time)
	}
	table := a.LookupTable()
	field := make(Field, 0, time+1)
	current := a.InitialCondition()
	field = append(field, current)
	for t := 1; t <= time; t++ {
		next := make(Configuration, a.length)
		Step(table, current, next)
		field = append(field, next)
		current = next
	}
	return field, nil
}

// Step writes the successor of cur into next. Both slices must have the same
// length. Index 0 takes the last cell as its left neighbor.
func Step(table LookupTable, cur, next Configuration) {
	n := len(cur)
	for idx := 0; idx < n; idx++ {
		left := cur[(idx-1+n)%n]
		next[idx] = table[Neighborhood{Self: cur[idx], Left: left}]
	}
}
