// Package survey evolves many rules from the same initial row and summarises
// how each one behaves. Rules are evaluated in parallel; every evaluation owns
// its automaton, so no state is shared between workers.
package survey

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"tri-ca/internal/automaton"
)

// Options selects the rules to survey and how long to run each one.
type Options struct {
	From, To int
	Length   int
	Time     int
	Seed     int64
	Workers  int
}

// Result summarises one rule's spacetime field.
type Result struct {
	Rule int
	// Density is the fraction of cells in each state in the final row.
	Density [automaton.States]float64
	// Entropy is the Shannon entropy of the final row in bits, in [0, log2 3].
	Entropy float64
	// Activity is the fraction of cells that changed in the last step.
	Activity float64
	// Period is the cycle length the field settled into, or 0 if no row
	// repeated within the run. A fixed point has period 1.
	Period int
	// Transient is the step at which the cycle was first entered.
	Transient int
}

func (r Result) String() string {
	return fmt.Sprintf("rule=%d entropy=%.3f activity=%.3f density=[%.2f %.2f %.2f] period=%d transient=%d",
		r.Rule, r.Entropy, r.Activity, r.Density[0], r.Density[1], r.Density[2], r.Period, r.Transient)
}

func (o Options) validate() error {
	if err := automaton.ValidateRule(o.From); err != nil {
		return err
	}
	if err := automaton.ValidateRule(o.To); err != nil {
		return err
	}
	if o.From > o.To {
		return fmt.Errorf("%w: from %d is after to %d", automaton.ErrInvalidArgument, o.From, o.To)
	}
	if o.Time < 1 {
		return fmt.Errorf("%w: time %d must be at least 1", automaton.ErrInvalidArgument, o.Time)
	}
	return nil
}

// Run evaluates every rule in [opts.From, opts.To] and returns the results in
// rule order. All rules start from the same seeded row of opts.Length cells.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	seedRow, err := automaton.NewSeeded(opts.Length, opts.From, opts.Seed)
	if err != nil {
		return nil, err
	}
	initial := seedRow.InitialCondition()

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, opts.To-opts.From+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for rule := opts.From; rule <= opts.To; rule++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Evaluate(initial, rule, opts.Time)
			if err != nil {
				return err
			}
			results[rule-opts.From] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Evaluate evolves initial under rule for time steps and summarises the field.
func Evaluate(initial automaton.Configuration, rule, time int) (Result, error) {
	a, err := automaton.NewWithInitial(initial, rule)
	if err != nil {
		return Result{}, err
	}
	field, err := a.SpacetimeField(time)
	if err != nil {
		return Result{}, err
	}
	res := Result{Rule: rule}

	last := field[len(field)-1]
	var counts [automaton.States]int
	for _, v := range last {
		counts[v]++
	}
	n := float64(len(last))
	for s, c := range counts {
		p := float64(c) / n
		res.Density[s] = p
		if p > 0 {
			res.Entropy -= p * math.Log2(p)
		}
	}

	if len(field) > 1 {
		prev := field[len(field)-2]
		changed := 0
		for i := range last {
			if last[i] != prev[i] {
				changed++
			}
		}
		res.Activity = float64(changed) / n
	}

	seen := make(map[string]int, len(field))
	for t, row := range field {
		key := string(row)
		if first, ok := seen[key]; ok {
			res.Period = t - first
			res.Transient = first
			break
		}
		seen[key] = t
	}
	return res, nil
}

// ValidateSortKey reports whether key names a metric SortBy understands.
func ValidateSortKey(key string) error {
	_, err := lessFor(key)
	return err
}

// SortBy orders results by the named metric, highest first, breaking ties by
// rule number. Valid keys are "entropy", "activity", "period" and "rule".
func SortBy(results []Result, key string) error {
	less, err := lessFor(key)
	if err != nil {
		return err
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.Rule < b.Rule
	})
	return nil
}

func lessFor(key string) (func(a, b Result) bool, error) {
	var less func(a, b Result) bool
	switch key {
	case "entropy":
		less = func(a, b Result) bool { return a.Entropy > b.Entropy }
	case "activity":
		less = func(a, b Result) bool { return a.Activity > b.Activity }
	case "period":
		less = func(a, b Result) bool { return a.Period > b.Period }
	case "rule":
		less = func(a, b Result) bool { return false }
	default:
		return nil, fmt.Errorf("%w: unknown sort key %q", automaton.ErrInvalidArgument, key)
	}
	return less, nil
}
