package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tri-ca/internal/automaton"
)

// ruleFilter selects rules by properties of their lookup table.
type ruleFilter struct {
	from, to  int
	quiescent bool
	count     bool
}

func newRulesCmd() *cobra.Command {
	f := &ruleFilter{from: 0, to: automaton.MaxRule}
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List rule numbers in a range, optionally only quiescent ones",
		Long: `List rule numbers in [--from, --to]. With --quiescent only rules that map
the all-zero neighborhood (0,0) to 0 are listed, i.e. rules under which an empty
row stays empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := f.match()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if f.count {
				_, err := fmt.Fprintln(out, len(rules))
				return err
			}
			for _, r := range rules {
				if _, err := fmt.Fprintln(out, r); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&f.from, "from", f.from, "first rule number")
	cmd.Flags().IntVar(&f.to, "to", f.to, "last rule number")
	cmd.Flags().BoolVar(&f.quiescent, "quiescent", false, "only rules mapping (0,0) to 0")
	cmd.Flags().BoolVar(&f.count, "count", false, "print only the number of matching rules")
	return cmd
}

func (f *ruleFilter) match() ([]int, error) {
	if err := automaton.ValidateRule(f.from); err != nil {
		return nil, fmt.Errorf("--from: %w", err)
	}
	if err := automaton.ValidateRule(f.to); err != nil {
		return nil, fmt.Errorf("--to: %w", err)
	}
	if f.from > f.to {
		return nil, fmt.Errorf("%w: --from %d is after --to %d", automaton.ErrInvalidArgument, f.from, f.to)
	}
	var rules []int
	for r := f.from; r <= f.to; r++ {
		if f.quiescent && automaton.TableForRule(r)[automaton.Neighborhood{}] != 0 {
			continue
		}
		rules = append(rules, r)
	}
	return rules, nil
}
