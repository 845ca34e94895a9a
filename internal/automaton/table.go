package automaton

import (
	"fmt"
	"strings"
)

// Neighborhood is the (self, left) pair a cell's next value depends on.
type Neighborhood struct {
	Self uint8
	Left uint8
}

func (n Neighborhood) String() string {
	return fmt.Sprintf("(%d,%d)", n.Self, n.Left)
}

// Neighborhoods lists the nine neighborhoods in rule-digit order: entry i is
// controlled by the i-th base-3 digit of the rule number.
var Neighborhoods = [9]Neighborhood{
	{0, 0}, {0, 1}, {1, 0}, {2, 1}, {2, 2}, {0, 2}, {2, 0}, {1, 2}, {1, 1},
}

// LookupTable maps each neighborhood to the value it produces.
type LookupTable map[Neighborhood]uint8

// TableForRule expands rule into its lookup table. The rule is assumed to be
// valid; digits beyond the ninth are ignored.
func TableForRule(rule int) LookupTable {
	table := make(LookupTable, len(Neighborhoods))
	r := rule
	for _, n := range Neighborhoods {
		table[n] = uint8(r % States)
		r /= States
	}
	return table
}

// RuleFromTable folds a table back into its rule number. Missing entries count
// as zero.
func RuleFromTable(table LookupTable) int {
	rule, weight := 0, 1
	for _, n := range Neighborhoods {
		rule += int(table[n]) * weight
		weight *= States
	}
	return rule
}

// String renders the table in rule-digit order, e.g. "(0,0)->0 (0,1)->1 ...".
func (t LookupTable) String() string {
	var b strings.Builder
	for i, n := range Neighborhoods {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s->%d", n, t[n])
	}
	return b.String()
}
