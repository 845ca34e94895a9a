package automaton

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTableRuleZero(t *testing.T) {
	a, err := New(100, 0)
	require.NoError(t, err)

	table := a.LookupTable()
	require.Len(t, table, 9)
	for _, n := range Neighborhoods {
		assert.Equal(t, uint8(0), table[n], "neighborhood %s", n)
	}
}

func TestLookupTableRuleThree(t *testing.T) {
	a, err := New(100, 3)
	require.NoError(t, err)

	want := LookupTable{
		{0, 0}: 0, {0, 1}: 1, {1, 0}: 0, {2, 1}: 0, {2, 2}: 0,
		{0, 2}: 0, {2, 0}: 0, {1, 2}: 0, {1, 1}: 0,
	}
	assert.Equal(t, want, a.LookupTable())
}

func TestLookupTableRoundTrip(t *testing.T) {
	for _, rule := range []int{0, 1, 2, 3, 8, 26, 243, 6560, 9841, 12345, MaxRule} {
		table := TableForRule(rule)
		require.Len(t, table, 9)
		assert.Equal(t, rule%NumRules, RuleFromTable(table), "rule %d", rule)
	}
}

func TestLookupTableDoesNotMutateRule(t *testing.T) {
	a, err := NewWithInitial(Configuration{0, 1, 2}, 4242)
	require.NoError(t, err)

	first := a.LookupTable()
	second := a.LookupTable()
	assert.Equal(t, first, second)
	assert.Equal(t, 4242, a.Rule())
}

func TestLookupTableString(t *testing.T) {
	got := TableForRule(3).String()
	assert.Equal(t, "(0,0)->0 (0,1)->1 (1,0)->0 (2,1)->0 (2,2)->0 (0,2)->0 (2,0)->0 (1,2)->0 (1,1)->0", got)
}

func TestSpacetimeFieldZeroTime(t *testing.T) {
	a, err := New(17, 5000)
	require.NoError(t, err)

	field, err := a.SpacetimeField(0)
	require.NoError(t, err)
	require.Len(t, field, 1)
	assert.Equal(t, a.InitialCondition(), field[0])
}

func TestSpacetimeFieldShape(t *testing.T) {
	a, err := NewSeeded(23, 777, 9)
	require.NoError(t, err)

	for _, steps := range []int{0, 1, 5, 40} {
		field, err := a.SpacetimeField(steps)
		require.NoError(t, err)
		require.Len(t, field, steps+1)
		for row, cfg := range field {
			require.Len(t, cfg, 23, "row %d", row)
			for _, v := range cfg {
				require.Less(t, v, uint8(States))
			}
		}
	}
}

func TestSpacetimeFieldDeterministic(t *testing.T) {
	a, err := NewWithInitial(Configuration{2, 0, 1, 1, 0, 2, 2, 1}, 15000)
	require.NoError(t, err)

	first, err := a.SpacetimeField(30)
	require.NoError(t, err)
	second, err := a.SpacetimeField(30)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSpacetimeFieldDoesNotAliasState(t *testing.T) {
	initial := Configuration{1, 0, 2}
	a, err := NewWithInitial(initial, 100)
	require.NoError(t, err)

	initial[0] = 2
	field, err := a.SpacetimeField(2)
	require.NoError(t, err)
	field[0][1] = 2

	assert.Equal(t, Configuration{1, 0, 2}, a.InitialCondition())
}

func TestSpacetimeFieldWrapsLeftNeighbor(t *testing.T) {
	// Only (self=1, left=0) produces a non-zero value (digit 2 of the rule).
	rule := 1 * 9
	a, err := NewWithInitial(Configuration{1, 0, 2, 1, 0}, rule)
	require.NoError(t, err)

	field, err := a.SpacetimeField(1)
	require.NoError(t, err)
	// Cell 0 is 1 and its wrapped left neighbor (cell 4) is 0. Cell 3 is 1 with
	// left neighbor 2, so it must not fire.
	assert.Equal(t, Configuration{1, 0, 0, 0, 0}, field[1])
}

func TestSpacetimeFieldRuleZeroClears(t *testing.T) {
	a, err := NewWithInitial(Configuration{1, 0, 2, 1, 0}, 0)
	require.NoError(t, err)

	field, err := a.SpacetimeField(3)
	require.NoError(t, err)
	for _, row := range field[1:] {
		assert.Equal(t, Configuration{0, 0, 0, 0, 0}, row)
	}
}

func TestSpacetimeFieldSingleCell(t *testing.T) {
	// Rule for (1,1)->2, (2,2)->1: digit 8 is 2, digit 4 is 1.
	rule := 2*6561 + 1*81
	a, err := NewWithInitial(Configuration{1}, rule)
	require.NoError(t, err)

	field, err := a.SpacetimeField(4)
	require.NoError(t, err)
	assert.Equal(t, Field{{1}, {2}, {1}, {2}, {1}}, field)
}

func TestSpacetimeFieldMatchesStep(t *testing.T) {
	a, err := NewSeeded(31, 4321, 1)
	require.NoError(t, err)
	table := a.LookupTable()

	field, err := a.SpacetimeField(10)
	require.NoError(t, err)
	cur := a.InitialCondition()
	for step := 1; step <= 10; step++ {
		next := make(Configuration, len(cur))
		Step(table, cur, next)
		require.Equal(t, next, field[step], "step %d", step)
		cur = next
	}
}

func TestSpacetimeFieldNegativeTime(t *testing.T) {
	a, err := New(4, 1)
	require.NoError(t, err)

	field, err := a.SpacetimeField(-1)
	assert.Nil(t, field)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestConstructorValidation(t *testing.T) {
	cases := []struct {
		name   string
		length int
		rule   int
	}{
		{"zero length", 0, 5},
		{"negative length", -3, 5},
		{"negative rule", 10, -1},
		{"rule too large", 10, NumRules},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.length, tc.rule)
			require.ErrorIs(t, err, ErrInvalidArgument)
			_, err = NewSeeded(tc.length, tc.rule, 1)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}

	_, err := New(1, MaxRule)
	require.NoError(t, err)
}

func TestNewWithInitialValidation(t *testing.T) {
	_, err := NewWithInitial(nil, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewWithInitial(Configuration{0, 3}, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewWithInitial(Configuration{0, 1}, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewSeededReproducible(t *testing.T) {
	a, err := NewSeeded(64, 10, 1234)
	require.NoError(t, err)
	b, err := NewSeeded(64, 10, 1234)
	require.NoError(t, err)
	assert.Equal(t, a.InitialCondition(), b.InitialCondition())
	assert.Equal(t, 64, a.Length())
}

func TestRandomInitialConditionUsesAllStates(t *testing.T) {
	a, err := NewSeeded(3000, 0, 42)
	require.NoError(t, err)

	var counts [States]int
	for _, v := range a.InitialCondition() {
		require.Less(t, v, uint8(States))
		counts[v]++
	}
	for state, n := range counts {
		assert.Greater(t, n, 800, "state %d drawn %d times", state, n)
	}
}
