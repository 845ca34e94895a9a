package tristate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tri-ca/internal/automaton"
	"tri-ca/internal/core"
)

func TestStepMatchesSpacetimeField(t *testing.T) {
	world := New(40, 12, 9841)
	field, err := world.Automaton().SpacetimeField(11)
	require.NoError(t, err)

	for i := 0; i < 11; i++ {
		world.Step()
	}
	require.Equal(t, 11, world.Generation())

	size := world.Size()
	cells := world.Cells()
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : (y+1)*size.W]
		// Row 0 holds generation 11, the bottom row the initial configuration.
		assert.Equal(t, []uint8(field[11-y]), row, "row %d", y)
	}
}

func TestResetDeterministic(t *testing.T) {
	world := New(32, 8, 1234)
	world.Reset(99)
	first := append([]uint8(nil), world.Cells()...)
	world.Step()
	world.Step()

	world.Reset(99)
	assert.Equal(t, first, world.Cells())
	assert.Equal(t, 0, world.Generation())

	world.Reset(100)
	assert.NotEqual(t, first, world.Cells())
}

func TestSetIntParameter(t *testing.T) {
	world := New(16, 4, 5)
	world.Reset(7)
	initial := world.Automaton().InitialCondition()
	world.Step()

	require.True(t, world.SetIntParameter("rule", 17))
	assert.Equal(t, 17, world.Automaton().Rule())
	assert.Equal(t, 0, world.Generation())
	assert.Equal(t, initial, world.Automaton().InitialCondition(), "rule change keeps the seed")

	assert.False(t, world.SetIntParameter("rule", automaton.NumRules))
	assert.False(t, world.SetIntParameter("rule", -1))
	assert.False(t, world.SetIntParameter("width", 3))
	assert.Equal(t, 17, world.Automaton().Rule())
}

func TestParameters(t *testing.T) {
	world := New(10, 5, 300)
	world.Step()

	params := world.Parameters()
	rule, ok := params.Lookup("rule")
	require.True(t, ok)
	assert.Equal(t, "300", rule.Value)
	gen, ok := params.Lookup("gen")
	require.True(t, ok)
	assert.Equal(t, "1", gen.Value)

	for _, ctrl := range world.ParameterControls() {
		assert.Equal(t, 0, ctrl.Min)
		assert.Equal(t, automaton.MaxRule, ctrl.Max)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "64", "h": "-1", "rule": "19683", "seed": "5"})
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, DefaultConfig().Height, c.Height)
	assert.Equal(t, DefaultConfig().Rule, c.Rule)
	assert.Equal(t, int64(5), c.Seed)

	c = FromMap(map[string]string{"rule": "12"})
	assert.Equal(t, 12, c.Rule)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestNewWithConfigNormalises(t *testing.T) {
	world := NewWithConfig(Config{Width: -1, Height: 0, Rule: -5, Seed: 3})
	assert.Equal(t, core.Size{W: 256, H: 256}, world.Size())
	assert.Equal(t, DefaultConfig().Rule, world.Automaton().Rule())
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["tristate"]
	require.True(t, ok)
	sim := factory(map[string]string{"w": "20", "h": "6"})
	assert.Equal(t, "tristate", sim.Name())
	assert.Len(t, sim.Cells(), 120)
}
