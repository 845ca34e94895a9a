package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tri-ca/internal/automaton"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTableCommand(t *testing.T) {
	out, err := run(t, "table", "--rule", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "rule 3\n")
	assert.Contains(t, out, "(0,1) -> 1\n")
	assert.Contains(t, out, "(2,2) -> 0\n")
}

func TestEvolveCommandText(t *testing.T) {
	out, err := run(t, "evolve", "--initial", "10210", "--rule", "9", "--time", "2")
	require.NoError(t, err)
	assert.Equal(t, "10210\n10000\n10000\n", out)
}

func TestEvolveCommandYAMLSeeded(t *testing.T) {
	args := []string{"evolve", "-l", "12", "-r", "5000", "-t", "4", "--seed", "9", "-f", "yaml"}
	first, err := run(t, args...)
	require.NoError(t, err)
	second, err := run(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "rule: 5000")
	assert.Contains(t, first, "length: 12")
}

func TestEvolveCommandRejectsInvalidInput(t *testing.T) {
	_, err := run(t, "evolve", "--rule", "19683")
	assert.ErrorIs(t, err, automaton.ErrInvalidArgument)

	_, err = run(t, "evolve", "--length", "0")
	assert.ErrorIs(t, err, automaton.ErrInvalidArgument)

	_, err = run(t, "evolve", "--time", "-1")
	assert.ErrorIs(t, err, automaton.ErrInvalidArgument)
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial: \"10210\"\nrule: 0\ntime: 1\n"), 0o644))

	out, err := run(t, "evolve", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "10210\n00000\n", out)

	out, err = run(t, "evolve", "--config", path, "--rule", "9")
	require.NoError(t, err)
	assert.Equal(t, "10210\n10000\n", out)
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.png")
	_, err := run(t, "render", "-l", "10", "-t", "5", "--scale", "2", "-o", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())

	_, err = run(t, "render")
	assert.Error(t, err)
}

func TestRulesCommand(t *testing.T) {
	out, err := run(t, "rules", "--quiescent", "--count")
	require.NoError(t, err)
	assert.Equal(t, "6561\n", out)

	out, err = run(t, "rules", "--from", "0", "--to", "5", "--quiescent")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "3"}, strings.Fields(out))

	_, err = run(t, "rules", "--from", "10", "--to", "2")
	assert.ErrorIs(t, err, automaton.ErrInvalidArgument)
}

func TestSurveyCommand(t *testing.T) {
	args := []string{"survey", "--from", "0", "--to", "26", "-l", "16", "-t", "12", "--top", "3", "--sort", "rule"}
	out, err := run(t, args...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], " 1) rule=0 "), lines[0])
	assert.True(t, strings.HasPrefix(lines[2], " 3) rule=2 "), lines[2])

	_, err = run(t, "survey", "--from", "0", "--to", "5", "--sort", "mass")
	assert.ErrorIs(t, err, automaton.ErrInvalidArgument)
}

func TestSurveyCommandRejectsSortKeyBeforeRunning(t *testing.T) {
	// Full default range; an unknown key must fail without evaluating any rule.
	out, err := run(t, "survey", "--sort", "mass")
	assert.ErrorIs(t, err, automaton.ErrInvalidArgument)
	assert.Empty(t, out)
}
