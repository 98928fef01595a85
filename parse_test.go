package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlueprint(t *testing.T) {
	bp, err := ParseBlueprint("Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.")
	require.NoError(t, err)
	assert.Equal(t, blueprint1, bp)
}

func TestParseBlueprint_Malformed(t *testing.T) {
	for _, line := range []string{
		"",
		"Blueprint x: nothing here",
		"Blueprint 3: Each ore robot costs 4 ore. Each clay robot costs 2 ore.",
		"Blueprint 99999999999999999999: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.",
	} {
		_, err := ParseBlueprint(line)
		assert.ErrorIs(t, err, ErrMalformedBlueprint, "line %q", line)
	}
}

func TestParseBlueprints(t *testing.T) {
	bps := loadExample(t)
	assert.Equal(t, []Blueprint{blueprint1, blueprint2}, bps)
}

func TestParseBlueprints_SkipsBlankLines(t *testing.T) {
	input := "\n" + exampleInput + "\n\n   \n"
	bps, err := ParseBlueprints(input)
	require.NoError(t, err)
	assert.Len(t, bps, 2)
}

func TestParseBlueprints_FailsFast(t *testing.T) {
	input := trimInput(exampleInput) + "\nnot a blueprint\n"
	bps, err := ParseBlueprints(input)
	assert.Nil(t, bps)
	require.ErrorIs(t, err, ErrMalformedBlueprint)
	assert.Contains(t, err.Error(), "line 3")
}

func TestTrimInput(t *testing.T) {
	assert.Equal(t, "a\nb", trimInput("\n\na\r\nb\n"))
	assert.Equal(t, "", trimInput("\n\n"))
}

func TestLoadBlueprints(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day-19.txt")
	require.NoError(t, os.WriteFile(path, []byte(exampleInput), 0o600))

	bps, err := LoadBlueprints(path)
	require.NoError(t, err)
	assert.Len(t, bps, 2)

	_, err = LoadBlueprints(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindBlueprint(t *testing.T) {
	bps := loadExample(t)
	got := FindBlueprint(bps, 2)
	require.NotNil(t, got)
	assert.Equal(t, blueprint2, *got)
	assert.Nil(t, FindBlueprint(bps, 7))
}
