package archetype

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biped-anim/internal/ability"
	sk "biped-anim/internal/skeleton"
)

func TestBuiltinCoversProgramOwners(t *testing.T) {
	table := Builtin()
	assert.Len(t, table.Names(), 12)
	for _, name := range table.Names() {
		a, err := table.Lookup(name)
		require.NoError(t, err)
		assert.Greater(t, a.Scaler, 0.0, name)
		assert.Greater(t, a.Tempo, 0.0, name)
		assert.True(t, sk.Rest(a).IsFinite(), name)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	table := Builtin()
	a, err := table.Lookup("  Yeti ")
	require.NoError(t, err)
	assert.Equal(t, builtin[Yeti], a)

	_, err = table.Lookup("dragon")
	assert.ErrorIs(t, err, ErrUnknownSpecies)
}

func TestBuiltinReturnsCopies(t *testing.T) {
	a := Builtin()
	require.NoError(t, a.Merge([]byte("species:\n  yeti:\n    scaler: 9\n")))

	b := Builtin()
	got, err := b.Lookup(Yeti)
	require.NoError(t, err)
	assert.Equal(t, builtin[Yeti].Scaler, got.Scaler)
}

func TestMergeOverridesOnlySetFields(t *testing.T) {
	table := Builtin()
	err := table.Merge([]byte(`
species:
  cyclops:
    grip: [20, 2]
    tempo: 0.5
`))
	require.NoError(t, err)

	got, err := table.Lookup(Cyclops)
	require.NoError(t, err)
	want := builtin[Cyclops]
	want.Grip = [2]float64{20, 2}
	want.Tempo = 0.5
	assert.Equal(t, want, got)
}

func TestMergeNewSpeciesFromBase(t *testing.T) {
	table := Builtin()
	err := table.Merge([]byte(`
species:
  frost_yeti:
    base: yeti
    height: 3.1
`))
	require.NoError(t, err)

	got, err := table.Lookup("frost_yeti")
	require.NoError(t, err)
	assert.Equal(t, 3.1, got.Height)
	assert.Equal(t, builtin[Yeti].Foot, got.Foot)
}

func TestMergeRejects(t *testing.T) {
	cases := map[string]string{
		"no base":      "species:\n  dragon:\n    height: 2\n",
		"unknown base": "species:\n  dragon:\n    base: wyrm\n",
		"bad yaml":     "species: [",
		"short pair":   "species:\n  yeti:\n    grip: [1, 2, 3]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			table := Builtin()
			assert.Error(t, table.Merge([]byte(doc)))
			// failed merges leave the table untouched
			assert.Len(t, table.Names(), 12)
		})
	}
}

func TestLoadFile(t *testing.T) {
	table, err := LoadFile("")
	require.NoError(t, err)
	assert.Len(t, table.Names(), 12)

	path := filepath.Join(t.TempDir(), "archetypes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("species:\n  brute:\n    base: minotaur\n"), 0o644))
	table, err = LoadFile(path)
	require.NoError(t, err)
	assert.Contains(t, table.Names(), "brute")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "archetype: read")
}

func TestEveryBuiltinAbilityHasAnOwner(t *testing.T) {
	table := Builtin()
	for _, id := range ability.Builtin().IDs() {
		species, ok := Owner(id)
		require.True(t, ok, id)
		_, err := table.Lookup(species)
		assert.NoError(t, err, id)
	}
	_, ok := Owner("common.abilities.custom.nobody.nothing")
	assert.False(t, ok)
}
