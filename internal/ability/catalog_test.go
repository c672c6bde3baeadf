package ability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	s := Builtin()
	assert.Len(t, s, 16)
	assert.True(t, s.Contains(MinotaurAxeThrow))
	assert.False(t, s.Contains("common.abilities.custom.minotaur.cleave"))
	assert.False(t, s.Contains(""))

	ids := s.IDs()
	assert.IsNonDecreasing(t, ids)
}

func TestLoadFileMergesOverBuiltin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abilities.yaml")
	body := "abilities:\n  - common.abilities.custom.ogre.fireball\n  - \"  \"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, s.Contains("common.abilities.custom.ogre.fireball"))
	assert.True(t, s.Contains(YetiSnowball))
	assert.Len(t, s, 17)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "ability: read")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("abilities: {"), 0o644))
	_, err = LoadFile(path)
	assert.ErrorContains(t, err, "ability: parse")
}
