package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"render_size": 512, "format": "TGA", "frames": 3}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.RenderSize)
	assert.Equal(t, "TGA", cfg.Format)
	assert.Equal(t, 3, cfg.Frames)

	_, err = Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "config: read")

	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolveDefaults(t *testing.T) {
	base := t.TempDir()
	var cfg Config
	cfg.Resolve(Flags{BaseDir: base})

	assert.Equal(t, filepath.Join(base, "pose-renders"), cfg.OutputDir)
	assert.Equal(t, FormatWebP, cfg.Format)
	assert.Equal(t, 256, cfg.RenderSize)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, 8, cfg.Frames)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Empty(t, cfg.ArchetypeFile)
	assert.Empty(t, cfg.AbilityFile)
	assert.NoError(t, cfg.Validate())
}

func TestResolveFindsDataFiles(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "archetypes.yml"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "abilities.yaml"), nil, 0o644))

	var cfg Config
	cfg.Resolve(Flags{BaseDir: base})
	assert.Equal(t, filepath.Join(base, "archetypes.yml"), cfg.ArchetypeFile)
	assert.Equal(t, filepath.Join(base, "abilities.yaml"), cfg.AbilityFile)
}

func TestFlagsOverrideFile(t *testing.T) {
	base := t.TempDir()
	cfg := Config{OutputDir: "out", Format: "webp", Workers: 2, RenderSize: 128}
	cfg.Resolve(Flags{BaseDir: base, Format: "TGA", Workers: 6, ArchetypeFile: "custom.yaml"})

	assert.Equal(t, filepath.Join(base, "out"), cfg.OutputDir)
	assert.Equal(t, FormatTGA, cfg.Format)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, 128, cfg.RenderSize)
	assert.Equal(t, filepath.Join(base, "custom.yaml"), cfg.ArchetypeFile)
}

func TestValidate(t *testing.T) {
	cfg := Config{Format: "png", Supersample: 2}
	assert.ErrorContains(t, cfg.Validate(), `unsupported format "png"`)

	cfg = Config{Format: FormatTGA, Supersample: 16}
	assert.ErrorContains(t, cfg.Validate(), "supersample 16")
}
