// Package config holds the settings of the preview tools: where the
// archetype and ability files live, where renders go and how they are drawn.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Image formats accepted for rendered frames.
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir       string `json:"base_dir"`
	ArchetypeFile string `json:"archetype_file"`
	AbilityFile   string `json:"ability_file"`
	OutputDir     string `json:"output_dir"`

	// Render settings
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	Format      string `json:"format"`
	Workers     int    `json:"workers"`
	// Frames is the number of phase samples rendered per stage section.
	Frames int `json:"frames"`

	LogLevel string `json:"log_level"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with auto-detected defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.BaseDir != "" {
		c.BaseDir = flags.BaseDir
	}
	if flags.ArchetypeFile != "" {
		c.ArchetypeFile = flags.ArchetypeFile
	}
	if flags.AbilityFile != "" {
		c.AbilityFile = flags.AbilityFile
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.BaseDir == "" {
		c.BaseDir, _ = os.Getwd()
	}

	// Optional data files are picked up from the base dir when present
	if c.ArchetypeFile == "" {
		c.ArchetypeFile = findFile(c.BaseDir, "archetypes.yaml", "archetypes.yml")
	} else {
		c.ArchetypeFile = resolvePath(c.BaseDir, c.ArchetypeFile)
	}
	if c.AbilityFile == "" {
		c.AbilityFile = findFile(c.BaseDir, "abilities.yaml", "abilities.yml")
	} else {
		c.AbilityFile = resolvePath(c.BaseDir, c.AbilityFile)
	}

	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.BaseDir, "pose-renders")
	} else {
		c.OutputDir = resolvePath(c.BaseDir, c.OutputDir)
	}

	// Defaults for render settings
	c.Format = strings.ToLower(c.Format)
	if c.Format == "" {
		c.Format = FormatWebP
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 8
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings Resolve cannot repair.
func (c Config) Validate() error {
	switch c.Format {
	case FormatWebP, FormatTGA:
	default:
		return fmt.Errorf("config: unsupported format %q", c.Format)
	}
	if c.Supersample > 8 {
		return fmt.Errorf("config: supersample %d exceeds 8", c.Supersample)
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	BaseDir       string
	ArchetypeFile string
	AbilityFile   string
	OutputDir     string
	Format        string
	Size          int
	Frames        int
	Workers       int
	LogLevel      string
}

func resolvePath(base, p string) string {
	if base == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// findFile returns the first candidate that exists under dir, or "".
func findFile(dir string, names ...string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
