package sweep

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered frame in the output manifest.
type ManifestEntry struct {
	Tool    string  `json:"tool"`
	Ability string  `json:"ability,omitempty"`
	Species string  `json:"species"`
	Stage   string  `json:"stage"`
	Frame   int     `json:"frame"`
	Time    float64 `json:"time"`
	Image   string  `json:"image,omitempty"`
	// Bounds is the figure's pixel extent as [minX, minY, maxX, maxY].
	Bounds [4]int `json:"bounds"`
	Error  string `json:"error,omitempty"`
}

// WriteManifest writes the sweep results to path as indented JSON. Failed
// frames are listed with their error and no image.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{
			Tool:    r.Key.Tool.String(),
			Ability: r.Key.Ability,
			Species: r.Species,
			Stage:   r.Stage.String(),
			Frame:   r.Frame,
			Time:    r.Time,
			Bounds:  [4]int{r.Bounds.Min.X, r.Bounds.Min.Y, r.Bounds.Max.X, r.Bounds.Max.Y},
			Error:   r.Error,
		}
		if r.Success {
			e.Image = filepath.ToSlash(r.Image)
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("sweep: manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("sweep: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
