// Package archetype is the read-only table of per-species body geometry the
// pose engine reads from. A builtin table covers every species that owns a
// pose program; a YAML file may adjust those entries or add new species.
package archetype

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	sk "biped-anim/internal/skeleton"
)

// ErrUnknownSpecies is returned by Lookup for a name the table does not hold.
var ErrUnknownSpecies = errors.New("unknown species")

// Table maps species names to their geometry.
type Table struct {
	attrs map[string]sk.Attr
}

// Builtin returns a copy of the builtin table.
func Builtin() *Table {
	t := &Table{attrs: make(map[string]sk.Attr, len(builtin))}
	for name, a := range builtin {
		t.attrs[name] = a
	}
	return t
}

// Lookup returns the geometry for a species. Names are case-insensitive.
func (t *Table) Lookup(species string) (sk.Attr, error) {
	a, ok := t.attrs[normalize(species)]
	if !ok {
		return sk.Attr{}, fmt.Errorf("archetype: %q: %w", species, ErrUnknownSpecies)
	}
	return a, nil
}

// Names lists every species in the table, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.attrs))
	for name := range t.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// overrideFile matches the YAML schema of an archetype file.
type overrideFile struct {
	Species map[string]overrideEntry `yaml:"species"`
}

// overrideEntry replaces only the fields that are set. Base names the
// species a new entry starts from.
type overrideEntry struct {
	Base       *string     `yaml:"base"`
	Head       *[2]float64 `yaml:"head"`
	Jaw        *[2]float64 `yaml:"jaw"`
	UpperTorso *[2]float64 `yaml:"upper_torso"`
	LowerTorso *[2]float64 `yaml:"lower_torso"`
	Tail       *[2]float64 `yaml:"tail"`
	Shoulder   *[3]float64 `yaml:"shoulder"`
	Hand       *[3]float64 `yaml:"hand"`
	Leg        *[3]float64 `yaml:"leg"`
	Foot       *[3]float64 `yaml:"foot"`
	Grip       *[2]float64 `yaml:"grip"`
	Height     *float64    `yaml:"height"`
	Tempo      *float64    `yaml:"tempo"`
	Scaler     *float64    `yaml:"scaler"`
}

func (e overrideEntry) apply(a *sk.Attr) {
	setPair := func(dst *[2]float64, src *[2]float64) {
		if src != nil {
			*dst = *src
		}
	}
	setTriple := func(dst *[3]float64, src *[3]float64) {
		if src != nil {
			*dst = *src
		}
	}
	setScalar := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}

	setPair(&a.Head, e.Head)
	setPair(&a.Jaw, e.Jaw)
	setPair(&a.UpperTorso, e.UpperTorso)
	setPair(&a.LowerTorso, e.LowerTorso)
	setPair(&a.Tail, e.Tail)
	setTriple(&a.Shoulder, e.Shoulder)
	setTriple(&a.Hand, e.Hand)
	setTriple(&a.Leg, e.Leg)
	setTriple(&a.Foot, e.Foot)
	setPair(&a.Grip, e.Grip)
	setScalar(&a.Height, e.Height)
	setScalar(&a.Tempo, e.Tempo)
	setScalar(&a.Scaler, e.Scaler)
}

// LoadFile reads an archetype file and merges it over the builtin table.
// An empty path returns the builtin table unchanged.
func LoadFile(path string) (*Table, error) {
	t := Builtin()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("archetype: read %s: %w", path, err)
	}
	if err := t.Merge(raw); err != nil {
		return nil, fmt.Errorf("archetype: parse %s: %w", path, err)
	}
	return t, nil
}

// Merge applies YAML overrides to the table. Existing species are adjusted
// field by field; a new species must name an existing base. Bases resolve
// against the table as it was before this merge.
func (t *Table) Merge(raw []byte) error {
	var file overrideFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return err
	}

	names := make([]string, 0, len(file.Species))
	for name := range file.Species {
		names = append(names, name)
	}
	sort.Strings(names)

	merged := make(map[string]sk.Attr, len(names))
	for _, name := range names {
		e := file.Species[name]
		key := normalize(name)
		if key == "" {
			return errors.New("empty species name")
		}

		attr, exists := t.attrs[key]
		if e.Base != nil {
			base, ok := t.attrs[normalize(*e.Base)]
			if !ok {
				return fmt.Errorf("%s: base %q: %w", name, *e.Base, ErrUnknownSpecies)
			}
			attr = base
		} else if !exists {
			return fmt.Errorf("%s: new species needs a base", name)
		}

		e.apply(&attr)
		merged[key] = attr
	}

	for k, a := range merged {
		t.attrs[k] = a
	}
	return nil
}
