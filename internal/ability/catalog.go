// Package ability holds the canonical list of ability identifiers that pose
// programs may be registered under. Identifiers are open-ended strings owned
// by the ability-definition collaborator; the catalog only answers whether a
// given string is known.
package ability

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Ability identifiers with a dedicated pose program.
const (
	DullahanKnifeRain   = "common.abilities.custom.dullahan.knife_rain"
	DullahanFierceDarts = "common.abilities.custom.dullahan.fierce_darts"
	AdletElderAirBlade  = "common.abilities.adlet.elder.air_blade"
	AdletElderTrap      = "common.abilities.adlet.elder.trap"

	CyclopsOpticBlast     = "common.abilities.custom.cyclops.optic_blast"
	ForgemasterLavaMortar = "common.abilities.custom.dwarves.forgemaster.lava_mortar"
	ForgemasterMines      = "common.abilities.custom.dwarves.forgemaster.mines"

	MindflayerNecroticSphere = "common.abilities.custom.mindflayer.necroticsphere_multiblast"

	TerracottaBesiegerMultishot = "common.abilities.custom.terracotta_besieger.multishot"

	MinotaurAxeThrow          = "common.abilities.custom.minotaur.axethrow"
	WendigoFrostBomb          = "common.abilities.custom.wendigomagic.frostbomb"
	YetiSnowball              = "common.abilities.custom.yeti.snowball"
	TerracottaDemolisherThrow = "common.abilities.custom.terracotta_demolisher.throw"
	TerracottaDemolisherDrop  = "common.abilities.custom.terracotta_demolisher.drop"
	HarvesterExplodingPumpkin = "common.abilities.custom.harvester.explodingpumpkin"
	StrigoiProjectiles        = "common.abilities.vampire.strigoi.projectiles"
)

// Catalog answers whether an ability identifier is known.
type Catalog interface {
	Contains(id string) bool
}

// Set is a Catalog backed by a map.
type Set map[string]struct{}

// NewSet builds a set from ids, ignoring blanks.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	s.Add(ids...)
	return s
}

// Builtin returns the identifiers shipped with the engine.
func Builtin() Set {
	return NewSet(
		DullahanKnifeRain, DullahanFierceDarts, AdletElderAirBlade, AdletElderTrap,
		CyclopsOpticBlast, ForgemasterLavaMortar, ForgemasterMines,
		MindflayerNecroticSphere, TerracottaBesiegerMultishot,
		MinotaurAxeThrow, WendigoFrostBomb, YetiSnowball,
		TerracottaDemolisherThrow, TerracottaDemolisherDrop,
		HarvesterExplodingPumpkin, StrigoiProjectiles,
	)
}

func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts ids; blank strings are skipped.
func (s Set) Add(ids ...string) {
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			s[id] = struct{}{}
		}
	}
}

// IDs returns the identifiers in sorted order.
func (s Set) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// catalogFile is the YAML shape of an external ability list.
type catalogFile struct {
	Abilities []string `yaml:"abilities"`
}

// LoadFile reads a YAML ability list and merges it over the builtin set.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ability: read %s: %w", path, err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ability: parse %s: %w", path, err)
	}

	s := Builtin()
	s.Add(f.Abilities...)
	return s, nil
}
