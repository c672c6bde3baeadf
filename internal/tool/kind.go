// Package tool enumerates the tool kinds a character can wield.
package tool

import (
	"fmt"
	"strings"
)

// Kind is the wielded tool kind. The zero value None means unarmed.
type Kind int

const (
	None Kind = iota
	Sword
	Axe
	Hammer
	Bow
	Staff
	Sceptre
	Dagger
	Shield
	Spear
	Blowgun
	Natural
	Debug
	Farming
	Pick
	Shovel
	Instrument
	Throwable
	Empty
)

var kindNames = [...]string{
	None:       "none",
	Sword:      "sword",
	Axe:        "axe",
	Hammer:     "hammer",
	Bow:        "bow",
	Staff:      "staff",
	Sceptre:    "sceptre",
	Dagger:     "dagger",
	Shield:     "shield",
	Spear:      "spear",
	Blowgun:    "blowgun",
	Natural:    "natural",
	Debug:      "debug",
	Farming:    "farming",
	Pick:       "pick",
	Shovel:     "shovel",
	Instrument: "instrument",
	Throwable:  "throwable",
	Empty:      "empty",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Present reports whether a tool is wielded at all.
func (k Kind) Present() bool {
	return k != None
}

// Parse resolves a case-insensitive kind name. The empty string is None.
func Parse(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return None, nil
	}
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return None, fmt.Errorf("tool: unknown kind %q", s)
}

// All lists every wieldable kind (None excluded).
func All() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for i := 1; i < len(kindNames); i++ {
		out = append(out, Kind(i))
	}
	return out
}
