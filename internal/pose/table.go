package pose

import (
	"errors"
	"fmt"
	"sort"

	"biped-anim/internal/ability"
	"biped-anim/internal/tool"
)

var (
	// ErrUnknownAbility is returned when a program is registered under an
	// identifier the ability catalog does not know.
	ErrUnknownAbility = errors.New("unknown ability")
	// ErrDuplicateProgram is returned when a key is registered twice.
	ErrDuplicateProgram = errors.New("duplicate program")
)

// Key identifies a registration. An empty Ability marks the tool default.
type Key struct {
	Tool    tool.Kind
	Ability string
}

func (k Key) String() string {
	if k.Ability == "" {
		return k.Tool.String() + "/_"
	}
	return k.Tool.String() + "/" + k.Ability
}

// Table maps keys to programs. It is filled once at startup and only read
// afterwards, so a built table is safe for concurrent Resolve calls.
type Table struct {
	catalog  ability.Catalog
	programs map[Key]Program
}

// NewTable returns an empty table validating ability ids against catalog.
func NewTable(catalog ability.Catalog) *Table {
	return &Table{
		catalog:  catalog,
		programs: make(map[Key]Program),
	}
}

// Register binds program to every listed ability id under kind.
func (t *Table) Register(kind tool.Kind, program Program, ids ...string) error {
	if len(ids) == 0 {
		return fmt.Errorf("pose: register %s: no ability ids", kind)
	}
	for _, id := range ids {
		if id == "" || !t.catalog.Contains(id) {
			return fmt.Errorf("pose: register %s %q: %w", kind, id, ErrUnknownAbility)
		}
	}
	for _, id := range ids {
		if err := t.put(Key{Tool: kind, Ability: id}, program); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDefault sets the program run for kind when no id matches.
func (t *Table) RegisterDefault(kind tool.Kind, program Program) error {
	return t.put(Key{Tool: kind}, program)
}

func (t *Table) put(k Key, program Program) error {
	if !k.Tool.Present() {
		return fmt.Errorf("pose: register %s: tool kind required", k)
	}
	if _, exists := t.programs[k]; exists {
		return fmt.Errorf("pose: register %s: %w", k, ErrDuplicateProgram)
	}
	t.programs[k] = program
	return nil
}

// Resolve picks the program for a tool kind and ability id: an exact match
// first, then the kind's default. ok is false when neither exists, and the
// caller keeps the baseline pose.
func (t *Table) Resolve(kind tool.Kind, id string) (Program, bool) {
	if !kind.Present() {
		return nil, false
	}
	if id != "" {
		if p, ok := t.programs[Key{Tool: kind, Ability: id}]; ok {
			return p, true
		}
	}
	p, ok := t.programs[Key{Tool: kind}]
	return p, ok
}

// Keys lists every registration ordered by tool kind, then ability id with
// the default first.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.programs))
	for k := range t.programs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Tool != keys[j].Tool {
			return keys[i].Tool < keys[j].Tool
		}
		return keys[i].Ability < keys[j].Ability
	})
	return keys
}

// Len returns the number of registrations.
func (t *Table) Len() int {
	return len(t.programs)
}
