// Package phase implements the three-segment timing contract shared by every
// pose program: an externally driven stage section plus the phase-local time
// within it are turned into progress scalars, and a Recover pullback that
// collapses the pose back towards neutral.
package phase

import (
	"fmt"
	"strings"
)

// Section is the ability-execution stage. The zero value None means no
// ability is running.
type Section int

const (
	None Section = iota
	Buildup
	Action
	Recover
)

func (s Section) String() string {
	switch s {
	case None:
		return "none"
	case Buildup:
		return "buildup"
	case Action:
		return "action"
	case Recover:
		return "recover"
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// Active reports whether an ability stage is running.
func (s Section) Active() bool {
	return s == Buildup || s == Action || s == Recover
}

// ParseSection resolves a case-insensitive section name.
func ParseSection(name string) (Section, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "buildup":
		return Buildup, nil
	case "action":
		return Action, nil
	case "recover":
		return Recover, nil
	}
	return None, fmt.Errorf("phase: unknown section %q", name)
}

// Sections lists the active sections in execution order.
func Sections() []Section {
	return []Section{Buildup, Action, Recover}
}
