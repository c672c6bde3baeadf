package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"biped-anim/internal/archetype"
	"biped-anim/internal/mathutil"
	"biped-anim/internal/pose"
	sk "biped-anim/internal/skeleton"
	"biped-anim/internal/tool"
)

// frameFlags select one program and the character performing it.
type frameFlags struct {
	tool     string
	ability  string
	species  string
	velocity string
	accVel   float64
}

func (f *frameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.tool, "tool", "", "Active tool kind, e.g. bow (required)")
	cmd.Flags().StringVar(&f.ability, "ability", "", "Ability identifier (default: the tool's default program)")
	cmd.Flags().StringVar(&f.species, "species", "", "Archetype species (default: the ability's owner, else harvester)")
	cmd.Flags().StringVar(&f.velocity, "velocity", "0,0,0", "Character velocity as x,y,z")
	cmd.Flags().Float64Var(&f.accVel, "acc-vel", 0, "Accumulated-velocity gait phase")
	_ = cmd.MarkFlagRequired("tool")
}

// resolve turns the flags into a context template and the archetype.
func (f *frameFlags) resolve() (pose.Context, string, sk.Attr, error) {
	kind, err := tool.Parse(f.tool)
	if err != nil {
		return pose.Context{}, "", sk.Attr{}, err
	}
	vel, err := parseVec3(f.velocity)
	if err != nil {
		return pose.Context{}, "", sk.Attr{}, err
	}

	species := f.species
	if species == "" {
		var ok bool
		if species, ok = archetype.Owner(f.ability); !ok {
			species = archetype.Harvester
		}
	}
	attr, err := archetypes.Lookup(species)
	if err != nil {
		return pose.Context{}, "", sk.Attr{}, err
	}

	ctx := pose.Context{
		ActiveTool: kind,
		AbilityID:  f.ability,
		Velocity:   vel,
		AccVel:     f.accVel,
	}
	return ctx, species, attr, nil
}

func parseVec3(s string) (mathutil.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mathutil.Vec3{}, fmt.Errorf("vector %q: want x,y,z", s)
	}
	var v mathutil.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("vector %q: %w", s, err)
		}
		v[i] = f
	}
	return v, nil
}

// sampleTimes spreads n phase samples over [0, 1].
func sampleTimes(n int) []float64 {
	if n <= 1 {
		return []float64{0}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}
