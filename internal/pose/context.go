// Package pose computes the per-frame skeleton pose of a large biped using an
// ability. A Table maps (tool kind, ability identifier) pairs to pose
// programs; the Animator layers the resolved program over the gait baseline.
package pose

import (
	"biped-anim/internal/gait"
	"biped-anim/internal/mathutil"
	"biped-anim/internal/phase"
	"biped-anim/internal/skeleton"
	"biped-anim/internal/tool"
)

// Context is the per-frame dependency bundle handed in by the caller.
type Context struct {
	// ActiveTool is tool.None when unarmed.
	ActiveTool tool.Kind
	SecondTool tool.Kind
	// AbilitySpec is an opaque specializer; programs do not inspect it.
	AbilitySpec any

	Velocity        mathutil.Vec3
	Orientation     mathutil.Vec3
	LastOrientation mathutil.Vec3
	GlobalTime      float64

	// Stage is phase.None when no ability is running.
	Stage phase.Section
	// AccVel is the caller's accumulated-velocity phase.
	AccVel float64
	// AbilityID is empty when the ability has no identifier.
	AbilityID string
}

// Frame is everything a program reads while building one pose.
type Frame struct {
	Ctx  Context
	Attr skeleton.Attr
	Sway gait.Sway
	// Time is the elapsed time within the current stage section.
	Time float64
}

// Taper evaluates a program's curve for this frame.
func (f *Frame) Taper(c phase.Curve) phase.Progress {
	return c.Taper(f.Ctx.Stage, f.Time)
}

// Shake evaluates a charge tremble that runs during one section.
func (f *Frame) Shake(during phase.Section, freq float64) float64 {
	return phase.ShakeDuring(f.Ctx.Stage, f.Time, during, freq)
}
