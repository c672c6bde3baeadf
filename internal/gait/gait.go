// Package gait computes the locomotion-driven baseline sway that every pose
// starts from: a foot phase and a counter-rotation per side, derived from the
// horizontal ground speed and the caller's accumulated-velocity phase.
package gait

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"biped-anim/internal/curve"
	"biped-anim/internal/invariant"
	"biped-anim/internal/mathutil"
	"biped-anim/internal/skeleton"
)

// Params are the tunables of the sway model.
type Params struct {
	// ReferenceSpeed is the ground speed that maps to a speed norm of 1.
	ReferenceSpeed float64
	// Gamma shapes the speed norm curve.
	Gamma float64
	// Cadence multiplies the archetype tempo into the phase rate.
	Cadence float64
}

// DefaultParams returns the tuning used by the large-biped ranged programs.
func DefaultParams() Params {
	return Params{ReferenceSpeed: 12, Gamma: 0.4, Cadence: 0.65}
}

// Sway is the per-frame gait state consumed by pose programs.
type Sway struct {
	Speed     float64
	SpeedNorm float64
	FootHorL  float64
	FootHorR  float64
	FootRotL  float64
	FootRotR  float64
}

// Phase offsets, in multiples of π.
const (
	footOffsetL = 1.45
	footOffsetR = 0.45
	rotOffsetL  = 1.4
	rotOffsetR  = 0.4
)

// Compute derives the sway from the horizontal part of velocity. It holds no
// state: identical inputs give bit-identical output.
func Compute(p Params, velocity mathutil.Vec3, accVel, tempo float64) Sway {
	speed := r3.Norm(r3.Vec{X: velocity[0], Y: velocity[1]})
	sn := curve.SpeedNorm(speed, p.ReferenceSpeed, p.Gamma)
	lab := p.Cadence * tempo
	base := accVel * lab

	s := Sway{
		Speed:     speed,
		SpeedNorm: sn,
		FootHorL:  math.Sin(base+math.Pi*footOffsetL) * sn,
		FootHorR:  math.Sin(base+math.Pi*footOffsetR) * sn,
		FootRotL:  counterRotation(base+math.Pi*rotOffsetL) * sn,
		FootRotR:  counterRotation(base+math.Pi*rotOffsetR) * sn,
	}
	invariant.FiniteAll("gait sway", s.SpeedNorm, s.FootHorL, s.FootHorR, s.FootRotL, s.FootRotR)
	return s
}

// counterRotation is sin(θ) normalised so the amplitude flattens near the
// peaks: sqrt(1/(0.5+0.5·sin²θ))·sinθ.
func counterRotation(theta float64) float64 {
	s := math.Sin(theta)
	return math.Sqrt(1/(0.5+0.5*curve.Powi(s, 2))) * s
}

// ShoulderPositions returns the swayed shoulder anchors. Each side bobs by
// the opposite foot's horizontal phase.
func (s Sway) ShoulderPositions(a skeleton.Attr) (left, right mathutil.Vec3) {
	left = mathutil.V3(-a.Shoulder[0], a.Shoulder[1], a.Shoulder[2]-s.FootHorR*1.0)
	right = mathutil.V3(a.Shoulder[0], a.Shoulder[1], a.Shoulder[2]-s.FootHorL*1.0)
	return left, right
}

// ApplyShoulders writes the baseline shoulder sway into next.
func ApplyShoulders(next *skeleton.Skeleton, a skeleton.Attr, s Sway) {
	l, r := s.ShoulderPositions(a)
	sn := s.SpeedNorm

	next.Bone(skeleton.ShoulderL).Position = l
	next.Bone(skeleton.ShoulderL).Orientation =
		mathutil.RotationX(0.8 + 1.2*sn + (s.FootRotR*-0.2)*sn)

	next.Bone(skeleton.ShoulderR).Position = r
	next.Bone(skeleton.ShoulderR).Orientation =
		mathutil.RotationX(0.8 + 1.2*sn + (s.FootRotL*-0.2)*sn)
}
