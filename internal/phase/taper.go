package phase

import "biped-anim/internal/curve"

// Easing maps phase-local time onto a progress value.
type Easing func(t float64) float64

// Stock easings used by the authored programs.
var (
	Linear Easing = func(t float64) float64 { return t }
	Root4  Easing = func(t float64) float64 { return curve.Powf(t, 0.25) }
	Root10 Easing = func(t float64) float64 { return curve.Powf(t, 0.1) }
	Pow4   Easing = func(t float64) float64 { return curve.Powi(t, 4) }
)

// Capped limits an easing to at most 1.
func Capped(e Easing) Easing {
	return func(t float64) float64 { return curve.Min1(e(t)) }
}

// Curve is a program's choice of easing per section.
type Curve struct {
	Buildup Easing
	Action  Easing
	Recover Easing
}

// Progress holds the per-section progress scalars of one frame.
type Progress struct {
	Move1    float64
	Move2    float64
	Move3    float64
	Pullback float64
}

// Taper evaluates the curve for the given section and phase-local time.
// Buildup yields (f1(t), 0, 0), Action (1, f2(t), 0), Recover (1, 1, f3(t)),
// and an idle section zeroes everything. Pullback is always 1 - Move3.
func (c Curve) Taper(s Section, t float64) Progress {
	var p Progress
	switch s {
	case Buildup:
		p.Move1 = c.Buildup(t)
	case Action:
		p.Move1, p.Move2 = 1, c.Action(t)
	case Recover:
		p.Move1, p.Move2, p.Move3 = 1, 1, c.Recover(t)
	}
	p.Pullback = 1 - p.Move3
	return p
}

// Tapered returns Move1 and Move2 scaled by the pullback.
func (p Progress) Tapered() (float64, float64) {
	return p.Move1 * p.Pullback, p.Move2 * p.Pullback
}

// ShakeDuring oscillates only while the given section runs: it is 0 before
// (and while idle), sin(t*freq+π) during, and settles at 1 afterwards.
func ShakeDuring(s Section, t float64, during Section, freq float64) float64 {
	switch {
	case !s.Active() || s < during:
		return 0
	case s == during:
		return curve.Shake(t, freq)
	}
	return 1
}
