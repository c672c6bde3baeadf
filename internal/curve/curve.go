// Package curve holds the shaping functions every pose program is built from.
//
// All functions are pure and total: fractional powers clamp their base to
// zero first, so a phase time that drifts slightly negative never yields NaN.
package curve

import (
	"math"

	"biped-anim/internal/invariant"
)

// Powf returns x^p with x clamped to >= 0.
func Powf(x, p float64) float64 {
	if x < 0 {
		x = 0
	}
	return invariant.Finite("powf", math.Pow(x, p))
}

// Powi returns x^n by repeated multiplication. Integer powers are defined for
// negative bases, so no clamp is applied.
func Powi(x float64, n int) float64 {
	if n < 0 {
		return 1 / Powi(x, -n)
	}
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}

// Shake returns sin(t*freq + π), the tremble used while charging a cast.
func Shake(t, freq float64) float64 {
	return math.Sin(t*freq + math.Pi)
}

// SpeedNorm maps a ground speed onto (speed/ref)^gamma.
func SpeedNorm(speed, ref, gamma float64) float64 {
	if ref <= 0 {
		return 0
	}
	return Powf(speed/ref, gamma)
}

// Min1 caps v at 1.
func Min1(v float64) float64 {
	return math.Min(v, 1)
}

// Clamp01 clamps v into [0, 1].
func Clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
