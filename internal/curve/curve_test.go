package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowfClampsNegativeBase(t *testing.T) {
	for _, x := range []float64{-1e-9, -0.5, -10} {
		for _, p := range []float64{0.1, 0.25, 0.4} {
			got := Powf(x, p)
			assert.False(t, math.IsNaN(got), "Powf(%v, %v)", x, p)
			assert.Equal(t, 0.0, got)
		}
	}
	assert.InDelta(t, math.Sqrt(math.Sqrt(0.5)), Powf(0.5, 0.25), 1e-15)
	assert.Equal(t, 1.0, Powf(1, 0.25))
}

func TestPowfIsOrderPreserving(t *testing.T) {
	prev := Powf(0, 0.25)
	for x := 0.05; x <= 1.2; x += 0.05 {
		v := Powf(x, 0.25)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestPowi(t *testing.T) {
	assert.Equal(t, 0.0625, Powi(0.5, 4))
	assert.Equal(t, 0.0625, Powi(-0.5, 4))
	assert.Equal(t, 1.0, Powi(3, 0))
	assert.Equal(t, 0.25, Powi(2, -2))
}

func TestShake(t *testing.T) {
	assert.Equal(t, math.Sin(0.5*10+math.Pi), Shake(0.5, 10))
	assert.InDelta(t, 0, Shake(0, 15), 1e-15)
}

func TestSpeedNorm(t *testing.T) {
	assert.Equal(t, 0.0, SpeedNorm(0, 12, 0.4))
	assert.Equal(t, 1.0, SpeedNorm(12, 12, 0.4))
	assert.InDelta(t, math.Pow(0.5, 0.4), SpeedNorm(6, 12, 0.4), 1e-15)
	assert.Equal(t, 0.0, SpeedNorm(5, 0, 0.4))
}

func TestClampHelpers(t *testing.T) {
	assert.Equal(t, 1.0, Min1(1.3))
	assert.Equal(t, 0.7, Min1(0.7))
	assert.Equal(t, 0.0, Clamp01(-2))
	assert.Equal(t, 1.0, Clamp01(2))
	assert.Equal(t, 0.3, Clamp01(0.3))
}
