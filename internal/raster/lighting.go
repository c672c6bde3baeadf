package raster

import (
	"math"

	"biped-anim/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters for bone strokes.
// A stroke is lit like a thin cylinder: brightest when it runs across the
// light, darkest when it points into it.
type LightConfig struct {
	LightDir mathutil.Vec3
	Ambient  float64
	Direct   float64
	DepthCue float64 // darkening applied to the farthest stroke
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns the standard preview lighting.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		LightDir: mathutil.Vec3{180, 260, 140}.Normalize(),
		Ambient:  0.45,
		Direct:   0.85,
		DepthCue: 0.35,
		Exposure: 1.05,
		InvGamma: 1.0 / 2.2,
	}
}

// ComputeShade returns the lighting scalar for a stroke along dir at a
// normalized depth in [0, 1], 0 being nearest.
func (lc *LightConfig) ComputeShade(dir mathutil.Vec3, depth float64) float64 {
	along := math.Abs(dir.Normalize().Dot(lc.LightDir))
	lambert := math.Sqrt(math.Max(0, 1-along*along))
	return (lc.Ambient + lambert*lc.Direct) * (1 - depth*lc.DepthCue)
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// Shade lights an sRGB channel value in linear space and maps it back.
func (lc *LightConfig) Shade(c uint8, shade float64) uint8 {
	lin := ACESTonemap(srgbToLinear[c] * shade * lc.Exposure)
	v := math.Pow(math.Max(0, lin), lc.InvGamma) * 255
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
