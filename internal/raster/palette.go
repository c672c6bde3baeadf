package raster

import (
	"image/color"

	sk "biped-anim/internal/skeleton"
)

// Base colors per body side so mirrored limbs read apart in a still frame.
var (
	colorLeft   = color.NRGBA{R: 86, G: 140, B: 214, A: 255}
	colorRight  = color.NRGBA{R: 226, G: 138, B: 64, A: 255}
	colorCenter = color.NRGBA{R: 214, G: 206, B: 190, A: 255}
	colorMount  = color.NRGBA{R: 150, G: 156, B: 168, A: 255}
)

func boneColor(id sk.BoneID) color.NRGBA {
	switch id {
	case sk.ShoulderL, sk.HandL, sk.LegL, sk.FootL, sk.ControlL, sk.WeaponL, sk.ArmControlL:
		return colorLeft
	case sk.ShoulderR, sk.HandR, sk.LegR, sk.FootR, sk.ControlR, sk.WeaponR, sk.ArmControlR:
		return colorRight
	case sk.Main, sk.Second, sk.Control:
		return colorMount
	}
	return colorCenter
}
