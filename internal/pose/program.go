package pose

import (
	"math"

	"biped-anim/internal/mathutil"
	"biped-anim/internal/skeleton"
)

// Program writes ability-specific bone overrides into next. Programs read
// only the frame and must not retain next.
type Program interface {
	Apply(next *skeleton.Skeleton, f *Frame)
}

// ProgramFunc adapts a plain function to Program.
type ProgramFunc func(next *skeleton.Skeleton, f *Frame)

func (fn ProgramFunc) Apply(next *skeleton.Skeleton, f *Frame) {
	fn(next, f)
}

// Shorthands for the arithmetic-heavy program bodies.
var (
	v3 = mathutil.V3
	rx = mathutil.RotationX
	ry = mathutil.RotationY
	rz = mathutil.RotationZ
)

const pi = math.Pi

// HideOffset is added to a mount to move it far outside any view. It hides
// an object that has left the hand without a visibility channel.
var HideOffset = mathutil.V3(0, 10000000, 0)

// hideByDisplacement pushes the given bones out of view.
func hideByDisplacement(next *skeleton.Skeleton, ids ...skeleton.BoneID) {
	for _, id := range ids {
		next.Translate(id, HideOffset)
	}
}

// swayShoulders places both shoulders on their gait-swayed anchors.
func swayShoulders(next *skeleton.Skeleton, f *Frame) {
	l, r := f.Sway.ShoulderPositions(f.Attr)
	next.SetPosition(skeleton.ShoulderL, l)
	next.SetPosition(skeleton.ShoulderR, r)
}
