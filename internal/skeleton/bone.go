package skeleton

import "biped-anim/internal/mathutil"

// Bone is one local transform of the rig: offset from the parent anchor,
// orientation as a composed quaternion and a (rarely used) non-uniform scale.
type Bone struct {
	Position    mathutil.Vec3
	Orientation mathutil.Quat
	Scale       mathutil.Vec3
}

// RestBone is the implicit value of a bone no program has touched.
func RestBone() Bone {
	return Bone{
		Orientation: mathutil.QuatIdentity(),
		Scale:       mathutil.Splat(1),
	}
}

// At returns a rest bone placed at pos.
func At(pos mathutil.Vec3) Bone {
	b := RestBone()
	b.Position = pos
	return b
}

// Matrix returns the bone-local affine transform.
func (b Bone) Matrix() mathutil.Mat4 {
	return mathutil.FromTRS(b.Position, b.Orientation, b.Scale)
}

// IsFinite reports whether every component of the transform is finite.
func (b Bone) IsFinite() bool {
	return b.Position.IsFinite() && b.Orientation.IsFinite() && b.Scale.IsFinite()
}
