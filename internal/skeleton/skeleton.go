// Package skeleton defines the large-biped rig: a fixed set of bones, each
// with a local transform, and the archetype geometry the rig is anchored to.
package skeleton

import "biped-anim/internal/mathutil"

// Skeleton is a complete pose: one Bone per BoneID. It is a value type;
// assigning it clones every bone.
type Skeleton struct {
	Bones [BoneCount]Bone
}

// New returns a skeleton with every bone at its rest value.
func New() Skeleton {
	var s Skeleton
	for i := range s.Bones {
		s.Bones[i] = RestBone()
	}
	return s
}

// Bone returns a pointer into s for in-place edits while a pose is built.
func (s *Skeleton) Bone(id BoneID) *Bone {
	return &s.Bones[id]
}

// Get returns a copy of the bone.
func (s Skeleton) Get(id BoneID) Bone {
	return s.Bones[id]
}

// IsFinite reports whether every bone transform is finite.
func (s Skeleton) IsFinite() bool {
	for _, b := range s.Bones {
		if !b.IsFinite() {
			return false
		}
	}
	return true
}

// Rest builds the neutral pose for an archetype: every bone sits on its
// anchor with identity orientation.
func Rest(a Attr) Skeleton {
	s := New()
	v := mathutil.V3

	s.Bones[Head] = At(v(0, a.Head[0], a.Head[1]))
	s.Bones[Jaw] = At(v(0, a.Jaw[0], a.Jaw[1]))
	s.Bones[UpperTorso] = At(v(0, a.UpperTorso[0], a.UpperTorso[1]))
	s.Bones[LowerTorso] = At(v(0, a.LowerTorso[0], a.LowerTorso[1]))
	s.Bones[Tail] = At(v(0, a.Tail[0], a.Tail[1]))
	s.Bones[ShoulderL] = At(v(-a.Shoulder[0], a.Shoulder[1], a.Shoulder[2]))
	s.Bones[ShoulderR] = At(v(a.Shoulder[0], a.Shoulder[1], a.Shoulder[2]))
	s.Bones[HandL] = At(v(-a.Hand[0], a.Hand[1], a.Hand[2]))
	s.Bones[HandR] = At(v(a.Hand[0], a.Hand[1], a.Hand[2]))
	s.Bones[LegL] = At(v(-a.Leg[0], a.Leg[1], a.Leg[2]))
	s.Bones[LegR] = At(v(a.Leg[0], a.Leg[1], a.Leg[2]))
	s.Bones[FootL] = At(v(-a.Foot[0], a.Foot[1], a.Foot[2]))
	s.Bones[FootR] = At(v(a.Foot[0], a.Foot[1], a.Foot[2]))
	s.Bones[Torso] = At(v(0, 0, 0))
	s.Bones[ArmControlL] = At(v(0, 0, 0))
	s.Bones[ArmControlR] = At(v(0, 0, 0))
	return s
}

// SetPosition replaces a bone's local position.
func (s *Skeleton) SetPosition(id BoneID, p mathutil.Vec3) {
	s.Bones[id].Position = p
}

// SetOrientation replaces a bone's local orientation.
func (s *Skeleton) SetOrientation(id BoneID, q mathutil.Quat) {
	s.Bones[id].Orientation = q
}

// SetScale replaces a bone's local scale.
func (s *Skeleton) SetScale(id BoneID, v mathutil.Vec3) {
	s.Bones[id].Scale = v
}

// Translate offsets a bone's current position.
func (s *Skeleton) Translate(id BoneID, d mathutil.Vec3) {
	s.Bones[id].Position = s.Bones[id].Position.Add(d)
}
