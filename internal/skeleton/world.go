package skeleton

import "biped-anim/internal/mathutil"

// WorldMatrices composes each bone's local transform with its ancestors'.
// Returns a slice of 4×4 matrices indexed by BoneID.
func WorldMatrices(s Skeleton) []mathutil.Mat4 {
	worlds := make([]mathutil.Mat4, BoneCount)
	for _, id := range order {
		local := s.Bones[id].Matrix()

		// Chain with parent
		if p, ok := id.Parent(); ok {
			worlds[id] = mathutil.Mat4Mul(worlds[p], local)
		} else {
			worlds[id] = local
		}
	}
	return worlds
}

// Joints returns the world-space origin of every bone.
func Joints(s Skeleton) []mathutil.Vec3 {
	worlds := WorldMatrices(s)
	out := make([]mathutil.Vec3, len(worlds))
	for i, w := range worlds {
		out[i] = w.Translation()
	}
	return out
}
