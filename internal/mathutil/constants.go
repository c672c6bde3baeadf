package mathutil

import "math"

// Preview camera used by the pose rasterizer.
var (
	// ModelFlip converts the Z-up rig space to Y-up screen space: Rx(-90°)
	ModelFlip = RotX(math.Pi / -2)

	// PreviewView looks at the rig from the front-left, slightly above.
	// Rx(-15°) @ Rz(30°) before the flip so the yaw is applied in rig space.
	PreviewView = Mat3Mul(Mat3Mul(RotX(Deg2Rad(15)), ModelFlip), RotZ(Deg2Rad(30)))
)
