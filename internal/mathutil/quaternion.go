package mathutil

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quat represents a quaternion (x, y, z, w).
type Quat [4]float64

// QuatIdentity is the rest orientation.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// RotationX returns the rotation of angle radians about the X axis.
func RotationX(angle float64) Quat {
	s, c := math.Sincos(angle * 0.5)
	return Quat{s, 0, 0, c}
}

// RotationY returns the rotation of angle radians about the Y axis.
func RotationY(angle float64) Quat {
	s, c := math.Sincos(angle * 0.5)
	return Quat{0, s, 0, c}
}

// RotationZ returns the rotation of angle radians about the Z axis.
func RotationZ(angle float64) Quat {
	s, c := math.Sincos(angle * 0.5)
	return Quat{0, 0, s, c}
}

// Mul returns the Hamilton product q × r (r is applied first).
func (q Quat) Mul(r Quat) Quat {
	return fromNumber(quat.Mul(q.number(), r.number()))
}

// Then chains further rotations: q.Then(a, b) == q × a × b.
func (q Quat) Then(rs ...Quat) Quat {
	out := q
	for _, r := range rs {
		out = out.Mul(r)
	}
	return out
}

// IsFinite reports whether no component is NaN or ±Inf.
func (q Quat) IsFinite() bool {
	for _, c := range q {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (q Quat) number() quat.Number {
	return quat.Number{Real: q[3], Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

func fromNumber(n quat.Number) Quat {
	return Quat{n.Imag, n.Jmag, n.Kmag, n.Real}
}

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix.
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}
