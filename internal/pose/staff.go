package pose

import (
	"biped-anim/internal/phase"
	sk "biped-anim/internal/skeleton"
)

// cast holds a sceptre or staff out in front, trembling while the spell
// charges. It is the default for both tool kinds.
func cast(next *sk.Skeleton, f *Frame) {
	move1, move2 := f.Taper(phase.SnapRelease).Tapered()
	shake := f.Shake(phase.Buildup, 10)
	castWith(next, f, move1, move2, shake)
}

func castWith(next *sk.Skeleton, f *Frame, move1, move2, shake float64) {
	a := f.Attr
	s := f.Sway

	next.SetPosition(sk.ControlL, v3(-1, 3, 12))
	next.SetPosition(sk.ControlR, v3(1, 2, 2))
	next.SetPosition(sk.Control, v3(
		-3,
		3+a.Grip[0]/1.2+move1*4+move2+shake*2+move2*-2,
		-11+-a.Grip[0]/2+move1*3,
	))
	next.SetOrientation(sk.Head, rx(move1*-0.15).Then(ry(move1*0.25), rz(move1*0.25)))
	next.SetOrientation(sk.Jaw, rx(move1*-0.5))

	next.SetOrientation(sk.ControlL, rx(pi/2+move1*0.5).Mul(ry(move1*-0.4)))
	next.SetOrientation(sk.ControlR, rx(pi/2.5+move1*0.5).Then(ry(0.5), rz(0)))
	next.SetOrientation(sk.Control,
		rx(-0.2+move1*-0.2+shake*0.1).Mul(ry(-0.1+move1*0.8+move2*-0.3)))

	swayShoulders(next, f)
	next.SetOrientation(sk.ShoulderL,
		rx(move1*0.8+0.8*s.SpeedNorm+(s.FootRotR*-0.2)*s.SpeedNorm))
	next.SetOrientation(sk.ShoulderR,
		rx(move1*0.8+0.6*s.SpeedNorm+(s.FootRotL*-0.2)))
}

// necroticSphere casts while the upper body spins a full turn and rises,
// then unwinds on release.
func necroticSphere(next *sk.Skeleton, f *Frame) {
	move1, move2 := f.Taper(phase.SnapRelease).Tapered()
	shake := f.Shake(phase.Buildup, 10)
	castWith(next, f, move1, move2, shake)

	rotate := move1*2*pi + move2*2*pi
	rise := move1*20 - move2*20
	next.SetOrientation(sk.UpperTorso, rz(rotate))
	next.SetPosition(sk.UpperTorso, v3(0, 0, f.Attr.UpperTorso[1]+rise))
}
