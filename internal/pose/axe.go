package pose

import (
	"biped-anim/internal/phase"
	sk "biped-anim/internal/skeleton"
)

// axeSpin winds the axe back across the body and spins the head of it
// before the throw.
func axeSpin(next *sk.Skeleton, f *Frame) {
	move1, move2 := f.Taper(phase.SnapInLinearRecover).Tapered()
	a := f.Attr

	next.SetOrientation(sk.ShoulderR, ry(move1*-0.5).Mul(rx(move1*-0.5)))
	next.SetOrientation(sk.Head, rx(0).Then(ry(move1*0.3), rz(move1*-0.2+move2*0.5)))

	next.SetPosition(sk.Main, v3(0, 0, 0))
	next.SetOrientation(sk.Main, rz(move1*5.0))

	next.SetPosition(sk.HandL, v3(a.Grip[1], 0, a.Grip[0]))
	next.SetPosition(sk.HandR, v3(-a.Grip[1], 0, a.Grip[0]))
	next.SetOrientation(sk.HandL, rx(0))
	next.SetOrientation(sk.HandR, rx(0))

	next.SetPosition(sk.ControlL, v3(-1, 2, 12))
	next.SetPosition(sk.ControlR, v3(1+move1*40, 2, -2+move1*10))
	next.SetPosition(sk.Control, v3(
		4+move1*-25,
		0+a.Grip[0]/1.0+move1*-6,
		-a.Grip[0]/0.8+move1*10,
	))

	next.SetOrientation(sk.ControlL, rx(pi/2+move1*0.3))
	next.SetOrientation(sk.ControlR, rx(pi/2+0.2+move1*1.0))
	next.SetOrientation(sk.Control, rx(-1.0).Mul(ry(-1.8+move1*2.0)))
	next.SetOrientation(sk.UpperTorso, ry(move1*0.3))
	next.SetOrientation(sk.LowerTorso, ry(move1*-0.3))
	next.SetPosition(sk.Torso, v3(move1, 0, 0))
}
