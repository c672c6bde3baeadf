package pose

import (
	"biped-anim/internal/phase"
	sk "biped-anim/internal/skeleton"
)

// opticBlast rears the head back and lowers the club to the side before the
// eye beam fires.
func opticBlast(next *sk.Skeleton, f *Frame) {
	move1, move2 := f.Taper(phase.SnapRelease).Tapered()
	a := f.Attr

	next.SetOrientation(sk.Head, rx(move1*0.25+move2*-0.25).Mul(rz(move1*0.25)))
	next.SetOrientation(sk.Torso, rx(move1*-0.25+move2*0.25))
	next.SetOrientation(sk.UpperTorso,
		rx(move1*-0.1+move2*0.1).Mul(rz(move1*-0.1+move2*0.1)))
	next.SetOrientation(sk.FootL, rx(move1*0.3+move2*-0.3))
	next.SetOrientation(sk.FootR, rx(move1*0.3+move2*-0.3))

	next.SetPosition(sk.Main, v3(0, -10, 3))
	next.SetOrientation(sk.Main, rx(pi/-2))
	next.SetPosition(sk.WeaponL, v3(
		-a.Hand[0]-3*move1,
		a.Hand[1]+4+8*move1,
		-15+2*move1,
	))
	next.SetOrientation(sk.WeaponL, rx(move1*0.6))
	next.SetPosition(sk.HandR, v3(
		a.Hand[0]+6*move1,
		a.Hand[1]+4,
		a.Hand[2]+6*move1,
	))
	next.SetOrientation(sk.HandR, rx(move1*1.0).Mul(ry(move1*-1.4)))

	next.SetOrientation(sk.ShoulderL, rx(move1*0.6).Mul(ry(move1*0.5)))
	next.SetOrientation(sk.ShoulderR, rx(move1*1.4).Mul(ry(move1*-0.5)))
}

// mortar hefts the hammer overhead and trembles while it lobs.
func mortar(next *sk.Skeleton, f *Frame) {
	p := f.Taper(phase.SlamCapped)
	move1, _ := p.Tapered()
	shake := f.Shake(phase.Action, 15)
	a := f.Attr
	s := f.Sway

	next.SetPosition(sk.ControlL, v3(-1, 3, 6))
	next.SetPosition(sk.ControlR, v3(-1+move1*5, 2+move1*1, 2+move1*8))
	next.SetPosition(sk.Control, v3(
		-3+move1*-5,
		-2+a.Grip[0]/1.2+move1*3+shake*1,
		8+-a.Grip[0]/2+move1*-2,
	))
	next.SetOrientation(sk.Head, rx(move1*-0.2).Mul(ry(move1*0.2)))
	next.SetOrientation(sk.Jaw, rx(0))

	next.SetOrientation(sk.ControlL, rx(pi/2).Mul(ry(-0.5)))
	next.SetOrientation(sk.ControlR,
		rx(pi/2.5+move1*0.4).Then(ry(1.0), rz(move1*1.2+shake*0.5)))
	next.SetOrientation(sk.Control, rx(-0.2+move1*-0.1).Mul(ry(-0.1+move1*0.3)))

	swayShoulders(next, f)
	next.SetOrientation(sk.ShoulderL, rx(move1*0.2+0.3+0.8*s.SpeedNorm+(s.FootRotR*-0.2)))
	next.SetOrientation(sk.ShoulderR, rx(move1*0.2+1.1+0.6*s.SpeedNorm+(s.FootRotL*-0.2)))
}
