package pose

import (
	"biped-anim/internal/phase"
	sk "biped-anim/internal/skeleton"
)

// volley flings a fan of blades: both hands roll out over the wind-up and
// snap back through the release while the torso counter-twists.
func volley(next *sk.Skeleton, f *Frame) {
	move1, move2 := f.Taper(phase.SnapIn).Tapered()
	a := f.Attr

	next.SetPosition(sk.Main, v3(-10, -8, 12))
	next.SetOrientation(sk.Main, ry(2.5).Mul(rz(pi/2)))
	next.SetPosition(sk.HandL, v3(-a.Hand[0], a.Hand[1]+4, a.Hand[2]))
	next.SetPosition(sk.HandR, v3(a.Hand[0], a.Hand[1]+4, a.Hand[2]))
	next.SetOrientation(sk.HandL, rx(move1*1.5).Mul(ry(move1*-1.0+move2*1.5)))
	next.SetOrientation(sk.HandR, rx(move1*1.5).Mul(ry(move1*1.0+move2*-1.5)))
	next.SetOrientation(sk.UpperTorso,
		ry(move1*-0.1+move2*0.1).Mul(rz(move1*-0.1+move2*0.1)))
	next.SetOrientation(sk.FootL, ry(move1*0.3+move2*-0.3))
	next.SetOrientation(sk.FootR, ry(move1*0.3+move2*-0.3))
}

// raiseArms lifts both arms overhead and brings them down on release. With
// sheathe set the blade is stowed on the back first.
func raiseArms(sheathe bool) ProgramFunc {
	return func(next *sk.Skeleton, f *Frame) {
		move1, move2 := f.Taper(phase.SnapRelease).Tapered()
		a := f.Attr

		if sheathe {
			next.SetPosition(sk.Main, v3(-10, -8, 12))
			next.SetOrientation(sk.Main, ry(2.5).Mul(rz(pi/2)))
		}

		next.SetPosition(sk.HandL, v3(-a.Hand[0], a.Hand[1]+1, a.Hand[2]+5))
		next.SetPosition(sk.HandR, v3(a.Hand[0], a.Hand[1]+1, a.Hand[2]+5))

		lift := rx(move1*4.0 + move2*-0.7)
		next.SetOrientation(sk.HandL, lift)
		next.SetOrientation(sk.HandR, lift)
		next.SetOrientation(sk.ShoulderL, lift)
		next.SetOrientation(sk.ShoulderR, lift)
		next.SetOrientation(sk.Head, rx(move1*0.4+move2*-0.2))
	}
}
