package pose

import (
	"biped-anim/internal/phase"
	sk "biped-anim/internal/skeleton"
)

// bowDraw is the shared draw-and-loose motion; the fields tune the grip
// spread, how high the bow is raised relative to body height, and the
// final bow attitude.
type bowDraw struct {
	gripL   float64
	gripR   float64
	raise   float64
	bowYaw  float64
	bowRoll float64
}

var (
	drawDefault   = bowDraw{gripL: -1, gripR: 0, raise: 3.4, bowYaw: 1.0, bowRoll: -0.1}
	drawMultishot = bowDraw{gripL: -5, gripR: 4, raise: 1.5, bowYaw: 2.0, bowRoll: 0.1}
)

func (d bowDraw) Apply(next *sk.Skeleton, f *Frame) {
	move1, move2 := f.Taper(phase.SnapIn).Tapered()
	a := f.Attr
	s := f.Sway

	next.SetPosition(sk.ControlL, v3(d.gripL, -2+move2*-7, -3))
	next.SetPosition(sk.ControlR, v3(d.gripR, 4, 1))
	next.SetPosition(sk.Control, v3(
		-1+move1*2,
		6+a.Grip[0]/1.2+move1*7,
		-5+-a.Grip[0]/2+move1*a.Height*d.raise,
	))

	next.SetOrientation(sk.ControlL, rx(move1*0.2+pi/2+move2*0.4).Mul(ry(-0.2)))
	next.SetOrientation(sk.ControlR, rx(pi/2.2+move1*0.4).Then(ry(0.4), rz(0)))
	next.SetOrientation(sk.Control, rx(-0.2).Then(ry(d.bowYaw+move1*-0.4), rz(d.bowRoll)))
	next.SetOrientation(sk.Head, rz(move1*0.25))

	swayShoulders(next, f)
	next.SetOrientation(sk.ShoulderL, rx(move1*1.2+1.2*s.SpeedNorm+(s.FootRotR*-0.2)))
	next.SetOrientation(sk.ShoulderR, rx(move1*0.8+1.2*s.SpeedNorm+(s.FootRotL*-0.2)))
}
