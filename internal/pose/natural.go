package pose

import (
	"biped-anim/internal/mathutil"
	"biped-anim/internal/phase"
	sk "biped-anim/internal/skeleton"
)

// axeThrow swings both axes overhead and releases them. Once the throw is in
// Recover the axes are airborne projectiles, so the held copies are hidden.
func axeThrow(next *sk.Skeleton, f *Frame) {
	move1, move2 := f.Taper(phase.SnapRelease).Tapered()
	a := f.Attr

	next.SetScale(sk.Second, mathutil.Splat(1.0))
	next.SetPosition(sk.Main, v3(-12, -4, -20))
	next.SetPosition(sk.Second, v3(12, -4, -20))
	next.SetOrientation(sk.Main, rx(move1*-1.5+move2*-3.5))
	next.SetOrientation(sk.Second, rx(move1*-1.5+move2*-3.5))

	if f.Ctx.Stage == phase.Recover {
		hideByDisplacement(next, sk.Main, sk.Second)
	}

	next.SetPosition(sk.HandL, v3(-a.Hand[0], a.Hand[1]-2, a.Hand[2]+0))
	next.SetPosition(sk.HandR, v3(a.Hand[0], a.Hand[1]-2, a.Hand[2]+0))
	swing := rx(move1*3.0 + move2*-3.0)
	next.SetOrientation(sk.Control, swing)
	next.SetOrientation(sk.ShoulderL, swing)
	next.SetOrientation(sk.ShoulderR, swing)
	next.SetOrientation(sk.Head, rx(move1*0.4+move2*-0.2))
}

// frostBomb cups both hands together and lifts them to the face.
func frostBomb(next *sk.Skeleton, f *Frame) {
	move1, _ := f.Taper(phase.SnapIn).Tapered()

	next.SetPosition(sk.ControlL, v3(-9+move1*6, 19+move1*6, -13+move1*10.5))
	next.SetPosition(sk.ControlR, v3(9+move1*-6, 19+move1*6, -13+move1*14.5))

	next.SetOrientation(sk.ControlL, rx(pi/3+move1*0.5).Then(ry(-0.15), rz(move1*0.5)))
	next.SetOrientation(sk.ControlR, rx(pi/3+move1*0.5).Then(ry(0.15), rz(move1*-0.5)))
	next.SetOrientation(sk.Head, rx(move1*-0.3))
}

// coilUpperTorso bends and twists the chest for an overarm throw and returns
// the twist so the hips can counter it. The twist unwinds with Move3.
func coilUpperTorso(next *sk.Skeleton, move1, move2, move3 float64) float64 {
	twist := move1*0.8 + move3*-0.8
	next.SetOrientation(sk.UpperTorso,
		rx(move1*0.8+move2*-1.1).Mul(rz(twist*-0.2+move1*-0.1+move2*0.3)))
	return twist
}

// snowball scoops with the right arm and hurls overarm; the second mount is
// collapsed to nothing. Progress is used without pullback.
func snowball(next *sk.Skeleton, f *Frame) {
	p := f.Taper(phase.SnapIn)
	move1, move2, move3 := p.Move1, p.Move2, p.Move3
	a := f.Attr

	next.SetScale(sk.Second, mathutil.Splat(0.0))

	next.SetOrientation(sk.Head, rx(move1*0.4))
	next.SetPosition(sk.Jaw, v3(0, a.Jaw[0], a.Jaw[1]))
	next.SetOrientation(sk.Jaw, rx(move2*-0.3))
	next.SetPosition(sk.ControlL, v3(-0.5, 4, 1))
	next.SetPosition(sk.ControlR, v3(-0.5, 4, 1))
	next.SetOrientation(sk.ControlL, rx(pi/2))
	next.SetOrientation(sk.ControlR, rx(pi/2))
	next.SetPosition(sk.WeaponL, v3(-12, -1, -15))
	next.SetPosition(sk.WeaponR, v3(12, -1, -15))
	next.SetOrientation(sk.WeaponL, rx(-pi/2-0.1))
	next.SetOrientation(sk.WeaponR, rx(-pi/2-0.1))

	next.SetPosition(sk.UpperTorso, v3(0, a.UpperTorso[0], a.UpperTorso[1]))
	twist := coilUpperTorso(next, move1, move2, move3)
	next.SetOrientation(sk.LowerTorso, rx(move1*-0.8+move2*1.1).Mul(rz(twist)))

	next.SetOrientation(sk.ArmControlR,
		rx(move1*pi/2).Mul(ry(move1*-pi/2+move2*2.5)))
	next.SetPosition(sk.ArmControlR, v3(0, move1*10+move2*-10, 0))
}

// demolisherThrow is the overarm hurl of a carried boulder.
func demolisherThrow(next *sk.Skeleton, f *Frame) {
	p := f.Taper(phase.SnapIn)
	move1, move2, move3 := p.Move1, p.Move2, p.Move3
	a := f.Attr

	next.SetOrientation(sk.Head, rx(move1*0.4))
	next.SetPosition(sk.ControlL, v3(-0.5, 4, 1))
	next.SetPosition(sk.ControlR, v3(-0.5, 4, 1))
	next.SetOrientation(sk.ControlL, rx(pi/1.5))
	next.SetOrientation(sk.ControlR, rx(pi/1.5))
	next.SetPosition(sk.WeaponL, v3(-9, 5, 0))
	next.SetPosition(sk.WeaponR, v3(9, 5, 0))
	next.SetOrientation(sk.WeaponL, rx(-pi/2-0.1))
	next.SetOrientation(sk.WeaponR, rx(-pi/2-0.1))

	next.SetPosition(sk.UpperTorso, v3(0, a.UpperTorso[0], a.UpperTorso[1]))
	twist := coilUpperTorso(next, move1, move2, move3)
	next.SetOrientation(sk.LowerTorso, rx(move1*-0.8+move2*1.1).Mul(rz(twist)))

	next.SetOrientation(sk.ArmControlR,
		rx(move1*pi/2).Mul(ry(move1*-pi/3+move2*1.5)))
	next.SetPosition(sk.ArmControlR, v3(0, move1*1+move2*-1, 0))
}

// lob is a one-handed underarm-to-overarm lob; with lunge set the head
// darts forward with the release.
func lob(lunge bool) ProgramFunc {
	return func(next *sk.Skeleton, f *Frame) {
		p := f.Taper(phase.SnapIn)
		move1, move2, move3 := p.Move1, p.Move2, p.Move3
		a := f.Attr

		next.SetPosition(sk.ControlL, v3(1, 2, 8))
		next.SetPosition(sk.ControlR, v3(1, 1, -2))
		next.SetPosition(sk.Control, v3(-7, 0+a.Grip[0]/1.0, -a.Grip[0]/0.8))

		next.SetOrientation(sk.ControlL, rx(pi/2).Mul(rz(pi)))
		next.SetOrientation(sk.ControlR, rx(pi/2+0.2).Then(ry(-1.0), rz(0)))
		next.SetOrientation(sk.Control, rx(-1.4).Mul(ry(-2.8)))

		next.SetOrientation(sk.Head, rx(move1*0.2))
		if lunge {
			next.SetPosition(sk.Head, v3(
				0+move1*32-move2*32,
				a.Head[0]-move1*2+move2*2,
				a.Head[1]-move1*8+move2*8,
			))
		}
		next.SetPosition(sk.Jaw, v3(0, a.Jaw[0], a.Jaw[1]))
		next.SetOrientation(sk.Jaw, rx(move2*-0.3))

		next.SetPosition(sk.UpperTorso, v3(
			0,
			a.UpperTorso[0],
			a.UpperTorso[1]+move1*1+move2*-1,
		))
		twist := coilUpperTorso(next, move1, move2, move3)
		next.SetOrientation(sk.LowerTorso,
			rx(move1*-0.8+move2*1.1).Mul(rz(-twist+move1*0.4)))

		l, _ := f.Sway.ShoulderPositions(a)
		next.SetPosition(sk.ShoulderL, l)
		next.SetOrientation(sk.ShoulderL, rx(-0.4))
		next.SetPosition(sk.ShoulderR, v3(a.Shoulder[0]+move2*-2, a.Shoulder[1], a.Shoulder[2]))
		next.SetOrientation(sk.ShoulderR,
			ry(move1*-pi/2).Then(rx(move2*2), rz(move1*-pi/2)))

		next.SetPosition(sk.HandR, v3(
			-a.Grip[1]+move1*-2+move2*8,
			0+move1*6,
			a.Grip[0]+move1*18+move2*-19,
		))
		next.SetOrientation(sk.HandR,
			rx(move1*-3+move2*3).Then(ry(move1*0.5+move2*-1.5), rz(move1*-1.5)))

		// Only plant the lead foot when standing; walking keeps the gait.
		if f.Sway.Speed == 0 {
			next.SetOrientation(sk.LegL, rx(move1*0.8+move2*-0.8))
			next.SetPosition(sk.FootL, v3(-a.Foot[0], a.Foot[1], a.Foot[2]+move1*4+move2*-4))
			next.SetOrientation(sk.FootL, rx(move1*-0.6+move2*0.6))
		}
	}
}
