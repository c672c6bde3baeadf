package pose

import (
	"biped-anim/internal/gait"
	"biped-anim/internal/invariant"
	"biped-anim/internal/mathutil"
	"biped-anim/internal/skeleton"
)

// Rate is the animation rate reported with every pose.
const Rate = 1.0

// Animator produces poses from a program table. It holds no per-call state
// and may be shared across goroutines animating different characters.
type Animator struct {
	table *Table
	gait  gait.Params
}

// NewAnimator returns an animator over table using the given gait tuning.
func NewAnimator(table *Table, params gait.Params) *Animator {
	return &Animator{table: table, gait: params}
}

// Table returns the program table the animator dispatches over.
func (a *Animator) Table() *Table {
	return a.table
}

// Update builds the next pose from prev. The baseline (gait-swayed shoulders
// and neutral jaw, main mount and hands) is applied first; while an ability
// stage is running, the program resolved for (ctx.ActiveTool, ctx.AbilityID)
// then overrides individual bones. The returned rate is always Rate.
func (a *Animator) Update(prev skeleton.Skeleton, ctx Context, animTime float64, attr skeleton.Attr) (skeleton.Skeleton, float64) {
	next := prev
	f := Frame{
		Ctx:  ctx,
		Attr: attr,
		Sway: gait.Compute(a.gait, ctx.Velocity, ctx.AccVel, attr.Tempo),
		Time: animTime,
	}

	baseline(&next, &f)

	if ctx.Stage.Active() {
		if p, ok := a.table.Resolve(ctx.ActiveTool, ctx.AbilityID); ok {
			p.Apply(&next, &f)
		}
	}

	if invariant.Enabled && !next.IsFinite() {
		panic(invariant.Violation{What: "pose", Value: next})
	}
	return next, Rate
}

// Baseline returns the pose Update produces when no program runs.
func (a *Animator) Baseline(prev skeleton.Skeleton, ctx Context, attr skeleton.Attr) skeleton.Skeleton {
	next := prev
	f := Frame{
		Ctx:  ctx,
		Attr: attr,
		Sway: gait.Compute(a.gait, ctx.Velocity, ctx.AccVel, attr.Tempo),
	}
	baseline(&next, &f)
	return next
}

func baseline(next *skeleton.Skeleton, f *Frame) {
	a := f.Attr
	gait.ApplyShoulders(next, a, f.Sway)

	next.SetPosition(skeleton.Jaw, v3(0, a.Jaw[0], a.Jaw[1]))
	next.SetOrientation(skeleton.Jaw, rx(0))

	next.SetPosition(skeleton.Main, mathutil.Vec3{})
	next.SetOrientation(skeleton.Main, rx(0))

	next.SetPosition(skeleton.HandL, v3(0, 0, a.Grip[0]))
	next.SetPosition(skeleton.HandR, v3(0, 0, a.Grip[0]))
	next.SetOrientation(skeleton.HandL, rx(0))
	next.SetOrientation(skeleton.HandR, rx(0))
}
