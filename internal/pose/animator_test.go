package pose

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"biped-anim/internal/ability"
	"biped-anim/internal/mathutil"
	"biped-anim/internal/phase"
	sk "biped-anim/internal/skeleton"
	"biped-anim/internal/tool"
)

var testAttr = sk.Attr{
	Head:       [2]float64{12, 16},
	Jaw:        [2]float64{7, -5},
	UpperTorso: [2]float64{-1, 20},
	LowerTorso: [2]float64{1, -9.5},
	Tail:       [2]float64{-11, 0},
	Shoulder:   [3]float64{6.5, 1, 3.5},
	Hand:       [3]float64{8, 1.5, -1},
	Leg:        [3]float64{5, 0, 0},
	Foot:       [3]float64{5.5, 0.5, 17},
	Grip:       [2]float64{13, 1},
	Height:     2.5,
	Tempo:      1.1,
	Scaler:     1.7,
}

type AnimatorTestSuite struct {
	suite.Suite
	animator *Animator
	prev     sk.Skeleton
}

func TestAnimatorSuite(t *testing.T) {
	suite.Run(t, new(AnimatorTestSuite))
}

func (s *AnimatorTestSuite) SetupTest() {
	a, err := NewDefaultAnimator()
	s.Require().NoError(err)
	s.animator = a
	s.prev = sk.Rest(testAttr)
}

func (s *AnimatorTestSuite) ctx(kind tool.Kind, id string, stage phase.Section) Context {
	return Context{
		ActiveTool: kind,
		AbilityID:  id,
		Stage:      stage,
		Velocity:   mathutil.V3(3, -2, 0),
		AccVel:     4.2,
	}
}

func (s *AnimatorTestSuite) update(ctx Context, t float64) sk.Skeleton {
	next, rate := s.animator.Update(s.prev, ctx, t, testAttr)
	s.Equal(1.0, rate)
	return next
}

// every registered key, every active section, a spread of phase times
func (s *AnimatorTestSuite) eachFrame(fn func(k Key, stage phase.Section, t float64)) {
	for _, k := range s.animator.Table().Keys() {
		for _, stage := range phase.Sections() {
			for _, t := range []float64{0, 0.25, 0.5, 0.999, 1} {
				fn(k, stage, t)
			}
		}
	}
}

func (s *AnimatorTestSuite) TestDeterministicAndFinite() {
	s.eachFrame(func(k Key, stage phase.Section, t float64) {
		ctx := s.ctx(k.Tool, k.Ability, stage)
		a := s.update(ctx, t)
		b := s.update(ctx, t)
		s.Empty(cmp.Diff(a, b), "%s %s t=%v", k, stage, t)
		s.True(a.IsFinite(), "%s %s t=%v", k, stage, t)
	})
}

func (s *AnimatorTestSuite) TestToleratesTimeOutsideUnitRange() {
	for _, k := range s.animator.Table().Keys() {
		for _, stage := range phase.Sections() {
			for _, t := range []float64{-0.05, -1, 1.05} {
				next := s.update(s.ctx(k.Tool, k.Ability, stage), t)
				s.True(next.IsFinite(), "%s %s t=%v", k, stage, t)
			}
		}
	}
}

func (s *AnimatorTestSuite) TestIdleEqualsBaseline() {
	for _, k := range s.animator.Table().Keys() {
		ctx := s.ctx(k.Tool, k.Ability, phase.None)
		want := s.animator.Baseline(s.prev, ctx, testAttr)
		s.Empty(cmp.Diff(want, s.update(ctx, 0.6)), k.String())
	}
}

func (s *AnimatorTestSuite) TestUnarmedAndUnmatchedKindsKeepBaseline() {
	for _, kind := range []tool.Kind{tool.None, tool.Dagger, tool.Spear, tool.Empty} {
		ctx := s.ctx(kind, ability.MinotaurAxeThrow, phase.Action)
		want := s.animator.Baseline(s.prev, ctx, testAttr)
		s.Empty(cmp.Diff(want, s.update(ctx, 0.4)), kind.String())
	}
}

func (s *AnimatorTestSuite) TestUnknownAbilityFallsBackToDefault() {
	for _, kind := range []tool.Kind{tool.Bow, tool.Staff, tool.Sceptre, tool.Axe} {
		for _, stage := range phase.Sections() {
			fallback := s.update(s.ctx(kind, "common.abilities.custom.nobody.nothing", stage), 0.35)
			def := s.update(s.ctx(kind, "", stage), 0.35)
			s.Empty(cmp.Diff(def, fallback), "%s %s", kind, stage)
		}
	}
}

func (s *AnimatorTestSuite) TestKindWithoutDefaultFallsBackToBaseline() {
	for _, kind := range []tool.Kind{tool.Sword, tool.Hammer, tool.Natural} {
		ctx := s.ctx(kind, "common.abilities.custom.nobody.nothing", phase.Buildup)
		want := s.animator.Baseline(s.prev, ctx, testAttr)
		s.Empty(cmp.Diff(want, s.update(ctx, 0.5)), kind.String())
	}
}

func (s *AnimatorTestSuite) TestRegisteredAbilityOverridesDefault() {
	multishot := s.update(s.ctx(tool.Bow, ability.TerracottaBesiegerMultishot, phase.Action), 0.5)
	def := s.update(s.ctx(tool.Bow, "", phase.Action), 0.5)
	s.NotEqual(def.Get(sk.Control), multishot.Get(sk.Control))
}

func (s *AnimatorTestSuite) TestStandingStillShouldersOnAnchors() {
	ctx := s.ctx(tool.None, "", phase.None)
	ctx.Velocity = mathutil.Vec3{}
	next := s.update(ctx, 0)

	sh := testAttr.Shoulder
	s.Equal(mathutil.V3(-sh[0], sh[1], sh[2]), next.Get(sk.ShoulderL).Position)
	s.Equal(mathutil.V3(sh[0], sh[1], sh[2]), next.Get(sk.ShoulderR).Position)
	s.Equal(mathutil.RotationX(0.8), next.Get(sk.ShoulderR).Orientation)
}

func (s *AnimatorTestSuite) TestSceptreBuildupClosedForm() {
	next := s.update(s.ctx(tool.Sceptre, "anything", phase.Buildup), 0.5)

	move1, move2 := 0.5, 0.0
	shake := math.Sin(0.5*10 + math.Pi)
	grip := testAttr.Grip[0]
	wantY := 3.0 + grip/1.2 + move1*4.0 + move2*1.0 + shake*2.0 + move2*-2.0

	pos := next.Get(sk.Control).Position
	s.InDelta(-3.0, pos[0], 1e-12)
	s.InDelta(wantY, pos[1], 1e-12)
	s.InDelta(-11.0+-grip/2+move1*3, pos[2], 1e-12)
	s.Equal(mathutil.RotationX(move1*-0.5), next.Get(sk.Jaw).Orientation)
}

func (s *AnimatorTestSuite) TestAxeFullRecoverCollapses() {
	next := s.update(s.ctx(tool.Axe, "", phase.Recover), 1.0)
	grip := testAttr.Grip

	s.Equal(mathutil.QuatIdentity(), next.Get(sk.Main).Orientation)
	s.Equal(mathutil.Vec3{}, next.Get(sk.Main).Position)
	s.Equal(mathutil.Vec3{}, next.Get(sk.Torso).Position)
	s.Equal(mathutil.V3(-1, 2, 12), next.Get(sk.ControlL).Position)
	s.Equal(mathutil.V3(1, 2, -2), next.Get(sk.ControlR).Position)
	s.Equal(mathutil.V3(4, grip[0]/1.0, -grip[0]/0.8), next.Get(sk.Control).Position)
	s.Equal(mathutil.QuatIdentity(), next.Get(sk.UpperTorso).Orientation)
}

func (s *AnimatorTestSuite) TestAxeThrowHidesMountsInRecover() {
	for _, t := range []float64{0, 0.3, 1} {
		next := s.update(s.ctx(tool.Natural, ability.MinotaurAxeThrow, phase.Recover), t)
		s.Equal(mathutil.V3(-12, -4, -20).Add(HideOffset), next.Get(sk.Main).Position)
		s.Equal(mathutil.V3(12, -4, -20).Add(HideOffset), next.Get(sk.Second).Position)
		s.Equal(mathutil.Splat(1), next.Get(sk.Second).Scale)
	}

	for _, stage := range []phase.Section{phase.Buildup, phase.Action} {
		next := s.update(s.ctx(tool.Natural, ability.MinotaurAxeThrow, stage), 0.7)
		s.Equal(mathutil.V3(-12, -4, -20), next.Get(sk.Main).Position, stage.String())
	}
}

func (s *AnimatorTestSuite) TestHideIsAppliedOncePerFrame() {
	// Feeding a hidden pose back in must not stack the offset.
	ctx := s.ctx(tool.Natural, ability.MinotaurAxeThrow, phase.Recover)
	first := s.update(ctx, 0.2)
	second, _ := s.animator.Update(first, ctx, 0.4, testAttr)
	s.Equal(first.Get(sk.Main).Position, second.Get(sk.Main).Position)
}

func (s *AnimatorTestSuite) TestKnifeRainPullbackIsMonotonic() {
	ctx := s.ctx(tool.Sword, ability.DullahanKnifeRain, phase.Recover)
	prevL, prevR := -1.0, -1.0
	for i := 0; i <= 40; i++ {
		t := float64(i) / 40
		next := s.update(ctx, t)
		// Both hands unwind toward identity, so w only grows.
		wl := next.Get(sk.HandL).Orientation[3]
		wr := next.Get(sk.HandR).Orientation[3]
		s.GreaterOrEqual(wl, prevL-1e-15, "t=%v", t)
		s.GreaterOrEqual(wr, prevR-1e-15, "t=%v", t)
		prevL, prevR = wl, wr
	}
	end := s.update(ctx, 1)
	s.Equal(mathutil.QuatIdentity(), end.Get(sk.HandL).Orientation)
}

func (s *AnimatorTestSuite) TestLobPlantsFootOnlyWhenStanding() {
	ctx := s.ctx(tool.Natural, ability.HarvesterExplodingPumpkin, phase.Buildup)
	ctx.Velocity = mathutil.Vec3{}
	standing := s.update(ctx, 0.5)
	f := testAttr.Foot
	s.InDelta(f[2]+math.Pow(0.5, 0.25)*4, standing.Get(sk.FootL).Position[2], 1e-12)

	ctx.Velocity = mathutil.V3(5, 0, 0)
	walking := s.update(ctx, 0.5)
	s.Equal(s.prev.Get(sk.FootL), walking.Get(sk.FootL))
}

func (s *AnimatorTestSuite) TestStrigoiLungesHead() {
	next := s.update(s.ctx(tool.Natural, ability.StrigoiProjectiles, phase.Buildup), 1)
	s.Equal(mathutil.V3(32, testAttr.Head[0]-2, testAttr.Head[1]-8), next.Get(sk.Head).Position)

	pumpkin := s.update(s.ctx(tool.Natural, ability.HarvesterExplodingPumpkin, phase.Buildup), 1)
	s.Equal(s.prev.Get(sk.Head).Position, pumpkin.Get(sk.Head).Position)
}

func (s *AnimatorTestSuite) TestSnowballCollapsesSecondMount() {
	next := s.update(s.ctx(tool.Natural, ability.YetiSnowball, phase.Action), 0.5)
	s.Equal(mathutil.Vec3{}, next.Get(sk.Second).Scale)
}

func (s *AnimatorTestSuite) TestPrevPoseIsNotMutated() {
	before := s.prev
	s.update(s.ctx(tool.Staff, ability.MindflayerNecroticSphere, phase.Action), 0.5)
	s.Empty(cmp.Diff(before, s.prev))
}

func (s *AnimatorTestSuite) TestConcurrentUpdatesAgree() {
	keys := s.animator.Table().Keys()
	want := make([]sk.Skeleton, len(keys))
	for i, k := range keys {
		want[i], _ = s.animator.Update(s.prev, s.ctx(k.Tool, k.Ability, phase.Action), 0.6, testAttr)
	}

	var wg sync.WaitGroup
	got := make([][]sk.Skeleton, 8)
	for w := range got {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out := make([]sk.Skeleton, len(keys))
			for i, k := range keys {
				out[i], _ = s.animator.Update(s.prev, s.ctx(k.Tool, k.Ability, phase.Action), 0.6, testAttr)
			}
			got[w] = out
		}(w)
	}
	wg.Wait()

	for _, out := range got {
		s.Empty(cmp.Diff(want, out))
	}
}
