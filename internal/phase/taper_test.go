package phase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaperSections(t *testing.T) {
	c := SnapIn

	p := c.Taper(Buildup, 0.5)
	assert.Equal(t, Progress{Move1: math.Pow(0.5, 0.25), Pullback: 1}, p)

	p = c.Taper(Action, 0.3)
	assert.Equal(t, Progress{Move1: 1, Move2: 0.3, Pullback: 1}, p)

	p = c.Taper(Recover, 0.5)
	assert.Equal(t, Progress{Move1: 1, Move2: 1, Move3: 0.0625, Pullback: 0.9375}, p)

	p = c.Taper(None, 0.7)
	assert.Equal(t, Progress{Pullback: 1}, p)
	m1, m2 := p.Tapered()
	assert.Zero(t, m1)
	assert.Zero(t, m2)
}

func TestTaperFullRecoverCollapses(t *testing.T) {
	for _, c := range []Curve{SnapIn, SnapRelease, SnapInLinearRecover, SlamCapped} {
		p := c.Taper(Recover, 1)
		assert.Equal(t, 0.0, p.Pullback)
		m1, m2 := p.Tapered()
		assert.Equal(t, 0.0, m1)
		assert.Equal(t, 0.0, m2)
	}
}

func TestPullbackNonIncreasing(t *testing.T) {
	for _, c := range []Curve{SnapIn, SnapRelease} {
		prev := math.Inf(1)
		for i := 0; i <= 20; i++ {
			p := c.Taper(Recover, float64(i)/20)
			assert.LessOrEqual(t, p.Pullback, prev)
			prev = p.Pullback
		}
	}
}

func TestTaperToleratesOutOfRangeTime(t *testing.T) {
	for _, tm := range []float64{-0.01, -1, 1.01} {
		for _, s := range Sections() {
			p := SlamCapped.Taper(s, tm)
			assert.False(t, math.IsNaN(p.Move1) || math.IsNaN(p.Move2) || math.IsNaN(p.Move3))
		}
	}
	assert.Equal(t, 1.0, SlamCapped.Taper(Buildup, 1.5).Move1)
	assert.Equal(t, 0.0, Root4(-0.2))
}

func TestShakeDuring(t *testing.T) {
	assert.Equal(t, 0.0, ShakeDuring(None, 0.5, Buildup, 10))
	assert.Equal(t, math.Sin(0.5*10+math.Pi), ShakeDuring(Buildup, 0.5, Buildup, 10))
	assert.Equal(t, 1.0, ShakeDuring(Action, 0.5, Buildup, 10))
	assert.Equal(t, 1.0, ShakeDuring(Recover, 0.5, Buildup, 10))

	assert.Equal(t, 0.0, ShakeDuring(Buildup, 0.5, Action, 15))
	assert.Equal(t, math.Sin(0.2*15+math.Pi), ShakeDuring(Action, 0.2, Action, 15))
	assert.Equal(t, 1.0, ShakeDuring(Recover, 0.2, Action, 15))
}

func TestParseSection(t *testing.T) {
	for _, s := range append(Sections(), None) {
		got, err := ParseSection(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseSection("cooldown")
	assert.EqualError(t, err, `phase: unknown section "cooldown"`)
	assert.Equal(t, "Section(9)", Section(9).String())
	assert.False(t, None.Active())
}
