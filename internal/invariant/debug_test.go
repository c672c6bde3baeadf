//go:build posedebug

package invariant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinitePanicsInDebugBuilds(t *testing.T) {
	assert.True(t, Enabled)
	assert.Equal(t, 1.5, Finite("x", 1.5))
	assert.PanicsWithValue(t, Violation{What: "x", Value: math.Inf(1)}, func() {
		Finite("x", math.Inf(1))
	})
	assert.Panics(t, func() { FiniteAll("v", 0, math.NaN()) })
}
