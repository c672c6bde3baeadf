// Package invariant holds numeric assertions for the pose path.
//
// Release builds compile the checks to no-ops. Building with the posedebug
// tag turns a violated invariant into a panic naming the offending value, so
// a non-finite bone transform is caught where it is produced instead of
// surfacing as a model that flies apart on screen.
package invariant

import (
	"fmt"
	"math"
)

// Violation is the panic value raised by a failed check in debug builds.
type Violation struct {
	What  string
	Value any
}

func (v Violation) Error() string {
	return fmt.Sprintf("invariant: %s is not finite: %v", v.What, v.Value)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
