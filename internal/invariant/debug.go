//go:build posedebug

package invariant

// Enabled reports whether checks are compiled in.
const Enabled = true

// Finite panics with a Violation if x is NaN or ±Inf, and returns x otherwise.
func Finite(what string, x float64) float64 {
	if !finite(x) {
		panic(Violation{What: what, Value: x})
	}
	return x
}

// FiniteAll checks every value in xs.
func FiniteAll(what string, xs ...float64) {
	for _, x := range xs {
		if !finite(x) {
			panic(Violation{What: what, Value: xs})
		}
	}
}
