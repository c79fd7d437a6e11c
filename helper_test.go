package kepler

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// vectorsEqual returns whether both vectors are equal within the relative tolerance rel,
// or absolutely for the components near zero.
func vectorsEqual(a, b [3]float64, rel float64) bool {
	for i := range a {
		if !scalar.EqualWithinAbsOrRel(a[i], b[i], rel, rel) {
			return false
		}
	}
	return true
}

func assertAngle(t *testing.T, name string, got, exp, ε float64) {
	t.Helper()
	if ok, err := anglesEqual(got, exp, ε); !ok {
		t.Fatalf("%s: got %f°, expected %f° (%s)", name, Rad2deg(got), Rad2deg(exp), err)
	}
}
