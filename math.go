package kepler

import (
	"math"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats"
)

const (
	twoπ = 2 * math.Pi
)

// norm returns the norm of a given 3x1 vector.
func norm(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// dot performs the inner product.
func dot(a, b [3]float64) float64 {
	return floats.Dot(a[:], b[:])
}

// cross performs the cross product.
func cross(a, b [3]float64) [3]float64 {
	return [3]float64{a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0]}
}

// AcosQuadrant returns the angle in [0, 2π) whose cosine is cosθ, picking the
// lower half-plane when test is negative. cosθ is clamped to [-1, 1] first since
// rounding routinely pushes a dot-product ratio just past ±1.
func AcosQuadrant(cosθ, test float64) float64 {
	cosθ = math.Max(-1, math.Min(1, cosθ))
	θ := math.Acos(cosθ)
	if test < 0 {
		return twoπ - θ
	}
	return θ
}

// quadrantAngle recovers an angle from quantities proportional to its cosine and sine
// (they must share the same positive scale factor, hyp).
// Within 30° of 0 or π the arc cosine only keeps half of the significant digits, so the
// sine drives the result there.
func quadrantAngle(cosθ, sinθ, hyp float64) float64 {
	c := cosθ / hyp
	if math.Abs(c) < math.Sqrt(3)/2 {
		return AcosQuadrant(c, sinθ)
	}
	return wrap2π(math.Atan2(sinθ, cosθ))
}

// wrap2π returns the angle in [0, 2π).
func wrap2π(a float64) float64 {
	a = math.Mod(a, twoπ)
	if a < 0 {
		a += twoπ
	}
	if a >= twoπ {
		// math.Mod of a tiny negative number plus 2π rounds up to 2π.
		a = 0
	}
	return a
}

// Deg2rad converts degrees to radians, and enforces only positive numbers.
func Deg2rad(a float64) float64 {
	return wrap2π(unit.AngleFromDeg(math.Mod(a, 360)).Rad())
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	return unit.Angle(wrap2π(a)).Deg()
}
