package kepler

import (
	"fmt"
	"math"
)

// Tolerances used to decide when an orbit sits on one of the element-set singularities.
// A zero field means "use the default".
type Tolerances struct {
	Eccentricity float64 // circular if e < Eccentricity, parabolic if |e-1| < Eccentricity
	Inclination  float64 // equatorial if i < Inclination or |i-π| < Inclination (radians)
	Energy       float64 // parabolic if |ξ| < Energy*μ/r
}

// DefaultTolerances are used by VectorToClassical.
var DefaultTolerances = Tolerances{Eccentricity: 1e-11, Inclination: 1e-11, Energy: 1e-11}

func (t Tolerances) orDefault() Tolerances {
	if t.Eccentricity <= 0 {
		t.Eccentricity = DefaultTolerances.Eccentricity
	}
	if t.Inclination <= 0 {
		t.Inclination = DefaultTolerances.Inclination
	}
	if t.Energy <= 0 {
		t.Energy = DefaultTolerances.Energy
	}
	return t
}

// OrbitKind is one of the six orbit geometries.
type OrbitKind uint8

const (
	// Elliptic is a non-circular, inclined, closed orbit: all six classical elements are defined.
	Elliptic OrbitKind = iota
	// EllipticEquatorial has no ascending node.
	EllipticEquatorial
	// CircularInclined has no periapsis.
	CircularInclined
	// CircularEquatorial has neither node nor periapsis.
	CircularEquatorial
	// Parabolic has e = 1 and no semi-major axis.
	Parabolic
	// Hyperbolic has e > 1 and a < 0.
	Hyperbolic
)

func (k OrbitKind) String() string {
	switch k {
	case Elliptic:
		return "elliptic"
	case EllipticEquatorial:
		return "elliptic-equatorial"
	case CircularInclined:
		return "circular-inclined"
	case CircularEquatorial:
		return "circular-equatorial"
	case Parabolic:
		return "parabolic"
	case Hyperbolic:
		return "hyperbolic"
	default:
		return fmt.Sprintf("OrbitKind(%d)", uint8(k))
	}
}

// Convention tells which angles the Ω, ω and ν slots of an element set actually hold.
type Convention uint8

const (
	// Classical: Ω is the RAAN, ω the argument of periapsis and ν the true anomaly.
	Classical Convention = iota
	// LongitudeOfPeriapsis: no node, so Ω = 0 and ω holds the longitude of periapsis ϖ
	// measured from the inertial X axis in the direction of motion. ν is the true anomaly.
	LongitudeOfPeriapsis
	// ArgumentOfLatitude: no periapsis, so ω = 0 and ν holds the argument of latitude u
	// measured from the ascending node. Ω is the RAAN.
	ArgumentOfLatitude
	// TrueLongitude: neither node nor periapsis, so Ω = ω = 0 and ν holds the true
	// longitude λ measured from the inertial X axis in the direction of motion.
	TrueLongitude
)

func (c Convention) String() string {
	switch c {
	case Classical:
		return "classical"
	case LongitudeOfPeriapsis:
		return "longitude-of-periapsis"
	case ArgumentOfLatitude:
		return "argument-of-latitude"
	case TrueLongitude:
		return "true-longitude"
	default:
		return fmt.Sprintf("Convention(%d)", uint8(c))
	}
}

// OrbitClass is the result of Classify.
type OrbitClass struct {
	Kind OrbitKind
	// Equatorial is also set for equatorial parabolic and hyperbolic orbits, whose Kind
	// does not say so.
	Equatorial bool
	Retrograde bool // equatorial with i ≈ π
	Tolerances Tolerances
}

// Circular returns whether there is no periapsis.
func (c OrbitClass) Circular() bool {
	return c.Kind == CircularInclined || c.Kind == CircularEquatorial
}

// Convention returns which angles the element set of this class carries.
func (c OrbitClass) Convention() Convention {
	switch {
	case c.Kind == CircularEquatorial:
		return TrueLongitude
	case c.Kind == CircularInclined:
		return ArgumentOfLatitude
	case c.Equatorial:
		return LongitudeOfPeriapsis
	default:
		return Classical
	}
}

func (c OrbitClass) String() string {
	if c.Equatorial && (c.Kind == Parabolic || c.Kind == Hyperbolic) {
		return c.Kind.String() + "-equatorial"
	}
	return c.Kind.String()
}

// Classify returns the geometry of an orbit of eccentricity e and inclination i (radians).
func Classify(e, i float64, tol Tolerances) OrbitClass {
	tol = tol.orDefault()
	c := OrbitClass{Tolerances: tol}
	c.Retrograde = math.Abs(i-math.Pi) < tol.Inclination
	c.Equatorial = i < tol.Inclination || c.Retrograde
	switch {
	case math.Abs(e-1) < tol.Eccentricity:
		c.Kind = Parabolic
	case e > 1+tol.Eccentricity:
		c.Kind = Hyperbolic
	case e < tol.Eccentricity && c.Equatorial:
		c.Kind = CircularEquatorial
	case e < tol.Eccentricity:
		c.Kind = CircularInclined
	case c.Equatorial:
		c.Kind = EllipticEquatorial
	default:
		c.Kind = Elliptic
	}
	return c
}
