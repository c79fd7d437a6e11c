package kepler

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	eccentricityε = 5e-5                         // used by Equals only
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
	distanceε     = 2e4                          // 20 km
)

// State is an inertial position (m) and velocity (m/s) centered on the gravitating body.
type State struct {
	R, V [3]float64
}

// RNorm returns the norm of the position vector.
func (s State) RNorm() float64 {
	return norm(s.R)
}

// VNorm returns the norm of the velocity vector.
func (s State) VNorm() float64 {
	return norm(s.V)
}

// H returns the specific angular momentum vector.
func (s State) H() [3]float64 {
	return cross(s.R, s.V)
}

// Energyξ returns the specific mechanical energy ξ.
func (s State) Energyξ(μ float64) float64 {
	v := s.VNorm()
	return v*v/2 - μ/s.RNorm()
}

func (s State) String() string {
	return fmt.Sprintf("R=[%.3f %.3f %.3f] V=[%.6f %.6f %.6f]", s.R[0], s.R[1], s.R[2], s.V[0], s.V[1], s.V[2])
}

// Elements is a classical orbital element set. Angles are in radians.
// Which angles RAAN, ArgPeri and Nu actually hold depends on Class.Convention().
type Elements struct {
	A       float64 // semi-major axis (m), negative for hyperbolas, NaN for parabolas
	E       float64 // eccentricity
	I       float64 // inclination in [0, π]
	RAAN    float64 // right ascension of the ascending node Ω
	ArgPeri float64 // argument of periapsis ω
	Nu      float64 // true anomaly ν
	P       float64 // semi-latus rectum (m)
	Class   OrbitClass
	// folded is set once the angles follow Class.Convention() rather than the classical slots.
	folded bool
}

// NewElements returns the element set a (m), e, i, Ω, ω, ν (radians) as given, classified with tol.
// Parabolic element sets have no semi-major axis: build them with P set instead.
func NewElements(a, e, i, Ω, ω, ν float64, tol Tolerances) Elements {
	return Elements{
		A:       a,
		E:       e,
		I:       i,
		RAAN:    Ω,
		ArgPeri: ω,
		Nu:      ν,
		P:       a * (1 - e*e),
		Class:   Classify(e, i, tol),
	}
}

// SemiParameter returns the semi-latus rectum.
func (o Elements) SemiParameter() float64 {
	if o.P > 0 {
		return o.P
	}
	return o.A * (1 - o.E*o.E)
}

// Periapsis returns the periapsis radius.
func (o Elements) Periapsis() float64 {
	return o.SemiParameter() / (1 + o.E)
}

// Apoapsis returns the apoapsis radius, or +Inf for open orbits.
func (o Elements) Apoapsis() float64 {
	if o.E >= 1 {
		return math.Inf(1)
	}
	return o.A * (1 + o.E)
}

// Energyξ returns the specific mechanical energy ξ.
func (o Elements) Energyξ(μ float64) float64 {
	if math.IsNaN(o.A) {
		return 0
	}
	return -μ / (2 * o.A)
}

// Period returns the period of a closed orbit, or zero for open ones.
func (o Elements) Period(μ float64) time.Duration {
	if o.E >= 1 || !(o.A > 0) {
		return 0
	}
	seconds := 2 * math.Pi * math.Sqrt(math.Pow(o.A, 3)/μ)
	return time.Duration(seconds * float64(time.Second))
}

// motionSign is -1 for retrograde equatorial orbits: longitudes are measured counterclockwise
// about the inertial pole while the spacecraft moves clockwise.
func (o Elements) motionSign() float64 {
	if o.Class.Retrograde {
		return -1
	}
	return 1
}

// LongitudeOfPeriapsis returns ϖ = Ω + ω (Ω − ω for retrograde equatorial orbits).
func (o Elements) LongitudeOfPeriapsis() float64 {
	return wrap2π(o.RAAN + o.motionSign()*o.ArgPeri)
}

// ArgLatitude returns the argument of latitude u = ω + ν.
func (o Elements) ArgLatitude() float64 {
	return wrap2π(o.ArgPeri + o.Nu)
}

// TrueLongitude returns λ = Ω + ω + ν (Ω − ω − ν for retrograde equatorial orbits), which is
// exact for equatorial orbits only (cf. Vallado page 103).
func (o Elements) TrueLongitude() float64 {
	return wrap2π(o.RAAN + o.motionSign()*(o.ArgPeri+o.Nu))
}

// Canonical returns the element set rewritten with the convention of its class, as
// VectorToClassical reports it: the undefined angles are folded into the defined ones.
// Canonical element sets are returned unchanged.
func (o Elements) Canonical() Elements {
	if o.folded {
		return o
	}
	o.folded = true
	switch o.Class.Convention() {
	case TrueLongitude:
		o.Nu = o.TrueLongitude()
		o.E, o.RAAN, o.ArgPeri = 0, 0, 0
	case ArgumentOfLatitude:
		o.Nu = o.ArgLatitude()
		o.E, o.ArgPeri = 0, 0
	case LongitudeOfPeriapsis:
		o.ArgPeri = o.LongitudeOfPeriapsis()
		o.RAAN = 0
	}
	return o
}

// ToState returns the state vector of these elements around a body of gravitational parameter μ.
// Both raw classical element sets (NewElements) and canonical ones (Canonical, VectorToClassical)
// are accepted.
func (o Elements) ToState(μ float64) (State, error) {
	ω, ν := o.ArgPeri, o.Nu
	if o.folded && o.Class.Retrograde {
		// With Ω = 0 the perifocal frame is flipped about the X axis, so a longitude maps to minus
		// the angle it replaces.
		switch o.Class.Convention() {
		case LongitudeOfPeriapsis:
			ω = -ω
		case TrueLongitude:
			ν = -ν
		}
	}
	return SemiLatusRectumToVector(o.SemiParameter(), o.E, o.I, o.RAAN, ω, ν, μ)
}

// String implements the stringer interface (hence the value receiver)
func (o Elements) String() string {
	switch o.Class.Convention() {
	case TrueLongitude:
		return fmt.Sprintf("a=%.1f e=%.4f i=%.3f λ=%.3f", o.A, o.E, Rad2deg(o.I), Rad2deg(o.Nu))
	case ArgumentOfLatitude:
		return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f u=%.3f", o.A, o.E, Rad2deg(o.I), Rad2deg(o.RAAN), Rad2deg(o.Nu))
	case LongitudeOfPeriapsis:
		return fmt.Sprintf("a=%.1f e=%.4f i=%.3f ϖ=%.3f ν=%.3f", o.A, o.E, Rad2deg(o.I), Rad2deg(o.ArgPeri), Rad2deg(o.Nu))
	}
	if math.IsNaN(o.A) {
		return fmt.Sprintf("p=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f ν=%.3f", o.P, o.E, Rad2deg(o.I), Rad2deg(o.RAAN), Rad2deg(o.ArgPeri), Rad2deg(o.Nu))
	}
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f ν=%.3f", o.A, o.E, Rad2deg(o.I), Rad2deg(o.RAAN), Rad2deg(o.ArgPeri), Rad2deg(o.Nu))
}

// Equals returns whether two element sets describe the same orbit, ignoring the position on it.
// Use StrictlyEquals to also check the anomaly.
func (o Elements) Equals(o1 Elements) (bool, error) {
	if o.Class.Convention() != o1.Class.Convention() {
		return false, fmt.Errorf("different conventions: %s vs %s", o.Class.Convention(), o1.Class.Convention())
	}
	if !scalar.EqualWithinAbs(o.SemiParameter(), o1.SemiParameter(), distanceε) {
		return false, errors.New("semi-latus rectum invalid")
	}
	if !scalar.EqualWithinAbs(o.E, o1.E, eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	if !scalar.EqualWithinAbs(o.I, o1.I, angleε) {
		return false, errors.New("inclination invalid")
	}
	if ok, _ := anglesEqual(o.RAAN, o1.RAAN, angleε); !ok {
		return false, errors.New("RAAN invalid")
	}
	if ok, _ := anglesEqual(o.ArgPeri, o1.ArgPeri, angleε); !ok {
		return false, errors.New("argument of periapsis invalid")
	}
	return true, nil
}

// StrictlyEquals returns whether two element sets are identical, anomaly included.
func (o Elements) StrictlyEquals(o1 Elements) (bool, error) {
	if ok, _ := anglesEqual(o.Nu, o1.Nu, angleε); !ok {
		return false, errors.New("anomaly invalid")
	}
	return o.Equals(o1)
}

// anglesEqual returns whether two angles in radians are equal modulo 2π.
func anglesEqual(a, b, ε float64) (bool, error) {
	diff := math.Abs(wrap2π(a) - wrap2π(b))
	if diff < ε || math.Abs(diff-2*math.Pi) < ε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10fπ", diff/math.Pi)
}

// ClassicalToVector returns the inertial state of the classical elements a (m), e, i, Ω, ω, ν (radians)
// around a body of gravitational parameter μ (m^3/s^2). Parabolic orbits have no semi-major axis and
// must go through SemiLatusRectumToVector.
func ClassicalToVector(a, e, i, Ω, ω, ν, μ float64) (State, error) {
	if e < 0 {
		return State{}, invalidf("negative eccentricity e=%g", e)
	}
	if e == 1 {
		return State{}, invalidf("parabolic orbit has no semi-major axis, use the semi-latus rectum")
	}
	if e < 1 && a <= 0 {
		return State{}, invalidf("closed orbit (e=%g) requires a > 0, got a=%g", e, a)
	}
	if e > 1 && a >= 0 {
		return State{}, invalidf("hyperbolic orbit (e=%g) requires a < 0, got a=%g", e, a)
	}
	p := a * (1 - e*e)
	if p <= 0 {
		return State{}, invalidf("semi-latus rectum p=%g from a=%g e=%g", p, a, e)
	}
	return SemiLatusRectumToVector(p, e, i, Ω, ω, ν, μ)
}

// ClassicalToVectorDeg is ClassicalToVector with the angles in degrees.
func ClassicalToVectorDeg(a, e, i, Ω, ω, ν, μ float64) (State, error) {
	return ClassicalToVector(a, e, Deg2rad(i), Deg2rad(Ω), Deg2rad(ω), Deg2rad(ν), μ)
}

// ClassicalToVectorBody is ClassicalToVector around the named body (cf. GM).
func ClassicalToVectorBody(a, e, i, Ω, ω, ν float64, body string) (State, error) {
	μ, err := GM(body)
	if err != nil {
		return State{}, err
	}
	return ClassicalToVector(a, e, i, Ω, ω, ν, μ)
}

// SemiLatusRectumToVector returns the inertial state from the semi-latus rectum p (m) instead of
// the semi-major axis, which is valid for every conic including parabolas.
// From Vallado's COE2RV.
func SemiLatusRectumToVector(p, e, i, Ω, ω, ν, μ float64) (State, error) {
	if !(μ > 0) {
		return State{}, invalidf("gravitational parameter μ=%g", μ)
	}
	if e < 0 {
		return State{}, invalidf("negative eccentricity e=%g", e)
	}
	if !(p > 0) {
		return State{}, invalidf("semi-latus rectum p=%g", p)
	}
	sinν, cosν := math.Sincos(ν)
	denom := 1 + e*cosν
	if denom <= 0 {
		return State{}, invalidf("true anomaly ν=%g is beyond the asymptote of an e=%g orbit", ν, e)
	}
	r := p / denom
	Rpqw := [3]float64{r * cosν, r * sinν, 0}
	rat := math.Sqrt(μ / p)
	Vpqw := [3]float64{-rat * sinν, rat * (e + cosν), 0}
	dcm := PQW2ECI(i, ω, Ω)
	return State{R: MxV33(dcm, Rpqw), V: MxV33(dcm, Vpqw)}, nil
}

// VectorToClassical returns the classical elements of an inertial state around a body of
// gravitational parameter μ, using DefaultTolerances.
func VectorToClassical(s State, μ float64) (Elements, error) {
	return VectorToClassicalTol(s, μ, DefaultTolerances)
}

// VectorToClassicalDeg is VectorToClassical with the angles of the returned elements in degrees.
// The result must not be fed back to ToState, which expects radians.
func VectorToClassicalDeg(s State, μ float64) (Elements, error) {
	o, err := VectorToClassical(s, μ)
	if o.Class.Tolerances == (Tolerances{}) {
		return o, err
	}
	o.I = unit.Angle(o.I).Deg()
	o.RAAN = Rad2deg(o.RAAN)
	o.ArgPeri = Rad2deg(o.ArgPeri)
	o.Nu = Rad2deg(o.Nu)
	return o, err
}

// VectorToClassicalTol returns the classical elements of an inertial state, classifying the
// orbit with the provided tolerances. The angles stored depend on the class:
//
//	Elliptic, Hyperbolic, Parabolic      Ω, ω, ν
//	EllipticEquatorial (and equatorial   Ω = 0, ω = longitude of periapsis ϖ, ν
//	hyperbolas and parabolas)
//	CircularInclined                     Ω, ω = 0, ν = argument of latitude u
//	CircularEquatorial                   Ω = ω = 0, ν = true longitude λ
//
// Longitudes (ϖ, λ) are measured counterclockwise about the inertial pole, retrograde orbits
// included; the anomalies (ν, u) and ω are measured in the direction of motion.
// Angles within 30° of 0 or π are recovered with atan2 rather than with AcosQuadrant, whose arc
// cosine loses half of the significant digits there.
// On the parabolic boundary the complete elements are returned along with a *ParabolicOrbitWarning;
// A is NaN and P holds the size of the orbit.
// From Vallado's RV2COE, page 113.
func VectorToClassicalTol(s State, μ float64, tol Tolerances) (Elements, error) {
	tol = tol.orDefault()
	if !(μ > 0) {
		return Elements{}, invalidf("gravitational parameter μ=%g", μ)
	}
	R, V := s.R, s.V
	r := norm(R)
	if r == 0 {
		return Elements{}, invalidf("zero position vector")
	}
	hVec := cross(R, V)
	h := norm(hVec)
	if h == 0 {
		return Elements{}, invalidf("zero angular momentum, the state is not orbiting")
	}
	// Node vector Ẑ x H.
	n := [3]float64{-hVec[1], hVec[0], 0}
	v := norm(V)
	rv := dot(R, V)
	eVec := [3]float64{}
	for i := 0; i < 3; i++ {
		eVec[i] = ((v*v-μ/r)*R[i] - rv*V[i]) / μ
	}
	e := norm(eVec)
	ξ := (v*v)/2 - μ/r
	// atan2 keeps full precision at i ≈ 0 and i ≈ π where acos(hz/h) does not.
	i := math.Atan2(math.Hypot(hVec[0], hVec[1]), hVec[2])

	class := Classify(e, i, tol)
	parabolic := class.Kind == Parabolic || math.Abs(ξ) < tol.Energy*μ/r
	o := Elements{E: e, I: i, P: h * h / μ, folded: true}
	if parabolic {
		class.Kind = Parabolic
		o.A = math.NaN()
	} else {
		o.A = -μ / (2 * ξ)
	}
	o.Class = class

	// Each angle is recovered from its cosine and the sine of the same angle, both
	// scaled by the same positive factor. Longitudes take their sine about the pole,
	// the other angles about H.
	switch class.Convention() {
	case TrueLongitude:
		o.E = 0
		o.Nu = quadrantAngle(R[0], R[1], r)
	case ArgumentOfLatitude:
		o.E = 0
		nNorm := norm(n)
		o.RAAN = quadrantAngle(n[0], n[1], nNorm)
		o.Nu = quadrantAngle(dot(n, R)*h, dot(cross(n, R), hVec), nNorm*r*h)
	case LongitudeOfPeriapsis:
		o.ArgPeri = quadrantAngle(eVec[0], eVec[1], e)
		o.Nu = quadrantAngle(dot(eVec, R)*h, dot(cross(eVec, R), hVec), e*r*h)
	default:
		nNorm := norm(n)
		o.RAAN = quadrantAngle(n[0], n[1], nNorm)
		o.ArgPeri = quadrantAngle(dot(n, eVec)*h, dot(cross(n, eVec), hVec), nNorm*e*h)
		o.Nu = quadrantAngle(dot(eVec, R)*h, dot(cross(eVec, R), hVec), e*r*h)
	}
	if parabolic {
		return o, &ParabolicOrbitWarning{P: o.P}
	}
	return o, nil
}

// Radii2ae returns the semi major axis and the eccentricity from the apoapsis and periapsis radii.
func Radii2ae(rA, rP float64) (a, e float64, err error) {
	if rA < rP {
		return 0, 0, invalidf("periapsis %g cannot be greater than apoapsis %g", rP, rA)
	}
	if rP <= 0 {
		return 0, 0, invalidf("periapsis %g must be positive", rP)
	}
	a = (rP + rA) / 2
	e = (rA - rP) / (rA + rP)
	return
}

// VisViva returns the orbital speed (m/s) at radius r (m) on an orbit of semi-major axis a (m).
// Hyperbolic orbits take a negative a.
func VisViva(r, a, μ float64) (float64, error) {
	if !(r > 0) {
		return 0, invalidf("radius r=%g", r)
	}
	if a == 0 {
		return 0, invalidf("zero semi-major axis")
	}
	radicand := 2 * μ * (1/r - 1/(2*a))
	if radicand < 0 {
		return 0, invalidf("radius r=%g is beyond the apoapsis of a=%g", r, a)
	}
	return math.Sqrt(radicand), nil
}

// CircularVelocity returns the speed on a circular orbit of radius a.
func CircularVelocity(a, μ float64) (float64, error) {
	return VisViva(a, a, μ)
}
