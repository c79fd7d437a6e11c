package kepler

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestR1R3(t *testing.T) {
	x := math.Pi / 3.0
	s, c := math.Sincos(x)
	r1 := R1(x)
	r3 := R3(x)
	if r1.At(0, 0) != r3.At(2, 2) || r3.At(2, 2) != 1 {
		t.Fatal("expected R1.At(0, 0) = R3.At(2, 2) = 1")
	}
	if r1.At(0, 1) != r1.At(0, 2) || r1.At(1, 0) != r1.At(2, 0) || r1.At(0, 1) != 0 {
		t.Fatal("misplaced zeros in R1")
	}
	if r3.At(2, 0) != r3.At(2, 1) || r3.At(0, 2) != r3.At(1, 2) || r3.At(1, 2) != 0 {
		t.Fatal("misplaced zeros in R3")
	}
	if r1.At(1, 1) != r1.At(2, 2) || r1.At(2, 2) != c {
		t.Fatal("expected R1 cosines misplaced")
	}
	if r1.At(2, 1) != -r1.At(1, 2) || r1.At(1, 2) != s {
		t.Fatal("expected R1 sines misplaced")
	}
	if r3.At(1, 1) != r3.At(0, 0) || r3.At(0, 0) != c {
		t.Fatal("expected R3 cosines misplaced")
	}
	if r3.At(0, 1) != -r3.At(1, 0) || r3.At(0, 1) != s {
		t.Fatal("expected R3 sines misplaced")
	}
}

func TestPQW2ECIClosedForm(t *testing.T) {
	// Vallado eq. 2-84: columns are the P, Q and W unit vectors in the inertial frame.
	i, ω, Ω := math.Pi/16, math.Pi/15, math.Pi/17
	si, ci := math.Sincos(i)
	sω, cω := math.Sincos(ω)
	sΩ, cΩ := math.Sincos(Ω)
	exp := mat.NewDense(3, 3, []float64{
		cΩ*cω - sΩ*sω*ci, -cΩ*sω - sΩ*cω*ci, sΩ * si,
		sΩ*cω + cΩ*sω*ci, -sΩ*sω + cΩ*cω*ci, -cΩ * si,
		sω * si, cω * si, ci,
	})
	if dcm := PQW2ECI(i, ω, Ω); !mat.EqualApprox(dcm, exp, 1e-14) {
		t.Logf("\n%v", mat.Formatted(dcm))
		t.Logf("\n%v", mat.Formatted(exp))
		t.Fatal("PQW2ECI does not match the closed form")
	}
	// Retrograde equatorial: the periapsis direction sits at Ω − ω.
	p := MxV33(PQW2ECI(math.Pi, ω, Ω), [3]float64{1, 0, 0})
	assertAngle(t, "periapsis direction", math.Atan2(p[1], p[0]), wrap2π(Ω-ω), 1e-14)
}

func TestPQW2ECI(t *testing.T) {
	// From Vallado, example 2-5
	i := Deg2rad(87.869126)
	ω := Deg2rad(53.384931)
	Ω := Deg2rad(227.898260)
	dcm := PQW2ECI(i, ω, Ω)
	Rp := MxV33(dcm, [3]float64{-466.7639, 11447.0219, 0})
	Re := [3]float64{6524.834, 6862.875, 6448.296}
	if !vectorsEqual(Re, Rp, 1e-5) {
		t.Fatalf("R conversion failed: %v", Rp)
	}
	Vp := MxV33(dcm, [3]float64{-5.996222, 4.753601, 0})
	Ve := [3]float64{4.901327, 5.533756, -1.976341}
	if !vectorsEqual(Ve, Vp, 1e-5) {
		t.Fatalf("V conversion failed: %v", Vp)
	}
	// Orthonormal.
	var id mat.Dense
	id.Mul(dcm, dcm.T())
	if !mat.EqualApprox(&id, mat.NewDiagDense(3, []float64{1, 1, 1}), 1e-15) {
		t.Fatalf("DCM is not orthonormal:\n%v", mat.Formatted(&id))
	}
}
