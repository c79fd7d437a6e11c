package kepler

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestGeodeticRoundTrip(t *testing.T) {
	for _, b := range []Body{Earth, Mars, Moon} {
		for lat := -85.0; lat <= 85; lat += 5 {
			for _, lon := range []float64{-170, -45, 0, 60, 179} {
				for _, alt := range []float64{0, 400e3, 1e6, 3.6e7} {
					R := LLA2PCPFDeg([3]float64{lat, lon, alt}, b)
					lla, err := PCPF2LLADeg(R, b)
					if err != nil {
						t.Fatal(err)
					}
					if !scalar.EqualWithinAbs(lla[0], lat, 1e-8) || !scalar.EqualWithinAbs(lla[1], lon, 1e-8) || !scalar.EqualWithinAbs(lla[2], alt, 0.1) {
						t.Fatalf("%s: (%f, %f, %f) became %v", b.Name, lat, lon, alt, lla)
					}
				}
			}
		}
	}
}

func TestGeodeticSpecialPoints(t *testing.T) {
	// Equator at zero altitude is the equatorial radius.
	R := LLA2PCPF([3]float64{0, 0, 0}, Earth)
	if !scalar.EqualWithinAbs(R[0], Earth.Radius, 1e-6) || R[1] != 0 || R[2] != 0 {
		t.Fatalf("equator: %v", R)
	}
	// Poles are flattened.
	R = LLA2PCPF([3]float64{math.Pi / 2, 0, 1000}, Earth)
	polar := Earth.Radius * (1 - Earth.Flattening)
	if !scalar.EqualWithinAbs(R[2], polar+1000, 1e-6) {
		t.Fatalf("pole: %v, expected z=%f", R, polar+1000)
	}
	lla, err := PCPF2LLA([3]float64{0, 0, polar + 1000}, Earth)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(lla[0], math.Pi/2, 1e-12) || !scalar.EqualWithinAbs(lla[2], 1000, 1e-6) {
		t.Fatalf("north pole: %v", lla)
	}
	lla, err = PCPF2LLA([3]float64{0, 0, -polar}, Earth)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(lla[0], -math.Pi/2, 1e-12) || !scalar.EqualWithinAbs(lla[2], 0, 1e-6) {
		t.Fatalf("south pole: %v", lla)
	}
	if lla, err := PCPF2LLA([3]float64{}, Earth); err != nil || lla != [3]float64{} {
		t.Fatalf("origin: %v %v", lla, err)
	}
}
