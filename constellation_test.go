package kepler

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestWalkerDelta(t *testing.T) {
	// Galileo-like 56°: 24/3/1.
	w := WalkerDelta{
		Shell:   Shell{A: 29.6e6, I: Deg2rad(56)},
		Sats:    24,
		Planes:  3,
		Spacing: 1,
	}
	els, err := w.Elements()
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 24 {
		t.Fatalf("expected 24 spacecraft, got %d", len(els))
	}
	for k := 0; k < 3; k++ {
		for j := 0; j < 8; j++ {
			el := els[8*k+j]
			if el.Class.Kind != CircularInclined {
				t.Fatalf("sat %d: unexpected class %s", 8*k+j, el.Class)
			}
			assertAngle(t, "Ω", el.RAAN, Deg2rad(120*float64(k)), 1e-12)
			assertAngle(t, "u", el.Nu, Deg2rad(15*float64(k)+45*float64(j)), 1e-12)
		}
	}
	states, err := States(els, Earth.GM)
	if err != nil {
		t.Fatal(err)
	}
	for k, s := range states {
		if !scalar.EqualWithinRel(s.RNorm(), 29.6e6, 1e-12) {
			t.Fatalf("sat %d: |R|=%f", k, s.RNorm())
		}
		o, err := VectorToClassical(s, Earth.GM)
		if err != nil {
			t.Fatal(err)
		}
		if ok, err := o.StrictlyEquals(els[k]); !ok {
			t.Fatalf("sat %d: %s\n%s\n%s", k, err, o, els[k])
		}
	}
}

func TestWalkerDeltaClamping(t *testing.T) {
	shell := Shell{A: 7e6, E: 0.01, I: 1, ArgPeri: 0.5}
	// More planes than spacecraft: one spacecraft per plane.
	els, err := WalkerDelta{Shell: shell, Sats: 2, Planes: 5}.Elements()
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 2 {
		t.Fatalf("expected 2 spacecraft, got %d", len(els))
	}
	assertAngle(t, "Ω", els[1].RAAN, math.Pi, 1e-12)
	// Spacing is clamped to the number of planes, and its sign is dropped.
	a, err := WalkerDelta{Shell: shell, Sats: 6, Planes: 3, Spacing: 10}.Elements()
	if err != nil {
		t.Fatal(err)
	}
	b, err := WalkerDelta{Shell: shell, Sats: 6, Planes: 3, Spacing: -3}.Elements()
	if err != nil {
		t.Fatal(err)
	}
	for k := range a {
		if ok, err := a[k].StrictlyEquals(b[k]); !ok {
			t.Fatalf("sat %d: %s", k, err)
		}
	}
	// Elliptic shells keep their argument of periapsis.
	if a[0].Class.Kind != Elliptic || a[0].ArgPeri != 0.5 {
		t.Fatalf("unexpected elements %s", a[0])
	}

	for _, bad := range []WalkerDelta{
		{Shell: shell, Sats: 25, Planes: 3},
		{Shell: shell, Sats: 6, Planes: 0},
		{Shell: shell, Sats: 0, Planes: 1},
		{Shell: Shell{A: -7e6}, Sats: 6, Planes: 3},
		{Shell: Shell{A: 7e6, E: 1}, Sats: 6, Planes: 3},
	} {
		if _, err := bad.Elements(); err == nil {
			t.Fatalf("%+v should fail", bad)
		}
	}
}

func TestCoplanar(t *testing.T) {
	els, err := Coplanar{Shell: Shell{A: 4.2164e7, RAAN: 1, NuOffset: Deg2rad(10)}, Sats: 4}.Elements()
	if err != nil {
		t.Fatal(err)
	}
	for k, el := range els {
		if el.Class.Kind != CircularEquatorial {
			t.Fatalf("sat %d: unexpected class %s", k, el.Class)
		}
		// The node folds into the true longitude.
		assertAngle(t, "λ", el.Nu, 1+Deg2rad(10+90*float64(k)), 1e-12)
		if el.RAAN != 0 {
			t.Fatalf("sat %d: Ω=%f", k, el.RAAN)
		}
	}
	if _, err := (Coplanar{Shell: Shell{A: 7e6}}).Elements(); err == nil {
		t.Fatal("zero spacecraft should fail")
	}
}
