package kepler

import (
	"errors"
	"sort"
	"testing"
)

func TestBodyFromString(t *testing.T) {
	for _, name := range []string{"earth", "EARTH", "Earth", " earth "} {
		b, err := BodyFromString(name)
		if err != nil {
			t.Fatalf("%q: %s", name, err)
		}
		if b != Earth {
			t.Fatalf("%q returned %s", name, b)
		}
	}
	_, err := BodyFromString("Vulcan")
	var unknown *UnknownBodyError
	if !errors.As(err, &unknown) || unknown.Name != "Vulcan" {
		t.Fatalf("expected an UnknownBodyError, got %v", err)
	}
	if err.Error() != "unknown body 'Vulcan'" {
		t.Fatalf("unexpected message %s", err)
	}
}

func TestGM(t *testing.T) {
	for name, exp := range map[string]float64{
		"sun":   1.3271244002331e20,
		"earth": 3.986004414e14,
		"moon":  4.9048695e12,
		"mars":  4.2828314e13,
		"pluto": 9.83055e11,
	} {
		μ, err := GM(name)
		if err != nil {
			t.Fatal(err)
		}
		if μ != exp {
			t.Fatalf("μ(%s)=%g, expected %g", name, μ, exp)
		}
	}
	if _, err := GM(""); err == nil {
		t.Fatal("empty name should fail")
	}
}

func TestBodies(t *testing.T) {
	names := Bodies()
	if len(names) != 11 {
		t.Fatalf("expected 11 bodies, got %v", names)
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("not sorted: %v", names)
	}
	for _, name := range names {
		b, err := BodyFromString(name)
		if err != nil {
			t.Fatal(err)
		}
		if !(b.GM > 0) || !(b.Radius > 0) || b.Flattening < 0 || b.Flattening >= 1 {
			t.Fatalf("unphysical %s: %+v", name, b)
		}
	}
	// The table hands out copies.
	names[0] = "nope"
	if Bodies()[0] == "nope" {
		t.Fatal("Bodies returned shared state")
	}
}
