package kepler

import "fmt"

// Shell holds the elements shared by every spacecraft of a constellation. Angles are in radians.
type Shell struct {
	A        float64 // semi-major axis (m)
	E        float64
	I        float64
	RAAN     float64 // RAAN of the first plane
	ArgPeri  float64
	NuOffset float64 // true anomaly of the first spacecraft
}

func (s Shell) validate(sats int) error {
	if sats < 1 {
		return fmt.Errorf("constellation needs at least one spacecraft, got %d", sats)
	}
	if !(s.A > 0) {
		return invalidf("constellation semi-major axis a=%g", s.A)
	}
	if s.E < 0 || s.E >= 1 {
		return invalidf("constellation eccentricity e=%g must be in [0, 1)", s.E)
	}
	return nil
}

func (s Shell) elements(Ω, ν float64) Elements {
	return NewElements(s.A, s.E, s.I, wrap2π(Ω), s.ArgPeri, wrap2π(ν), DefaultTolerances).Canonical()
}

// Coplanar spreads Sats spacecraft evenly in true anomaly on a single orbit.
type Coplanar struct {
	Shell
	Sats int
}

// Elements returns the element set of each spacecraft, ordered by phase.
func (c Coplanar) Elements() ([]Elements, error) {
	if err := c.validate(c.Sats); err != nil {
		return nil, err
	}
	phase := twoπ / float64(c.Sats)
	els := make([]Elements, c.Sats)
	for k := range els {
		els[k] = c.elements(c.RAAN, c.NuOffset+float64(k)*phase)
	}
	return els, nil
}

// WalkerDelta is a Walker delta pattern i: Sats/Planes/Spacing. Planes are evenly spread in RAAN
// over 2π, and the spacecraft of plane k lead those of plane k-1 by Spacing*2π/Sats in true anomaly.
type WalkerDelta struct {
	Shell
	Sats    int
	Planes  int
	Spacing float64 // relative spacing F, clamped to [0, Planes]
}

// Elements returns the element set of each spacecraft, plane by plane.
func (w WalkerDelta) Elements() ([]Elements, error) {
	if err := w.validate(w.Sats); err != nil {
		return nil, err
	}
	if w.Planes < 1 {
		return nil, fmt.Errorf("walker constellation needs at least one plane, got %d", w.Planes)
	}
	planes := w.Planes
	if planes > w.Sats {
		planes = w.Sats
	}
	if w.Sats%planes != 0 {
		return nil, fmt.Errorf("%d spacecraft cannot be split evenly in %d planes", w.Sats, planes)
	}
	spacing := w.Spacing
	if spacing < 0 {
		spacing = -spacing
	}
	if spacing > float64(planes) {
		spacing = float64(planes)
	}
	perPlane := w.Sats / planes
	phase := spacing * twoπ / float64(w.Sats)
	anom := twoπ / float64(perPlane)
	els := make([]Elements, 0, w.Sats)
	for k := 0; k < planes; k++ {
		Ω := w.RAAN + twoπ/float64(planes)*float64(k)
		for j := 0; j < perPlane; j++ {
			els = append(els, w.elements(Ω, w.NuOffset+phase*float64(k)+anom*float64(j)))
		}
	}
	return els, nil
}

// States converts each element set to its inertial state around a body of gravitational parameter μ.
func States(els []Elements, μ float64) ([]State, error) {
	states := make([]State, len(els))
	for k, el := range els {
		s, err := el.ToState(μ)
		if err != nil {
			return nil, fmt.Errorf("spacecraft %d: %w", k, err)
		}
		states[k] = s
	}
	return states, nil
}
