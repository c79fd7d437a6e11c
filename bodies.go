package kepler

import (
	"sort"
	"strings"
)

// Body defines a gravitating body. All quantities are SI.
type Body struct {
	Name       string
	GM         float64 // standard gravitational parameter μ, m^3/s^2
	Radius     float64 // equatorial radius, m
	Flattening float64
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.Name + " body"
}

/* Definitions */

// Sun is our closest star.
var Sun = Body{"Sun", 1.3271244002331e20, 695000000, 0}

// Mercury is the innermost planet.
var Mercury = Body{"Mercury", 2.203208e13, 2439700, 0}

// Venus is poisonous.
var Venus = Body{"Venus", 3.24858599e14, 6051800, 0}

// Earth is home.
var Earth = Body{"Earth", 3.986004414e14, 6378136.6, 1 / 298.257223563}

// Moon is Earth's.
var Moon = Body{"Moon", 4.9048695e12, 1737400, 0}

// Mars is the vacation place.
var Mars = Body{"Mars", 4.2828314e13, 3396190, 1 - 3376200.0/3396190.0}

// Jupiter is big.
var Jupiter = Body{"Jupiter", 1.26712767881e17, 71492000, 0}

// Saturn floats and that's really cool.
var Saturn = Body{"Saturn", 3.7940626068e16, 60268000, 0}

// Uranus is no joke.
var Uranus = Body{"Uranus", 5.794559128e15, 25559000, 0}

// Neptune is windy.
var Neptune = Body{"Neptune", 6.836534065e15, 24746000, 0}

// Pluto is not a planet but keeps a seat at the table.
var Pluto = Body{"Pluto", 9.83055e11, 1137000, 0}

// bodies is keyed by lower case name and never modified after init.
var bodies = func() map[string]Body {
	m := make(map[string]Body)
	for _, b := range []Body{Sun, Mercury, Venus, Earth, Moon, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto} {
		m[strings.ToLower(b.Name)] = b
	}
	return m
}()

// BodyFromString returns the body from its (case insensitive) name.
func BodyFromString(name string) (Body, error) {
	b, ok := bodies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Body{}, &UnknownBodyError{Name: name}
	}
	return b, nil
}

// GM returns the standard gravitational parameter μ of the named body in m^3/s^2.
// The supported names are Sun, Mercury, Venus, Earth, Moon, Mars, Jupiter, Saturn,
// Uranus, Neptune and Pluto.
func GM(name string) (float64, error) {
	b, err := BodyFromString(name)
	if err != nil {
		return 0, err
	}
	return b.GM, nil
}

// Bodies returns the sorted names of all supported bodies.
func Bodies() []string {
	names := make([]string, 0, len(bodies))
	for _, b := range bodies {
		names = append(names, b.Name)
	}
	sort.Strings(names)
	return names
}
