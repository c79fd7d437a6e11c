package kepler

import (
	"errors"
	"math"

	"github.com/soniakeys/unit"
)

const (
	geodeticMaxIter = 10
	geodeticΔh      = 1e-2 // m
)

// PCPF2LLA converts a planet-centered planet-fixed position (m) to geodetic latitude, longitude
// (radians) and altitude (m) above the reference ellipsoid of the provided body.
// The origin maps to the zero vector.
func PCPF2LLA(R [3]float64, b Body) (lla [3]float64, err error) {
	if norm(R) == 0 {
		return
	}
	a := b.Radius
	f := b.Flattening
	e2 := 2*f - f*f
	lon := math.Atan2(R[1], R[0])
	P := math.Hypot(R[0], R[1])

	alt := 0.0
	lat := math.Atan2(R[2], P*(1-e2))
	N := a / math.Sqrt(1-e2*math.Pow(math.Sin(lat), 2))
	for iter := 0; iter < geodeticMaxIter; iter++ {
		prevAlt := alt
		lat = math.Atan2(R[2], P*(1-e2*(N/(N+alt))))
		if math.IsNaN(lat) {
			return lla, errors.New("latitude is NaN")
		}
		N = a / math.Sqrt(1-e2*math.Pow(math.Sin(lat), 2))
		if cLat := math.Cos(lat); cLat < 1e-10 {
			// On the pole.
			alt = math.Abs(R[2]) - a*(1-f)
		} else {
			alt = P/cLat - N
		}
		if math.Abs(alt-prevAlt) <= geodeticΔh {
			break
		}
	}
	return [3]float64{lat, lon, alt}, nil
}

// PCPF2LLADeg is PCPF2LLA with latitude and longitude returned in degrees.
func PCPF2LLADeg(R [3]float64, b Body) ([3]float64, error) {
	lla, err := PCPF2LLA(R, b)
	if err != nil {
		return lla, err
	}
	return [3]float64{unit.Angle(lla[0]).Deg(), unit.Angle(lla[1]).Deg(), lla[2]}, nil
}

// LLA2PCPF converts geodetic latitude, longitude (radians) and altitude (m) above the reference
// ellipsoid of the provided body to a planet-centered planet-fixed position (m).
func LLA2PCPF(lla [3]float64, b Body) [3]float64 {
	sLat, cLat := math.Sincos(lla[0])
	sLon, cLon := math.Sincos(lla[1])
	alt := lla[2]
	f := b.Flattening
	e2 := f * (2 - f)
	N := b.Radius / math.Sqrt(1-e2*sLat*sLat)
	return [3]float64{(N + alt) * cLat * cLon, (N + alt) * cLat * sLon, ((1-e2)*N + alt) * sLat}
}

// LLA2PCPFDeg is LLA2PCPF with latitude and longitude in degrees.
func LLA2PCPFDeg(lla [3]float64, b Body) [3]float64 {
	return LLA2PCPF([3]float64{unit.AngleFromDeg(lla[0]).Rad(), unit.AngleFromDeg(lla[1]).Rad(), lla[2]}, b)
}
