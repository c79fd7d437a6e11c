package kepler

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
	"github.com/soniakeys/meeus/v3/julian"
)

const (
	// wgs72GM is the gravitational parameter SGP4 is built on (m^3/s^2).
	wgs72GM = 3.986008e14
	km2m    = 1e3
)

// TLEState is the initial condition derived from a two-line element set.
type TLEState struct {
	Epoch    time.Time // TLE epoch, truncated to the second
	JDE      float64   // Julian date of Epoch
	State    State     // TEME position (m) and velocity (m/s) at Epoch
	Elements Elements  // osculating elements of State
}

// ElementsFromTLE evaluates the two-line element set with SGP4 at its own epoch and returns the
// osculating classical elements of the resulting state.
func ElementsFromTLE(line1, line2 string) (TLEState, error) {
	line1 = strings.TrimRight(line1, " \r\n")
	line2 = strings.TrimRight(line2, " \r\n")
	if len(line1) < 69 || len(line2) < 69 || line1[0] != '1' || line2[0] != '2' {
		return TLEState{}, fmt.Errorf("malformed two-line element set")
	}
	epoch, err := tleEpoch(line1)
	if err != nil {
		return TLEState{}, err
	}
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)
	pos, vel := satellite.Propagate(sat, epoch.Year(), int(epoch.Month()), epoch.Day(), epoch.Hour(), epoch.Minute(), epoch.Second())
	s := State{
		R: [3]float64{pos.X * km2m, pos.Y * km2m, pos.Z * km2m},
		V: [3]float64{vel.X * km2m, vel.Y * km2m, vel.Z * km2m},
	}
	for k := 0; k < 3; k++ {
		if math.IsNaN(s.R[k]) || math.IsNaN(s.V[k]) {
			return TLEState{}, fmt.Errorf("SGP4 failed for satellite %s", strings.TrimSpace(line1[2:7]))
		}
	}
	el, err := VectorToClassical(s, wgs72GM)
	if err != nil {
		return TLEState{}, err
	}
	return TLEState{Epoch: epoch, JDE: julian.TimeToJD(epoch), State: s, Elements: el}, nil
}

// tleEpoch parses the epoch field of the first line (two digit year and fractional day of year).
func tleEpoch(line1 string) (time.Time, error) {
	yy, err := strconv.Atoi(strings.TrimSpace(line1[18:20]))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch year: %s", err)
	}
	days, err := strconv.ParseFloat(strings.TrimSpace(line1[20:32]), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch day: %s", err)
	}
	year := 2000 + yy
	if yy >= 57 {
		year = 1900 + yy
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start.Add(time.Duration((days - 1) * 24 * float64(time.Hour))).Truncate(time.Second), nil
}
