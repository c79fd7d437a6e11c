package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/nominalsys/kepler"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rvFlags struct {
	a, e, i, Ω, ω, ν float64
	rA, rP, p        float64
	deg              bool
}

var rvCmd = &cobra.Command{
	Use:   "rv",
	Short: "Convert classical orbital elements to a state vector",
	Long: `rv prints the inertial position and velocity of the provided classical elements.
The size of the orbit is either --sma, the pair --apoapsis/--periapsis, or --slr (required for parabolas).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := conf.Body()
		if err != nil {
			return err
		}
		f := rvFlags
		if f.deg {
			f.i, f.Ω, f.ω, f.ν = kepler.Deg2rad(f.i), kepler.Deg2rad(f.Ω), kepler.Deg2rad(f.ω), kepler.Deg2rad(f.ν)
		}
		var s kepler.State
		switch {
		case f.p != 0:
			s, err = kepler.SemiLatusRectumToVector(f.p, f.e, f.i, f.Ω, f.ω, f.ν, body.GM)
		case f.rA != 0 || f.rP != 0:
			if f.a, f.e, err = kepler.Radii2ae(f.rA, f.rP); err != nil {
				return errors.Wrap(err, "apoapsis and periapsis")
			}
			s, err = kepler.ClassicalToVector(f.a, f.e, f.i, f.Ω, f.ω, f.ν, body.GM)
		default:
			s, err = kepler.ClassicalToVector(f.a, f.e, f.i, f.Ω, f.ω, f.ν, body.GM)
		}
		if err != nil {
			return errors.Wrapf(err, "converting elements around %s", body)
		}
		level.Info(logger).Log("body", body.Name, "class", kepler.Classify(f.e, f.i, conf.Tolerances), "r", s.RNorm(), "v", s.VNorm())
		fmt.Fprintf(cmd.OutOrStdout(), "R = [%.6f, %.6f, %.6f] m\nV = [%.9f, %.9f, %.9f] m/s\n",
			s.R[0], s.R[1], s.R[2], s.V[0], s.V[1], s.V[2])
		return nil
	},
}

func init() {
	fl := rvCmd.Flags()
	fl.Float64Var(&rvFlags.a, "sma", 0, "semi-major axis (m), negative for hyperbolas")
	fl.Float64Var(&rvFlags.e, "ecc", 0, "eccentricity")
	fl.Float64Var(&rvFlags.i, "inc", 0, "inclination")
	fl.Float64Var(&rvFlags.Ω, "raan", 0, "right ascension of the ascending node")
	fl.Float64Var(&rvFlags.ω, "argp", 0, "argument of periapsis")
	fl.Float64Var(&rvFlags.ν, "nu", 0, "true anomaly")
	fl.Float64Var(&rvFlags.rA, "apoapsis", 0, "apoapsis radius (m), with --periapsis instead of --sma and --ecc")
	fl.Float64Var(&rvFlags.rP, "periapsis", 0, "periapsis radius (m)")
	fl.Float64Var(&rvFlags.p, "slr", 0, "semi-latus rectum (m) instead of --sma")
	fl.BoolVar(&rvFlags.deg, "deg", false, "angles in degrees")
	rvCmd.MarkFlagsMutuallyExclusive("sma", "apoapsis")
	rvCmd.MarkFlagsMutuallyExclusive("sma", "slr")
	rvCmd.MarkFlagsRequiredTogether("apoapsis", "periapsis")
	rootCmd.AddCommand(rvCmd)
}
