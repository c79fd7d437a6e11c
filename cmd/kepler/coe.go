package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/nominalsys/kepler"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var coeFlags struct {
	r, v []float64
	raw  bool
}

var coeCmd = &cobra.Command{
	Use:   "coe",
	Short: "Convert a state vector to classical orbital elements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(coeFlags.r) != 3 || len(coeFlags.v) != 3 {
			return fmt.Errorf("--r and --v need three components each, got %d and %d", len(coeFlags.r), len(coeFlags.v))
		}
		body, err := conf.Body()
		if err != nil {
			return err
		}
		s := kepler.State{
			R: [3]float64{coeFlags.r[0], coeFlags.r[1], coeFlags.r[2]},
			V: [3]float64{coeFlags.v[0], coeFlags.v[1], coeFlags.v[2]},
		}
		o, err := kepler.VectorToClassicalTol(s, body.GM, conf.Tolerances)
		var warn *kepler.ParabolicOrbitWarning
		if errors.As(err, &warn) {
			level.Warn(logger).Log("msg", warn)
		} else if err != nil {
			return errors.Wrapf(err, "converting state around %s", body)
		}
		level.Info(logger).Log("body", body.Name, "class", o.Class, "convention", o.Class.Convention())
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "class: %s (%s)\n", o.Class, o.Class.Convention())
		fmt.Fprintln(out, o)
		if !coeFlags.raw {
			return nil
		}
		fmt.Fprintf(out, "a=%g e=%g i=%g Ω=%g ω=%g ν=%g p=%g\n", o.A, o.E, o.I, o.RAAN, o.ArgPeri, o.Nu, o.P)
		return nil
	},
}

func init() {
	fl := coeCmd.Flags()
	fl.Float64SliceVar(&coeFlags.r, "r", nil, "position x,y,z (m)")
	fl.Float64SliceVar(&coeFlags.v, "v", nil, "velocity x,y,z (m/s)")
	fl.BoolVar(&coeFlags.raw, "raw", false, "also print the elements in SI units and radians")
	coeCmd.MarkFlagRequired("r")
	coeCmd.MarkFlagRequired("v")
	rootCmd.AddCommand(coeCmd)
}
