package main

import (
	"encoding/csv"
	"strconv"

	"github.com/go-kit/log/level"
	"github.com/nominalsys/kepler"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var walkerFlags struct {
	shell   kepler.Shell
	sats    int
	planes  int
	spacing float64
	deg     bool
}

var walkerCmd = &cobra.Command{
	Use:   "walker",
	Short: "Lay out a Walker delta constellation",
	Long: `walker prints the elements and state vector of every spacecraft of a Walker delta
pattern i: sats/planes/spacing as CSV. A single plane spreads the spacecraft evenly in true anomaly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := conf.Body()
		if err != nil {
			return err
		}
		shell := walkerFlags.shell
		if walkerFlags.deg {
			shell.I = kepler.Deg2rad(shell.I)
			shell.RAAN = kepler.Deg2rad(shell.RAAN)
			shell.ArgPeri = kepler.Deg2rad(shell.ArgPeri)
			shell.NuOffset = kepler.Deg2rad(shell.NuOffset)
		}
		var els []kepler.Elements
		if walkerFlags.planes <= 1 {
			els, err = kepler.Coplanar{Shell: shell, Sats: walkerFlags.sats}.Elements()
		} else {
			els, err = kepler.WalkerDelta{Shell: shell, Sats: walkerFlags.sats, Planes: walkerFlags.planes, Spacing: walkerFlags.spacing}.Elements()
		}
		if err != nil {
			return errors.Wrap(err, "constellation")
		}
		states, err := kepler.States(els, body.GM)
		if err != nil {
			return errors.Wrapf(err, "constellation around %s", body)
		}
		level.Info(logger).Log("body", body.Name, "sats", len(els), "planes", walkerFlags.planes, "class", els[0].Class)

		w := csv.NewWriter(cmd.OutOrStdout())
		w.Write([]string{"sat", "raan", "nu", "rx", "ry", "rz", "vx", "vy", "vz"})
		for k, s := range states {
			Ω, ν := els[k].RAAN, els[k].Nu
			if walkerFlags.deg {
				Ω, ν = kepler.Rad2deg(Ω), kepler.Rad2deg(ν)
			}
			w.Write(append([]string{strconv.Itoa(k), formatFloat(Ω), formatFloat(ν)}, stateRecord(s)...))
		}
		w.Flush()
		return w.Error()
	},
}

func init() {
	fl := walkerCmd.Flags()
	fl.IntVar(&walkerFlags.sats, "sats", 1, "total number of spacecraft")
	fl.IntVar(&walkerFlags.planes, "planes", 1, "number of orbital planes")
	fl.Float64Var(&walkerFlags.spacing, "spacing", 0, "relative phasing F between adjacent planes")
	fl.Float64Var(&walkerFlags.shell.A, "sma", 0, "semi-major axis (m)")
	fl.Float64Var(&walkerFlags.shell.E, "ecc", 0, "eccentricity")
	fl.Float64Var(&walkerFlags.shell.I, "inc", 0, "inclination")
	fl.Float64Var(&walkerFlags.shell.RAAN, "raan", 0, "RAAN of the first plane")
	fl.Float64Var(&walkerFlags.shell.ArgPeri, "argp", 0, "argument of periapsis")
	fl.Float64Var(&walkerFlags.shell.NuOffset, "nu", 0, "true anomaly of the first spacecraft")
	fl.BoolVar(&walkerFlags.deg, "deg", false, "angles in degrees")
	walkerCmd.MarkFlagRequired("sma")
	rootCmd.AddCommand(walkerCmd)
}
