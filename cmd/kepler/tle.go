package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/nominalsys/kepler"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var tleCmd = &cobra.Command{
	Use:   "tle LINE1 LINE2",
	Short: "Osculating classical elements of a two-line element set at its epoch",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := kepler.ElementsFromTLE(args[0], args[1])
		if err != nil {
			return errors.Wrap(err, "two-line element set")
		}
		o := ts.Elements
		level.Info(logger).Log("epoch", ts.Epoch, "class", o.Class)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "epoch: %s (JDE %.6f)\n", ts.Epoch.Format("2006-01-02 15:04:05"), ts.JDE)
		fmt.Fprintf(out, "state: %s\n", ts.State)
		fmt.Fprintf(out, "class: %s\n%s\n", o.Class, o)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tleCmd)
}
