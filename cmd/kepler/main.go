// Command kepler converts between classical orbital elements and inertial state vectors.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/nominalsys/kepler"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	v      = kepler.NewViper()
	conf   kepler.Config
	logger log.Logger = log.NewNopLogger()
)

var rootCmd = &cobra.Command{
	Use:   "kepler",
	Short: "Orbital element and state vector conversions",
	Long: `kepler converts classical orbital elements to inertial state vectors and back.
Distances are in meters, speeds in meters per second and angles in radians unless --deg is set.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if conf, err = kepler.LoadConfig(v); err != nil {
			return err
		}
		if logger, err = newLogger(cmd.ErrOrStderr(), conf.LogLevel); err != nil {
			return err
		}
		logger = log.With(logger, "cmd", cmd.Name())
		level.Debug(logger).Log("config", v.ConfigFileUsed(), "body", conf.DefaultBody, "workers", conf.Workers)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("body", "earth", "central body ("+strings.Join(kepler.Bodies(), ", ")+")")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	mustBind("body.default", rootCmd.PersistentFlags().Lookup("body"))
	mustBind("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// mustBind binds a flag to a configuration key, and panics if the flag does not exist.
func mustBind(key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(errors.Wrapf(err, "binding %s", key))
	}
}

// newLogger returns a logfmt logger writing to w which drops the entries below lvl.
func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		opt = level.AllowDebug()
	case "info", "":
		opt = level.AllowInfo()
	case "warn", "warning":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level '%s'", lvl)
	}
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	l = log.With(l, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(l, opt), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "kepler:", err)
		os.Exit(1)
	}
}
