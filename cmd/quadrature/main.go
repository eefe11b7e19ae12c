// Copyright 2019, LightStep Inc.

// Command quadrature prints Monte Carlo, trapezoidal and Simpson
// estimates for a catalog of integrals with known values.
package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	os.Exit(execute(newRootCmd()))
}

// execute runs cmd and reports any error, from flag parsing through
// the integrations, on its error stream.  It returns the exit code.
func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		fatal(cmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func fatal(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "quadrature: %s\n", err)
}

// splitList accepts both repeated values and comma separated lists,
// so QUADRATURE_PROBLEM=quarter-circle,parabola works like the flag.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "quadrature",
		Short:         "Compare Monte Carlo, trapezoidal and Simpson integration",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v.SetEnvPrefix("QUADRATURE")
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if cfgFile := v.GetString("config"); cfgFile != "" {
				v.SetConfigFile(cfgFile)
				return v.ReadInConfig()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if v.GetBool("no-color") {
				color.NoColor = true
			}
			level := zerolog.InfoLevel
			if v.GetBool("verbose") {
				level = zerolog.DebugLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: color.NoColor}).
				Level(level).
				With().Timestamp().Logger()

			return run(config{
				Problems:     splitList(v.GetStringSlice("problem")),
				Iterations:   v.GetInt("iterations"),
				Subintervals: v.GetInt("subintervals"),
				Pairs:        v.GetInt("pairs"),
				Seed:         v.GetInt64("seed"),
				EstimateMax:  v.GetBool("estimate-max"),
				MaxSteps:     v.GetInt("max-steps"),
				Trials:       v.GetInt("trials"),
			}, cmd.OutOrStdout(), log)
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.StringSlice("problem", nil, "comma separated problems to run (quarter-circle, parabola); default all")
	flags.IntP("iterations", "n", 10000000, "Monte Carlo trials")
	flags.Int("subintervals", 1000, "trapezoidal rule panels")
	flags.Int("pairs", 1000, "Simpson's rule panel pairs")
	flags.Int64("seed", 0, "Monte Carlo seed; 0 picks one from the clock")
	flags.Bool("estimate-max", false, "bound the Monte Carlo rectangle with a sampled maximum")
	flags.Int("max-steps", 1000, "sample count for --estimate-max")
	flags.Int("trials", 0, "print a uniform sample of this many Monte Carlo trials")
	flags.BoolP("verbose", "v", false, "log per-method timings")
	flags.Bool("no-color", false, "disable colored output")

	return cmd
}
