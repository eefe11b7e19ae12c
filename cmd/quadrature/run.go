// Copyright 2019, LightStep Inc.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/lightstep/quadrature"
	"github.com/lightstep/quadrature/reservoir"
	"github.com/rs/zerolog"
)

type config struct {
	Problems     []string
	Iterations   int
	Subintervals int
	Pairs        int
	Seed         int64
	EstimateMax  bool
	MaxSteps     int
	Trials       int
}

var (
	heading  = color.New(color.FgCyan, color.Bold)
	expected = color.New(color.FgGreen)
)

// run integrates every selected problem with all three methods and
// writes the results to out.  A failing problem does not stop the
// others; all failures are returned together.
func run(cfg config, out io.Writer, log zerolog.Logger) error {
	problems, err := selectProblems(cfg.Problems)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Msg("monte carlo seed")
	rnd := rand.New(rand.NewSource(seed))

	var result *multierror.Error
	for _, p := range problems {
		if err := runProblem(p, cfg, rnd, seed, out, log.With().Str("problem", p.Name).Logger()); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", p.Name, err))
		}
	}
	return result.ErrorOrNil()
}

func runProblem(p problem, cfg config, rnd *rand.Rand, seed int64, out io.Writer, log zerolog.Logger) error {
	bf, err := quadrature.New(p.F, p.Lower, p.Upper)
	if err != nil {
		return err
	}

	height := p.Max
	if cfg.EstimateMax {
		if height, err = bf.EstimateMax(cfg.MaxSteps); err != nil {
			return err
		}
		log.Warn().
			Float64("height", height).
			Float64("analytic", p.Max).
			Int("steps", cfg.MaxSteps).
			Msg("using sampled maximum as bounding height; the estimate may be biased low")
	}

	var opts []quadrature.MonteCarloOption
	var trials *reservoir.Reservoir[quadrature.Trial]
	if cfg.Trials > 0 {
		trials = reservoir.New[quadrature.Trial](cfg.Trials, rand.New(rand.NewSource(seed+1)))
		opts = append(opts, quadrature.WithTrials(trials))
	}

	start := time.Now()
	mc, err := quadrature.IntegrateMonteCarlo(bf, cfg.Iterations, height, rnd, opts...)
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Int("iterations", cfg.Iterations).Msg("monte carlo")

	start = time.Now()
	trapezoid, err := quadrature.IntegrateTrapezoid(bf, cfg.Subintervals)
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Int("subintervals", cfg.Subintervals).Msg("trapezoid")

	start = time.Now()
	simpson, err := quadrature.IntegrateSimpson(bf, cfg.Pairs)
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Int("pairs", cfg.Pairs).Msg("simpson")

	heading.Fprintf(out, "%s: %s\n", p.Name, p.Description)
	expected.Fprintf(out, "Expected = %f\n", p.Expected)
	fmt.Fprintf(out, "%f, %f, %f\n", mc, trapezoid, simpson)

	if trials != nil {
		fmt.Fprintf(out, "sampled %d of %d trials:\n", trials.Size(), trials.Count())
		for _, trial := range trials.Items() {
			fmt.Fprintf(out, "  x=%.6f y=%.6f below=%t\n", trial.X, trial.Y, trial.Below)
		}
	}
	return nil
}
