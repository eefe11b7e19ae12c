// Copyright 2019, LightStep Inc.

package quadrature

import (
	"fmt"

	"github.com/lightstep/quadrature/reservoir"
)

// Trial is one Monte Carlo draw: the point (X, Y) and whether it fell
// strictly below the curve.
type Trial struct {
	X     float64
	Y     float64
	Below bool
}

type monteCarloConfig struct {
	trials *reservoir.Reservoir[Trial]
}

// MonteCarloOption configures IntegrateMonteCarlo.
type MonteCarloOption func(*monteCarloConfig)

// WithTrials records every trial into r.  The reservoir draws from its
// own random stream, so recording leaves the estimate unchanged.
func WithTrials(r *reservoir.Reservoir[Trial]) MonteCarloOption {
	return func(c *monteCarloConfig) {
		c.trials = r
	}
}

// IntegrateMonteCarlo estimates the integral of bf by rejection
// sampling.  Each of the iterations trials draws x uniformly from the
// interval and y uniformly from [0, maxValue), and counts the trial
// when y < f(x).  The estimate is the counted fraction of the
// bounding rectangle's area, width*maxValue.
//
// maxValue must dominate f over the interval and f must be
// non-negative there; otherwise the estimate is biased.  Neither is
// checked.
func IntegrateMonteCarlo(bf BoundedFunction, iterations int, maxValue float64, rnd Source, opts ...MonteCarloOption) (float64, error) {
	if err := bf.valid(); err != nil {
		return 0, err
	}
	if iterations < 1 {
		return 0, fmt.Errorf("iterations %d < 1: %w", iterations, ErrInvalidArgument)
	}
	if rnd == nil {
		return 0, fmt.Errorf("nil random source: %w", ErrInvalidArgument)
	}

	var cfg monteCarloConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	below := 0
	for i := 0; i < iterations; i++ {
		x := bf.RandomX(rnd)
		y := rnd.Float64() * maxValue
		hit := y < bf.f(x)
		if hit {
			below++
		}
		if cfg.trials != nil {
			cfg.trials.Add(Trial{X: x, Y: y, Below: hit})
		}
	}

	area := bf.Width() * maxValue
	return float64(below) / float64(iterations) * area, nil
}
