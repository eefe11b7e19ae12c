// Copyright 2019, LightStep Inc.

package main

import (
	"fmt"
	"math"

	"github.com/lightstep/quadrature"
)

// problem is a definite integral with a known value and a known
// bound on the integrand.
type problem struct {
	Name        string
	Description string
	F           quadrature.Func
	Lower       float64
	Upper       float64
	Max         float64
	Expected    float64
}

var catalog = []problem{
	{
		Name:        "quarter-circle",
		Description: "sqrt(1 - x^2) on [0, 1]",
		F:           func(x float64) float64 { return math.Sqrt(1 - x*x) },
		Lower:       0,
		Upper:       1,
		Max:         1,
		Expected:    math.Pi / 4,
	},
	{
		// x^2 => 1/3 x^3 -> 1/3 - (-1/3) = 2/3
		Name:        "parabola",
		Description: "x^2 on [-1, 1]",
		F:           func(x float64) float64 { return x * x },
		Lower:       -1,
		Upper:       1,
		Max:         1,
		Expected:    2.0 / 3,
	},
}

// selectProblems returns the named problems in catalog order, or the
// whole catalog when names is empty.
func selectProblems(names []string) ([]problem, error) {
	if len(names) == 0 {
		return catalog, nil
	}

	want := map[string]bool{}
	for _, name := range names {
		want[name] = true
	}

	var selected []problem
	for _, p := range catalog {
		if want[p.Name] {
			selected = append(selected, p)
			delete(want, p.Name)
		}
	}
	for _, name := range names {
		if want[name] {
			return nil, fmt.Errorf("unknown problem %q", name)
		}
	}
	return selected, nil
}
