// Copyright 2019, LightStep Inc.

// Package quadrature estimates definite integrals of one-dimensional
// functions using Monte Carlo rejection sampling, the composite
// trapezoidal rule and composite Simpson's rule.
package quadrature

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidArgument is returned when a count is less than one, the
// bounds are inverted, or a required function or source is missing.
var ErrInvalidArgument = errors.New("quadrature: invalid argument")

// MaxSteps is the largest partition any rule accepts.  Simpson's rule
// takes at most MaxSteps/2 pairs.
const MaxSteps = math.MaxInt32 - 1

// Func is a pure real function of one variable.
type Func func(float64) float64

// Source supplies uniform samples from [0, 1).  *rand.Rand satisfies
// it; a *rand.Rand must not be shared between goroutines.
type Source interface {
	Float64() float64
}

// BoundedFunction pairs a function with the closed interval
// [Lower, Upper] it is integrated over.  It is immutable once built.
type BoundedFunction struct {
	f     Func
	lower float64
	upper float64
}

// New returns a BoundedFunction for f over [lower, upper].  A zero
// width interval is allowed.
func New(f Func, lower, upper float64) (BoundedFunction, error) {
	switch {
	case f == nil:
		return BoundedFunction{}, fmt.Errorf("nil function: %w", ErrInvalidArgument)
	case !finite(lower) || !finite(upper):
		return BoundedFunction{}, fmt.Errorf("non-finite bound [%v, %v]: %w", lower, upper, ErrInvalidArgument)
	case lower > upper:
		return BoundedFunction{}, fmt.Errorf("lower bound %v exceeds upper bound %v: %w", lower, upper, ErrInvalidArgument)
	}
	return BoundedFunction{
		f:     f,
		lower: lower,
		upper: upper,
	}, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Lower returns the left end of the interval.
func (bf BoundedFunction) Lower() float64 {
	return bf.lower
}

// Upper returns the right end of the interval.
func (bf BoundedFunction) Upper() float64 {
	return bf.upper
}

// Width returns Upper() - Lower().
func (bf BoundedFunction) Width() float64 {
	return bf.upper - bf.lower
}

// Eval returns f(x).  It panics on the zero BoundedFunction.
func (bf BoundedFunction) Eval(x float64) float64 {
	return bf.f(x)
}

func (bf BoundedFunction) valid() error {
	if bf.f == nil {
		return fmt.Errorf("uninitialized bounded function: %w", ErrInvalidArgument)
	}
	return nil
}

// RangeInBounds returns numSteps+1 evenly spaced points from Lower()
// to Upper() inclusive.  numSteps must be in [1, MaxSteps].  Every
// call returns a new slice.
func (bf BoundedFunction) RangeInBounds(numSteps int) ([]float64, error) {
	if numSteps < 1 {
		return nil, fmt.Errorf("num steps %d < 1: %w", numSteps, ErrInvalidArgument)
	}
	if numSteps > MaxSteps {
		return nil, fmt.Errorf("num steps %d > %d: %w", numSteps, MaxSteps, ErrInvalidArgument)
	}
	return floats.Span(make([]float64, numSteps+1), bf.lower, bf.upper), nil
}

// EstimateMax returns the largest value of f observed on
// RangeInBounds(numSteps), or 0 if every sample is below zero.
//
// This is a heuristic: the true maximum between sample points can be
// larger, and using the result as the Monte Carlo bounding height
// then biases that estimate downward.
func (bf BoundedFunction) EstimateMax(numSteps int) (float64, error) {
	if err := bf.valid(); err != nil {
		return 0, err
	}
	xs, err := bf.RangeInBounds(numSteps)
	if err != nil {
		return 0, err
	}

	hi := 0.0
	for _, x := range xs {
		if y := bf.f(x); y > hi {
			hi = y
		}
	}
	return hi, nil
}

// RandomX returns a uniform sample from [Lower(), Upper()).
func (bf BoundedFunction) RandomX(rnd Source) float64 {
	return bf.lower + rnd.Float64()*(bf.upper-bf.lower)
}

// sample evaluates f at each of xs.
func (bf BoundedFunction) sample(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = bf.f(x)
	}
	return ys
}
