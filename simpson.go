// Copyright 2019, LightStep Inc.

package quadrature

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// IntegrateSimpson applies composite Simpson's rule over 2*numPairs
// equal panels:
//
//	dx/3 * (f(x_0) + 4 f(x_1) + 2 f(x_2) + ... + 4 f(x_{2n-1}) + f(x_{2n}))
//
// It is exact for polynomials up to degree 3 and the error is
// O(dx^4) for smooth f.
func IntegrateSimpson(bf BoundedFunction, numPairs int) (float64, error) {
	if err := bf.valid(); err != nil {
		return 0, err
	}
	if numPairs < 1 {
		return 0, fmt.Errorf("num pairs %d < 1: %w", numPairs, ErrInvalidArgument)
	}
	if numPairs > MaxSteps/2 {
		return 0, fmt.Errorf("num pairs %d > %d: %w", numPairs, MaxSteps/2, ErrInvalidArgument)
	}

	numSteps := 2 * numPairs
	xs, err := bf.RangeInBounds(numSteps)
	if err != nil {
		return 0, err
	}
	deltaX := bf.Width() / float64(numSteps)

	return deltaX / 3 * floats.Dot(simpsonWeights(numSteps), bf.sample(xs)), nil
}

// simpsonWeights returns 1, 4, 2, 4, ..., 2, 4, 1 for the numSteps+1
// points of an even partition.
func simpsonWeights(numSteps int) []float64 {
	w := make([]float64, numSteps+1)
	for i := range w {
		switch {
		case i == 0 || i == numSteps:
			w[i] = 1
		case i%2 == 1:
			w[i] = 4
		default:
			w[i] = 2
		}
	}
	return w
}
