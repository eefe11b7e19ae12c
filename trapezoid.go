// Copyright 2019, LightStep Inc.

package quadrature

import "fmt"

// IntegrateTrapezoid applies the composite trapezoidal rule over
// numSubintervals equal panels.  The error is O(dx^2) for smooth f.
func IntegrateTrapezoid(bf BoundedFunction, numSubintervals int) (float64, error) {
	if err := bf.valid(); err != nil {
		return 0, err
	}
	if numSubintervals < 1 {
		return 0, fmt.Errorf("num subintervals %d < 1: %w", numSubintervals, ErrInvalidArgument)
	}

	xs, err := bf.RangeInBounds(numSubintervals)
	if err != nil {
		return 0, err
	}
	ys := bf.sample(xs)
	deltaX := bf.Width() / float64(numSubintervals)

	sum := 0.0
	for i := 0; i < len(ys)-1; i++ {
		sum += (ys[i] + ys[i+1]) * deltaX / 2
	}
	return sum, nil
}
