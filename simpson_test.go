// Copyright 2019, LightStep Inc.

package quadrature_test

import (
	"math"
	"testing"

	"github.com/lightstep/quadrature"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/integrate/testquad"
)

func TestSimpsonQuarterCircle(t *testing.T) {
	bf := quarterCircle(t)

	simpson, err := quadrature.IntegrateSimpson(bf, 1000)
	require.NoError(t, err)
	require.InDelta(t, math.Pi/4, simpson, 1e-3)

	// Simpson with n pairs beats the trapezoid rule with n and with 2n
	// subintervals.
	for _, n := range []int{1000, 2000} {
		trapezoid, err := quadrature.IntegrateTrapezoid(bf, n)
		require.NoError(t, err)
		require.LessOrEqual(t, math.Abs(simpson-math.Pi/4), math.Abs(trapezoid-math.Pi/4))
	}
}

func TestSimpsonExactForCubics(t *testing.T) {
	for numPairs := 1; numPairs <= 64; numPairs++ {
		got, err := quadrature.IntegrateSimpson(parabola(t), numPairs)
		require.NoError(t, err)
		require.InDelta(t, 2./3, got, 1e-13, "numPairs=%d", numPairs)
	}

	cubic := testquad.Poly(3)
	bf := mustNew(t, cubic.F, cubic.A, cubic.B)
	for _, numPairs := range []int{1, 2, 5, 100} {
		got, err := quadrature.IntegrateSimpson(bf, numPairs)
		require.NoError(t, err)
		require.InDelta(t, cubic.Value, got, 1e-12, "numPairs=%d", numPairs)
	}
}

func TestSimpsonWeights(t *testing.T) {
	// One pair on [0, 2]: (f(0) + 4 f(1) + f(2)) / 3.
	got, err := quadrature.IntegrateSimpson(mustNew(t, func(x float64) float64 { return x * x * x * x }, 0, 2), 1)
	require.NoError(t, err)
	require.InDelta(t, 20./3, got, 1e-14)
}

func TestSimpsonConstant(t *testing.T) {
	for _, n := range []int{1, 2, 7, 1000} {
		got, err := quadrature.IntegrateSimpson(mustNew(t, constant(2.5), 1, 3), n)
		require.NoError(t, err)
		require.InDelta(t, 5., got, 1e-12, "n=%d", n)
	}
}

func TestSimpsonDegenerate(t *testing.T) {
	for _, n := range []int{1, 10, 1001} {
		got, err := quadrature.IntegrateSimpson(mustNew(t, math.Exp, -0.5, -0.5), n)
		require.NoError(t, err)
		require.Equal(t, 0., got)
	}
}

func TestSimpsonInvalid(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := quadrature.IntegrateSimpson(quarterCircle(t), n)
		require.ErrorIs(t, err, quadrature.ErrInvalidArgument)
	}

	// 2*numPairs must not wrap around.
	for _, n := range []int{quadrature.MaxSteps/2 + 1, math.MaxInt/2 + 1, math.MaxInt} {
		_, err := quadrature.IntegrateSimpson(quarterCircle(t), n)
		require.ErrorIs(t, err, quadrature.ErrInvalidArgument)
		require.ErrorContains(t, err, "num pairs")
	}
}

func TestSimpsonEqualPanels(t *testing.T) {
	bf := quarterCircle(t)

	// Simpson with n/2 pairs uses the same n panels as the trapezoid rule.
	for _, n := range []int{10, 100, 1000, 2000} {
		simpson, err := quadrature.IntegrateSimpson(bf, n/2)
		require.NoError(t, err)
		trapezoid, err := quadrature.IntegrateTrapezoid(bf, n)
		require.NoError(t, err)

		require.Less(t, math.Abs(simpson-math.Pi/4), math.Abs(trapezoid-math.Pi/4), "n=%d", n)
	}
}

func TestSimpsonKnownIntegrals(t *testing.T) {
	for _, test := range []struct {
		integral testquad.Integral
		numPairs int
		tol      float64
	}{
		{integral: testquad.Constant(0), numPairs: 1, tol: 0},
		{integral: testquad.Poly(0), numPairs: 1, tol: 1e-14},
		{integral: testquad.Poly(2), numPairs: 1, tol: 1e-14},
		{integral: testquad.Poly(4), numPairs: 500, tol: 1e-10},
		{integral: testquad.Poly(5), numPairs: 500, tol: 1e-9},
		{integral: testquad.Sin(), numPairs: 50, tol: 1e-9},
		{integral: testquad.XExpMinusX(), numPairs: 50, tol: 1e-9},
		{integral: testquad.Sqrt(), numPairs: 5000, tol: 1e-6},
		{integral: testquad.ExpOverX2Plus1(), numPairs: 50, tol: 1e-8},
	} {
		t.Run(test.integral.Name, func(t *testing.T) {
			bf := mustNew(t, test.integral.F, test.integral.A, test.integral.B)

			got, err := quadrature.IntegrateSimpson(bf, test.numPairs)
			require.NoError(t, err)
			require.InDelta(t, test.integral.Value, got, test.tol)

			xs, err := bf.RangeInBounds(2 * test.numPairs)
			require.NoError(t, err)
			ys := make([]float64, len(xs))
			for i, x := range xs {
				ys[i] = bf.Eval(x)
			}
			require.InDelta(t, integrate.Simpsons(xs, ys), got, 1e-12)
		})
	}
}
