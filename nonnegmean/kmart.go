package nonnegmean

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// IntegralFromRoots integrates the polynomial prod_{k=1}^n (x - c[k]) over
// [0, 1] using the recursive expansion of the coefficients in the
// Bernstein-like basis devised by Steve Evans. It returns that integral
// together with the vector of nested integrals over prefixes of c of
// every degree from 1 to n.
//
// If maximal is true, the returned integral is instead the maximum of the
// nested integrals over degrees 2..n (degree 1 is excluded). With a single
// root it is the degree-1 integral, and with no roots it is 0.
func IntegralFromRoots(c []float64, maximal bool) (float64, []float64) {
	n := len(c)
	a := make([][]float64, n+1)
	for i := range a {
		a[i] = make([]float64, n+1)
	}
	a[0][0] = 1
	for k := 0; k < n; k++ {
		for j := 0; j <= n; j++ {
			a[k+1][j] = -c[k] * (float64(k+1-j) / float64(k+1)) * a[k][j]
			if j != 0 {
				a[k+1][j] += (1 - c[k]) * (float64(j) / float64(k+1)) * a[k][j-1]
			}
		}
	}

	integrals := make([]float64, n)
	for k := 1; k <= n; k++ {
		integrals[k-1] = floats.Sum(a[k]) / float64(k+1)
	}

	var integral float64
	if maximal {
		switch len(integrals) {
		case 0:
			integral = 0
		case 1:
			integral = integrals[0]
		default:
			integral = floats.Max(integrals[1:])
		}
	} else {
		integral = floats.Sum(a[n]) / float64(n+1)
	}
	return integral, integrals
}

// KaplanMartingale computes the p-value for the null that the mean of a
// nonnegative population of n elements is exactly t, against the
// alternative that it is larger, using Kaplan's martingale test evaluated
// with IntegralFromRoots. n may be math.Inf(1) to treat the sample as
// drawn with replacement; otherwise it is assumed to be drawn without
// replacement from a population of that size.
//
// It returns the p-value and the martingale evaluated after each draw whose
// term c_j is nonzero; draws with c_j = 0 leave the martingale unchanged
// and add no entry. If the sample total already exceeds n*t, the p-value
// is 0 and the vector holds a 1 for every draw.
func KaplanMartingale(x []float64, n float64, t float64, randomOrder bool) (float64, []float64, error) {
	if err := checkNonnegative(x); err != nil {
		return 0, nil, err
	}
	if n <= 0 || (!math.IsInf(n, 1) && n != math.Trunc(n)) || float64(len(x)) > n {
		return 0, nil, ErrPopulationOverrun
	}
	if len(x) == 0 {
		return 1, nil, nil
	}

	stilde := make([]float64, len(x))
	cum := 0.0
	for j := range x {
		stilde[j] = cum / n
		cum += x[j]
	}
	tMinusStilde := make([]float64, len(x))
	overrun := false
	for j := range x {
		tMinusStilde[j] = t - stilde[j]
		if tMinusStilde[j] < 0 {
			overrun = true
		}
	}

	if overrun {
		// sample total already exceeds the hypothesized population total
		martVec := make([]float64, len(x))
		for i := range martVec {
			martVec[i] = 1
		}
		return 0, martVec, nil
	}

	nonzero := make([]float64, 0, len(x))
	for j := range x {
		jtilde := 1 - float64(j)/n
		cj := x[j]*jtilde/tMinusStilde[j] - 1
		if cj != 0 {
			nonzero = append(nonzero, cj)
		}
	}
	roots := make([]float64, len(nonzero))
	yNorm := make([]float64, len(nonzero))
	prod := 1.0
	for i, cj := range nonzero {
		roots[i] = -1 / cj
		prod *= cj
		yNorm[i] = prod
	}

	_, integrals := IntegralFromRoots(roots, false)
	martVec := make([]float64, len(integrals))
	for i := range integrals {
		martVec[i] = yNorm[i] * integrals[i]
	}

	martMax := 1.0
	switch {
	case len(martVec) == 0:
		martMax = 1
	case randomOrder:
		martMax = floats.Max(martVec)
	default:
		martMax = martVec[len(martVec)-1]
	}
	return math.Min(1, 1/martMax), martVec, nil
}
