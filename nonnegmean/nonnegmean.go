package nonnegmean

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by the tests in this package. Most call sites wrap them
// with fmt.Errorf to add context, so callers should test with errors.Is.
var (
	ErrNegativeSample    = errors.New("nonnegmean: sample contains a negative value")
	ErrNonBinarySample   = errors.New("nonnegmean: sample contains a value other than 0 or 1")
	ErrInvalidPadding    = errors.New("nonnegmean: padding g must be nonnegative")
	ErrPopulationOverrun = errors.New("nonnegmean: sample size exceeds population size, or population size is invalid")
)

func checkNonnegative(x []float64) error {
	for _, v := range x {
		if v < 0 {
			return fmt.Errorf("nonnegmean: value %v: %w", v, ErrNegativeSample)
		}
	}
	return nil
}

// KaplanMarkov computes the Kaplan-Markov p-value for the null that the
// mean of the nonnegative sample x is at most t, using padding g to avoid
// a trivial p-value of 1 when x may contain zeros.
//
// If randomOrder is true, x is assumed to be in the order it was drawn
// and the result is the minimum of 1/M_k over all prefixes k (optional
// stopping); otherwise it is 1/M_n using the full sample.
func KaplanMarkov(x []float64, t, g float64, randomOrder bool) (float64, error) {
	if err := checkNonnegative(x); err != nil {
		return 0, err
	}
	if len(x) == 0 {
		return 1, nil
	}
	factors := make([]float64, len(x))
	for i, xi := range x {
		factors[i] = (t + g) / (xi + g)
	}
	if randomOrder {
		cumProd := floats.CumProd(make([]float64, len(factors)), factors)
		return math.Min(1, floats.Min(cumProd)), nil
	}
	cumProd := floats.CumProd(make([]float64, len(factors)), factors)
	return math.Min(1, cumProd[len(cumProd)-1]), nil
}

// KaplanWald computes the Kaplan-Wald p-value for the null that the mean
// of the nonnegative sample x is at most t, using padding g in [0, 1) to
// avoid a trivial p-value of 1 when x may contain zeros.
//
// randomOrder has the same meaning as in KaplanMarkov, but the optional
// stopping here is over the running martingale's maximum, since the
// Kaplan-Wald martingale is itself the cumulative product (not its
// reciprocal).
func KaplanWald(x []float64, t, g float64, randomOrder bool) (float64, error) {
	if g < 0 {
		return 0, fmt.Errorf("nonnegmean: g=%v: %w", g, ErrInvalidPadding)
	}
	if err := checkNonnegative(x); err != nil {
		return 0, err
	}
	if len(x) == 0 {
		return 1, nil
	}
	factors := make([]float64, len(x))
	for i, xi := range x {
		factors[i] = (1-g)*xi/t + g
	}
	cumProd := floats.CumProd(make([]float64, len(factors)), factors)
	if randomOrder {
		return math.Min(1, 1/floats.Max(cumProd)), nil
	}
	return math.Min(1, 1/cumProd[len(cumProd)-1]), nil
}
