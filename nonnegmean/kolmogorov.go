package nonnegmean

import (
	"fmt"
	"math"
)

// KaplanKolmogorov computes the p-value for the null that the mean of a
// nonnegative population of exactly n elements, sampled without
// replacement, is t. n must be a positive integer and len(x) must not
// exceed n.
func KaplanKolmogorov(x []float64, n float64, t float64, randomOrder bool) (float64, error) {
	if err := checkNonnegative(x); err != nil {
		return 0, err
	}
	if n <= 0 || n != math.Trunc(n) || float64(len(x)) > n {
		return 0, fmt.Errorf("nonnegmean: N=%v, len(x)=%d: %w", n, len(x), ErrPopulationOverrun)
	}
	if len(x) == 0 {
		return 1, nil
	}

	mart := x[0]
	if t > 0 {
		mart = x[0] / t
	} else {
		mart = 1
	}
	martMax := mart
	sampleTotal := 0.0
	for j := 1; j < len(x); j++ {
		denom := t - sampleTotal/n
		if denom <= 0 {
			mart = math.Inf(1)
			martMax = mart
			break
		}
		mart *= x[j] * (1 - float64(j)/n) / denom
		if mart < 0 {
			mart = math.Inf(1)
			martMax = mart
			break
		}
		sampleTotal += x[j]
		if mart > martMax {
			martMax = mart
		}
	}

	if randomOrder {
		return math.Min(1, 1/martMax), nil
	}
	return math.Min(1, 1/mart), nil
}
