package nonnegmean

import (
	"fmt"
	"math"
)

// WaldSPRT computes the p-value for the null that a binary population's
// mean is at most t against the alternative p1 > t, for a population of
// size n (use math.Inf(1) for sampling with replacement; a finite n
// means sampling without replacement).
func WaldSPRT(x []float64, n float64, t, p1 float64, randomOrder bool) (float64, error) {
	for _, xi := range x {
		if xi != 0 && xi != 1 {
			return 0, fmt.Errorf("nonnegmean: value %v: %w", xi, ErrNonBinarySample)
		}
	}
	if len(x) == 0 {
		return 1, nil
	}

	terms := make([]float64, len(x))
	if math.IsInf(n, 1) {
		for i, xi := range x {
			if xi == 1 {
				terms[i] = p1 / t
			} else {
				terms[i] = (1 - p1) / (1 - t)
			}
		}
	} else {
		a := 0.0 // A_k: cumulative count of ones among draws strictly before k
		for k, xi := range x {
			if xi == 1 {
				denom := n*t - a
				if denom > 0 {
					terms[k] = math.Max(n*p1-a, 0) / denom
				} else {
					terms[k] = math.Inf(1)
				}
			} else {
				denom := n*(1-t) - float64(k) + 1 + a
				if denom > 0 {
					terms[k] = math.Max(n*(1-p1)-float64(k)+1+a, 0) / denom
				} else {
					terms[k] = math.Inf(1)
				}
			}
			a += xi
		}
	}

	running := 1.0
	maxRunning := 1.0
	for _, term := range terms {
		running *= term
		if running > maxRunning {
			maxRunning = running
		}
	}
	if randomOrder {
		return math.Min(1, 1/maxRunning), nil
	}
	return math.Min(1, 1/running), nil
}
