package nonnegmean

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidSimulationParameters is returned by KaplanMartingaleSampleSizeSim
// when alpha, altMean, or q are outside their required ranges.
var ErrInvalidSimulationParameters = errors.New("nonnegmean: invalid sample-size simulation parameters")

// KaplanMartingaleSampleSizeSim estimates the qth quantile of the sample
// size needed to reject, at significance level alpha, the null that a
// population of n elements has mean at most t, when the population's true
// mean is altMean, using reps simulated audits of the KaplanMartingale
// test. n may be math.Inf(1) for sampling with replacement.
//
// The simulated population is a rescaling of a fixed pseudorandom sample
// (seeded deterministically, see NewRand) to have mean altMean, so repeated
// calls with the same arguments return the same estimate.
func KaplanMartingaleSampleSizeSim(n float64, altMean, alpha, t, q float64, reps int) (float64, error) {
	if !(alpha > 0 && alpha < 0.5) || altMean <= t || !(q > 0 && q < 1) || reps <= 0 {
		return 0, ErrInvalidSimulationParameters
	}
	if n <= 0 || (!math.IsInf(n, 1) && n != math.Trunc(n)) {
		return 0, fmt.Errorf("nonnegmean: N=%v: %w", n, ErrPopulationOverrun)
	}

	prng := NewRand(1234567890)
	popSize := int(n)
	if math.IsInf(n, 1) {
		popSize = 10000
	}
	unit := distuv.Uniform{Min: 0, Max: 1, Src: prng}
	hypPop := make([]float64, popSize)
	sum := 0.0
	for i := range hypPop {
		hypPop[i] = unit.Rand()
		sum += hypPop[i]
	}
	mean := sum / float64(len(hypPop))
	for i := range hypPop {
		hypPop[i] *= altMean / mean
	}

	dist := make([]float64, reps)
	for i := 0; i < reps; i++ {
		prng.Shuffle(len(hypPop), func(a, b int) { hypPop[a], hypPop[b] = hypPop[b], hypPop[a] })
		j := 0
		p := 1.0
		for p > alpha && j < len(hypPop) {
			j++
			// end is j+1 clamped to len(hypPop): a trailing slice index one
			// past the stopping count, matching a numpy slice's silent clip
			// to the array length on the final iteration.
			end := j + 1
			if end > len(hypPop) {
				end = len(hypPop)
			}
			sample := hypPop[:end]
			var err error
			p, _, err = KaplanMartingale(sample, n, t, false)
			if err != nil {
				return 0, err
			}
		}
		dist[i] = float64(j)
	}

	sort.Float64s(dist)
	return stat.Quantile(q, stat.LinInterp, dist, nil), nil
}
