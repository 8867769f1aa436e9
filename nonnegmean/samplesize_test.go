package nonnegmean

import (
	"errors"
	"testing"
)

func TestKaplanMartingaleSampleSizeSimQuantileInRange(t *testing.T) {
	q, err := KaplanMartingaleSampleSizeSim(100000, 0.6, 0.05, 0.5, 0.8, 10)
	if err != nil {
		t.Fatalf("KaplanMartingaleSampleSizeSim: %v", err)
	}
	if q < 50 || q > 150 {
		t.Errorf("quantile = %v, want in [50, 150]", q)
	}
}

func TestKaplanMartingaleSampleSizeSimDeterministic(t *testing.T) {
	q1, err := KaplanMartingaleSampleSizeSim(10000, 0.6, 0.05, 0.5, 0.8, 5)
	if err != nil {
		t.Fatalf("KaplanMartingaleSampleSizeSim: %v", err)
	}
	q2, err := KaplanMartingaleSampleSizeSim(10000, 0.6, 0.05, 0.5, 0.8, 5)
	if err != nil {
		t.Fatalf("KaplanMartingaleSampleSizeSim: %v", err)
	}
	if q1 != q2 {
		t.Errorf("not deterministic: %v vs %v", q1, q2)
	}
}

func TestKaplanMartingaleSampleSizeSimInvalidParameters(t *testing.T) {
	cases := []struct {
		altMean, alpha, q float64
		reps              int
	}{
		{0.6, 0.6, 0.8, 10},  // alpha too large
		{0.4, 0.05, 0.8, 10}, // altMean <= t
		{0.6, 0.05, 1.2, 10}, // q out of range
		{0.6, 0.05, 0.8, 0},  // reps <= 0
	}
	for _, c := range cases {
		if _, err := KaplanMartingaleSampleSizeSim(1000, c.altMean, c.alpha, 0.5, c.q, c.reps); !errors.Is(err, ErrInvalidSimulationParameters) {
			t.Errorf("case %+v: got %v, want ErrInvalidSimulationParameters", c, err)
		}
	}
}
