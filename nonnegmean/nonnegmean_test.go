package nonnegmean

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestKaplanMarkov(t *testing.T) {
	p, err := KaplanMarkov([]float64{1, 1, 1, 1, 1}, 1.0/2, 0, true)
	if err != nil {
		t.Fatalf("KaplanMarkov: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(p, math.Pow(2, -5), 1e-12, 1e-12) {
		t.Errorf("p = %v, want 2**-5", p)
	}

	x := []float64{1, 1, 1, 1, 1, 0}
	p, err = KaplanMarkov(x, 1.0/2, 0.1, true)
	if err != nil {
		t.Fatalf("KaplanMarkov: %v", err)
	}
	want := math.Pow(1.1/0.6, -5)
	if !scalar.EqualWithinAbsOrRel(p, want, 1e-9, 1e-9) {
		t.Errorf("random order: p = %v, want %v", p, want)
	}

	p, err = KaplanMarkov(x, 1.0/2, 0.1, false)
	if err != nil {
		t.Fatalf("KaplanMarkov: %v", err)
	}
	want = math.Min(1, math.Pow(1.1/0.6, -5)*(0.6/0.1))
	if !scalar.EqualWithinAbsOrRel(p, want, 1e-9, 1e-9) {
		t.Errorf("fixed order: p = %v, want %v", p, want)
	}
}

func TestKaplanMarkovNegativeSample(t *testing.T) {
	if _, err := KaplanMarkov([]float64{1, -1}, 0.5, 0, true); !errors.Is(err, ErrNegativeSample) {
		t.Errorf("got %v, want ErrNegativeSample", err)
	}
}

func TestKaplanWald(t *testing.T) {
	p, err := KaplanWald([]float64{1, 1, 1, 1, 1}, 1.0/2, 0, true)
	if err != nil {
		t.Fatalf("KaplanWald: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(p, math.Pow(2, -5), 1e-12, 1e-12) {
		t.Errorf("p = %v, want 2**-5", p)
	}

	x := []float64{1, 1, 1, 1, 1, 0}
	p, err = KaplanWald(x, 1.0/2, 0.1, true)
	if err != nil {
		t.Fatalf("KaplanWald: %v", err)
	}
	want := math.Min(1, math.Pow(1.9, -5))
	if !scalar.EqualWithinAbsOrRel(p, want, 1e-9, 1e-9) {
		t.Errorf("random order: p = %v, want %v", p, want)
	}

	p, err = KaplanWald(x, 1.0/2, 0.1, false)
	if err != nil {
		t.Fatalf("KaplanWald: %v", err)
	}
	want = math.Min(1, math.Pow(1.9, -5)*10)
	if !scalar.EqualWithinAbsOrRel(p, want, 1e-9, 1e-9) {
		t.Errorf("fixed order: p = %v, want %v", p, want)
	}
}

func TestKaplanWaldInvalidPadding(t *testing.T) {
	if _, err := KaplanWald([]float64{1}, 0.5, -0.1, true); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("got %v, want ErrInvalidPadding", err)
	}
}

func TestAllTestsReturnPInUnitInterval(t *testing.T) {
	x := []float64{1, 0, 1, 1, 0, 1, 1, 1, 0, 1}
	if p, err := KaplanMarkov(x, 0.5, 0.1, true); err != nil || p < 0 || p > 1 {
		t.Errorf("KaplanMarkov out of range: p=%v err=%v", p, err)
	}
	if p, err := KaplanWald(x, 0.5, 0.1, true); err != nil || p < 0 || p > 1 {
		t.Errorf("KaplanWald out of range: p=%v err=%v", p, err)
	}
	if p, err := KaplanKolmogorov(x, float64(len(x)*10), 0.5, true); err != nil || p < 0 || p > 1 {
		t.Errorf("KaplanKolmogorov out of range: p=%v err=%v", p, err)
	}
	if p, err := WaldSPRT(x, math.Inf(1), 0.5, 0.6, true); err != nil || p < 0 || p > 1 {
		t.Errorf("WaldSPRT out of range: p=%v err=%v", p, err)
	}
	if p, _, err := KaplanMartingale(x, float64(len(x)*10), 0.5, true); err != nil || p < 0 || p > 1 {
		t.Errorf("KaplanMartingale out of range: p=%v err=%v", p, err)
	}
}

func TestOptionalStoppingRandomOrderNotWorseThanFixed(t *testing.T) {
	x := []float64{1, 1, 0, 1, 1, 1, 0, 1, 1, 1}
	pRandom, err := KaplanMarkov(x, 0.5, 0.1, true)
	if err != nil {
		t.Fatalf("KaplanMarkov random: %v", err)
	}
	pFixed, err := KaplanMarkov(x, 0.5, 0.1, false)
	if err != nil {
		t.Fatalf("KaplanMarkov fixed: %v", err)
	}
	if pRandom > pFixed+1e-12 {
		t.Errorf("random-order p (%v) should be <= fixed-order p (%v)", pRandom, pFixed)
	}
}
