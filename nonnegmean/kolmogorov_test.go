package nonnegmean

import (
	"errors"
	"math"
	"testing"
)

func TestKaplanKolmogorovPopulationOverrun(t *testing.T) {
	cases := []struct {
		x []float64
		n float64
	}{
		{[]float64{1, 1, 1}, 2},
		{[]float64{1}, -1},
		{[]float64{1}, 2.5},
	}
	for _, c := range cases {
		if _, err := KaplanKolmogorov(c.x, c.n, 0.5, true); !errors.Is(err, ErrPopulationOverrun) {
			t.Errorf("x=%v n=%v: got %v, want ErrPopulationOverrun", c.x, c.n, err)
		}
	}
}

func TestKaplanKolmogorovSingleElement(t *testing.T) {
	p, err := KaplanKolmogorov([]float64{1}, 10, 0.5, true)
	if err != nil {
		t.Fatalf("KaplanKolmogorov: %v", err)
	}
	// mart = x[0]/t = 1/0.5 = 2, so p = 1/mart = 0.5.
	if want := 0.5; math.Abs(p-want) > 1e-12 {
		t.Errorf("p = %v, want %v", p, want)
	}
}

func TestKaplanKolmogorovOverrunDrivesPToZero(t *testing.T) {
	// Once the running total makes the denominator nonpositive (here at the
	// third draw, since t - 10/3 < 0), the martingale is set to +Inf and
	// that value also becomes the running maximum, so p is 0 in either
	// order.
	x := []float64{10, 10, 10}
	pRandom, err := KaplanKolmogorov(x, 3, 0.5, true)
	if err != nil {
		t.Fatalf("KaplanKolmogorov: %v", err)
	}
	pFixed, err := KaplanKolmogorov(x, 3, 0.5, false)
	if err != nil {
		t.Fatalf("KaplanKolmogorov: %v", err)
	}
	if pRandom != 0 {
		t.Errorf("pRandom = %v, want 0 (martingale blew up to +Inf)", pRandom)
	}
	if pFixed != 0 {
		t.Errorf("pFixed = %v, want 0", pFixed)
	}
}
