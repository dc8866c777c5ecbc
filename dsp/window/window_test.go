package window

import (
	"math"
	"testing"
)

func TestHannPeriodic(t *testing.T) {
	w := Generate(TypeHann, 8, WithPeriodic())
	if len(w) != 8 {
		t.Fatalf("len=%d want 8", len(w))
	}
	if math.Abs(w[0]) > 1e-15 {
		t.Fatalf("w[0]=%g want 0", w[0])
	}
	if math.Abs(w[4]-1) > 1e-15 {
		t.Fatalf("w[4]=%g want 1", w[4])
	}
	for i := 1; i < 4; i++ {
		if math.Abs(w[i]-w[8-i]) > 1e-15 {
			t.Fatalf("asymmetric at %d: %g vs %g", i, w[i], w[8-i])
		}
	}
}

func TestHannSymmetric(t *testing.T) {
	w := Generate(TypeHann, 9)
	if math.Abs(w[0]) > 1e-15 || math.Abs(w[8]) > 1e-15 {
		t.Fatalf("symmetric Hann should end on zero: %g %g", w[0], w[8])
	}
	if math.Abs(w[4]-1) > 1e-15 {
		t.Fatalf("w[4]=%g want 1", w[4])
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())
	if math.Abs(a[15]-b[15]) < 1e-12 {
		t.Fatal("expected different end coefficient for periodic form")
	}
}

func TestGenerateEdgeCases(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("zero length: got %v", got)
	}
	if got := Generate(TypeHann, 1); len(got) != 1 || got[0] != 0 {
		t.Fatalf("length 1: got %v", got)
	}
	for _, v := range Generate(TypeRectangular, 4, nil) {
		if v != 1 {
			t.Fatalf("rectangular coefficient %g want 1", v)
		}
	}
}

func TestApply(t *testing.T) {
	buf := []float64{2, 2, 2, 2}
	Apply(TypeHann, buf, WithPeriodic())

	want := Generate(TypeHann, 4, WithPeriodic())
	for i := range buf {
		if math.Abs(buf[i]-2*want[i]) > 1e-15 {
			t.Fatalf("buf[%d]=%g want %g", i, buf[i], 2*want[i])
		}
	}

	Apply(TypeHann, nil)
}

func TestHannValidates(t *testing.T) {
	if _, err := Hann(0); err == nil {
		t.Fatal("expected error for zero size")
	}
	if w, err := Hann(32, WithPeriodic()); err != nil || len(w) != 32 {
		t.Fatalf("Hann(32)=%d coeffs, err=%v", len(w), err)
	}
}

func TestCoherentGain(t *testing.T) {
	if g := CoherentGain(Generate(TypeHann, 1024, WithPeriodic())); math.Abs(g-0.5) > 1e-12 {
		t.Fatalf("periodic Hann coherent gain=%g want 0.5", g)
	}
	if g := CoherentGain(nil); g != 0 {
		t.Fatalf("empty coherent gain=%g want 0", g)
	}
}
