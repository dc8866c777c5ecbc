package core

import "testing"

func TestFloatConversionRoundTrip(t *testing.T) {
	src := []float64{-1, -0.25, 0, 0.5, 1}
	narrow := make([]float32, len(src))
	if n := ToFloat32(narrow, src); n != len(src) {
		t.Fatalf("ToFloat32 n = %d, want %d", n, len(src))
	}

	wide := make([]float64, len(src))
	if n := ToFloat64(wide, narrow); n != len(src) {
		t.Fatalf("ToFloat64 n = %d, want %d", n, len(src))
	}

	for i := range src {
		if wide[i] != src[i] {
			t.Fatalf("index %d: got %v, want %v", i, wide[i], src[i])
		}
	}
}

func TestFloatConversionShortDestination(t *testing.T) {
	dst := make([]float32, 2)
	if n := ToFloat32(dst, []float64{1, 2, 3}); n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
}
