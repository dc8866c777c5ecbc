package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/oneknob/dsp/core"
)

func TestSine(t *testing.T) {
	g := NewGenerator([]core.ProcessorOption{core.WithSampleRate(48000)})
	s, err := g.Sine(1000, 0.5, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	// quarter period of 1 kHz at 48 kHz is 12 samples
	if math.Abs(float64(s[12])-0.5) > 1e-6 {
		t.Fatalf("s[12] = %v, want 0.5", s[12])
	}
}

func TestSineValidation(t *testing.T) {
	g := NewGenerator([]core.ProcessorOption{core.WithSampleRate(1000)})
	if _, err := g.Sine(100, 1, 0); err == nil {
		t.Fatal("expected error for zero length")
	}
	if _, err := g.Sine(600, 1, 8); err == nil {
		t.Fatal("expected error above nyquist")
	}
	if _, err := g.Sine(-1, 1, 8); err == nil {
		t.Fatal("expected error for negative frequency")
	}
}

func TestStep(t *testing.T) {
	g := NewGenerator(nil)
	s, err := g.Step(0.5, 3, 6)
	if err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	want := []float32{0, 0, 0, 0.5, 0.5, 0.5}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("s[%d] = %v, want %v", i, s[i], want[i])
		}
	}

	if _, err := g.Step(1, 7, 6); err == nil {
		t.Fatal("expected error for silence longer than signal")
	}
	if _, err := g.Step(1, -1, 6); err == nil {
		t.Fatal("expected error for negative silence")
	}
	if _, err := g.Step(1, 0, 0); err == nil {
		t.Fatal("expected error for zero length")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(nil, WithSeed(42))
	g2 := NewGenerator(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, _ := g2.WhiteNoise(1, 16)

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		if n1[i] < -1 || n1[i] > 1 {
			t.Fatalf("noise sample %d = %v out of range", i, n1[i])
		}
	}

	if _, err := g1.WhiteNoise(-1, 4); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestConfig(t *testing.T) {
	g := NewGenerator([]core.ProcessorOption{core.WithSampleRate(44100), core.WithChannels(1)})
	if cfg := g.Config(); cfg.SampleRate != 44100 || cfg.Channels != 1 {
		t.Fatalf("Config() = %+v", cfg)
	}
}
