package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic float32 sine wave starting at phase 0.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Clone returns a copy of each channel.
func Clone(channels [][]float32) [][]float32 {
	out := make([][]float32, len(channels))
	for i, ch := range channels {
		out[i] = append([]float32(nil), ch...)
	}
	return out
}
