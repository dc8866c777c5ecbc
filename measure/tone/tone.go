package tone

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/oneknob/dsp/core"
	"github.com/cwbudde/oneknob/dsp/window"
)

const (
	minLength           = 16
	defaultMaxHarmonics = 9

	// hannLobeGain is the main-lobe amplitude gain of a periodic Hann window
	// per sample: |X[k-1]|²+|X[k]|²+|X[k+1]|² = A²N²·3/32 for an on-bin sine.
	hannLobeGain = 0.30618621784789724
)

var (
	// ErrLength is returned for signals that are not a power of two of at
	// least 16 samples.
	ErrLength = errors.New("tone: signal length must be a power of two >= 16")
	// ErrSampleRate is returned for non-positive or non-finite sample rates.
	ErrSampleRate = errors.New("tone: sample rate must be positive and finite")
	// ErrFrequency is returned when the fundamental does not fall strictly
	// between DC and Nyquist.
	ErrFrequency = errors.New("tone: frequency must be between DC and nyquist")
)

// Config selects the tone to measure.
type Config struct {
	SampleRate float64
	Frequency  float64
	// MaxHarmonics is the highest harmonic order included in THD. Zero selects 9.
	MaxHarmonics int
}

// Result holds the measured tone.
type Result struct {
	Frequency   float64   // bin-center frequency actually measured
	Amplitude   float64   // peak amplitude of the fundamental
	AmplitudeDB float64   // Amplitude in dBFS
	THD         float64   // harmonic amplitude sum (RSS) relative to the fundamental
	THDDB       float64   // THD in dB
	Harmonics   []float64 // relative amplitude of harmonics 2, 3, ...
}

// Analyze measures the fundamental and harmonic content of signal.
func Analyze(signal []float64, cfg Config) (Result, error) {
	n := len(signal)
	if n < minLength || n&(n-1) != 0 {
		return Result{}, ErrLength
	}
	if cfg.SampleRate <= 0 || math.IsNaN(cfg.SampleRate) || math.IsInf(cfg.SampleRate, 0) {
		return Result{}, ErrSampleRate
	}

	bins := n/2 + 1
	k := int(math.Round(cfg.Frequency * float64(n) / cfg.SampleRate))
	if k < 1 || k >= bins-1 {
		return Result{}, ErrFrequency
	}

	power, err := powerSpectrum(signal)
	if err != nil {
		return Result{}, err
	}

	fundamental := lobeAmplitude(power, k, n)
	res := Result{
		Frequency:   float64(k) * cfg.SampleRate / float64(n),
		Amplitude:   fundamental,
		AmplitudeDB: core.LinearToDB(fundamental),
	}

	maxHarmonics := cfg.MaxHarmonics
	if maxHarmonics <= 0 {
		maxHarmonics = defaultMaxHarmonics
	}

	sumSquares := 0.0
	for h := 2; h <= maxHarmonics && h*k < bins-1; h++ {
		a := lobeAmplitude(power, h*k, n)
		sumSquares += a * a
		if fundamental > 0 {
			res.Harmonics = append(res.Harmonics, a/fundamental)
		}
	}

	if fundamental > 0 {
		res.THD = math.Sqrt(sumSquares) / fundamental
	}
	res.THDDB = core.LinearToDB(res.THD)

	return res, nil
}

// BinFrequency returns the FFT bin-center frequency closest to freq for an
// n-point transform at sampleRate.
func BinFrequency(freq, sampleRate float64, n int) float64 {
	if n <= 0 || sampleRate <= 0 {
		return 0
	}

	binHz := sampleRate / float64(n)

	return math.Round(freq/binHz) * binHz
}

func powerSpectrum(signal []float64) ([]float64, error) {
	n := len(signal)

	windowed := make([]float64, n)
	copy(windowed, signal)
	window.Apply(window.TypeHann, windowed, window.WithPeriodic())

	in := make([]complex128, n)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("tone: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("tone: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return power, nil
}

func lobeAmplitude(power []float64, k, n int) float64 {
	sum := power[k]
	if k > 0 {
		sum += power[k-1]
	}
	if k+1 < len(power) {
		sum += power[k+1]
	}

	return math.Sqrt(sum) / (float64(n) * hannLobeGain)
}
