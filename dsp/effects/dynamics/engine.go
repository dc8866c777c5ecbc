package dynamics

import (
	"fmt"
	"math"
)

const (
	// ThresholdDB is the fixed curve threshold.
	ThresholdDB = -20.0
	// KneeDB is the fixed soft-knee width centered on ThresholdDB.
	KneeDB = 6.0
	// AttackMs is the envelope rise time constant.
	AttackMs = 10.0
	// ReleaseMs is the envelope fall time constant.
	ReleaseMs = 100.0
	// MaxRatio is the curve ratio at |amount| = 1.
	MaxRatio = 8.0
	// BypassThreshold is the |amount| below which Process leaves blocks untouched.
	BypassThreshold = 0.001
	// MaxChannels is the number of independently tracked channels.
	MaxChannels = 2

	// envelopeFloor keeps the dB conversion finite on digital silence.
	envelopeFloor = 1e-10
	// denormalFloor flushes a decaying envelope to zero before it reaches the
	// subnormal range, where the release multiply no longer shrinks it.
	denormalFloor = 1e-30
)

type channelState struct {
	envelope float64
}

// Engine is a single-knob dynamics processor. A negative amount expands,
// a positive amount compresses, and the magnitude sets the intensity; the
// center of the range is a bypass.
//
// Each channel has its own peak envelope follower with fixed attack and
// release times feeding a soft-knee gain curve at a fixed threshold. There is
// no stereo linking.
//
// Configure and Process must be called from the audio thread. SetAmount and
// Amount may be called from any goroutine concurrently with Process.
type Engine struct {
	sampleRate   float64
	attackCoeff  float64
	releaseCoeff float64

	channels [MaxChannels]channelState

	amount atomicAmount
}

// NewEngine creates an engine configured for sampleRate with the knob centered.
//
// Sample rate must be positive and finite.
func NewEngine(sampleRate float64) (*Engine, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("dynamics engine sample rate must be positive and finite: %f", sampleRate)
	}

	e := &Engine{}
	e.Configure(sampleRate)

	return e, nil
}

// Configure stores the sample rate, clears both channel envelopes and derives
// the attack and release coefficients. It can be called again at any time,
// for example when the host restarts the stream at a new rate.
//
// The sample rate is not validated; a non-positive value yields degenerate
// coefficients.
func (e *Engine) Configure(sampleRate float64) {
	e.sampleRate = sampleRate
	e.attackCoeff = TimeConstantCoeff(AttackMs, sampleRate)
	e.releaseCoeff = TimeConstantCoeff(ReleaseMs, sampleRate)

	for i := range e.channels {
		e.channels[i] = channelState{}
	}
}

// SetAmount sets the control value, clamped to [-1, 1]. It does not touch
// envelope state.
func (e *Engine) SetAmount(amount float32) {
	e.amount.Store(clampAmount(amount))
}

// Amount returns the current control value.
func (e *Engine) Amount() float32 { return e.amount.Load() }

// SampleRate returns the configured sample rate in Hz.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// AttackCoeff returns the envelope coefficient used while the level rises.
func (e *Engine) AttackCoeff() float64 { return e.attackCoeff }

// ReleaseCoeff returns the envelope coefficient used while the level falls.
func (e *Engine) ReleaseCoeff() float64 { return e.releaseCoeff }

// Envelope returns the tracked linear peak level of channel ch, or 0 for a
// channel outside [0, MaxChannels). Only safe on the audio thread.
func (e *Engine) Envelope(ch int) float64 {
	if ch < 0 || ch >= MaxChannels {
		return 0
	}

	return e.channels[ch].envelope
}

// Process applies the current amount to channels in place. The sample count is
// len(channels[0]); channels beyond MaxChannels are left untouched, and a mono
// block only advances the first envelope.
//
// Process does not allocate, lock or block.
func (e *Engine) Process(channels [][]float32) {
	amount := e.amount.Load()

	level := intensity(amount)
	if level < BypassThreshold || len(channels) == 0 {
		return
	}

	ratio := RatioForAmount(amount)
	mode := ModeForAmount(amount)
	n := len(channels[0])

	for ch := 0; ch < len(channels) && ch < MaxChannels; ch++ {
		samples := channels[ch]
		if len(samples) > n {
			samples = samples[:n]
		}

		e.processChannel(&e.channels[ch], samples, ratio, level, mode)
	}
}

func (e *Engine) processChannel(st *channelState, samples []float32, ratio, level float64, mode Mode) {
	attack := e.attackCoeff
	release := e.releaseCoeff
	env := st.envelope

	for i, x := range samples {
		peak := math.Abs(float64(x))

		coeff := release
		if peak > env {
			coeff = attack
		}

		env = coeff*env + (1-coeff)*peak
		if env < denormalFloor {
			env = 0
		}

		gainDB := ComputeGain(amplitudeToDB(env+envelopeFloor), ThresholdDB, ratio, KneeDB, mode)
		gain := 1 + (dbToAmplitude(gainDB)-1)*level

		samples[i] = float32(float64(x) * gain)
	}

	st.envelope = env
}

// TimeConstantCoeff returns the one-pole smoothing coefficient
// exp(-1 / (sampleRate * ms/1000)) for a time constant in milliseconds.
func TimeConstantCoeff(ms, sampleRate float64) float64 {
	return math.Exp(-1 / (sampleRate * ms / 1000))
}
