// Package dynamics implements a single-knob dynamics engine.
//
// One control value in [-1, 1] selects between downward expansion (negative),
// bypass (zero) and compression (positive), with the magnitude setting both
// the curve ratio (1:1 to 8:1) and how strongly the resulting gain is blended
// in. Threshold, knee and envelope time constants are fixed:
//   - Threshold: -20 dB
//   - Knee: 6 dB, quadratic
//   - Attack: 10 ms
//   - Release: 100 ms
//
// The processing path is real-time safe: Engine.Process performs no
// allocation, locking or I/O. Build with the fastmath tag to replace the
// per-sample dB conversions with algo-approx approximations.
package dynamics
