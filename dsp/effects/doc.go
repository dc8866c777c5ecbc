// Package effects groups the effect kernels of oneknob.
//
// Subpackages:
//   - github.com/cwbudde/oneknob/dsp/effects/dynamics: the single-knob
//     compressor/expander engine and its static transfer curve.
//   - github.com/cwbudde/oneknob/dsp/effects/oneknob: host-facing parameter
//     normalization and bypass around the engine.
//
// Kernels never allocate, block or log on their processing path.
package effects
