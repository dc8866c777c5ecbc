// Package tone measures the level and harmonic distortion of a steady sine
// in a block of samples.
//
// Analyze applies a periodic Hann window, takes one forward FFT and reads the
// fundamental and its harmonics from the window's three-bin main lobe. Tones
// should sit on a bin center (see BinFrequency) so no energy leaks past the
// lobe; the dynamics tests and the analyze command generate their probes that
// way.
package tone
