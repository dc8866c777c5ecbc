//go:build !fastmath

package dynamics

import "math"

// amplitudeToDB converts a positive linear amplitude to dB.
func amplitudeToDB(x float64) float64 {
	return 20 * math.Log10(x)
}

// dbToAmplitude converts dB to linear amplitude.
func dbToAmplitude(db float64) float64 {
	return math.Pow(10, db/20)
}
