//go:build fastmath

package dynamics

import "github.com/meko-christian/algo-approx"

const (
	// dbPerNeper is 20/ln(10): dB = dbPerNeper * ln(amplitude).
	dbPerNeper = 8.685889638065036553022565
	// neperPerDB is ln(10)/20.
	neperPerDB = 0.115129254649702284200899
)

// amplitudeToDB converts a positive linear amplitude to dB using a fast
// natural-log approximation.
func amplitudeToDB(x float64) float64 {
	return dbPerNeper * approx.FastLog(x)
}

// dbToAmplitude converts dB to linear amplitude using a fast exp approximation.
func dbToAmplitude(db float64) float64 {
	return approx.FastExp(db * neperPerDB)
}
