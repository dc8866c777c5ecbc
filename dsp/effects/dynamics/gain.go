package dynamics

import "math"

// Mode selects which side of the threshold the gain curve acts on.
type Mode int

const (
	// ModeCompression reduces level above the threshold.
	ModeCompression Mode = iota
	// ModeExpansion reduces level below the threshold.
	ModeExpansion
)

// String returns a lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeCompression:
		return "compression"
	case ModeExpansion:
		return "expansion"
	default:
		return "unknown"
	}
}

// ComputeGain maps a detected level in dB to a gain in dB (zero or negative)
// using a quadratic soft knee of width kneeDB centered on thresholdDB.
//
// Compression leaves levels below the knee untouched and applies
// thresholdDB + (inputDB-thresholdDB)/ratio above it. Expansion mirrors this:
// untouched above the knee and thresholdDB + (inputDB-thresholdDB)*ratio below.
// Inside the knee both curves interpolate quadratically so value and slope are
// continuous at the knee edges. A kneeDB of zero or less selects a hard knee.
//
// ComputeGain is pure and safe to call from the audio thread.
func ComputeGain(inputDB, thresholdDB, ratio, kneeDB float64, mode Mode) float64 {
	if mode == ModeExpansion {
		return expansionGain(inputDB, thresholdDB, ratio, kneeDB)
	}

	return compressionGain(inputDB, thresholdDB, ratio, kneeDB)
}

func compressionGain(inputDB, thresholdDB, ratio, kneeDB float64) float64 {
	if kneeDB <= 0 {
		if inputDB <= thresholdDB {
			return 0
		}

		return (thresholdDB + (inputDB-thresholdDB)/ratio) - inputDB
	}

	halfKnee := kneeDB / 2

	switch {
	case inputDB < thresholdDB-halfKnee:
		return 0
	case inputDB > thresholdDB+halfKnee:
		return (thresholdDB + (inputDB-thresholdDB)/ratio) - inputDB
	default:
		x := inputDB - thresholdDB + halfKnee
		return ((1/ratio - 1) * x * x) / (2 * kneeDB)
	}
}

func expansionGain(inputDB, thresholdDB, ratio, kneeDB float64) float64 {
	if kneeDB <= 0 {
		if inputDB >= thresholdDB {
			return 0
		}

		return (thresholdDB + (inputDB-thresholdDB)*ratio) - inputDB
	}

	halfKnee := kneeDB / 2

	switch {
	case inputDB > thresholdDB+halfKnee:
		return 0
	case inputDB < thresholdDB-halfKnee:
		return (thresholdDB + (inputDB-thresholdDB)*ratio) - inputDB
	default:
		x := thresholdDB + halfKnee - inputDB
		return -((ratio - 1) * x * x) / (2 * kneeDB)
	}
}

// RatioForAmount returns the curve ratio driven by a control amount:
// 1 at the center, MaxRatio at either extreme.
func RatioForAmount(amount float32) float64 {
	return 1 + intensity(amount)*(MaxRatio-1)
}

// ModeForAmount returns ModeCompression for positive amounts and
// ModeExpansion otherwise.
func ModeForAmount(amount float32) Mode {
	if amount > 0 {
		return ModeCompression
	}

	return ModeExpansion
}

// BlendGain interpolates a full-strength linear gain toward unity by the
// control intensity |amount|.
func BlendGain(gain float64, amount float32) float64 {
	return 1 + (gain-1)*intensity(amount)
}

// StaticOutputDB returns the steady-state output level in dB for a constant
// detected level inputDB at the given amount. It is the transfer curve the
// engine converges to once the envelope has settled on inputDB.
func StaticOutputDB(inputDB float64, amount float32) float64 {
	amount = clampAmount(amount)
	if intensity(amount) < BypassThreshold {
		return inputDB
	}

	gainDB := ComputeGain(inputDB, ThresholdDB, RatioForAmount(amount), KneeDB, ModeForAmount(amount))
	gain := BlendGain(math.Pow(10, gainDB/20), amount)

	return inputDB + 20*math.Log10(gain)
}

func intensity(amount float32) float64 {
	return math.Abs(float64(amount))
}
