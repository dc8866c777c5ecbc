package oneknob

import (
	"fmt"
	"math"
)

// Param describes a host-visible parameter.
type Param struct {
	ID      string
	Name    string
	Min     float64
	Max     float64
	Step    float64
	Default float64
	Unit    string
}

// AmountParam is the main knob, in percent.
var AmountParam = Param{
	ID:      "amount",
	Name:    "Amount",
	Min:     -100,
	Max:     100,
	Step:    0.1,
	Default: 0,
	Unit:    "%",
}

// BypassParam is the bypass switch; values above 0.5 mean bypassed.
var BypassParam = Param{
	ID:      "bypass",
	Name:    "Bypass",
	Min:     0,
	Max:     1,
	Step:    1,
	Default: 0,
}

// Snap clamps v to the parameter range and rounds it to the nearest step.
// Fractional steps that divide one unit (0.1, 0.25, ...) round in whole step
// units, so the result is the closest float64 to the grid value; other steps
// are measured from Min. NaN snaps to Default.
func (p Param) Snap(v float64) float64 {
	if math.IsNaN(v) {
		return p.Default
	}

	v = math.Min(math.Max(v, p.Min), p.Max)
	if p.Step > 0 {
		if perUnit := math.Round(1 / p.Step); p.Step < 1 && perUnit > 0 {
			v = math.Round(v*perUnit) / perUnit
		} else {
			v = p.Min + math.Round((v-p.Min)/p.Step)*p.Step
		}
		v = math.Min(math.Max(v, p.Min), p.Max)
	}

	return v
}

// FormatAmount renders an amount in percent the way the knob readout shows it.
func FormatAmount(percent float64) string {
	switch {
	case math.Abs(percent) < 1:
		return "BYPASS"
	case percent < 0:
		return fmt.Sprintf("EXPAND %.0f%%", math.Abs(percent))
	default:
		return fmt.Sprintf("COMPRESS %.0f%%", percent)
	}
}
