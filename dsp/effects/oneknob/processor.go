package oneknob

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/oneknob/dsp/core"
	"github.com/cwbudde/oneknob/dsp/effects/dynamics"
)

// Processor wires host parameters to a dynamics engine.
type Processor struct {
	engine *dynamics.Engine

	amountBits atomic.Uint64
	bypass     atomic.Bool
}

// NewProcessor creates a processor prepared for sampleRate with the knob at
// AmountParam.Default and bypass off.
func NewProcessor(sampleRate float64) (*Processor, error) {
	engine, err := dynamics.NewEngine(sampleRate)
	if err != nil {
		return nil, err
	}

	p := &Processor{engine: engine}
	p.SetAmountPercent(AmountParam.Default)

	return p, nil
}

// Prepare reconfigures the engine for a new stream. Call it from the audio
// thread before the first ProcessBlock at a sample rate.
func (p *Processor) Prepare(sampleRate float64) {
	p.engine.Configure(sampleRate)
}

// SetAmountPercent stores the knob position after snapping it to AmountParam.
func (p *Processor) SetAmountPercent(percent float64) {
	p.amountBits.Store(math.Float64bits(AmountParam.Snap(percent)))
}

// AmountPercent returns the stored knob position in percent.
func (p *Processor) AmountPercent() float64 {
	return math.Float64frombits(p.amountBits.Load())
}

// SetBypass switches the host bypass.
func (p *Processor) SetBypass(bypassed bool) { p.bypass.Store(bypassed) }

// Bypassed reports whether the host bypass is on.
func (p *Processor) Bypassed() bool { return p.bypass.Load() }

// Engine returns the underlying engine for configuration queries and
// metering. ProcessBlock re-applies the stored knob position on every call,
// so an amount set directly on the engine only lasts until the next block;
// change the knob through SetAmountPercent.
func (p *Processor) Engine() *dynamics.Engine { return p.engine }

// ProcessBlock processes one host block in place. A bypassed processor leaves
// the block untouched and does not advance the engine.
func (p *Processor) ProcessBlock(channels [][]float32) {
	if p.bypass.Load() {
		return
	}

	p.engine.SetAmount(float32(p.AmountPercent() / 100))
	p.engine.Process(channels)
}

// SupportsLayout reports whether the processor accepts a bus layout with the
// given input and output channel counts: mono or stereo, input matching output.
func SupportsLayout(inputs, outputs int) bool {
	if outputs < 1 || outputs > core.MaxChannels {
		return false
	}

	return inputs == outputs
}
