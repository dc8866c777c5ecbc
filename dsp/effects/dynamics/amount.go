package dynamics

import (
	"math"
	"sync/atomic"
)

// atomicAmount is a float32 control value shared between a control goroutine
// and the audio thread. Loads and stores are single atomic word operations.
type atomicAmount struct {
	bits atomic.Uint32
}

func (a *atomicAmount) Load() float32 {
	return math.Float32frombits(a.bits.Load())
}

func (a *atomicAmount) Store(v float32) {
	a.bits.Store(math.Float32bits(v))
}

// clampAmount limits v to [-1, 1]. NaN maps to 0.
func clampAmount(v float32) float32 {
	switch {
	case math.IsNaN(float64(v)):
		return 0
	case v < -1:
		return -1
	case v > 1:
		return 1
	default:
		return v
	}
}
