package dynamics

import (
	"fmt"
	"testing"
)

func BenchmarkEngineProcess(b *testing.B) {
	for _, size := range []int{64, 256, 1024} {
		for _, channels := range []int{1, 2} {
			b.Run(fmt.Sprintf("ch%d_%d", channels, size), func(b *testing.B) {
				e, _ := NewEngine(48000)
				e.SetAmount(0.75)

				block := make([][]float32, channels)
				for ch := range block {
					block[ch] = make([]float32, size)
					for i := range block[ch] {
						block[ch][i] = 0.5
					}
				}

				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					e.Process(block)
				}
			})
		}
	}
}

// BenchmarkEngineProcessAfterSilence measures blocks of silence once the
// envelope has fully decayed.
func BenchmarkEngineProcessAfterSilence(b *testing.B) {
	e, _ := NewEngine(48000)
	e.SetAmount(0.5)
	e.Process([][]float32{{0.5, 0.5, 0.5, 0.5}})

	block := [][]float32{make([]float32, 512)}
	for range 90 * 48000 / 512 {
		e.Process(block)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Process(block)
	}
}

func BenchmarkComputeGain(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += ComputeGain(-18.5, ThresholdDB, 4, KneeDB, ModeCompression)
	}
	_ = sink
}
