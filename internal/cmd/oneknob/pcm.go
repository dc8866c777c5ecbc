package oneknob

import (
	"encoding/binary"
	"math"
)

const bytesPerSample = 4

// decodeFloat32LE fills dst from little-endian IEEE 754 samples in src and
// returns the number of samples decoded.
func decodeFloat32LE(dst []float32, src []byte) int {
	n := min(len(dst), len(src)/bytesPerSample)
	for i := range n {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*bytesPerSample:]))
	}
	return n
}

// encodeFloat32LE writes src into dst as little-endian IEEE 754 samples and
// returns the number of bytes written.
func encodeFloat32LE(dst []byte, src []float32) int {
	n := min(len(src), len(dst)/bytesPerSample)
	for i := range n {
		binary.LittleEndian.PutUint32(dst[i*bytesPerSample:], math.Float32bits(src[i]))
	}
	return n * bytesPerSample
}
