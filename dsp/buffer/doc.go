// Package buffer provides a reusable planar multi-channel float32 block.
// Block exposes its channels as [][]float32 so it can be handed directly to
// block processors, and converts to and from interleaved PCM for file and
// stream I/O without per-block allocation.
package buffer
