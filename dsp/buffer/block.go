package buffer

// Block holds planar float32 audio: one slice per channel, all with the same
// frame count, carved from a single backing allocation.
type Block struct {
	data      []float32
	views     [][]float32
	frames    int
	capFrames int
}

// NewBlock returns a zero-filled block. Negative sizes are treated as zero.
func NewBlock(channels, frames int) *Block {
	if channels < 0 {
		channels = 0
	}
	if frames < 0 {
		frames = 0
	}

	b := &Block{
		data:      make([]float32, channels*frames),
		views:     make([][]float32, channels),
		frames:    frames,
		capFrames: frames,
	}
	b.rebuildViews()

	return b
}

// NumChannels returns the number of channels.
func (b *Block) NumChannels() int { return len(b.views) }

// NumFrames returns the number of frames per channel.
func (b *Block) NumFrames() int { return b.frames }

// CapFrames returns how many frames fit without reallocating.
func (b *Block) CapFrames() int { return b.capFrames }

// Channel returns the samples of channel i. It panics if i is out of range.
func (b *Block) Channel(i int) []float32 { return b.views[i] }

// Channels returns all channel slices. The outer slice is owned by the block
// and stays valid until the next Resize.
func (b *Block) Channels() [][]float32 { return b.views }

// Resize sets the frame count, reusing capacity when possible. Samples beyond
// the previous frame count are zeroed.
func (b *Block) Resize(frames int) {
	if frames < 0 {
		frames = 0
	}

	oldFrames := b.frames
	if frames > b.capFrames {
		grown := make([]float32, len(b.views)*frames)
		for ch := range b.views {
			copy(grown[ch*frames:], b.views[ch])
		}
		b.data = grown
		b.capFrames = frames
	}

	b.frames = frames
	b.rebuildViews()

	for ch := range b.views {
		clear(b.views[ch][min(oldFrames, frames):])
	}
}

// Zero sets all samples to 0.
func (b *Block) Zero() {
	for ch := range b.views {
		clear(b.views[ch])
	}
}

// Deinterleave resizes the block to len(src)/NumChannels frames and copies
// interleaved samples into it. A trailing partial frame is dropped. It
// returns the number of frames read.
func (b *Block) Deinterleave(src []float32) int {
	channels := len(b.views)
	if channels == 0 {
		return 0
	}

	frames := len(src) / channels
	b.Resize(frames)

	for ch, dst := range b.views {
		for i := range dst {
			dst[i] = src[i*channels+ch]
		}
	}

	return frames
}

// Interleave writes the block into dst as interleaved samples and returns the
// number of frames written, limited by len(dst)/NumChannels.
func (b *Block) Interleave(dst []float32) int {
	channels := len(b.views)
	if channels == 0 {
		return 0
	}

	frames := min(b.frames, len(dst)/channels)
	for ch, src := range b.views {
		for i := range frames {
			dst[i*channels+ch] = src[i]
		}
	}

	return frames
}

func (b *Block) rebuildViews() {
	for ch := range b.views {
		start := ch * b.capFrames
		b.views[ch] = b.data[start : start+b.frames : start+b.capFrames]
	}
}
