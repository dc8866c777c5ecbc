// Package oneknob adapts the dynamics engine to a host's processing callback.
//
// A host owns two parameters: an amount in percent (-100 full expansion,
// 0 bypass, +100 full compression) and a bypass switch. Processor stores both
// atomically so UI and automation goroutines can write them while the audio
// thread calls ProcessBlock.
package oneknob
