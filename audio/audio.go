// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Source is a pull-based stream of interleaved float32 samples in [-1, 1].
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels per frame (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples and returns the number
	// of float32 values written, not frames. A stream is finished once it
	// returns io.EOF; n may be non-zero on that last call.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases the underlying input.
	Close() error
}

// Decoder opens an encoded container as a Source.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}
