// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds synthetic audio.Source implementations for tests.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame index i.
type Waveform func(i, ch int) float32

// MockSource generates frames from a Waveform. It satisfies audio.Source
// structurally so the audio package can use it without an import cycle.
type MockSource struct {
	rate     int
	channels int
	frames   int
	pos      int
	wave     Waveform

	// Err, when set, is returned instead of io.EOF once the frames run out.
	Err    error
	closed bool
}

// NewMockSource returns a source of frames frames per channel.
func NewMockSource(rate, channels, frames int, wave Waveform) *MockSource {
	return &MockSource{rate: rate, channels: channels, frames: frames, wave: wave}
}

func NewSilentSource(rate, channels, frames int) *MockSource {
	return NewConstantSource(rate, channels, frames, 0)
}

func NewConstantSource(rate, channels, frames int, value float32) *MockSource {
	return NewMockSource(rate, channels, frames, func(int, int) float32 { return value })
}

// NewSineSource writes the same sine of freq Hz and unit amplitude to every
// channel.
func NewSineSource(rate, channels, frames int, freq float64) *MockSource {
	return NewMockSource(rate, channels, frames, func(i, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(i) / float64(rate)))
	})
}

// NewRampSource writes frame index i as i/frames on channel 0 and its
// negation on every other channel.
func NewRampSource(rate, channels, frames int) *MockSource {
	return NewMockSource(rate, channels, frames, func(i, ch int) float32 {
		v := float32(i) / float32(frames)
		if ch > 0 {
			return -v
		}

		return v
	})
}

func (m *MockSource) SampleRate() int { return m.rate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the source to frame 0.
func (m *MockSource) Reset() { m.pos = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	n := min(len(dst)/m.channels, m.frames-m.pos)

	for f := range n {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.wave(m.pos+f, ch)
		}
	}

	m.pos += n

	if m.pos < m.frames {
		return n * m.channels, nil
	}

	if m.Err != nil {
		return n * m.channels, m.Err
	}

	return n * m.channels, io.EOF
}
