// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/g711/utils"
)

const (
	resamplerChunkFrames = 1024
	maxEmptyReads        = 100
)

// Resampler converts a Source to another sample rate with Catmull-Rom
// interpolation, keeping the channel count. When downsampling, every input
// frame first passes a one-pole low-pass filter with its cutoff at the
// output Nyquist frequency.
type Resampler struct {
	src      Source
	rate     int
	channels int
	step     float64 // source frames consumed per output frame

	// window holds frames t-1, t, t+1 and t+2; output is interpolated
	// between window[1] and window[2] at fraction pos.
	window [4][]float32
	live   [4]bool
	pos    float64
	primed bool

	chunk  []float32
	cursor int
	avail  int
	srcErr error

	alpha   float32
	lowPass []float32
	seeded  bool
}

// NewResampler wraps src so that it is read at dstRate.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}

	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	r := &Resampler{
		src:      src,
		rate:     dstRate,
		channels: channels,
		step:     float64(src.SampleRate()) / float64(dstRate),
		chunk:    make([]float32, resamplerChunkFrames*channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	if r.step > 1 {
		cutoff := float64(dstRate) / 2
		r.alpha = float32(1 - math.Exp(-2*math.Pi*cutoff/float64(src.SampleRate())))
		r.lowPass = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("resampler: %w", err)
	}

	return nil
}

// readFrame copies the next source frame into dst. It returns false once
// the source is drained; r.srcErr then holds the reason.
func (r *Resampler) readFrame(dst []float32) bool {
	for empty := 0; r.cursor >= r.avail; empty++ {
		if r.srcErr != nil {
			return false
		}

		if empty == maxEmptyReads {
			r.srcErr = io.ErrNoProgress
			return false
		}

		n, err := r.src.ReadSamples(r.chunk)
		r.cursor, r.avail, r.srcErr = 0, n-n%r.channels, err
	}

	copy(dst, r.chunk[r.cursor:r.cursor+r.channels])
	r.cursor += r.channels

	if r.lowPass == nil {
		return true
	}

	if !r.seeded {
		// Start the filter settled on the first frame.
		copy(r.lowPass, dst)
		r.seeded = true
	}

	for c := range dst {
		r.lowPass[c] += r.alpha * (dst[c] - r.lowPass[c])
		dst[c] = r.lowPass[c]
	}

	return true
}

// pull loads window[i], repeating window[i-1] when the source is drained.
func (r *Resampler) pull(i int) {
	r.live[i] = r.readFrame(r.window[i])
	if !r.live[i] {
		copy(r.window[i], r.window[i-1])
	}
}

func (r *Resampler) prime() bool {
	r.primed = true

	if r.live[1] = r.readFrame(r.window[1]); !r.live[1] {
		return false
	}

	copy(r.window[0], r.window[1])
	r.live[0] = true
	r.pull(2)
	r.pull(3)

	return true
}

func (r *Resampler) advance() {
	r.window[0], r.window[1], r.window[2], r.window[3] = r.window[1], r.window[2], r.window[3], r.window[0]
	r.live[0], r.live[1], r.live[2] = r.live[1], r.live[2], r.live[3]
	r.pull(3)
}

// ReadSamples fills dst with frames at the output rate. len(dst) must be a
// multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed && !r.prime() {
		return 0, r.finish()
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1 {
			r.pos--
			r.advance()
		}

		if !r.live[1] {
			return written, r.finish()
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written += r.channels
		r.pos += r.step
	}

	return written, nil
}

func (r *Resampler) finish() error {
	if r.srcErr == nil || r.srcErr == io.EOF {
		return io.EOF
	}

	return fmt.Errorf("resampler: %w", r.srcErr)
}
