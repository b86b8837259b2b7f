// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/g711"
	"github.com/ik5/g711/utils"
)

type compandedSource[L g711.Law] struct {
	r        *g711.Reader[L]
	closer   io.Closer
	rate     int
	channels int
	pcm      []int16
}

// NewCompandedSource exposes a raw G.711 byte stream, one code per sample
// and channels interleaved, as a Source. If r is an io.Closer it is closed
// by the returned Source's Close.
//
// A trailing partial frame at the end of r is dropped.
func NewCompandedSource[L g711.Law](r io.Reader, sampleRate, channels int) Source {
	s := &compandedSource[L]{
		r:        g711.NewReader[L](r),
		rate:     sampleRate,
		channels: max(channels, 1),
	}

	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}

	return s
}

func (s *compandedSource[L]) SampleRate() int { return s.rate }
func (s *compandedSource[L]) Channels() int   { return s.channels }

func (s *compandedSource[L]) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

func (s *compandedSource[L]) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if cap(s.pcm) < len(dst) {
		s.pcm = make([]int16, len(dst))
	}

	pcm := s.pcm[:len(dst)]

	n, err := s.r.ReadSamples(pcm)
	for empty := 0; n%s.channels != 0 && err == nil; {
		var m int
		m, err = s.r.ReadSamples(pcm[n : n+s.channels-n%s.channels])
		n += m

		if m > 0 {
			empty = 0
			continue
		}

		if empty++; empty == maxEmptyReads {
			err = io.ErrNoProgress
		}
	}

	n -= n % s.channels
	for i, v := range pcm[:n] {
		dst[i] = utils.Int16ToFloat32(v)
	}

	return n, err
}
