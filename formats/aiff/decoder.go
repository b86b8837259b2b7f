// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/g711/audio"
)

type intReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        intReader
	sampleRate int
	channels   int
	scale      float32 // 1 / full scale for the file's bit depth
	buf        goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < whole {
		s.buf.Data = make([]int, whole)
	}

	s.buf.Data = s.buf.Data[:whole]

	n, err := s.dec.PCMBuffer(&s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = float32(v) * s.scale
	}

	switch {
	case err != nil && err != io.EOF:
		return n, fmt.Errorf("aiff: %w", err)
	case n == 0:
		return 0, io.EOF
	}

	return n, err
}

// Decoder reads uncompressed 8, 16, 24 and 32-bit AIFF files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("aiff: read: %w", err)
		}

		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels == 0 {
		return nil, ErrMissingFormat
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		scale:      1 / float32(int64(1)<<(dec.BitDepth-1)),
		buf:        goaudio.IntBuffer{Format: format, SourceBitDepth: int(dec.BitDepth)},
	}, nil
}
