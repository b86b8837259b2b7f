// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/g711/audio"
	"github.com/ik5/g711/utils"
)

// go-mp3 always yields interleaved stereo, 16-bit little endian.
const (
	channels   = 2
	frameBytes = channels * 2
)

type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec    pcmReader
	closer io.Closer
	buf    []byte
	carry  int // bytes of an incomplete frame kept at the front of buf
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	need := (len(dst) / channels) * frameBytes
	if need == 0 {
		return 0, nil
	}

	if cap(s.buf) < need {
		grown := make([]byte, need)
		copy(grown, s.buf[:s.carry])
		s.buf = grown
	}

	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.carry:])
	total := s.carry + n
	whole := total - total%frameBytes

	for i := 0; i < whole; i += 2 {
		dst[i/2] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.buf[i:])))
	}

	s.carry = copy(s.buf, s.buf[whole:total])

	if err != nil && err != io.EOF {
		return whole / 2, fmt.Errorf("mp3: %w", err)
	}

	return whole / 2, err
}

// Decoder reads MPEG-1/2 Layer III streams.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	s := &source{dec: dec}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}

	return s, nil
}
