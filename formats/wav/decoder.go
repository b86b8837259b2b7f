// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/g711"
	"github.com/ik5/g711/audio"
	"github.com/ik5/g711/utils"
)

// WAVE format tags understood by Decoder.
const (
	FormatPCM  uint16 = 1
	FormatALaw uint16 = 6
	FormatULaw uint16 = 7
)

type pcmSource struct {
	dec        *wav.Decoder
	buf        *goaudio.IntBuffer
	sampleRate int
	channels   int
	remaining  int // samples left in the data chunk
}

func (s *pcmSource) SampleRate() int { return s.sampleRate }
func (s *pcmSource) Channels() int   { return s.channels }
func (s *pcmSource) Close() error    { return nil }

func (s *pcmSource) ReadSamples(dst []float32) (int, error) {
	if s.remaining == 0 {
		return 0, io.EOF
	}

	want := min(len(dst)-len(dst)%s.channels, s.remaining)
	if want == 0 {
		return 0, nil
	}

	if cap(s.buf.Data) < want {
		s.buf.Data = make([]int, want)
	}

	s.buf.Data = s.buf.Data[:want]

	n, err := s.dec.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = utils.Int16ToFloat32(int16(v))
	}

	s.remaining -= n

	switch {
	case err != nil:
		return n, fmt.Errorf("wav: %w", err)
	case n == 0:
		// data chunk shorter than its header claims
		s.remaining = 0
		return 0, io.EOF
	case s.remaining == 0:
		return n, io.EOF
	}

	return n, nil
}

// Decoder reads 16-bit PCM, A-law and μ-law WAV files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("wav: read: %w", err)
		}

		rs = bytes.NewReader(data)
	}

	codes, err := g711DataLength(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()

	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrNotWavFile
	}

	switch dec.WavAudioFormat {
	case FormatPCM:
		if dec.BitDepth != 16 {
			return nil, ErrOnlyPCM16bitSupported
		}
	case FormatALaw, FormatULaw:
		if dec.BitDepth != 8 {
			return nil, fmt.Errorf("%w: %d-bit G.711", ErrUnsupportedEncoding, dec.BitDepth)
		}
	default:
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingDataChunk, err)
	}

	if dec.PCMChunk == nil {
		return nil, ErrMissingDataChunk
	}

	rate, channels := int(dec.SampleRate), int(dec.NumChans)
	if codes < 0 || codes > int64(dec.PCMChunk.Size) {
		codes = int64(dec.PCMChunk.Size)
	}

	data := io.LimitReader(dec.PCMChunk, codes)

	switch dec.WavAudioFormat {
	case FormatALaw:
		return audio.NewCompandedSource[g711.ALaw](data, rate, channels), nil
	case FormatULaw:
		return audio.NewCompandedSource[g711.ULaw](data, rate, channels), nil
	}

	return &pcmSource{
		dec:        dec,
		buf:        &goaudio.IntBuffer{Format: dec.Format(), SourceBitDepth: 16},
		sampleRate: rate,
		channels:   channels,
		remaining:  dec.PCMChunk.Size / 2,
	}, nil
}

// g711DataLength walks the RIFF chunks of rs and returns the number of
// data bytes that hold samples: the data chunk's declared size, lowered to
// the fact chunk's per-channel sample count times the fmt channel count
// when a fact chunk precedes it. The pad byte after an odd-sized chunk is
// never counted. It returns -1 when no data chunk header is found. rs is
// left at the position it had on entry.
func g711DataLength(rs io.ReadSeeker) (n int64, err error) {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}

	defer func() {
		if _, serr := rs.Seek(start, io.SeekStart); serr != nil && err == nil {
			err = serr
		}
	}()

	var hdr [12]byte
	if _, err := io.ReadFull(rs, hdr[:]); err != nil || string(hdr[8:12]) != "WAVE" {
		// let the WAV decoder report the malformed header
		return -1, nil
	}

	fact, channels := int64(-1), int64(1)

	for {
		if _, err := io.ReadFull(rs, hdr[:8]); err != nil {
			return -1, nil
		}

		id, size := string(hdr[:4]), int64(binary.LittleEndian.Uint32(hdr[4:8]))

		switch id {
		case "fmt ":
			if size >= 4 {
				if _, err := io.ReadFull(rs, hdr[8:12]); err != nil {
					return -1, nil
				}

				channels = max(int64(binary.LittleEndian.Uint16(hdr[10:12])), 1)
				size -= 4
			}
		case "data":
			if fact >= 0 && fact < size {
				return fact, nil
			}

			return size, nil
		case "fact":
			if size >= 4 {
				if _, err := io.ReadFull(rs, hdr[8:12]); err != nil {
					return -1, nil
				}

				fact = int64(binary.LittleEndian.Uint32(hdr[8:12])) * channels
				size -= 4
			}
		}

		if _, err := rs.Seek(size+size%2, io.SeekCurrent); err != nil {
			return 0, err
		}
	}
}
