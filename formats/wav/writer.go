// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/g711"
)

const writeChunkSamples = 8192

// header describes a mono WAVE header. Non-PCM formats carry the cbSize
// field in fmt and a fact chunk holding the sample count.
type header struct {
	format     uint16
	sampleRate uint32
	bits       uint16
	samples    uint32
}

func (h header) dataSize() uint32 { return h.samples * uint32(h.bits/8) }

func (h header) appendTo(dst []byte) []byte {
	le := binary.LittleEndian
	blockAlign := h.bits / 8
	pcm := h.format == FormatPCM

	fmtSize := uint32(16)
	if !pcm {
		fmtSize = 18
	}

	riffSize := 4 + 8 + fmtSize + 8 + h.dataSize() + h.dataSize()%2
	if !pcm {
		riffSize += 8 + 4
	}

	dst = append(dst, "RIFF"...)
	dst = le.AppendUint32(dst, riffSize)
	dst = append(dst, "WAVE"...)

	dst = append(dst, "fmt "...)
	dst = le.AppendUint32(dst, fmtSize)
	dst = le.AppendUint16(dst, h.format)
	dst = le.AppendUint16(dst, 1)
	dst = le.AppendUint32(dst, h.sampleRate)
	dst = le.AppendUint32(dst, h.sampleRate*uint32(blockAlign))
	dst = le.AppendUint16(dst, blockAlign)
	dst = le.AppendUint16(dst, h.bits)

	if !pcm {
		dst = le.AppendUint16(dst, 0)
		dst = append(dst, "fact"...)
		dst = le.AppendUint32(dst, 4)
		dst = le.AppendUint32(dst, h.samples)
	}

	dst = append(dst, "data"...)

	return le.AppendUint32(dst, h.dataSize())
}

// WriteWAV16 writes samples as a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	h := header{format: FormatPCM, sampleRate: uint32(sampleRate), bits: 16, samples: uint32(len(samples))}

	if _, err := w.Write(h.appendTo(make([]byte, 0, 44))); err != nil {
		return fmt.Errorf("wav: write header: %w", err)
	}

	buf := make([]byte, 0, 2*min(len(samples), writeChunkSamples))
	for start := 0; start < len(samples); start += writeChunkSamples {
		buf = buf[:0]
		for _, s := range samples[start:min(start+writeChunkSamples, len(samples))] {
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("wav: write data: %w", err)
		}
	}

	return nil
}

// FormatTag returns the WAVE format tag for L, or 0 when L is not one of
// the G.711 laws.
func FormatTag[L g711.Law]() uint16 {
	var law L

	switch any(law).(type) {
	case g711.ALaw:
		return FormatALaw
	case g711.ULaw:
		return FormatULaw
	}

	return 0
}

// WriteG711 writes log, codes already compressed with L, as a mono 8-bit
// G.711 WAV at sampleRate.
func WriteG711[L g711.Law](w io.Writer, sampleRate int, log []byte) error {
	tag := FormatTag[L]()
	if tag == 0 {
		return ErrUnsupportedEncoding
	}

	h := header{format: tag, sampleRate: uint32(sampleRate), bits: 8, samples: uint32(len(log))}

	if _, err := w.Write(h.appendTo(make([]byte, 0, 58))); err != nil {
		return fmt.Errorf("wav: write header: %w", err)
	}

	if _, err := w.Write(log); err != nil {
		return fmt.Errorf("wav: write data: %w", err)
	}

	if len(log)%2 == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("wav: write pad: %w", err)
		}
	}

	return nil
}
