// SPDX-License-Identifier: EPL-2.0

// Package g711 implements the ITU-T G.711 μ-law and A-law companding rules.
//
// Both laws map 16-bit linear PCM samples to 8-bit codes and back. The
// conversions are bit-exact with the ITU-T G.191 reference routines across the
// whole int16 and uint8 domains, so encoded audio interoperates with any
// standards-compliant telephony stack.
//
// # Scalar API
//
// Four total functions form the standards-mandated surface:
//
//	code := g711.CompressULaw(sample)
//	sample = g711.ExpandULaw(code)
//
//	code = g711.CompressALaw(sample)
//	sample = g711.ExpandALaw(code)
//
// # Buffers
//
// The law is picked with a type parameter, ULaw or ALaw. The same generic
// functions then drive slices, fixed-size arrays (through arr[:]) and
// growable slices:
//
//	pcm := []int16{0, 1000, -1000}
//	frame := make([]byte, len(pcm))
//	n := g711.CompressBuf[g711.ALaw](pcm, frame) // n == 3
//
//	codes := g711.Compress[g711.ULaw](pcm)              // new slice
//	codes = g711.AppendCompressed[g711.ULaw](codes, pcm) // grows by len(pcm)
//
// Buffer conversions process min(len(src), len(dst)) samples and return that
// count. Nothing past it is read or written, and a short destination is not
// an error.
//
// # Streams
//
// WriteCompressed, ReadCompressed, ReadFullCompressed and ReadAllCompressed
// move companded bytes through io.Writer and io.Reader. Writer and Reader do
// the same with a reused scratch buffer. Errors from the underlying stream
// are returned unchanged, so io.EOF can be compared directly.
//
// # Concurrency
//
// Nothing in this package keeps shared state. Every function may be called
// from any number of goroutines. A Writer or Reader value belongs to a
// single goroutine.
//
// The audio and formats subpackages build a transcoding pipeline on top of
// this package. Use it to turn WAV, MP3, Ogg Vorbis or AIFF prompts into
// 8 kHz mono G.711.
package g711
