// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files carrying 16-bit PCM or G.711.
//
// Decoder parses the RIFF structure with github.com/go-audio/wav and
// accepts three encodings:
//
//	tag 1  16-bit linear PCM
//	tag 6  8-bit A-law
//	tag 7  8-bit μ-law
//
// G.711 payloads are expanded on the fly through audio.NewCompandedSource,
// so a telephony recording can feed the same pipeline as any other input.
//
// WriteWAV16 and WriteG711 stream a mono file to any io.Writer; they need
// no seeking because the sample count is known up front:
//
//	log := g711.Compress[g711.ULaw](pcm)
//	err := wav.WriteG711[g711.ULaw](f, 8000, log)
package wav
