// SPDX-License-Identifier: EPL-2.0

// Package vorbis adapts github.com/jfreymuth/oggvorbis to audio.Source.
//
// oggvorbis decodes to interleaved float32 already, so ReadSamples fills
// the caller's buffer directly. Only whole frames are requested; a dst
// shorter than one frame reads nothing.
//
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	log, err := audio.CompressToMono[g711.ALaw](src, 8000, 4096)
package vorbis
