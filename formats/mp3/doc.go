// SPDX-License-Identifier: EPL-2.0

// Package mp3 adapts github.com/hajimehoshi/go-mp3 to audio.Source.
//
// go-mp3 always produces 16-bit stereo, so the Source reports two channels
// even for mono files; audio.MonoMixer or audio.CompressToMono folds them
// back down. Reads may stop mid-frame inside the decoder; incomplete frames
// are held back until the rest arrives.
package mp3
