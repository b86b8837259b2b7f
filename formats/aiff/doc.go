// SPDX-License-Identifier: EPL-2.0

// Package aiff adapts github.com/go-audio/aiff to audio.Source.
//
// Integer PCM of 8, 16, 24 or 32 bits is scaled to [-1, 1] by its full
// scale. go-audio needs an io.ReadSeeker; other readers are buffered in
// memory first.
package aiff
