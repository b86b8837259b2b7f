// SPDX-License-Identifier: EPL-2.0

// Package audio turns decoded audio of any rate and channel layout into a
// mono G.711 stream.
//
// Every stage implements Source, a pull-based stream of interleaved float32
// samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Decoders in the formats/ packages produce a Source; MonoMixer and
// Resampler wrap one; NewCompandedSource reads raw G.711 codes back as a
// Source.
//
// # Pipeline
//
// CompressToMono runs the usual telephony path in one call:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	log, err := audio.CompressToMono[g711.ULaw](src, 8000, 4096)
//
// ResampleToMono16 stops before compression and returns 16-bit PCM.
//
// # Resampling
//
// Resampler interpolates with a Catmull-Rom spline over a four-frame
// window. When downsampling, input first goes through a one-pole low-pass
// filter at the output Nyquist frequency. This is enough for voice prompts;
// it is not a band-limited resampler.
//
// # End of stream
//
// ReadSamples returns io.EOF once a stream is finished, possibly together
// with the last samples. Any other error is a failure of the underlying
// input and is wrapped.
package audio
