// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/g711"
	"github.com/ik5/g711/utils"
)

// ResampleToMono16 reads src to the end, down-mixes it to mono, converts it
// to targetRate and returns the result as 16-bit PCM. bufferSize is the
// number of samples pulled per read.
//
// The pipeline is MonoMixer followed by a Resampler; the resampler is
// skipped when src already runs at targetRate. src is not closed.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm, err := audio.ResampleToMono16(src, 8000, 4096)
func ResampleToMono16(src Source, targetRate, bufferSize int) ([]int16, error) {
	var pcm []int16

	err := drainMono(src, targetRate, bufferSize, func(chunk []float32) {
		for _, v := range chunk {
			pcm = append(pcm, utils.Float32ToInt16(v))
		}
	})
	if err != nil {
		return nil, err
	}

	return pcm, nil
}

// CompressToMono is ResampleToMono16 followed by G.711 compression with L:
// any decodable input becomes a single channel of codes at targetRate,
// ready for an 8 kHz telephony leg.
func CompressToMono[L g711.Law](src Source, targetRate, bufferSize int) ([]byte, error) {
	var (
		log []byte
		pcm []int16
	)

	err := drainMono(src, targetRate, bufferSize, func(chunk []float32) {
		pcm = pcm[:0]
		for _, v := range chunk {
			pcm = append(pcm, utils.Float32ToInt16(v))
		}

		log = g711.AppendCompressed[L](log, pcm)
	})
	if err != nil {
		return nil, err
	}

	return log, nil
}

func drainMono(src Source, targetRate, bufferSize int, emit func([]float32)) error {
	if bufferSize <= 0 {
		return ErrInvalidBufferSize
	}

	if targetRate <= 0 {
		return ErrInvalidSampleRate
	}

	var stream Source = NewMonoMixer(src)

	if src.SampleRate() != targetRate {
		resampler, err := NewResampler(stream, targetRate)
		if err != nil {
			return err
		}

		stream = resampler
	}

	buf := make([]float32, bufferSize)
	for {
		n, err := stream.ReadSamples(buf)
		if n > 0 {
			emit(buf[:n])
		}

		if err == io.EOF {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read samples: %w", err)
		}
	}
}
