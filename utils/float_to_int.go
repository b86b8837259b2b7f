// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

const pcmScale = 32768

// Float32ToInt16 maps a sample in [-1, 1] to 16-bit PCM, rounding to the
// nearest step. Out of range input is clipped.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * pcmScale)

	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt16:
		return math.MaxInt16
	case v <= math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}

// Int16ToFloat32 is the inverse of Float32ToInt16; every int16 survives the
// round trip unchanged.
func Int16ToFloat32(x int16) float32 {
	return float32(x) / pcmScale
}
