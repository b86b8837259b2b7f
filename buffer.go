// SPDX-License-Identifier: EPL-2.0

package g711

// Linear is satisfied by 16-bit linear PCM sample types.
type Linear interface {
	~int16
}

// Compressed is satisfied by 8-bit companded sample types.
type Compressed interface {
	~uint8
}

// CompressBuf compresses linear into log using the law L and returns the
// number of samples converted, min(len(linear), len(log)).
//
// Samples are converted in order; log[n:] is left untouched. Fixed-size
// arrays can be passed as arr[:].
//
//	pcm := [160]int16{...}
//	var frame [160]byte
//	n := g711.CompressBuf[g711.ULaw](pcm[:], frame[:])
func CompressBuf[L Law, E Linear, C Compressed](linear []E, log []C) int {
	var law L

	n := min(len(linear), len(log))
	for i := range n {
		log[i] = C(law.Compress(int16(linear[i])))
	}

	return n
}

// ExpandBuf expands log into linear using the law L and returns the number
// of samples converted, min(len(log), len(linear)). linear[n:] is left
// untouched.
func ExpandBuf[L Law, C Compressed, E Linear](log []C, linear []E) int {
	var law L

	n := min(len(log), len(linear))
	for i := range n {
		linear[i] = E(law.Expand(uint8(log[i])))
	}

	return n
}

// AppendCompressed grows dst by len(linear) and fills the new tail with the
// compressed samples.
func AppendCompressed[L Law, E Linear](dst []byte, linear []E) []byte {
	start := len(dst)
	dst = grow(dst, len(linear))
	CompressBuf[L](linear, dst[start:])

	return dst
}

// AppendExpanded grows dst by len(log) and fills the new tail with the
// expanded samples.
func AppendExpanded[L Law, C Compressed](dst []int16, log []C) []int16 {
	start := len(dst)
	dst = grow(dst, len(log))
	ExpandBuf[L](log, dst[start:])

	return dst
}

// Compress returns a new slice holding linear compressed with L.
func Compress[L Law, E Linear](linear []E) []byte {
	return AppendCompressed[L](make([]byte, 0, len(linear)), linear)
}

// Expand returns a new slice holding log expanded with L.
func Expand[L Law, C Compressed](log []C) []int16 {
	return AppendExpanded[L](make([]int16, 0, len(log)), log)
}

// grow extends s by exactly n elements, reallocating only when the spare
// capacity is too small.
func grow[T any](s []T, n int) []T {
	if cap(s)-len(s) < n {
		grown := make([]T, len(s), len(s)+n)
		copy(grown, s)
		s = grown
	}

	return s[:len(s)+n]
}
