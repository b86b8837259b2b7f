// SPDX-License-Identifier: EPL-2.0

package g711

import "math/bits"

const (
	// ulawBias is added to the 14-bit magnitude before the segment search.
	ulawBias = 0x21
	// ulawMaxMagnitude is the largest biased magnitude (13 bits set).
	ulawMaxMagnitude = 0x1FFF
)

// CompressULaw encodes a 16-bit linear sample as a μ-law code.
//
// Only the 14 most significant bits of linear take part in the conversion.
// The result is bit-exact with the ITU-T G.191 ulaw_compress routine.
func CompressULaw(linear int16) uint8 {
	var sign uint8 = 0x80
	if linear < 0 {
		// One's complement, not negation: -1 and 0 share a magnitude.
		linear = ^linear
		sign = 0
	}

	magnitude := min(uint16(linear)>>2+ulawBias, ulawMaxMagnitude)

	// magnitude is within [0x21, 0x1FFF], so segment is within [1, 8].
	segment := 11 - bits.LeadingZeros16(magnitude)
	mantissa := uint8(magnitude>>segment) & 0x0F

	return uint8(8-segment)<<4 | (0x0F - mantissa) | sign
}

// ExpandULaw decodes a μ-law code to a 16-bit linear sample.
//
// The output is left aligned; the largest magnitude produced is 32124.
func ExpandULaw(log uint8) int16 {
	inverted := ^log
	exponent := (inverted >> 4) & 0x07
	mantissa := int16(inverted & 0x0F)
	step := int16(4) << (exponent + 1)

	magnitude := int16(0x80)<<exponent + step*mantissa + step/2 - 4*ulawBias
	if log < 0x80 {
		return -magnitude
	}

	return magnitude
}
