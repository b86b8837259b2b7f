// SPDX-License-Identifier: EPL-2.0

package g711

import "math/bits"

// alawToggle is the even-bit inversion applied to every A-law code.
const alawToggle = 0x55

// CompressALaw encodes a 16-bit linear sample as an A-law code.
//
// Only the 12 most significant bits of linear take part in the conversion.
// The result is bit-exact with the ITU-T G.191 alaw_compress routine.
func CompressALaw(linear int16) uint8 {
	var sign uint8 = 0x80
	if linear < 0 {
		linear = ^linear
		sign = 0
	}

	shifted := uint16(linear) >> 4

	var magnitude uint8
	if zeros := bits.LeadingZeros16(shifted); zeros < 12 {
		mantissa := uint8(shifted>>(11-zeros)) & 0x0F
		magnitude = uint8(12-zeros)<<4 | mantissa
	} else {
		// Segment 0 is linear and already fits in the low nibble.
		magnitude = uint8(shifted)
	}

	// The toggle applies to the assembled byte; it leaves the sign bit alone.
	return (magnitude | sign) ^ alawToggle
}

// ExpandALaw decodes an A-law code to a 16-bit linear sample.
//
// The output is left aligned; the largest magnitude produced is 32256.
func ExpandALaw(log uint8) int16 {
	ix := (log ^ alawToggle) & 0x7F
	exponent := ix >> 4
	mantissa := int16(ix & 0x0F)

	if exponent > 0 {
		mantissa |= 0x10
	}

	magnitude := mantissa<<4 | 0x08
	if exponent > 1 {
		magnitude <<= exponent - 1
	}

	if log&0x80 == 0 {
		return -magnitude
	}

	return magnitude
}
