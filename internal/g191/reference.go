// SPDX-License-Identifier: EPL-2.0

//go:build !(cgo && g191native)

package g191

// Native reports whether the routines are served by the linked C library.
const Native = false

// ULawCompress encodes linbuf into logbuf (8-bit codes, right justified).
func ULawCompress(linbuf, logbuf []int16) int {
	lseg := min(len(linbuf), len(logbuf))

	for n := range lseg {
		var absno int16
		if linbuf[n] < 0 {
			absno = (^linbuf[n] >> 2) + 33
		} else {
			absno = (linbuf[n] >> 2) + 33
		}

		if absno > 0x1FFF {
			absno = 0x1FFF
		}

		i := absno >> 6
		segno := int16(1)
		for i != 0 {
			segno++
			i >>= 1
		}

		highNibble := 0x0008 - segno
		lowNibble := 0x000F - ((absno >> segno) & 0x000F)

		logbuf[n] = highNibble<<4 | lowNibble
		if linbuf[n] >= 0 {
			logbuf[n] |= 0x0080
		}
	}

	return lseg
}

// ULawExpand decodes logbuf into linbuf (16-bit, left justified).
func ULawExpand(logbuf, linbuf []int16) int {
	lseg := min(len(logbuf), len(linbuf))

	for n := range lseg {
		sign := int16(1)
		if logbuf[n] < 0x0080 {
			sign = -1
		}

		mantissa := ^logbuf[n]
		exponent := (mantissa >> 4) & 0x0007
		segment := exponent + 1
		mantissa &= 0x000F

		step := int16(4) << segment

		linbuf[n] = sign * ((0x0080 << exponent) + step*mantissa + step/2 - 4*33)
	}

	return lseg
}

// ALawCompress encodes linbuf into logbuf (8-bit codes, right justified).
func ALawCompress(linbuf, logbuf []int16) int {
	lseg := min(len(linbuf), len(logbuf))

	for n := range lseg {
		var ix int16
		if linbuf[n] < 0 {
			ix = ^linbuf[n] >> 4
		} else {
			ix = linbuf[n] >> 4
		}

		if ix > 15 {
			iexp := int16(1)
			for ix > 16+15 {
				ix >>= 1
				iexp++
			}
			ix -= 16
			ix += iexp << 4
		}

		if linbuf[n] >= 0 {
			ix |= 0x0080
		}

		logbuf[n] = ix ^ 0x0055
	}

	return lseg
}

// ALawExpand decodes logbuf into linbuf (16-bit, left justified).
func ALawExpand(logbuf, linbuf []int16) int {
	lseg := min(len(logbuf), len(linbuf))

	for n := range lseg {
		ix := logbuf[n] ^ 0x0055
		ix &= 0x007F

		iexp := ix >> 4
		mant := ix & 0x000F
		if iexp > 0 {
			mant += 16
		}

		mant = (mant << 4) + 0x0008
		if iexp > 1 {
			mant <<= iexp - 1
		}

		if logbuf[n] > 127 {
			linbuf[n] = mant
		} else {
			linbuf[n] = -mant
		}
	}

	return lseg
}
