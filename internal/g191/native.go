// SPDX-License-Identifier: EPL-2.0

//go:build cgo && g191native

package g191

/*
void alaw_compress(long lseg, short *linbuf, short *logbuf)
{
  short ix, iexp;
  long n;

  for (n = 0; n < lseg; n++) {
    ix = linbuf[n] < 0 ? (~linbuf[n]) >> 4 : (linbuf[n]) >> 4;

    if (ix > 15) {
      iexp = 1;
      while (ix > 16 + 15) {
        ix >>= 1;
        iexp++;
      }
      ix -= 16;
      ix += iexp << 4;
    }

    if (linbuf[n] >= 0)
      ix |= (0x0080);

    logbuf[n] = ix ^ (0x0055);
  }
}

void alaw_expand(long lseg, short *logbuf, short *linbuf)
{
  short ix, mant, iexp;
  long n;

  for (n = 0; n < lseg; n++) {
    ix = logbuf[n] ^ (0x0055);
    ix &= (0x007F);
    iexp = ix >> 4;
    mant = ix & (0x000F);
    if (iexp > 0)
      mant = mant + 16;

    mant = (mant << 4) + (0x0008);

    if (iexp > 1)
      mant = mant << (iexp - 1);

    linbuf[n] = logbuf[n] > 127 ? mant : -mant;
  }
}

void ulaw_compress(long lseg, short *linbuf, short *logbuf)
{
  long n;
  short i, absno, segno, low_nibble, high_nibble;

  for (n = 0; n < lseg; n++) {
    absno = linbuf[n] < 0 ? ((~linbuf[n]) >> 2) + 33 : ((linbuf[n]) >> 2) + 33;

    if (absno > (0x1FFF))
      absno = (0x1FFF);

    i = absno >> 6;
    segno = 1;
    while (i != 0) {
      segno++;
      i >>= 1;
    }

    high_nibble = (0x0008) - segno;
    low_nibble = (absno >> segno) & (0x000F);
    low_nibble = (0x000F) - low_nibble;

    logbuf[n] = (high_nibble << 4) | low_nibble;

    if (linbuf[n] >= 0)
      logbuf[n] = logbuf[n] | (0x0080);
  }
}

void ulaw_expand(long lseg, short *logbuf, short *linbuf)
{
  long n;
  short segment, mantissa, exponent, sign, step;

  for (n = 0; n < lseg; n++) {
    sign = logbuf[n] < (0x0080) ? -1 : 1;
    mantissa = ~logbuf[n];
    exponent = (mantissa >> 4) & (0x0007);
    segment = exponent + 1;
    mantissa = mantissa & (0x000F);

    step = (4) << segment;

    linbuf[n] = sign * (((0x0080) << exponent) + step * mantissa + step / 2 - 4 * 33);
  }
}
*/
import "C"

import "unsafe"

// Native reports whether the routines are served by the linked C library.
const Native = true

type routine func(lseg C.long, in, out *C.short)

func call(fn routine, in, out []int16) int {
	lseg := min(len(in), len(out))
	if lseg == 0 {
		return 0
	}

	fn(C.long(lseg), (*C.short)(unsafe.Pointer(&in[0])), (*C.short)(unsafe.Pointer(&out[0])))

	return lseg
}

// ULawCompress encodes linbuf into logbuf (8-bit codes, right justified).
func ULawCompress(linbuf, logbuf []int16) int {
	return call(func(l C.long, in, out *C.short) { C.ulaw_compress(l, in, out) }, linbuf, logbuf)
}

// ULawExpand decodes logbuf into linbuf (16-bit, left justified).
func ULawExpand(logbuf, linbuf []int16) int {
	return call(func(l C.long, in, out *C.short) { C.ulaw_expand(l, in, out) }, logbuf, linbuf)
}

// ALawCompress encodes linbuf into logbuf (8-bit codes, right justified).
func ALawCompress(linbuf, logbuf []int16) int {
	return call(func(l C.long, in, out *C.short) { C.alaw_compress(l, in, out) }, linbuf, logbuf)
}

// ALawExpand decodes logbuf into linbuf (16-bit, left justified).
func ALawExpand(logbuf, linbuf []int16) int {
	return call(func(l C.long, in, out *C.short) { C.alaw_expand(l, in, out) }, logbuf, linbuf)
}
