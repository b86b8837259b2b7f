// SPDX-License-Identifier: EPL-2.0

package g711

import (
	"math"
	"slices"
	"testing"
)

func TestCompressALaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		linear int16
		want   uint8
	}{
		{name: "zero is silence", linear: 0, want: 0xD5},
		{name: "minus one shares zero magnitude", linear: -1, want: 0x55},
		{name: "last linear step", linear: 15, want: 0xD5},
		{name: "second linear step", linear: 16, want: 0xD4},
		{name: "negative second step", linear: -16, want: 0x55},
		{name: "negative past second step", linear: -17, want: 0x54},
		{name: "small positive", linear: 100, want: 0xD3},
		{name: "small negative", linear: -100, want: 0x53},
		{name: "mid positive", linear: 1000, want: 0xFA},
		{name: "positive full scale", linear: math.MaxInt16, want: 0xAA},
		{name: "negative full scale", linear: math.MinInt16, want: 0x2A},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CompressALaw(tt.linear); got != tt.want {
				t.Errorf("CompressALaw(%d) = %#02x, want %#02x", tt.linear, got, tt.want)
			}
		})
	}
}

// Outputs are on the 16-bit left-aligned scale, not the 13-bit one, so the
// smallest step 0xD5 expands to 8 rather than a truncated 13-bit 0.
func TestExpandALaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		log  uint8
		want int16
	}{
		{log: 0xD5, want: 8},
		{log: 0x55, want: -8},
		{log: 0x00, want: -5504},
		{log: 0x80, want: 5504},
		{log: 0xAA, want: 32256},
		{log: 0x2A, want: -32256},
	}

	for _, tt := range tests {
		if got := ExpandALaw(tt.log); got != tt.want {
			t.Errorf("ExpandALaw(%#02x) = %d, want %d", tt.log, got, tt.want)
		}
	}
}

// G.191 alaw_compress/alaw_expand documentation vectors.
func TestALaw_ReferenceVector(t *testing.T) {
	t.Parallel()

	linear := []int16{-0x5EE4, 0x48A7, 0x1430, -0x35B8, -0x4A54, -0x39EA, -0x74E0, 0x0036}
	wantLog := []uint8{0x22, 0xA7, 0x81, 0x3F, 0x27, 0x39, 0x28, 0xD6}
	wantLinear := []int16{-0x5E00, 0x4A00, 0x1480, -0x3500, -0x4A00, -0x3900, -0x7600, 0x0038}

	log := Compress[ALaw](linear)
	if !slices.Equal(log, wantLog) {
		t.Errorf("Compress[ALaw]() = %#x, want %#x", log, wantLog)
	}

	if got := Expand[ALaw](log); !slices.Equal(got, wantLinear) {
		t.Errorf("Expand[ALaw]() = %d, want %d", got, wantLinear)
	}
}

// The sign is carried by bit 7 of the raw code; the 0x55 toggle never
// touches it, so positive codes are exactly those >= 0x80.
func TestALaw_SignBit(t *testing.T) {
	t.Parallel()

	for code := range 256 {
		got := ExpandALaw(uint8(code))
		if positive := code >= 0x80; positive != (got > 0) {
			t.Errorf("ExpandALaw(%#02x) = %d, sign does not follow bit 7", code, got)
		}
	}

	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		code := CompressALaw(int16(v))
		if (v >= 0) != (code&0x80 != 0) {
			t.Fatalf("CompressALaw(%d) = %#02x, sign bit mismatch", v, code)
		}
	}
}

func TestALaw_Monotonic(t *testing.T) {
	t.Parallel()

	prev := ExpandALaw(CompressALaw(math.MinInt16))
	for v := math.MinInt16 + 1; v <= math.MaxInt16; v++ {
		cur := ExpandALaw(CompressALaw(int16(v)))
		if cur < prev {
			t.Fatalf("round trip of %d = %d, smaller than previous %d", v, cur, prev)
		}
		prev = cur
	}
}

func TestALaw_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = ExpandALaw(CompressALaw(-1234))
	})

	if allocs > 0 {
		t.Errorf("A-law round trip allocated %v times, want 0", allocs)
	}
}

func BenchmarkCompressALaw(b *testing.B) {
	var result uint8

	b.ReportAllocs()

	for b.Loop() {
		for v := range 1 << 12 {
			result ^= CompressALaw(int16(v << 4))
		}
	}

	_ = result
}

func BenchmarkExpandALaw(b *testing.B) {
	var result int16

	b.ReportAllocs()

	for b.Loop() {
		for code := range 256 {
			result ^= ExpandALaw(uint8(code))
		}
	}

	_ = result
}
