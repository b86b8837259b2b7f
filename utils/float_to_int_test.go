// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0, want: 0},
		{name: "full scale positive clips", input: 1, want: math.MaxInt16},
		{name: "full scale negative", input: -1, want: math.MinInt16},
		{name: "half", input: 0.5, want: 16384},
		{name: "negative half", input: -0.5, want: -16384},
		{name: "rounds up", input: 1.6 / 32768, want: 2},
		{name: "rounds down", input: 1.4 / 32768, want: 1},
		{name: "clip over", input: 1.5, want: math.MaxInt16},
		{name: "clip under", input: -100, want: math.MinInt16},
		{name: "NaN", input: float32(math.NaN()), want: 0},
		{name: "+Inf", input: float32(math.Inf(1)), want: math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestInt16RoundTrip(t *testing.T) {
	t.Parallel()

	for x := math.MinInt16; x <= math.MaxInt16; x++ {
		f := Int16ToFloat32(int16(x))
		if f < -1 || f >= 1 {
			t.Fatalf("Int16ToFloat32(%d) = %v, outside [-1, 1)", x, f)
		}

		if got := Float32ToInt16(f); got != int16(x) {
			t.Fatalf("round trip %d -> %v -> %d", x, f, got)
		}
	}
}

func TestFloat32ToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-2)
	for f := float32(-2); f <= 2; f += 1.0 / 4096 {
		got := Float32ToInt16(f)
		if got < prev {
			t.Fatalf("Float32ToInt16(%v) = %d < previous %d", f, got, prev)
		}

		prev = got
	}
}

func TestConversions_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(Int16ToFloat32(1234))
	})

	if allocs > 0 {
		t.Errorf("conversions allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	in := make([]float32, 160)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) * 0.1))
	}

	out := make([]int16, len(in))

	b.ReportAllocs()

	for b.Loop() {
		for i, v := range in {
			out[i] = Float32ToInt16(v)
		}
	}
}
