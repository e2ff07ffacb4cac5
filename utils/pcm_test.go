// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloatToPCM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    float32
		bitDepth int
		want     int
	}{
		{name: "zero 16", input: 0, bitDepth: 16, want: 0},
		{name: "full positive clamps 16", input: 1, bitDepth: 16, want: math.MaxInt16},
		{name: "full negative 16", input: -1, bitDepth: 16, want: math.MinInt16},
		{name: "half 16", input: 0.5, bitDepth: 16, want: 16384},
		{name: "over range 16", input: 3, bitDepth: 16, want: math.MaxInt16},
		{name: "under range 16", input: -3, bitDepth: 16, want: math.MinInt16},
		{name: "full positive 8", input: 1, bitDepth: 8, want: 127},
		{name: "full negative 8", input: -1, bitDepth: 8, want: -128},
		{name: "full positive 24", input: 1, bitDepth: 24, want: 1<<23 - 1},
		{name: "full negative 32", input: -1, bitDepth: 32, want: math.MinInt32},
		{name: "unknown depth behaves as 16", input: -1, bitDepth: 12, want: math.MinInt16},
		{name: "nan is silence", input: float32(math.NaN()), bitDepth: 16, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FloatToPCM(tt.input, tt.bitDepth); got != tt.want {
				t.Errorf("FloatToPCM(%v, %d) = %d, want %d", tt.input, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestPCMRoundTrip(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{8, 16, 24} {
		scale := int(PCMScale(depth))
		for _, v := range []int{-scale, -scale / 2, -1, 0, 1, scale / 3, scale - 1} {
			got := FloatToPCM(PCMToFloat(v, depth), depth)
			if got != v {
				t.Errorf("depth %d: round trip of %d = %d", depth, v, got)
			}
		}
	}
}

func TestFloatToPCM_Monotonic(t *testing.T) {
	t.Parallel()

	prev := FloatToPCM(-1, 16)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := FloatToPCM(float32(f), 16)
		if curr < prev {
			t.Fatalf("not monotonic at %v: %d < %d", f, curr, prev)
		}
		prev = curr
	}
}

func TestFloatToPCM_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = FloatToPCM(0.5, 24)
	})

	if allocs > 0 {
		t.Errorf("FloatToPCM allocated %v times, want 0", allocs)
	}
}

func BenchmarkFloatToPCM(b *testing.B) {
	samples := make([]float32, 8000)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.1))
	}
	out := make([]int, len(samples))

	b.ReportAllocs()

	for b.Loop() {
		for j, s := range samples {
			out[j] = FloatToPCM(s, 16)
		}
	}
}
