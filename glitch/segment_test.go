// SPDX-License-Identifier: EPL-2.0

package glitch

import "testing"

func TestSplit_Partition(t *testing.T) {
	t.Parallel()

	for total := 0; total <= 50; total++ {
		for segLen := 1; segLen <= 12; segLen++ {
			segs := Split(total, segLen)

			next := 0
			for i, s := range segs {
				if s.Index != i {
					t.Fatalf("Split(%d, %d)[%d].Index = %d", total, segLen, i, s.Index)
				}
				if s.Start != next {
					t.Fatalf("Split(%d, %d)[%d] starts at %d, want %d", total, segLen, i, s.Start, next)
				}
				if i < len(segs)-1 && s.Len() != segLen {
					t.Fatalf("Split(%d, %d)[%d].Len() = %d, want %d", total, segLen, i, s.Len(), segLen)
				}
				if s.Len() <= 0 {
					t.Fatalf("Split(%d, %d)[%d] is empty", total, segLen, i)
				}
				next = s.End
			}

			if next != total {
				t.Fatalf("Split(%d, %d) covers [0, %d)", total, segLen, next)
			}
		}
	}
}

func TestSplit_EdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		total   int
		segLen  int
		want    int
		lastLen int
	}{
		{name: "empty", total: 0, segLen: 10, want: 0},
		{name: "shorter than one segment", total: 7, segLen: 10, want: 1, lastLen: 7},
		{name: "exact multiple", total: 4000, segLen: 1000, want: 4, lastLen: 1000},
		{name: "remainder", total: 4001, segLen: 1000, want: 5, lastLen: 1},
		{name: "short tail", total: 19800, segLen: 3600, want: 6, lastLen: 1800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			segs := Split(tt.total, tt.segLen)
			if len(segs) != tt.want {
				t.Fatalf("len(Split()) = %d, want %d", len(segs), tt.want)
			}
			if tt.want > 0 && segs[len(segs)-1].Len() != tt.lastLen {
				t.Errorf("last Len() = %d, want %d", segs[len(segs)-1].Len(), tt.lastLen)
			}
		})
	}
}

func BenchmarkSplit(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		_ = Split(44100*60, 2756)
	}
}
