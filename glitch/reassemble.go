// SPDX-License-Identifier: EPL-2.0

package glitch

import "slices"

// OutputLen is the number of frames Emit produces for plan.
func OutputLen(segs []Segment, plan []Decision) int {
	total := 0
	for i, seg := range segs {
		total += seg.Len() * plan[i].Emissions()
	}
	return total
}

// Emit appends every segment of work to dst in index order, each as many
// times as its decision asks for, and returns the extended slice.
func Emit(dst, work []float32, segs []Segment, plan []Decision) []float32 {
	dst = slices.Grow(dst, OutputLen(segs, plan))

	for i, seg := range segs {
		chunk := work[seg.Start:seg.End]
		for range plan[i].Emissions() {
			dst = append(dst, chunk...)
		}
	}

	return dst
}

// Reassemble reconciles independently processed channels: every channel
// is truncated to the shortest one. It returns the number of frames cut
// from the longest channel.
func Reassemble(channels [][]float32) ([][]float32, int) {
	if len(channels) == 0 {
		return channels, 0
	}

	shortest, longest := len(channels[0]), len(channels[0])
	for _, ch := range channels[1:] {
		shortest = min(shortest, len(ch))
		longest = max(longest, len(ch))
	}

	for c, ch := range channels {
		channels[c] = ch[:shortest]
	}

	return channels, longest - shortest
}
