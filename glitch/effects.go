// SPDX-License-Identifier: EPL-2.0

package glitch

import "slices"

// Silence zero-fills the frames of seg.
func Silence(samples []float32, seg Segment) {
	clear(samples[seg.Start:seg.End])
}

// Reverse reverses the order of the frames of seg in place.
func Reverse(samples []float32, seg Segment) {
	slices.Reverse(samples[seg.Start:seg.End])
}

// Swap exchanges the contents of a and b. Segments of different length
// are left untouched and ErrDegenerateSwap is returned.
func Swap(samples []float32, a, b Segment) error {
	if a.Len() != b.Len() {
		return ErrDegenerateSwap
	}

	x := samples[a.Start:a.End]
	y := samples[b.Start:b.End]
	for k := range x {
		x[k], y[k] = y[k], x[k]
	}

	return nil
}

// Apply runs the in-place effects of plan (silence, swap, reverse) in
// ascending segment order on a copy of samples and returns the copy.
// Repeats do not change the working copy; they are realized by Emit.
func Apply(samples []float32, segs []Segment, plan []Decision) []float32 {
	work := slices.Clone(samples)

	for i, d := range plan {
		seg := segs[i]

		switch d.Effect {
		case EffectSilence:
			Silence(work, seg)
		case EffectSwap:
			// ErrDegenerateSwap leaves both segments as they are.
			_ = Swap(work, seg, segs[d.Target])
		case EffectReverse:
			Reverse(work, seg)
		}
	}

	return work
}
