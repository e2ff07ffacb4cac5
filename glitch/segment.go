// SPDX-License-Identifier: EPL-2.0

package glitch

// Segment is the half-open frame range [Start, End) of segment Index.
type Segment struct {
	Index int
	Start int
	End   int
}

func (s Segment) Len() int { return s.End - s.Start }

// Split partitions [0, totalFrames) into consecutive segments of
// segmentLen frames. The last segment holds the remainder when
// totalFrames is not a multiple of segmentLen. An empty input yields no
// segments.
func Split(totalFrames, segmentLen int) []Segment {
	if totalFrames <= 0 {
		return nil
	}
	segmentLen = max(segmentLen, 1)

	count := (totalFrames + segmentLen - 1) / segmentLen
	segs := make([]Segment, count)

	for i := range segs {
		start := i * segmentLen
		segs[i] = Segment{
			Index: i,
			Start: start,
			End:   min(start+segmentLen, totalFrames),
		}
	}

	return segs
}
