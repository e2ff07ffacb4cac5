// SPDX-License-Identifier: EPL-2.0

package glitch

import "math"

// SegmentLen converts a note value at tempo into a whole number of
// frames at sampleRate:
//
//	round(sampleRate × 240/tempo × num/den), at least 1
//
// 240/tempo is the length of a whole note in seconds.
func SegmentLen(tempo float64, length Fraction, sampleRate int) (int, error) {
	if math.IsNaN(tempo) || tempo <= 0 {
		return 0, newConfigError("tempo", tempo, "must be positive")
	}

	if length.Num == 0 || length.Den == 0 {
		return 0, newConfigError("length", length, "both numbers must be in 1..=65535")
	}

	if sampleRate <= 0 {
		return 0, newConfigError("sample rate", sampleRate, "must be positive")
	}

	seconds := 240 / tempo * float64(length.Num) / float64(length.Den)
	frames := math.Round(float64(sampleRate) * seconds)

	return max(int(frames), 1), nil
}
