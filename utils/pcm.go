// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// PCMScale returns the magnitude of full scale for a signed integer
// sample of the given bit depth (2^(bitDepth-1)). Unknown depths are
// treated as 16-bit.
func PCMScale(bitDepth int) float64 {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		bitDepth = 16
	}

	return float64(int64(1) << (bitDepth - 1))
}

// PCMToFloat maps a signed integer sample to [-1,1).
func PCMToFloat(v int, bitDepth int) float32 {
	return float32(float64(v) / PCMScale(bitDepth))
}

// FloatToPCM maps x to a signed integer sample of bitDepth bits,
// rounding to nearest and clamping to the representable range.
func FloatToPCM(x float32, bitDepth int) int {
	if math.IsNaN(float64(x)) {
		return 0
	}

	scale := PCMScale(bitDepth)
	v := math.Round(float64(x) * scale)

	if v > scale-1 {
		v = scale - 1
	} else if v < -scale {
		v = -scale
	}

	return int(v)
}
