// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding on
// top of github.com/go-audio/aiff.
//
// # Supported Formats
//
//   - Uncompressed AIFF at 8, 16, 24 and 32 bits
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
//	f, _ := os.Open("audio.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrNotAiffFile, ErrUnsupportedBitDepth, ...
//	}
//
// Samples are returned as float32 in [-1, 1) and BitDepth reports the
// file's resolution so the glitched output can be written back at the
// same depth.
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory
// first.
package aiff
