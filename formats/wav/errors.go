// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input has no RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates the fmt or data chunk could not be located.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrUnsupportedEncoding indicates a non-PCM encoding such as IEEE float or A-law.
	ErrUnsupportedEncoding = errors.New("only integer PCM WAV is supported")

	// ErrUnsupportedBitDepth indicates a PCM resolution other than 8, 16, 24 or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")
)
