// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes integer PCM WAV files on top of
// github.com/go-audio/wav.
//
// # Supported Formats
//
//   - PCM at 8, 16, 24 and 32 bits (format tag 1, or WAVE_FORMAT_EXTENSIBLE)
//   - Any channel count and sample rate
//
// IEEE float, A-law and mu-law files are rejected with
// ErrUnsupportedEncoding.
//
// # Decoding
//
//	f, _ := os.Open("in.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // ErrNotWavFile, ErrUnsupportedEncoding, ...
//	}
//	buf, err := audio.ReadAll(src, 0)
//
// Samples are normalized to [-1, 1) using the file's bit depth, which
// the source reports through BitDepth. 8-bit files are stored unsigned
// and are re-centred on zero.
//
// # Encoding
//
// Encode writes an audio.Buffer at its own BitDepth:
//
//	f, _ := os.Create("out.wav")
//	defer f.Close()
//	err := wav.Encode(f, buf)
//
// Out-of-range samples are clipped. The writer must be seekable since the
// RIFF and data chunk sizes are patched after the payload.
package wav
