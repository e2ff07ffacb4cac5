// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/wavglitch/audio"
	"github.com/ik5/wavglitch/utils"
)

// encodeChunkFrames bounds the intermediate integer buffer.
const encodeChunkFrames = 8192

// Encode writes buf as an integer PCM WAV file at buf.BitDepth, falling
// back to 16-bit when the depth is unset. w must be seekable because the
// RIFF sizes are patched once all samples are written.
func Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}

	bitDepth := buf.BitDepth
	if bitDepth == 0 {
		bitDepth = audio.DefaultBitDepth
	}
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	channels := buf.NumChannels()
	frames := buf.Frames()

	enc := wav.NewEncoder(w, buf.SampleRate, bitDepth, channels, formatPCM)

	offset := 0
	if bitDepth == 8 {
		offset = 128
	}

	chunk := max(min(frames, encodeChunkFrames), 1)
	intBuf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  buf.SampleRate,
		},
		Data:           make([]int, chunk*channels),
		SourceBitDepth: bitDepth,
	}

	for start := 0; start < frames; start += chunk {
		n := min(chunk, frames-start)
		intBuf.Data = intBuf.Data[:n*channels]

		for f := range n {
			for c, ch := range buf.Data {
				intBuf.Data[f*channels+c] = utils.FloatToPCM(ch[start+f], bitDepth) + offset
			}
		}

		if err := enc.Write(intBuf); err != nil {
			_ = enc.Close()
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}

	if frames == 0 {
		// the encoder only emits the header on the first Write
		intBuf.Data = intBuf.Data[:0]
		if err := enc.Write(intBuf); err != nil {
			_ = enc.Close()
			return fmt.Errorf("writing wav header: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
