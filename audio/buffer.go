// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// DefaultBitDepth is assumed when a source does not know its resolution.
const DefaultBitDepth = 16

// Buffer is a fully materialized multi-channel stream.
// Data is channel-major: Data[c][f] is frame f of channel c.
type Buffer struct {
	SampleRate int
	BitDepth   int
	Data       [][]float32
}

// NewBuffer returns a zero-filled buffer with the given shape.
func NewBuffer(sampleRate, bitDepth, channels, frames int) *Buffer {
	if frames < 0 {
		frames = 0
	}

	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &Buffer{
		SampleRate: sampleRate,
		BitDepth:   bitDepth,
		Data:       data,
	}
}

// FromInterleaved splits interleaved samples into a channel-major buffer.
// A trailing partial frame is dropped.
func FromInterleaved(samples []float32, sampleRate, bitDepth, channels int) (*Buffer, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	frames := len(samples) / channels
	b := NewBuffer(sampleRate, bitDepth, channels, frames)
	for f := range frames {
		base := f * channels
		for c := range channels {
			b.Data[c][f] = samples[base+c]
		}
	}

	return b, nil
}

func (b *Buffer) NumChannels() int { return len(b.Data) }

// Frames returns the per-channel length. Callers rely on Validate for
// the equal-length guarantee; Frames reports the first channel.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Validate checks the buffer has at least one channel and that every
// channel has the same number of frames.
func (b *Buffer) Validate() error {
	if len(b.Data) == 0 {
		return ErrInvalidChannels
	}

	frames := len(b.Data[0])
	for c, ch := range b.Data {
		if len(ch) != frames {
			return fmt.Errorf("channel %d has %d frames, want %d: %w", c, len(ch), frames, ErrChannelLengthDiff)
		}
	}

	return nil
}

// Interleaved returns the samples in frame-major order.
func (b *Buffer) Interleaved() []float32 {
	channels := b.NumChannels()
	frames := b.Frames()
	out := make([]float32, frames*channels)

	for c, ch := range b.Data {
		for f := range frames {
			out[f*channels+c] = ch[f]
		}
	}

	return out
}

// Truncate shortens every channel to at most frames.
func (b *Buffer) Truncate(frames int) {
	if frames < 0 {
		frames = 0
	}
	for c, ch := range b.Data {
		if len(ch) > frames {
			b.Data[c] = ch[:frames]
		}
	}
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	data := make([][]float32, len(b.Data))
	for c, ch := range b.Data {
		data[c] = append([]float32(nil), ch...)
	}

	return &Buffer{
		SampleRate: b.SampleRate,
		BitDepth:   b.BitDepth,
		Data:       data,
	}
}

// Source streams the buffer back out as interleaved samples, so a
// materialized buffer can be fed through a Resampler or MonoMixer.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf *Buffer
	pos int // frames already read
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.NumChannels() }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) BitDepth() int {
	if s.buf.BitDepth == 0 {
		return DefaultBitDepth
	}
	return s.buf.BitDepth
}

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.Channels()
	if channels == 0 || len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	remaining := s.buf.Frames() - s.pos
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)
	for f := range frames {
		for c := range channels {
			dst[f*channels+c] = s.buf.Data[c][s.pos+f]
		}
	}
	s.pos += frames

	if s.pos >= s.buf.Frames() {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}

// ReadAll drains src into a Buffer. bufSize is the read chunk in
// samples; it is rounded down to a whole number of frames and falls back
// to src.BufSize() when not positive. src is not closed.
func ReadAll(src Source, bufSize int) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	bufSize -= bufSize % channels
	if bufSize < channels {
		bufSize = channels * 1024
	}

	var interleaved []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n == 0 {
			// Some decoders signal the end with (0, nil) once drained.
			break
		}
	}

	bitDepth := src.BitDepth()
	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}

	return FromInterleaved(interleaved, src.SampleRate(), bitDepth, channels)
}
