// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates interleaved audio from a waveform function.
// It implements audio.Source without importing it to avoid cycles.
type MockSource struct {
	sampleRate int
	channels   int
	bitDepth   int
	frames     int // total frames to generate
	generated  int
	waveform   func(frame, channel int) float32
	closed     bool
}

// NewMockSource creates a source of frames frames at 16-bit.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		bitDepth:   16,
		frames:     frames,
		waveform:   waveform,
	}
}

// NewSilentSource generates all zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 { return 0 })
}

// NewSineSource generates the same sine on every channel.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampSource makes every sample distinct and easy to trace:
// frame f of channel c is (f+1)/scale, negated on odd channels.
func NewRampSource(sampleRate, channels, frames int) *MockSource {
	scale := float32(frames + 1)
	return NewMockSource(sampleRate, channels, frames, func(frame, channel int) float32 {
		v := float32(frame+1) / scale
		if channel%2 == 1 {
			return -v
		}
		return v
	})
}

// WithBitDepth overrides the reported bit depth.
func (m *MockSource) WithBitDepth(bitDepth int) *MockSource {
	m.bitDepth = bitDepth
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BitDepth() int   { return m.bitDepth }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset rewinds the generator.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	count := min(len(dst)/m.channels, m.frames-m.generated)
	for f := range count {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}
	m.generated += count

	if m.generated >= m.frames {
		return count * m.channels, io.EOF
	}

	return count * m.channels, nil
}
