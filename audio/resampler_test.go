// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/wavglitch/internal/audiotest"
)

func drain(t *testing.T, src Source, chunk int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, chunk)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 2, 1000).WithBitDepth(24)
	r := NewResampler(src, 8000)

	if r.SampleRate() != 8000 || r.Channels() != 2 || r.BitDepth() != 24 {
		t.Errorf("metadata = %d Hz, %d ch, %d bit", r.SampleRate(), r.Channels(), r.BitDepth())
	}
}

func TestResampler_SameRateIsIdentity(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 1, 100)
	want := drain(t, audiotest.NewRampSource(8000, 1, 100), 64)

	got := drain(t, NewResampler(src, 8000), 32)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResampler_OutputLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		srcRate  int
		dstRate  int
		channels int
		frames   int
		want     int // frames
	}{
		{name: "downsample", srcRate: 44100, dstRate: 16000, channels: 1, frames: 44100, want: 16000},
		{name: "upsample", srcRate: 8000, dstRate: 16000, channels: 1, frames: 8000, want: 16000},
		{name: "stereo downsample", srcRate: 48000, dstRate: 24000, channels: 2, frames: 4800, want: 2400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tt.srcRate, tt.channels, tt.frames, 440)
			got := drain(t, NewResampler(src, tt.dstRate), 1024*tt.channels)

			frames := len(got) / tt.channels
			if math.Abs(float64(frames-tt.want)) > 2 {
				t.Errorf("frames = %d, want ≈%d", frames, tt.want)
			}
		})
	}
}

func TestResampler_ConstantStaysConstant(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(44100, 2, 4410, func(_, c int) float32 {
		if c == 0 {
			return 0.25
		}
		return -0.75
	})

	got := drain(t, NewResampler(src, 8000), 256)
	for i := 0; i < len(got); i += 2 {
		if math.Abs(float64(got[i]-0.25)) > 1e-4 || math.Abs(float64(got[i+1]+0.75)) > 1e-4 {
			t.Fatalf("frame %d = (%v, %v), want (0.25, -0.75)", i/2, got[i], got[i+1])
		}
	}
}

func TestResampler_ShortSources(t *testing.T) {
	t.Parallel()

	for frames := range 4 {
		src := audiotest.NewRampSource(8000, 1, frames)
		got := drain(t, NewResampler(src, 8000), 16)

		if len(got) != frames {
			t.Errorf("%d input frames produced %d output frames", frames, len(got))
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.NewSilentSource(8000, 2, 100), 16000)
	if _, err := r.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func BenchmarkResampler_Downsample(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		r := NewResampler(audiotest.NewSineSource(44100, 1, 44100, 440), 8000)
		for {
			_, err := r.ReadSamples(buf)
			if err != nil {
				break
			}
		}
	}
}
