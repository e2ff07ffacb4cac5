// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/wavglitch"
	"github.com/ik5/wavglitch/audio"
	"github.com/ik5/wavglitch/formats/wav"
	"github.com/ik5/wavglitch/internal/audiotest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeInput stores a ramp as a WAV file in a fresh temp dir.
func writeInput(t *testing.T, sampleRate, bitDepth, channels, frames int) string {
	t.Helper()

	buf, err := audio.ReadAll(audiotest.NewRampSource(sampleRate, channels, frames), 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	buf.BitDepth = bitDepth

	path := filepath.Join(t.TempDir(), "in.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if err := wav.Encode(f, buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	return path
}

func readOutput(t *testing.T, path string) *audio.Buffer {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf, err := audio.ReadAll(src, 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	return buf
}

func TestRun_RepeatDoubles(t *testing.T) {
	t.Parallel()

	in := writeInput(t, 8000, 24, 2, 8000)

	o := NewOptions()
	o.Input = in
	o.Output = filepath.Join(filepath.Dir(in), "out.wav")
	o.Config.Tempo = 120
	o.Config.Length.Den = 4
	o.Config.Repeat = 1
	o.Config.MaxRepeat = 1

	if err := Run(context.Background(), o, discardLogger()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := readOutput(t, o.Output)
	if out.Frames() != 16000 {
		t.Errorf("Frames() = %d, want 16000", out.Frames())
	}
	if out.NumChannels() != 2 || out.SampleRate != 8000 || out.BitDepth != 24 {
		t.Errorf("format = %d ch, %d Hz, %d bit", out.NumChannels(), out.SampleRate, out.BitDepth)
	}
}

func TestRun_PrepareStages(t *testing.T) {
	t.Parallel()

	in := writeInput(t, 16000, 16, 2, 16000)

	o := NewOptions()
	o.Input = in
	o.Output = filepath.Join(filepath.Dir(in), "out.wav")
	o.Rate = 8000
	o.Mono = true

	if err := Run(context.Background(), o, discardLogger()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := readOutput(t, o.Output)
	if out.SampleRate != 8000 || out.NumChannels() != 1 {
		t.Errorf("format = %d Hz, %d ch; want 8000 Hz mono", out.SampleRate, out.NumChannels())
	}
}

func TestRun_LogsDefaultsAndSeed(t *testing.T) {
	t.Parallel()

	in := writeInput(t, 8000, 16, 1, 800)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	o := NewOptions()
	o.Input = in
	o.Output = filepath.Join(filepath.Dir(in), "out.wav")

	if err := Run(context.Background(), o, logger); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	for _, want := range []string{"for tempo", "Using random seed", "Done"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs missing %q:\n%s", want, logs.String())
		}
	}
}

func TestRun_SamePath(t *testing.T) {
	t.Parallel()

	in := writeInput(t, 8000, 16, 1, 100)

	o := NewOptions()
	o.Input = in
	o.Output = filepath.Join(filepath.Dir(in), ".", "in.wav")

	if err := Run(context.Background(), o, discardLogger()); !errors.Is(err, ErrSamePath) {
		t.Errorf("Run() error = %v, want ErrSamePath", err)
	}
}

func TestRun_ExistingOutput(t *testing.T) {
	t.Parallel()

	in := writeInput(t, 8000, 16, 1, 100)
	outPath := filepath.Join(filepath.Dir(in), "out.wav")
	if err := os.WriteFile(outPath, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	o := NewOptions()
	o.Input = in
	o.Output = outPath

	err := Run(context.Background(), o, discardLogger())
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("Run() error = %v, want fs.ErrExist", err)
	}
	if !strings.HasPrefix(err.Error(), "when creating output file") {
		t.Errorf("error = %q, want creation context", err)
	}

	if data, _ := os.ReadFile(outPath); string(data) != "keep me" {
		t.Error("existing output was modified without --force")
	}

	o.Force = true
	if err := Run(context.Background(), o, discardLogger()); err != nil {
		t.Fatalf("Run() with force error = %v", err)
	}
	if out := readOutput(t, outPath); out.Frames() != 100 {
		t.Errorf("Frames() = %d, want 100", out.Frames())
	}
}

func TestRun_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "in.flac")
	if err := os.WriteFile(path, []byte("fLaC"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	o := NewOptions()
	o.Input = path
	o.Output = filepath.Join(dir, "out.wav")

	if err := Run(context.Background(), o, discardLogger()); !errors.Is(err, wavglitch.ErrUnsupportedFormat) {
		t.Errorf("Run() error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(o.Output); !errors.Is(err, fs.ErrNotExist) {
		t.Error("output file was created for an unsupported input")
	}
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	o := NewOptions()
	o.Input = filepath.Join(dir, "missing.wav")
	o.Output = filepath.Join(dir, "out.wav")

	err := Run(context.Background(), o, discardLogger())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Run() error = %v, want fs.ErrNotExist", err)
	}

	o.Input = ""
	if err := Run(context.Background(), o, discardLogger()); !errors.Is(err, ErrNoInput) {
		t.Errorf("Run() error = %v, want ErrNoInput", err)
	}
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	in := writeInput(t, 8000, 16, 1, 100)

	o := NewOptions()
	o.Input = in
	o.Output = filepath.Join(filepath.Dir(in), "out.wav")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := Run(ctx, o, discardLogger()); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(o.Output); !errors.Is(err, fs.ErrNotExist) {
		t.Error("partial output was left behind")
	}
}
