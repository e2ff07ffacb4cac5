// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/wavglitch"
	"github.com/ik5/wavglitch/audio"
	"github.com/ik5/wavglitch/formats/wav"
	"github.com/ik5/wavglitch/glitch"
)

// Run reads o.Input, glitches it and writes o.Output as WAV at the
// input's bit depth. A partially written output is removed on failure.
func Run(ctx context.Context, o *Options, logger *slog.Logger) (err error) {
	if o.Input == "" {
		return ErrNoInput
	}
	if samePath(o.Input, o.Output) {
		return ErrSamePath
	}

	engine, err := glitch.New(o.Config, o.EngineOptions(logger)...)
	if err != nil {
		return err
	}

	dec, err := wavglitch.DecoderFor(wavglitch.NewRegistry(), filepath.Ext(o.Input))
	if err != nil {
		return fmt.Errorf("when opening input file: %w", err)
	}

	in, err := os.Open(o.Input)
	if err != nil {
		return fmt.Errorf("when opening input file: %w", err)
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return fmt.Errorf("when opening input file: %w", err)
	}
	defer src.Close()

	out, err := createOutput(o.Output, o.Force)
	if err != nil {
		return fmt.Errorf("when creating output file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = out.Close()
			_ = os.Remove(o.Output)
		}
	}()

	for _, line := range o.Defaults() {
		logger.Info(line)
	}

	logger.Debug("input",
		slog.String("path", o.Input),
		slog.Int("sampleRate", src.SampleRate()),
		slog.Int("channels", src.Channels()),
		slog.Int("bitDepth", src.BitDepth()),
	)

	buf, err := audio.ReadAll(wavglitch.Prepare(src, o.Rate, o.Mono), 0)
	if err != nil {
		return fmt.Errorf("when reading from input file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	res, err := engine.Process(buf)
	if err != nil {
		return err
	}

	if !o.Seeded() {
		logger.Info("Using random seed", slog.Uint64("seed", res.Seed))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := wav.Encode(out, res.Buffer); err != nil {
		return fmt.Errorf("when writing to output file: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("when finalizing output file: %w", err)
	}

	logger.Info("Done",
		slog.String("output", o.Output),
		slog.Int("framesIn", buf.Frames()),
		slog.Int("framesOut", res.Buffer.Frames()),
		slog.Int("segments", len(res.Segments)),
	)

	return nil
}

// createOutput opens path for writing; it refuses to replace an existing
// file unless force is set.
func createOutput(path string, force bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	return os.OpenFile(path, flags, 0o644)
}

// samePath reports whether a and b name the same file, following links
// when both exist.
func samePath(a, b string) bool {
	fa, errA := os.Stat(a)
	fb, errB := os.Stat(b)
	if errA == nil && errB == nil {
		return os.SameFile(fa, fb)
	}

	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)

	return errA == nil && errB == nil && absA == absB
}
