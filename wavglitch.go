// SPDX-License-Identifier: EPL-2.0

package wavglitch

import (
	"fmt"

	"github.com/ik5/wavglitch/audio"
	"github.com/ik5/wavglitch/formats/aiff"
	"github.com/ik5/wavglitch/formats/mp3"
	"github.com/ik5/wavglitch/formats/vorbis"
	"github.com/ik5/wavglitch/formats/wav"
	"github.com/ik5/wavglitch/glitch"
)

// NewRegistry returns a registry with every bundled decoder registered
// under its usual file extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// DecoderFor looks up the decoder for ext in reg. ext may carry a
// leading dot and any case.
func DecoderFor(reg *audio.Registry, ext string) (audio.Decoder, error) {
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return dec, nil
}

// Prepare chains the optional pre-processing stages in front of src:
// a Resampler when targetRate is positive and differs from the source
// rate, then a MonoMixer when mono is set. Without either stage src is
// returned as is.
func Prepare(src audio.Source, targetRate int, mono bool) audio.Source {
	if targetRate > 0 && targetRate != src.SampleRate() {
		src = audio.NewResampler(src, targetRate)
	}

	if mono && src.Channels() > 1 {
		src = audio.NewMonoMixer(src)
	}

	return src
}

// Glitch drains src and runs it through a glitch engine built from cfg.
// src is not closed.
func Glitch(src audio.Source, cfg glitch.Config, opts ...glitch.Option) (*glitch.Result, error) {
	engine, err := glitch.New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	buf, err := audio.ReadAll(src, 0)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}

	return engine.Process(buf)
}
