// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample plumbing shared by the decoders, the
// glitch engine and the WAV writer.
//
// # Source Interface
//
// Decoders produce a Source, a pull-based stream of interleaved float32
// samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples returns io.EOF once the stream is exhausted, possibly
// together with the last samples.
//
// # Buffers
//
// The glitch engine works on a fully materialized Buffer. Data is
// channel-major, so every channel can be segmented and rearranged on its
// own:
//
//	buf, err := audio.ReadAll(src, 4096)
//	fmt.Println(buf.NumChannels(), buf.Frames())
//
// Buffer.Source streams a buffer back out, which lets a processed buffer
// go through the same stream stages as a decoded file.
//
// # Pre-processing
//
// Resampler changes the sample rate using cubic interpolation and
// MonoMixer averages all channels into one:
//
//	src = audio.NewMonoMixer(audio.NewResampler(src, 22050))
//
// # Format Registry
//
// Registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get(filepath.Ext(path))
package audio
