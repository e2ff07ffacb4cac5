// SPDX-License-Identifier: EPL-2.0

// Package wavglitch cuts audio into tempo-relative segments and
// randomly silences, swaps, reverses or repeats them to produce
// glitch-style edits.
//
// The heavy lifting lives in subpackages:
//   - glitch: segmenting, the seeded decision engine, effects and
//     channel reassembly
//   - audio: the streaming Source interface, Buffer, Resampler and
//     MonoMixer
//   - formats/wav, formats/aiff, formats/mp3, formats/vorbis: decoders,
//     and a WAV encoder
//
// This package ties them together for the common case:
//
//	reg := wavglitch.NewRegistry()
//	dec, _ := reg.Get(filepath.Ext(path))
//	src, _ := dec.Decode(f)
//
//	cfg := glitch.DefaultConfig()
//	cfg.Tempo = 120
//	cfg.Repeat = 0.1
//
//	res, err := wavglitch.Glitch(src, cfg, glitch.WithSeed(1))
//	if err != nil {
//	    // Handle error
//	}
//	err = wav.Encode(out, res.Buffer)
//
// The same seed, config and input always produce the same output.
package wavglitch
