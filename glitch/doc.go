// SPDX-License-Identifier: EPL-2.0

// Package glitch cuts a materialized audio buffer into tempo-sized
// segments and applies randomized silence, swap, reverse and repeat
// effects to them.
//
// # Pipeline
//
// Process runs five steps, each also exported on its own:
//
//	SegmentLen  tempo and note value to a segment length in frames
//	Split       frames to consecutive segments, last one may be shorter
//	Decide      one Decision per segment, drawn from a seeded RNG
//	Apply       in-place effects on a copy of a channel
//	Emit        concatenation with repeats, then Reassemble across channels
//
// # Decisions
//
// For every segment the effects are rolled in priority order and the
// first hit wins: silence, swap, reverse, repeat. Swap partners are
// picked within MaxSwapRange segments and booked in one ascending pass,
// so no segment takes part in two swaps. A swap between segments of
// different length (only the trailing remainder can differ) is kept in
// the trace as Degenerate and leaves the audio untouched.
//
// Repeat(n) plays the segment n+1 times; it is the only effect that
// changes the output length.
//
// # Channels
//
// By default one decision list is drawn and applied to every channel so
// multi-channel material stays coherent. With Config.PerChannel each
// channel draws its own list from an independent stream derived from the
// seed, and channels that end up with different lengths are truncated
// to the shortest one.
//
// # Reproducibility
//
//	engine, err := glitch.New(cfg, glitch.WithSeed(42))
//	res, err := engine.Process(buf)
//	fmt.Println(res.Seed, res.Plans[0])
//
// Without WithSeed a fresh seed is drawn per call and reported in
// Result.Seed.
package glitch
