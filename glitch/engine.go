// SPDX-License-Identifier: EPL-2.0

package glitch

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/ik5/wavglitch/audio"
)

// Engine runs the segment, decide, apply and reassemble pipeline for a
// validated Config. An Engine holds no per-run state and may be used
// from several goroutines.
type Engine struct {
	cfg  Config
	opts options
}

// Result is the processed buffer together with everything needed to
// explain or replay it.
type Result struct {
	Buffer *audio.Buffer
	// Seed the decisions were drawn from.
	Seed       uint64
	SegmentLen int
	Segments   []Segment
	// Plans holds the decision trace of every channel. Without
	// PerChannel all entries share one slice.
	Plans [][]Decision
	// Truncated is the number of frames dropped to realign channels of
	// different length in per-channel mode.
	Truncated int
}

// New validates cfg and returns an Engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		cfg:  cfg,
		opts: applyOptions(opts...),
	}, nil
}

func (e *Engine) Config() Config { return e.cfg }

// rng returns the decision stream for channel stream. Streams for
// different channels are independent but all derive from seed.
func rng(seed uint64, stream int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(stream)))
}

// Process transforms buf and returns a new buffer; buf is not modified.
// An empty buffer produces an empty result.
func (e *Engine) Process(buf *audio.Buffer) (*Result, error) {
	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("glitch: %w", err)
	}

	segLen, err := SegmentLen(e.cfg.Tempo, e.cfg.Length, buf.SampleRate)
	if err != nil {
		return nil, err
	}

	seed := e.opts.seed
	if !e.opts.seeded {
		seed = rand.Uint64()
	}

	log := e.opts.logger
	segs := Split(buf.Frames(), segLen)
	channels := buf.NumChannels()

	log.Debug("segmenting",
		slog.Int("frames", buf.Frames()),
		slog.Int("channels", channels),
		slog.Int("segmentLen", segLen),
		slog.Int("segments", len(segs)),
		slog.Uint64("seed", seed),
		slog.Bool("perChannel", e.cfg.PerChannel),
	)

	plans := make([][]Decision, channels)
	if !e.cfg.PerChannel {
		plan := Decide(segs, e.cfg, rng(seed, 0))
		for c := range plans {
			plans[c] = plan
		}
	}

	out := make([][]float32, channels)

	var wg sync.WaitGroup
	for c := range channels {
		wg.Go(func() {
			if e.cfg.PerChannel {
				plans[c] = Decide(segs, e.cfg, rng(seed, c))
			}
			work := Apply(buf.Data[c], segs, plans[c])
			out[c] = Emit(nil, work, segs, plans[c])
		})
	}
	wg.Wait()

	out, truncated := Reassemble(out)

	for c, plan := range plans {
		if c > 0 && !e.cfg.PerChannel {
			break
		}
		e.logPlan(c, plan)
	}

	if truncated > 0 {
		log.Debug("channels realigned", slog.Int("truncatedFrames", truncated))
	}

	return &Result{
		Buffer: &audio.Buffer{
			SampleRate: buf.SampleRate,
			BitDepth:   buf.BitDepth,
			Data:       out,
		},
		Seed:       seed,
		SegmentLen: segLen,
		Segments:   segs,
		Plans:      plans,
		Truncated:  truncated,
	}, nil
}

func (e *Engine) logPlan(channel int, plan []Decision) {
	log := e.opts.logger
	tally := Tally(plan)

	log.Debug("decisions",
		slog.Int("channel", channel),
		slog.Int(EffectSilence.String(), tally[EffectSilence]),
		slog.Int(EffectSwap.String(), tally[EffectSwap]),
		slog.Int(EffectReverse.String(), tally[EffectReverse]),
		slog.Int(EffectRepeat.String(), tally[EffectRepeat]),
		slog.Int(EffectNone.String(), tally[EffectNone]),
	)

	for i, d := range plan {
		if d.Effect == EffectSwap && d.Degenerate {
			log.Debug("degenerate swap skipped",
				slog.Int("channel", channel),
				slog.Int("segment", i),
				slog.Int("target", d.Target),
			)
		}
	}
}
