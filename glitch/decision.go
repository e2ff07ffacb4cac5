// SPDX-License-Identifier: EPL-2.0

package glitch

import (
	"fmt"
	"math/rand/v2"
)

// Effect is the outcome kind for one segment.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectSilence
	EffectSwap
	EffectReverse
	EffectRepeat
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectSilence:
		return "silence"
	case EffectSwap:
		return "swap"
	case EffectReverse:
		return "reverse"
	case EffectRepeat:
		return "repeat"
	default:
		return fmt.Sprintf("effect(%d)", uint8(e))
	}
}

// Decision is the resolved outcome for one segment of one channel stream.
type Decision struct {
	Effect Effect
	// Target is the partner segment index for EffectSwap.
	Target int
	// Count is the number of extra repetitions for EffectRepeat; the
	// segment is emitted Count+1 times.
	Count int
	// Degenerate marks a swap between segments of unequal length, which
	// is applied as a no-op.
	Degenerate bool
}

func (d Decision) String() string {
	switch d.Effect {
	case EffectSwap:
		if d.Degenerate {
			return fmt.Sprintf("swap(%d, degenerate)", d.Target)
		}
		return fmt.Sprintf("swap(%d)", d.Target)
	case EffectRepeat:
		return fmt.Sprintf("repeat(%d)", d.Count)
	default:
		return d.Effect.String()
	}
}

// Emissions is how many times the segment appears in the output.
func (d Decision) Emissions() int {
	if d.Effect == EffectRepeat {
		return d.Count + 1
	}
	return 1
}

// Decide draws one decision per segment, in ascending index order, from
// rng. For every segment the effects are rolled in priority order
// silence, swap, reverse, repeat and the first hit wins.
//
// Swaps are booked in the same pass: a swap source and its target are
// both marked consumed. A segment already consumed as an earlier swap
// target makes no draws and stays EffectNone; a swap roll that lands on a
// consumed partner (or has no partner in range) resolves to EffectNone.
func Decide(segs []Segment, cfg Config, rng *rand.Rand) []Decision {
	plan := make([]Decision, len(segs))
	consumed := make([]bool, len(segs))

	for i := range segs {
		if consumed[i] {
			continue
		}

		if rng.Float64() < cfg.Silence {
			plan[i] = Decision{Effect: EffectSilence}
			continue
		}

		if rng.Float64() < cfg.Swap {
			j, ok := swapTarget(i, len(segs), int(cfg.MaxSwapRange), rng)
			if ok && !consumed[j] {
				consumed[i], consumed[j] = true, true
				plan[i] = Decision{
					Effect:     EffectSwap,
					Target:     j,
					Degenerate: segs[i].Len() != segs[j].Len(),
				}
			}
			continue
		}

		if rng.Float64() < cfg.Reverse {
			plan[i] = Decision{Effect: EffectReverse}
			continue
		}

		if rng.Float64() < cfg.Repeat {
			plan[i] = Decision{
				Effect: EffectRepeat,
				Count:  1 + rng.IntN(int(cfg.MaxRepeat)),
			}
		}
	}

	return plan
}

// swapTarget picks j != i uniformly from [i-maxRange, i+maxRange]
// clamped to [0, n).
func swapTarget(i, n, maxRange int, rng *rand.Rand) (int, bool) {
	lo := max(0, i-maxRange)
	hi := min(n-1, i+maxRange)

	candidates := hi - lo // i itself is excluded
	if candidates <= 0 {
		return 0, false
	}

	j := lo + rng.IntN(candidates)
	if j >= i {
		j++
	}

	return j, true
}

// Tally counts the effects in a plan. Degenerate swaps are counted under
// EffectNone since they leave the audio untouched.
func Tally(plan []Decision) map[Effect]int {
	counts := make(map[Effect]int, 5)
	for _, d := range plan {
		if d.Effect == EffectSwap && d.Degenerate {
			counts[EffectNone]++
			continue
		}
		counts[d.Effect]++
	}

	return counts
}
