// SPDX-License-Identifier: EPL-2.0

package glitch

import (
	"fmt"
	"math"
)

const (
	MinTempo = 1.0
	MaxTempo = 4095.0
)

// Fraction is a note value relative to a whole note, e.g. 1/16.
type Fraction struct {
	Num uint16
	Den uint16
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Float returns num/den, or 0 when the denominator is zero.
func (f Fraction) Float() float64 {
	if f.Den == 0 {
		return 0
	}
	return float64(f.Num) / float64(f.Den)
}

// Config holds every user-facing knob of the engine. The zero value is
// not valid; start from DefaultConfig.
type Config struct {
	// Tempo in quarter notes per minute, 1.0 to 4095.0.
	Tempo float64
	// Length of one segment as a note value.
	Length Fraction

	// Probabilities in [0,1], rolled in this order per segment.
	Silence float64
	Swap    float64
	Reverse float64
	Repeat  float64

	// MaxSwapRange bounds the index distance to a swap partner.
	MaxSwapRange uint16
	// MaxRepeat bounds the number of extra repetitions.
	MaxRepeat uint16

	// PerChannel draws independent decisions for every channel instead
	// of one decision list shared by all channels.
	PerChannel bool
}

// DefaultConfig mirrors the command line defaults: 100 BPM, 1/16 notes,
// all probabilities zero, swap range and repeat bound of 8.
func DefaultConfig() Config {
	return Config{
		Tempo:        100,
		Length:       Fraction{Num: 1, Den: 16},
		MaxSwapRange: 8,
		MaxRepeat:    8,
	}
}

// Validate reports the first parameter outside its documented range.
// Returned errors satisfy errors.Is(err, ErrInvalidConfig).
func (c Config) Validate() error {
	if math.IsNaN(c.Tempo) || c.Tempo < MinTempo || c.Tempo > MaxTempo {
		return newConfigError("tempo", c.Tempo, "is not in 1.0..=4095.0")
	}

	if c.Length.Num == 0 || c.Length.Den == 0 {
		return newConfigError("length", c.Length, "both numbers must be in 1..=65535")
	}

	probs := []struct {
		name string
		v    float64
	}{
		{"silence probability", c.Silence},
		{"swap probability", c.Swap},
		{"reverse probability", c.Reverse},
		{"repeat probability", c.Repeat},
	}
	for _, p := range probs {
		if math.IsNaN(p.v) || p.v < 0 || p.v > 1 {
			return newConfigError(p.name, p.v, "is not in 0.0..=1.0")
		}
	}

	if c.MaxSwapRange == 0 {
		return newConfigError("max swap range", c.MaxSwapRange, "is not in 1..=65535")
	}

	if c.MaxRepeat == 0 {
		return newConfigError("max repeat", c.MaxRepeat, "is not in 1..=65535")
	}

	return nil
}

// Inert reports whether no effect can ever fire.
func (c Config) Inert() bool {
	return c.Silence == 0 && c.Swap == 0 && c.Reverse == 0 && c.Repeat == 0
}
