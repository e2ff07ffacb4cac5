// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"strconv"

	"github.com/ik5/wavglitch/glitch"
)

// The flag values below implement pflag.Value so range errors surface
// while the command line is parsed, with the flag name attached.

type tempoValue float64

func (v *tempoValue) String() string { return formatFloat(float64(*v)) }
func (v *tempoValue) Type() string   { return "value" }

func (v *tempoValue) Set(s string) error {
	t, err := ParseTempo(s)
	if err != nil {
		return err
	}
	*v = tempoValue(t)
	return nil
}

type fractionValue glitch.Fraction

func (v *fractionValue) String() string { return glitch.Fraction(*v).String() }
func (v *fractionValue) Type() string   { return "x/y" }

func (v *fractionValue) Set(s string) error {
	f, err := ParseFraction(s)
	if err != nil {
		return err
	}
	*v = fractionValue(f)
	return nil
}

type probabilityValue float64

func (v *probabilityValue) String() string { return formatFloat(float64(*v)) }
func (v *probabilityValue) Type() string   { return "prob" }

func (v *probabilityValue) Set(s string) error {
	p, err := ParseProbability(s)
	if err != nil {
		return err
	}
	*v = probabilityValue(p)
	return nil
}

type countValue uint16

func (v *countValue) String() string { return strconv.FormatUint(uint64(*v), 10) }
func (v *countValue) Type() string   { return "max" }

func (v *countValue) Set(s string) error {
	n, err := ParseCount(s)
	if err != nil {
		return err
	}
	*v = countValue(n)
	return nil
}
