// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ik5/wavglitch/glitch"
)

// ParseTempo parses a tempo in BPM within [glitch.MinTempo, glitch.MaxTempo].
func ParseTempo(s string) (float64, error) {
	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}

	if !(v >= glitch.MinTempo && v <= glitch.MaxTempo) {
		return 0, fmt.Errorf("%s is not in 1.0..=4095.0", formatFloat(v))
	}

	return v, nil
}

// ParseFraction parses a note value written as x/y, both in 1..=65535.
func ParseFraction(s string) (glitch.Fraction, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return glitch.Fraction{}, errors.New("segment length must be in x/y format")
	}

	num, err := parseUint16(parts[0])
	if err != nil {
		return glitch.Fraction{}, err
	}

	den, err := parseUint16(parts[1])
	if err != nil {
		return glitch.Fraction{}, err
	}

	if num == 0 || den == 0 {
		return glitch.Fraction{}, errors.New("both numbers must be in 1..=65535")
	}

	return glitch.Fraction{Num: num, Den: den}, nil
}

// ParseProbability parses a probability in [0, 1].
func ParseProbability(s string) (float64, error) {
	v, err := parseFloat(s)
	if err != nil {
		return 0, err
	}

	if !(v >= 0 && v <= 1) {
		return 0, fmt.Errorf("%s is not in 0.0..=1.0", formatFloat(v))
	}

	return v, nil
}

// ParseCount parses a positive 16-bit count such as the maximal swap
// range or number of repetitions.
func ParseCount(s string) (uint16, error) {
	v, err := parseUint16(s)
	if err != nil {
		return 0, err
	}

	if v == 0 {
		return 0, errors.New("0 is not in 1..=65535")
	}

	return v, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("cannot parse float from empty string")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// out of range values come back as ±Inf and fail the range check
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, errors.New("invalid float literal")
	}

	return v, nil
}

func parseUint16(s string) (uint16, error) {
	if s == "" {
		return 0, errors.New("cannot parse integer from empty string")
	}

	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errors.New("number too large to fit in target type")
		}
		return 0, errors.New("invalid digit found in string")
	}

	return uint16(v), nil
}

// formatFloat prints v the shortest way that reads back exactly, with
// infinities spelled inf and -inf.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
