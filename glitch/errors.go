// SPDX-License-Identifier: EPL-2.0

package glitch

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrDegenerateSwap reports a swap between segments of different
	// length. The engine treats it as a no-op.
	ErrDegenerateSwap = errors.New("swap between segments of unequal length")
)

// ConfigError describes a single out-of-range parameter.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %v %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func newConfigError(field string, value any, reason string) *ConfigError {
	return &ConfigError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}
