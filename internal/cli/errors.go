// SPDX-License-Identifier: EPL-2.0

package cli

import "errors"

var (
	// ErrSamePath indicates the output would overwrite the input.
	ErrSamePath = errors.New("input path is the same as output path")

	// ErrNoInput indicates the input path is empty.
	ErrNoInput = errors.New("no input file given")
)
