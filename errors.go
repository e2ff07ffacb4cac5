// SPDX-License-Identifier: EPL-2.0

package wavglitch

import "errors"

// ErrUnsupportedFormat indicates no decoder is registered for an extension.
var ErrUnsupportedFormat = errors.New("unsupported audio format")
