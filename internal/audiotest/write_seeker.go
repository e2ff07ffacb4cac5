// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

// WriteSeeker is an in-memory io.WriteSeeker for encoders that patch
// headers after writing the payload.
type WriteSeeker struct {
	buf []byte
	pos int64
}

func (w *WriteSeeker) Write(p []byte) (int, error) {
	end := w.pos + int64(len(p))
	if end > int64(len(w.buf)) {
		grown := make([]byte, end)
		copy(grown, w.buf)
		w.buf = grown
	}

	copy(w.buf[w.pos:end], p)
	w.pos = end

	return len(p), nil
}

func (w *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = w.pos + offset
	case io.SeekEnd:
		next = int64(len(w.buf)) + offset
	default:
		return 0, errors.New("audiotest: invalid whence")
	}

	if next < 0 {
		return 0, errors.New("audiotest: negative position")
	}

	w.pos = next
	return next, nil
}

// Bytes returns everything written so far.
func (w *WriteSeeker) Bytes() []byte { return w.buf }
