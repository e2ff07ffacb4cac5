// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/wavglitch/utils"
)

// Resampler streams from src to a target sample rate using Catmull-Rom
// cubic interpolation over interleaved frames. Channel count and bit
// depth are preserved. A one-pole low-pass is applied when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// window of four frames around the read head: t-1, t0, t+1, t+2
	win    [4][]float32
	filled int // number of valid frames in win, counted from the front
	primed bool
	eof    bool

	// fractional position between win[1] and win[2]
	pos float64

	frame []float32

	lowPass bool
	warm    bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    ratio,
		channels: channels,
		frame:    make([]float32, channels),
		lowPass:  ratio > 1,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BitDepth() int   { return r.src.BitDepth() }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}

	return nil
}

// readFrame pulls one frame from the source into r.frame.
func (r *Resampler) readFrame() (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.frame)
	if errors.Is(err, io.EOF) {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("resampler read: %w", err)
	}

	if n < r.channels {
		r.eof = true
		return false, nil
	}

	if r.lowPass {
		if !r.warm {
			// start the filter settled on the first frame
			copy(r.state, r.frame)
			r.warm = true
		}
		for c, v := range r.frame {
			r.state[c] = r.alpha*v + (1-r.alpha)*r.state[c]
			r.frame[c] = r.state[c]
		}
	}

	return true, nil
}

// prime fills the window. The first frame is duplicated into t-1 so the
// stream starts exactly on the first input frame.
func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.readFrame()
	if err != nil || !ok {
		return err
	}
	copy(r.win[0], r.frame)
	copy(r.win[1], r.frame)
	r.filled = 2

	for i := 2; i < 4; i++ {
		ok, err := r.readFrame()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		copy(r.win[i], r.frame)
		r.filled++
	}

	return nil
}

// advance shifts the window one frame forward. It reports false once
// there is no frame left to interpolate towards.
func (r *Resampler) advance() (bool, error) {
	first := r.win[0]
	copy(r.win[:], r.win[1:])
	r.win[3] = first
	r.filled--

	if r.filled == 3 {
		ok, err := r.readFrame()
		if err != nil {
			return false, err
		}
		if ok {
			copy(r.win[3], r.frame)
			r.filled++
		}
	}

	return r.filled >= 2, nil
}

// ReadSamples produces interleaved samples at the target rate.
// len(dst) must be a multiple of Channels().
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels

	for written < frames {
		for r.pos >= 1 {
			r.pos--
			ok, err := r.advance()
			if err != nil {
				return written * r.channels, err
			}
			if !ok {
				r.filled = 0
				break
			}
		}

		if r.filled < 2 {
			return written * r.channels, io.EOF
		}

		y3 := r.win[3]
		if r.filled < 4 {
			y3 = r.win[2]
		}
		y2 := r.win[2]
		if r.filled < 3 {
			// only t0 is left: hold it
			y2, y3 = r.win[1], r.win[1]
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], y2[c], y3[c], x)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
