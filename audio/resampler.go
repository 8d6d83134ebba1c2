// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"
)

// Resampler streams src at dstRate, optionally scaled by a playback rate.
//
// A playback rate above 1 consumes source frames faster than real time,
// so the clip ends sooner and sounds higher; below 1 it sounds lower.
// Pitch is never preserved. Works on interleaved samples and keeps the
// channel count.
type Resampler struct {
	src      Source
	dstRate  int
	rate     float64
	step     float64 // source frames per output frame
	channels int

	// Sliding window of 4 frames for cubic interpolation:
	// window[0] = t-1, window[1] = t0, window[2] = t+1, window[3] = t+2.
	// valid[i] is false once the slot only holds a copy of the last real frame.
	window [4][]float32
	valid  [4]bool
	primed bool
	eof    bool

	// Fractional position between window[1] and window[2]
	pos float64

	frameBuf []float32
}

// NewResampler converts src to dstRate without changing pitch.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	return NewRateResampler(src, dstRate, 1.0)
}

// NewRateResampler converts src to dstRate while playing it rate times
// faster. rate must be positive and finite.
func NewRateResampler(src Source, dstRate int, rate float64) (*Resampler, error) {
	if !(rate > 0) || math.IsInf(rate, 1) {
		return nil, ErrInvalidRate
	}
	if dstRate <= 0 {
		return nil, ErrInvalidFormat
	}

	channels := src.Channels()
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		rate:     rate,
		step:     float64(src.SampleRate()) * rate / float64(dstRate),
		channels: channels,
		frameBuf: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

// Rate is the playback rate the resampler was built with.
func (r *Resampler) Rate() float64 { return r.rate }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// readFrame pulls one frame from src into dst. It reports false once the
// source is exhausted.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.frameBuf)
	if err == io.EOF {
		r.eof = true
	} else if err != nil {
		return false, fmt.Errorf("reading source frame: %w", err)
	}

	if n < r.channels {
		r.eof = true
		return false, nil
	}

	copy(dst, r.frameBuf)
	return true, nil
}

// prime fills the window. The first frame is duplicated into window[0]
// so output starts exactly on source frame 0.
func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.readFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.window[0], r.window[1])
	r.valid[0], r.valid[1] = true, true

	for i := 2; i < 4; i++ {
		ok, err := r.readFrame(r.window[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.window[i], r.window[i-1])
		}
		r.valid[i] = ok
	}

	return nil
}

// advance shifts the window by one source frame.
func (r *Resampler) advance() error {
	first := r.window[0]
	copy(r.window[:], r.window[1:])
	copy(r.valid[:], r.valid[1:])

	// Reuse the dropped slice for the incoming frame
	r.window[3] = first

	ok, err := r.readFrame(r.window[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.window[3], r.window[2])
	}
	r.valid[3] = ok

	return nil
}

// ReadSamples produces interleaved samples at the destination rate.
// dst length should be a multiple of r.channels.
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
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		if !r.valid[1] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		base := written * r.channels
		for c := range r.channels {
			dst[base+c] = cubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], alpha)
		}
		written++

		r.pos += r.step
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
	}

	return written * r.channels, nil
}

// cubicInterpolate is a Catmull-Rom spline through y0..y3, evaluated at
// x in [0,1] between y1 and y2.
func cubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}
