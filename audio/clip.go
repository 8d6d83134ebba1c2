// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Clip is a fully decoded, immutable block of interleaved PCM.
// Many voices can read the same Clip at once; each gets its own cursor
// through Source.
type Clip struct {
	sampleRate int
	channels   int
	samples    []float32
}

// NewClip wraps already decoded samples. The slice is not copied and
// must not be changed afterwards.
func NewClip(sampleRate, channels int, samples []float32) (*Clip, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, ErrInvalidFormat
	}
	if len(samples) < channels {
		return nil, ErrEmptyClip
	}

	// Drop a trailing partial frame
	whole := len(samples) - len(samples)%channels

	return &Clip{
		sampleRate: sampleRate,
		channels:   channels,
		samples:    samples[:whole],
	}, nil
}

// Load drains src to the end and closes it.
//
// Key clips are short, so holding the whole decoded stream in memory is
// cheaper than decoding again every time a voice starts.
func Load(src Source) (*Clip, error) {
	defer src.Close()

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	// Keep reads frame aligned
	if rem := bufSize % src.Channels(); rem != 0 {
		bufSize += src.Channels() - rem
	}

	// ~250ms up front covers a typical key click without growing
	samples := make([]float32, 0, src.SampleRate()*src.Channels()/4)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("decoding clip: %w", err)
		}

		if n == 0 {
			// A source that returns nothing without EOF would spin forever
			break
		}
	}

	return NewClip(src.SampleRate(), src.Channels(), samples)
}

func (c *Clip) SampleRate() int { return c.sampleRate }
func (c *Clip) Channels() int   { return c.channels }

// Frames is the clip length in sample frames.
func (c *Clip) Frames() int { return len(c.samples) / c.channels }

func (c *Clip) Duration() time.Duration {
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.sampleRate)
}

// Source returns a new reader positioned at the start of the clip.
func (c *Clip) Source() Source {
	return &clipSource{clip: c}
}

type clipSource struct {
	clip *Clip
	pos  int
}

func (s *clipSource) SampleRate() int { return s.clip.sampleRate }
func (s *clipSource) Channels() int   { return s.clip.channels }
func (s *clipSource) BufSize() int    { return 4096 }
func (s *clipSource) Close() error    { return nil }

func (s *clipSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.clip.samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.clip.samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.clip.samples) {
		return n, io.EOF
	}
	return n, nil
}
