// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"io"

	"github.com/ik5/typingsounds/audio"
)

// sourceStreamer adapts a stereo audio.Source to beep.Streamer.
type sourceStreamer struct {
	src  audio.Source
	buf  []float32
	err  error
	done bool
}

func newSourceStreamer(src audio.Source) *sourceStreamer {
	return &sourceStreamer{src: src}
}

func (s *sourceStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.done {
		return 0, false
	}

	need := len(samples) * 2
	if cap(s.buf) < need {
		s.buf = make([]float32, need)
	}
	buf := s.buf[:need]

	filled := 0
	for filled < need {
		n, err := s.src.ReadSamples(buf[filled:])
		filled += n
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
			s.finish()
			break
		}
		if n == 0 {
			s.finish()
			break
		}
	}

	frames := filled / 2
	for i := range frames {
		samples[i][0] = float64(buf[2*i])
		samples[i][1] = float64(buf[2*i+1])
	}

	if frames == 0 {
		return 0, false
	}
	return frames, true
}

func (s *sourceStreamer) finish() {
	s.done = true
	if err := s.src.Close(); err != nil && s.err == nil {
		s.err = err
	}
}

func (s *sourceStreamer) Err() error { return s.err }
