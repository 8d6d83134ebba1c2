// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoMixer fits any source to two interleaved channels: mono is copied
// to both sides, stereo passes through and wider layouts keep their
// front left/right pair.
type StereoMixer struct {
	src Source
	tmp []float32
}

func NewStereoMixer(src Source) *StereoMixer {
	return &StereoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *StereoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *StereoMixer) Channels() int   { return 2 }
func (m *StereoMixer) BufSize() int    { return m.src.BufSize() }
func (m *StereoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing mixer source: %w", err)
	}

	return nil
}

func (m *StereoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	channels := m.src.Channels()
	if channels == 2 {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / 2
	samplesNeeded := frames * channels

	// Grow but never shrink
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, samplesNeeded)
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}
	got := n / channels

	switch channels {
	case 1:
		for f := range got {
			dst[f<<1] = m.tmp[f]
			dst[f<<1+1] = m.tmp[f]
		}
	default:
		for f := range got {
			base := f * channels
			dst[f<<1] = m.tmp[base]
			dst[f<<1+1] = m.tmp[base+1]
		}
	}

	return got * 2, err
}
