// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fakes shared by tests across packages.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio from a waveform function.
// It implements audio.Source without importing it.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame int, channel int) float32
}

func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewClickSource decays a short tone the way a key click does.
func NewClickSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Exp(-t*60) * math.Sin(2*math.Pi*2000*t))
	})
}

func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}
	return frames * m.channels, nil
}
