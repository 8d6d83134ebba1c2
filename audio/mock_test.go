// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
)

// mockSource generates totalFrames frames from waveform.
type mockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	closed      bool
	failAfter   int // return errMock once this many frames were produced, 0 disables
	waveform    func(frame int, channel int) float32
}

var errMock = errors.New("mock read failure")

func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

func newConstantSource(sampleRate, channels, totalFrames int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// newRampSource emits the frame index as the sample value, offset per channel.
func newRampSource(sampleRate, channels, totalFrames int) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame int, channel int) float32 {
		return float32(frame) + float32(channel)*1000
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 64 }
func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter > 0 && m.generated >= m.failAfter {
		return 0, errMock
	}
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

// drain reads src to the end with the given buffer size.
func drain(src Source, bufSize int) ([]float32, error) {
	buf := make([]float32, bufSize)
	var out []float32
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}
