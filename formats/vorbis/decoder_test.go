// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	err        error
	lastLen    int
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(p []float32) (int, error) {
	m.lastLen = len(p)
	if m.err != nil {
		return 0, m.err
	}
	if len(m.samples) == 0 {
		return 0, io.EOF
	}
	n := copy(p, m.samples)
	m.samples = m.samples[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("OggS but not really a vorbis stream")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	dec := &mockOggReader{sampleRate: 48000, channels: 2, samples: []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}}
	src := &source{dec: dec, sampleRate: 48000, channels: 2}

	// An odd buffer is trimmed to whole frames
	buf := make([]float32, 5)
	n, err := src.ReadSamples(buf)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = (%d, %v), want (4, nil)", n, err)
	}
	if dec.lastLen != 4 {
		t.Errorf("decoder asked for %d samples, want 4", dec.lastLen)
	}

	n, _ = src.ReadSamples(buf)
	if n != 2 || buf[0] != 0.5 || buf[1] != 0.6 {
		t.Errorf("second read = %d %v, want [0.5 0.6]", n, buf[:n])
	}

	if n, err := src.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Errorf("read at end = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamples_TooSmall(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggReader{channels: 2}, channels: 2}
	if n, err := src.ReadSamples(make([]float32, 1)); n != 0 || err != nil {
		t.Errorf("ReadSamples() = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt packet")
	src := &source{dec: &mockOggReader{channels: 1, err: boom}, channels: 1}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}
