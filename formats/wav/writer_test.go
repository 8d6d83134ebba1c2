// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestWritePCM16_Header(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	samples := []int16{1, 2, 3, 4, 5, 6}
	if err := WritePCM16(&buf, 48000, 2, samples); err != nil {
		t.Fatalf("WritePCM16() error = %v", err)
	}

	b := buf.Bytes()
	if len(b) != 44+len(samples)*2 {
		t.Fatalf("file size = %d, want %d", len(b), 44+len(samples)*2)
	}

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(b[4:8]), 36 + 12},
		{"format", uint32(binary.LittleEndian.Uint16(b[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(b[22:24])), 2},
		{"sample rate", binary.LittleEndian.Uint32(b[24:28]), 48000},
		{"byte rate", binary.LittleEndian.Uint32(b[28:32]), 48000 * 4},
		{"block align", uint32(binary.LittleEndian.Uint16(b[32:34])), 4},
		{"bits", uint32(binary.LittleEndian.Uint16(b[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(b[40:44]), 12},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[36:40]) != "data" {
		t.Error("missing RIFF/WAVE/data markers")
	}

	if v := int16(binary.LittleEndian.Uint16(b[44:46])); v != 1 {
		t.Errorf("first sample = %d, want 1", v)
	}
}

func TestWritePCM16_LargerThanChunk(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 20000)
	for i := range samples {
		samples[i] = int16(i)
	}

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	b := buf.Bytes()
	last := int16(binary.LittleEndian.Uint16(b[len(b)-2:]))
	if last != 19999 {
		t.Errorf("last sample = %d, want 19999", last)
	}
}

func TestWritePCM16_InvalidChannels(t *testing.T) {
	t.Parallel()

	if err := WritePCM16(&bytes.Buffer{}, 8000, 0, nil); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("WritePCM16() error = %v, want %v", err, ErrInvalidChannels)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePCM16_WriterError(t *testing.T) {
	t.Parallel()

	if err := WriteWAV16(failingWriter{}, 8000, []int16{1}); err == nil {
		t.Error("WriteWAV16() error = nil, want write failure")
	}
}

func TestToPCM16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float32
		want int16
	}{
		{0, 0},
		{1, math.MaxInt16},
		{-1, -math.MaxInt16},
		{0.5, 16383},
		{2, math.MaxInt16},
		{-3, -math.MaxInt16},
	}

	for _, tt := range tests {
		if got := ToPCM16(tt.in); got != tt.want {
			t.Errorf("ToPCM16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
