// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestStereoMixer_Layouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		wantL    func(frame int) float32
		wantR    func(frame int) float32
	}{
		{
			name:     "mono duplicated",
			channels: 1,
			wantL:    func(f int) float32 { return float32(f) },
			wantR:    func(f int) float32 { return float32(f) },
		},
		{
			name:     "stereo passthrough",
			channels: 2,
			wantL:    func(f int) float32 { return float32(f) },
			wantR:    func(f int) float32 { return float32(f) + 1000 },
		},
		{
			name:     "surround keeps front pair",
			channels: 6,
			wantL:    func(f int) float32 { return float32(f) },
			wantR:    func(f int) float32 { return float32(f) + 1000 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewStereoMixer(newRampSource(8000, tt.channels, 40))
			if m.Channels() != 2 {
				t.Fatalf("Channels() = %d, want 2", m.Channels())
			}

			out, err := drain(m, 16)
			if err != nil {
				t.Fatalf("drain() error = %v", err)
			}
			if len(out) != 80 {
				t.Fatalf("got %d samples, want 80", len(out))
			}

			for f := range 40 {
				if out[2*f] != tt.wantL(f) || out[2*f+1] != tt.wantR(f) {
					t.Fatalf("frame %d = [%v %v], want [%v %v]",
						f, out[2*f], out[2*f+1], tt.wantL(f), tt.wantR(f))
				}
			}
		})
	}
}

func TestStereoMixer_OddDst(t *testing.T) {
	t.Parallel()

	m := NewStereoMixer(newRampSource(8000, 1, 10))
	if _, err := m.ReadSamples(make([]float32, 3)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want %v", err, ErrInvalidDstSize)
	}
}

func TestStereoMixer_GrowsBuffer(t *testing.T) {
	t.Parallel()

	m := NewStereoMixer(newConstantSource(8000, 4, 5000, 0.25))

	// 8192 stereo samples needs 16384 samples from a 4-channel source
	buf := make([]float32, 8192)
	n, err := m.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 8192 {
		t.Fatalf("ReadSamples() n = %d, want 8192", n)
	}
	for i := range n {
		if buf[i] != 0.25 {
			t.Fatalf("buf[%d] = %v, want 0.25", i, buf[i])
		}
	}
}
