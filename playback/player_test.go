// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/ik5/typingsounds/audio"
	"github.com/ik5/typingsounds/formats"
	"github.com/ik5/typingsounds/formats/wav"
	"github.com/ik5/typingsounds/voice"
)

// writeClip stores a mono 16-bit WAV of frames copies of value.
func writeClip(t *testing.T, name string, rate, frames int, value int16) string {
	t.Helper()

	samples := make([]int16, frames)
	for i := range samples {
		samples[i] = value
	}

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, rate, samples); err != nil {
		t.Fatal(err)
	}
	return path
}

func newPlayer(t *testing.T, rate int) *Player {
	t.Helper()

	p, err := New(formats.NewRegistry(), rate)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

// drainFrames pulls s until it runs out and returns the frames produced.
func drainFrames(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) [][2]float64 {
	t.Helper()

	var out [][2]float64
	buf := make([][2]float64, 256)
	for range 10000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestNew_InvalidRate(t *testing.T) {
	t.Parallel()

	if _, err := New(formats.NewRegistry(), 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("New() error = %v, want %v", err, ErrInvalidSampleRate)
	}
}

func TestPlayer_LoadErrors(t *testing.T) {
	t.Parallel()

	p := newPlayer(t, 44100)
	dir := t.TempDir()

	tests := []struct {
		name    string
		ref     string
		wantErr error
	}{
		{"unknown extension", filepath.Join(dir, "key.flac"), audio.ErrUnsupportedFormat},
		{"no extension", filepath.Join(dir, "key"), audio.ErrNoExtension},
		{"missing file", filepath.Join(dir, "key.wav"), os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := p.Load(tt.ref, func() {})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlayer_ClipCached(t *testing.T) {
	t.Parallel()

	p := newPlayer(t, 44100)
	ref := writeClip(t, "key.wav", 44100, 441, 1000)

	a, err := p.Clip(ref)
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Clip(ref)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("clip decoded twice")
	}
	if a.Frames() != 441 || a.Channels() != 1 {
		t.Errorf("clip = %d frames, %d channels", a.Frames(), a.Channels())
	}
}

func TestPlayer_StreamVolumeAndRate(t *testing.T) {
	t.Parallel()

	const frames = 1000
	p := newPlayer(t, 8000)
	c, err := p.Clip(writeClip(t, "key.wav", 8000, frames, 16384))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		volume     float64
		rate       float64
		wantFrames int
		wantLevel  float64
	}{
		{"unity", 1, 1, frames, 0.5},
		{"half volume", 0.5, 1, frames, 0.25},
		{"muted volume", 0, 1, frames, 0},
		{"double rate", 1, 2, frames / 2, 0.5},
		{"half rate", 1, 0.5, frames*2 - 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := p.stream(c, tt.volume, tt.rate)
			if err != nil {
				t.Fatal(err)
			}
			out := drainFrames(t, s)

			if diff := len(out) - tt.wantFrames; diff < -1 || diff > 1 {
				t.Errorf("got %d frames, want %d", len(out), tt.wantFrames)
			}
			for i, f := range out {
				if math.Abs(f[0]-tt.wantLevel) > 1e-6 || f[0] != f[1] {
					t.Fatalf("frame %d = %v, want both channels at %v", i, f, tt.wantLevel)
				}
			}
		})
	}
}

func TestPlayer_StreamInvalidRate(t *testing.T) {
	t.Parallel()

	p := newPlayer(t, 8000)
	c, err := p.Clip(writeClip(t, "key.wav", 8000, 10, 1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.stream(c, 1, 0); !errors.Is(err, audio.ErrInvalidRate) {
		t.Errorf("stream() error = %v, want %v", err, audio.ErrInvalidRate)
	}
}

func TestHandle_EndedOncePerStart(t *testing.T) {
	t.Parallel()

	p := newPlayer(t, 8000)
	ref := writeClip(t, "key.wav", 8000, 300, 8000)

	var ended atomic.Int32
	h, err := p.Load(ref, func() { ended.Add(1) })
	if err != nil {
		t.Fatal(err)
	}

	h.DisablePitchPreservation()
	h.SetVolume(0.8)
	h.SetPlaybackRate(1.02)
	h.Start()
	h.Start()

	if p.Active() != 2 {
		t.Fatalf("Active() = %d, want 2", p.Active())
	}

	buf := make([][2]float64, 128)
	for i := 0; i < 100 && p.Active() > 0; i++ {
		p.Streamer().Stream(buf)
	}

	if p.Active() != 0 {
		t.Fatalf("Active() = %d after draining", p.Active())
	}
	if got := ended.Load(); got != 2 {
		t.Errorf("ended fired %d times, want 2", got)
	}
}

func TestHandle_BadRateStillEnds(t *testing.T) {
	t.Parallel()

	for _, rate := range []float64{-1, 0, math.NaN(), math.Inf(1)} {
		p := newPlayer(t, 8000)
		ref := writeClip(t, "key.wav", 8000, 10, 1)

		var ended atomic.Int32
		h, err := p.Load(ref, func() { ended.Add(1) })
		if err != nil {
			t.Fatal(err)
		}

		h.SetPlaybackRate(rate)
		h.Start()

		if ended.Load() != 1 {
			t.Errorf("rate %v: ended fired %d times, want 1", rate, ended.Load())
		}
		if p.Active() != 0 {
			t.Errorf("rate %v: Active() = %d, want 0", rate, p.Active())
		}
	}
}

func TestPlayer_DrivesVoicePool(t *testing.T) {
	t.Parallel()

	p := newPlayer(t, 8000)
	ref := writeClip(t, "space.wav", 8000, 200, 4000)

	pool, err := voice.NewPool(p, ref, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer pool.Close()

	if !pool.Play(1, true, 65) || !pool.Play(1, true, 66) {
		t.Fatal("first two plays must start")
	}
	if pool.Play(1, true, 67) {
		t.Fatal("third play must be dropped")
	}

	buf := make([][2]float64, 128)
	for i := 0; i < 100 && p.Active() > 0; i++ {
		p.Streamer().Stream(buf)
	}

	if pool.Available() != 2 {
		t.Errorf("Available() = %d after clips ended, want 2", pool.Available())
	}
}

func TestPlayer_Close(t *testing.T) {
	t.Parallel()

	p, err := New(formats.NewRegistry(), 8000)
	if err != nil {
		t.Fatal(err)
	}
	ref := writeClip(t, "enter.wav", 8000, 100, 1)

	h, err := p.Load(ref, func() {})
	if err != nil {
		t.Fatal(err)
	}
	h.Start()

	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if p.Active() != 0 {
		t.Errorf("Active() = %d after Close", p.Active())
	}
	if _, err := p.Load(ref, func() {}); !errors.Is(err, ErrClosed) {
		t.Errorf("Load() after Close error = %v, want %v", err, ErrClosed)
	}
}
