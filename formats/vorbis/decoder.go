// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/typingsounds/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader we use; tests substitute it.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 }

// ReadSamples decodes straight into dst. oggvorbis already produces
// interleaved float32 and counts in samples, so no staging is needed.
func (s *source) ReadSamples(dst []float32) (int, error) {
	// Keep whole frames so interleaving never drifts
	usable := len(dst) - len(dst)%s.channels
	if usable == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:usable])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis: %w", err)
	}
	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding ogg vorbis header: %w", err)
	}

	if dec.Channels() == 0 || dec.SampleRate() == 0 {
		return nil, ErrUnsupportedLayout
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
