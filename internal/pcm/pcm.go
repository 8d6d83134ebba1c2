// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the integer PCM readers of the go-audio decoders to
// the float32 audio.Source contract.
package pcm

import (
	"errors"
	"io"

	goaudio "github.com/go-audio/audio"
)

var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// IntReader is the part of the go-audio wav and aiff decoders we use.
type IntReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM from an IntReader and normalizes it to [-1,1].
type Source struct {
	dec        IntReader
	sampleRate int
	channels   int
	scale      float32
	intBuf     *goaudio.IntBuffer
}

// NewSource checks bitDepth and wraps dec.
func NewSource(dec IntReader, sampleRate, channels, bitDepth int) (*Source, error) {
	scale, err := Scale(bitDepth)
	if err != nil {
		return nil, err
	}

	return &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      scale,
	}, nil
}

// Scale returns the full-scale magnitude for signed PCM of bitDepth bits.
func Scale(bitDepth int) (float32, error) {
	switch bitDepth {
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	default:
		return 0, ErrUnsupportedBitDepth
	}
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }
func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float32(s.intBuf.Data[i]) / s.scale
	}

	// A short read without error is how go-audio signals the end
	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}
