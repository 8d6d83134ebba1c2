// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/typingsounds/audio"
)

// go-mp3 always produces 16-bit little-endian stereo
const channels = 2

// pcmReader is the part of gomp3.Decoder we use; tests substitute it.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
	carry      int // bytes of an incomplete sample left at the front of buf
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		grown := make([]byte, bytesNeeded)
		copy(grown, s.buf[:s.carry])
		s.buf = grown
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf[s.carry:])
	n += s.carry

	samples := n / 2
	for i := range samples {
		dst[i] = float32(int16(binary.LittleEndian.Uint16(s.buf[2*i:]))) / 32768.0
	}

	// go-mp3 may split a sample across reads
	s.carry = n % 2
	if s.carry == 1 {
		s.buf[0] = s.buf[n-1]
	}

	if samples == 0 && err == nil {
		return 0, nil
	}
	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 header: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
