// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// ieeeExtended encodes a sample rate as the 80-bit float used in COMM chunks.
func ieeeExtended(rate uint32) []byte {
	out := make([]byte, 10)
	exp := uint16(16383 + 31)
	mant := uint64(rate) << 32
	for mant&(1<<63) == 0 {
		mant <<= 1
		exp--
	}
	binary.BigEndian.PutUint16(out[0:2], exp)
	binary.BigEndian.PutUint64(out[2:10], mant)
	return out
}

func buildAIFF(channels, bits int, rate uint32, samples []int16) []byte {
	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, uint16(channels))
	binary.Write(comm, binary.BigEndian, uint32(len(samples)/channels))
	binary.Write(comm, binary.BigEndian, uint16(bits))
	comm.Write(ieeeExtended(rate))

	ssnd := new(bytes.Buffer)
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	for _, s := range samples {
		binary.Write(ssnd, binary.BigEndian, s)
	}

	body := new(bytes.Buffer)
	body.WriteString("AIFF")
	body.WriteString("COMM")
	binary.Write(body, binary.BigEndian, uint32(comm.Len()))
	body.Write(comm.Bytes())
	body.WriteString("SSND")
	binary.Write(body, binary.BigEndian, uint32(ssnd.Len()))
	body.Write(ssnd.Bytes())

	out := new(bytes.Buffer)
	out.WriteString("FORM")
	binary.Write(out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("This is not AIFF data at all, not even close")},
		{"empty", nil},
		{"wav header", []byte("RIFF\x24\x00\x00\x00WAVEfmt ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want %v", err, ErrNotAiffFile)
			}
		})
	}
}

func TestDecoder_Metadata(t *testing.T) {
	t.Parallel()

	data := buildAIFF(2, 16, 44100, []int16{0, 0, 16384, -16384})

	// Plain io.Reader path
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}
