// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/typingsounds/audio"
	"github.com/ik5/typingsounds/internal/pcm"
)

// Decoder reads big-endian integer PCM AIFF files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.NumChannels == 0 || format.SampleRate == 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	src, err := pcm.NewSource(dec, format.SampleRate, format.NumChannels, int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	return src, nil
}
