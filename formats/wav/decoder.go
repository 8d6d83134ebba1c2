// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/typingsounds/audio"
	"github.com/ik5/typingsounds/internal/pcm"
)

const formatPCM = 1

// Decoder reads integer PCM WAV files. Chunks other than fmt and data
// (LIST, fact, cue, ...) are skipped, which matters for clips exported
// by sound editors.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs to seek between chunks
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, ErrOnlyPCMSupported
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrUnsupportedWavLayout
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	src, err := pcm.NewSource(dec, int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("%w: %d bits", err, dec.BitDepth)
	}

	return src, nil
}
