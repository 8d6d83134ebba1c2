// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Encode writes interleaved float32 samples as a 16-bit PCM WAV. The
// chunk sizes are patched on completion, so ws must be seekable; use
// WriteFloat for plain writers.
func Encode(ws io.WriteSeeker, sampleRate, channels int, samples []float32) error {
	if channels <= 0 {
		return ErrInvalidChannels
	}

	data := make([]int, len(samples))
	for i, x := range samples {
		data[i] = int(ToPCM16(x))
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, channels, formatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing wav: %w", err)
	}
	return nil
}
