// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes WAV clips.
//
// Decoding uses github.com/go-audio/wav and accepts 16, 24 and 32-bit
// integer PCM with any channel count and sample rate. Extra RIFF chunks
// are skipped.
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Writing always produces 16-bit PCM with a canonical 44-byte header:
//
//	err := wav.WriteWAV16(file, 44100, samples)          // mono int16
//	err := wav.WriteFloat(file, 44100, 2, interleaved)   // float32, clipped
//
// Encode goes through the go-audio encoder and needs a seekable file:
//
//	err := wav.Encode(f, 44100, 1, samples)
package wav
