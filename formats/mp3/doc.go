// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 clips with github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo at the file's sample rate,
// even for mono files, because that is what go-mp3 produces.
//
//	src, err := mp3.Decoder{}.Decode(file)
package mp3
