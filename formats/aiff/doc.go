// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF clips, the default export format of several
// macOS sound tools, through github.com/go-audio/aiff.
//
// 16, 24 and 32-bit integer PCM is accepted with any channel count:
//
//	src, err := aiff.Decoder{}.Decode(file)
//	clip, err := audio.Load(src)
package aiff
