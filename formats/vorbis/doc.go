// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis clips with github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	clip, err := audio.Load(src)
package vorbis
