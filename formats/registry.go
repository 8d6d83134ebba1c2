// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled decoder into an audio.Registry.
package formats

import (
	"github.com/ik5/typingsounds/audio"
	"github.com/ik5/typingsounds/formats/aiff"
	"github.com/ik5/typingsounds/formats/mp3"
	"github.com/ik5/typingsounds/formats/vorbis"
	"github.com/ik5/typingsounds/formats/wav"
)

// Extensions tried, in order, when a sound is named without one.
var Extensions = []string{"wav", "ogg", "mp3", "aiff", "aif"}

// NewRegistry returns a registry that knows every bundled format.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(wav.Decoder{}, "wav", "wave")
	reg.Register(vorbis.Decoder{}, "ogg", "oga")
	reg.Register(mp3.Decoder{}, "mp3")
	reg.Register(aiff.Decoder{}, "aiff", "aif")
	return reg
}
