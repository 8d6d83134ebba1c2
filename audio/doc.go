// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM building blocks used to turn a sound file
// into something a voice can play.
//
// # Source Interface
//
// Every decoder and processor implements Source, so stages chain:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1.0, 1.0]. ReadSamples returns
// io.EOF once the stream is finished.
//
// # Clips
//
// Typing sounds are short, so a decoded file is loaded once into a Clip
// and every voice reads it through its own cursor:
//
//	clip, err := audio.Load(src)
//	r := clip.Source()
//
// # Playback Rate
//
// NewRateResampler converts a source to the output device rate and scales
// its speed at the same time. Rate 1.025 plays 2.5% faster and therefore
// 2.5% higher; pitch preservation is never applied.
//
//	r, err := audio.NewRateResampler(clip.Source(), 48000, 1.025)
//	stereo := audio.NewStereoMixer(r)
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register(wav.Decoder{}, "wav", "wave")
//	decoder, err := registry.ForPath("sounds/key.wav")
package audio
