// SPDX-License-Identifier: EPL-2.0

// Package playback plays decoded clips on the system audio device.
//
// A Player implements voice.Backend: every handle it loads shares the
// decoded clip of its resource and, when started, streams it through a
// rate-scaling resampler and a gain stage into one mixer feeding the
// speaker. When the clip runs out the handle's ended callback fires from
// the audio goroutine.
//
//	reg := formats.NewRegistry()
//	player, err := playback.Open(reg, 44100, 20*time.Millisecond)
//	if err != nil {
//		return err
//	}
//	defer player.Close()
//
//	pool, err := voice.NewPool(player, "sounds/key.wav", voice.DefaultSize)
package playback
