// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"github.com/gopxl/beep"

	"github.com/ik5/typingsounds/audio"
)

// Handle plays one clip. The owning voice pool serializes calls between
// Start and the ended callback.
type Handle struct {
	player *Player
	clip   *audio.Clip
	ended  func()
	volume float64
	rate   float64
}

func (h *Handle) SetVolume(v float64)       { h.volume = v }
func (h *Handle) SetPlaybackRate(r float64) { h.rate = r }

// DisablePitchPreservation is a no-op: the resampler scales rate and
// pitch together.
func (h *Handle) DisablePitchPreservation() {}

// Start queues the clip on the mixer from its first frame. If the stream
// cannot be built, ended fires right away so the voice is not lost.
func (h *Handle) Start() {
	s, err := h.player.stream(h.clip, h.volume, h.rate)
	if err != nil {
		h.player.log.Warn().Err(err).Float64("rate", h.rate).Msg("cannot start voice")
		h.ended()
		return
	}

	h.player.add(beep.Seq(s, beep.Callback(h.ended)))
}
