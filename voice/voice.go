// SPDX-License-Identifier: EPL-2.0

// Package voice implements a fixed-size pool of playback voices for one
// sound.
//
// A Pool owns N voices bound to the same clip. Play hands the request to
// an idle voice and returns at once; when the host reports that the voice
// finished, it becomes idle again. When every voice is busy the request is
// dropped: a missing click is less noticeable than a queued or cut off one.
package voice

// Handle is one host playback unit bound to a fixed resource.
type Handle interface {
	SetVolume(v float64)
	SetPlaybackRate(r float64)
	// DisablePitchPreservation makes rate changes shift pitch.
	DisablePitchPreservation()
	// Start plays the resource from the beginning. Every Start must be
	// followed by exactly one call to the ended callback given to Load.
	Start()
}

// Backend creates handles. ended is invoked by the host when playback of
// the handle finishes naturally; it may be called from any goroutine.
type Backend interface {
	Load(ref string, ended func()) (Handle, error)
}

// State is the lifecycle of a single voice.
type State uint8

const (
	Idle State = iota
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	default:
		return "unknown"
	}
}

// Info describes one voice: its state and the settings of its last play.
type Info struct {
	State  State
	Volume float64
	Rate   float64
}

// Stats counts Play outcomes since the pool was created.
type Stats struct {
	Played  uint64
	Dropped uint64
}

type voice struct {
	handle Handle
	state  State
	volume float64
	rate   float64
}
