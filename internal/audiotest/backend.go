// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"sync"

	"github.com/ik5/typingsounds/voice"
)

var ErrLoadRefused = errors.New("fake backend refused to load")

// FakeBackend records every handle it creates. Clips never finish on
// their own; tests call End to deliver the ended notification.
type FakeBackend struct {
	mu      sync.Mutex
	handles []*FakeHandle
	// FailAfter makes Load fail once this many handles exist; 0 disables.
	FailAfter int
	// FailRefs makes Load fail for these resource refs.
	FailRefs map[string]bool
}

var _ voice.Backend = (*FakeBackend)(nil)

func (b *FakeBackend) Load(ref string, ended func()) (voice.Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.FailRefs[ref] || (b.FailAfter > 0 && len(b.handles) >= b.FailAfter) {
		return nil, ErrLoadRefused
	}

	h := &FakeHandle{Ref: ref, ended: ended, volume: 1, rate: 1}
	b.handles = append(b.handles, h)
	return h, nil
}

// Handles returns the handles created so far, in load order.
func (b *FakeBackend) Handles() []*FakeHandle {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]*FakeHandle(nil), b.handles...)
}

// Playing returns handles that were started and have not ended yet.
func (b *FakeBackend) Playing() []*FakeHandle {
	var out []*FakeHandle
	for _, h := range b.Handles() {
		if h.IsPlaying() {
			out = append(out, h)
		}
	}
	return out
}

// FakeHandle is a voice.Handle that only records calls.
type FakeHandle struct {
	Ref string

	mu             sync.Mutex
	ended          func()
	volume         float64
	rate           float64
	pitchPreserved bool
	pitchSet       bool
	starts         int
	playing        bool
	closed         bool
}

func (h *FakeHandle) SetVolume(v float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.volume = v
}

func (h *FakeHandle) SetPlaybackRate(r float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rate = r
}

func (h *FakeHandle) DisablePitchPreservation() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pitchSet = true
	h.pitchPreserved = false
}

func (h *FakeHandle) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts++
	h.playing = true
}

func (h *FakeHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}

// End finishes playback and fires the ended callback, as the host would.
func (h *FakeHandle) End() {
	h.mu.Lock()
	h.playing = false
	ended := h.ended
	h.mu.Unlock()

	ended()
}

func (h *FakeHandle) Volume() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.volume
}

func (h *FakeHandle) Rate() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rate
}

func (h *FakeHandle) Starts() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.starts
}

func (h *FakeHandle) IsPlaying() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.playing
}

// PitchPreservationDisabled reports whether DisablePitchPreservation ran.
func (h *FakeHandle) PitchPreservationDisabled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pitchSet && !h.pitchPreserved
}

func (h *FakeHandle) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}
