// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/ik5/typingsounds/pitch"
)

// DefaultSize is enough voices for fast typists without choking.
const DefaultSize = 10

// Pool dispatches plays of one resource across a fixed set of voices.
//
// voices is an arena; idle is a LIFO stack of indices into it. A voice
// index is on the stack exactly when its state is Idle.
type Pool struct {
	ref       string
	variation float64

	mu      sync.Mutex
	voices  []voice
	idle    []int
	closed  bool
	played  uint64
	dropped uint64
}

// Option configures a Pool.
type Option func(*Pool)

// WithPitchVariation sets the largest relative rate change applied when
// Play is asked to vary pitch.
func WithPitchVariation(k float64) Option {
	return func(p *Pool) {
		p.variation = k
	}
}

// NewPool loads size handles for ref from backend. All voices start idle.
// If any handle fails to load, the ones already loaded are closed and the
// error is returned.
func NewPool(backend Backend, ref string, size int, opts ...Option) (*Pool, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	p := &Pool{
		ref:       ref,
		variation: pitch.DefaultVariation,
		voices:    make([]voice, size),
		idle:      make([]int, 0, size),
	}
	for _, opt := range opts {
		opt(p)
	}

	for i := range p.voices {
		h, err := backend.Load(ref, p.endedFunc(i))
		if err != nil {
			closeErr := p.closeHandles(i)
			return nil, errors.Join(fmt.Errorf("loading voice %d of %q: %w", i, ref, err), closeErr)
		}

		h.DisablePitchPreservation()
		p.voices[i] = voice{handle: h, state: Idle, volume: 1, rate: 1}
		p.idle = append(p.idle, i)
	}

	return p, nil
}

func (p *Pool) endedFunc(i int) func() {
	return func() {
		p.release(i)
	}
}

// Play starts an idle voice at volume. volume is expected in [0,1] and is
// passed through unchanged. With varyPitch the rate is derived from seed,
// otherwise it is exactly 1.
//
// Play reports whether a voice was started. An exhausted or closed pool
// drops the request; that is not an error.
func (p *Pool) Play(volume float64, varyPitch bool, seed int64) bool {
	rate := 1.0
	if varyPitch {
		rate = pitch.Rate(p.variation, seed)
	}

	p.mu.Lock()
	if p.closed || len(p.idle) == 0 {
		p.dropped++
		p.mu.Unlock()
		return false
	}

	last := len(p.idle) - 1
	i := p.idle[last]
	p.idle = p.idle[:last]

	v := &p.voices[i]
	v.state = Playing
	v.volume = volume
	v.rate = rate
	h := v.handle
	p.played++
	p.mu.Unlock()

	// The voice is exclusively ours until it ends, so the host is called
	// without holding mu. Hosts may deliver ended while holding their own
	// locks.
	h.SetVolume(volume)
	h.SetPlaybackRate(rate)
	h.Start()

	return true
}

// release returns voice i to the idle stack. Ended notifications for a
// voice that is not playing are ignored, so a voice is never idle twice.
func (p *Pool) release(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.voices[i].state != Playing {
		return
	}

	p.voices[i].state = Idle
	p.idle = append(p.idle, i)
}

// Ref is the resource every voice of the pool plays.
func (p *Pool) Ref() string { return p.ref }

// Size is the fixed number of voices.
func (p *Pool) Size() int { return len(p.voices) }

// Available is the number of idle voices.
func (p *Pool) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.idle)
}

// Voices returns a snapshot of every voice, indexed by voice.
func (p *Pool) Voices() []Info {
	p.mu.Lock()
	defer p.mu.Unlock()

	infos := make([]Info, len(p.voices))
	for i, v := range p.voices {
		infos[i] = Info{State: v.state, Volume: v.volume, Rate: v.rate}
	}
	return infos
}

// Stats returns the play counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Stats{Played: p.played, Dropped: p.dropped}
}

// Close stops the pool from starting voices and releases handles that
// implement io.Closer. Ended notifications arriving later are ignored.
// Close is idempotent.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.idle = p.idle[:0]
	p.mu.Unlock()

	return p.closeHandles(len(p.voices))
}

// closeHandles closes the first n handles.
func (p *Pool) closeHandles(n int) error {
	var errs []error
	for i := range n {
		c, ok := p.voices[i].handle.(io.Closer)
		if !ok {
			continue
		}
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing voice %d of %q: %w", i, p.ref, err))
		}
	}
	return errors.Join(errs...)
}
