// SPDX-License-Identifier: EPL-2.0

package typingsounds

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ik5/typingsounds/pitch"
	"github.com/ik5/typingsounds/settings"
	"github.com/ik5/typingsounds/voice"
)

// Plugin turns host key events into clicks.
type Plugin struct {
	host    Host
	backend voice.Backend
	store   settings.Store
	log     zerolog.Logger

	poolSize  int
	variation float64
	varyPitch bool

	mu         sync.RWMutex
	settings   settings.Settings
	pools      map[Category]*voice.Pool
	unregister func()
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Plugin) {
		p.log = l
	}
}

// WithPoolSize sets how many clicks of one category may overlap.
func WithPoolSize(n int) Option {
	return func(p *Plugin) {
		p.poolSize = n
	}
}

// WithPitchVariation sets the largest relative playback rate change.
func WithPitchVariation(k float64) Option {
	return func(p *Plugin) {
		p.variation = k
	}
}

// WithPitchVariationEnabled turns the per-key pitch change on or off.
// It is on by default.
func WithPitchVariationEnabled(enabled bool) Option {
	return func(p *Plugin) {
		p.varyPitch = enabled
	}
}

// New returns an unloaded Plugin. A nil store keeps settings in memory.
func New(host Host, backend voice.Backend, store settings.Store, opts ...Option) *Plugin {
	if store == nil {
		store = &settings.MemoryStore{}
	}

	p := &Plugin{
		host:      host,
		backend:   backend,
		store:     store,
		log:       zerolog.Nop(),
		poolSize:  voice.DefaultSize,
		variation: pitch.DefaultVariation,
		varyPitch: true,
		settings:  settings.Defaults(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Load reads the settings, builds a voice pool per category and starts
// listening for key events. A clip that cannot be located or loaded
// fails Load and leaves the Plugin unloaded.
func (p *Plugin) Load() error {
	if p.host == nil {
		return ErrNilHost
	}
	if p.backend == nil {
		return ErrNilBackend
	}

	p.mu.Lock()
	if p.pools != nil {
		p.mu.Unlock()
		return ErrAlreadyLoaded
	}

	s, err := p.store.Load()
	if err != nil {
		p.log.Warn().Err(err).Msg("using default settings")
	}
	p.settings = s.Clamped()

	pools := make(map[Category]*voice.Pool, len(Categories))
	for _, cat := range Categories {
		pool, err := p.newPool(cat)
		if err != nil {
			p.mu.Unlock()
			return errors.Join(err, closePools(pools))
		}
		pools[cat] = pool
	}
	p.pools = pools
	s = p.settings
	p.mu.Unlock()

	// Registered without mu held: hosts may deliver events synchronously.
	unregister := p.host.OnKeyEvent(p.HandleKey)

	p.mu.Lock()
	if !samePools(p.pools, pools) {
		// Unloaded while registering
		p.mu.Unlock()
		unregister()
		return nil
	}
	p.unregister = unregister
	p.mu.Unlock()

	p.log.Info().Bool("muted", s.Muted).Float64("volume", s.Volume).
		Int("voices", p.poolSize).Msg("typing sounds loaded")
	return nil
}

func samePools(a, b map[Category]*voice.Pool) bool {
	return a != nil && b != nil && a[Key] == b[Key]
}

func (p *Plugin) newPool(cat Category) (*voice.Pool, error) {
	ref, err := p.host.LocateResource(cat.Resource())
	if err != nil {
		return nil, fmt.Errorf("locating %s sound: %w", cat, err)
	}

	pool, err := voice.NewPool(p.backend, ref, p.poolSize, voice.WithPitchVariation(p.variation))
	if err != nil {
		return nil, fmt.Errorf("loading %s sound: %w", cat, err)
	}

	p.log.Debug().Stringer("category", cat).Str("ref", ref).Msg("voice pool ready")
	return pool, nil
}

// Unload stops listening for key events and releases every voice.
// It is safe to call on an unloaded Plugin.
func (p *Plugin) Unload() error {
	p.mu.Lock()
	unregister := p.unregister
	pools := p.pools
	p.unregister = nil
	p.pools = nil
	p.mu.Unlock()

	if unregister != nil {
		unregister()
	}
	if pools == nil {
		return nil
	}

	for _, cat := range Categories {
		st := pools[cat].Stats()
		p.log.Info().Stringer("category", cat).Uint64("played", st.Played).
			Uint64("dropped", st.Dropped).Msg("voice pool closed")
	}
	return closePools(pools)
}

func closePools(pools map[Category]*voice.Pool) error {
	var errs []error
	for _, pool := range pools {
		errs = append(errs, pool.Close())
	}
	return errors.Join(errs...)
}

// HandleKey plays the click for e unless sounds are muted, the host
// input is not eligible or a modifier is held. It never fails.
func (p *Plugin) HandleKey(e KeyEvent) {
	p.mu.RLock()
	s := p.settings
	pool := p.pools[CategoryFor(e.Code)]
	p.mu.RUnlock()

	if s.Muted || pool == nil {
		return
	}
	if !p.host.IsEligibleInputContext() {
		return
	}
	if e.Modified() {
		return
	}

	if !pool.Play(s.Volume, p.varyPitch, SeedFor(e.Code)) {
		p.log.Trace().Str("code", e.Code).Msg("all voices busy")
	}
}

// Settings returns the current settings.
func (p *Plugin) Settings() settings.Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.settings
}

// ToggleMute flips the mute setting, saves it and returns the new value.
func (p *Plugin) ToggleMute() (bool, error) {
	var muted bool
	err := p.update(func(s *settings.Settings) {
		s.Muted = !s.Muted
		muted = s.Muted
	})
	return muted, err
}

// SetMuted mutes or unmutes every click and saves the choice.
func (p *Plugin) SetMuted(muted bool) error {
	return p.update(func(s *settings.Settings) {
		s.Muted = muted
	})
}

// SetVolume sets the click volume, limited to [0,1].
func (p *Plugin) SetVolume(v float64) error {
	return p.update(func(s *settings.Settings) {
		s.Volume = v
	})
}

// update applies fn and saves the result. The new value takes effect
// even when saving fails.
func (p *Plugin) update(fn func(*settings.Settings)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.settings
	fn(&s)
	p.settings = s.Clamped()

	if err := p.store.Save(p.settings); err != nil {
		p.log.Error().Err(err).Msg("saving settings")
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// Stats reports play counters per category of a loaded Plugin.
func (p *Plugin) Stats() map[Category]voice.Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stats := make(map[Category]voice.Stats, len(p.pools))
	for cat, pool := range p.pools {
		stats[cat] = pool.Stats()
	}
	return stats
}
