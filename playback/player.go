// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/ik5/typingsounds/audio"
	"github.com/ik5/typingsounds/voice"
)

// Player mixes every started handle into a single output stream.
type Player struct {
	reg        *audio.Registry
	sampleRate int
	log        zerolog.Logger

	// lock guards mixer against the goroutine that pulls samples.
	lock   func()
	unlock func()
	mixer  *beep.Mixer
	device bool

	mu     sync.Mutex
	clips  map[string]*audio.Clip
	closed bool
}

var _ voice.Backend = (*Player)(nil)

// Option configures a Player.
type Option func(*Player)

// WithLogger sets the logger used for decode and stream failures.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Player) {
		p.log = l
	}
}

// New returns a Player that is not attached to a device. Samples are
// pulled through Streamer.
func New(reg *audio.Registry, sampleRate int, opts ...Option) (*Player, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	var mu sync.Mutex
	p := &Player{
		reg:        reg,
		sampleRate: sampleRate,
		log:        zerolog.Nop(),
		lock:       mu.Lock,
		unlock:     mu.Unlock,
		mixer:      &beep.Mixer{},
		clips:      make(map[string]*audio.Clip),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Open initializes the speaker at sampleRate with roughly latency worth
// of buffering and starts playing the mixer.
func Open(reg *audio.Registry, sampleRate int, latency time.Duration, opts ...Option) (*Player, error) {
	p, err := New(reg, sampleRate, opts...)
	if err != nil {
		return nil, err
	}

	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, max(1, sr.N(latency))); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	p.lock = speaker.Lock
	p.unlock = speaker.Unlock
	p.device = true
	speaker.Play(p.mixer)

	p.log.Debug().Int("sample_rate", sampleRate).Dur("latency", latency).Msg("speaker ready")
	return p, nil
}

// SampleRate of the output stream.
func (p *Player) SampleRate() int { return p.sampleRate }

// Streamer is the mixed output of a Player made with New. A Player made
// with Open is already pulled by the speaker.
func (p *Player) Streamer() beep.Streamer {
	return lockedStreamer{p}
}

// Active counts handles that are currently sounding.
func (p *Player) Active() int {
	p.lock()
	defer p.unlock()

	return p.mixer.Len()
}

// Clip returns the decoded clip for the file at ref. Clips are decoded
// once and shared by every handle.
func (p *Player) Clip(ref string) (*audio.Clip, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrClosed
	}
	if c, ok := p.clips[ref]; ok {
		return c, nil
	}

	c, err := decodeFile(p.reg, ref)
	if err != nil {
		return nil, err
	}

	p.clips[ref] = c
	p.log.Debug().Str("ref", ref).Int("rate", c.SampleRate()).Int("channels", c.Channels()).
		Dur("duration", c.Duration()).Msg("clip decoded")
	return c, nil
}

func decodeFile(reg *audio.Registry, path string) (*audio.Clip, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	c, err := audio.Load(src)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return c, nil
}

// Load implements voice.Backend.
func (p *Player) Load(ref string, ended func()) (voice.Handle, error) {
	c, err := p.Clip(ref)
	if err != nil {
		return nil, err
	}

	return &Handle{player: p, clip: c, ended: ended, volume: 1, rate: 1}, nil
}

// stream builds the streamer for one play of c. It runs out after the
// last frame of the clip.
func (p *Player) stream(c *audio.Clip, volume, rate float64) (beep.Streamer, error) {
	rs, err := audio.NewRateResampler(c.Source(), p.sampleRate, rate)
	if err != nil {
		return nil, err
	}

	return &effects.Gain{
		Streamer: newSourceStreamer(audio.NewStereoMixer(rs)),
		// Gain scales by (1 + Gain)
		Gain: volume - 1,
	}, nil
}

func (p *Player) add(s beep.Streamer) {
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

// Close silences every handle and releases the device. Ended callbacks
// of handles still sounding never fire.
func (p *Player) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.clips = nil
	p.mu.Unlock()

	p.lock()
	p.mixer.Clear()
	p.unlock()

	if p.device {
		speaker.Clear()
		speaker.Close()
	}
	return nil
}

type lockedStreamer struct {
	p *Player
}

func (l lockedStreamer) Stream(samples [][2]float64) (int, bool) {
	l.p.lock()
	defer l.p.unlock()

	return l.p.mixer.Stream(samples)
}

func (l lockedStreamer) Err() error { return nil }
