// SPDX-License-Identifier: EPL-2.0

package main

import (
	"math"
	"time"

	"github.com/ik5/typingsounds/pitch"
)

// clickShape describes a synthesized mechanical click: a noise burst for
// the impact and a decaying tone for the body of the key.
type clickShape struct {
	length    time.Duration
	noise     float64
	noiseTau  time.Duration
	tone      float64
	toneHz    float64
	toneTau   time.Duration
	seed      int64
	peakLevel float64
}

var clickShapes = map[string]clickShape{
	"key": {
		length: 40 * time.Millisecond, noise: 0.6, noiseTau: 3 * time.Millisecond,
		tone: 0.4, toneHz: 2300, toneTau: 8 * time.Millisecond, seed: 1, peakLevel: 0.7,
	},
	"space": {
		length: 70 * time.Millisecond, noise: 0.5, noiseTau: 6 * time.Millisecond,
		tone: 0.5, toneHz: 700, toneTau: 15 * time.Millisecond, seed: 2, peakLevel: 0.75,
	},
	"enter": {
		length: 150 * time.Millisecond, noise: 0.4, noiseTau: 5 * time.Millisecond,
		tone: 0.6, toneHz: 1800, toneTau: 45 * time.Millisecond, seed: 3, peakLevel: 0.8,
	},
}

// synthesize renders shape as mono samples at sampleRate. The result is
// the same for the same shape and rate.
func synthesize(shape clickShape, sampleRate int) []float32 {
	n := int(shape.length.Seconds() * float64(sampleRate))
	out := make([]float32, n)

	noise := pitch.New(shape.seed)
	noiseTau := shape.noiseTau.Seconds()
	toneTau := shape.toneTau.Seconds()

	// One pole low-pass keeps the noise from hissing
	var lp float64
	peak := 0.0
	for i := range out {
		t := float64(i) / float64(sampleRate)

		lp += 0.35 * ((2*noise.Next() - 1) - lp)
		v := shape.noise*lp*math.Exp(-t/noiseTau) +
			shape.tone*math.Sin(2*math.Pi*shape.toneHz*t)*math.Exp(-t/toneTau)

		// Short fade out avoids a click at the end of the click
		if rem := n - i; rem < sampleRate/1000 {
			v *= float64(rem) / float64(sampleRate/1000)
		}

		out[i] = float32(v)
		peak = max(peak, math.Abs(v))
	}

	if peak > 0 {
		scale := float32(shape.peakLevel / peak)
		for i := range out {
			out[i] *= scale
		}
	}
	return out
}
