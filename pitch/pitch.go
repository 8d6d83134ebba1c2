// SPDX-License-Identifier: EPL-2.0

// Package pitch derives small, reproducible playback-rate offsets from an
// integer seed.
//
// The same seed always bends pitch the same way, so a key pressed over and
// over keeps a recognizable sound while neighbouring keys differ.
package pitch

// DefaultVariation is the largest relative rate change applied to a voice.
const DefaultVariation = 0.025

const (
	seedA = 123456789
	seedB = 987654321

	multA = 18000
	multB = 36969
)

// Generator is a two-register multiply-with-carry generator.
//
// It is not safe for concurrent use. Value and Rate build a fresh
// Generator per call and should be preferred outside tests.
type Generator struct {
	a, b uint32
}

// New returns a generator already seeded with seed.
func New(seed int64) *Generator {
	g := &Generator{}
	g.SetSeed(seed)
	return g
}

// SetSeed resets both registers. Any seed is valid; arithmetic wraps
// modulo 2^32.
func (g *Generator) SetSeed(seed int64) {
	g.a = uint32(seedA + seed)
	g.b = uint32(seedB - seed)
}

// Next32 advances the registers and returns the combined 32-bit output.
func (g *Generator) Next32() uint32 {
	g.b = multB*(g.b&0xFFFF) + g.b>>16
	g.a = multA*(g.a&0xFFFF) + g.a>>16
	return g.b<<16 + g.a&0xFFFF
}

// Next returns the next value in [0, 1).
func (g *Generator) Next() float64 {
	return float64(g.Next32()) / (1 << 32)
}

// Value reseeds a private generator with seed and draws once.
func Value(seed int64) float64 {
	var g Generator
	g.SetSeed(seed)
	return g.Next()
}

// Rate maps seed to a playback rate in [1-variation, 1+variation].
func Rate(variation float64, seed int64) float64 {
	return 1.0 + variation*(2.0*Value(seed)-1.0)
}
