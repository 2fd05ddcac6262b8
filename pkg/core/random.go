package core

import "math"

const (
	hashWeightX    = 12.9898
	hashWeightY    = 78.233
	hashMultiplier = 43758.5453
)

// RandomStream is a fast, low quality pseudo-random generator scoped to a
// single pixel. Its 2D state doubles as the seed: every draw hashes the state
// (offset by the frame time) and overwrites it, so there is no separate counter.
//
// A stream is not safe for concurrent use and must not be shared between
// pixels; doing so correlates their noise.
type RandomStream struct {
	state Vec2
	time  float64
}

// NewRandomStream creates a stream seeded with seed and perturbed by time
func NewRandomStream(seed Vec2, time float64) *RandomStream {
	return &RandomStream{state: seed, time: time}
}

// Next returns a pseudo-random float64 in [0, 1).
// Both state components are rewritten; the second hash sees the new X.
func (r *RandomStream) Next() float64 {
	r.state.X = r.hash()
	r.state.Y = r.hash()
	return r.state.X
}

// State returns the current internal state
func (r *RandomStream) State() Vec2 {
	return r.state
}

// hash computes fract(sin(dot(state+time, w)) * k)
func (r *RandomStream) hash() float64 {
	// explicit conversions keep the compiler from fusing these into FMA,
	// which would change results between architectures
	d := float64((r.state.X+r.time)*hashWeightX) + float64((r.state.Y+r.time)*hashWeightY)
	return fract(float64(math.Sin(d) * hashMultiplier))
}

// fract returns the fractional part of v in [0, 1)
func fract(v float64) float64 {
	f := v - math.Floor(v)
	if f >= 1.0 {
		// tiny negative inputs round up to exactly 1
		return 0
	}
	return f
}
