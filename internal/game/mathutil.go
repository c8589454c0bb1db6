package game

import "math"

// Vec2 is a point or displacement in world units (y grows downward).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2     { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2     { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

// Fork derives an independent stream so that consumers drawing from one
// source do not shift the sequence seen by another.
func (r *Rand) Fork(salt uint64) *Rand {
	return NewRand(splitmix64(r.NextU64() ^ salt))
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU64() % uint64(n))
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}
