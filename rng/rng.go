// Copyright (C) 2020-2026, Ironguild. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rng is the simulation's single seeded, draw-counted random
// source (spec.md §4.1). It is deliberately not built on the teacher's
// utils/sampler.Source — that type wraps Go's math/rand, whose algorithm
// is not specified and is free to change across Go releases, which would
// break spec.md §8's "identical seeds ⇒ byte-identical... across runs and
// implementations" guarantee. Instead it implements the exact 48-bit LCG
// java.util.Random uses (spec.md §9: "x_{n+1} = (x_n × 0x5DEECE66D +
// 0xB) mod 2^48"), so a reference implementation in any language that
// ports the same constants reproduces the same draw sequence byte for
// byte. The draw-counted, interface-shaped style (a small struct wrapping
// a seed, exposing Seed/Uint64-ish primitives) otherwise follows
// utils/sampler/source.go's shape.
package rng

const (
	multiplier int64 = 0x5DEECE66D
	increment  int64 = 0xB
	mask       int64 = (1 << 48) - 1
)

// Rng is a seeded pseudo-random integer source with a monotone draw
// counter. It is never shared across goroutines (spec.md §5: "Rng is
// exclusively owned by the caller").
type Rng struct {
	seed  int64
	draws int64
}

// New returns an Rng seeded with seed, scrambled the way java.util.Random
// scrambles its constructor argument.
func New(seed int64) *Rng {
	return &Rng{seed: scramble(seed)}
}

func scramble(seed int64) int64 {
	return (seed ^ multiplier) & mask
}

// Draws returns the number of values drawn so far. It is part of the
// determinism contract (spec.md §4.1, §8 "Determinism (golden replay)").
func (r *Rng) Draws() int64 { return r.draws }

// next advances the LCG and returns the top `bits` bits of the new seed,
// exactly as java.util.Random.next(int bits) does.
func (r *Rng) next(bits uint) int32 {
	r.seed = (r.seed*multiplier + increment) & mask
	return int32(r.seed >> (48 - bits))
}

// NextInt returns a uniformly distributed value in [0, bound) and
// increments the draw counter by exactly one, regardless of how many
// internal LCG steps the rejection loop below needs — spec.md §4.1 only
// promises "(increments draws by 1)" per call, not per LCG step.
func (r *Rng) NextInt(bound int) int {
	if bound <= 0 {
		panic("rng: NextInt bound must be > 0")
	}
	defer func() { r.draws++ }()

	if bound&(-bound) == bound { // bound is a power of two
		return int((int64(bound) * int64(r.next(31))) >> 31)
	}

	for {
		bits := r.next(31)
		val := int32(int(bits) % bound)
		if bits-val+int32(bound-1) >= 0 {
			return int(val)
		}
	}
}

// NextLong returns a 64-bit value built from two NextInt draws, per
// spec.md §4.1 ("nextLong... in terms of nextInt"). It is not consumed by
// any pipeline policy; every draw spec.md describes is a NextInt call.
func (r *Rng) NextLong() int64 {
	hi := int64(r.NextInt(1 << 30))
	lo := int64(r.NextInt(1 << 30))
	return (hi << 30) | lo
}

// NextBoolean draws via NextInt(2), per spec.md §4.1 ("nextBoolean... in
// terms of nextInt").
func (r *Rng) NextBoolean() bool {
	return r.NextInt(2) == 1
}
