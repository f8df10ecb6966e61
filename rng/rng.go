// seehuhn.de/go/silhouette - procedural architectural line art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package rng provides the seeded random stream consumed by the generator.
//
// All randomness used while expanding one building is drawn from exactly one
// Stream, created fresh for each generation.  The order of draws therefore
// determines the output, and callers must not share a Stream between
// generations.
package rng

import (
	"math"
	"math/rand/v2"
)

// streamSalt decorrelates the second PCG state word from the seed.
const streamSalt = 0x9e3779b97f4a7c15

// Stream is a deterministic source of uniformly distributed values.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	r *rand.Rand
}

// New returns a Stream seeded from seed.  Two Streams created with the same
// seed produce identical sequences.
func New(seed int64) *Stream {
	s := uint64(seed)
	return &Stream{r: rand.New(rand.NewPCG(s, s^streamSalt))}
}

// Float64 returns a value in [0, 1).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}

// Between returns a value in [lo, hi).  If hi <= lo, lo is returned without
// consuming a draw.
func (s *Stream) Between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*s.r.Float64()
}

// Jitter returns a value in [-amp, amp).
func (s *Stream) Jitter(amp float64) float64 {
	return s.Between(-amp, amp)
}

// IntRange returns an integer in [lo, hi], both ends inclusive.
// If hi <= lo, lo is returned without consuming a draw.
func (s *Stream) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Chance reports true with probability p.  A draw is consumed even for
// p <= 0 or p >= 1, so that gating a feature off does not shift the
// remainder of the sequence.
func (s *Stream) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Angle returns a direction in [0, 2π).
func (s *Stream) Angle() float64 {
	return 2 * math.Pi * s.r.Float64()
}
