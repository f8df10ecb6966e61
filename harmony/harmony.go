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

// Package harmony derives a coherent set of shape parameters from a seed.
//
// The traits are computed by hashing the seed, not by drawing from the
// generator's random stream, so a building keeps the same character no
// matter how many random values were consumed before the traits are read.
package harmony

// Hash keys of the individual traits.
const (
	keyMassiveness = 1
	keyVerticality = 2
	keyComplexity  = 3
	keySymmetry    = 4
	keyRegularity  = 5
	keyLeftBias    = 6
)

// symmetricThreshold is the symmetry above which asymmetric placement
// collapses to the center.
const symmetricThreshold = 0.7

// Harmony holds the seed-derived traits of one building.
// All base traits are in [0, 1).
type Harmony struct {
	Massiveness float64 // broad, heavy massing
	Verticality float64 // tall, slender massing
	Complexity  float64 // amount of articulation
	Symmetry    float64 // tendency towards mirrored placement
	Regularity  float64 // evenness of repeated elements

	// WingWidth is the wing width as a fraction of the body width,
	// massiveness interpolated over [0.25, 0.5].
	WingWidth float64

	// TowerSpread is the offset of a symmetric tower pair from the body
	// center, as a fraction of the body width; symmetry over [0.25, 0.4].
	TowerSpread float64

	// SetbackTaper is the typical width ratio between stacked tiers,
	// regularity over [0.7, 0.85].
	SetbackTaper float64

	// Detail is complexity over [0.2, 0.8].
	Detail float64

	// LeftBias is the probability that a single element which must go on
	// one of two mirrored sides goes on the left.  It is exactly 0.5 for
	// near-perfect symmetry, otherwise in [0.3, 0.7].
	LeftBias float64
}

// New computes the harmony for the given seed.
func New(seed int64) Harmony {
	h := Harmony{
		Massiveness: trait(seed, keyMassiveness),
		Verticality: trait(seed, keyVerticality),
		Complexity:  trait(seed, keyComplexity),
		Symmetry:    trait(seed, keySymmetry),
		Regularity:  trait(seed, keyRegularity),
	}
	h.WingWidth = lerp(0.25, 0.5, h.Massiveness)
	h.TowerSpread = lerp(0.25, 0.4, h.Symmetry)
	h.SetbackTaper = lerp(0.7, 0.85, h.Regularity)
	h.Detail = lerp(0.2, 0.8, h.Complexity)
	if h.Symmetry > symmetricThreshold {
		h.LeftBias = 0.5
	} else {
		h.LeftBias = lerp(0.3, 0.7, trait(seed, keyLeftBias))
	}
	return h
}

func lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}

// trait maps (seed, key) to [0, 1).
func trait(seed int64, key uint64) float64 {
	x := mix(uint64(seed) ^ (key * 0xd1b54a32d192ed03))
	return float64(x>>11) / (1 << 53)
}

// mix is the splitmix64 finalizer.  Every input bit affects every output
// bit, so adjacent seeds and keys give unrelated traits.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
