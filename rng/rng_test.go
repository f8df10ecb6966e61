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

package rng

import "testing"

func TestStreamDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := range 100 {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestStreamSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for range 20 {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	if same == 20 {
		t.Error("different seeds produced identical sequences")
	}
}

func TestIntRangeInclusive(t *testing.T) {
	s := New(7)
	seen := map[int]bool{}
	for range 1000 {
		v := s.IntRange(5, 8)
		if v < 5 || v > 8 {
			t.Fatalf("IntRange(5, 8) = %d", v)
		}
		seen[v] = true
	}
	for v := 5; v <= 8; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn", v)
		}
	}

	if got := s.IntRange(3, 3); got != 3 {
		t.Errorf("IntRange(3, 3) = %d", got)
	}
}

func TestBetween(t *testing.T) {
	s := New(99)
	for range 1000 {
		v := s.Between(0.7, 0.85)
		if v < 0.7 || v >= 0.85 {
			t.Fatalf("Between(0.7, 0.85) = %v", v)
		}
	}
	if got := s.Between(2, 1); got != 2 {
		t.Errorf("Between(2, 1) = %v, want 2", got)
	}
}

func TestChanceConsumesDraw(t *testing.T) {
	a := New(5)
	b := New(5)
	a.Chance(0)
	b.Float64()
	if a.Float64() != b.Float64() {
		t.Error("Chance(0) did not consume exactly one draw")
	}
}
