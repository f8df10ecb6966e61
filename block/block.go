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

// Package block defines the mass volumes a building is assembled from.
//
// A building is a flat list of Blocks.  The order of the list, after
// sorting by [Kind.Priority], is the back-to-front paint order; the
// Parent field is bookkeeping only and is never consulted for ordering.
//
// All coordinates use a y axis which points downward: in a block's
// Bounds, LLy is the top edge and URy the bottom edge.
package block

import (
	"fmt"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Kind is the architectural role of a block.
type Kind int

// These are the block kinds.
const (
	Building Kind = iota
	Body
	Wing
	Tower
	Setback
	Base
	Crown
	Dome
	Spire
	Floor
	Bay
)

var kindNames = [...]string{
	"building", "body", "wing", "tower", "setback", "base",
	"crown", "dome", "spire", "floor", "bay",
}

// kindPriority is the fixed back-to-front order of the kinds.
var kindPriority = [...]int{
	Building: 0,
	Wing:     1,
	Body:     2,
	Base:     3,
	Crown:    4,
	Setback:  5,
	Tower:    6,
	Floor:    7,
	Bay:      8,
	Dome:     9,
	Spire:    10,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Priority returns the layering priority of the kind.  Blocks with a higher
// priority are painted later, in front of blocks with a lower priority.
func (k Kind) Priority() int {
	if k < 0 || int(k) >= len(kindPriority) {
		return -1
	}
	return kindPriority[k]
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid block kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if string(text) == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown block kind %q", text)
}

// Side tags the member of a mirrored pair.
type Side int

// These are the possible sides.
const (
	Center Side = iota
	Left
	Right
)

var sideNames = [...]string{"none", "left", "right"}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// MarshalText implements [encoding.TextMarshaler].
func (s Side) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(sideNames) {
		return nil, fmt.Errorf("invalid block side %d", int(s))
	}
	return []byte(sideNames[s]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Side) UnmarshalText(text []byte) error {
	for i, name := range sideNames {
		if string(text) == name {
			*s = Side(i)
			return nil
		}
	}
	return fmt.Errorf("unknown block side %q", text)
}

// Chamfer gives the size of the cut at each corner of a block.
type Chamfer struct {
	TL float64 `json:"tl,omitempty"`
	TR float64 `json:"tr,omitempty"`
	BL float64 `json:"bl,omitempty"`
	BR float64 `json:"br,omitempty"`
}

// IsZero reports whether no corner is cut.
func (c Chamfer) IsZero() bool {
	return c.TL <= 0 && c.TR <= 0 && c.BL <= 0 && c.BR <= 0
}

// maxChamferFraction limits each cut to slightly less than half of the
// shorter side, so that the straight part of every side keeps a positive
// length.
const maxChamferFraction = 0.49

// ClampChamfer limits every corner of c to less than half of the shorter
// side of a w×h rectangle.  Negative amounts become zero.
func ClampChamfer(c Chamfer, w, h float64) Chamfer {
	limit := max(0, maxChamferFraction*min(w, h))
	clamp := func(x float64) float64 {
		return max(0, min(x, limit))
	}
	return Chamfer{
		TL: clamp(c.TL),
		TR: clamp(c.TR),
		BL: clamp(c.BL),
		BR: clamp(c.BR),
	}
}

// Block is one mass volume of a building.
type Block struct {
	// ID is the position of the block in creation order.  It is stable
	// under the priority sort and is used by Parent.
	ID   int  `json:"id"`
	Kind Kind `json:"kind"`

	// Bounds is always a valid rectangle.  If Outline is set, Bounds is
	// its bounding box.
	Bounds rect.Rect `json:"bounds"`

	// Outline, if non-empty, replaces the rectangle for drawing.  The
	// closing edge from the last to the first point is implied.
	Outline []vec.Vec2 `json:"outline,omitempty"`

	Chamfer Chamfer `json:"chamfer"`

	Depth  int  `json:"depth"`
	Parent int  `json:"parent"` // ID of the logical parent, or -1
	Side   Side `json:"side"`

	Windows   bool `json:"windows,omitempty"`
	Door      bool `json:"door,omitempty"`
	Ornaments bool `json:"ornaments,omitempty"`
	Hatched   bool `json:"hatched,omitempty"`
}

// Width returns the width of the block's bounding box.
func (b *Block) Width() float64 { return b.Bounds.URx - b.Bounds.LLx }

// Height returns the height of the block's bounding box.
func (b *Block) Height() float64 { return b.Bounds.URy - b.Bounds.LLy }

// Center returns the center of the block's bounding box.
func (b *Block) Center() vec.Vec2 {
	return vec.Vec2{
		X: (b.Bounds.LLx + b.Bounds.URx) / 2,
		Y: (b.Bounds.LLy + b.Bounds.URy) / 2,
	}
}

// Priority returns the layering priority of the block's kind.
func (b *Block) Priority() int { return b.Kind.Priority() }

// Straight reports whether the block takes part in edge based visibility.
// Domes and spires are drawn as separate closed shapes instead.
func (b *Block) Straight() bool {
	return b.Kind != Dome && b.Kind != Spire
}

// SortByPriority sorts the blocks back to front.  Blocks of equal priority
// keep their relative order.
func SortByPriority(blocks []Block) {
	slices.SortStableFunc(blocks, func(a, b Block) int {
		return a.Kind.Priority() - b.Kind.Priority()
	})
}

// Rect returns the rectangle with top left corner (x, y), width w and
// height h.
func Rect(x, y, w, h float64) rect.Rect {
	return rect.Rect{LLx: x, LLy: y, URx: x + w, URy: y + h}
}
