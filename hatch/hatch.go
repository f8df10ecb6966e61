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

// Package hatch generates families of fill lines and clips them to the
// inside of a boundary.
//
// The clipper only needs to know where a line crosses the boundary and
// whether a point is inside, so the same code serves rectangles, spire
// triangles, dome caps and the irregular outlines of ruined or brutalist
// blocks.
package hatch

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/silhouette/plane"
	"seehuhn.de/go/silhouette/rng"
)

// Pattern selects the kind of line family.
type Pattern int

// These are the supported hatch patterns.
const (
	Diagonal Pattern = iota
	Horizontal
	Vertical
	Cross
	Random
)

var patternNames = [...]string{"diagonal", "horizontal", "vertical", "cross", "random"}

func (p Pattern) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return patternNames[p]
}

// MarshalText implements [encoding.TextMarshaler].
func (p Pattern) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(patternNames) {
		return nil, fmt.Errorf("invalid hatch pattern %d", int(p))
	}
	return []byte(patternNames[p]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Pattern) UnmarshalText(text []byte) error {
	for i, name := range patternNames {
		if string(text) == name {
			*p = Pattern(i)
			return nil
		}
	}
	return fmt.Errorf("unknown hatch pattern %q", text)
}

// Side restricts hatching to a band along one side of a rectangle.
type Side int

// These are the supported sides.
const (
	SideAll Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

var sideNames = [...]string{"all", "left", "right", "top", "bottom"}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// MarshalText implements [encoding.TextMarshaler].
func (s Side) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(sideNames) {
		return nil, fmt.Errorf("invalid hatch side %d", int(s))
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
	return fmt.Errorf("unknown hatch side %q", text)
}

// Config describes one hatch texture.
type Config struct {
	Pattern Pattern `json:"pattern"`

	// Density is the spacing between neighbouring lines.  Hatching is
	// disabled if Density is not positive.
	Density float64 `json:"density"`

	// Angle is the direction of the Diagonal family, in degrees.
	Angle float64 `json:"angle"`

	// Coverage is the fraction of the target covered when Side is not
	// SideAll.  Values outside (0, 1) cover the whole target.
	Coverage float64 `json:"coverage,omitempty"`

	// Side restricts hatching of rectangular targets to a band.
	Side Side `json:"side,omitempty"`
}

// Enabled reports whether the configuration produces any lines.
func (c Config) Enabled() bool {
	return c.Density > 0
}

// Segment is a straight hatch line.
type Segment struct {
	A, B vec.Vec2
}

// Limits on the amount of work done for one target.
const (
	// maxFamilyLines bounds the number of parallel lines in one family.
	maxFamilyLines = 4096

	// maxScatter bounds the number of candidates of the Random pattern.
	maxScatter = 4096

	// crossSpacing is the spacing multiplier of the two Cross families.
	crossSpacing = 1.5

	// scatterKeep is the probability of keeping a Random candidate.
	scatterKeep = 0.7

	// minArea is the smallest target area that is hatched at all.
	minArea = 1e-9

	// minSegment is the shortest segment returned by the clipper.
	minSegment = 1e-9
)

// Generate returns the hatch lines for the target boundary, clipped to its
// inside.  Only the Random pattern draws from r; r may be nil for the
// other patterns.
//
// Degenerate targets (zero area, polygons with fewer than three points) and
// disabled configurations give an empty result.
func Generate(target Boundary, cfg Config, r *rng.Stream) []Segment {
	if target == nil || !cfg.Enabled() || !(target.Area() > minArea) {
		return nil
	}
	if cfg.Side != SideAll {
		if rb, ok := target.(Rect); ok {
			target = rb.Band(cfg.Side, cfg.Coverage)
		}
	}

	var candidates []Segment
	switch cfg.Pattern {
	case Horizontal:
		candidates = family(target, 0, cfg.Density)
	case Vertical:
		candidates = family(target, 90, cfg.Density)
	case Diagonal:
		candidates = family(target, cfg.Angle, cfg.Density)
	case Cross:
		candidates = family(target, 45, crossSpacing*cfg.Density)
		candidates = append(candidates, family(target, -45, crossSpacing*cfg.Density)...)
	case Random:
		if r == nil {
			return nil
		}
		candidates = scatter(target, cfg.Density, r)
	}

	var out []Segment
	for _, c := range candidates {
		out = append(out, Clip(target, c.A, c.B)...)
	}
	return out
}

// family returns parallel lines at the given angle (degrees), spaced by
// spacing, which together cover the bounding box of the target.  The
// middle line passes through the centroid of the target.
func family(target Boundary, angle, spacing float64) []Segment {
	bb := target.Bounds()
	c := target.Centroid()

	var reach float64
	for _, p := range plane.RectCorners(bb) {
		reach = max(reach, p.Sub(c).Length())
	}
	if reach == 0 {
		return nil
	}
	spacing = max(spacing, 2*reach/maxFamilyLines)

	rad := angle * math.Pi / 180
	dir := vec.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
	perp := vec.Vec2{X: -dir.Y, Y: dir.X}

	n := int(math.Ceil(reach / spacing))
	lines := make([]Segment, 0, 2*n+1)
	for k := -n; k <= n; k++ {
		o := c.Add(perp.Mul(float64(k) * spacing))
		lines = append(lines, Segment{
			A: o.Sub(dir.Mul(reach)),
			B: o.Add(dir.Mul(reach)),
		})
	}
	return lines
}

// scatter returns short segments with random position, length and
// direction.  Every candidate consumes the same number of draws whether or
// not it is kept.
func scatter(target Boundary, density float64, r *rng.Stream) []Segment {
	bb := target.Bounds()
	area := (bb.URx - bb.LLx) * (bb.URy - bb.LLy)
	n := min(int(area/(density*density)), maxScatter)

	var out []Segment
	for range n {
		p := vec.Vec2{X: r.Between(bb.LLx, bb.URx), Y: r.Between(bb.LLy, bb.URy)}
		length := density * r.Between(1, 3)
		phi := r.Angle()
		keep := r.Chance(scatterKeep)
		if !keep {
			continue
		}
		half := vec.Vec2{X: math.Cos(phi), Y: math.Sin(phi)}.Mul(length / 2)
		out = append(out, Segment{A: p.Sub(half), B: p.Add(half)})
	}
	return out
}

// Clip returns the parts of the segment a→b which lie inside the boundary.
//
// All boundary crossings of the segment are computed.  Without crossings
// the segment is kept if its midpoint is inside.  With exactly one
// crossing, the half whose original endpoint is inside is kept.  With two
// or more, the segment is cut at every crossing and each piece is kept if
// its midpoint is inside, which handles non-convex boundaries with several
// entry and exit points.
func Clip(target Boundary, a, b vec.Vec2) []Segment {
	ts := sortedCrossings(target, a, b)

	switch len(ts) {
	case 0:
		if target.Contains(plane.Mid(a, b)) {
			return keep(nil, a, b)
		}
		return nil
	case 1:
		x := plane.Lerp(a, b, ts[0])
		aIn, bIn := target.Contains(a), target.Contains(b)
		if aIn && !bIn {
			return keep(nil, a, x)
		} else if bIn && !aIn {
			return keep(nil, x, b)
		}
		// Both or neither endpoint inside: the segment only touches the
		// boundary, so fall back to the midpoint test.
	}

	var out []Segment
	prev := a
	for i := 0; i <= len(ts); i++ {
		next := b
		if i < len(ts) {
			next = plane.Lerp(a, b, ts[i])
		}
		if target.Contains(plane.Mid(prev, next)) {
			out = keep(out, prev, next)
		}
		prev = next
	}
	return out
}

func keep(out []Segment, a, b vec.Vec2) []Segment {
	if b.Sub(a).Length() < minSegment {
		return out
	}
	return append(out, Segment{A: a, B: b})
}
