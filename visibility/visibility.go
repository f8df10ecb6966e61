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

// Package visibility removes the hidden and doubled edges of a building.
//
// The blocks are painted back to front, in the order of the sorted block
// list.  An edge is dropped if a block further to the front covers it, or
// if it runs along the wall of a block further to the front, which draws
// that line itself.
package visibility

import (
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/silhouette/block"
	"seehuhn.de/go/silhouette/hatch"
	"seehuhn.de/go/silhouette/plane"
)

// Tolerance is the distance below which a point counts as lying on the
// boundary of a block.  It absorbs rounding at flush joints and is smaller
// than the smallest chamfer the grammar generates.
const Tolerance = 1.0

// Result is the outcome of [Resolve].
type Result struct {
	// Edges are the visible edges, in paint order.
	Edges []block.Edge

	// Hidden counts the edges dropped because a front block covers them.
	Hidden int

	// Seams counts the edges dropped because they run along the wall of a
	// front block.
	Seams int
}

// Resolve returns the visible edges of the blocks, which must be sorted by
// layering priority.  Domes and spires neither own edges nor hide any;
// they are drawn as closed shapes.
//
// Each edge is tested against every block in front of its owner.  If both
// endpoints are inside the front block, the edge is dropped; it is counted
// as a seam if both endpoints lie on the same side of that block, and as
// hidden otherwise.  Edges which are only partly covered are kept whole,
// see [Trim] for cutting them.
func Resolve(blocks []block.Block) Result {
	var res Result
	for i := range blocks {
		b := &blocks[i]
		if !b.Straight() {
			continue
		}
	edges:
		for _, e := range b.Edges(i) {
			for j := i + 1; j < len(blocks); j++ {
				front := &blocks[j]
				if !front.Straight() {
					continue
				}
				if !inside(front, e.A) || !inside(front, e.B) {
					continue
				}
				if alongWall(front, e.A, e.B) {
					res.Seams++
				} else {
					res.Hidden++
				}
				continue edges
			}
			res.Edges = append(res.Edges, e)
		}
	}
	return res
}

// inside reports whether p is inside b or within [Tolerance] of its
// boundary.  Plain blocks are tested against their rectangle, blocks with
// an outline against the outline.
func inside(b *block.Block, p vec.Vec2) bool {
	if len(b.Outline) > 0 {
		return plane.InPolygon(p, b.Outline) || plane.OnPolygon(p, b.Outline, Tolerance)
	}
	return plane.RectContains(b.Bounds, p, Tolerance)
}

// alongWall reports whether the segment ab lies on one side of the
// boundary of b, within [Tolerance].
func alongWall(b *block.Block, a, c vec.Vec2) bool {
	poly := b.Polygon()
	n := len(poly)
	for k := range n {
		p, q := poly[k], poly[(k+1)%n]
		if plane.DistToSegment(a, p, q) <= Tolerance && plane.DistToSegment(c, p, q) <= Tolerance {
			return true
		}
	}
	return false
}

// Trim cuts the edges at the boundaries of the blocks in front of their
// owners and returns the pieces which are not covered.  Unlike [Resolve],
// this also uses domes and spires as occluders, and it removes the parts
// of an edge which run along a front wall.
func Trim(edges []block.Edge, blocks []block.Block) []block.Edge {
	var out []block.Edge
	for _, e := range edges {
		for _, s := range Visible(hatch.Segment{A: e.A, B: e.B}, e.Owner, blocks) {
			out = append(out, block.Edge{A: s.A, B: s.B, Owner: e.Owner, Side: e.Side})
		}
	}
	return out
}

// minPiece is the parameter distance below which trimmed pieces are
// dropped.
const minPiece = 1e-6

// Visible returns the parts of seg which are not covered by any block in
// front of blocks[owner].
func Visible(seg hatch.Segment, owner int, blocks []block.Block) []hatch.Segment {
	pieces := []hatch.Segment{seg}
	for j := owner + 1; j < len(blocks) && len(pieces) > 0; j++ {
		front := &blocks[j]
		var next []hatch.Segment
		for _, p := range pieces {
			if !overlaps(p, front) {
				next = append(next, p)
				continue
			}
			next = append(next, uncovered(front, p)...)
		}
		pieces = next
	}
	return pieces
}

// overlaps reports whether the bounding box of s meets the bounds of b,
// grown by the tolerance.
func overlaps(s hatch.Segment, b *block.Block) bool {
	r := b.Bounds
	return max(s.A.X, s.B.X) >= r.LLx-Tolerance && min(s.A.X, s.B.X) <= r.URx+Tolerance &&
		max(s.A.Y, s.B.Y) >= r.LLy-Tolerance && min(s.A.Y, s.B.Y) <= r.URy+Tolerance
}

// uncovered returns the parts of s which b does not cover.  The segment is
// cut at every crossing with the boundary of b, and each piece is kept if
// its midpoint is not covered.
func uncovered(b *block.Block, s hatch.Segment) []hatch.Segment {
	ts := b.Boundary().Crossings(s.A, s.B)
	ts = append(ts, 0, 1)
	slices.Sort(ts)

	var out []hatch.Segment
	for k := 1; k < len(ts); k++ {
		if ts[k]-ts[k-1] < minPiece {
			continue
		}
		p := plane.Lerp(s.A, s.B, ts[k-1])
		q := plane.Lerp(s.A, s.B, ts[k])
		if covers(b, plane.Mid(p, q)) {
			continue
		}
		if n := len(out); n > 0 && out[n-1].B == p {
			out[n-1].B = q
		} else {
			out = append(out, hatch.Segment{A: p, B: q})
		}
	}
	return out
}

// covers reports whether p is hidden by b.  Points within the tolerance of
// a straight boundary count as covered, so that lines along a front wall
// are left to the front block.
func covers(b *block.Block, p vec.Vec2) bool {
	switch b.Kind {
	case block.Dome:
		return b.Boundary().Contains(p)
	case block.Spire:
		poly := b.Boundary().(hatch.Polygon)
		return plane.InPolygon(p, poly) || plane.OnPolygon(p, poly, Tolerance)
	}
	if len(b.Outline) == 0 && !b.Chamfer.IsZero() {
		poly := b.Polygon()
		return plane.InPolygon(p, poly) || plane.OnPolygon(p, poly, Tolerance)
	}
	return inside(b, p)
}
