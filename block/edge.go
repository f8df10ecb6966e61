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

package block

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// EdgeSide identifies the side of a block an edge belongs to.
type EdgeSide int

// These are the edge sides.  The chamfer sides are the diagonals which
// replace the named corner.
const (
	Top EdgeSide = iota
	Bottom
	LeftSide
	RightSide
	ChamferTL
	ChamferTR
	ChamferBL
	ChamferBR
)

var edgeSideNames = [...]string{
	"top", "bottom", "left", "right",
	"chamfer-tl", "chamfer-tr", "chamfer-bl", "chamfer-br",
}

func (s EdgeSide) String() string {
	if s < 0 || int(s) >= len(edgeSideNames) {
		return fmt.Sprintf("EdgeSide(%d)", int(s))
	}
	return edgeSideNames[s]
}

// Edge is a straight piece of a block's boundary.
type Edge struct {
	A, B vec.Vec2

	// Owner is the index of the owning block in the sorted block list.
	Owner int

	Side EdgeSide
}

// Length returns the length of the edge.
func (e Edge) Length() float64 {
	return e.B.Sub(e.A).Length()
}

// Polygon returns the closed boundary of the block as a list of vertices in
// clockwise screen order.  This is the outline, if present, and otherwise
// the rectangle with its chamfered corners cut off.
func (b *Block) Polygon() []vec.Vec2 {
	if len(b.Outline) > 0 {
		return b.Outline
	}
	r := b.Bounds
	c := b.Chamfer
	pts := make([]vec.Vec2, 0, 8)
	add := func(x, y float64) {
		p := vec.Vec2{X: x, Y: y}
		if n := len(pts); n > 0 && pts[n-1] == p {
			return
		}
		pts = append(pts, p)
	}
	add(r.LLx+c.TL, r.LLy)
	add(r.URx-c.TR, r.LLy)
	add(r.URx, r.LLy+c.TR)
	add(r.URx, r.URy-c.BR)
	add(r.URx-c.BR, r.URy)
	add(r.LLx+c.BL, r.URy)
	add(r.LLx, r.URy-c.BL)
	add(r.LLx, r.LLy+c.TL)
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// Edges returns the straight edges of the block, tagged with owner.
// Zero-length edges are omitted.
//
// For a plain block these are the four sides, shortened by the chamfer
// cuts, and one diagonal for each cut corner.  For a block with an outline
// every outline segment is an edge, tagged with the side it mostly faces.
func (b *Block) Edges(owner int) []Edge {
	if len(b.Outline) > 0 {
		return b.outlineEdges(owner)
	}

	r := b.Bounds
	c := b.Chamfer
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	all := []Edge{
		{A: pt(r.LLx+c.TL, r.LLy), B: pt(r.URx-c.TR, r.LLy), Side: Top},
		{A: pt(r.URx-c.TR, r.LLy), B: pt(r.URx, r.LLy+c.TR), Side: ChamferTR},
		{A: pt(r.URx, r.LLy+c.TR), B: pt(r.URx, r.URy-c.BR), Side: RightSide},
		{A: pt(r.URx, r.URy-c.BR), B: pt(r.URx-c.BR, r.URy), Side: ChamferBR},
		{A: pt(r.URx-c.BR, r.URy), B: pt(r.LLx+c.BL, r.URy), Side: Bottom},
		{A: pt(r.LLx+c.BL, r.URy), B: pt(r.LLx, r.URy-c.BL), Side: ChamferBL},
		{A: pt(r.LLx, r.URy-c.BL), B: pt(r.LLx, r.LLy+c.TL), Side: LeftSide},
		{A: pt(r.LLx, r.LLy+c.TL), B: pt(r.LLx+c.TL, r.LLy), Side: ChamferTL},
	}
	edges := all[:0]
	for _, e := range all {
		if e.A == e.B {
			continue
		}
		e.Owner = owner
		edges = append(edges, e)
	}
	return edges
}

func (b *Block) outlineEdges(owner int) []Edge {
	poly := b.Outline
	center := b.Center()
	n := len(poly)
	edges := make([]Edge, 0, n)
	for i := range n {
		a, c := poly[i], poly[(i+1)%n]
		if a == c {
			continue
		}
		d := c.Sub(a)
		mid := vec.Vec2{X: (a.X + c.X) / 2, Y: (a.Y + c.Y) / 2}
		var side EdgeSide
		if math.Abs(d.X) >= math.Abs(d.Y) {
			side = Top
			if mid.Y > center.Y {
				side = Bottom
			}
		} else {
			side = LeftSide
			if mid.X > center.X {
				side = RightSide
			}
		}
		edges = append(edges, Edge{A: a, B: c, Owner: owner, Side: side})
	}
	return edges
}
