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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/silhouette/hatch"
)

// kappa is the control point distance for approximating a quarter ellipse
// with a cubic Bézier curve.
const kappa = 0.5522847498307936

// Path returns the closed outline of the block.
//
// Domes are drawn as the upper half of an ellipse which fills the bounding
// box, standing on its bottom edge.  Spires are isosceles triangles with
// the apex at the top center.  All other blocks use [Block.Polygon].
func (b *Block) Path() *path.Data {
	r := b.Bounds
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

	switch b.Kind {
	case Dome:
		cx := (r.LLx + r.URx) / 2
		rx := (r.URx - r.LLx) / 2
		ry := r.URy - r.LLy
		kx, ky := rx*kappa, ry*kappa
		return (&path.Data{}).
			MoveTo(pt(r.LLx, r.URy)).
			CubeTo(pt(r.LLx, r.URy-ky), pt(cx-kx, r.LLy), pt(cx, r.LLy)).
			CubeTo(pt(cx+kx, r.LLy), pt(r.URx, r.URy-ky), pt(r.URx, r.URy)).
			Close()

	case Spire:
		return (&path.Data{}).
			MoveTo(pt(r.LLx, r.URy)).
			LineTo(pt((r.LLx+r.URx)/2, r.LLy)).
			LineTo(pt(r.URx, r.URy)).
			Close()
	}

	poly := b.Polygon()
	p := &path.Data{}
	if len(poly) == 0 {
		return p
	}
	p = p.MoveTo(poly[0])
	for _, q := range poly[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

// Boundary returns the region covered by the block, for clipping hatch
// lines.  Curved dome tops are represented exactly.
func (b *Block) Boundary() hatch.Boundary {
	r := b.Bounds
	switch b.Kind {
	case Dome:
		return hatch.Cap{
			Base: vec.Vec2{X: (r.LLx + r.URx) / 2, Y: r.URy},
			Rx:   (r.URx - r.LLx) / 2,
			Ry:   r.URy - r.LLy,
		}
	case Spire:
		return hatch.Triangle(
			vec.Vec2{X: r.LLx, Y: r.URy},
			vec.Vec2{X: (r.LLx + r.URx) / 2, Y: r.LLy},
			vec.Vec2{X: r.URx, Y: r.URy},
		)
	}
	if len(b.Outline) == 0 && b.Chamfer.IsZero() {
		return hatch.Rect(r)
	}
	return hatch.Polygon(b.Polygon())
}
