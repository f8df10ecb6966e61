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

package hatch

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/silhouette/plane"
)

// Boundary is a closed region that hatch lines are clipped to.
type Boundary interface {
	// Bounds returns the axis-aligned bounding box of the region.
	Bounds() rect.Rect

	// Centroid returns the point the line families are centered on.
	Centroid() vec.Vec2

	// Area returns the area of the region.
	Area() float64

	// Contains reports whether p is inside the region or on its boundary.
	Contains(p vec.Vec2) bool

	// Crossings returns the parameters t in [0, 1] at which the segment
	// a→b meets the boundary, in no particular order.
	Crossings(a, b vec.Vec2) []float64
}

// boundaryTolerance absorbs floating point noise when testing points that
// were computed to lie exactly on a boundary.
const boundaryTolerance = 1e-9

// Rect is an axis-aligned rectangular boundary.
type Rect rect.Rect

// Bounds implements [Boundary].
func (r Rect) Bounds() rect.Rect { return rect.Rect(r) }

// Centroid implements [Boundary].
func (r Rect) Centroid() vec.Vec2 {
	return vec.Vec2{X: (r.LLx + r.URx) / 2, Y: (r.LLy + r.URy) / 2}
}

// Area implements [Boundary].
func (r Rect) Area() float64 {
	w, h := r.URx-r.LLx, r.URy-r.LLy
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Contains implements [Boundary].
func (r Rect) Contains(p vec.Vec2) bool {
	return plane.RectContains(rect.Rect(r), p, boundaryTolerance)
}

// Crossings implements [Boundary].
func (r Rect) Crossings(a, b vec.Vec2) []float64 {
	return polygonCrossings(plane.RectCorners(rect.Rect(r)), a, b)
}

// Band returns the sub-rectangle covering the given fraction of r on one
// side.  For [SideAll], or a fraction outside (0, 1), r is returned.
func (r Rect) Band(side Side, coverage float64) Rect {
	if coverage <= 0 || coverage >= 1 {
		return r
	}
	w, h := r.URx-r.LLx, r.URy-r.LLy
	switch side {
	case SideLeft:
		r.URx = r.LLx + w*coverage
	case SideRight:
		r.LLx = r.URx - w*coverage
	case SideTop:
		r.URy = r.LLy + h*coverage
	case SideBottom:
		r.LLy = r.URy - h*coverage
	}
	return r
}

// Polygon is a simple polygon boundary, which need not be convex.
// The closing edge from the last to the first vertex is implied.
type Polygon []vec.Vec2

// Triangle returns the triangular boundary with corners a, b, c.
func Triangle(a, b, c vec.Vec2) Polygon {
	return Polygon{a, b, c}
}

// Bounds implements [Boundary].
func (p Polygon) Bounds() rect.Rect { return plane.Bounds(p) }

// Centroid implements [Boundary].
func (p Polygon) Centroid() vec.Vec2 { return plane.Centroid(p) }

// Area implements [Boundary].  Polygons with fewer than three vertices have
// zero area.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	return plane.Area(p)
}

// Contains implements [Boundary].
func (p Polygon) Contains(q vec.Vec2) bool {
	if len(p) < 3 {
		return false
	}
	return plane.InPolygon(q, p) || plane.OnPolygon(q, p, boundaryTolerance)
}

// Crossings implements [Boundary].
func (p Polygon) Crossings(a, b vec.Vec2) []float64 {
	if len(p) < 3 {
		return nil
	}
	return polygonCrossings(p, a, b)
}

func polygonCrossings(poly []vec.Vec2, a, b vec.Vec2) []float64 {
	var ts []float64
	n := len(poly)
	for i := range n {
		if t, ok := plane.Intersect(a, b, poly[i], poly[(i+1)%n]); ok {
			ts = append(ts, t)
		}
	}
	return ts
}

// Cap is the region of a dome: a straight base of width 2·Rx centered at
// Base, and the upper half of the ellipse with radii Rx, Ry around Base.
// Since y grows downward the cap occupies y <= Base.Y.
type Cap struct {
	Base   vec.Vec2
	Rx, Ry float64
}

// Bounds implements [Boundary].
func (c Cap) Bounds() rect.Rect {
	return rect.Rect{
		LLx: c.Base.X - c.Rx,
		LLy: c.Base.Y - c.Ry,
		URx: c.Base.X + c.Rx,
		URy: c.Base.Y,
	}
}

// Centroid implements [Boundary].
func (c Cap) Centroid() vec.Vec2 {
	return vec.Vec2{X: c.Base.X, Y: c.Base.Y - 4*c.Ry/(3*math.Pi)}
}

// Area implements [Boundary].
func (c Cap) Area() float64 {
	if c.Rx <= 0 || c.Ry <= 0 {
		return 0
	}
	return math.Pi * c.Rx * c.Ry / 2
}

// Contains implements [Boundary].
func (c Cap) Contains(p vec.Vec2) bool {
	if c.Rx <= 0 || c.Ry <= 0 || p.Y > c.Base.Y+boundaryTolerance {
		return false
	}
	dx := (p.X - c.Base.X) / c.Rx
	dy := (p.Y - c.Base.Y) / c.Ry
	return dx*dx+dy*dy <= 1+boundaryTolerance
}

// Crossings implements [Boundary].  The arc crossings are computed exactly
// from the ellipse equation.
func (c Cap) Crossings(a, b vec.Vec2) []float64 {
	if c.Rx <= 0 || c.Ry <= 0 {
		return nil
	}
	var ts []float64

	left := vec.Vec2{X: c.Base.X - c.Rx, Y: c.Base.Y}
	right := vec.Vec2{X: c.Base.X + c.Rx, Y: c.Base.Y}
	if t, ok := plane.Intersect(a, b, left, right); ok {
		ts = append(ts, t)
	}

	// |((a + t·d) - base) ⊘ (rx, ry)|² = 1
	d := b.Sub(a)
	ox := (a.X - c.Base.X) / c.Rx
	oy := (a.Y - c.Base.Y) / c.Ry
	dx := d.X / c.Rx
	dy := d.Y / c.Ry
	qa := dx*dx + dy*dy
	qb := 2 * (ox*dx + oy*dy)
	qc := ox*ox + oy*oy - 1
	disc := qb*qb - 4*qa*qc
	if qa == 0 || disc < 0 {
		return ts
	}
	sq := math.Sqrt(disc)
	for _, t := range []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
		if t < 0 || t > 1 {
			continue
		}
		if a.Y+t*d.Y > c.Base.Y+boundaryTolerance {
			continue // lower half of the ellipse is not part of the cap
		}
		ts = append(ts, t)
	}
	return ts
}

// sortedCrossings returns the crossings of a→b with b sorted by position
// along the segment, with coincident parameters merged.
func sortedCrossings(bd Boundary, a, b vec.Vec2) []float64 {
	ts := bd.Crossings(a, b)
	slices.Sort(ts)
	return slices.CompactFunc(ts, func(x, y float64) bool {
		return math.Abs(x-y) < boundaryTolerance
	})
}
