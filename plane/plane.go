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

// Package plane implements the small set of planar predicates shared by
// the visibility resolver, the hatch clipper and the grammar: crossings of
// line segments, point location with respect to polygons, and bounding
// boxes.
//
// The y axis points downward throughout.
package plane

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// parallelThreshold is the magnitude of the cross product below which two
// directions are treated as parallel.
const parallelThreshold = 1e-12

// Cross returns the z component of the cross product a × b.
func Cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Lerp returns a + t(b-a).
func Lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Mid returns the midpoint of ab.
func Mid(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Intersect returns the parameter t along a→b at which the segment a→b
// meets the segment c→d.  Parallel segments never intersect.
func Intersect(a, b, c, d vec.Vec2) (float64, bool) {
	r := b.Sub(a)
	s := d.Sub(c)
	den := Cross(r, s)
	if math.Abs(den) < parallelThreshold {
		return 0, false
	}
	ca := c.Sub(a)
	t := Cross(ca, s) / den
	u := Cross(ca, r) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}

// DistToSegment returns the distance from p to the segment ab.
func DistToSegment(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(d) / l2
	t = max(0, min(1, t))
	return p.Sub(a.Add(d.Mul(t))).Length()
}

// InPolygon reports whether p lies inside the closed polygon poly, using
// the even-odd rule.  Points exactly on the boundary may be reported
// either way; use OnPolygon to test for them.
func InPolygon(p vec.Vec2, poly []vec.Vec2) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// OnPolygon reports whether p is within tol of the boundary of poly.
func OnPolygon(p vec.Vec2, poly []vec.Vec2, tol float64) bool {
	n := len(poly)
	for i := range n {
		if DistToSegment(p, poly[i], poly[(i+1)%n]) <= tol {
			return true
		}
	}
	return false
}

// Bounds returns the bounding box of pts.  The zero rectangle is returned
// for an empty slice.
func Bounds(pts []vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}

// Area returns the unsigned area of the polygon.
func Area(poly []vec.Vec2) float64 {
	return math.Abs(signedArea(poly))
}

func signedArea(poly []vec.Vec2) float64 {
	var a float64
	n := len(poly)
	for i := range n {
		a += Cross(poly[i], poly[(i+1)%n])
	}
	return a / 2
}

// Centroid returns the area centroid of the polygon.  For degenerate
// polygons the mean of the vertices is returned.
func Centroid(poly []vec.Vec2) vec.Vec2 {
	n := len(poly)
	if n == 0 {
		return vec.Vec2{}
	}
	a := signedArea(poly)
	if math.Abs(a) < parallelThreshold {
		var c vec.Vec2
		for _, p := range poly {
			c = c.Add(p)
		}
		return c.Mul(1 / float64(n))
	}
	var cx, cy float64
	for i := range n {
		p, q := poly[i], poly[(i+1)%n]
		f := Cross(p, q)
		cx += (p.X + q.X) * f
		cy += (p.Y + q.Y) * f
	}
	return vec.Vec2{X: cx / (6 * a), Y: cy / (6 * a)}
}

// RectContains reports whether p lies in r grown by tol on every side.
func RectContains(r rect.Rect, p vec.Vec2, tol float64) bool {
	return p.X >= r.LLx-tol && p.X <= r.URx+tol &&
		p.Y >= r.LLy-tol && p.Y <= r.URy+tol
}

// RectCorners returns the corners of r in clockwise screen order, starting
// at the top left.
func RectCorners(r rect.Rect) []vec.Vec2 {
	return []vec.Vec2{
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
		{X: r.URx, Y: r.URy},
		{X: r.LLx, Y: r.URy},
	}
}
