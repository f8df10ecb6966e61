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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke strokes p with the current line width and cap style.
//
// The stroke is built from one rectangle per flattened segment.  Interior
// vertices, and the vertices of closed subpaths, get a disk, so that all
// joins are round.  The pieces all have the same orientation and are
// filled with the nonzero rule, which merges the overlaps.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	if !(r.Width > 0) {
		return
	}
	r.outline = r.outline[:0]
	r.starts = r.starts[:0]

	var pts []vec.Vec2
	closed, drawn := false, false
	flush := func() {
		if drawn {
			r.strokeSubpath(pts, closed)
		}
		pts = pts[:0]
		closed, drawn = false, false
	}
	r.flatten(p,
		func(v vec.Vec2) {
			flush()
			pts = append(pts, v)
		},
		func(a, b vec.Vec2) {
			if len(pts) == 0 {
				pts = append(pts, a)
			}
			drawn = true
			if b.Sub(pts[len(pts)-1]).Length() > zeroLengthThreshold {
				pts = append(pts, b)
			}
		},
		func() {
			closed = true
			drawn = true
			flush()
		})
	flush()

	r.edges = r.edges[:0]
	r.empty = true
	for k, s := range r.starts {
		end := len(r.outline)
		if k+1 < len(r.starts) {
			end = r.starts[k+1]
		}
		poly := r.outline[s:end]
		for i := range poly {
			r.addEdge(poly[i], poly[(i+1)%len(poly)])
		}
	}
	r.scan(nonZero, emit)
}

// strokeSubpath adds the outline pieces of one flattened subpath.
func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool) {
	if len(pts) == 0 {
		return
	}
	hw := r.Width / 2
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}

	if len(pts) == 1 {
		// a dot; only visible with round or square caps
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisk(pts[0], hw)
		case graphics.LineCapSquare:
			r.addSquare(pts[0], vec.Vec2{X: 1}, hw)
		}
		return
	}

	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	for i := range n {
		r.addSegment(pts[i], pts[(i+1)%len(pts)], hw)
	}

	for i, v := range pts {
		end := !closed && (i == 0 || i == len(pts)-1)
		if !end {
			r.addDisk(v, hw)
			continue
		}
		switch r.Cap {
		case graphics.LineCapRound:
			r.addDisk(v, hw)
		case graphics.LineCapSquare:
			var t vec.Vec2
			if i == 0 {
				t = pts[0].Sub(pts[1])
			} else {
				t = v.Sub(pts[i-1])
			}
			r.addSquare(v, t.Mul(1/t.Length()), hw)
		}
	}
}

// addSegment adds the rectangle of width 2*hw around the segment ab.
func (r *Rasterizer) addSegment(a, b vec.Vec2, hw float64) {
	d := b.Sub(a)
	l := d.Length()
	if l <= zeroLengthThreshold {
		return
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(hw / l)
	r.starts = append(r.starts, len(r.outline))
	r.outline = append(r.outline, a.Sub(n), b.Sub(n), b.Add(n), a.Add(n))
}

// addSquare adds a square of side 2*hw centred at c, with one pair of
// sides parallel to the unit vector t.
func (r *Rasterizer) addSquare(c, t vec.Vec2, hw float64) {
	t = t.Mul(hw)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	r.starts = append(r.starts, len(r.outline))
	r.outline = append(r.outline,
		c.Sub(t).Sub(n), c.Add(t).Sub(n), c.Add(t).Add(n), c.Sub(t).Add(n))
}

// addDisk adds a polygon approximating the circle of radius hw around c.
// The number of vertices depends on the device space radius and the
// flatness.
func (r *Rasterizer) addDisk(c vec.Vec2, hw float64) {
	rad := max(r.linear(vec.Vec2{X: hw}).Length(), r.linear(vec.Vec2{Y: hw}).Length())
	n := minDiskVertices
	if rad > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/rad)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}
	r.starts = append(r.starts, len(r.outline))
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.outline = append(r.outline, vec.Vec2{
			X: c.X + hw*math.Cos(phi),
			Y: c.Y + hw*math.Sin(phi),
		})
	}
}

const minDiskVertices = 8
