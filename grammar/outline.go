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

package grammar

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/silhouette/block"
	"seehuhn.de/go/silhouette/plane"
	"seehuhn.de/go/silhouette/rng"
	"seehuhn.de/go/silhouette/style"
)

// Chamfer sizes, in drawing units.
const (
	// chamferScale converts the chamfer intensity of a style to a cut size.
	chamferScale = 12

	// minChamfer is the smallest cut which is applied.  It is larger than
	// the visibility tolerance, so that the diagonal edges of a chamfer
	// are never mistaken for the corner they replace.
	minChamfer = 2
)

// Ruin outline parameters.
const (
	ruinAmplitude  = 0.15 // depth of the jagged top, fraction of height
	ruinSideJitter = 0.03 // lateral wobble of the sides, fraction of width
	ruinNotch      = 0.3  // notch probability per unit of decay
	ruinCorner     = 0.3  // missing corner probability per unit of decay
	ruinMinDecay   = 0.3  // decay used for ruin silhouettes with zero decay
)

// Brutalist outline parameters.
const (
	brutalistStep     = 8   // side indent, in drawing units
	brutalistMaxStep  = 0.2 // indent limit, fraction of width
	brutalistNotch    = 0.5 // probability of the top notch
	brutalistNotchW   = 0.1 // notch width, fraction of width
	brutalistNotchMax = 0.05
)

// chamfer returns the corner cuts of a w×h block of the given kind.
// Towers and setbacks are cut at both top corners, the body by half the
// amount, and all other kinds not at all.
func (e *expander) chamfer(kind block.Kind, w, h float64) block.Chamfer {
	cut := e.st.Chamfer * chamferScale
	switch kind {
	case block.Tower, block.Setback:
	case block.Body:
		cut /= 2
	default:
		return block.Chamfer{}
	}
	if cut < minChamfer {
		return block.Chamfer{}
	}
	return block.ClampChamfer(block.Chamfer{TL: cut, TR: cut}, w, h)
}

// ruined reports whether blocks get a broken outline.
func (e *expander) ruined() bool {
	return e.st.Silhouette == style.Ruin || e.st.Decay > 0
}

// shape gives b an irregular outline if the style asks for one.  The
// bounds of the block are replaced by the bounding box of the outline.
func (e *expander) shape(b *block.Block) {
	switch {
	case e.ruined():
		decay := e.st.Decay
		if decay == 0 {
			decay = ruinMinDecay
		}
		b.Outline = ruinOutline(b.Bounds, decay, e.r)
	case e.st.Silhouette == style.Brutalist && b.Chamfer.IsZero():
		b.Outline = brutalistOutline(b.Bounds, e.r)
	default:
		return
	}
	b.Bounds = plane.Bounds(b.Outline)
	b.Chamfer = block.Chamfer{}
}

// ruinOutline returns a broken version of the rectangle r, in clockwise
// screen order starting at the top left corner.
//
// The top edge is sampled at 5 to 8 points which sink into the block by a
// random amount, tapering to zero at both corners.  Between samples the
// top may have a sharp notch.  Each side gets a few points with a small
// lateral wobble, and each bottom corner may be broken off.
func ruinOutline(r rect.Rect, decay float64, s *rng.Stream) []vec.Vec2 {
	w, h := r.URx-r.LLx, r.URy-r.LLy
	amp := decay * h * ruinAmplitude
	jitter := decay * w * ruinSideJitter

	n := s.IntRange(5, 8)
	top := make([]vec.Vec2, n)
	for i := range top {
		f := float64(i) / float64(n-1)
		taper := math.Sin(math.Pi * f)
		top[i] = vec.Vec2{X: r.LLx + f*w, Y: r.LLy + amp*taper*s.Float64()}
	}
	top[n-1] = vec.Vec2{X: r.URx, Y: r.LLy}

	var pts []vec.Vec2
	for i, p := range top {
		pts = append(pts, p)
		if i == n-1 || !s.Chance(decay*ruinNotch) {
			continue
		}
		q := top[i+1]
		depth := amp * s.Between(0.5, 1.5)
		pts = append(pts, vec.Vec2{X: (p.X + q.X) / 2, Y: max(p.Y, q.Y) + depth})
	}

	k := s.IntRange(2, 4)
	for j := 1; j <= k; j++ {
		y := r.LLy + h*float64(j)/float64(k+1)
		pts = append(pts, vec.Vec2{X: r.URx + s.Jitter(jitter), Y: y})
	}

	if s.Chance(decay * ruinCorner) {
		cw := w * s.Between(0.05, 0.15)
		ch := h * s.Between(0.05, 0.15)
		pts = append(pts,
			vec.Vec2{X: r.URx, Y: r.URy - ch},
			vec.Vec2{X: r.URx - 0.6*cw, Y: r.URy - 0.4*ch},
			vec.Vec2{X: r.URx - cw, Y: r.URy})
	} else {
		pts = append(pts, vec.Vec2{X: r.URx, Y: r.URy})
	}

	if s.Chance(decay * ruinCorner) {
		cw := w * s.Between(0.05, 0.15)
		ch := h * s.Between(0.05, 0.15)
		pts = append(pts,
			vec.Vec2{X: r.LLx + cw, Y: r.URy},
			vec.Vec2{X: r.LLx + 0.6*cw, Y: r.URy - 0.4*ch},
			vec.Vec2{X: r.LLx, Y: r.URy - ch})
	} else {
		pts = append(pts, vec.Vec2{X: r.LLx, Y: r.URy})
	}

	k = s.IntRange(2, 4)
	for j := k; j >= 1; j-- {
		y := r.LLy + h*float64(j)/float64(k+1)
		pts = append(pts, vec.Vec2{X: r.LLx + s.Jitter(jitter), Y: y})
	}
	return pts
}

// brutalistOutline returns the rectangle r with stepped indents along both
// sides, in clockwise screen order starting at the top left corner.
//
// Each side is divided into 2 to 4 equal runs which alternate between
// flush and indented, starting flush at the top.  With probability 0.5 the
// top edge gets a V-shaped notch at its center.
func brutalistOutline(r rect.Rect, s *rng.Stream) []vec.Vec2 {
	w, h := r.URx-r.LLx, r.URy-r.LLy
	step := min(brutalistStep, brutalistMaxStep*w)

	pts := []vec.Vec2{{X: r.LLx, Y: r.LLy}}
	if s.Chance(brutalistNotch) {
		nw := w * brutalistNotchW
		nd := min(h*brutalistNotchMax, nw)
		cx := (r.LLx + r.URx) / 2
		pts = append(pts,
			vec.Vec2{X: cx - nw/2, Y: r.LLy},
			vec.Vec2{X: cx, Y: r.LLy + nd},
			vec.Vec2{X: cx + nw/2, Y: r.LLy})
	}

	right := steps(s.IntRange(2, 4), r.LLy, h)
	for i, y := range right[:len(right)-1] {
		x := r.URx
		if i%2 == 1 {
			x -= step
		}
		pts = append(pts, vec.Vec2{X: x, Y: y}, vec.Vec2{X: x, Y: right[i+1]})
	}

	left := steps(s.IntRange(2, 4), r.LLy, h)
	for i := len(left) - 1; i > 0; i-- {
		x := r.LLx
		if (i-1)%2 == 1 {
			x += step
		}
		pts = append(pts, vec.Vec2{X: x, Y: left[i]}, vec.Vec2{X: x, Y: left[i-1]})
	}

	return dedup(pts)
}

// steps divides [top, top+h] into k equal runs and returns the k+1
// boundaries.  The last boundary is exactly top+h.
func steps(k int, top, h float64) []float64 {
	ys := make([]float64, k+1)
	for i := range k {
		ys[i] = top + h*float64(i)/float64(k)
	}
	ys[k] = top + h
	return ys
}

// dedup removes consecutive duplicate points, including a last point equal
// to the first.
func dedup(pts []vec.Vec2) []vec.Vec2 {
	out := pts[:0]
	for _, p := range pts {
		if n := len(out); n > 0 && out[n-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}
