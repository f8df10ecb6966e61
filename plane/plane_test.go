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

package plane

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestIntersect(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d vec.Vec2
		wantT      float64
		wantOK     bool
	}{
		{"cross", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 4, Y: -1}, vec.Vec2{X: 4, Y: 1}, 0.4, true},
		{"miss", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 12, Y: -1}, vec.Vec2{X: 12, Y: 1}, 0, false},
		{"parallel", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 10, Y: 1}, 0, false},
		{"endpoint", vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 20}, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Intersect(tc.a, tc.b, tc.c, tc.d)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && math.Abs(got-tc.wantT) > 1e-12 {
				t.Errorf("t = %v, want %v", got, tc.wantT)
			}
		})
	}
}

func TestInPolygon(t *testing.T) {
	// a U shape, open at the top
	u := []vec.Vec2{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 8}, {X: 8, Y: 8},
		{X: 8, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	cases := []struct {
		p    vec.Vec2
		want bool
	}{
		{vec.Vec2{X: 1, Y: 5}, true},
		{vec.Vec2{X: 5, Y: 5}, false},
		{vec.Vec2{X: 5, Y: 9}, true},
		{vec.Vec2{X: 11, Y: 5}, false},
	}
	for _, tc := range cases {
		if got := InPolygon(tc.p, u); got != tc.want {
			t.Errorf("InPolygon(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
	if InPolygon(vec.Vec2{}, u[:2]) {
		t.Error("two-point polygon contains a point")
	}
}

func TestOnPolygon(t *testing.T) {
	sq := RectCorners(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10})
	if !OnPolygon(vec.Vec2{X: 5, Y: 0.5}, sq, 1) {
		t.Error("point near top edge not on boundary")
	}
	if OnPolygon(vec.Vec2{X: 5, Y: 5}, sq, 1) {
		t.Error("center reported on boundary")
	}
}

func TestBoundsAreaCentroid(t *testing.T) {
	tri := []vec.Vec2{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 0, Y: 3}}
	b := Bounds(tri)
	if b != (rect.Rect{LLx: 0, LLy: 0, URx: 6, URy: 3}) {
		t.Errorf("Bounds = %v", b)
	}
	if a := Area(tri); math.Abs(a-9) > 1e-12 {
		t.Errorf("Area = %v, want 9", a)
	}
	c := Centroid(tri)
	if math.Abs(c.X-2) > 1e-12 || math.Abs(c.Y-1) > 1e-12 {
		t.Errorf("Centroid = %v, want (2,1)", c)
	}
}

func TestDistToSegment(t *testing.T) {
	a, b := vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}
	if d := DistToSegment(vec.Vec2{X: 5, Y: 3}, a, b); d != 3 {
		t.Errorf("perpendicular distance = %v", d)
	}
	if d := DistToSegment(vec.Vec2{X: 13, Y: 4}, a, b); d != 5 {
		t.Errorf("endpoint distance = %v", d)
	}
	if d := DistToSegment(vec.Vec2{X: 3, Y: 4}, a, a); d != 5 {
		t.Errorf("degenerate distance = %v", d)
	}
}
