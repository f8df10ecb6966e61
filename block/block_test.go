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
	"encoding/json"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/silhouette/hatch"
)

func TestPriorityOrder(t *testing.T) {
	order := []Kind{Building, Wing, Body, Base, Crown, Setback, Tower, Floor, Bay, Dome, Spire}
	for i, k := range order {
		if k.Priority() != i {
			t.Errorf("%s: priority %d, want %d", k, k.Priority(), i)
		}
	}
	if Kind(42).Priority() != -1 {
		t.Error("invalid kind has a priority")
	}
}

func TestSortByPriorityStable(t *testing.T) {
	blocks := []Block{
		{ID: 0, Kind: Tower},
		{ID: 1, Kind: Body},
		{ID: 2, Kind: Spire},
		{ID: 3, Kind: Tower},
		{ID: 4, Kind: Wing},
		{ID: 5, Kind: Wing},
	}
	SortByPriority(blocks)
	want := []int{4, 5, 1, 0, 3, 2}
	for i, b := range blocks {
		if b.ID != want[i] {
			t.Fatalf("position %d: got ID %d, want %d", i, b.ID, want[i])
		}
	}
}

func TestKindJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		K Kind
		S Side
	}{Setback, Right})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"K":"setback","S":"right"}` {
		t.Errorf("got %s", data)
	}
	var k Kind
	if err := k.UnmarshalText([]byte("minaret")); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestClampChamfer(t *testing.T) {
	c := ClampChamfer(Chamfer{TL: 30, TR: 5, BL: -1, BR: 100}, 40, 20)
	if c.TL >= 10 || c.BR >= 10 {
		t.Errorf("chamfer %v not below half the shorter side", c)
	}
	if c.TR != 5 || c.BL != 0 {
		t.Errorf("chamfer %v: small amounts changed", c)
	}
}

func TestEdgesPlain(t *testing.T) {
	b := Block{Kind: Body, Bounds: Rect(0, 0, 100, 50)}
	edges := b.Edges(7)
	if len(edges) != 4 {
		t.Fatalf("got %d edges, want 4", len(edges))
	}
	var total float64
	for _, e := range edges {
		if e.Owner != 7 {
			t.Errorf("edge %v has owner %d", e, e.Owner)
		}
		total += e.Length()
	}
	if total != 300 {
		t.Errorf("perimeter %g, want 300", total)
	}
}

func TestEdgesChamfered(t *testing.T) {
	b := Block{
		Kind:    Tower,
		Bounds:  Rect(0, 0, 40, 100),
		Chamfer: Chamfer{TL: 6, TR: 6},
	}
	edges := b.Edges(0)
	if len(edges) != 6 {
		t.Fatalf("got %d edges, want 6", len(edges))
	}
	sides := map[EdgeSide]Edge{}
	for _, e := range edges {
		sides[e.Side] = e
	}
	top := sides[Top]
	if top.Length() != 28 {
		t.Errorf("top edge length %g, want 28", top.Length())
	}
	for _, s := range []EdgeSide{ChamferTL, ChamferTR} {
		if got := sides[s].Length(); math.Abs(got-6*math.Sqrt2) > 1e-12 {
			t.Errorf("%s length %g", s, got)
		}
	}
	if _, ok := sides[ChamferBL]; ok {
		t.Error("uncut corner produced a diagonal")
	}

	// consecutive edges join up
	for i := range edges {
		next := edges[(i+1)%len(edges)]
		if edges[i].B != next.A {
			t.Errorf("edge %d ends at %v, edge %d starts at %v", i, edges[i].B, i+1, next.A)
		}
	}
}

func TestEdgesOutline(t *testing.T) {
	b := Block{
		Kind:   Body,
		Bounds: Rect(0, 0, 10, 10),
		Outline: []vec.Vec2{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 10}, {X: 0, Y: 10},
		},
	}
	edges := b.Edges(0)
	if len(edges) != 4 {
		t.Fatalf("got %d edges, want 4", len(edges))
	}
	want := []EdgeSide{Top, RightSide, Bottom, LeftSide}
	for i, e := range edges {
		if e.Side != want[i] {
			t.Errorf("edge %d: side %s, want %s", i, e.Side, want[i])
		}
	}
}

func TestPathShapes(t *testing.T) {
	cases := []struct {
		b     Block
		cmds  int
		cubes int
	}{
		{Block{Kind: Body, Bounds: Rect(0, 0, 10, 10)}, 5, 0},
		{Block{Kind: Tower, Bounds: Rect(0, 0, 10, 30), Chamfer: Chamfer{TL: 2, TR: 2}}, 7, 0},
		{Block{Kind: Spire, Bounds: Rect(0, 0, 10, 30)}, 4, 0},
		{Block{Kind: Dome, Bounds: Rect(0, 0, 40, 20)}, 4, 2},
	}
	for _, tc := range cases {
		p := tc.b.Path()
		if len(p.Cmds) != tc.cmds {
			t.Errorf("%s: %d commands, want %d", tc.b.Kind, len(p.Cmds), tc.cmds)
		}
		cubes := 0
		for _, c := range p.Cmds {
			if c == path.CmdCubeTo {
				cubes++
			}
		}
		if cubes != tc.cubes {
			t.Errorf("%s: %d curves, want %d", tc.b.Kind, cubes, tc.cubes)
		}
	}
}

func TestBoundaryKinds(t *testing.T) {
	dome := Block{Kind: Dome, Bounds: Rect(0, 0, 40, 20)}
	cp, ok := dome.Boundary().(hatch.Cap)
	if !ok {
		t.Fatalf("dome boundary is %T", dome.Boundary())
	}
	if cp.Base != (vec.Vec2{X: 20, Y: 20}) || cp.Rx != 20 || cp.Ry != 20 {
		t.Errorf("dome cap %+v", cp)
	}

	spire := Block{Kind: Spire, Bounds: Rect(0, 0, 10, 30)}
	if poly, ok := spire.Boundary().(hatch.Polygon); !ok || len(poly) != 3 {
		t.Errorf("spire boundary %v", spire.Boundary())
	}

	plain := Block{Kind: Body, Bounds: Rect(0, 0, 10, 10)}
	if _, ok := plain.Boundary().(hatch.Rect); !ok {
		t.Errorf("plain boundary is %T", plain.Boundary())
	}

	cut := Block{Kind: Tower, Bounds: Rect(0, 0, 10, 30), Chamfer: Chamfer{TL: 2}}
	if poly, ok := cut.Boundary().(hatch.Polygon); !ok || len(poly) != 5 {
		t.Errorf("chamfered boundary %v", cut.Boundary())
	}
}
