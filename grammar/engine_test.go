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
	"errors"
	"math"
	"reflect"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/silhouette/block"
	"seehuhn.de/go/silhouette/harmony"
	"seehuhn.de/go/silhouette/plane"
	"seehuhn.de/go/silhouette/rng"
	"seehuhn.de/go/silhouette/style"
)

var testBounds = rect.Rect{LLx: 40, LLy: 40, URx: 555, URy: 802}

func mustStyle(t *testing.T, name string) *style.Style {
	t.Helper()
	s, err := style.Named(name)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func count(blocks []block.Block, kind block.Kind) []block.Block {
	var res []block.Block
	for _, b := range blocks {
		if b.Kind == kind {
			res = append(res, b)
		}
	}
	return res
}

func byID(blocks []block.Block, id int) *block.Block {
	for i := range blocks {
		if blocks[i].ID == id {
			return &blocks[i]
		}
	}
	return nil
}

// forAll runs f for every preset and a range of seeds.
func forAll(t *testing.T, f func(t *testing.T, st *style.Style, blocks []block.Block)) {
	for _, name := range style.Names() {
		st := mustStyle(t, name)
		for seed := int64(1); seed <= 40; seed++ {
			blocks, err := Expand(testBounds, st, seed)
			if err != nil {
				t.Fatalf("%s/%d: %v", name, seed, err)
			}
			f(t, st, blocks)
		}
	}
}

func TestSymmetricTowerPair(t *testing.T) {
	st := mustStyle(t, "classical")
	st.TowerProbability = 1
	st.TowerCount = style.IntRange{Min: 2, Max: 2}
	st.WingProbability = 0

	blocks, err := Expand(testBounds, st, 42)
	if err != nil {
		t.Fatal(err)
	}
	bodies := count(blocks, block.Body)
	if len(bodies) != 1 {
		t.Fatalf("got %d bodies", len(bodies))
	}
	if n := len(count(blocks, block.Base)); n != 1 {
		t.Errorf("got %d bases", n)
	}
	if n := len(count(blocks, block.Wing)); n != 0 {
		t.Errorf("got %d wings", n)
	}
	towers := count(blocks, block.Tower)
	if len(towers) != 2 {
		t.Fatalf("got %d towers", len(towers))
	}
	cx := bodies[0].Center().X
	d0 := towers[0].Center().X - cx
	d1 := towers[1].Center().X - cx
	if math.Abs(d0+d1) > 1e-6 || d0 == 0 {
		t.Errorf("towers at offsets %g and %g from the body center", d0, d1)
	}
	if math.Abs(towers[0].Width()-towers[1].Width()) > 1e-9 || towers[0].Height() != towers[1].Height() {
		t.Errorf("towers differ in size: %v vs %v", towers[0].Bounds, towers[1].Bounds)
	}
}

func TestRuinedBody(t *testing.T) {
	st := mustStyle(t, "ruin")
	st.Decay = 0.8
	for seed := int64(0); seed < 50; seed++ {
		blocks, err := Expand(testBounds, st, seed)
		if err != nil {
			t.Fatal(err)
		}
		body := count(blocks, block.Body)[0]
		if len(body.Outline) < 8 {
			t.Fatalf("seed %d: outline has %d points", seed, len(body.Outline))
		}
		if body.Bounds != plane.Bounds(body.Outline) {
			t.Errorf("seed %d: bounds %v, outline box %v", seed, body.Bounds, plane.Bounds(body.Outline))
		}
		if len(count(blocks, block.Crown)) != 0 {
			t.Errorf("seed %d: ruin has a crown", seed)
		}
	}
}

func TestBrutalistOutline(t *testing.T) {
	st := mustStyle(t, "brutalist")
	blocks, err := Expand(testBounds, st, 7)
	if err != nil {
		t.Fatal(err)
	}
	body := count(blocks, block.Body)[0]
	if len(body.Outline) < 6 {
		t.Fatalf("outline has %d points", len(body.Outline))
	}
	for i, p := range body.Outline {
		q := body.Outline[(i+1)%len(body.Outline)]
		if p == q {
			t.Errorf("duplicate point %v at %d", p, i)
		}
	}
	if body.Bounds != plane.Bounds(body.Outline) {
		t.Errorf("bounds %v, outline box %v", body.Bounds, plane.Bounds(body.Outline))
	}
}

func TestPriorityMonotone(t *testing.T) {
	forAll(t, func(t *testing.T, st *style.Style, blocks []block.Block) {
		for i := 1; i < len(blocks); i++ {
			if blocks[i-1].Priority() > blocks[i].Priority() {
				t.Fatalf("%s: %s before %s", st.Name, blocks[i-1].Kind, blocks[i].Kind)
			}
		}
	})
}

func TestBlocksValid(t *testing.T) {
	forAll(t, func(t *testing.T, st *style.Style, blocks []block.Block) {
		seen := map[int]bool{}
		for _, b := range blocks {
			if !(b.Width() > 0) || !(b.Height() > 0) {
				t.Fatalf("%s: degenerate %s %v", st.Name, b.Kind, b.Bounds)
			}
			if seen[b.ID] {
				t.Fatalf("%s: duplicate ID %d", st.Name, b.ID)
			}
			seen[b.ID] = true
			if b.Parent >= 0 && byID(blocks, b.Parent) == nil {
				t.Fatalf("%s: %s has unknown parent %d", st.Name, b.Kind, b.Parent)
			}
		}
	})
}

func TestChamferBound(t *testing.T) {
	forAll(t, func(t *testing.T, st *style.Style, blocks []block.Block) {
		for _, b := range blocks {
			limit := min(b.Width(), b.Height()) / 2
			c := b.Chamfer
			for _, x := range []float64{c.TL, c.TR, c.BL, c.BR} {
				if x < 0 || x >= limit {
					t.Fatalf("%s: %s chamfer %v exceeds %g", st.Name, b.Kind, c, limit)
				}
			}
			if c.BL != 0 || c.BR != 0 {
				t.Fatalf("%s: %s has bottom chamfer %v", st.Name, b.Kind, c)
			}
		}
	})
}

func TestChamferPolicy(t *testing.T) {
	st := mustStyle(t, "artdeco")
	st.Chamfer = 0.5 // cut of 6 units
	st.SetbackLevels = 2
	st.TowerProbability = 1
	blocks, err := Expand(testBounds, st, 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range blocks {
		var want float64
		switch b.Kind {
		case block.Tower, block.Setback:
			want = 6
		case block.Body:
			want = 3
		}
		if b.Chamfer.TL != want || b.Chamfer.TR != want {
			t.Errorf("%s: chamfer %v, want %g", b.Kind, b.Chamfer, want)
		}
	}

	st.Chamfer = 0.1 // below the minimal cut
	blocks, err = Expand(testBounds, st, 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range blocks {
		if !b.Chamfer.IsZero() {
			t.Errorf("%s: chamfer %v, want none", b.Kind, b.Chamfer)
		}
	}
}

func TestSpireGeometry(t *testing.T) {
	forAll(t, func(t *testing.T, st *style.Style, blocks []block.Block) {
		for _, s := range count(blocks, block.Spire) {
			want := SpireHeight(s.Width(), st.SpireAngle)
			if math.Abs(s.Height()-want) > 1e-9 {
				t.Fatalf("%s: spire height %g, want %g", st.Name, s.Height(), want)
			}
			p := byID(blocks, s.Parent)
			if p == nil || (p.Kind != block.Tower && p.Kind != block.Setback) {
				t.Fatalf("%s: spire parent %v", st.Name, p)
			}
			if math.Abs(s.Bounds.URy-p.Bounds.LLy) > 1e-9 {
				t.Fatalf("%s: spire base %g, parent top %g", st.Name, s.Bounds.URy, p.Bounds.LLy)
			}
		}
	})

	if h := SpireHeight(10, 90); math.Abs(h-5) > 1e-12 {
		t.Errorf("SpireHeight(10, 90) = %g", h)
	}
}

func TestSetbacksNarrower(t *testing.T) {
	st := mustStyle(t, "artdeco")
	for seed := int64(0); seed < 30; seed++ {
		blocks, err := Expand(testBounds, st, seed)
		if err != nil {
			t.Fatal(err)
		}
		tiers := count(blocks, block.Setback)
		if len(tiers) != st.SetbackLevels {
			t.Fatalf("seed %d: %d tiers", seed, len(tiers))
		}
		for _, tier := range tiers {
			p := byID(blocks, tier.Parent)
			if tier.Width() >= p.Width() {
				t.Errorf("seed %d: tier width %g not below %g", seed, tier.Width(), p.Width())
			}
			if math.Abs(tier.Bounds.URy-p.Bounds.LLy) > 1e-9 {
				t.Errorf("seed %d: tier does not sit on its parent", seed)
			}
		}
	}
}

func TestWingsFlush(t *testing.T) {
	st := mustStyle(t, "classical")
	st.WingProbability = 1
	for seed := int64(0); seed < 30; seed++ {
		blocks, err := Expand(testBounds, st, seed)
		if err != nil {
			t.Fatal(err)
		}
		body := count(blocks, block.Body)[0]
		wings := count(blocks, block.Wing)
		if len(wings) != 2 {
			t.Fatalf("seed %d: %d wings", seed, len(wings))
		}
		if wings[0].Side != block.Left || wings[0].Bounds.URx != body.Bounds.LLx {
			t.Errorf("seed %d: left wing %v, body %v", seed, wings[0].Bounds, body.Bounds)
		}
		if wings[1].Side != block.Right || wings[1].Bounds.LLx != body.Bounds.URx {
			t.Errorf("seed %d: right wing %v, body %v", seed, wings[1].Bounds, body.Bounds)
		}
		bw := body.Bounds.URx - body.Bounds.LLx
		want := bw * st.WingWidth.Lerp(harmony.New(seed).Massiveness)
		for _, w := range wings {
			if w.Bounds.URy != testBounds.URy {
				t.Errorf("seed %d: wing not on the ground", seed)
			}
			if got := w.Width(); math.Abs(got-want) > 1e-9 {
				t.Errorf("seed %d: wing width %g, want %g", seed, got, want)
			}
		}
	}
}

func TestTowerPlacement(t *testing.T) {
	type want struct {
		center, wing int     // towers on the body axis and on the wings
		offset       float64 // distance of the off-axis body towers, in body widths
		pairs        int     // towers at ±offset
	}
	cases := []struct {
		count int
		wings bool
		want  []want // any of these layouts is accepted
	}{
		{1, false, []want{{center: 1}}},
		{1, true, []want{{center: 1}, {wing: 1}}},
		{3, false, []want{{center: 1, offset: tripleOffset, pairs: 2}}},
		{3, true, []want{{center: 1, offset: tripleOffset, pairs: 2}, {center: 1, wing: 2}}},
		{4, false, []want{{offset: quadOffset, pairs: 2}}},
		{6, false, []want{{offset: quadOffset, pairs: 2}}},
		{4, true, []want{{offset: quadOffset, pairs: 2, wing: 2}}},
		{6, true, []want{{offset: quadOffset, pairs: 2, wing: 2}}},
	}
	for _, c := range cases {
		st := mustStyle(t, "classical")
		st.Spires = false
		st.TowerProbability = 1
		st.TowerCount = style.IntRange{Min: c.count, Max: c.count}
		st.WingProbability = 0
		if c.wings {
			st.WingProbability = 1
		}
		for seed := int64(0); seed < 20; seed++ {
			blocks, err := Expand(testBounds, st, seed)
			if err != nil {
				t.Fatal(err)
			}
			body := count(blocks, block.Body)[0].Bounds
			bw := body.URx - body.LLx
			cx := (body.LLx + body.URx) / 2
			wings := count(blocks, block.Wing)
			if c.wings != (len(wings) == 2) {
				t.Fatalf("%d/%v/%d: %d wings", c.count, c.wings, seed, len(wings))
			}
			onWing := func(x float64) bool {
				for _, w := range wings {
					if math.Abs(x-(w.Bounds.LLx+w.Bounds.URx)/2) < 1e-9 {
						return true
					}
				}
				return false
			}

			towers := count(blocks, block.Tower)
			var got want
			var bodyH, wingH []float64
			for _, tw := range towers {
				x := (tw.Bounds.LLx + tw.Bounds.URx) / 2
				h := tw.Bounds.URy - tw.Bounds.LLy
				switch {
				case math.Abs(x-cx) < 1e-9:
					got.center++
					bodyH = append(bodyH, h)
				case onWing(x):
					got.wing++
					wingH = append(wingH, h)
				default:
					d := math.Abs(x-cx) / bw
					if got.pairs > 0 && math.Abs(d-got.offset) > 1e-9 {
						t.Errorf("%d/%v/%d: uneven pair offsets", c.count, c.wings, seed)
					}
					got.offset = d
					got.pairs++
					bodyH = append(bodyH, h)
				}
			}

			ok := false
			for _, w := range c.want {
				if got.center == w.center && got.wing == w.wing && got.pairs == w.pairs &&
					(w.pairs == 0 || math.Abs(got.offset-w.offset) < 1e-9) {
					ok = true
				}
			}
			if !ok || len(towers) != got.center+got.wing+got.pairs {
				t.Errorf("%d/%v/%d: layout %+v", c.count, c.wings, seed, got)
			}
			for _, wh := range wingH {
				for _, h := range bodyH {
					if math.Abs(wh-wingTowerScale*h) > 1e-9 {
						t.Errorf("%d/%v/%d: wing tower height %g, body tower %g",
							c.count, c.wings, seed, wh, h)
					}
				}
			}
		}
	}
}

func TestBaseFlags(t *testing.T) {
	blocks, err := Expand(testBounds, mustStyle(t, "gothic"), 5)
	if err != nil {
		t.Fatal(err)
	}
	base := count(blocks, block.Base)[0]
	body := count(blocks, block.Body)[0]
	if !base.Door || base.Windows {
		t.Errorf("base flags door=%v windows=%v", base.Door, base.Windows)
	}
	if base.Parent != body.ID {
		t.Errorf("base parent %d, body ID %d", base.Parent, body.ID)
	}
	if base.Bounds.URy != body.Bounds.URy {
		t.Errorf("base not bottom anchored")
	}
}

func TestDeterministic(t *testing.T) {
	for _, name := range style.Names() {
		st := mustStyle(t, name)
		a, err := Expand(testBounds, st, 99)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Expand(testBounds, st, 99)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: two expansions differ", name)
		}
	}
}

func TestExpandStream(t *testing.T) {
	st := mustStyle(t, "gothic")
	a, err := Expand(testBounds, st, 17)
	if err != nil {
		t.Fatal(err)
	}
	r := rng.New(17)
	b, err := ExpandStream(testBounds, st, 17, r)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("ExpandStream with a fresh stream differs from Expand")
	}

	// the stream continues after the expansion
	fresh := rng.New(17)
	if r.Float64() == fresh.Float64() {
		t.Error("stream was not advanced")
	}
}

func TestRejectsBadInput(t *testing.T) {
	st := mustStyle(t, "classical")
	if _, err := Expand(rect.Rect{LLx: 0, LLy: 0, URx: 0, URy: 10}, st, 1); !errors.Is(err, ErrBounds) {
		t.Errorf("zero width: got %v", err)
	}
	st.TowerCount = style.IntRange{Min: 3, Max: 1}
	if _, err := Expand(testBounds, st, 1); !errors.Is(err, style.ErrInvalid) {
		t.Errorf("inverted tower count: got %v", err)
	}
}

func TestRuinOutlineShape(t *testing.T) {
	r := block.Rect(0, 0, 100, 200)
	for seed := int64(0); seed < 200; seed++ {
		pts := ruinOutline(r, 1, rng.New(seed))
		if len(pts) < 11 {
			t.Fatalf("seed %d: %d points", seed, len(pts))
		}
		bb := plane.Bounds(pts)
		if bb.LLy != 0 || bb.URy != 200 {
			t.Errorf("seed %d: vertical extent %v", seed, bb)
		}
		if bb.LLx < -3 || bb.URx > 103 {
			t.Errorf("seed %d: sides wobble too far: %v", seed, bb)
		}
	}
}
