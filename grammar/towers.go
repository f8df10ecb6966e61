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

	"seehuhn.de/go/silhouette/block"
)

// towerSite is the planned position of one tower.
type towerSite struct {
	x      float64 // horizontal center
	wing   int     // index of the supporting wing, or -1
	side   block.Side
	parent int
}

// addTowers places the towers according to their count and the presence
// of wings, then gives each tower its optional spire.
func (e *expander) addTowers() {
	if !e.r.Chance(e.st.TowerProbability) {
		return
	}
	n := e.st.TowerCount.Clamp(e.r.IntRange(e.st.TowerCount.Min, e.st.TowerCount.Max))
	if n <= 0 {
		return
	}

	body := e.bodyRect
	bw := body.URx - body.LLx
	bh := body.URy - body.LLy
	cx := (body.LLx + body.URx) / 2
	hasWings := len(e.wings) == 2

	center := towerSite{x: cx, wing: -1, side: block.Center, parent: e.body}
	pair := func(offset float64) []towerSite {
		d := offset * bw
		return []towerSite{
			{x: cx - d, wing: -1, side: block.Left, parent: e.body},
			{x: cx + d, wing: -1, side: block.Right, parent: e.body},
		}
	}
	onWings := func() []towerSite {
		var sites []towerSite
		for _, w := range e.wings {
			wb := e.blocks[w].Bounds
			sites = append(sites, towerSite{
				x:      (wb.LLx + wb.URx) / 2,
				wing:   w,
				side:   e.blocks[w].Side,
				parent: w,
			})
		}
		return sites
	}

	var sites []towerSite
	switch {
	case n == 1:
		if hasWings && e.r.Chance(pTowerOnWing) {
			w := onWings()
			if e.r.Chance(e.h.LeftBias) {
				sites = w[:1]
			} else {
				sites = w[1:]
			}
		} else {
			sites = []towerSite{center}
		}
	case n == 2:
		if hasWings && e.r.Chance(pPairOnWings) {
			sites = onWings()
		} else {
			sites = pair(e.h.TowerSpread)
		}
	case n == 3:
		sites = []towerSite{center}
		if hasWings && e.r.Chance(pTripleOnWings) {
			sites = append(sites, onWings()...)
		} else {
			sites = append(sites, pair(tripleOffset)...)
		}
	default:
		sites = pair(quadOffset)
		if hasWings {
			sites = append(sites, onWings()...)
		}
	}

	tw := bw * e.st.TowerWidth.Lerp(1-e.h.Massiveness)
	th := bh * e.st.TowerHeight.Lerp(e.h.Verticality)
	th = min(th, e.ground-e.bounds.LLy)

	for _, s := range sites {
		w, h := tw, th
		depth := 2
		if s.wing >= 0 {
			wb := e.blocks[s.wing].Bounds
			w = min(w, wingTowerMax*(wb.URx-wb.LLx))
			h *= wingTowerScale
			depth = 3
		}
		b := block.Block{
			Kind:      block.Tower,
			Bounds:    rect.Rect{LLx: s.x - w/2, LLy: e.ground - h, URx: s.x + w/2, URy: e.ground},
			Depth:     depth,
			Parent:    s.parent,
			Side:      s.side,
			Windows:   e.st.Windows,
			Ornaments: e.st.Ornaments,
			Hatched:   e.st.Hatch.Enabled(),
		}
		b.Chamfer = e.chamfer(block.Tower, w, h)
		e.shape(&b)
		id := e.add(b)

		if e.st.Spires && e.r.Chance(pTowerSpire) {
			e.addSpire(id, b.Bounds.LLx, b.Bounds.URx, b.Bounds.LLy)
		}
	}
}

// addSetbacks stacks the setback tiers on top of the body, each narrower
// than the one below, and optionally crowns the stack with a spire.
func (e *expander) addSetbacks() {
	levels := e.st.SetbackLevels
	if levels <= 0 {
		return
	}
	bh := e.bodyRect.URy - e.bodyRect.LLy
	cx := (e.bodyRect.LLx + e.bodyRect.URx) / 2
	width := e.bodyRect.URx - e.bodyRect.LLx
	parent := e.body

	for level := range levels {
		width *= e.r.Between(setbackRatioMin, setbackRatioMax)
		h := bh * e.r.Between(setbackHeightMin, setbackHeightMax)
		b := block.Block{
			Kind:      block.Setback,
			Bounds:    block.Rect(cx-width/2, e.top-h, width, h),
			Depth:     2 + level,
			Parent:    parent,
			Windows:   e.st.Windows,
			Ornaments: e.st.Ornaments,
			Hatched:   e.st.Hatch.Enabled(),
		}
		b.Chamfer = e.chamfer(block.Setback, width, h)
		e.top -= h
		e.shape(&b)
		parent = e.add(b)
	}

	if e.st.Spires && e.r.Chance(pSetbackSpire) {
		sw := setbackSpire * width
		e.addSpire(parent, cx-sw/2, cx+sw/2, e.top)
	}
}

// addSpire adds a spire of the given horizontal extent standing on the
// line y = base.  The height follows from the apex angle of the style.
func (e *expander) addSpire(parent int, left, right, base float64) {
	w := right - left
	h := SpireHeight(w, e.st.SpireAngle)
	if !(w > 0) || !(h > 0) {
		return
	}
	e.add(block.Block{
		Kind:    block.Spire,
		Bounds:  block.Rect(left, base-h, w, h),
		Depth:   e.blocks[parent].Depth + 1,
		Parent:  parent,
		Side:    e.blocks[parent].Side,
		Hatched: e.st.Hatch.Enabled(),
	})
}

// SpireHeight returns the height of an isosceles triangle with base width w
// and the given apex angle in degrees.
func SpireHeight(w, apex float64) float64 {
	return (w / 2) / math.Tan(apex*math.Pi/360)
}
