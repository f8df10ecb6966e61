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

// Package grammar expands a seed and a style into the blocks of a building.
//
// Expansion is a single pass over a fixed sequence of steps: body, base,
// wings, towers with their spires, setbacks, dome and crown.  Later steps
// may look at blocks created by earlier ones, for example towers are
// placed on wings.  All random values are drawn from one stream created
// from the seed, and the shape traits come from [harmony.New], so the
// result depends on nothing but the inputs.
package grammar

import (
	"errors"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/silhouette/block"
	"seehuhn.de/go/silhouette/harmony"
	"seehuhn.de/go/silhouette/rng"
	"seehuhn.de/go/silhouette/style"
)

// ErrBounds is returned when the drawing bounds have no area.
var ErrBounds = errors.New("drawing bounds must have positive width and height")

// Probabilities of the optional placement decisions.
const (
	pTowerOnWing   = 0.3 // single tower goes on a wing
	pPairOnWings   = 0.4 // tower pair goes on the wings
	pTripleOnWings = 0.5 // outer towers of three go on the wings
	pTowerSpire    = 0.8 // tower gets a spire
	pSetbackSpire  = 0.6 // setback stack gets a spire
	pDome          = 0.7 // body gets a dome
)

// Proportions of the generated blocks.
const (
	tripleOffset   = 0.35 // body-side towers of three, fraction of body width
	quadOffset     = 0.3  // body-side towers of four or more
	wingTowerScale = 0.7  // height multiplier of towers on wings
	wingTowerMax   = 0.8  // maximal tower width, fraction of wing width

	setbackRatioMin  = 0.7
	setbackRatioMax  = 0.85
	setbackHeightMin = 0.1
	setbackHeightMax = 0.2
	setbackSpire     = 0.3 // spire width, fraction of the top tier

	domeWidthMin  = 0.3
	domeWidthMax  = 0.5
	domeHeightMin = 0.4
	domeHeightMax = 0.6

	crownHeight   = 0.03 // fraction of body height
	crownOverhang = 0.02 // per side, fraction of body width
)

// expander holds the state of one expansion.
type expander struct {
	st     *style.Style
	h      harmony.Harmony
	r      *rng.Stream
	bounds rect.Rect
	ground float64

	blocks []block.Block

	body     int       // index of the body
	bodyRect rect.Rect // body rectangle before any outline was applied
	wings    []int     // indices of the wings, left first
	top      float64   // top of the setback stack
}

// Expand generates the blocks of one building inside bounds.  The result
// is sorted by layering priority, back to front.
//
// The style is validated before any block is generated.  Bounds without
// positive width and height give [ErrBounds].
func Expand(bounds rect.Rect, st *style.Style, seed int64) ([]block.Block, error) {
	return ExpandStream(bounds, st, seed, rng.New(seed))
}

// ExpandStream is like [Expand], but draws the random decisions from r
// instead of a fresh stream.  The caller can continue to use r after the
// expansion, so that one stream serves a whole drawing.  The harmony
// traits are still derived from seed.
func ExpandStream(bounds rect.Rect, st *style.Style, seed int64, r *rng.Stream) ([]block.Block, error) {
	if !(bounds.URx-bounds.LLx > 0) || !(bounds.URy-bounds.LLy > 0) {
		return nil, ErrBounds
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}

	e := &expander{
		st:     st,
		h:      harmony.New(seed),
		r:      r,
		bounds: bounds,
		ground: bounds.URy,
	}
	e.addBody()
	e.addBase()
	e.addWings()
	e.addTowers()
	e.addSetbacks()
	e.addDome()
	e.addCrown()

	block.SortByPriority(e.blocks)
	return e.blocks, nil
}

// add appends b to the block list, assigning its ID, and returns its index.
func (e *expander) add(b block.Block) int {
	b.ID = len(e.blocks)
	e.blocks = append(e.blocks, b)
	return b.ID
}

func (e *expander) addBody() {
	bw := (e.bounds.URx - e.bounds.LLx) * e.st.BodyWidth.Lerp(e.h.Massiveness)
	bh := (e.bounds.URy - e.bounds.LLy) * e.st.BodyHeight.Lerp(e.h.Verticality)
	x := (e.bounds.LLx+e.bounds.URx)/2 - bw/2

	b := block.Block{
		Kind:      block.Body,
		Bounds:    rect.Rect{LLx: x, LLy: e.ground - bh, URx: x + bw, URy: e.ground},
		Depth:     1,
		Parent:    -1,
		Windows:   e.st.Windows,
		Ornaments: e.st.Ornaments,
		Hatched:   e.st.Hatch.Enabled(),
	}
	e.bodyRect = b.Bounds
	e.top = b.Bounds.LLy
	b.Chamfer = e.chamfer(block.Body, bw, bh)
	e.shape(&b)
	e.body = e.add(b)
}

func (e *expander) addBase() {
	bh := (e.bodyRect.URy - e.bodyRect.LLy) * e.st.BaseHeight
	if bh <= 0 {
		return
	}
	e.add(block.Block{
		Kind:   block.Base,
		Bounds: rect.Rect{LLx: e.bodyRect.LLx, LLy: e.ground - bh, URx: e.bodyRect.URx, URy: e.ground},
		Depth:  2,
		Parent: e.body,
		Door:   true,
	})
}

func (e *expander) addWings() {
	if !e.r.Chance(e.st.WingProbability) {
		return
	}
	body := e.bodyRect
	bw := body.URx - body.LLx
	bh := body.URy - body.LLy

	// Wings may reach past the drawing bounds.
	ww := bw * e.st.WingWidth.Lerp(e.h.Massiveness)
	wh := bh * e.st.WingHeight.Lerp(1-e.h.Verticality)
	wh = min(wh, e.ground-e.bounds.LLy)

	for _, side := range []block.Side{block.Left, block.Right} {
		r := rect.Rect{LLx: body.LLx - ww, LLy: e.ground - wh, URx: body.LLx, URy: e.ground}
		if side == block.Right {
			r.LLx, r.URx = body.URx, body.URx+ww
		}
		b := block.Block{
			Kind:      block.Wing,
			Bounds:    r,
			Depth:     1,
			Parent:    e.body,
			Side:      side,
			Windows:   e.st.Windows,
			Ornaments: e.st.Ornaments,
			Hatched:   e.st.Hatch.Enabled(),
		}
		e.shape(&b)
		e.wings = append(e.wings, e.add(b))
	}
}

func (e *expander) addDome() {
	if !e.st.Dome || !e.r.Chance(pDome) {
		return
	}
	bw := e.bodyRect.URx - e.bodyRect.LLx
	dw := bw * e.r.Between(domeWidthMin, domeWidthMax)
	dh := dw * e.r.Between(domeHeightMin, domeHeightMax)
	cx := (e.bodyRect.LLx + e.bodyRect.URx) / 2
	e.add(block.Block{
		Kind:    block.Dome,
		Bounds:  block.Rect(cx-dw/2, e.top-dh, dw, dh),
		Depth:   2,
		Parent:  e.body,
		Hatched: e.st.Hatch.Enabled(),
	})
}

// addCrown adds a cornice band along the top of the body.  Broken
// outlines have no cornice left.
func (e *expander) addCrown() {
	if !e.r.Chance(e.st.CrownProbability) || e.ruined() {
		return
	}
	bw := e.bodyRect.URx - e.bodyRect.LLx
	bh := e.bodyRect.URy - e.bodyRect.LLy
	over := bw * crownOverhang
	e.add(block.Block{
		Kind:      block.Crown,
		Bounds:    block.Rect(e.bodyRect.LLx-over, e.bodyRect.LLy, bw+2*over, bh*crownHeight),
		Depth:     2,
		Parent:    e.body,
		Ornaments: e.st.Ornaments,
	})
}
