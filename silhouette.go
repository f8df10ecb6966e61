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

// Package silhouette generates architectural line art.
//
// A drawing is made from a seed and a style.  The seed is expanded into a
// building of rectangular blocks, domes and spires (package grammar), the
// blocks are layered back to front, and the hidden edges are removed
// (package visibility).  Blocks can be filled with hatch lines (package
// hatch).  The result is a list of paths with stroke widths, ready to be
// written by the exporters in the export directory.
//
// Generation is deterministic: the same bounds, style and seed always give
// the same drawing.
package silhouette

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/silhouette/block"
	"seehuhn.de/go/silhouette/grammar"
	"seehuhn.de/go/silhouette/hatch"
	"seehuhn.de/go/silhouette/rng"
	"seehuhn.de/go/silhouette/style"
	"seehuhn.de/go/silhouette/visibility"
)

// ErrBounds is returned by [Generate] for bounds without area.
var ErrBounds = grammar.ErrBounds

// Mode selects how the blocks are turned into paths.
type Mode int

const (
	// Lines draws the visible edges only.  Lines covered by blocks further
	// to the front are cut away.
	Lines Mode = iota

	// Fill paints every block as a filled and stroked shape, back to
	// front, so that front blocks cover the ones behind.
	Fill
)

var modeNames = []string{"lines", "fill"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode returns the Mode with the given name.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Shape is one path of a drawing.
type Shape struct {
	Path *path.Data

	// Width is the stroke width.
	Width float64

	// Fill indicates that the inside of the path is painted with the
	// background colour before it is stroked.
	Fill bool
}

// Drawing is a generated building.
type Drawing struct {
	Bounds rect.Rect
	Mode   Mode

	// Blocks are sorted by layering priority, back to front.
	Blocks []block.Block

	// Edges are the visible pieces of the block edges.  They are only set
	// in Lines mode.
	Edges []block.Edge

	// Hatch are the hatch lines of all blocks.  In Lines mode, the parts
	// covered by front blocks are removed.
	Hatch []hatch.Segment

	// Shapes are the paths to draw, in painting order.
	Shapes []Shape
}

// Generate creates the drawing for the given bounds, style and seed.
//
// The style is validated first; a style error wraps [style.ErrInvalid].
// Bounds without positive width and height give [ErrBounds].
func Generate(bounds rect.Rect, st *style.Style, seed int64, mode Mode) (*Drawing, error) {
	if mode != Lines && mode != Fill {
		return nil, fmt.Errorf("unknown mode %d", int(mode))
	}
	r := rng.New(seed)
	blocks, err := grammar.ExpandStream(bounds, st, seed, r)
	if err != nil {
		return nil, err
	}

	d := &Drawing{
		Bounds: bounds,
		Mode:   mode,
		Blocks: blocks,
	}
	if mode == Fill {
		d.fill(st, r)
		Logger().Debug("generated",
			"style", st.Name, "seed", seed, "mode", mode,
			"blocks", len(blocks), "hatch", len(d.Hatch), "shapes", len(d.Shapes))
		return d, nil
	}

	res := visibility.Resolve(blocks)
	d.Edges = visibility.Trim(res.Edges, blocks)
	d.lines(st, r)
	Logger().Debug("generated",
		"style", st.Name, "seed", seed, "mode", mode,
		"blocks", len(blocks), "edges", len(res.Edges),
		"hidden", res.Hidden, "seams", res.Seams,
		"pieces", len(d.Edges), "hatch", len(d.Hatch))
	return d, nil
}

// lines builds the shapes for Lines mode: one path for the edges, one
// closed path for every dome and spire, and one path for the hatching.
func (d *Drawing) lines(st *style.Style, r *rng.Stream) {
	edges := &path.Data{}
	for _, e := range d.Edges {
		edges = edges.MoveTo(e.A).LineTo(e.B)
	}
	d.add(edges, st.StrokeWidth, false)

	for i := range d.Blocks {
		b := &d.Blocks[i]
		if !b.Straight() {
			d.add(b.Path(), st.StrokeWidth, false)
		}
	}

	for i := range d.Blocks {
		for _, s := range d.hatch(i, st, r) {
			d.Hatch = append(d.Hatch, visibility.Visible(s, i, d.Blocks)...)
		}
	}
	d.add(segmentPath(d.Hatch), st.HatchWidth, false)
}

// fill builds the shapes for Fill mode.  Each block is painted as a
// filled outline, followed by its hatching.
func (d *Drawing) fill(st *style.Style, r *rng.Stream) {
	for i := range d.Blocks {
		d.add(d.Blocks[i].Path(), st.StrokeWidth, true)
		segs := d.hatch(i, st, r)
		d.Hatch = append(d.Hatch, segs...)
		d.add(segmentPath(segs), st.HatchWidth, false)
	}
}

// hatch returns the hatch lines of block i, or nil if the block is not
// hatched.
func (d *Drawing) hatch(i int, st *style.Style, r *rng.Stream) []hatch.Segment {
	b := &d.Blocks[i]
	if !b.Hatched {
		return nil
	}
	return hatch.Generate(b.Boundary(), st.Hatch, r)
}

// add appends a shape, unless its path is empty.
func (d *Drawing) add(p *path.Data, width float64, fill bool) {
	if len(p.Cmds) == 0 {
		return
	}
	d.Shapes = append(d.Shapes, Shape{Path: p, Width: width, Fill: fill})
}

func segmentPath(segs []hatch.Segment) *path.Data {
	p := &path.Data{}
	for _, s := range segs {
		p = p.MoveTo(s.A).LineTo(s.B)
	}
	return p
}
