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

// Command export writes the block lists and visible edges of all test
// cases to testdata/drawings.json, for inspection by external tools.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/silhouette"
	"seehuhn.de/go/silhouette/block"
	"seehuhn.de/go/silhouette/testcases"
)

type jsonDrawing struct {
	Name   string        `json:"name"`
	Style  string        `json:"style"`
	Seed   int64         `json:"seed"`
	Bounds [4]float64    `json:"bounds"`
	Blocks []block.Block `json:"blocks"`
	Edges  [][4]float64  `json:"edges"`
	Hatch  [][4]float64  `json:"hatch"`
}

func main() {
	var out struct {
		Drawings []jsonDrawing `json:"drawings"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			st, err := tc.LoadStyle()
			if err != nil {
				panic(err)
			}
			d, err := silhouette.Generate(tc.Bounds, st, tc.Seed, silhouette.Lines)
			if err != nil {
				panic(err)
			}
			out.Drawings = append(out.Drawings, toJSON(category+"_"+tc.Name, tc, d))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/drawings.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func toJSON(name string, tc testcases.TestCase, d *silhouette.Drawing) jsonDrawing {
	jd := jsonDrawing{
		Name:   name,
		Style:  tc.Style,
		Seed:   tc.Seed,
		Bounds: rectJSON(d.Bounds),
		Blocks: d.Blocks,
	}
	for _, e := range d.Edges {
		jd.Edges = append(jd.Edges, [4]float64{e.A.X, e.A.Y, e.B.X, e.B.Y})
	}
	for _, s := range d.Hatch {
		jd.Hatch = append(jd.Hatch, [4]float64{s.A.X, s.A.Y, s.B.X, s.B.Y})
	}
	return jd
}

func rectJSON(r rect.Rect) [4]float64 {
	return [4]float64{r.LLx, r.LLy, r.URx, r.URy}
}
