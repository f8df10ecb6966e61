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

// Package testcases lists the drawings used for tests, benchmarks and the
// example output.
package testcases

import (
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/silhouette/style"
)

// All maps a category name to its test cases.
var All = map[string][]TestCase{
	"presets":  presets(),
	"scenario": scenarios,
	"bounds":   bounds,
}

// presets returns every named style at a few seeds.
func presets() []TestCase {
	var res []TestCase
	for _, name := range style.Names() {
		for _, seed := range []int64{1, 7, 42} {
			res = append(res, TestCase{
				Name:   fmt.Sprintf("%s_%d", name, seed),
				Bounds: page,
				Seed:   seed,
				Style:  name,
			})
		}
	}
	return res
}

var scenarios = []TestCase{
	{
		Name:   "symmetric_towers",
		Bounds: page,
		Seed:   42,
		Style:  "classical",
		Modify: func(st *style.Style) {
			st.TowerProbability = 1
			st.TowerCount = style.IntRange{Min: 2, Max: 2}
			st.WingProbability = 0
		},
	},
	{
		Name:   "decayed",
		Bounds: page,
		Seed:   5,
		Style:  "ruin",
		Modify: func(st *style.Style) {
			st.Decay = 0.8
		},
	},
	{
		Name:   "four_towers",
		Bounds: page,
		Seed:   9,
		Style:  "gothic",
		Modify: func(st *style.Style) {
			st.TowerProbability = 1
			st.WingProbability = 1
			st.TowerCount = style.IntRange{Min: 4, Max: 4}
		},
	},
	{
		Name:   "stacked_dome",
		Bounds: page,
		Seed:   3,
		Style:  "byzantine",
		Modify: func(st *style.Style) {
			st.SetbackLevels = 2
			st.Dome = true
		},
	},
	{
		Name:   "unhatched",
		Bounds: page,
		Seed:   11,
		Style:  "artdeco",
		Modify: func(st *style.Style) {
			st.Hatch.Density = 0
		},
	},
}

var bounds = []TestCase{
	{Name: "wide", Bounds: rect.Rect{URx: 1200, URy: 300}, Seed: 2, Style: "classical"},
	{Name: "tall", Bounds: rect.Rect{URx: 200, URy: 1000}, Seed: 2, Style: "artdeco"},
	{Name: "tiny", Bounds: rect.Rect{URx: 12, URy: 12}, Seed: 2, Style: "gothic"},
	{Name: "offset", Bounds: rect.Rect{LLx: -300, LLy: -500, URx: -100, URy: -200}, Seed: 2, Style: "brutalist"},
}
