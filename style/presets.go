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

package style

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"seehuhn.de/go/silhouette/hatch"
)

// Presets contains the built-in styles, indexed by name.
var Presets = map[string]Style{
	"classical": {
		Name:             "classical",
		BodyWidth:        Range{0.5, 0.7},
		BodyHeight:       Range{0.3, 0.45},
		BaseHeight:       0.12,
		WingProbability:  0.7,
		WingWidth:        Range{0.25, 0.45},
		WingHeight:       Range{0.5, 0.75},
		TowerProbability: 0.4,
		TowerCount:       IntRange{1, 2},
		TowerWidth:       Range{0.12, 0.2},
		TowerHeight:      Range{1.2, 1.6},
		SpireAngle:       30,
		Dome:             true,
		CrownProbability: 0.8,
		Windows:          true,
		Ornaments:        true,
		Hatch:            hatch.Config{Pattern: hatch.Diagonal, Density: 6, Angle: 45},
		StrokeWidth:      1.2,
		HatchWidth:       0.4,
	},
	"gothic": {
		Name:             "gothic",
		BodyWidth:        Range{0.45, 0.6},
		BodyHeight:       Range{0.35, 0.5},
		BaseHeight:       0.1,
		WingProbability:  0.4,
		WingWidth:        Range{0.2, 0.35},
		WingHeight:       Range{0.45, 0.7},
		TowerProbability: 1,
		TowerCount:       IntRange{2, 3},
		TowerWidth:       Range{0.14, 0.22},
		TowerHeight:      Range{1.4, 2.0},
		Spires:           true,
		SpireAngle:       24,
		CrownProbability: 0.2,
		Chamfer:          0.3,
		Windows:          true,
		Ornaments:        true,
		Hatch:            hatch.Config{Pattern: hatch.Vertical, Density: 5},
		StrokeWidth:      1.2,
		HatchWidth:       0.4,
	},
	"artdeco": {
		Name:             "artdeco",
		BodyWidth:        Range{0.4, 0.55},
		BodyHeight:       Range{0.4, 0.55},
		BaseHeight:       0.08,
		WingProbability:  0.5,
		WingWidth:        Range{0.2, 0.3},
		WingHeight:       Range{0.3, 0.5},
		TowerProbability: 0.3,
		TowerCount:       IntRange{1, 1},
		TowerWidth:       Range{0.15, 0.25},
		TowerHeight:      Range{1.3, 1.7},
		Spires:           true,
		SpireAngle:       18,
		SetbackLevels:    3,
		Chamfer:          0.8,
		Windows:          true,
		Hatch:            hatch.Config{Pattern: hatch.Horizontal, Density: 4, Side: hatch.SideRight, Coverage: 0.35},
		StrokeWidth:      1,
		HatchWidth:       0.35,
	},
	"brutalist": {
		Name:             "brutalist",
		BodyWidth:        Range{0.55, 0.8},
		BodyHeight:       Range{0.3, 0.5},
		BaseHeight:       0.15,
		WingProbability:  0.6,
		WingWidth:        Range{0.25, 0.4},
		WingHeight:       Range{0.4, 0.7},
		TowerProbability: 0.4,
		TowerCount:       IntRange{1, 2},
		TowerWidth:       Range{0.15, 0.25},
		TowerHeight:      Range{1.1, 1.4},
		SetbackLevels:    1,
		Silhouette:       Brutalist,
		Windows:          true,
		Hatch:            hatch.Config{Pattern: hatch.Cross, Density: 7},
		StrokeWidth:      1.5,
		HatchWidth:       0.4,
	},
	"ruin": {
		Name:             "ruin",
		BodyWidth:        Range{0.5, 0.7},
		BodyHeight:       Range{0.3, 0.45},
		BaseHeight:       0.1,
		WingProbability:  0.6,
		WingWidth:        Range{0.25, 0.4},
		WingHeight:       Range{0.4, 0.6},
		TowerProbability: 0.6,
		TowerCount:       IntRange{1, 2},
		TowerWidth:       Range{0.12, 0.2},
		TowerHeight:      Range{1.1, 1.5},
		SpireAngle:       30,
		Silhouette:       Ruin,
		Decay:            0.6,
		Windows:          true,
		Hatch:            hatch.Config{Pattern: hatch.Random, Density: 5},
		StrokeWidth:      1.2,
		HatchWidth:       0.4,
	},
	"byzantine": {
		Name:             "byzantine",
		BodyWidth:        Range{0.45, 0.6},
		BodyHeight:       Range{0.3, 0.4},
		BaseHeight:       0.1,
		WingProbability:  0.5,
		WingWidth:        Range{0.3, 0.5},
		WingHeight:       Range{0.5, 0.7},
		TowerProbability: 0.8,
		TowerCount:       IntRange{2, 4},
		TowerWidth:       Range{0.08, 0.12},
		TowerHeight:      Range{1.6, 2.2},
		Spires:           true,
		SpireAngle:       20,
		Dome:             true,
		CrownProbability: 0.5,
		Chamfer:          0.2,
		Windows:          true,
		Ornaments:        true,
		Hatch:            hatch.Config{Pattern: hatch.Diagonal, Density: 5, Angle: -30},
		StrokeWidth:      1.2,
		HatchWidth:       0.4,
	},
}

// Names returns the names of all presets in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(Presets))
}

// Named returns a copy of the preset with the given name.
func Named(name string) (*Style, error) {
	s, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown style %q", name)
	}
	return &s, nil
}

// Load reads a style from its JSON representation and validates it.
// Unknown fields are rejected.
func Load(r io.Reader) (*Style, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	s := &Style{}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("decoding style: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
