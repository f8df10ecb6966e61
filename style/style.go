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

// Package style defines the configuration record which selects the
// architectural character of a generated building.
//
// A Style is a closed record: every feature the generator knows about has
// a named field, so a Style can be checked for completeness and
// consistency before generation starts.  The generator never modifies a
// Style.
package style

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/silhouette/hatch"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid style")

// Range is a closed interval of real numbers.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Lerp returns Min + t·(Max-Min).
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// IntRange is a closed interval of integers.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Clamp limits n to the interval.
func (r IntRange) Clamp(n int) int {
	return max(r.Min, min(r.Max, n))
}

// Silhouette selects how block outlines are drawn.
type Silhouette int

// These are the supported silhouettes.
const (
	// Plain blocks are drawn as (possibly chamfered) rectangles.
	Plain Silhouette = iota

	// Ruin blocks get a broken, jagged outline.
	Ruin

	// Brutalist blocks without chamfer get stepped side indents.
	Brutalist
)

var silhouetteNames = [...]string{"plain", "ruin", "brutalist"}

func (s Silhouette) String() string {
	if s < 0 || int(s) >= len(silhouetteNames) {
		return fmt.Sprintf("Silhouette(%d)", int(s))
	}
	return silhouetteNames[s]
}

// MarshalText implements [encoding.TextMarshaler].
func (s Silhouette) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(silhouetteNames) {
		return nil, fmt.Errorf("invalid silhouette %d", int(s))
	}
	return []byte(silhouetteNames[s]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Silhouette) UnmarshalText(text []byte) error {
	for i, name := range silhouetteNames {
		if string(text) == name {
			*s = Silhouette(i)
			return nil
		}
	}
	return fmt.Errorf("unknown silhouette %q", text)
}

// Style is the complete configuration of one architectural style.
//
// Ratios of the body are relative to the drawing bounds, ratios of other
// blocks are relative to the body.  Probabilities are in [0, 1].
type Style struct {
	Name string `json:"name"`

	BodyWidth  Range   `json:"bodyWidth"`  // fraction of the bounds width
	BodyHeight Range   `json:"bodyHeight"` // fraction of the bounds height
	BaseHeight float64 `json:"baseHeight"` // fraction of the body height

	WingProbability float64 `json:"wingProbability"`
	WingWidth       Range   `json:"wingWidth"`  // fraction of the body width
	WingHeight      Range   `json:"wingHeight"` // fraction of the body height

	TowerProbability float64  `json:"towerProbability"`
	TowerCount       IntRange `json:"towerCount"`
	TowerWidth       Range    `json:"towerWidth"`  // fraction of the body width
	TowerHeight      Range    `json:"towerHeight"` // fraction of the body height

	Spires     bool    `json:"spires"`
	SpireAngle float64 `json:"spireAngle"` // apex angle in degrees

	SetbackLevels int `json:"setbackLevels"`

	Dome bool `json:"dome"`

	// CrownProbability is the probability of a cornice band on the body.
	CrownProbability float64 `json:"crownProbability"`

	// Chamfer is the chamfer intensity, in [0, 1].
	Chamfer float64 `json:"chamfer"`

	Silhouette Silhouette `json:"silhouette"`

	// Decay is the amount of ruin damage, in [0, 1].  Any positive value
	// gives blocks a broken outline.
	Decay float64 `json:"decay"`

	Windows   bool `json:"windows"`
	Ornaments bool `json:"ornaments"`

	Hatch hatch.Config `json:"hatch"`

	StrokeWidth float64 `json:"strokeWidth"`
	HatchWidth  float64 `json:"hatchWidth"`
}

// Validate checks the style for inconsistent ranges and out-of-range
// values.  The first problem found is returned, wrapping [ErrInvalid].
func (s *Style) Validate() error {
	ranges := []struct {
		name   string
		r      Range
		lo, hi float64
	}{
		{"bodyWidth", s.BodyWidth, 0, 1},
		{"bodyHeight", s.BodyHeight, 0, 1},
		{"wingWidth", s.WingWidth, 0, 2},
		{"wingHeight", s.WingHeight, 0, 2},
		{"towerWidth", s.TowerWidth, 0, 1},
		{"towerHeight", s.TowerHeight, 0, 4},
	}
	for _, r := range ranges {
		if !(r.r.Min <= r.r.Max) {
			return fmt.Errorf("%s: min %g > max %g: %w", r.name, r.r.Min, r.r.Max, ErrInvalid)
		}
		if r.r.Min <= r.lo || r.r.Max > r.hi {
			return fmt.Errorf("%s: [%g, %g] not within (%g, %g]: %w",
				r.name, r.r.Min, r.r.Max, r.lo, r.hi, ErrInvalid)
		}
	}

	if s.TowerCount.Min > s.TowerCount.Max {
		return fmt.Errorf("towerCount: min %d > max %d: %w",
			s.TowerCount.Min, s.TowerCount.Max, ErrInvalid)
	}
	if s.TowerCount.Min < 0 {
		return fmt.Errorf("towerCount: negative minimum %d: %w", s.TowerCount.Min, ErrInvalid)
	}

	fractions := []struct {
		name string
		v    float64
	}{
		{"baseHeight", s.BaseHeight},
		{"wingProbability", s.WingProbability},
		{"towerProbability", s.TowerProbability},
		{"crownProbability", s.CrownProbability},
		{"chamfer", s.Chamfer},
		{"decay", s.Decay},
	}
	for _, f := range fractions {
		if !(f.v >= 0 && f.v <= 1) {
			return fmt.Errorf("%s: %g not in [0, 1]: %w", f.name, f.v, ErrInvalid)
		}
	}

	if s.Spires && !(s.SpireAngle > 0 && s.SpireAngle < 180) {
		return fmt.Errorf("spireAngle: %g not in (0, 180): %w", s.SpireAngle, ErrInvalid)
	}
	if s.SetbackLevels < 0 {
		return fmt.Errorf("setbackLevels: negative value %d: %w", s.SetbackLevels, ErrInvalid)
	}
	if s.Silhouette < Plain || s.Silhouette > Brutalist {
		return fmt.Errorf("silhouette: %w", ErrInvalid)
	}

	h := s.Hatch
	if h.Pattern < hatch.Diagonal || h.Pattern > hatch.Random {
		return fmt.Errorf("hatch.pattern: %w", ErrInvalid)
	}
	if h.Side < hatch.SideAll || h.Side > hatch.SideBottom {
		return fmt.Errorf("hatch.side: %w", ErrInvalid)
	}
	if math.IsNaN(h.Density) || h.Density < 0 {
		return fmt.Errorf("hatch.density: %g: %w", h.Density, ErrInvalid)
	}
	if h.Coverage < 0 || h.Coverage > 1 {
		return fmt.Errorf("hatch.coverage: %g not in [0, 1]: %w", h.Coverage, ErrInvalid)
	}

	if !(s.StrokeWidth >= 0) || !(s.HatchWidth >= 0) {
		return fmt.Errorf("stroke widths must be non-negative: %w", ErrInvalid)
	}
	return nil
}
