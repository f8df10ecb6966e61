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

package testcases

import (
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/silhouette/style"
)

// TestCase is one generated drawing.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Bounds rect.Rect // drawing bounds
	Seed   int64
	Style  string             // name of the preset
	Modify func(*style.Style) // optional changes to the preset
}

// LoadStyle returns a copy of the preset, with Modify applied.
func (tc TestCase) LoadStyle() (*style.Style, error) {
	st, err := style.Named(tc.Style)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tc.Name, err)
	}
	if tc.Modify != nil {
		tc.Modify(st)
	}
	return st, nil
}

// page is the drawable area of an A4 page with 40pt margins.
var page = rect.Rect{LLx: 40, LLy: 40, URx: 555, URy: 802}
