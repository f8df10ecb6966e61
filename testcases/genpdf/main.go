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

// Command genpdf renders all test cases as PDF files and PNG previews.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/silhouette"
	"seehuhn.de/go/silhouette/export/pdf"
	"seehuhn.de/go/silhouette/export/png"
	"seehuhn.de/go/silhouette/testcases"
)

const outDir = "testdata/examples"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, name string) error {
	st, err := tc.LoadStyle()
	if err != nil {
		return err
	}
	for _, mode := range []silhouette.Mode{silhouette.Lines, silhouette.Fill} {
		d, err := silhouette.Generate(tc.Bounds, st, tc.Seed, mode)
		if err != nil {
			return err
		}
		base := filepath.Join(outDir, name+"_"+mode.String())
		if err := pdf.WriteFile(base+".pdf", d); err != nil {
			return err
		}
		if err := writePNG(base+".png", d); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(fname string, d *silhouette.Drawing) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Write(f, d, 1)
}
