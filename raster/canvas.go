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

package raster

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// Canvas paints paths onto a grayscale image.
type Canvas struct {
	Img *image.Gray
	r   *Rasterizer
}

// NewCanvas returns a white canvas of the given pixel size.  The CTM maps
// drawing coordinates to pixels.
func NewCanvas(width, height int, ctm matrix.Matrix) *Canvas {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	r := New(rect.Rect{URx: float64(width), URy: float64(height)})
	r.CTM = ctm
	r.Cap = graphics.LineCapRound
	return &Canvas{Img: img, r: r}
}

// Fill paints the inside of p, using the nonzero rule.
func (c *Canvas) Fill(p *path.Data, gray uint8) {
	c.r.FillNonZero(p, c.paint(gray))
}

// Stroke paints the outline of p with round caps.
func (c *Canvas) Stroke(p *path.Data, width float64, gray uint8) {
	c.r.Width = width
	c.r.Stroke(p, c.paint(gray))
}

// paint returns an EmitFunc which blends gray into the image, weighted by
// the coverage.
func (c *Canvas) paint(gray uint8) EmitFunc {
	g := float32(gray)
	return func(y, xMin int, coverage []float32) {
		row := c.Img.Pix[y*c.Img.Stride+xMin:]
		for i, a := range coverage {
			old := float32(row[i])
			row[i] = uint8(old + (g-old)*a + 0.5)
		}
	}
}
