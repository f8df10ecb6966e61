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

// Package png renders drawings to grayscale PNG images.
package png

import (
	"errors"
	"image"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/silhouette"
	"seehuhn.de/go/silhouette/raster"
)

// MaxPixels limits the size of rendered images.
const MaxPixels = 1 << 26

// ErrSize is returned when the image would be empty or too large.
var ErrSize = errors.New("image size out of range")

// Render paints d onto a white image.  Drawing units are multiplied by
// scale to get pixels.
func Render(d *silhouette.Drawing, scale float64) (*image.Gray, error) {
	b := d.Bounds
	w := int(math.Ceil((b.URx - b.LLx) * scale))
	h := int(math.Ceil((b.URy - b.LLy) * scale))
	if !(scale > 0) || w <= 0 || h <= 0 || w > MaxPixels/h {
		return nil, ErrSize
	}

	ctm := matrix.Matrix{scale, 0, 0, scale, -b.LLx * scale, -b.LLy * scale}
	c := raster.NewCanvas(w, h, ctm)
	for _, s := range d.Shapes {
		if s.Fill {
			c.Fill(s.Path, 0xFF)
		}
		if s.Width > 0 {
			c.Stroke(s.Path, s.Width, 0)
		}
	}
	return c.Img, nil
}

// Write renders d and writes it as a PNG image.
func Write(w io.Writer, d *silhouette.Drawing, scale float64) error {
	img, err := Render(d, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
