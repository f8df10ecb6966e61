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

// Package svg writes drawings as SVG files.
package svg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo/float"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/silhouette"
)

// Write writes d as an SVG document.  One user space unit of the drawing
// becomes one SVG pixel, and the view box is the drawing bounds.
func Write(w io.Writer, d *silhouette.Drawing, title string) error {
	ew := &errWriter{w: w}
	canvas := svgo.New(ew)

	b := d.Bounds
	width, height := b.URx-b.LLx, b.URy-b.LLy
	canvas.Startview(width, height, b.LLx, b.LLy, width, height)
	if title != "" {
		canvas.Title(title)
	}
	canvas.Gstyle("stroke:black;stroke-linecap:round;stroke-linejoin:round")
	for _, s := range d.Shapes {
		fill := "none"
		if s.Fill {
			fill = "white"
		}
		canvas.Path(pathData(s.Path), fmt.Sprintf("fill:%s;stroke-width:%s", fill, num(s.Width)))
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

// pathData formats p in SVG path syntax.
func pathData(p *path.Data) string {
	var b strings.Builder
	for cmd, pts := range p.Iter().ToCubic() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			b.WriteByte('M')
		case path.CmdLineTo:
			b.WriteByte('L')
		case path.CmdCubeTo:
			b.WriteByte('C')
		case path.CmdClose:
			b.WriteByte('Z')
		}
		for i, pt := range pts {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(num(pt.X))
			b.WriteByte(' ')
			b.WriteString(num(pt.Y))
		}
	}
	return b.String()
}

// num formats x with at most three decimals.
func num(x float64) string {
	s := strconv.FormatFloat(x, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// errWriter keeps the first write error, since the SVG encoder ignores
// them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
