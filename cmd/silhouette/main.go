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

// Command silhouette draws a procedurally generated building.
//
// Usage:
//
//	silhouette [flags]
//
// The drawing is written as SVG, PDF or PNG.  Without -o, SVG and PNG
// output go to stdout; PDF output needs a file name.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/silhouette"
	"seehuhn.de/go/silhouette/export/pdf"
	"seehuhn.de/go/silhouette/export/png"
	"seehuhn.de/go/silhouette/export/svg"
	"seehuhn.de/go/silhouette/style"
)

var (
	seed      = flag.Int64("seed", 1, "random seed")
	styleName = flag.String("style", "classical", "name of the style preset ("+strings.Join(style.Names(), ", ")+")")
	styleFile = flag.String("style-file", "", "read the style from a JSON file instead")
	modeName  = flag.String("mode", "lines", "drawing mode (lines or fill)")
	format    = flag.String("format", "svg", "output format (svg, pdf or png)")
	outName   = flag.String("o", "", "output file name")
	width     = flag.Float64("width", 595, "drawing width")
	height    = flag.Float64("height", 842, "drawing height")
	margin    = flag.Float64("margin", 40, "margin around the building")
	scale     = flag.Float64("scale", 1, "pixels per unit for PNG output")
	verbose   = flag.Bool("v", false, "log generation details")
)

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	silhouette.SetLogger(logger)

	if err := run(); err != nil {
		logger.Error("silhouette failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	st, err := loadStyle()
	if err != nil {
		return err
	}
	mode, err := silhouette.ParseMode(*modeName)
	if err != nil {
		return err
	}

	bounds := rect.Rect{
		LLx: *margin,
		LLy: *margin,
		URx: *width - *margin,
		URy: *height - *margin,
	}
	d, err := silhouette.Generate(bounds, st, *seed, mode)
	if err != nil {
		return err
	}
	// the page includes the margins
	d.Bounds = rect.Rect{URx: *width, URy: *height}

	switch *format {
	case "pdf":
		if *outName == "" {
			return errors.New("PDF output needs -o")
		}
		return pdf.WriteFile(*outName, d)
	case "svg":
		title := fmt.Sprintf("%s %d", st.Name, *seed)
		return writeTo(func(w io.Writer) error { return svg.Write(w, d, title) })
	case "png":
		return writeTo(func(w io.Writer) error { return png.Write(w, d, *scale) })
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func loadStyle() (*style.Style, error) {
	if *styleFile == "" {
		return style.Named(*styleName)
	}
	f, err := os.Open(*styleFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := style.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", *styleFile, err)
	}
	return st, nil
}

// writeTo calls write with the output file, or with stdout if no file
// name is given.
func writeTo(write func(io.Writer) error) (err error) {
	if *outName == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(*outName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
