// seehuhn.de/go/bim - parametric building elements
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

// Package drawing writes plan views of element footprints as PDF and PNG
// files.
package drawing

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/bim/mesh"
)

// Plan is a plan view to be drawn.
type Plan struct {
	// Profiles are the outlines to draw, in plan coordinates.
	Profiles [][]vec.Vec2

	// Scale is the number of PDF points (or pixels) per plan unit.
	Scale float64

	// Margin is the blank border around the drawing, in points or pixels.
	Margin float64
}

// NewPlan returns a plan drawn at 100 points per unit with a margin of 10
// points.
func NewPlan(profiles [][]vec.Vec2) *Plan {
	return &Plan{
		Profiles: profiles,
		Scale:    100,
		Margin:   10,
	}
}

// Bounds returns the bounding box of all profiles, and false if there is
// nothing to draw.
func (p *Plan) Bounds() (rect.Rect, bool) {
	r := rect.Rect{
		LLx: math.Inf(+1),
		LLy: math.Inf(+1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	found := false
	for _, pts := range p.Profiles {
		for _, q := range pts {
			r.LLx = min(r.LLx, q.X)
			r.LLy = min(r.LLy, q.Y)
			r.URx = max(r.URx, q.X)
			r.URy = max(r.URy, q.Y)
			found = true
		}
	}
	return r, found
}

// WritePDF writes the plan as a single page PDF file. The profiles are
// filled in grey and outlined in black.
func (p *Plan) WritePDF(fname string) error {
	bbox, ok := p.Bounds()
	if !ok {
		return fmt.Errorf("write %s: empty plan", fname)
	}
	if !(p.Scale > 0) {
		return fmt.Errorf("write %s: invalid scale %g", fname, p.Scale)
	}

	paper := &pdf.Rectangle{
		URx: (bbox.URx-bbox.LLx)*p.Scale + 2*p.Margin,
		URy: (bbox.URy-bbox.LLy)*p.Scale + 2*p.Margin,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF and plan coordinates both have y pointing up.
	page.Transform(matrix.Matrix{
		p.Scale, 0,
		0, p.Scale,
		p.Margin - bbox.LLx*p.Scale, p.Margin - bbox.LLy*p.Scale,
	})

	page.SetFillColor(pdfcolor.DeviceGray(0.75))
	for _, pts := range p.Profiles {
		if tracePolygon(page, pts) {
			page.Fill()
		}
	}

	page.SetStrokeColor(pdfcolor.DeviceGray(0))
	page.SetLineWidth(1 / p.Scale)
	for _, pts := range p.Profiles {
		if tracePolygon(page, pts) {
			page.Stroke()
		}
	}

	return page.Close()
}

type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func tracePolygon(page pathBuilder, pts []vec.Vec2) bool {
	if len(pts) < 3 {
		return false
	}
	page.MoveTo(pts[0].X, pts[0].Y)
	for _, q := range pts[1:] {
		page.LineTo(q.X, q.Y)
	}
	page.ClosePath()
	return true
}

// WritePNG rasterises the plan and writes it as a greyscale PNG image with
// black shapes on a white background.
func (p *Plan) WritePNG(w io.Writer) error {
	prev := &mesh.Preview{
		PixelsPerUnit: p.Scale,
		Margin:        int(math.Round(p.Margin)),
	}
	mask := prev.Draw(p.Profiles)
	if mask == nil {
		return fmt.Errorf("write png: empty plan")
	}
	return png.Encode(w, Invert(mask))
}

// Invert converts a coverage mask to a greyscale image where covered
// pixels are dark.
func Invert(mask *image.Alpha) *image.Gray {
	b := mask.Bounds()
	img := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetGray(x, y, color.Gray{Y: 255 - mask.AlphaAt(x, y).A})
		}
	}
	return img
}
