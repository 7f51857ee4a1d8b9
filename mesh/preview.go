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

package mesh

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/bim/plan"
)

// Preview renders plan footprints into a coverage image.
// Plan y points up, image y points down.
type Preview struct {
	// PixelsPerUnit is the scale of the image. Must be positive.
	PixelsPerUnit float64

	// Margin is the number of blank pixels around the drawing.
	Margin int
}

// NewPreview returns a preview with 100 pixels per plan unit and a margin
// of 4 pixels.
func NewPreview() *Preview {
	return &Preview{
		PixelsPerUnit: 100,
		Margin:        4,
	}
}

// Draw rasterises the given polygons. Overlapping polygons with the same
// orientation are painted as their union. The result is nil if there is nothing to draw.
func (p *Preview) Draw(profiles [][]plan.Point) *image.Alpha {
	bbox, ok := bounds(profiles)
	if !ok || p.PixelsPerUnit <= 0 {
		return nil
	}
	scale := p.PixelsPerUnit
	margin := float64(max(p.Margin, 0))
	w := int(math.Ceil((bbox.URx-bbox.LLx)*scale + 2*margin))
	h := int(math.Ceil((bbox.URy-bbox.LLy)*scale + 2*margin))
	w, h = max(w, 1), max(h, 1)

	toPixel := func(q plan.Point) (float32, float32) {
		x := (q.X-bbox.LLx)*scale + margin
		y := float64(h) - ((q.Y-bbox.LLy)*scale + margin)
		return float32(x), float32(y)
	}

	r := vector.NewRasterizer(w, h)
	for _, pts := range profiles {
		if len(pts) < 3 {
			continue
		}
		r.MoveTo(toPixel(pts[0]))
		for _, q := range pts[1:] {
			r.LineTo(toPixel(q))
		}
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})
	return dst
}

// Preview renders the current profiles of all meshes in the store.
func (s *Store) Preview(p *Preview) *image.Alpha {
	solids := s.Solids()
	profiles := make([][]plan.Point, len(solids))
	for i, solid := range solids {
		profiles[i] = solid.Profile
	}
	return p.Draw(profiles)
}

func bounds(profiles [][]plan.Point) (rect.Rect, bool) {
	r := rect.Rect{
		LLx: math.Inf(+1),
		LLy: math.Inf(+1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	found := false
	for _, pts := range profiles {
		if len(pts) < 3 {
			continue
		}
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

// Coverage returns the fraction of fully or partially covered pixels,
// weighted by their alpha value.
func Coverage(img *image.Alpha) float64 {
	if img == nil || len(img.Pix) == 0 {
		return 0
	}
	var sum float64
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += float64(img.AlphaAt(x, y).A) / 255
		}
	}
	return sum / float64(b.Dx()*b.Dy())
}
