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

package plan

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Quad is a quadrilateral footprint in plan view.
type Quad [4]vec.Vec2

// Rectangle returns the footprint of a straight segment a→b with the given
// width. The band is centred on the segment moved by shift towards its
// left-hand side.
//
// The vertices are in counter-clockwise order:
//
//	0: right side at a    1: right side at b
//	2: left side at b     3: left side at a
//
// The second return value is false if a and b coincide.
func Rectangle(a, b vec.Vec2, width, shift float64) (Quad, bool) {
	right, left, ok := Section(a, b, width, shift)
	if !ok {
		return Quad{}, false
	}
	return Quad{
		a.Add(right),
		b.Add(right),
		b.Add(left),
		a.Add(left),
	}, true
}

// Section returns the offsets from the segment a→b to the right and left
// long edges of the band described at [Rectangle]. Adding them to a point
// of the segment gives the cross-section through that point.
func Section(a, b vec.Vec2, width, shift float64) (right, left vec.Vec2, ok bool) {
	t, ok := Unit(b.Sub(a))
	if !ok {
		return vec.Vec2{}, vec.Vec2{}, false
	}
	n := LeftNormal(t)
	return n.Mul(shift - width/2), n.Mul(shift + width/2), true
}

// Path returns the footprint as a closed path.
func (q Quad) Path() *path.Data {
	return (&path.Data{}).
		MoveTo(q[0]).
		LineTo(q[1]).
		LineTo(q[2]).
		LineTo(q[3]).
		Close()
}

// Bounds returns the smallest axis-aligned rectangle containing q.
func (q Quad) Bounds() rect.Rect {
	r := rect.Rect{
		LLx: math.Inf(+1),
		LLy: math.Inf(+1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, p := range q {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r
}

// Ring returns the footprint as a closed orb ring.
func (q Quad) Ring() orb.Ring {
	return Ring(q[:])
}

// Area returns the area enclosed by the footprint.
func (q Quad) Area() float64 {
	return PolygonArea(q[:])
}

// Ring converts a polygon outline to a closed orb ring.
func Ring(pts []vec.Vec2) orb.Ring {
	if len(pts) == 0 {
		return nil
	}
	r := make(orb.Ring, 0, len(pts)+1)
	for _, p := range pts {
		r = append(r, orb.Point{p.X, p.Y})
	}
	return append(r, r[0])
}

// PolygonArea returns the (non-negative) area of a simple polygon.
func PolygonArea(pts []vec.Vec2) float64 {
	if len(pts) < 3 {
		return 0
	}
	return planar.Area(orb.Polygon{Ring(pts)})
}

// SignedArea returns the signed area of a polygon: positive for
// counter-clockwise vertex order.
func SignedArea(pts []vec.Vec2) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += Cross(p, q)
	}
	return a / 2
}
