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

package wall

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim/plan"
)

// leg is one wall as seen from a corner.
type leg struct {
	w   *Wall
	end End
	p   vec.Vec2 // joined centerline endpoint
	u   vec.Vec2 // unit direction away from the corner

	// interiorLeft is true if the left edge of the wall faces the
	// corner wedge.
	interiorLeft bool
}

func newLeg(w *Wall, end End) leg {
	p := w.endpoint(end)
	far := w.endpoint(1 - end)
	u, _ := plan.Unit(far.Sub(p))
	return leg{w: w, end: end, p: p, u: u}
}

// edge returns the line through the long edge on the given side of the
// corner, together with the index of the footprint vertex at the joined
// end of this edge. The line is taken from the base footprint.
func (l *leg) edge(side plan.Side) (plan.Line, int) {
	left := l.interiorLeft == (side == plan.Interior)
	b := &l.w.base
	var line plan.Line
	if left {
		line = plan.LineThrough(b[3], b[2])
	} else {
		line = plan.LineThrough(b[0], b[1])
	}
	return line, vertexIndex(l.end, left)
}

// endCut holds new positions for the two joined-end vertices of a wall.
type endCut struct {
	idx [2]int
	p   [2]vec.Vec2
}

// cutAt returns the points where both long edges of l meet line.
func (l *leg) cutAt(line plan.Line) (endCut, bool) {
	var c endCut
	for i, side := range []plan.Side{plan.Interior, plan.Exterior} {
		e, k := l.edge(side)
		p, ok := plan.Intersect(e, line)
		if !ok {
			return endCut{}, false
		}
		c.idx[i], c.p[i] = k, p
	}
	return c, true
}

func (c endCut) apply(w *Wall) {
	for i, k := range c.idx {
		w.trimmed[k] = c.p[i]
	}
}

// nearestEnd returns the end of w nearest to p. Start wins ties.
func nearestEnd(w *Wall, p vec.Vec2) End {
	if w.endpoint(AtStart).Sub(p).Length() <= w.endpoint(AtEnd).Sub(p).Length() {
		return AtStart
	}
	return AtEnd
}

// resolve trims the footprints of the two walls of j so that they meet at
// the corner. Both walls must have a base footprint. Every replaced vertex
// stays on the long edge of its own wall.
//
// If Side and CutSide agree, the joined ends are mitred: both walls share
// the seam from A, where their CutSide edges meet, to Q, where their other
// edges meet. Otherwise one wall stops at the Side face of the other one;
// CutAnchor selects which, see [Joint].
// Parallel walls, and configurations where a needed intersection does not
// exist, get a butt join at First's joined endpoint.
func resolve(j Joint, first, second *Wall) (mitred bool) {
	l1 := newLeg(first, j.PriorityEnd)
	l2 := newLeg(second, nearestEnd(second, l1.p))

	if math.Abs(plan.Cross(l1.u, l2.u)) < plan.ParallelTolerance {
		butt(&l1, &l2)
		return false
	}

	// The wedge between the two walls is on the side of u2 for the first
	// wall and on the side of u1 for the second one.
	l1.interiorLeft = plan.Cross(direction(first), l2.u) > 0
	l2.interiorLeft = plan.Cross(direction(second), l1.u) > 0

	var c1, c2 endCut
	var ok1, ok2 bool
	if j.Side == j.CutSide {
		c1, c2, ok1 = miter(&l1, &l2, j.CutSide)
		ok2 = ok1
	} else {
		// The other wall stops at the Side face of the anchor wall, the
		// anchor wall is cut by the CutSide face of the other wall. Both
		// cuts pass through the point where these two faces cross.
		anchor, other := &l1, &l2
		if j.CutAnchor != j.Side {
			anchor, other = other, anchor
		}
		face, _ := anchor.edge(j.Side)
		far, _ := other.edge(j.CutSide)
		var ca, co endCut
		ca, ok1 = anchor.cutAt(far)
		co, ok2 = other.cutAt(face)
		c1, c2 = ca, co
		if anchor != &l1 {
			c1, c2 = co, ca
		}
	}
	if !ok1 || !ok2 {
		butt(&l1, &l2)
		return false
	}
	c1.apply(first)
	c2.apply(second)
	return true
}

// miter computes the mitred ends of two walls. The vertices on the given
// side move to the crossing of the two edges on that side, the other
// vertices to the crossing of the remaining edges.
func miter(l1, l2 *leg, side plan.Side) (endCut, endCut, bool) {
	a1, i1 := l1.edge(side)
	a2, i2 := l2.edge(side)
	b1, k1 := l1.edge(side.Opposite())
	b2, k2 := l2.edge(side.Opposite())

	a, okA := plan.Intersect(a1, a2)
	q, okQ := plan.Intersect(b1, b2)
	if !okA || !okQ {
		return endCut{}, endCut{}, false
	}
	c1 := endCut{idx: [2]int{i1, k1}, p: [2]vec.Vec2{a, q}}
	c2 := endCut{idx: [2]int{i2, k2}, p: [2]vec.Vec2{a, q}}
	return c1, c2, true
}

// butt recomputes the joined ends of both walls as cross-sections through
// the joined endpoint of the first wall.
func butt(l1, l2 *leg) {
	s := l1.p
	right, left := l1.w.sectionAt(s)
	l1.w.trimmed[vertexIndex(l1.end, false)] = right
	l1.w.trimmed[vertexIndex(l1.end, true)] = left

	at := s
	if !vecEqual(l2.p, s) {
		at = plan.Project(s, plan.LineThrough(l2.w.endpoint(AtStart), l2.w.endpoint(AtEnd)))
	}
	right, left = l2.w.sectionAt(at)
	l2.w.trimmed[vertexIndex(l2.end, false)] = right
	l2.w.trimmed[vertexIndex(l2.end, true)] = left
}

// direction returns the unit direction of the centerline of the base
// footprint.
func direction(w *Wall) vec.Vec2 {
	u, _ := plan.Unit(w.endpoint(AtEnd).Sub(w.endpoint(AtStart)))
	return u
}

func vecEqual(a, b vec.Vec2) bool {
	return a.X == b.X && a.Y == b.Y
}
