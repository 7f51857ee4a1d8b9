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

// Package wall implements straight walls of constant cross-section and the
// resolution of corners between them.
//
// Walls belong to a [Type], which owns the thickness shared by its walls and
// the list of registered corners ([Joint]). Editing a wall is a two-step
// process: after changing parameters, [Wall.Update] rebuilds the wall's own
// footprint, and [Type.UpdateCorners] trims the footprints of all walls
// whose corners are affected by the change.
//
// A Type and its walls are not safe for concurrent use.
package wall

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim"
	"seehuhn.de/go/bim/plan"
)

// Ref is a stable reference to a wall within its type.
// The zero Ref refers to no wall.
type Ref struct {
	index int
	gen   uint32
}

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool {
	return r.gen == 0
}

func (r Ref) String() string {
	if r.IsZero() {
		return "#nil"
	}
	return fmt.Sprintf("#%d.%d", r.index, r.gen)
}

// Wall is a straight wall with a rectangular footprint.
type Wall struct {
	bim.Element

	// Start and End are the endpoints of the centerline.
	Start, End vec.Vec2

	// Offset shifts the cross-section sideways, in units of half the
	// thickness: 0 centres the wall on the centerline, +1 moves it
	// entirely to the left of Start→End and -1 to the right.
	// The valid range is [-1, 1].
	Offset float64

	// Elevation is the height of the bottom face.
	Elevation float64

	// Height is the extrusion height. Must be positive.
	Height float64

	typ     *Type
	ref     Ref
	hasBase bool
	shape   shape // geometry of base
	base    plan.Quad
	trimmed plan.Quad
}

// shape is the geometry a base footprint was built from. Corners are
// resolved from it, so that parameters edited after the last update do
// not leak into corner resolution.
type shape struct {
	start, end  vec.Vec2
	right, left vec.Vec2 // offsets of the long edges from the centerline
}

func (s shape) quad() plan.Quad {
	return plan.Quad{
		s.start.Add(s.right),
		s.end.Add(s.right),
		s.end.Add(s.left),
		s.start.Add(s.left),
	}
}

// Ref returns the reference of the wall within its type.
func (w *Wall) Ref() Ref {
	return w.ref
}

// Thickness returns the thickness of the wall's type.
// The result is 0 for a wall which has been removed from its type.
func (w *Wall) Thickness() float64 {
	if w.typ == nil {
		return 0
	}
	return w.typ.Thickness
}

// HasFootprint reports whether the wall has been updated successfully at
// least once.
func (w *Wall) HasFootprint() bool {
	return w.hasBase
}

// Base returns the footprint of the wall ignoring all corners.
// The vertex order is described at [plan.Rectangle].
func (w *Wall) Base() plan.Quad {
	return w.base
}

// Trimmed returns the footprint of the wall after corner resolution.
func (w *Wall) Trimmed() plan.Quad {
	return w.trimmed
}

// Update recomputes the footprint from the current parameters, discarding
// any corner trims, and writes the resulting solid to the model and the
// mesh store. The wall's corners are re-resolved by the next call to
// [Type.UpdateCorners].
//
// If the parameters are invalid, the wall keeps its previous footprint and
// meshes.
func (w *Wall) Update() error {
	if w.typ == nil {
		return &bim.InstanceError{ID: w.ID(), Err: bim.ErrNotMember}
	}
	sh, err := w.footprint()
	if err != nil {
		return &bim.InstanceError{ID: w.ID(), Err: err}
	}

	d := w.End.Sub(w.Start)
	transform := bim.Transform{
		Origin:    w.Start,
		Rotation:  math.Atan2(d.Y, d.X),
		Elevation: w.Elevation,
	}
	base := sh.quad()
	if err := w.Push(w.solid(transform, base)); err != nil {
		return err
	}

	w.Transform = transform
	w.shape = sh
	w.base = base
	w.trimmed = base
	w.hasBase = true
	w.typ.markDirty(w.ref)
	return nil
}

// footprint checks the parameters and computes the geometry of the base
// footprint, as described at [plan.Rectangle].
func (w *Wall) footprint() (shape, error) {
	t := w.typ.Thickness
	switch {
	case !(t > 0) || math.IsInf(t, 0):
		return shape{}, fmt.Errorf("%w: thickness %g", bim.ErrDegenerateGeometry, t)
	case !finite(w.Start) || !finite(w.End):
		return shape{}, fmt.Errorf("%w: centerline %v -> %v", bim.ErrInvalidParameter, w.Start, w.End)
	case w.Offset < -1 || w.Offset > 1 || math.IsNaN(w.Offset):
		return shape{}, fmt.Errorf("%w: offset %g outside [-1, 1]", bim.ErrInvalidParameter, w.Offset)
	case math.IsNaN(w.Elevation) || math.IsInf(w.Elevation, 0):
		return shape{}, fmt.Errorf("%w: elevation %g", bim.ErrInvalidParameter, w.Elevation)
	case !(w.Height > 0) || math.IsInf(w.Height, 0):
		return shape{}, fmt.Errorf("%w: height %g", bim.ErrInvalidParameter, w.Height)
	}
	right, left, ok := plan.Section(w.Start, w.End, t, w.Offset*t/2)
	if !ok {
		return shape{}, fmt.Errorf("%w: zero-length centerline at %v", bim.ErrDegenerateGeometry, w.Start)
	}
	return shape{start: w.Start, end: w.End, right: right, left: left}, nil
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (w *Wall) solid(transform bim.Transform, profile plan.Quad) bim.SolidDescriptor {
	return bim.Extrusion(bim.KindWall, transform, profile[:], w.Elevation, w.Height)
}

// push writes the trimmed footprint to the model and the mesh store.
func (w *Wall) push() error {
	return w.Push(w.solid(w.Transform, w.trimmed))
}

// endpoint returns the endpoint at e of the centerline of the base
// footprint.
func (w *Wall) endpoint(e End) vec.Vec2 {
	if e == AtStart {
		return w.shape.start
	}
	return w.shape.end
}

// vertexIndex returns the index of the footprint vertex at end e, on the
// left or right long edge.
func vertexIndex(e End, left bool) int {
	switch {
	case e == AtStart && !left:
		return 0
	case e == AtEnd && !left:
		return 1
	case e == AtEnd && left:
		return 2
	default:
		return 3
	}
}

// sectionAt returns the right and left vertices of the cross-section of
// the base footprint through the centerline point p. For p equal to an
// endpoint the result equals the base vertices exactly.
func (w *Wall) sectionAt(p vec.Vec2) (right, left vec.Vec2) {
	return p.Add(w.shape.right), p.Add(w.shape.left)
}
