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

// Package furniture implements point elements: pieces of furniture which
// share a box-shaped body defined by their type and are placed by a
// position and a rotation.
package furniture

import (
	"fmt"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim"
)

// Type is a family of furniture sharing one body.
type Type struct {
	// Width, Depth and Height are the dimensions of the body. Width is
	// measured along the local x axis, Depth along the local y axis.
	// All must be positive. After changing them, call [Type.Update].
	Width, Depth, Height float64

	env     *bim.Env
	members []*Furniture
}

// NewType returns a furniture type with a 1 × 1 × 1 body.
func NewType(env *bim.Env) *Type {
	return &Type{
		Width:  1,
		Depth:  1,
		Height: 1,
		env:    env,
	}
}

// Furniture is a placed piece of furniture.
type Furniture struct {
	bim.Element

	// Position is the plan location of the centre of the body.
	Position vec.Vec2

	// Rotation is the angle of the local x axis, in radians
	// counter-clockwise.
	Rotation float64

	// Elevation is the height of the bottom face.
	Elevation float64

	typ       *Type
	footprint [4]vec.Vec2
}

// AddInstance creates a new piece of furniture at the origin.
func (t *Type) AddInstance() (*Furniture, error) {
	elem, err := bim.NewElement(t.env, bim.KindFurniture)
	if err != nil {
		return nil, err
	}
	f := &Furniture{Element: elem, typ: t}
	t.members = append(t.members, f)
	return f, nil
}

// Instances returns the members of the type in creation order.
func (t *Type) Instances() []*Furniture {
	return slices.Clone(t.members)
}

// RemoveInstance removes f from the type.
func (t *Type) RemoveInstance(f *Furniture) error {
	i := slices.Index(t.members, f)
	if i < 0 {
		return fmt.Errorf("remove furniture: %w", bim.ErrNotMember)
	}
	t.members = slices.Delete(t.members, i, i+1)
	f.typ = nil
	return nil
}

// Update applies a change of the body dimensions. If propagate is set,
// all members are updated and the failures are returned as a
// [*bim.BatchError].
func (t *Type) Update(propagate bool) error {
	if !propagate {
		return nil
	}
	var errs []error
	for _, f := range t.members {
		if err := f.Update(); err != nil {
			errs = append(errs, err)
		}
	}
	return bim.Batch(errs)
}

// Footprint returns the corners of the body in plan view, in
// counter-clockwise order.
func (f *Furniture) Footprint() [4]vec.Vec2 {
	return f.footprint
}

// Update places the body at the current position and writes the solid to
// the model and the mesh store. If the body dimensions are invalid, the
// previous footprint and meshes are kept.
func (f *Furniture) Update() error {
	if f.typ == nil {
		return &bim.InstanceError{ID: f.ID(), Err: bim.ErrNotMember}
	}
	t := f.typ
	if !(t.Width > 0 && t.Depth > 0 && t.Height > 0) {
		err := fmt.Errorf("%w: body %g × %g × %g", bim.ErrDegenerateGeometry, t.Width, t.Depth, t.Height)
		return &bim.InstanceError{ID: f.ID(), Err: err}
	}

	transform := bim.Transform{
		Origin:    f.Position,
		Rotation:  f.Rotation,
		Elevation: f.Elevation,
	}
	w, d := t.Width/2, t.Depth/2
	local := [4]vec.Vec2{{X: -w, Y: -d}, {X: w, Y: -d}, {X: w, Y: d}, {X: -w, Y: d}}
	var footprint [4]vec.Vec2
	for i, p := range local {
		footprint[i] = transform.Apply(p)
	}

	solid := bim.Extrusion(bim.KindFurniture, transform, footprint[:], f.Elevation, t.Height)
	if err := f.Push(solid); err != nil {
		return err
	}
	f.Transform = transform
	f.footprint = footprint
	return nil
}
