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

package bim

import (
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim/plan"
)

// Transform places an element: a plan origin, a rotation about the
// vertical axis (radians, counter-clockwise) and an elevation.
type Transform struct {
	Origin    vec.Vec2
	Rotation  float64
	Elevation float64
}

// Matrix returns the plan part of the transform as an affine matrix,
// mapping local plan coordinates to world plan coordinates.
func (t Transform) Matrix() matrix.Matrix {
	c, s := math.Cos(t.Rotation), math.Sin(t.Rotation)
	return matrix.Matrix{c, s, -s, c, t.Origin.X, t.Origin.Y}
}

// Apply maps a point from local to world plan coordinates.
func (t Transform) Apply(p vec.Vec2) vec.Vec2 {
	m := t.Matrix()
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// SolidDescriptor describes the geometry of an element as a vertical
// extrusion of a plan profile. The same descriptor is written to the
// schema record and to the mesh store.
type SolidDescriptor struct {
	Kind      Kind
	Placement Transform

	// Profile is the outline of the solid in world plan coordinates,
	// in counter-clockwise order.
	Profile []vec.Vec2

	// Base is the elevation of the bottom face, Height the extrusion
	// height.
	Base   float64
	Height float64

	// Area is the area of the profile, Volume the volume of the solid.
	Area   float64
	Volume float64
}

// Extrusion builds the descriptor of the solid obtained by extruding
// profile from base to base+height. The profile is copied.
func Extrusion(kind Kind, placement Transform, profile []vec.Vec2, base, height float64) SolidDescriptor {
	area := plan.PolygonArea(profile)
	return SolidDescriptor{
		Kind:      kind,
		Placement: placement,
		Profile:   slices.Clone(profile),
		Base:      base,
		Height:    height,
		Area:      area,
		Volume:    area * height,
	}
}

// Top returns the elevation of the top face.
func (s SolidDescriptor) Top() float64 {
	return s.Base + s.Height
}

// Equal reports whether s and other describe exactly the same solid.
func (s SolidDescriptor) Equal(other SolidDescriptor) bool {
	return s.Kind == other.Kind &&
		s.Placement == other.Placement &&
		slices.Equal(s.Profile, other.Profile) &&
		s.Base == other.Base &&
		s.Height == other.Height &&
		s.Area == other.Area &&
		s.Volume == other.Volume
}

// Validate checks that s describes a solid: a profile of at least three
// finite vertices, a finite base and a positive, finite height.
func (s SolidDescriptor) Validate() error {
	if len(s.Profile) < 3 {
		return fmt.Errorf("%w: profile with %d vertices", ErrDegenerateGeometry, len(s.Profile))
	}
	for _, p := range s.Profile {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("%w: profile vertex %v", ErrDegenerateGeometry, p)
		}
	}
	if !isFinite(s.Base) {
		return fmt.Errorf("%w: base %g", ErrDegenerateGeometry, s.Base)
	}
	if !(s.Height > 0) || !isFinite(s.Height) {
		return fmt.Errorf("%w: height %g", ErrDegenerateGeometry, s.Height)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
