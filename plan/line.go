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

// Package plan implements the plan-view geometry used by building elements:
// lines, perpendicular offsets, line intersection and quadrilateral
// footprints.
//
// Points are [vec.Vec2] values in plan coordinates. All functions are pure.
package plan

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	// ParallelTolerance is the threshold on the cross product of two unit
	// directions below which lines are treated as parallel.
	ParallelTolerance = 1e-9

	// ZeroLength is the length below which a segment has no direction.
	ZeroLength = 1e-10
)

// Point is a location in plan coordinates.
type Point = vec.Vec2

// Side names one of the two long edges of a linear element.
//
// For a segment on its own, Interior is the left-hand side of the direction
// of travel and Exterior the right-hand side.
type Side int

const (
	Interior Side = iota
	Exterior
)

func (s Side) String() string {
	switch s {
	case Interior:
		return "interior"
	case Exterior:
		return "exterior"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Interior {
		return Exterior
	}
	return Interior
}

// ParseSide converts "interior" or "exterior" to a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "interior":
		return Interior, nil
	case "exterior":
		return Exterior, nil
	}
	return 0, fmt.Errorf("invalid side %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Side) MarshalText() ([]byte, error) {
	if s != Interior && s != Exterior {
		return nil, fmt.Errorf("invalid side %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Side) UnmarshalText(text []byte) error {
	v, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Line is an infinite line through P with direction D.
// D need not be normalised but must be non-zero for a meaningful line.
type Line struct {
	P vec.Vec2
	D vec.Vec2
}

// LineThrough returns the line through a and b, directed from a to b.
func LineThrough(a, b vec.Vec2) Line {
	return Line{P: a, D: b.Sub(a)}
}

// At returns the point P + t*D.
func (l Line) At(t float64) vec.Vec2 {
	return l.P.Add(l.D.Mul(t))
}

// Cross returns the z component of the cross product a × b.
func Cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Unit returns v scaled to length 1, and false if v is too short or not
// finite.
func Unit(v vec.Vec2) (vec.Vec2, bool) {
	l := v.Length()
	if !(l >= ZeroLength) || math.IsInf(l, 0) {
		return vec.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// LeftNormal returns v rotated by 90° counter-clockwise.
func LeftNormal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

// OffsetLine returns the line parallel to the segment a→b, moved by
// distance towards the given side. Interior is the left-hand side of the
// direction a→b. If a and b coincide, the result has a zero direction.
func OffsetLine(a, b vec.Vec2, distance float64, side Side) Line {
	d := b.Sub(a)
	t, ok := Unit(d)
	if !ok {
		return Line{P: a}
	}
	n := LeftNormal(t)
	if side == Exterior {
		n = n.Mul(-1)
	}
	return Line{P: a.Add(n.Mul(distance)), D: d}
}

// Intersect returns the intersection point of l1 and l2.
// The second return value is false if the lines are parallel (or
// collinear), or if either line has no direction.
func Intersect(l1, l2 Line) (vec.Vec2, bool) {
	u1, ok1 := Unit(l1.D)
	u2, ok2 := Unit(l2.D)
	if !ok1 || !ok2 {
		return vec.Vec2{}, false
	}
	sinTheta := Cross(u1, u2)
	if math.Abs(sinTheta) < ParallelTolerance {
		return vec.Vec2{}, false
	}

	// Solve P1 + s*u1 = P2 + t*u2 for s.
	w := l2.P.Sub(l1.P)
	s := Cross(w, u2) / sinTheta
	return l1.P.Add(u1.Mul(s)), true
}

// Project returns the orthogonal projection of p onto l.
// If l has no direction, l.P is returned.
func Project(p vec.Vec2, l Line) vec.Vec2 {
	u, ok := Unit(l.D)
	if !ok {
		return l.P
	}
	return l.P.Add(u.Mul(p.Sub(l.P).Dot(u)))
}

// DistanceToLine returns the distance from p to the infinite line l.
func DistanceToLine(p vec.Vec2, l Line) float64 {
	u, ok := Unit(l.D)
	if !ok {
		return p.Sub(l.P).Length()
	}
	return math.Abs(Cross(u, p.Sub(l.P)))
}
