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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func near(a, b vec.Vec2) bool {
	return a.Sub(b).Length() < 1e-9
}

func TestIntersect(t *testing.T) {
	cases := []struct {
		name   string
		l1, l2 Line
		want   vec.Vec2
		ok     bool
	}{
		{"axes", LineThrough(pt(-1, 0), pt(1, 0)), LineThrough(pt(0, -1), pt(0, 1)), pt(0, 0), true},
		{"offset", LineThrough(pt(0, 2), pt(5, 2)), LineThrough(pt(3, 0), pt(3, 1)), pt(3, 2), true},
		{"diagonal", LineThrough(pt(0, 0), pt(1, 1)), LineThrough(pt(2, 0), pt(1, 1)), pt(1, 1), true},
		{"unnormalised", Line{P: pt(0, 0), D: pt(1000, 0)}, Line{P: pt(4, 4), D: pt(0, -0.001)}, pt(4, 0), true},
		{"parallel", LineThrough(pt(0, 0), pt(1, 0)), LineThrough(pt(0, 1), pt(1, 1)), vec.Vec2{}, false},
		{"collinear", LineThrough(pt(0, 0), pt(1, 0)), LineThrough(pt(2, 0), pt(3, 0)), vec.Vec2{}, false},
		{"antiparallel", LineThrough(pt(0, 0), pt(1, 0)), LineThrough(pt(3, 0), pt(2, 0)), vec.Vec2{}, false},
		{"degenerate", Line{P: pt(0, 0)}, LineThrough(pt(0, 0), pt(0, 1)), vec.Vec2{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Intersect(c.l1, c.l2)
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if ok && !near(got, c.want) {
				t.Errorf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestIntersectSymmetric(t *testing.T) {
	l1 := LineThrough(pt(0.3, -2), pt(1.7, 4))
	l2 := LineThrough(pt(-3, 1), pt(5, 0.25))
	a, ok1 := Intersect(l1, l2)
	b, ok2 := Intersect(l2, l1)
	if !ok1 || !ok2 {
		t.Fatal("unexpected parallel result")
	}
	if !near(a, b) {
		t.Errorf("%v != %v", a, b)
	}
	if d := DistanceToLine(a, l1); d > 1e-9 {
		t.Errorf("point is %g away from l1", d)
	}
	if d := DistanceToLine(a, l2); d > 1e-9 {
		t.Errorf("point is %g away from l2", d)
	}
}

func TestOffsetLine(t *testing.T) {
	a, b := pt(0, 0), pt(2, 0)

	in := OffsetLine(a, b, 0.5, Interior)
	if !near(in.P, pt(0, 0.5)) {
		t.Errorf("interior offset starts at %v", in.P)
	}
	ex := OffsetLine(a, b, 0.5, Exterior)
	if !near(ex.P, pt(0, -0.5)) {
		t.Errorf("exterior offset starts at %v", ex.P)
	}
	if math.Abs(Cross(in.D, b.Sub(a))) > 0 {
		t.Error("offset line is not parallel to the segment")
	}

	// reversing the segment swaps the sides
	rev := OffsetLine(b, a, 0.5, Interior)
	if d := DistanceToLine(pt(1, -0.5), rev); d > 1e-12 {
		t.Errorf("reversed interior line misses (1,-0.5) by %g", d)
	}
}

func TestProject(t *testing.T) {
	l := LineThrough(pt(1, 1), pt(3, 3))
	got := Project(pt(3, 1), l)
	if !near(got, pt(2, 2)) {
		t.Errorf("got %v", got)
	}
}

func TestSideText(t *testing.T) {
	for _, s := range []Side{Interior, Exterior} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Side
		if err := back.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if back != s {
			t.Errorf("%v round-tripped to %v", s, back)
		}
		if s.Opposite().Opposite() != s {
			t.Errorf("Opposite is not an involution for %v", s)
		}
	}
	if _, err := ParseSide("left"); err == nil {
		t.Error("expected an error for an unknown side")
	}
}
