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

// Package testcases contains named wall arrangements used by tests and by
// the export and genpdf commands.
package testcases

import (
	"seehuhn.de/go/bim/plan"
	"seehuhn.de/go/bim/scene"
	"seehuhn.de/go/bim/wall"
)

// pt is a helper to create a point from x, y coordinates.
func pt(x, y float64) [2]float64 {
	return [2]float64{x, y}
}

// w is a helper to create a wall with default parameters.
func w(name string, start, end [2]float64) scene.Wall {
	return scene.Wall{Name: name, Start: start, End: end}
}

// miter returns an exterior miter corner, joining first at end.
func miter(first, second string, end wall.End) scene.Corner {
	return scene.Corner{
		First:    first,
		Second:   second,
		Side:     plan.Exterior,
		Cut:      plan.Exterior,
		Anchor:   plan.Interior,
		Priority: end,
	}
}
