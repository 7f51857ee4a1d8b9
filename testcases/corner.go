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

package testcases

import (
	"seehuhn.de/go/bim/plan"
	"seehuhn.de/go/bim/scene"
	"seehuhn.de/go/bim/wall"
)

var cornerCases = []scene.Scene{
	{
		// two walls joined in both directions
		Name: "l_corner",
		Walls: []scene.Wall{
			w("w1", pt(0, 0), pt(1, 0)),
			w("w2", pt(0, 0), pt(0, 1)),
		},
		Corners: []scene.Corner{
			miter("w1", "w2", wall.AtStart),
			{
				First:    "w2",
				Second:   "w1",
				Side:     plan.Exterior,
				Cut:      plan.Exterior,
				Anchor:   plan.Exterior,
				Priority: wall.AtStart,
			},
		},
	},
	{
		Name:      "oblique",
		Thickness: 0.3,
		Walls: []scene.Wall{
			w("a", pt(0, 0), pt(2, 0)),
			w("b", pt(2, 0), pt(3, 1.7)),
		},
		Corners: []scene.Corner{
			miter("a", "b", wall.AtEnd),
		},
	},
	{
		Name: "acute",
		Walls: []scene.Wall{
			w("a", pt(0, 0), pt(2, 0)),
			w("b", pt(0, 0), pt(2, 0.8)),
		},
		Corners: []scene.Corner{
			miter("a", "b", wall.AtStart),
		},
	},
	{
		Name: "offset",
		Walls: []scene.Wall{
			{Name: "a", Start: pt(0, 0), End: pt(2, 0), Offset: 1},
			{Name: "b", Start: pt(2, 0), End: pt(2, 2), Offset: 1},
		},
		Corners: []scene.Corner{
			miter("a", "b", wall.AtEnd),
		},
	},
	{
		// the first wall stops at the inner face of the second
		Name: "anchor_exterior",
		Walls: []scene.Wall{
			w("a", pt(0, 0), pt(1, 0)),
			w("b", pt(0, 0), pt(0, 1)),
		},
		Corners: []scene.Corner{{
			First:    "a",
			Second:   "b",
			Side:     plan.Interior,
			Cut:      plan.Exterior,
			Anchor:   plan.Exterior,
			Priority: wall.AtStart,
		}},
	},
	{
		// the second wall stops at the inner face of the first
		Name: "anchor_interior",
		Walls: []scene.Wall{
			w("a", pt(0, 0), pt(1, 0)),
			w("b", pt(0, 0), pt(0, 1)),
		},
		Corners: []scene.Corner{{
			First:    "a",
			Second:   "b",
			Side:     plan.Interior,
			Cut:      plan.Exterior,
			Anchor:   plan.Interior,
			Priority: wall.AtStart,
		}},
	},
	{
		// the second wall runs to the outer face of the first, which is
		// cut back to the inner face of the second
		Name: "outer_face",
		Walls: []scene.Wall{
			w("a", pt(0, 0), pt(1.5, 0)),
			w("b", pt(0, 0), pt(0.4, 1.2)),
		},
		Corners: []scene.Corner{{
			First:    "a",
			Second:   "b",
			Side:     plan.Exterior,
			Cut:      plan.Interior,
			Anchor:   plan.Exterior,
			Priority: wall.AtStart,
		}},
	},
}
