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
	"seehuhn.de/go/bim/scene"
	"seehuhn.de/go/bim/wall"
)

var collinearCases = []scene.Scene{
	{
		Name: "continuing",
		Walls: []scene.Wall{
			w("a", pt(0, 0), pt(1, 0)),
			w("b", pt(1, 0), pt(3, 0)),
		},
		Corners: []scene.Corner{miter("a", "b", wall.AtEnd)},
	},
	{
		Name: "reversed",
		Walls: []scene.Wall{
			w("a", pt(0, 0), pt(1, 0)),
			w("b", pt(3, 0), pt(1, 0)),
		},
		Corners: []scene.Corner{miter("a", "b", wall.AtEnd)},
	},
	{
		// the butt join closes the gap
		Name: "gap",
		Walls: []scene.Wall{
			w("a", pt(0, 0), pt(1, 0)),
			w("b", pt(1.5, 0), pt(3, 0)),
		},
		Corners: []scene.Corner{miter("a", "b", wall.AtEnd)},
	},
	{
		Name: "diagonal",
		Walls: []scene.Wall{
			w("a", pt(0, 0), pt(1, 1)),
			w("b", pt(1, 1), pt(2.5, 2.5)),
		},
		Corners: []scene.Corner{miter("a", "b", wall.AtEnd)},
	},
}
