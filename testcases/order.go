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

// In a T junction two corners trim the same end of wall c. The corner
// registered last determines the result.
var orderCases = []scene.Scene{
	{
		Name: "up_then_down",
		Walls: []scene.Wall{
			w("c", pt(0, 0), pt(2, 0)),
			w("up", pt(0, 0), pt(0, 1)),
			w("down", pt(0, 0), pt(0, -1)),
		},
		Corners: []scene.Corner{
			miter("c", "up", wall.AtStart),
			miter("c", "down", wall.AtStart),
		},
	},
	{
		Name: "down_then_up",
		Walls: []scene.Wall{
			w("c", pt(0, 0), pt(2, 0)),
			w("up", pt(0, 0), pt(0, 1)),
			w("down", pt(0, 0), pt(0, -1)),
		},
		Corners: []scene.Corner{
			miter("c", "down", wall.AtStart),
			miter("c", "up", wall.AtStart),
		},
	},
}
