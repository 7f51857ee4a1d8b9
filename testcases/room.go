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

var roomCases = []scene.Scene{
	{
		Name:      "rectangle",
		Thickness: 0.25,
		Walls: []scene.Wall{
			w("south", pt(0, 0), pt(5, 0)),
			w("east", pt(5, 0), pt(5, 4)),
			w("north", pt(5, 4), pt(0, 4)),
			w("west", pt(0, 4), pt(0, 0)),
		},
		Corners: []scene.Corner{
			miter("south", "east", wall.AtEnd),
			miter("east", "north", wall.AtEnd),
			miter("north", "west", wall.AtEnd),
			miter("west", "south", wall.AtEnd),
		},
		Furniture: &scene.Furniture{
			Width:  1.6,
			Depth:  0.9,
			Height: 0.75,
			Items: []scene.Item{
				{Position: pt(2.5, 2)},
				{Position: pt(4, 3.2), Rotation: 0.5},
			},
		},
	},
	{
		Name: "u_shape",
		Walls: []scene.Wall{
			{Name: "left", Start: pt(0, 3), End: pt(0, 0), Height: 2.5},
			{Name: "bottom", Start: pt(0, 0), End: pt(3, 0), Height: 2.5},
			{Name: "right", Start: pt(3, 0), End: pt(3, 3), Height: 2.5, Elevation: 0.2},
		},
		Corners: []scene.Corner{
			miter("left", "bottom", wall.AtEnd),
			miter("bottom", "right", wall.AtEnd),
		},
	},
}
