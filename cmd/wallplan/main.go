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

// Command wallplan resolves the wall corners of a scene file and draws
// plans of the result.
//
// A scene is a YAML file like the following:
//
//	name: example
//	thickness: 0.2
//	walls:
//	  - {name: w1, start: [0, 0], end: [1, 0]}
//	  - {name: w2, start: [0, 0], end: [0, 1]}
//	corners:
//	  - {first: w1, second: w2, side: exterior, cut: exterior, anchor: interior, priority: start}
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wallplan:", err)
		os.Exit(1)
	}
}
