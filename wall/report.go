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

package wall

import (
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim/plan"
)

// WriteReport writes a plain text listing of the walls and corners of t.
// Coordinates are rounded to four decimal places.
func (t *Type) WriteReport(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "thickness %s\n", num(t.Thickness)); err != nil {
		return err
	}
	for _, wall := range t.Walls() {
		_, err := fmt.Fprintf(w, "wall %s %s -> %s offset %s elevation %s height %s\n",
			wall.ID(), point(wall.Start), point(wall.End),
			num(wall.Offset), num(wall.Elevation), num(wall.Height))
		if err != nil {
			return err
		}
		if !wall.HasFootprint() {
			if _, err := fmt.Fprintln(w, "  no footprint"); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "  base    %s\n", quad(wall.Base())); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  trimmed %s\n", quad(wall.Trimmed())); err != nil {
			return err
		}
	}
	for i, j := range t.Corners() {
		first, second := "?", "?"
		if a, ok := t.Wall(j.First); ok {
			first = string(a.ID())
		}
		if b, ok := t.Wall(j.Second); ok {
			second = string(b.ID())
		}
		_, err := fmt.Fprintf(w, "corner %d %s(%s) %s side %s cut %s anchor %s\n",
			i, first, j.PriorityEnd, second, j.Side, j.CutSide, j.CutAnchor)
		if err != nil {
			return err
		}
	}
	return nil
}

func quad(q plan.Quad) string {
	return fmt.Sprintf("%s %s %s %s", point(q[0]), point(q[1]), point(q[2]), point(q[3]))
}

func point(p vec.Vec2) string {
	return "(" + num(p.X) + ", " + num(p.Y) + ")"
}

func num(x float64) string {
	x = math.Round(x*1e4) / 1e4
	if x == 0 {
		x = 0 // avoid "-0"
	}
	return fmt.Sprintf("%.4f", x)
}
