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

	"seehuhn.de/go/bim/plan"
)

// End selects one end of a wall's centerline.
type End int

const (
	AtStart End = iota
	AtEnd
)

func (e End) String() string {
	switch e {
	case AtStart:
		return "start"
	case AtEnd:
		return "end"
	default:
		return fmt.Sprintf("End(%d)", int(e))
	}
}

// ParseEnd converts "start" or "end" to an End.
func ParseEnd(s string) (End, error) {
	switch s {
	case "start":
		return AtStart, nil
	case "end":
		return AtEnd, nil
	}
	return 0, fmt.Errorf("invalid wall end %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (e End) MarshalText() ([]byte, error) {
	if e != AtStart && e != AtEnd {
		return nil, fmt.Errorf("invalid wall end %d", int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (e *End) UnmarshalText(text []byte) error {
	v, err := ParseEnd(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Joint describes a corner between two walls of the same type.
//
// The sides are relative to the corner: the long edge of a wall which faces
// the other wall is its interior edge, the edge facing away is its exterior
// edge.
type Joint struct {
	First  Ref
	Second Ref

	// If Side and CutSide agree, the walls are mitred: the edges on that
	// side meet in one point, and so do the edges on the other side.
	//
	// Otherwise one wall, the anchor wall, keeps its Side face and the
	// other wall stops at that face. The anchor wall in turn is cut by the
	// CutSide face of the other wall. CutAnchor selects the anchor wall:
	// First if CutAnchor equals Side, Second if it does not.
	Side      plan.Side
	CutSide   plan.Side
	CutAnchor plan.Side

	// PriorityEnd is the end of First which is joined. The joined end of
	// Second is the one nearest to it.
	PriorityEnd End
}

func (j Joint) String() string {
	return fmt.Sprintf("%s(%s)-%s side=%s cut=%s anchor=%s",
		j.First, j.PriorityEnd, j.Second, j.Side, j.CutSide, j.CutAnchor)
}

// JointError reports a joint which could not be resolved.
type JointError struct {
	Index int // position in registration order
	Joint Joint
	Err   error
}

func (e *JointError) Error() string {
	return fmt.Sprintf("joint %d (%s): %v", e.Index, e.Joint, e.Err)
}

func (e *JointError) Unwrap() error {
	return e.Err
}
