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
	"seehuhn.de/go/bim"
)

// UpdateCorners re-resolves the corners affected by changes since the last
// call.
//
// Walls connected by corners form groups. Every group containing a wall
// which was updated, added to or removed from a corner since the last call
// is recomputed: the trimmed footprints of its walls are reset to the base
// footprints, the group's corners are resolved in registration order and
// the walls are written to the model and mesh store. The result is the
// same as resolving all corners of the type.
//
// Corners referring to removed walls, or to walls without a footprint, are
// skipped. Every skipped corner and every failed write is reported in the
// returned [*bim.BatchError], on every call; the remaining corners are
// resolved regardless.
func (t *Type) UpdateCorners() error {
	var errs []error

	groups := newUnionFind(len(t.slots))
	for _, j := range t.joints {
		a, okA := t.Wall(j.First)
		b, okB := t.Wall(j.Second)
		if okA && okB {
			groups.union(a.ref.index, b.ref.index)
		}
	}

	touched := make(map[int]bool)
	for idx := range t.dirty {
		touched[groups.find(idx)] = true
	}
	affected := make([]bool, len(t.slots))
	var walls []*Wall
	for idx, s := range t.slots {
		if s.w == nil || !touched[groups.find(idx)] {
			continue
		}
		affected[idx] = true
		if s.w.hasBase {
			s.w.trimmed = s.w.base
			walls = append(walls, s.w)
		}
	}

	var mitred, butted int
	for i, j := range t.joints {
		first, okA := t.Wall(j.First)
		second, okB := t.Wall(j.Second)
		var err error
		switch {
		case !okA || !okB:
			err = bim.ErrDanglingJoint
		case !first.hasBase || !second.hasBase:
			err = bim.ErrDegenerateGeometry
		case !affected[first.ref.index]:
			continue
		}
		if err != nil {
			jErr := &JointError{Index: i, Joint: j, Err: err}
			t.Logger.Warn().Int("joint", i).Err(err).Msg("skipping corner")
			errs = append(errs, jErr)
			continue
		}

		if resolve(j, first, second) {
			mitred++
		} else {
			butted++
		}
	}

	for _, w := range walls {
		if err := w.push(); err != nil {
			errs = append(errs, err)
		}
	}
	clear(t.dirty)

	t.Logger.Debug().
		Int("walls", len(walls)).
		Int("mitred", mitred).
		Int("butted", butted).
		Int("failed", len(errs)).
		Msg("corners resolved")
	return bim.Batch(errs)
}

// unionFind partitions the slot indices into groups of walls connected by
// corners.
type unionFind []int

func newUnionFind(n int) unionFind {
	u := make(unionFind, n)
	for i := range u {
		u[i] = i
	}
	return u
}

func (u unionFind) find(i int) int {
	for u[i] != i {
		u[i] = u[u[i]]
		i = u[i]
	}
	return i
}

func (u unionFind) union(i, j int) {
	ri, rj := u.find(i), u.find(j)
	if ri == rj {
		return
	}
	// the smaller index becomes the root
	if ri < rj {
		u[rj] = ri
	} else {
		u[ri] = rj
	}
}
