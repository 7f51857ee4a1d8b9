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

	"github.com/rs/zerolog"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim"
)

// Type is a family of walls sharing a thickness, together with the corners
// registered between them.
type Type struct {
	// Thickness is the thickness of all walls of this type. Must be
	// positive. After changing it, call [Type.Update].
	Thickness float64

	// Logger receives warnings about skipped corners and debug output
	// from corner resolution.
	Logger zerolog.Logger

	env    *bim.Env
	slots  []slot
	free   []int // indices of empty slots
	joints []Joint
	dirty  map[int]bool // slot indices
}

type slot struct {
	w   *Wall // nil for a removed wall
	gen uint32
}

// NewType returns a wall type with thickness 0.2 which creates its walls
// in env.
func NewType(env *bim.Env) *Type {
	return &Type{
		Thickness: 0.2,
		Logger:    zerolog.Nop(),
		env:       env,
		dirty:     make(map[int]bool),
	}
}

// AddInstance creates a new wall from (0,0) to (1,0) with height 3.
// The wall has no footprint until [Wall.Update] is called.
func (t *Type) AddInstance() (*Wall, error) {
	elem, err := bim.NewElement(t.env, bim.KindWall)
	if err != nil {
		return nil, err
	}

	var idx int
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = len(t.slots)
		t.slots = append(t.slots, slot{})
	}
	s := &t.slots[idx]
	s.gen++

	w := &Wall{
		Element: elem,
		Start:   vec.Vec2{},
		End:     vec.Vec2{X: 1},
		Height:  3,
		typ:     t,
		ref:     Ref{index: idx, gen: s.gen},
	}
	s.w = w
	return w, nil
}

// Wall returns the wall referred to by ref, and false if the wall has been
// removed or never belonged to this type.
func (t *Type) Wall(ref Ref) (*Wall, bool) {
	if ref.IsZero() || ref.index < 0 || ref.index >= len(t.slots) {
		return nil, false
	}
	s := t.slots[ref.index]
	if s.w == nil || s.gen != ref.gen {
		return nil, false
	}
	return s.w, true
}

// Walls returns the walls of this type.
func (t *Type) Walls() []*Wall {
	var res []*Wall
	for _, s := range t.slots {
		if s.w != nil {
			res = append(res, s.w)
		}
	}
	return res
}

// RemoveInstance removes a wall from the type. Corners referring to the
// wall are kept and reported as dangling by [Type.UpdateCorners], and the
// walls which shared a corner with it are re-resolved.
func (t *Type) RemoveInstance(ref Ref) error {
	w, ok := t.Wall(ref)
	if !ok {
		return fmt.Errorf("remove wall %s: %w", ref, bim.ErrNotMember)
	}
	for _, j := range t.joints {
		switch ref {
		case j.First:
			t.markDirty(j.Second)
		case j.Second:
			t.markDirty(j.First)
		}
	}
	if r, ok := t.env.Meshes.(interface{ Remove(bim.ID) }); ok {
		r.Remove(w.ID())
	}

	delete(t.dirty, ref.index)
	t.slots[ref.index].w = nil
	t.free = append(t.free, ref.index)
	w.typ = nil
	return nil
}

// AddCorner registers a corner between two distinct walls of this type.
// The corner takes effect at the next call to [Type.UpdateCorners].
func (t *Type) AddCorner(j Joint) error {
	if _, ok := t.Wall(j.First); !ok {
		return fmt.Errorf("add corner: first wall %s: %w", j.First, bim.ErrNotMember)
	}
	if _, ok := t.Wall(j.Second); !ok {
		return fmt.Errorf("add corner: second wall %s: %w", j.Second, bim.ErrNotMember)
	}
	if j.First == j.Second {
		return fmt.Errorf("%w: corner joins wall %s to itself", bim.ErrInvalidParameter, j.First)
	}
	if j.PriorityEnd != AtStart && j.PriorityEnd != AtEnd {
		return fmt.Errorf("%w: %s", bim.ErrInvalidParameter, j.PriorityEnd)
	}
	t.joints = append(t.joints, j)
	t.markDirty(j.First)
	t.markDirty(j.Second)
	return nil
}

// Corners returns the registered corners in registration order.
func (t *Type) Corners() []Joint {
	return append([]Joint(nil), t.joints...)
}

// ClearCorners removes all corners. The walls involved get their untrimmed
// footprints back at the next call to [Type.UpdateCorners].
func (t *Type) ClearCorners() {
	for _, j := range t.joints {
		t.markDirty(j.First)
		t.markDirty(j.Second)
	}
	t.joints = nil
}

// Update applies a change of the thickness. If propagate is set, all walls
// are updated and the failures are returned as a [*bim.BatchError].
// Otherwise the walls are only marked for corner resolution, and the
// caller is expected to update them.
//
// Corners are not re-resolved; call [Type.UpdateCorners] afterwards.
func (t *Type) Update(propagate bool) error {
	var errs []error
	for _, w := range t.Walls() {
		if !propagate {
			t.markDirty(w.ref)
			continue
		}
		if err := w.Update(); err != nil {
			errs = append(errs, err)
		}
	}
	return bim.Batch(errs)
}

// markDirty records that the corners of a wall need to be re-resolved.
// Stale references are ignored.
func (t *Type) markDirty(ref Ref) {
	if _, ok := t.Wall(ref); ok {
		t.dirty[ref.index] = true
	}
}
