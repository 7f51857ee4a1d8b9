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

package furniture

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim"
	"seehuhn.de/go/bim/mesh"
	"seehuhn.de/go/bim/model"
)

func newType() (*Type, *model.Memory) {
	m := model.NewMemory()
	env := &bim.Env{Model: m, Meshes: mesh.NewStore(), IDs: &bim.SequentialIDs{Prefix: "f"}}
	return NewType(env), m
}

func TestUpdate(t *testing.T) {
	typ, m := newType()
	typ.Width, typ.Depth, typ.Height = 2, 1, 0.8

	f, err := typ.AddInstance()
	require.NoError(t, err)
	assert.Equal(t, bim.KindFurniture, f.Kind())

	f.Position = vec.Vec2{X: 5, Y: 5}
	f.Rotation = math.Pi / 2
	f.Elevation = 0.1
	require.NoError(t, f.Update())

	want := [4]vec.Vec2{{X: 5.5, Y: 4}, {X: 5.5, Y: 6}, {X: 4.5, Y: 6}, {X: 4.5, Y: 4}}
	got := f.Footprint()
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-12, "vertex %d", i)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-12, "vertex %d", i)
	}

	rec, err := m.Record(f.Handle())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, rec.Solid.Area, 1e-12)
	assert.InDelta(t, 1.6, rec.Solid.Volume, 1e-12)
	assert.Equal(t, 0.1, rec.Solid.Base)
	assert.Len(t, f.Meshes(), 1)
}

func TestTypeUpdate(t *testing.T) {
	typ, _ := newType()
	a, err := typ.AddInstance()
	require.NoError(t, err)
	b, err := typ.AddInstance()
	require.NoError(t, err)
	b.Position = vec.Vec2{X: 3}
	require.NoError(t, typ.Update(true))

	typ.Width = 3
	require.NoError(t, typ.Update(false))
	assert.InDelta(t, -0.5, a.Footprint()[0].X, 1e-12)

	require.NoError(t, typ.Update(true))
	assert.InDelta(t, -1.5, a.Footprint()[0].X, 1e-12)
	assert.InDelta(t, 1.5, b.Footprint()[0].X, 1e-12)

	typ.Depth = 0
	err = typ.Update(true)
	var be *bim.BatchError
	require.ErrorAs(t, err, &be)
	assert.Len(t, be.Errs, 2)
	assert.ErrorIs(t, err, bim.ErrDegenerateGeometry)
	assert.InDelta(t, -1.5, a.Footprint()[0].X, 1e-12)
}

func TestRemoveInstance(t *testing.T) {
	typ, _ := newType()
	a, err := typ.AddInstance()
	require.NoError(t, err)
	b, err := typ.AddInstance()
	require.NoError(t, err)

	require.NoError(t, typ.RemoveInstance(a))
	assert.Equal(t, []*Furniture{b}, typ.Instances())
	assert.ErrorIs(t, typ.RemoveInstance(a), bim.ErrNotMember)
	assert.ErrorIs(t, a.Update(), bim.ErrNotMember)
}
