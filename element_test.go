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

package bim_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim"
	"seehuhn.de/go/bim/mesh"
	"seehuhn.de/go/bim/model"
)

func newEnv() (*bim.Env, *model.Memory, *mesh.Store) {
	m := model.NewMemory()
	s := mesh.NewStore()
	return &bim.Env{Model: m, Meshes: s, IDs: &bim.SequentialIDs{Prefix: "e"}}, m, s
}

func square(size float64) []vec.Vec2 {
	return []vec.Vec2{{X: 0, Y: 0}, {X: size, Y: 0}, {X: size, Y: size}, {X: 0, Y: size}}
}

func TestNewElement(t *testing.T) {
	env, m, _ := newEnv()

	a, err := bim.NewElement(env, bim.KindWall)
	require.NoError(t, err)
	b, err := bim.NewElement(env, bim.KindFurniture)
	require.NoError(t, err)

	assert.Equal(t, bim.ID("e1"), a.ID())
	assert.Equal(t, bim.ID("e2"), b.ID())
	assert.Equal(t, bim.KindFurniture, b.Kind())
	assert.NotEqual(t, a.Handle(), b.Handle())
	assert.Empty(t, a.Meshes())
	assert.Equal(t, 2, m.Len())
}

func TestNewElementEnv(t *testing.T) {
	_, err := bim.NewElement(nil, bim.KindWall)
	assert.ErrorIs(t, err, bim.ErrInvalidParameter)

	_, err = bim.NewElement(&bim.Env{Model: model.NewMemory()}, bim.KindWall)
	assert.ErrorIs(t, err, bim.ErrInvalidParameter)

	env, _, _ := newEnv()
	_, err = bim.NewElement(env, "")
	assert.ErrorIs(t, err, bim.ErrInvalidParameter)
}

func TestPush(t *testing.T) {
	env, m, s := newEnv()
	e, err := bim.NewElement(env, bim.KindWall)
	require.NoError(t, err)

	solid := bim.Extrusion(bim.KindWall, bim.Transform{}, square(2), 0, 3)
	require.NoError(t, e.Push(solid))
	require.Len(t, e.Meshes(), 1)

	rec, err := m.Record(e.Handle())
	require.NoError(t, err)
	assert.True(t, rec.Solid.Equal(solid))

	msh, ok := s.Mesh(e.Meshes()[0])
	require.True(t, ok)
	assert.Equal(t, e.ID(), msh.Element)

	// a second push reuses the handles
	before := e.Meshes()
	require.NoError(t, e.Push(bim.Extrusion(bim.KindWall, bim.Transform{}, square(1), 0, 3)))
	assert.Equal(t, before, e.Meshes())
}

func TestPushFailureKeepsMeshes(t *testing.T) {
	env, m, _ := newEnv()
	e, err := bim.NewElement(env, bim.KindWall)
	require.NoError(t, err)
	good := bim.Extrusion(bim.KindWall, bim.Transform{}, square(1), 0, 3)
	require.NoError(t, e.Push(good))
	before := e.Meshes()
	defer func() {
		rec, err := m.Record(e.Handle())
		require.NoError(t, err)
		assert.True(t, rec.Solid.Equal(good))
		assert.Equal(t, 1, rec.Revision)
	}()

	err = e.Push(bim.Extrusion(bim.KindWall, bim.Transform{}, square(1)[:2], 0, 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, bim.ErrDegenerateGeometry)

	var ie *bim.InstanceError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, e.ID(), ie.ID)
	assert.Equal(t, before, e.Meshes())
}

// failingSink wraps a mesh sink and fails while fail is set.
type failingSink struct {
	bim.MeshSink
	fail bool
}

func (f *failingSink) UpsertMesh(id bim.ID, solid bim.SolidDescriptor) ([]bim.MeshHandle, error) {
	if f.fail {
		return nil, errors.New("mesh store unavailable")
	}
	return f.MeshSink.UpsertMesh(id, solid)
}

func TestPushRestoresRecord(t *testing.T) {
	env, m, s := newEnv()
	sink := &failingSink{MeshSink: s}
	env.Meshes = sink

	e, err := bim.NewElement(env, bim.KindWall)
	require.NoError(t, err)

	// nothing to restore before the first successful push
	sink.fail = true
	require.Error(t, e.Push(bim.Extrusion(bim.KindWall, bim.Transform{}, square(1), 0, 3)))
	assert.Empty(t, e.Meshes())

	sink.fail = false
	good := bim.Extrusion(bim.KindWall, bim.Transform{}, square(2), 0, 3)
	require.NoError(t, e.Push(good))
	before := e.Meshes()

	sink.fail = true
	err = e.Push(bim.Extrusion(bim.KindWall, bim.Transform{}, square(3), 0, 3))
	assert.ErrorContains(t, err, "mesh store unavailable")
	var ie *bim.InstanceError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, e.ID(), ie.ID)

	rec, err := m.Record(e.Handle())
	require.NoError(t, err)
	assert.True(t, rec.Solid.Equal(good))
	assert.Equal(t, before, e.Meshes())
	msh, ok := s.Mesh(before[0])
	require.True(t, ok)
	assert.True(t, msh.Solid.Equal(good))
}

func TestSolidValidate(t *testing.T) {
	ok := bim.Extrusion(bim.KindWall, bim.Transform{}, square(1), 0, 3)
	assert.NoError(t, ok.Validate())

	cases := map[string]bim.SolidDescriptor{
		"two vertices":  bim.Extrusion(bim.KindWall, bim.Transform{}, square(1)[:2], 0, 3),
		"NaN vertex":    bim.Extrusion(bim.KindWall, bim.Transform{}, append(square(1), vec.Vec2{X: math.NaN()}), 0, 3),
		"infinite base": bim.Extrusion(bim.KindWall, bim.Transform{}, square(1), math.Inf(-1), 3),
		"zero height":   bim.Extrusion(bim.KindWall, bim.Transform{}, square(1), 0, 0),
		"NaN height":    bim.Extrusion(bim.KindWall, bim.Transform{}, square(1), 0, math.NaN()),
	}
	for name, solid := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, solid.Validate(), bim.ErrDegenerateGeometry)
		})
	}
}

func TestTransform(t *testing.T) {
	tf := bim.Transform{Origin: vec.Vec2{X: 1, Y: 2}, Rotation: math.Pi / 2}
	p := tf.Apply(vec.Vec2{X: 1, Y: 0})
	assert.InDelta(t, 1, p.X, 1e-12)
	assert.InDelta(t, 3, p.Y, 1e-12)

	p = bim.Transform{}.Apply(vec.Vec2{X: 4, Y: 5})
	assert.Equal(t, vec.Vec2{X: 4, Y: 5}, p)
}

func TestExtrusion(t *testing.T) {
	profile := square(2)
	s := bim.Extrusion(bim.KindWall, bim.Transform{Elevation: 1}, profile, 1, 2.5)
	assert.InDelta(t, 4, s.Area, 1e-12)
	assert.InDelta(t, 10, s.Volume, 1e-12)
	assert.Equal(t, 3.5, s.Top())

	// the profile is copied
	profile[0] = vec.Vec2{X: -1, Y: -1}
	assert.Equal(t, vec.Vec2{}, s.Profile[0])
}

func TestBatchError(t *testing.T) {
	assert.NoError(t, bim.Batch(nil))

	errs := []error{
		&bim.InstanceError{ID: "a", Err: fmt.Errorf("update: %w", bim.ErrDegenerateGeometry)},
		fmt.Errorf("joint 1: %w", bim.ErrDanglingJoint),
	}
	err := bim.Batch(errs)
	require.Error(t, err)
	assert.ErrorIs(t, err, bim.ErrDegenerateGeometry)
	assert.ErrorIs(t, err, bim.ErrDanglingJoint)
	assert.NotErrorIs(t, err, bim.ErrNotMember)

	var be *bim.BatchError
	require.True(t, errors.As(err, &be))
	assert.Len(t, be.Errs, 2)

	var ie *bim.InstanceError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, bim.ID("a"), ie.ID)

	assert.Contains(t, err.Error(), "2 failures")
}

func TestIDSources(t *testing.T) {
	seq := &bim.SequentialIDs{Prefix: "w"}
	assert.Equal(t, bim.ID("w1"), seq.NewID())
	assert.Equal(t, bim.ID("w2"), seq.NewID())

	var src bim.UUIDSource
	a, b := src.NewID(), src.NewID()
	assert.Len(t, string(a), 36)
	assert.NotEqual(t, a, b)
}
