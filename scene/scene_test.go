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

package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim"
	"seehuhn.de/go/bim/mesh"
	"seehuhn.de/go/bim/model"
	"seehuhn.de/go/bim/plan"
	"seehuhn.de/go/bim/wall"
)

func newEnv() (*bim.Env, *mesh.Store) {
	meshes := mesh.NewStore()
	return &bim.Env{
		Model:  model.NewMemory(),
		Meshes: meshes,
		IDs:    &bim.SequentialIDs{Prefix: "s"},
	}, meshes
}

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(`name: demo
thickness: 0.3
walls:
  - {name: a, start: [0, 0], end: [2, 0], offset: 0.5, height: 2.5}
  - {name: b, start: [0, 0], end: [0, 2]}
corners:
  - {first: a, second: b, side: interior, cut: exterior, anchor: exterior, priority: start}
furniture:
  width: 1
  depth: 0.5
  height: 0.8
  items:
    - {position: [1, 1], rotation: 0.5}
`))
	require.NoError(t, err)

	assert.Equal(t, "demo", s.Name)
	assert.Equal(t, 0.3, s.Thickness)
	require.Len(t, s.Walls, 2)
	assert.Equal(t, Wall{Name: "a", End: [2]float64{2, 0}, Offset: 0.5, Height: 2.5}, s.Walls[0])
	require.Len(t, s.Corners, 1)
	assert.Equal(t, Corner{
		First:    "a",
		Second:   "b",
		Side:     plan.Interior,
		Cut:      plan.Exterior,
		Anchor:   plan.Exterior,
		Priority: wall.AtStart,
	}, s.Corners[0])
	require.NotNil(t, s.Furniture)
	assert.Len(t, s.Furniture.Items, 1)
}

func TestLoadCornerDefaults(t *testing.T) {
	s, err := Load(strings.NewReader(`walls:
  - {name: a, end: [1, 0]}
  - {name: b, end: [0, 1]}
corners:
  - {first: a, second: b, cut: exterior}
`))
	require.NoError(t, err)
	require.Len(t, s.Corners, 1)
	assert.Equal(t, Corner{
		First:    "a",
		Second:   "b",
		Side:     plan.Interior,
		Cut:      plan.Exterior,
		Anchor:   plan.Interior,
		Priority: wall.AtStart,
	}, s.Corners[0])
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		invalid bool // wraps bim.ErrInvalidParameter
	}{
		{"empty", "", false},
		{"unknown field", "walls: []\nwidth: 3\n", false},
		{"bad side", "walls: [{name: a, end: [1, 0]}, {name: b, end: [0, 1]}]\n" +
			"corners: [{first: a, second: b, side: inside, cut: exterior, anchor: exterior, priority: start}]\n", false},
		{"bad end", "walls: [{name: a, end: [1, 0]}, {name: b, end: [0, 1]}]\n" +
			"corners: [{first: a, second: b, side: interior, cut: exterior, anchor: exterior, priority: middle}]\n", false},
		{"no name", "walls: [{start: [0, 0], end: [1, 0]}]\n", true},
		{"duplicate", "walls: [{name: a, end: [1, 0]}, {name: a, end: [0, 1]}]\n", true},
		{"unknown wall", "walls: [{name: a, end: [1, 0]}]\n" +
			"corners: [{first: a, second: z, side: interior, cut: exterior, anchor: exterior, priority: start}]\n", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := Load(strings.NewReader(c.doc))
			assert.Nil(t, s)
			require.Error(t, err)
			assert.Equal(t, c.invalid, errors.Is(err, bim.ErrInvalidParameter))
		})
	}
}

func TestBuild(t *testing.T) {
	s := &Scene{
		Name:      "l",
		Thickness: 0.4,
		Walls: []Wall{
			{Name: "a", End: [2]float64{1, 0}},
			{Name: "b", End: [2]float64{0, 1}, Height: 2},
		},
		Corners: []Corner{
			{First: "a", Second: "b", Side: plan.Exterior, Cut: plan.Exterior, Anchor: plan.Interior},
		},
		Furniture: &Furniture{
			Width: 0.5, Depth: 0.5, Height: 1,
			Items: []Item{{Position: [2]float64{0.5, 0.5}}, {Position: [2]float64{0.7, 0.7}}},
		},
	}
	env, meshes := newEnv()
	built, err := s.Build(env, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 0.4, built.Walls.Thickness)
	a, b := built.ByName["a"], built.ByName["b"]
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, 3.0, a.Height)
	assert.Equal(t, 2.0, b.Height)

	corner := vec.Vec2{X: -0.2, Y: -0.2}
	assert.InDelta(t, 0, a.Trimmed()[0].Sub(corner).Length(), 1e-12)
	assert.InDelta(t, 0, b.Trimmed()[3].Sub(corner).Length(), 1e-12)

	require.NotNil(t, built.Furniture)
	assert.Len(t, built.Furniture.Instances(), 2)
	assert.Equal(t, 4, meshes.Len())
}

func TestBuildPartialFailure(t *testing.T) {
	s := &Scene{
		Walls: []Wall{
			{Name: "a"}, // zero length
			{Name: "b", End: [2]float64{0, 1}},
		},
		Corners: []Corner{
			{First: "a", Second: "b"},
			{First: "b", Second: "b"},
		},
	}
	env, meshes := newEnv()
	built, err := s.Build(env, zerolog.Nop())
	require.NotNil(t, built)

	var be *bim.BatchError
	require.ErrorAs(t, err, &be)
	require.Len(t, be.Errs, 3)
	assert.ErrorIs(t, be.Errs[0], bim.ErrDegenerateGeometry)
	assert.ErrorIs(t, be.Errs[1], bim.ErrInvalidParameter)

	var je *wall.JointError
	require.ErrorAs(t, be.Errs[2], &je)
	assert.Equal(t, 0, je.Index)
	assert.ErrorIs(t, je, bim.ErrDegenerateGeometry)

	b := built.ByName["b"]
	assert.False(t, built.ByName["a"].HasFootprint())
	assert.True(t, b.HasFootprint())
	assert.Equal(t, b.Base(), b.Trimmed())
	assert.Equal(t, 1, meshes.Len())
	assert.Len(t, built.Walls.Corners(), 1)
}
