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
	"maps"
	"regexp"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/bim"
	"seehuhn.de/go/bim/mesh"
	"seehuhn.de/go/bim/model"
	"seehuhn.de/go/bim/plan"
	"seehuhn.de/go/bim/scene"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func build(t *testing.T, s scene.Scene) (*scene.Built, *mesh.Store) {
	t.Helper()
	store := mesh.NewStore()
	env := &bim.Env{Model: model.NewMemory(), Meshes: store, IDs: &bim.SequentialIDs{Prefix: "e"}}
	res, err := s.Build(env, zerolog.Nop())
	require.NoError(t, err)
	return res, store
}

func TestAllScenes(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, s := range All[category] {
			name := category + "_" + s.Name
			t.Run(name, func(t *testing.T) {
				assert.Regexp(t, validName, s.Name)
				assert.False(t, seen[name], "duplicate scene name")
				seen[name] = true

				res, store := build(t, s)
				items := 0
				if s.Furniture != nil {
					items = len(s.Furniture.Items)
				}
				assert.Equal(t, len(s.Walls)+items, store.Len())

				for _, w := range res.Walls.Walls() {
					require.True(t, w.HasFootprint())
					tr := w.Trimmed()
					assert.Greater(t, plan.SignedArea(tr[:]), 0.0, "wall %s", w.ID())
				}
			})
		}
	}
}

func TestOrderScenesDiffer(t *testing.T) {
	a, _ := build(t, orderCases[0])
	b, _ := build(t, orderCases[1])
	assert.NotEqual(t, a.ByName["c"].Trimmed(), b.ByName["c"].Trimmed())
	assert.Equal(t, a.ByName["up"].Trimmed(), b.ByName["up"].Trimmed())
	assert.Equal(t, a.ByName["down"].Trimmed(), b.ByName["down"].Trimmed())
}

func TestOffsetScene(t *testing.T) {
	var s scene.Scene
	for _, c := range cornerCases {
		if c.Name == "offset" {
			s = c
		}
	}
	res, _ := build(t, s)

	// both walls lie on the left of their centerlines, so the outer faces
	// run along the centerlines and meet at (2, 0)
	a, b := res.ByName["a"].Trimmed(), res.ByName["b"].Trimmed()
	want := [2]float64{2, 0}
	assert.InDelta(t, want[0], a[1].X, 1e-9)
	assert.InDelta(t, want[1], a[1].Y, 1e-9)
	assert.Equal(t, a[1], b[0])
	assert.InDelta(t, 1.8, a[2].X, 1e-9)
	assert.InDelta(t, 0.2, a[2].Y, 1e-9)
	assert.Equal(t, a[2], b[3])
}
