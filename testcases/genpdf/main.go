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

// Command genpdf draws every test scene as a PDF plan and a PNG preview.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim"
	"seehuhn.de/go/bim/drawing"
	"seehuhn.de/go/bim/mesh"
	"seehuhn.de/go/bim/model"
	"seehuhn.de/go/bim/scene"
	"seehuhn.de/go/bim/testcases"
)

const planDir = "testdata/plans"

func main() {
	if err := os.MkdirAll(planDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			name := category + "_" + s.Name
			if err := generate(s, filepath.Join(planDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(s scene.Scene, base string) error {
	store := mesh.NewStore()
	env := &bim.Env{
		Model:  model.NewMemory(),
		Meshes: store,
		IDs:    &bim.SequentialIDs{Prefix: "e"},
	}
	if _, err := s.Build(env, zerolog.Nop()); err != nil {
		return err
	}

	var profiles [][]vec.Vec2
	for _, solid := range store.Solids() {
		profiles = append(profiles, solid.Profile)
	}
	p := drawing.NewPlan(profiles)

	if err := p.WritePDF(base + ".pdf"); err != nil {
		return err
	}

	f, err := os.Create(base + ".png")
	if err != nil {
		return err
	}
	if err := p.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
