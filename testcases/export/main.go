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

// Command export writes the test scenes, together with the resolved wall
// footprints, to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/bim"
	"seehuhn.de/go/bim/mesh"
	"seehuhn.de/go/bim/model"
	"seehuhn.de/go/bim/scene"
	"seehuhn.de/go/bim/testcases"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			js, err := toJSON(category, s)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, s.Name, err))
			}
			out.Scenes = append(out.Scenes, js)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name   string      `json:"name"`
	Input  scene.Scene `json:"input"`
	Result []jsonWall  `json:"result"`
}

type jsonWall struct {
	Name    string        `json:"name"`
	Base    []jsonSegment `json:"base"`
	Trimmed []jsonSegment `json:"trimmed"`
	Area    float64       `json:"area"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, s scene.Scene) (jsonScene, error) {
	env := &bim.Env{
		Model:  model.NewMemory(),
		Meshes: mesh.NewStore(),
		IDs:    &bim.SequentialIDs{Prefix: "e"},
	}
	res, err := s.Build(env, zerolog.Nop())
	if err != nil {
		return jsonScene{}, err
	}

	js := jsonScene{
		Name:  category + "_" + s.Name,
		Input: s,
	}
	for _, ws := range s.Walls {
		w := res.ByName[ws.Name]
		base, trimmed := w.Base(), w.Trimmed()
		js.Result = append(js.Result, jsonWall{
			Name:    ws.Name,
			Base:    pathToJSON(base.Path().Iter()),
			Trimmed: pathToJSON(trimmed.Path().Iter()),
			Area:    trimmed.Area(),
		})
	}
	return js, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
