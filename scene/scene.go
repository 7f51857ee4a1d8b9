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

// Package scene describes arrangements of walls, corners and furniture in
// a form which can be read from YAML files and built into elements.
package scene

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim"
	"seehuhn.de/go/bim/furniture"
	"seehuhn.de/go/bim/plan"
	"seehuhn.de/go/bim/wall"
)

// Scene is a set of walls of one type, the corners between them and
// optionally some furniture.
type Scene struct {
	Name      string     `yaml:"name" json:"name"`
	Thickness float64    `yaml:"thickness,omitempty" json:"thickness,omitempty"` // 0 selects the default
	Walls     []Wall     `yaml:"walls" json:"walls"`
	Corners   []Corner   `yaml:"corners,omitempty" json:"corners,omitempty"`
	Furniture *Furniture `yaml:"furniture,omitempty" json:"furniture,omitempty"`
}

// Wall describes one wall. Walls are referred to by name.
type Wall struct {
	Name      string     `yaml:"name" json:"name"`
	Start     [2]float64 `yaml:"start" json:"start"`
	End       [2]float64 `yaml:"end" json:"end"`
	Offset    float64    `yaml:"offset,omitempty" json:"offset,omitempty"`
	Elevation float64    `yaml:"elevation,omitempty" json:"elevation,omitempty"`
	Height    float64    `yaml:"height,omitempty" json:"height,omitempty"` // 0 selects the default
}

// Corner describes a joint between two named walls. The fields map to
// [wall.Joint]. Omitted sides decode as interior and an omitted priority
// as start, the zero values of [plan.Side] and [wall.End].
type Corner struct {
	First    string    `yaml:"first" json:"first"`
	Second   string    `yaml:"second" json:"second"`
	Side     plan.Side `yaml:"side" json:"side"`
	Cut      plan.Side `yaml:"cut" json:"cut"`
	Anchor   plan.Side `yaml:"anchor" json:"anchor"`
	Priority wall.End  `yaml:"priority" json:"priority"`
}

// Furniture describes a furniture type and its placed items.
type Furniture struct {
	Width  float64 `yaml:"width" json:"width"`
	Depth  float64 `yaml:"depth" json:"depth"`
	Height float64 `yaml:"height" json:"height"`
	Items  []Item  `yaml:"items" json:"items"`
}

// Item is a placed piece of furniture.
type Item struct {
	Position  [2]float64 `yaml:"position" json:"position"`
	Rotation  float64    `yaml:"rotation,omitempty" json:"rotation,omitempty"` // radians
	Elevation float64    `yaml:"elevation,omitempty" json:"elevation,omitempty"`
}

// Load reads a scene from YAML. Unknown fields are rejected.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode scene: empty document")
		}
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that wall names are unique and non-empty and that all
// corners refer to walls of the scene.
func (s *Scene) Validate() error {
	names := make(map[string]bool, len(s.Walls))
	for i, w := range s.Walls {
		if w.Name == "" {
			return fmt.Errorf("%w: wall %d has no name", bim.ErrInvalidParameter, i)
		}
		if names[w.Name] {
			return fmt.Errorf("%w: duplicate wall name %q", bim.ErrInvalidParameter, w.Name)
		}
		names[w.Name] = true
	}
	for i, c := range s.Corners {
		for _, name := range []string{c.First, c.Second} {
			if !names[name] {
				return fmt.Errorf("%w: corner %d refers to unknown wall %q", bim.ErrInvalidParameter, i, name)
			}
		}
	}
	return nil
}

// Built holds the elements created from a scene.
type Built struct {
	Walls     *wall.Type
	Furniture *furniture.Type // nil if the scene has no furniture
	ByName    map[string]*wall.Wall
}

// Build creates the elements of the scene in env, updates them and
// resolves the corners.
//
// Failures of individual walls, furniture or corners do not stop the
// build: they are returned as a [*bim.BatchError] together with the
// elements. Other errors are returned with a nil result.
func (s *Scene) Build(env *bim.Env, logger zerolog.Logger) (*Built, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	typ := wall.NewType(env)
	typ.Logger = logger
	if s.Thickness != 0 {
		typ.Thickness = s.Thickness
	}
	res := &Built{
		Walls:  typ,
		ByName: make(map[string]*wall.Wall, len(s.Walls)),
	}

	var errs []error
	for _, ws := range s.Walls {
		w, err := typ.AddInstance()
		if err != nil {
			return nil, fmt.Errorf("wall %q: %w", ws.Name, err)
		}
		w.Start = point(ws.Start)
		w.End = point(ws.End)
		w.Offset = ws.Offset
		w.Elevation = ws.Elevation
		if ws.Height != 0 {
			w.Height = ws.Height
		}
		if err := w.Update(); err != nil {
			errs = append(errs, fmt.Errorf("wall %q: %w", ws.Name, err))
		}
		res.ByName[ws.Name] = w
	}

	for i, c := range s.Corners {
		err := typ.AddCorner(wall.Joint{
			First:       res.ByName[c.First].Ref(),
			Second:      res.ByName[c.Second].Ref(),
			Side:        c.Side,
			CutSide:     c.Cut,
			CutAnchor:   c.Anchor,
			PriorityEnd: c.Priority,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("corner %d: %w", i, err))
		}
	}
	if err := typ.UpdateCorners(); err != nil {
		var be *bim.BatchError
		if errors.As(err, &be) {
			errs = append(errs, be.Errs...)
		} else {
			errs = append(errs, err)
		}
	}

	if fs := s.Furniture; fs != nil {
		ft := furniture.NewType(env)
		ft.Width, ft.Depth, ft.Height = fs.Width, fs.Depth, fs.Height
		for i, item := range fs.Items {
			f, err := ft.AddInstance()
			if err != nil {
				return nil, fmt.Errorf("furniture %d: %w", i, err)
			}
			f.Position = point(item.Position)
			f.Rotation = item.Rotation
			f.Elevation = item.Elevation
			if err := f.Update(); err != nil {
				errs = append(errs, fmt.Errorf("furniture %d: %w", i, err))
			}
		}
		res.Furniture = ft
	}

	logger.Debug().
		Str("scene", s.Name).
		Int("walls", len(s.Walls)).
		Int("corners", len(s.Corners)).
		Int("failures", len(errs)).
		Msg("scene built")
	return res, bim.Batch(errs)
}

func point(p [2]float64) vec.Vec2 {
	return vec.Vec2{X: p[0], Y: p[1]}
}
