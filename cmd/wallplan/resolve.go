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

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim/scene"
)

// ResolveOptions holds the flags of the resolve command.
type ResolveOptions struct {
	Format string // "text" | "json"
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <scene.yaml>",
		Short: "Resolve the corners of a scene and list the wall footprints",
		Long: `Build the walls of a scene, resolve their corners and print the
untrimmed and trimmed footprint of every wall.

Walls and corners which cannot be resolved are reported on stderr and
make the command fail after the listing has been written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	return cmd
}

func runResolve(rootOpts *RootOptions, opts *ResolveOptions, fname string, cmd *cobra.Command) error {
	if opts.Format != "text" && opts.Format != "json" {
		return fmt.Errorf("invalid format %q: must be one of [text json]", opts.Format)
	}

	s, err := newSession(rootOpts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.close()

	sc, built, buildErr := s.loadScene(fname)
	if built == nil {
		return buildErr
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		err = writeJSON(out, sc, built)
	} else {
		err = built.Walls.WriteReport(out)
	}
	if err != nil {
		return err
	}
	return buildErr
}

type wallResult struct {
	Name      string      `json:"name"`
	ID        string      `json:"id"`
	Footprint bool        `json:"footprint"`
	Base      [4]vec.Vec2 `json:"base"`
	Trimmed   [4]vec.Vec2 `json:"trimmed"`
	Area      float64     `json:"area"`
}

func writeJSON(w io.Writer, sc *scene.Scene, built *scene.Built) error {
	res := struct {
		Scene string       `json:"scene"`
		Walls []wallResult `json:"walls"`
	}{
		Scene: sc.Name,
		Walls: []wallResult{},
	}
	for _, ws := range sc.Walls {
		wall := built.ByName[ws.Name]
		trimmed := wall.Trimmed()
		res.Walls = append(res.Walls, wallResult{
			Name:      ws.Name,
			ID:        string(wall.ID()),
			Footprint: wall.HasFootprint(),
			Base:      wall.Base(),
			Trimmed:   trimmed,
			Area:      trimmed.Area(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
