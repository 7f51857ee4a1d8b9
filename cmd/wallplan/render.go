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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim/drawing"
)

// RenderOptions holds the flags of the render command.
type RenderOptions struct {
	Format string // "pdf" | "png"
	Out    string
	Scale  float64
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render <scene.yaml>",
		Short: "Draw a plan of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "pdf", "output format (pdf|png)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output file (required)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 100, "points or pixels per plan unit")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runRender(rootOpts *RootOptions, opts *RenderOptions, fname string, cmd *cobra.Command) error {
	if opts.Format != "pdf" && opts.Format != "png" {
		return fmt.Errorf("invalid format %q: must be one of [pdf png]", opts.Format)
	}

	s, err := newSession(rootOpts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.close()

	_, built, buildErr := s.loadScene(fname)
	if built == nil {
		return buildErr
	}

	var profiles [][]vec.Vec2
	for _, solid := range s.meshes.Solids() {
		profiles = append(profiles, solid.Profile)
	}
	p := drawing.NewPlan(profiles)
	p.Scale = opts.Scale

	switch opts.Format {
	case "pdf":
		err = p.WritePDF(opts.Out)
	case "png":
		err = writePNG(p, opts.Out)
	}
	if err != nil {
		return err
	}
	s.logger.Info().Str("file", opts.Out).Int("elements", len(profiles)).Msg("plan written")
	return buildErr
}

func writePNG(p *drawing.Plan, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := p.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
