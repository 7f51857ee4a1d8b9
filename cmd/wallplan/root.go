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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"seehuhn.de/go/bim"
	"seehuhn.de/go/bim/mesh"
	"seehuhn.de/go/bim/model"
	"seehuhn.de/go/bim/scene"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel string
	DB       string // SQLite file for the schema records, empty for memory
	UUID     bool   // random element IDs instead of sequential ones
}

// NewRootCommand creates the root command of the wallplan CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "wallplan",
		Short: "Resolve wall corners and draw plans",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := zerolog.ParseLevel(opts.LogLevel); err != nil {
				return fmt.Errorf("invalid log level %q", opts.LogLevel)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "store schema records in this SQLite file")
	cmd.PersistentFlags().BoolVar(&opts.UUID, "uuid", false, "use random UUIDs as element IDs")

	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))

	return cmd
}

// session holds the collaborators for building one scene.
type session struct {
	env    *bim.Env
	meshes *mesh.Store
	logger zerolog.Logger
	close  func() error
}

func newSession(opts *RootOptions, logOut io.Writer) (*session, error) {
	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := zerolog.New(logOut).With().Timestamp().Logger().Level(level)

	s := &session{
		meshes: mesh.NewStore(),
		logger: logger,
		close:  func() error { return nil },
	}
	var m bim.Model
	if opts.DB != "" {
		db, err := model.OpenSQLite(opts.DB)
		if err != nil {
			return nil, err
		}
		m = db
		s.close = db.Close
		logger.Debug().Str("path", opts.DB).Msg("opened schema database")
	} else {
		m = model.NewMemory()
	}

	var ids bim.IDSource = &bim.SequentialIDs{Prefix: "e"}
	if opts.UUID {
		ids = bim.UUIDSource{}
	}
	s.env = &bim.Env{Model: m, Meshes: s.meshes, IDs: ids}
	return s, nil
}

// loadScene reads and builds the scene in fname. Failures of single
// elements are logged and returned together with the built scene.
func (s *session) loadScene(fname string) (*scene.Scene, *scene.Built, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sc, err := scene.Load(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", fname, err)
	}
	built, err := sc.Build(s.env, s.logger)
	var be *bim.BatchError
	if errors.As(err, &be) {
		for _, e := range be.Errs {
			s.logger.Error().Err(e).Str("scene", sc.Name).Msg("element failed")
		}
	} else if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", fname, err)
	}
	return sc, built, err
}
