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

package model

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"seehuhn.de/go/bim"
)

//go:embed schema.sql
var schemaSQL string

// SQLite is a [bim.Model] which keeps its records in an SQLite database.
// Solids are stored as CBOR blobs.
//
// The database uses a single connection, so an SQLite value is safe for
// concurrent use.
type SQLite struct {
	db *sql.DB
}

var _ bim.Model = (*SQLite)(nil)

// OpenSQLite creates or opens the database at path and applies the schema.
// Opening an existing database is safe.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// SQLite allows a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Create implements [bim.Model].
func (s *SQLite) Create(kind bim.Kind) (bim.Handle, error) {
	if kind == "" {
		return 0, fmt.Errorf("%w: empty kind", bim.ErrInvalidParameter)
	}
	res, err := s.db.Exec(`INSERT INTO records (kind) VALUES (?)`, string(kind))
	if err != nil {
		return 0, fmt.Errorf("create record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create record: %w", err)
	}
	return bim.Handle(id), nil
}

// Write implements [bim.Model]. Writing the solid which is already stored
// leaves the record unchanged.
func (s *SQLite) Write(h bim.Handle, solid bim.SolidDescriptor) error {
	blob, err := encodeSolid(solid)
	if err != nil {
		return err
	}
	res, err := s.db.Exec(`
		UPDATE records
		SET solid = ?, revision = revision + 1
		WHERE handle = ? AND (solid IS NULL OR solid != ?)
	`, blob, int64(h), blob)
	if err != nil {
		return fmt.Errorf("write record %d: %w", h, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("write record %d: %w", h, err)
	}
	if n == 0 {
		// either unchanged or missing
		var exists bool
		err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM records WHERE handle = ?)`, int64(h)).Scan(&exists)
		if err != nil {
			return fmt.Errorf("write record %d: %w", h, err)
		}
		if !exists {
			return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
		}
	}
	return nil
}

// Record reads the record for h.
func (s *SQLite) Record(h bim.Handle) (Record, error) {
	var (
		kind     string
		blob     []byte
		revision int
	)
	err := s.db.QueryRow(`SELECT kind, solid, revision FROM records WHERE handle = ?`, int64(h)).
		Scan(&kind, &blob, &revision)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	} else if err != nil {
		return Record{}, fmt.Errorf("read record %d: %w", h, err)
	}

	rec := Record{
		Handle:   h,
		Kind:     bim.Kind(kind),
		Revision: revision,
	}
	if blob != nil {
		rec.Solid, err = decodeSolid(blob)
		if err != nil {
			return Record{}, fmt.Errorf("read record %d: %w", h, err)
		}
		rec.Written = true
	}
	return rec, nil
}

// Len returns the number of records.
func (s *SQLite) Len() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}
