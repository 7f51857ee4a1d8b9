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

// Package model provides implementations of the schema record registry
// [bim.Model]: an in-memory registry and an SQLite-backed one.
//
// Both implementations keep a revision counter per record which only
// advances when a write changes the stored solid, so repeated writes of
// the same geometry are observable as no-ops.
package model

import (
	"errors"
	"fmt"
	"sync"

	"seehuhn.de/go/bim"
)

// ErrUnknownHandle is returned by Write and lookups for handles that were
// never created.
var ErrUnknownHandle = errors.New("unknown record handle")

// Record is a persisted schema record.
type Record struct {
	Handle   bim.Handle
	Kind     bim.Kind
	Solid    bim.SolidDescriptor
	Written  bool // false until the first Write
	Revision int  // number of writes which changed Solid
}

// Memory is an in-memory [bim.Model]. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	records []Record // records[h-1] has handle h
}

var _ bim.Model = (*Memory)(nil)

// NewMemory returns an empty registry.
func NewMemory() *Memory {
	return &Memory{}
}

// Create implements [bim.Model].
func (m *Memory) Create(kind bim.Kind) (bim.Handle, error) {
	if kind == "" {
		return 0, fmt.Errorf("%w: empty kind", bim.ErrInvalidParameter)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	h := bim.Handle(len(m.records) + 1)
	m.records = append(m.records, Record{Handle: h, Kind: kind})
	return h, nil
}

// Write implements [bim.Model].
func (m *Memory) Write(h bim.Handle, solid bim.SolidDescriptor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, err := m.lookup(h)
	if err != nil {
		return err
	}
	if rec.Written && rec.Solid.Equal(solid) {
		return nil
	}
	rec.Solid = solid
	rec.Solid.Profile = append(rec.Solid.Profile[:0:0], solid.Profile...)
	rec.Written = true
	rec.Revision++
	return nil
}

// Record returns a copy of the record for h.
func (m *Memory) Record(h bim.Handle) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, err := m.lookup(h)
	if err != nil {
		return Record{}, err
	}
	return *rec, nil
}

// Len returns the number of records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func (m *Memory) lookup(h bim.Handle) (*Record, error) {
	if h == 0 || int(h) > len(m.records) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return &m.records[h-1], nil
}
