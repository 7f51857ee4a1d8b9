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

// Package bim implements the parametric element base shared by walls and
// furniture.
//
// An [Element] owns an identity, a handle to a persisted schema record and
// a list of renderable meshes. Concrete element types derive a
// [SolidDescriptor] from their parameters and hand it to [Element.Push],
// which replaces the schema record and the meshes in one step.
//
// The schema model, the mesh store and the id generator are collaborators
// supplied through an [Env]; see the model and mesh packages for
// implementations.
package bim

import (
	"errors"
	"fmt"
	"slices"
)

// ID identifies an element. IDs are assigned once and never reused.
type ID string

// Kind names the schema entity type of an element.
type Kind string

// The element kinds used in this module.
const (
	KindWall      Kind = "IfcWall"
	KindFurniture Kind = "IfcFurnishingElement"
)

// Handle refers to a persisted schema record.
type Handle uint64

// MeshHandle refers to a renderable mesh.
type MeshHandle uint64

// Model is the registry of persisted schema records.
type Model interface {
	// Create allocates a record of the given kind. The handle stays valid
	// for any number of subsequent writes.
	Create(kind Kind) (Handle, error)

	// Write replaces the geometric representation stored for h.
	Write(h Handle, solid SolidDescriptor) error
}

// MeshSink creates and updates renderable geometry.
type MeshSink interface {
	// UpsertMesh creates or updates the meshes of an element. The returned
	// handles remain valid until the next call for the same element.
	UpsertMesh(id ID, solid SolidDescriptor) ([]MeshHandle, error)
}

// IDSource generates element identities.
type IDSource interface {
	NewID() ID
}

// Env bundles the collaborators an element needs.
type Env struct {
	Model  Model
	Meshes MeshSink
	IDs    IDSource
}

// Check verifies that all collaborators are present.
func (env *Env) Check() error {
	switch {
	case env == nil:
		return fmt.Errorf("%w: nil environment", ErrInvalidParameter)
	case env.Model == nil:
		return fmt.Errorf("%w: environment has no model", ErrInvalidParameter)
	case env.Meshes == nil:
		return fmt.Errorf("%w: environment has no mesh sink", ErrInvalidParameter)
	case env.IDs == nil:
		return fmt.Errorf("%w: environment has no id source", ErrInvalidParameter)
	}
	return nil
}

// Element is the common part of all parametric elements.
//
// The mesh handles always correspond to the last solid passed to Push.
type Element struct {
	// Transform places the element in the plan. Element types set it
	// during their update.
	Transform Transform

	id     ID
	kind   Kind
	handle Handle
	meshes []MeshHandle
	pushed *SolidDescriptor // last solid written successfully
	env    *Env
}

// NewElement allocates an identity and a schema record for a new element.
func NewElement(env *Env, kind Kind) (Element, error) {
	if err := env.Check(); err != nil {
		return Element{}, err
	}
	h, err := env.Model.Create(kind)
	if err != nil {
		return Element{}, fmt.Errorf("create %s record: %w", kind, err)
	}
	return Element{
		id:     env.IDs.NewID(),
		kind:   kind,
		handle: h,
		env:    env,
	}, nil
}

// ID returns the identity of the element.
func (e *Element) ID() ID {
	return e.id
}

// Kind returns the schema kind of the element.
func (e *Element) Kind() Kind {
	return e.kind
}

// Handle returns the handle of the element's schema record.
func (e *Element) Handle() Handle {
	return e.handle
}

// Meshes returns the handles of the element's meshes.
func (e *Element) Meshes() []MeshHandle {
	return slices.Clone(e.meshes)
}

// Push writes solid to the schema record and to the element's meshes.
// Invalid solids are rejected before anything is written. If the mesh sink
// fails, the schema record is restored to the previously pushed solid and
// the previous mesh handles are kept.
func (e *Element) Push(solid SolidDescriptor) error {
	if e.env == nil {
		return fmt.Errorf("%w: element %q has no environment", ErrInvalidParameter, e.id)
	}
	if err := solid.Validate(); err != nil {
		return &InstanceError{ID: e.id, Err: err}
	}
	if err := e.env.Model.Write(e.handle, solid); err != nil {
		return &InstanceError{ID: e.id, Err: fmt.Errorf("write schema record: %w", err)}
	}
	meshes, err := e.env.Meshes.UpsertMesh(e.id, solid)
	if err != nil {
		err = fmt.Errorf("upsert mesh: %w", err)
		if e.pushed != nil {
			if rerr := e.env.Model.Write(e.handle, *e.pushed); rerr != nil {
				err = errors.Join(err, fmt.Errorf("restore schema record: %w", rerr))
			}
		}
		return &InstanceError{ID: e.id, Err: err}
	}
	e.meshes = meshes
	e.pushed = &solid
	return nil
}
