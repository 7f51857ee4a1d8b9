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

package bim

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDegenerateGeometry is returned when an element's parameters do not
	// describe a valid solid, for example a zero-length centerline or a
	// zero thickness.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrDanglingJoint is returned for a joint that refers to an element
	// which is no longer a member of its family.
	ErrDanglingJoint = errors.New("dangling joint reference")

	// ErrNotMember is returned when an element is used with a family it
	// does not belong to.
	ErrNotMember = errors.New("element is not a member of this family")

	// ErrInvalidParameter is returned for out-of-range parameters.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// InstanceError records a failure of a single element.
type InstanceError struct {
	ID  ID
	Err error
}

func (e *InstanceError) Error() string {
	return fmt.Sprintf("element %q: %v", e.ID, e.Err)
}

func (e *InstanceError) Unwrap() error {
	return e.Err
}

// BatchError collects the failures of a batch operation. The operation
// processes every item even if some of them fail.
type BatchError struct {
	Errs []error
}

func (e *BatchError) Error() string {
	if len(e.Errs) == 1 {
		return e.Errs[0].Error()
	}
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d failures: %s", len(e.Errs), strings.Join(msgs, "; "))
}

func (e *BatchError) Unwrap() []error {
	return e.Errs
}

// Batch returns nil if errs is empty and a *BatchError otherwise.
func Batch(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &BatchError{Errs: errs}
}
