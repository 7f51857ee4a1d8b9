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
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// UUIDSource generates random (version 4) UUIDs.
type UUIDSource struct{}

// NewID implements [IDSource].
func (UUIDSource) NewID() ID {
	return ID(uuid.NewString())
}

// SequentialIDs generates the IDs Prefix1, Prefix2, ...
// It is meant for tests and for reproducible output.
type SequentialIDs struct {
	Prefix string

	mu sync.Mutex
	n  int
}

// NewID implements [IDSource].
func (s *SequentialIDs) NewID() ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return ID(fmt.Sprintf("%s%d", s.Prefix, s.n))
}
