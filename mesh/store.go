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

// Package mesh keeps triangle meshes for elements and renders plan-view
// previews of them.
package mesh

import (
	"slices"
	"sync"

	"seehuhn.de/go/bim"
	"seehuhn.de/go/bim/plan"
)

// Mesh is a closed triangle mesh.
type Mesh struct {
	Element   bim.ID
	Solid     bim.SolidDescriptor
	Vertices  [][3]float64
	Triangles [][3]int32
	Revision  int // number of upserts which changed the mesh
}

// Equal reports whether m and other have the same geometry.
func (m *Mesh) Equal(other *Mesh) bool {
	return slices.Equal(m.Vertices, other.Vertices) &&
		slices.Equal(m.Triangles, other.Triangles)
}

// Store is an in-memory [bim.MeshSink]. Each element owns one body mesh
// whose handle is allocated on the first upsert and reused afterwards.
//
// A Store is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	next     bim.MeshHandle
	byID     map[bim.ID]bim.MeshHandle
	meshes   map[bim.MeshHandle]*Mesh
	upserted int
}

var _ bim.MeshSink = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		byID:   make(map[bim.ID]bim.MeshHandle),
		meshes: make(map[bim.MeshHandle]*Mesh),
	}
}

// UpsertMesh implements [bim.MeshSink].
func (s *Store) UpsertMesh(id bim.ID, solid bim.SolidDescriptor) ([]bim.MeshHandle, error) {
	if err := solid.Validate(); err != nil {
		return nil, err
	}
	vertices, triangles := Extrude(solid.Profile, solid.Base, solid.Top())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserted++

	h, ok := s.byID[id]
	if !ok {
		s.next++
		h = s.next
		s.byID[id] = h
		s.meshes[h] = &Mesh{Element: id}
	}
	m := s.meshes[h]
	updated := &Mesh{Element: id, Solid: solid, Vertices: vertices, Triangles: triangles}
	if m.Revision == 0 || !m.Equal(updated) {
		m.Vertices = vertices
		m.Triangles = triangles
		m.Revision++
	}
	m.Solid = solid
	return []bim.MeshHandle{h}, nil
}

// Mesh returns a copy of the mesh with handle h.
func (s *Store) Mesh(h bim.MeshHandle) (Mesh, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meshes[h]
	if !ok {
		return Mesh{}, false
	}
	res := *m
	res.Vertices = slices.Clone(m.Vertices)
	res.Triangles = slices.Clone(m.Triangles)
	return res, true
}

// Remove drops the meshes of an element.
func (s *Store) Remove(id bim.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.byID[id]; ok {
		delete(s.meshes, h)
		delete(s.byID, id)
	}
}

// Len returns the number of meshes.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.meshes)
}

// Upserts returns the number of UpsertMesh calls which succeeded.
func (s *Store) Upserts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upserted
}

// Solids returns the solids of all meshes, ordered by handle.
func (s *Store) Solids() []bim.SolidDescriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	handles := make([]bim.MeshHandle, 0, len(s.meshes))
	for h := range s.meshes {
		handles = append(handles, h)
	}
	slices.Sort(handles)
	res := make([]bim.SolidDescriptor, len(handles))
	for i, h := range handles {
		res[i] = s.meshes[h].Solid
	}
	return res
}

// Extrude builds the triangle mesh of a vertical prism over profile.
// Clockwise profiles are reversed first. Vertex i of the counter-clockwise
// profile appears as vertex i (bottom) and vertex len(profile)+i (top) of
// the result, and all triangles face outwards.
func Extrude(profile []plan.Point, bottom, top float64) ([][3]float64, [][3]int32) {
	n := len(profile)
	pts := profile
	if plan.SignedArea(profile) < 0 {
		pts = slices.Clone(profile)
		slices.Reverse(pts)
	}

	vertices := make([][3]float64, 0, 2*n)
	for _, p := range pts {
		vertices = append(vertices, [3]float64{p.X, p.Y, bottom})
	}
	for _, p := range pts {
		vertices = append(vertices, [3]float64{p.X, p.Y, top})
	}

	caps := Triangulate(pts)
	triangles := make([][3]int32, 0, 2*len(caps)+2*n)
	for _, t := range caps {
		// bottom faces down, top faces up
		triangles = append(triangles, [3]int32{t[0], t[2], t[1]})
		triangles = append(triangles, [3]int32{t[0] + int32(n), t[1] + int32(n), t[2] + int32(n)})
	}
	for i := range n {
		j := (i + 1) % n
		a, b := int32(i), int32(j)
		triangles = append(triangles,
			[3]int32{a, b, b + int32(n)},
			[3]int32{a, b + int32(n), a + int32(n)},
		)
	}
	return vertices, triangles
}

// Triangulate splits a simple counter-clockwise polygon into triangles by
// ear clipping. Polygons without a proper ear (for example with collinear
// runs of vertices) are finished with a fan.
func Triangulate(pts []plan.Point) [][3]int32 {
	n := len(pts)
	if n < 3 {
		return nil
	}
	idx := make([]int32, n)
	for i := range idx {
		idx[i] = int32(i)
	}

	var res [][3]int32
	for len(idx) > 3 {
		ear := -1
		for k := range idx {
			i0 := idx[(k+len(idx)-1)%len(idx)]
			i1 := idx[k]
			i2 := idx[(k+1)%len(idx)]
			if isEar(pts, idx, i0, i1, i2) {
				ear = k
				res = append(res, [3]int32{i0, i1, i2})
				break
			}
		}
		if ear < 0 {
			break
		}
		idx = slices.Delete(idx, ear, ear+1)
	}
	for k := 1; k+1 < len(idx); k++ {
		res = append(res, [3]int32{idx[0], idx[k], idx[k+1]})
	}
	return res
}

func isEar(pts []plan.Point, idx []int32, i0, i1, i2 int32) bool {
	a, b, c := pts[i0], pts[i1], pts[i2]
	if plan.Cross(b.Sub(a), c.Sub(b)) <= 0 {
		return false // reflex or degenerate corner
	}
	for _, j := range idx {
		if j == i0 || j == i1 || j == i2 {
			continue
		}
		p := pts[j]
		if plan.Cross(b.Sub(a), p.Sub(a)) >= 0 &&
			plan.Cross(c.Sub(b), p.Sub(b)) >= 0 &&
			plan.Cross(a.Sub(c), p.Sub(c)) >= 0 {
			return false
		}
	}
	return true
}
