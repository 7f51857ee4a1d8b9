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
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/bim"
)

// storedSolid is the CBOR layout of a solid in the records table.
type storedSolid struct {
	Kind      string       `cbor:"1,keyasint"`
	Placement [4]float64   `cbor:"2,keyasint"` // origin x, origin y, rotation, elevation
	Profile   [][2]float64 `cbor:"3,keyasint"`
	Base      float64      `cbor:"4,keyasint"`
	Height    float64      `cbor:"5,keyasint"`
	Area      float64      `cbor:"6,keyasint"`
	Volume    float64      `cbor:"7,keyasint"`
}

// solidEnc produces deterministic output, so that equal solids give equal
// blobs and the database can compare them directly.
var solidEnc = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

func encodeSolid(s bim.SolidDescriptor) ([]byte, error) {
	st := storedSolid{
		Kind: string(s.Kind),
		Placement: [4]float64{
			s.Placement.Origin.X,
			s.Placement.Origin.Y,
			s.Placement.Rotation,
			s.Placement.Elevation,
		},
		Profile: make([][2]float64, len(s.Profile)),
		Base:    s.Base,
		Height:  s.Height,
		Area:    s.Area,
		Volume:  s.Volume,
	}
	for i, p := range s.Profile {
		st.Profile[i] = [2]float64{p.X, p.Y}
	}
	data, err := solidEnc.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode solid: %w", err)
	}
	return data, nil
}

func decodeSolid(data []byte) (bim.SolidDescriptor, error) {
	var st storedSolid
	if err := cbor.Unmarshal(data, &st); err != nil {
		return bim.SolidDescriptor{}, fmt.Errorf("decode solid: %w", err)
	}
	s := bim.SolidDescriptor{
		Kind: bim.Kind(st.Kind),
		Placement: bim.Transform{
			Origin:    vec.Vec2{X: st.Placement[0], Y: st.Placement[1]},
			Rotation:  st.Placement[2],
			Elevation: st.Placement[3],
		},
		Profile: make([]vec.Vec2, len(st.Profile)),
		Base:    st.Base,
		Height:  st.Height,
		Area:    st.Area,
		Volume:  st.Volume,
	}
	for i, p := range st.Profile {
		s.Profile[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return s, nil
}
