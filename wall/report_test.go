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

package wall

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/bim/plan"
)

func TestReportGolden(t *testing.T) {
	f := newFixture(t)
	a, b := f.lCorner(t, pt(0, 0))
	require.NoError(t, f.typ.AddCorner(Joint{
		First:       b.Ref(),
		Second:      a.Ref(),
		Side:        plan.Exterior,
		CutSide:     plan.Exterior,
		CutAnchor:   plan.Exterior,
		PriorityEnd: AtStart,
	}))
	_, err := f.typ.AddInstance()
	require.NoError(t, err)
	require.NoError(t, f.typ.UpdateCorners())

	var buf bytes.Buffer
	require.NoError(t, f.typ.WriteReport(&buf))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "lcorner", buf.Bytes())
}
