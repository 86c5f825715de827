// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/goframe/ana"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_frame01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame01. read wing and fuselage")

	frm, err := ReadFrame("testdata/wingfuse.frm")
	if err != nil {
		tst.Errorf("ReadFrame failed:\n%v", err)
		return
	}
	io.Pforan("key = %v\n", frm.Key)
	chk.String(tst, frm.Key, "wingfuse")
	chk.Int(tst, "number of beams", len(frm.Beams), 2)
	chk.Int(tst, "number of joints", len(frm.Joints), 1)
	chk.Int(tst, "nworkers from .env", frm.Data.Nworkers, 4)
	chk.Float64(tst, "maxcond from .env", 1e-17, frm.Data.MaxCond, 1e14)

	wing := frm.Beams[0]
	chk.Int(tst, "wing: nnodes", wing.Nnodes(), 11)
	chk.Int(tst, "wing: nelems", wing.Nelems(), 10)
	chk.Array(tst, "wing: X[10]", 1e-15, wing.X[10], []float64{0, 20, 0})
	chk.Array(tst, "wing: loads[3]", 1e-15, wing.Loads[3], []float64{0, 0, 1000, 0, 0, 0})
	chk.Float64(tst, "wing: E", 1e-17, wing.Material.E, 69e9)
	if wing.Prof.Kind != ana.KindTube {
		tst.Errorf("wing profile should be a tube")
		return
	}

	bcs := frm.AllBcs()
	chk.Int(tst, "number of bcs", len(bcs), 1)
	chk.String(tst, bcs[0].Beam, "wing")
	chk.Int(tst, "bc node", bcs[0].Node, 5)
}

func Test_frame02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame02. feet to meters")

	frm, err := ReadFrame("testdata/boxft.frm")
	require.NoError(tst, err)

	spar := frm.Beams[0]
	chk.Array(tst, "spar: X[2]", 1e-15, spar.X[2], []float64{3.04, 0, 0})
	chk.Array(tst, "spar: width", 1e-15, spar.Prof.Width, []float64{0.304, 0.304, 0.304})
	chk.Array(tst, "spar: tweb", 1e-15, spar.Prof.Tweb, []float64{0.0304, 0.0304, 0.0304})
	chk.Array(tst, "input nodes are not modified", 1e-15, spar.Nodes[2], []float64{10, 0, 0})
	chk.Float64(tst, "steel: G", 1e-3, spar.Material.G, 200e9/2.64)
	assert.True(tst, frm.Data.FullTensor)
	assert.Equal(tst, []float64{0, 0, -9.81, 0, 0, 0}, frm.Acc)

	bcs := frm.AllBcs()
	require.Len(tst, bcs, 1)
	assert.Equal(tst, "spar", bcs[0].Beam)
	assert.Equal(tst, 0, bcs[0].Node)
}

func Test_frame03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("frame03. configuration errors")

	_, err := ReadFrame("testdata/badunits.frm")
	require.Error(tst, err)
	assert.ErrorIs(tst, err, ErrUnits)
	io.Pforan("%v\n", err)

	_, err = ReadFrame("testdata/badjoint.frm")
	require.Error(tst, err)
	assert.ErrorIs(tst, err, ErrConfig)
	io.Pforan("%v\n", err)

	_, err = ReadFrame("testdata/doesnotexist.frm")
	assert.Error(tst, err)

	mat := &ana.Material{Name: "m", E: 1, G: 0.4}
	tube := func(name string) *Beam {
		return &Beam{
			Name:     name,
			Cs:       "tube",
			Nodes:    [][]float64{{0, 0, 0}, {1, 0, 0}},
			Radius:   []float64{0.1, 0.1},
			Thick:    []float64{0.01, 0.01},
			Material: mat,
		}
	}

	err = Check(nil, nil, []*Bc{{Beam: "a", Node: 0}})
	assert.ErrorIs(tst, err, ErrConfig)

	a := tube("a")
	require.NoError(tst, a.Init(nil, "m"))
	err = Check([]*Beam{a}, nil, nil)
	assert.ErrorIs(tst, err, ErrConfig, "missing boundary conditions")

	err = Check([]*Beam{a}, nil, []*Bc{{Beam: "a", Node: 2}})
	assert.ErrorIs(tst, err, ErrConfig, "bc node out of range")

	b := tube("b")
	err = Check([]*Beam{a, b}, nil, []*Bc{{Beam: "a", Node: 0}})
	assert.ErrorIs(tst, err, ErrConfig, "beam b not initialised")

	require.NoError(tst, b.Init(nil, "feet"))
	chk.Array(tst, "b: X[1]", 1e-15, b.X[1], []float64{0.304, 0, 0})
	err = Check([]*Beam{a, b}, []*Joint{{Name: "j", Beams: []string{"a", "b"}, Nodes: []int{1, -1}}}, []*Bc{{Beam: "a", Node: 0}})
	assert.ErrorIs(tst, err, ErrConfig, "joint node out of range")

	err = Check([]*Beam{a, b}, []*Joint{{Name: "j", Beams: []string{"a", "b"}, Nodes: []int{1, 0}}}, []*Bc{{Beam: "a", Node: 0}})
	assert.NoError(tst, err)

	// a joint with one member merges nothing; an empty joint is invalid
	err = Check([]*Beam{a, b}, []*Joint{{Name: "lone", Beams: []string{"b"}, Nodes: []int{1}}}, []*Bc{{Beam: "a", Node: 0}})
	assert.NoError(tst, err, "one member")
	err = Check([]*Beam{a, b}, []*Joint{{Name: "empty"}}, []*Bc{{Beam: "a", Node: 0}})
	assert.ErrorIs(tst, err, ErrConfig, "no members")

	c := tube("c")
	c.Units = "inch"
	assert.ErrorIs(tst, c.Init(nil, "m"), ErrUnits)

	d := tube("d")
	d.Nodes = [][]float64{{0, 0, 0}}
	assert.ErrorIs(tst, d.Init(nil, "m"), ErrConfig, "single node")

	e := tube("e")
	e.Loads = [][]float64{{1, 2, 3}, {1, 2, 3, 4, 5, 6}}
	assert.ErrorIs(tst, e.Init(nil, "m"), ErrConfig, "loads with 3 components")
}

func Test_units01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("units01. length factors")

	for _, tc := range []struct {
		units string
		sf    float64
	}{{"m", 1}, {"meters", 1}, {"ft", 0.304}, {"feet", 0.304}} {
		sf, err := LengthFactor(tc.units)
		require.NoError(tst, err)
		chk.Float64(tst, tc.units, 1e-17, sf, tc.sf)
	}
	_, err := LengthFactor("mm")
	assert.ErrorIs(tst, err, ErrUnits)
}
