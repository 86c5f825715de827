// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/goframe/ana"
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// aluminum returns a material for tests
func aluminum() *ana.Material {
	return &ana.Material{Name: "alu", E: 69e9, G: 26e9, Rho: 2700}
}

// fill returns n copies of v
func fill(n int, v float64) (res []float64) {
	res = make([]float64, n)
	for i := range res {
		res[i] = v
	}
	return
}

// newTube returns an initialised beam with a uniform tube section
func newTube(tst *testing.T, name string, X [][]float64, r, t float64, mat *ana.Material) *inp.Beam {
	n := len(X)
	beam := &inp.Beam{
		Name:     name,
		Cs:       "tube",
		Nodes:    X,
		Radius:   fill(n, r),
		Thick:    fill(n, t),
		Material: mat,
	}
	require.NoError(tst, beam.Init(nil, "m"))
	return beam
}

// line returns n equally spaced points from a to b
func line(a, b []float64, n int) (X [][]float64) {
	X = make([][]float64, n)
	for i := 0; i < n; i++ {
		s := float64(i) / float64(n-1)
		X[i] = []float64{a[0] + s*(b[0]-a[0]), a[1] + s*(b[1]-a[1]), a[2] + s*(b[2]-a[2])}
	}
	return
}

func Test_dofmap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofmap01. beams without joints")

	beams := []*inp.Beam{
		{Name: "a", Nodes: make([][]float64, 3)},
		{Name: "b", Nodes: make([][]float64, 4)},
	}
	o, err := NewDofMap(beams, nil)
	if err != nil {
		tst.Errorf("NewDofMap failed:\n%v", err)
		return
	}
	io.Pforan("bases = %v\n", o.Bases)
	chk.Int(tst, "nnodes", o.Nnodes, 7)
	chk.Int(tst, "dim", o.Dim, 42)
	chk.Ints(tst, "a", o.Bases[0], []int{0, 6, 12})
	chk.Ints(tst, "b", o.Bases[1], []int{18, 24, 30, 36})
	chk.Ints(tst, "umap(b,1)", o.Umap(1, 1), []int{24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35})

	base, err := o.Base("b", 3)
	require.NoError(tst, err)
	chk.Int(tst, "base(b,3)", base, 36)
	_, err = o.Base("c", 0)
	assert.ErrorIs(tst, err, inp.ErrConfig)
	_, err = o.Base("a", 3)
	assert.ErrorIs(tst, err, inp.ErrConfig)
}

func Test_dofmap02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofmap02. joints")

	beams := []*inp.Beam{
		{Name: "a", Nodes: make([][]float64, 3)},
		{Name: "b", Nodes: make([][]float64, 2)},
		{Name: "c", Nodes: make([][]float64, 3)},
	}

	// one joint merging three nodes
	o, err := NewDofMap(beams, []*inp.Joint{
		{Name: "j", Beams: []string{"a", "b", "c"}, Nodes: []int{2, 0, 1}},
	})
	if err != nil {
		tst.Errorf("NewDofMap failed:\n%v", err)
		return
	}
	io.Pforan("bases = %v\n", o.Bases)
	chk.Int(tst, "nnodes", o.Nnodes, 8-2)
	chk.Int(tst, "dim", o.Dim, 36)
	chk.Ints(tst, "a", o.Bases[0], []int{0, 6, 12})
	chk.Ints(tst, "b", o.Bases[1], []int{12, 18})
	chk.Ints(tst, "c", o.Bases[2], []int{24, 12, 30})

	// transitive merging through two joints
	p, err := NewDofMap(beams, []*inp.Joint{
		{Name: "j1", Beams: []string{"a", "b"}, Nodes: []int{2, 0}},
		{Name: "j2", Beams: []string{"c", "b"}, Nodes: []int{1, 0}},
	})
	require.NoError(tst, err)
	chk.Int(tst, "nnodes", p.Nnodes, 6)
	chk.Int(tst, "a2 == c1", p.Bases[0][2], p.Bases[2][1])
	chk.Int(tst, "b0 == c1", p.Bases[1][0], p.Bases[2][1])

	// chained joints reduce the count once per merged pair
	q, err := NewDofMap(beams, []*inp.Joint{
		{Name: "j1", Beams: []string{"a", "b"}, Nodes: []int{2, 0}},
		{Name: "j2", Beams: []string{"b", "c"}, Nodes: []int{1, 0}},
	})
	require.NoError(tst, err)
	chk.Int(tst, "nnodes", q.Nnodes, 6)
	chk.Int(tst, "b1 == c0", q.Bases[1][1], q.Bases[2][0])
	assert.NotEqual(tst, q.Bases[0][2], q.Bases[1][1])

	// joint with a single member changes nothing
	r, err := NewDofMap(beams, []*inp.Joint{
		{Name: "lone", Beams: []string{"b"}, Nodes: []int{1}},
	})
	require.NoError(tst, err)
	chk.Int(tst, "nnodes", r.Nnodes, 8)
	chk.Ints(tst, "b", r.Bases[1], []int{18, 24})
}

func Test_dofmap03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofmap03. invalid joints")

	beams := []*inp.Beam{
		{Name: "a", Nodes: make([][]float64, 3)},
		{Name: "b", Nodes: make([][]float64, 2)},
	}
	for _, jnt := range []*inp.Joint{
		{Name: "range", Beams: []string{"a", "b"}, Nodes: []int{3, 0}},
		{Name: "negative", Beams: []string{"a", "b"}, Nodes: []int{0, -1}},
		{Name: "unknown", Beams: []string{"a", "z"}, Nodes: []int{0, 0}},
		{Name: "length", Beams: []string{"a", "b"}, Nodes: []int{0}},
	} {
		_, err := NewDofMap(beams, []*inp.Joint{jnt})
		assert.ErrorIs(tst, err, inp.ErrConfig, jnt.Name)
	}

	_, err := NewDofMap([]*inp.Beam{beams[0], beams[0]}, nil)
	assert.ErrorIs(tst, err, inp.ErrConfig, "duplicated beam")
}
