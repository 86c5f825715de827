// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/inp"
)

// DofMap maps the local nodes of beams to global equation numbers.
// Nodes connected through joints, directly or transitively, share the same equations.
//
//   beam "a":   0 ---- 1 ---- 2          provisional ids:   a: 0 1 2
//                             |                             b: 3 4
//   beam "b":                 0 ---- 1   joint {a:2, b:0} => b: 2 4
//
//   unique nodes (first appearance): 0 1 2 4 => bases 0 6 12 18
//
type DofMap struct {
	Nnodes   int            // number of unique nodes
	Dim      int            // total number of equations = 6 × Nnodes
	Bases    [][]int        // [nbeams][nnodes] first equation of each beam node; a multiple of 6
	Beam2idx map[string]int // beam name => index in Bases
}

// NewDofMap returns a new DofMap
func NewDofMap(beams []*inp.Beam, joints []*inp.Joint) (o *DofMap, err error) {

	// provisional ids
	o = new(DofMap)
	o.Beam2idx = make(map[string]int)
	offsets := make([]int, len(beams))
	ntot := 0
	for i, beam := range beams {
		if _, dup := o.Beam2idx[beam.Name]; dup {
			return nil, configErr("DofMap: beam %q is defined more than once", beam.Name)
		}
		o.Beam2idx[beam.Name] = i
		offsets[i] = ntot
		ntot += beam.Nnodes()
	}

	// merge joints
	parent := make([]int, ntot)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for _, jnt := range joints {
		if len(jnt.Beams) != len(jnt.Nodes) {
			return nil, configErr("DofMap: joint %q: number of beams and nodes must be equal. %d != %d", jnt.Name, len(jnt.Beams), len(jnt.Nodes))
		}
		canonical := -1
		for k, name := range jnt.Beams {
			ib, ok := o.Beam2idx[name]
			if !ok {
				return nil, configErr("DofMap: joint %q: cannot find beam %q", jnt.Name, name)
			}
			node := jnt.Nodes[k]
			if node < 0 || node >= beams[ib].Nnodes() {
				return nil, configErr("DofMap: joint %q: node %d is out of range in beam %q with %d nodes", jnt.Name, node, name, beams[ib].Nnodes())
			}
			root := find(offsets[ib] + node)
			if canonical < 0 {
				canonical = root
				continue
			}
			parent[root] = canonical
		}
	}

	// dense numbering
	dense := make(map[int]int)
	o.Bases = make([][]int, len(beams))
	for i, beam := range beams {
		o.Bases[i] = make([]int, beam.Nnodes())
		for j := range o.Bases[i] {
			root := find(offsets[i] + j)
			idx, ok := dense[root]
			if !ok {
				idx = len(dense)
				dense[root] = idx
			}
			o.Bases[i][j] = idx * ele.Ndof
		}
	}
	o.Nnodes = len(dense)
	o.Dim = o.Nnodes * ele.Ndof
	return
}

// Base returns the first equation of node of beam
func (o *DofMap) Base(beam string, node int) (base int, err error) {
	ib, ok := o.Beam2idx[beam]
	if !ok {
		return 0, configErr("DofMap: cannot find beam %q", beam)
	}
	if node < 0 || node >= len(o.Bases[ib]) {
		return 0, configErr("DofMap: node %d is out of range in beam %q with %d nodes", node, beam, len(o.Bases[ib]))
	}
	return o.Bases[ib][node], nil
}

// Umap returns the location array of element e of beam ib: the 12 equations of its two nodes
func (o *DofMap) Umap(ib, e int) (umap []int) {
	umap = make([]int, ele.Nu)
	for m := 0; m < 2; m++ {
		for i := 0; i < ele.Ndof; i++ {
			umap[i+m*ele.Ndof] = o.Bases[ib][e+m] + i
		}
	}
	return
}
