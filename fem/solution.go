// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// Solution holds the results of one analysis. It is not modified after being returned
type Solution struct {
	Mode  string        // "static" or "residual"
	U     []float64     // [dim] displacements and rotations
	Uddot []float64     // [dim] accelerations; residual mode only
	R     []float64     // [dim] residual: K・U + M・Ü - F (Ü = 0 in static mode)
	Mass  *MassProps    // mass properties
	Dmap  *DofMap       // global equation numbers of beam nodes
	Beams []*inp.Beam   // beams
	Elems [][]*ele.Beam // [nbeams][nelems] elements
}

// StressRecoverer computes stresses (or any other quantity) of one element from its
// end loads in the local system; e.g. axial, bending and shear stresses
type StressRecoverer interface {
	Recover(beam *inp.Beam, e int, elem *ele.Beam, loads []float64) (vals []float64, err error)
}

// StressFunc is an adapter to use functions as StressRecoverer
type StressFunc func(beam *inp.Beam, e int, elem *ele.Beam, loads []float64) ([]float64, error)

// Recover calls f(beam, e, elem, loads)
func (f StressFunc) Recover(beam *inp.Beam, e int, elem *ele.Beam, loads []float64) ([]float64, error) {
	return f(beam, e, elem, loads)
}

// BeamIndex returns the index of beam with given name
func (o *Solution) BeamIndex(name string) (ib int, err error) {
	ib, ok := o.Dmap.Beam2idx[name]
	if !ok {
		return 0, chk.Err("cannot find beam %q", name)
	}
	return
}

// ResidualNorm returns the maximum absolute value in R
func (o *Solution) ResidualNorm() float64 {
	return floats.Norm(o.R, math.Inf(1))
}

// Disp returns the translations ux, uy, uz of all nodes of beam ib: [nnodes][3]
func (o *Solution) Disp(ib int) [][]float64 {
	return o.nodal(ib, 0)
}

// Rotations returns the rotations rx, ry, rz of all nodes of beam ib: [nnodes][3]
func (o *Solution) Rotations(ib int) [][]float64 {
	return o.nodal(ib, 3)
}

// Deformed returns the coordinates of the displaced nodes of beam ib: [nnodes][3]
func (o *Solution) Deformed(ib int) (X [][]float64) {
	X = o.Disp(ib)
	for i, x := range o.Beams[ib].X {
		floats.Add(X[i], x)
	}
	return
}

// ElementLoads returns the end loads of all elements of beam ib in their local systems: [nelems][12]
func (o *Solution) ElementLoads(ib int) (loads [][]float64) {
	loads = make([][]float64, len(o.Elems[ib]))
	for e, elem := range o.Elems[ib] {
		ue := make([]float64, ele.Nu)
		for i, I := range o.Dmap.Umap(ib, e) {
			ue[i] = o.U[I]
		}
		loads[e] = elem.LocalLoads(ue)
	}
	return
}

// Stress applies sr to all elements of all beams and returns the results by beam name
func (o *Solution) Stress(sr StressRecoverer) (res map[string][][]float64, err error) {
	res = make(map[string][][]float64)
	for ib, beam := range o.Beams {
		loads := o.ElementLoads(ib)
		vals := make([][]float64, len(loads))
		for e, fl := range loads {
			vals[e], err = sr.Recover(beam, e, o.Elems[ib][e], fl)
			if err != nil {
				return nil, chk.Err("stress recovery failed @ beam %q, element %d:\n%v", beam.Name, e, err)
			}
		}
		res[beam.Name] = vals
	}
	return
}

// nodal extracts 3 components starting at offset of each node of beam ib
func (o *Solution) nodal(ib, offset int) (res [][]float64) {
	bases := o.Dmap.Bases[ib]
	res = utl.Alloc(len(bases), 3)
	for i, base := range bases {
		copy(res[i], o.U[base+offset:base+offset+3])
	}
	return
}
