// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// System holds the global system of equations: K・U + M・Ü = F
type System struct {
	Dim int           // number of equations
	K   *mat.Dense    // [Dim][Dim] stiffness matrix
	M   *mat.Dense    // [Dim][Dim] mass matrix
	F   *mat.VecDense // [Dim] loads
}

// Assembler accumulates element matrices and loads into a global system.
// Contributions are added until Assemble is called; the system is not visible before that.
type Assembler struct {
	sys  System
	done bool
}

// NewAssembler returns a new Assembler with zeroed K, M and F
func NewAssembler(dim int) (o *Assembler) {
	if dim < 1 {
		chk.Panic("NewAssembler: dimension must be positive. %d is invalid", dim)
	}
	o = new(Assembler)
	o.sys.Dim = dim
	o.sys.K = mat.NewDense(dim, dim, nil)
	o.sys.M = mat.NewDense(dim, dim, nil)
	o.sys.F = mat.NewVecDense(dim, nil)
	return
}

// AddElement adds the global K and M of element e into the four 6×6 blocks of
// the nodes starting at equations a and b
//
//        a     b
//    a | Kaa   Kab |
//    b | Kba   Kbb |
//
func (o *Assembler) AddElement(e *ele.Beam, a, b int) {
	o.check()
	bases := [2]int{a, b}
	for m := 0; m < 2; m++ {
		for n := 0; n < 2; n++ {
			for i := 0; i < ele.Ndof; i++ {
				I := bases[m] + i
				r := i + m*ele.Ndof
				for j := 0; j < ele.Ndof; j++ {
					J := bases[n] + j
					c := j + n*ele.Ndof
					o.sys.K.Set(I, J, o.sys.K.At(I, J)+e.K.At(r, c))
					if e.M != nil {
						o.sys.M.Set(I, J, o.sys.M.At(I, J)+e.M.At(r, c))
					}
				}
			}
		}
	}
}

// AddNodalLoad adds the 6 forces and moments f to the node starting at equation base
func (o *Assembler) AddNodalLoad(base int, f []float64) {
	o.check()
	for i := 0; i < ele.Ndof; i++ {
		o.sys.F.SetVec(base+i, o.sys.F.AtVec(base+i)+f[i])
	}
}

// AddPointMass adds the inertial load m・acc of a point mass at the node starting at equation base
func (o *Assembler) AddPointMass(base int, m float64, acc []float64) {
	o.check()
	for i := 0; i < ele.Ndof; i++ {
		o.sys.F.SetVec(base+i, o.sys.F.AtVec(base+i)+m*acc[i])
	}
}

// AddInertia adds the inertial loads M・a where a holds the 6 components of acc at every node.
// It must be called after all elements have been added.
func (o *Assembler) AddInertia(acc []float64) {
	o.check()
	a := mat.NewVecDense(o.sys.Dim, nil)
	for i := 0; i < o.sys.Dim; i++ {
		a.SetVec(i, acc[i%ele.Ndof])
	}
	var ma mat.VecDense
	ma.MulVec(o.sys.M, a)
	o.sys.F.AddVec(o.sys.F, &ma)
}

// Assemble finishes the assembly and returns the global system.
// Further calls to the Add methods panic.
func (o *Assembler) Assemble() *System {
	o.check()
	o.done = true
	sys := o.sys
	return &sys
}

// check panics if the system has already been assembled
func (o *Assembler) check() {
	if o.done {
		chk.Panic("Assembler: system has already been assembled")
	}
}
