// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/goframe/ana"
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// rows returns the rows of A
func rows(A mat.Matrix) (res [][]float64) {
	r, c := A.Dims()
	res = make([][]float64, r)
	for i := 0; i < r; i++ {
		res[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			res[i][j] = A.At(i, j)
		}
	}
	return
}

func testElement(tst *testing.T, xa, xb []float64) *ele.Beam {
	sec := ana.Tube{Radius: 0.1, Thick: 0.01}.Props()
	e, err := ele.NewBeam(xa, xb, aluminum(), sec, true)
	require.NoError(tst, err)
	return e
}

func Test_assembler01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler01. scatter")

	e := testElement(tst, []float64{1, 2, 3}, []float64{2, 0, 4})
	asm := NewAssembler(30)
	asm.AddElement(e, 18, 6)
	sys := asm.Assemble()

	// gather element blocks
	umap := []int{18, 19, 20, 21, 22, 23, 6, 7, 8, 9, 10, 11}
	Ke := mat.NewDense(ele.Nu, ele.Nu, nil)
	Me := mat.NewDense(ele.Nu, ele.Nu, nil)
	for i, I := range umap {
		for j, J := range umap {
			Ke.Set(i, j, sys.K.At(I, J))
			Me.Set(i, j, sys.M.At(I, J))
		}
	}
	chk.Deep2(tst, "K blocks", 1e-15, rows(Ke), rows(e.K))
	chk.Deep2(tst, "M blocks", 1e-15, rows(Me), rows(e.M))

	// all other entries are zero
	inblock := func(I int) bool { return (I >= 6 && I < 12) || (I >= 18 && I < 24) }
	for I := 0; I < sys.Dim; I++ {
		for J := 0; J < sys.Dim; J++ {
			if inblock(I) && inblock(J) {
				continue
			}
			if sys.K.At(I, J) != 0 || sys.M.At(I, J) != 0 {
				tst.Errorf("entry (%d,%d) should be zero", I, J)
				return
			}
		}
	}

	// no further contributions
	assert.Panics(tst, func() { asm.AddElement(e, 0, 6) })
	assert.Panics(tst, func() { asm.Assemble() })
}

func Test_assembler02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler02. additivity and symmetry")

	e0 := testElement(tst, []float64{0, 0, 0}, []float64{1, 0, 0})
	e1 := testElement(tst, []float64{1, 0, 0}, []float64{1, 1, 1})
	asm := NewAssembler(18)
	asm.AddElement(e0, 0, 6)
	asm.AddElement(e1, 6, 12)
	sys := asm.Assemble()

	// shared node receives both contributions
	for i := 0; i < ele.Ndof; i++ {
		for j := 0; j < ele.Ndof; j++ {
			sum := e0.K.At(6+i, 6+j) + e1.K.At(i, j)
			chk.Float64(tst, io.Sf("K(%d,%d)", 6+i, 6+j), 1e-15, sys.K.At(6+i, 6+j), sum)
		}
	}
	chk.Deep2(tst, "K symmetric", 1e-15, rows(sys.K), rows(sys.K.T()))
	chk.Deep2(tst, "M symmetric", 1e-15, rows(sys.M), rows(sys.M.T()))
}

func Test_assembler03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("assembler03. loads")

	e0 := testElement(tst, []float64{0, 0, 0}, []float64{1, 0, 0})
	e1 := testElement(tst, []float64{1, 0, 0}, []float64{3, 1, 0})
	acc := []float64{0, 0, -9.81, 0, 0, 0}
	asm := NewAssembler(18)
	asm.AddElement(e0, 0, 6)
	asm.AddElement(e1, 6, 12)
	asm.AddNodalLoad(12, []float64{1, 2, 3, 4, 5, 6})
	asm.AddInertia(acc)
	asm.AddPointMass(6, 50, acc)
	sys := asm.Assemble()

	// totals
	var fx, fz float64
	for n := 0; n < 3; n++ {
		fx += sys.F.AtVec(6*n + 0)
		fz += sys.F.AtVec(6*n + 2)
	}
	mass := e0.Mass() + e1.Mass()
	io.Pforan("mass = %v\n", mass)
	chk.Float64(tst, "Σfx", 1e-12, fx, 1)
	chk.Float64(tst, "Σfz", 1e-9, fz, 3-9.81*(mass+50))
}
