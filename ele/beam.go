// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the 3D Euler-Bernoulli beam element of frames
package ele

import (
	"fmt"
	"math"

	"github.com/cpmech/goframe/ana"
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// constants
const (
	Ndof   = 6     // number of dofs per node: ux, uy, uz, rx, ry, rz
	Nu     = 12    // number of unknowns of one element
	Lfloor = 1e-12 // added to the length of elements to avoid division by zero
	Dvert  = 1e-8  // elements with horizontal projection D below this value are vertical
)

// Beam represents a structural beam element (Euler-Bernoulli, linear elastic) connecting two nodes
//
//            y (local)
//            ^
//            |                     Dofs (local and global):
//            |                      node a: 0:ux 1:uy 2:uz 3:rx  4:ry  5:rz
//           (a)===============(b)---> x (local)    node b: 6:ux 7:uy 8:uz 9:rx 10:ry 11:rz
//          ,'
//        ,'                    Iz governs bending in the x-y plane
//      z (local)               Iy governs bending in the x-z plane
//
type Beam struct {

	// input
	Xa  []float64     // [3] coordinates of first node
	Xb  []float64     // [3] coordinates of second node
	Mat *ana.Material // material: E, G and Rho
	Sec ana.Props     // cross-section: A, Iy, Iz, J and Q

	// derived
	L   float64       // length of element (including floor)
	Lam [3][3]float64 // rotation block: rows are the local axes written in global coordinates
	T   *mat.Dense    // [12][12] global-to-local transformation matrix
	Kl  *mat.Dense    // [12][12] local K matrix
	K   *mat.Dense    // [12][12] global K matrix
	Ml  *mat.Dense    // [12][12] local M matrix; nil if not requested
	M   *mat.Dense    // [12][12] global M matrix; nil if not requested
}

// NewBeam returns a new beam element with K (and M if withM) computed
func NewBeam(xa, xb []float64, material *ana.Material, sec ana.Props, withM bool) (o *Beam, err error) {
	if len(xa) != 3 || len(xb) != 3 || !finite(xa) || !finite(xb) {
		return nil, fmt.Errorf("%w: beam element: invalid nodal coordinates %v and %v", inp.ErrConfig, xa, xb)
	}
	if material == nil {
		return nil, fmt.Errorf("%w: beam element: material is missing", inp.ErrConfig)
	}
	props := []float64{sec.A, sec.Iy, sec.Iz, sec.J, material.E, material.G, material.Rho}
	if !finite(props) || floats.Min(props) < 0 {
		return nil, fmt.Errorf("%w: beam element: properties must be finite and non-negative. A=%g Iy=%g Iz=%g J=%g E=%g G=%g rho=%g",
			inp.ErrConfig, sec.A, sec.Iy, sec.Iz, sec.J, material.E, material.G, material.Rho)
	}
	o = new(Beam)
	o.Xa = []float64{xa[0], xa[1], xa[2]}
	o.Xb = []float64{xb[0], xb[1], xb[2]}
	o.Mat = material
	o.Sec = sec
	o.T = mat.NewDense(Nu, Nu, nil)
	o.Kl = mat.NewDense(Nu, Nu, nil)
	o.K = mat.NewDense(Nu, Nu, nil)
	o.Recompute(withM)
	return
}

// Recompute re-computes matrices after dimensions or parameters are externally changed
func (o *Beam) Recompute(withM bool) {

	// length
	dx := make([]float64, 3)
	floats.SubTo(dx, o.Xb, o.Xa)
	o.L = floats.Norm(dx, 2) + Lfloor

	// rotation block and transformation matrix
	o.rotation(dx[0]/o.L, dx[1]/o.L, dx[2]/o.L)
	o.T.Zero()
	for k := 0; k < 4; k++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				o.T.Set(3*k+i, 3*k+j, o.Lam[i][j])
			}
		}
	}

	// stiffness
	o.stiffness()
	toGlobal(o.K, o.T, o.Kl)

	// mass
	if !withM {
		o.Ml, o.M = nil, nil
		return
	}
	if o.Ml == nil {
		o.Ml = mat.NewDense(Nu, Nu, nil)
		o.M = mat.NewDense(Nu, Nu, nil)
	}
	o.mass()
	toGlobal(o.M, o.T, o.Ml)
}

// LocalLoads returns the forces and moments at the ends of the element in the local system
//  ue -- [12] displacements and rotations of both nodes in the global system
//  fl -- [12] fl = Kl・T・ue
func (o *Beam) LocalLoads(ue []float64) (fl []float64) {
	if len(ue) != Nu {
		chk.Panic("LocalLoads: ue must have %d components. %d is incorrect", Nu, len(ue))
	}
	var ul mat.VecDense
	ul.MulVec(o.T, mat.NewVecDense(Nu, ue))
	res := mat.NewVecDense(Nu, nil)
	res.MulVec(o.Kl, &ul)
	return res.RawVector().Data
}

// Mass returns the mass of element: ρ・A・L
func (o *Beam) Mass() float64 {
	return o.Mat.Rho * o.Sec.A * o.L
}

// Centre returns the coordinates of the mid-point of element
func (o *Beam) Centre() (c []float64) {
	c = make([]float64, 3)
	floats.AddTo(c, o.Xa, o.Xb)
	floats.Scale(0.5, c)
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// rotation computes the rotation block from the direction cosines of the element axis
//
//   general:         |    ll        mm       nn |     D = sqrt(ll² + mm²)
//                    |  -mm/D      ll/D      0  |
//                    | -ll・nn/D  -mm・nn/D   D  |
//
//   vertical (D≈0):  |   0   0   n  |     n = sign(nn)
//                    |   0   1   0  |
//                    |  -n   0   0  |
//
func (o *Beam) rotation(ll, mm, nn float64) {
	D := math.Sqrt(ll*ll + mm*mm)
	if D < Dvert {
		n := 1.0
		if nn < 0 {
			n = -1.0
		}
		o.Lam = [3][3]float64{
			{0, 0, n},
			{0, 1, 0},
			{-n, 0, 0},
		}
		return
	}
	o.Lam = [3][3]float64{
		{ll, mm, nn},
		{-mm / D, ll / D, 0},
		{-ll * nn / D, -mm * nn / D, D},
	}
}

// stiffness computes the local stiffness matrix
func (o *Beam) stiffness() {

	// constants
	E, G := o.Mat.E, o.Mat.G
	EA := E * o.Sec.A
	EIz := E * o.Sec.Iz
	EIy := E * o.Sec.Iy
	GJ := G * o.Sec.J
	l := o.L
	ll := l * l
	lll := l * ll

	// upper triangle
	k := o.Kl
	k.Zero()
	k.Set(0, 0, EA/l)
	k.Set(0, 6, -EA/l)

	k.Set(1, 1, 12.0*EIz/lll)
	k.Set(1, 5, 6.0*EIz/ll)
	k.Set(1, 7, -12.0*EIz/lll)
	k.Set(1, 11, 6.0*EIz/ll)

	k.Set(2, 2, 12.0*EIy/lll)
	k.Set(2, 4, -6.0*EIy/ll)
	k.Set(2, 8, -12.0*EIy/lll)
	k.Set(2, 10, -6.0*EIy/ll)

	k.Set(3, 3, GJ/l)
	k.Set(3, 9, -GJ/l)

	k.Set(4, 4, 4.0*EIy/l)
	k.Set(4, 8, 6.0*EIy/ll)
	k.Set(4, 10, 2.0*EIy/l)

	k.Set(5, 5, 4.0*EIz/l)
	k.Set(5, 7, -6.0*EIz/ll)
	k.Set(5, 11, 2.0*EIz/l)

	k.Set(6, 6, EA/l)

	k.Set(7, 7, 12.0*EIz/lll)
	k.Set(7, 11, -6.0*EIz/ll)

	k.Set(8, 8, 12.0*EIy/lll)
	k.Set(8, 10, 6.0*EIy/ll)

	k.Set(9, 9, GJ/l)

	k.Set(10, 10, 4.0*EIy/l)

	k.Set(11, 11, 4.0*EIz/l)

	symmetrise(k)
}

// mass computes the local consistent mass matrix
func (o *Beam) mass() {

	// constants
	l := o.L
	ll := l * l
	m := o.Mat.Rho * o.Sec.A * l
	c := m / 420.0
	r2 := 0.0 // squared polar radius of gyration
	if o.Sec.A > 0 {
		r2 = (o.Sec.Iy + o.Sec.Iz) / o.Sec.A
	}

	// upper triangle
	M := o.Ml
	M.Zero()

	// axial
	M.Set(0, 0, 2.0*m/6.0)
	M.Set(0, 6, m/6.0)
	M.Set(6, 6, 2.0*m/6.0)

	// torsion
	M.Set(3, 3, 2.0*m*r2/6.0)
	M.Set(3, 9, m*r2/6.0)
	M.Set(9, 9, 2.0*m*r2/6.0)

	// bending in x-y plane: uy, rz
	M.Set(1, 1, 156.0*c)
	M.Set(1, 5, 22.0*l*c)
	M.Set(1, 7, 54.0*c)
	M.Set(1, 11, -13.0*l*c)
	M.Set(5, 5, 4.0*ll*c)
	M.Set(5, 7, 13.0*l*c)
	M.Set(5, 11, -3.0*ll*c)
	M.Set(7, 7, 156.0*c)
	M.Set(7, 11, -22.0*l*c)
	M.Set(11, 11, 4.0*ll*c)

	// bending in x-z plane: uz, ry
	M.Set(2, 2, 156.0*c)
	M.Set(2, 4, -22.0*l*c)
	M.Set(2, 8, 54.0*c)
	M.Set(2, 10, 13.0*l*c)
	M.Set(4, 4, 4.0*ll*c)
	M.Set(4, 8, -13.0*l*c)
	M.Set(4, 10, -3.0*ll*c)
	M.Set(8, 8, 156.0*c)
	M.Set(8, 10, 22.0*l*c)
	M.Set(10, 10, 4.0*ll*c)

	symmetrise(M)
}

// toGlobal computes A := trans(T)・Al・T and makes it exactly symmetric
func toGlobal(A, T, Al *mat.Dense) {
	var tmp mat.Dense
	tmp.Mul(Al, T)
	A.Mul(T.T(), &tmp)
	r, _ := A.Dims()
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			v := (A.At(i, j) + A.At(j, i)) / 2.0
			A.Set(i, j, v)
			A.Set(j, i, v)
		}
	}
}

// symmetrise copies the upper triangle of A into the lower triangle
func symmetrise(A *mat.Dense) {
	r, _ := A.Dims()
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			A.Set(j, i, A.At(i, j))
		}
	}
}

// finite returns whether all values are finite numbers
func finite(vals []float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
