// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// MassProps holds the mass properties of a frame computed from its elements.
// Each element is a point mass ρ・A・L located at its mid-point; extra nodal masses are not included.
//
//         | Ixx  Ixy  Ixz |     Ixx = Σ m (y² + z²)     Ixz = Σ m x z
//    I =  | Ixy  Iyy  Iyz |     Iyy = Σ m (x² + z²)     Ixy = Σ m x y  (full tensor only)
//         | Ixz  Iyz  Izz |     Izz = Σ m (x² + y²)     Iyz = Σ m y z  (full tensor only)
//
// Products of inertia are taken about the global origin with a positive sign.
type MassProps struct {
	Mass float64     // total mass
	Cg   []float64   // [3] centre of gravity
	I    [][]float64 // [3][3] inertia tensor about the origin
}

// NewMassProps computes the mass properties of elements
//  fulltensor -- also compute Ixy and Iyz; otherwise they are zero
func NewMassProps(elems [][]*ele.Beam, fulltensor bool) (o *MassProps) {
	o = new(MassProps)
	o.Cg = make([]float64, 3)
	o.I = utl.Alloc(3, 3)
	for _, beam := range elems {
		for _, e := range beam {
			m := e.Mass()
			c := e.Centre()
			x, y, z := c[0], c[1], c[2]
			o.Mass += m
			floats.AddScaled(o.Cg, m, c)
			o.I[0][0] += m * (y*y + z*z)
			o.I[1][1] += m * (x*x + z*z)
			o.I[2][2] += m * (x*x + y*y)
			o.I[0][2] += m * x * z
			if fulltensor {
				o.I[0][1] += m * x * y
				o.I[1][2] += m * y * z
			}
		}
	}
	o.I[2][0] = o.I[0][2]
	o.I[1][0] = o.I[0][1]
	o.I[2][1] = o.I[1][2]
	if o.Mass > 0 {
		floats.Scale(1.0/o.Mass, o.Cg)
	}
	return
}
