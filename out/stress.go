// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/goframe/ana"
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/gosl/chk"
)

// StressKeys holds the names of the values computed by BeamStress at each end of an element
var StressKeys = []string{
	"sN1", "sM1", "tV1",
	"sN2", "sM2", "tV2",
}

// BeamStress computes nominal stresses of thin-walled box and tube elements from their end loads
//
//   sN = N / A                              axial
//   sM = |My| cz / Iy + |Mz| cy / Iz        extreme fibre bending
//   tV = V Q / (Iy b) ,  V = √(Vy² + Vz²)   shear at the neutral axis
//
//  where cy and cz are the distances to the extreme fibres and b is the wall thickness
//  crossing the neutral axis (two webs or two tube walls)
type BeamStress struct{}

// Recover implements fem.StressRecoverer
func (o BeamStress) Recover(beam *inp.Beam, e int, elem *ele.Beam, loads []float64) (vals []float64, err error) {
	if len(loads) != ele.Nu {
		return nil, chk.Err("number of end loads must be %d. %d is incorrect", ele.Nu, len(loads))
	}
	var cy, cz, b float64
	switch sec := beam.Prof.Element(e).(type) {
	case ana.Box:
		cy, cz, b = sec.Width/2.0, sec.Height/2.0, 2.0*sec.Tweb
	case ana.Tube:
		cy, cz, b = sec.Radius, sec.Radius, 2.0*sec.Thick
	default:
		return nil, chk.Err("cannot compute stresses of %v section", sec.Kind())
	}
	p := elem.Sec
	if p.A <= 0 || p.Iy <= 0 || p.Iz <= 0 || b <= 0 {
		return nil, chk.Err("section of element %d has zero area, second moment or wall thickness", e)
	}
	vals = make([]float64, len(StressKeys))
	for k := 0; k < 2; k++ {
		f := loads[6*k : 6*k+6]
		vals[3*k+0] = f[0] / p.A
		vals[3*k+1] = math.Abs(f[4])*cz/p.Iy + math.Abs(f[5])*cy/p.Iz
		vals[3*k+2] = math.Hypot(f[1], f[2]) * p.Q / (p.Iy * b)
	}
	return
}
