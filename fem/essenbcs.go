// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/inp"
)

// EssentialBcs holds the equations of clamped nodes. All six dofs of each node are fixed
// by zeroing rows and columns of K and M, setting their diagonal to one and zeroing F:
//
//     |  K11   0   K13 |          | M11   0   M13 |          | F1 |
//     |   0    1    0  |  ・U  +   |  0    1    0  | ・Ü  =    |  0 |
//     |  K31   0   K33 |          | M31   0   M33 |          | F3 |
//
type EssentialBcs struct {
	Eqs []int // constrained equations; sorted and without repetitions
}

// NewEssentialBcs resolves the (beam, node) pairs in bcs to global equations
func NewEssentialBcs(dmap *DofMap, bcs []*inp.Bc) (o *EssentialBcs, err error) {
	if len(bcs) == 0 {
		return nil, configErr("no boundary conditions specified")
	}
	eqs := make(map[int]bool)
	for _, bc := range bcs {
		base, err := dmap.Base(bc.Beam, bc.Node)
		if err != nil {
			return nil, err
		}
		for i := 0; i < ele.Ndof; i++ {
			eqs[base+i] = true
		}
	}
	o = new(EssentialBcs)
	o.Eqs = make([]int, 0, len(eqs))
	for eq := range eqs {
		o.Eqs = append(o.Eqs, eq)
	}
	sort.Ints(o.Eqs)
	return
}

// Apply modifies K, M and F of sys. Applying it more than once has no further effect
func (o *EssentialBcs) Apply(sys *System) {
	for _, eq := range o.Eqs {
		for k := 0; k < sys.Dim; k++ {
			sys.K.Set(eq, k, 0)
			sys.K.Set(k, eq, 0)
			sys.M.Set(eq, k, 0)
			sys.M.Set(k, eq, 0)
		}
		sys.K.Set(eq, eq, 1)
		sys.M.Set(eq, eq, 1)
		sys.F.SetVec(eq, 0)
	}
}
