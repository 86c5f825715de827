// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/goframe/ana"
)

// Beam holds the data of one beam: an ordered sequence of nodes connected by elements
//
//   node:    0        1        2             N-1
//            o--------o--------o--- ... ------o
//   element:     0        1                N-2
//
type Beam struct {

	// input
	Name      string      `json:"name"`      // name of beam
	Mat       string      `json:"mat"`       // material name
	Cs        string      `json:"cs"`        // cross-section type: "box" or "tube"
	Units     string      `json:"units"`     // unit of length; overrides the global one if not empty
	Nodes     [][]float64 `json:"nodes"`     // [nnodes][3] nodal coordinates
	Width     []float64   `json:"width"`     // [nnodes] box: outer width
	Height    []float64   `json:"height"`    // [nnodes] box: outer height
	Tweb      []float64   `json:"tweb"`      // [nnodes] box: web thickness
	Tcap      []float64   `json:"tcap"`      // [nnodes] box: cap thickness
	Radius    []float64   `json:"radius"`    // [nnodes] tube: outer radius
	Thick     []float64   `json:"thick"`     // [nnodes] tube: wall thickness
	Loads     [][]float64 `json:"loads"`     // [nnodes][6] optional applied forces and moments
	ExtraMass []float64   `json:"extramass"` // [nnodes] optional extra point mass at nodes
	Bcs       []int       `json:"bcs"`       // local indices of clamped nodes

	// input or derived
	Material *ana.Material `json:"-"` // material; found in database using Mat if nil
	Profile  *ana.Profile  `json:"-"` // nodal cross-section parameters; built from the arrays above if nil

	// derived
	X     [][]float64  `json:"-"` // [nnodes][3] nodal coordinates in meters
	Prof  *ana.Profile `json:"-"` // nodal cross-section parameters in meters
	ready bool         // Init was successful
}

// Nnodes returns the number of nodes
func (o *Beam) Nnodes() int { return len(o.Nodes) }

// Nelems returns the number of elements
func (o *Beam) Nelems() int { return len(o.Nodes) - 1 }

// Init resolves the material, builds the profile, converts units and checks data
//  mats  -- materials database; may be nil if Material is set
//  units -- unit of length used if o.Units is empty
func (o *Beam) Init(mats map[string]*ana.Material, units string) (err error) {
	o.ready = false

	// units
	if o.Units != "" {
		units = o.Units
	}
	sf, err := LengthFactor(units)
	if err != nil {
		return
	}

	// nodes
	nn := len(o.Nodes)
	if nn < 2 {
		return configErr("beam %q must have at least 2 nodes. %d is invalid", o.Name, nn)
	}
	o.X = make([][]float64, nn)
	for i, x := range o.Nodes {
		if len(x) != 3 || !finite(x) {
			return configErr("beam %q: coordinates of node %d are invalid: %v", o.Name, i, x)
		}
		o.X[i] = []float64{sf * x[0], sf * x[1], sf * x[2]}
	}

	// material
	if o.Material == nil {
		mat, ok := mats[o.Mat]
		if !ok {
			return configErr("beam %q: cannot find material %q", o.Name, o.Mat)
		}
		o.Material = mat
	}

	// profile
	var prof ana.Profile
	if o.Profile != nil {
		prof = *o.Profile
	} else {
		prof.Kind, err = ana.ParseKind(o.Cs)
		if err != nil {
			return configErr("beam %q: %v", o.Name, err)
		}
		prof.Width, prof.Height, prof.Tweb, prof.Tcap = o.Width, o.Height, o.Tweb, o.Tcap
		prof.Radius, prof.Thick = o.Radius, o.Thick
	}
	prof.Width, prof.Height = clone(prof.Width), clone(prof.Height)
	prof.Tweb, prof.Tcap = clone(prof.Tweb), clone(prof.Tcap)
	prof.Radius, prof.Thick = clone(prof.Radius), clone(prof.Thick)
	if err = prof.Check(nn); err != nil {
		return configErr("beam %q: %v", o.Name, err)
	}
	prof.Scale(sf)
	o.Prof = &prof

	// loads and masses
	if o.Loads != nil {
		if len(o.Loads) != nn {
			return configErr("beam %q: loads must have %d rows. %d is incorrect", o.Name, nn, len(o.Loads))
		}
		for i, f := range o.Loads {
			if len(f) != 6 || !finite(f) {
				return configErr("beam %q: loads at node %d must have 6 finite components: %v", o.Name, i, f)
			}
		}
	}
	if o.ExtraMass != nil {
		if len(o.ExtraMass) != nn || !finite(o.ExtraMass) {
			return configErr("beam %q: extra mass must have %d finite values", o.Name, nn)
		}
	}
	for _, node := range o.Bcs {
		if node < 0 || node >= nn {
			return configErr("beam %q: boundary condition node %d is out of range", o.Name, node)
		}
	}
	o.ready = true
	return
}

// clone returns a copy of v
func clone(v []float64) []float64 {
	if v == nil {
		return nil
	}
	return append([]float64{}, v...)
}
