// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements cross-sections and reference materials for frame elements
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Kind defines the kind of cross-section
type Kind int

const (
	KindBox  Kind = iota // thin-walled rectangular box
	KindTube             // thin-walled circular tube
)

// String returns the key used in input files
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindTube:
		return "tube"
	}
	return "unknown"
}

// ParseKind returns the cross-section kind corresponding to key
func ParseKind(key string) (Kind, error) {
	switch key {
	case "box":
		return KindBox, nil
	case "tube":
		return KindTube, nil
	}
	return 0, chk.Err("cross-section type %q is unavailable. options are \"box\" and \"tube\"", key)
}

// Props holds the properties of a cross-section that are used by beam elements
//
//           y2 (local z)
//            ^
//            |       Iy -- second moment about local y (bending in x-z plane)
//     +------|------+ Iz -- second moment about local z (bending in x-y plane)
//     |  +---|---+  | J  -- torsional constant
//     |  |   o---|--|--> y1 (local y)
//     |  +-------+  | Q  -- first moment used for transverse shear
//     +-------------+
//
type Props struct {
	A  float64 // cross-sectional area
	Iy float64 // second moment of area about local y-axis
	Iz float64 // second moment of area about local z-axis
	J  float64 // torsional constant
	Q  float64 // first moment of area
}

// CrossSection defines cross-sections with fixed geometry
type CrossSection interface {
	Kind() Kind   // the kind of section
	Props() Props // area, second moments, torsional constant and first moment
}

// Box implements a thin-walled rectangular box cross-section
//
//          tweb -->| |<--
//           +-------------+ ---
//           |#############|  | tcap
//           |#+---------+#| ---
//           |#|         |#|
//           |#|         |#|  h = Height
//           |#+---------+#|
//           |#############|
//           +-------------+
//              w = Width
//
type Box struct {
	Width  float64 // outer width
	Height float64 // outer height
	Tweb   float64 // thickness of vertical webs
	Tcap   float64 // thickness of horizontal caps
}

// Kind returns KindBox
func (o Box) Kind() Kind { return KindBox }

// Props computes the box properties
func (o Box) Props() (p Props) {
	w, h := o.Width, o.Height
	wi, hi := w-2.0*o.Tweb, h-2.0*o.Tcap
	p.A = w*h - wi*hi
	p.Iy = (w*h*h*h - wi*hi*hi*hi) / 12.0
	p.Iz = (w*w*w*h - wi*wi*wi*hi) / 12.0
	p.J = (w*h*(h*h+w*w) - wi*hi*(hi*hi+wi*wi)) / 12.0
	p.Q = (p.A / 2.0) * (h / 4.0)
	return
}

// Tube implements a thin-walled circular tube cross-section
type Tube struct {
	Radius float64 // outer radius
	Thick  float64 // wall thickness
}

// Kind returns KindTube
func (o Tube) Kind() Kind { return KindTube }

// Props computes the tube properties
func (o Tube) Props() (p Props) {
	r2 := o.Radius
	r1 := o.Radius - o.Thick
	r22, r12 := r2*r2, r1*r1
	p.A = math.Pi * (r22 - r12)
	p.Iy = math.Pi * (r22*r22 - r12*r12) / 4.0
	p.Iz = p.Iy
	p.J = p.Iy + p.Iz
	p.Q = 2.0 * (r22*r2 - r12*r1) / 3.0
	return
}

// Profile holds the geometric parameters of a cross-section at each node of a beam.
// Element sections are obtained by averaging the parameters of the two nodes of the element.
type Profile struct {
	Kind   Kind      // kind of cross-section
	Width  []float64 // [nnodes] box: outer width
	Height []float64 // [nnodes] box: outer height
	Tweb   []float64 // [nnodes] box: web thickness
	Tcap   []float64 // [nnodes] box: cap thickness
	Radius []float64 // [nnodes] tube: outer radius
	Thick  []float64 // [nnodes] tube: wall thickness
}

// Check checks that all nodal arrays required by Kind have nnodes entries
// with non-negative values and that walls fit inside the outer dimensions
func (o *Profile) Check(nnodes int) (err error) {
	need := func(key string, vals []float64) error {
		if len(vals) != nnodes {
			return chk.Err("%s section: %q must have %d nodal values. %d is incorrect", o.Kind, key, nnodes, len(vals))
		}
		for i, v := range vals {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return chk.Err("%s section: %q at node %d is invalid (%g)", o.Kind, key, i, v)
			}
		}
		return nil
	}
	switch o.Kind {
	case KindBox:
		for _, f := range []struct {
			key  string
			vals []float64
		}{{"width", o.Width}, {"height", o.Height}, {"tweb", o.Tweb}, {"tcap", o.Tcap}} {
			if err = need(f.key, f.vals); err != nil {
				return
			}
		}
		for i := 0; i < nnodes; i++ {
			if 2.0*o.Tweb[i] > o.Width[i] || 2.0*o.Tcap[i] > o.Height[i] {
				return chk.Err("box section: walls at node %d are thicker than the section", i)
			}
		}
	case KindTube:
		if err = need("radius", o.Radius); err != nil {
			return
		}
		if err = need("thick", o.Thick); err != nil {
			return
		}
		for i := 0; i < nnodes; i++ {
			if o.Thick[i] > o.Radius[i] {
				return chk.Err("tube section: thickness at node %d is larger than the radius", i)
			}
		}
	default:
		return chk.Err("cross-section kind %d is unavailable", o.Kind)
	}
	return
}

// Scale multiplies all length-valued parameters by sf; e.g. to convert units
func (o *Profile) Scale(sf float64) {
	for _, vals := range [][]float64{o.Width, o.Height, o.Tweb, o.Tcap, o.Radius, o.Thick} {
		for i := range vals {
			vals[i] *= sf
		}
	}
}

// Element returns the cross-section of element i, i.e. between nodes i and i+1
func (o *Profile) Element(i int) CrossSection {
	avg := func(v []float64) float64 { return (v[i] + v[i+1]) / 2.0 }
	if o.Kind == KindTube {
		return Tube{Radius: avg(o.Radius), Thick: avg(o.Thick)}
	}
	return Box{Width: avg(o.Width), Height: avg(o.Height), Tweb: avg(o.Tweb), Tcap: avg(o.Tcap)}
}
