// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Material holds the elastic constants and density of an isotropic material.
// Units are SI: E and G in Pa and Rho in kg/m³
type Material struct {
	Name string  `json:"name"` // name of material; e.g. "aluminum"
	Desc string  `json:"desc"` // description
	E    float64 `json:"E"`    // Young's modulus
	G    float64 `json:"G"`    // shear modulus
	Nu   float64 `json:"nu"`   // Poisson's coefficient
	Rho  float64 `json:"rho"`  // density

	// strength; all zero if unknown
	Ft  float64 `json:"Ft"`  // tensile strength
	Fc  float64 `json:"Fc"`  // compressive strength (positive value)
	F12 float64 `json:"F12"` // shear strength
}

// Init initialises material with the parameters of a reference material
//  typ -- "aluminum", "steel", "titanium" or "carbon"
func (o *Material) Init(typ string) (err error) {
	switch typ {
	case "aluminum":
		o.Desc = "Aluminum: 7075-T6"
		o.E = 69e9
		o.G = 26e9
		o.Nu = 0.33
		o.Rho = 2700
	case "steel":
		o.Desc = "Steel: structural A36"
		o.E = 200e9
		o.Nu = 0.32
		o.Rho = 7850
	case "titanium":
		o.Desc = "Titanium: Ti-6Al-4V"
		o.E = 113.8e9
		o.Nu = 0.342
		o.Rho = 4430
	case "carbon":
		o.Desc = "Carbon/epoxy: quasi-isotropic laminate"
		o.E = 54e9
		o.G = 21e9
		o.Rho = 1600
	default:
		return chk.Err("material type %q is unavailable", typ)
	}
	if o.Name == "" {
		o.Name = typ
	}
	return o.PostProcess()
}

// PostProcess computes the missing elastic constant and checks values.
// G is computed from E and ν if zero; ν is computed from E and G if zero.
func (o *Material) PostProcess() (err error) {
	if o.E <= 0 || math.IsNaN(o.E) {
		return chk.Err("material %q: Young's modulus must be positive. E = %g is invalid", o.Name, o.E)
	}
	if o.Rho < 0 {
		return chk.Err("material %q: density must not be negative. rho = %g is invalid", o.Name, o.Rho)
	}
	switch {
	case o.G > 0 && o.Nu == 0:
		o.Nu = o.E/(2.0*o.G) - 1.0
	case o.G == 0 && o.Nu != 0:
		o.G = o.E / (2.0 * (1.0 + o.Nu))
	case o.G <= 0:
		return chk.Err("material %q is underdefined: G or nu must be given", o.Name)
	}
	if o.Nu <= -1.0 || o.Nu >= 0.5 {
		return chk.Err("material %q: Poisson's coefficient %g is out of range (-1, 0.5)", o.Name, o.Nu)
	}
	if o.Ft != 0 || o.Fc != 0 || o.F12 != 0 {
		if !(o.Ft > 0 && o.Fc > 0 && o.F12 > 0) {
			return chk.Err("material %q: strength is underdefined: Ft, Fc and F12 must all be positive", o.Name)
		}
	}
	return
}

// HasStrength returns whether Ft, Fc and F12 are given
func (o *Material) HasStrength() bool {
	return o.Ft > 0 && o.Fc > 0 && o.F12 > 0
}

// FailureIndex returns max(σ/Ft, -σ/Fc, |τ|/F12) for a normal stress σ and a shear stress τ.
// It returns zero if the strength is unknown
func (o *Material) FailureIndex(σ, τ float64) float64 {
	if !o.HasStrength() {
		return 0
	}
	fi := math.Abs(τ) / o.F12
	if σ >= 0 {
		return math.Max(fi, σ/o.Ft)
	}
	return math.Max(fi, -σ/o.Fc)
}

// Compliance returns the 6x6 isotropic compliance matrix C such that ε = C・σ
// (Voigt notation with tensorial shear strains: C[i][i] = (1+ν)/E = 1/(2G) for i ≥ 3)
func (o *Material) Compliance() (C [][]float64) {
	C = make([][]float64, 6)
	for i := 0; i < 6; i++ {
		C[i] = make([]float64, 6)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			C[i][j] = -o.Nu / o.E
		}
		C[i][i] = 1.0 / o.E
		C[3+i][3+i] = (1.0 + o.Nu) / o.E
	}
	return
}

// String returns a one-line representation of material
func (o *Material) String() string {
	return io.Sf("%s: E=%g G=%g nu=%g rho=%g", o.Name, o.E, o.G, o.Nu, o.Rho)
}
