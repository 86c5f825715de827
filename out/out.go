// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of frame analysis results
package out

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// LoadKeys holds the names of the 12 local end loads of one element
var LoadKeys = []string{
	"N1", "Vy1", "Vz1", "T1", "My1", "Mz1",
	"N2", "Vy2", "Vz2", "T2", "My2", "Mz2",
}

// BeamResults holds the results of one beam
type BeamResults struct {
	Name     string      `json:"name"`     // name of beam
	X        [][]float64 `json:"x"`        // [nnodes][3] nodal coordinates
	Disp     [][]float64 `json:"disp"`     // [nnodes][3] translations
	Rot      [][]float64 `json:"rot"`      // [nnodes][3] rotations
	Deformed [][]float64 `json:"deformed"` // [nnodes][3] coordinates of displaced nodes
	Loads    [][]float64 `json:"loads"`    // [nelems][12] end loads in the local system; see LoadKeys
	Stress   [][]float64 `json:"stress"`   // [nelems][6] nominal stresses; see StressKeys
	MaxDisp  float64     `json:"maxdisp"`  // largest norm of nodal translations
	MaxRot   float64     `json:"maxrot"`   // largest norm of nodal rotations
	MaxSig   float64     `json:"maxsig"`   // largest |sN| + sM computed with BeamStress
	MaxFail  float64     `json:"maxfail"`  // largest failure index at extreme fibres; zero if strength is unknown
}

// Summary holds the results of one analysis in a form ready to be written
type Summary struct {
	Key      string         `json:"key"`      // frame key
	Desc     string         `json:"desc"`     // description
	Mode     string         `json:"mode"`     // "static" or "residual"
	Nnodes   int            `json:"nnodes"`   // number of unique nodes
	Dim      int            `json:"dim"`      // number of equations
	MaxR     float64        `json:"maxr"`     // max|R|
	Mass     float64        `json:"mass"`     // total mass
	Cg       []float64      `json:"cg"`       // [3] centre of gravity
	Inertia  [][]float64    `json:"inertia"`  // [3][3] inertia tensor about the origin
	Beams    []*BeamResults `json:"beams"`    // results of each beam
	Residual []float64      `json:"residual"` // [dim] R
}

// NewSummary collects the results in sol and computes stresses with sr
//  sr -- stress recoverer; e.g. BeamStress{}. may be nil
func NewSummary(key, desc string, sol *fem.Solution, sr fem.StressRecoverer) (o *Summary, err error) {
	if sol == nil {
		chk.Panic("NewSummary: solution is not available")
	}
	o = &Summary{
		Key:      key,
		Desc:     desc,
		Mode:     sol.Mode,
		Nnodes:   sol.Dmap.Nnodes,
		Dim:      sol.Dmap.Dim,
		MaxR:     sol.ResidualNorm(),
		Residual: sol.R,
	}
	if sol.Mass != nil {
		o.Mass = sol.Mass.Mass
		o.Cg = sol.Mass.Cg
		o.Inertia = sol.Mass.I
	}
	var stress map[string][][]float64
	if sr != nil {
		stress, err = sol.Stress(sr)
		if err != nil {
			return nil, err
		}
	}
	for ib, beam := range sol.Beams {
		res := &BeamResults{
			Name:     beam.Name,
			X:        beam.X,
			Disp:     sol.Disp(ib),
			Rot:      sol.Rotations(ib),
			Deformed: sol.Deformed(ib),
			Loads:    sol.ElementLoads(ib),
			Stress:   stress[beam.Name],
		}
		res.MaxDisp = maxNorm(res.Disp)
		res.MaxRot = maxNorm(res.Rot)
		for _, s := range res.Stress {
			if len(s) != len(StressKeys) {
				continue
			}
			res.MaxSig = math.Max(res.MaxSig, math.Max(math.Abs(s[0])+s[1], math.Abs(s[3])+s[4]))
			for k := 0; k < 2; k++ {
				sN, sM, tV := s[3*k], s[3*k+1], s[3*k+2]
				fi := math.Max(beam.Material.FailureIndex(sN+sM, tV), beam.Material.FailureIndex(sN-sM, tV))
				res.MaxFail = math.Max(res.MaxFail, fi)
			}
		}
		o.Beams = append(o.Beams, res)
	}
	return
}

// WriteJSON writes the summary to dirout/key.json and returns the full filename
func (o *Summary) WriteJSON(dirout string) (fn string, err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", chk.Err("cannot encode summary:\n%v", err)
	}
	fn, err = filename(dirout, o.Key, ".json")
	if err != nil {
		return
	}
	err = os.WriteFile(fn, b, 0644)
	if err != nil {
		return "", chk.Err("cannot write file %q:\n%v", fn, err)
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// filename creates dirout if necessary and returns dirout/key+ext
func filename(dirout, key, ext string) (fn string, err error) {
	if key == "" {
		return "", chk.Err("key of output file must not be empty")
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create output directory %q:\n%v", dirout, err)
	}
	return filepath.Join(dirout, key+ext), nil
}

// maxNorm returns the largest Euclidean norm among rows of v
func maxNorm(v [][]float64) (res float64) {
	for _, row := range v {
		if n := floats.Norm(row, 2); n > res {
			res = n
		}
	}
	return
}
