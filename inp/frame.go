// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.frm) JSON file
package inp

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/goframe/ana"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

var (
	// ErrConfig indicates malformed or incomplete input data
	ErrConfig = errors.New("configuration error")

	// ErrUnits indicates an unsupported unit of length
	ErrUnits = errors.New("unit mismatch")
)

// configErr returns an error wrapping ErrConfig
func configErr(msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfig, io.Sf(msg, prm...))
}

// Data holds global data for frame analyses
type Data struct {
	Desc       string  `json:"desc"`       // description of analysis
	Units      string  `json:"units"`      // unit of length of all length-valued input: "m", "meters", "ft" or "feet"
	DirOut     string  `json:"dirout"`     // directory for output; e.g. /tmp/goframe
	Mode       string  `json:"mode"`       // "static" (solve K・U = F) or "residual" (evaluate K・U + M・Ü - F)
	FullTensor bool    `json:"fulltensor"` // compute Ixy and Iyz products of inertia as well
	Nworkers   int     `json:"nworkers"`   // number of goroutines computing element matrices; ≤ 1 means serial
	MaxCond    float64 `json:"maxcond"`    // maximum condition number of K accepted by the static solver
}

// SetDefault sets default values
func (o *Data) SetDefault() {
	o.Units = "m"
	o.Mode = "static"
	o.Nworkers = 1
	o.MaxCond = 1e16
}

// Joint holds a set of (beam, node) pairs that coincide in space
type Joint struct {
	Name  string   `json:"name"`  // name of joint
	Beams []string `json:"beams"` // names of beams
	Nodes []int    `json:"nodes"` // local node index in each beam
}

// Bc holds a clamped (beam, node) pair; all six DOFs of the node are fixed
type Bc struct {
	Beam string `json:"beam"` // name of beam
	Node int    `json:"node"` // local node index
}

// Frame holds all frame data
type Frame struct {

	// input
	Data      Data            `json:"data"`      // global data
	Materials []*ana.Material `json:"materials"` // materials database
	Beams     []*Beam         `json:"beams"`     // all beams
	Joints    []*Joint        `json:"joints"`    // all joints
	Bcs       []*Bc           `json:"bcs"`       // boundary conditions in addition to the ones in beams
	Acc       []float64       `json:"acc"`       // [6] optional global acceleration: 3 linear + 3 angular
	U         []float64       `json:"u"`         // [dim] displacements for residual mode
	Uddot     []float64       `json:"uddot"`     // [dim] accelerations for residual mode

	// derived
	Key  string                   // frame key; e.g. wing.frm => wing
	Dir  string                   // directory of frame file
	Mats map[string]*ana.Material // name => material
}

// ReadFrame reads all frame data from a .frm JSON file
func ReadFrame(framefilepath string) (o *Frame, err error) {

	// read file; io.ReadFile panics on failure
	b, err := os.ReadFile(framefilepath)
	if err != nil {
		return nil, chk.Err("ReadFrame: cannot read frame file %q:\n%v", framefilepath, err)
	}

	// set default values
	o = new(Frame)
	o.Data.SetDefault()

	// environment defaults
	o.Dir = os.ExpandEnv(filepath.Dir(framefilepath))
	o.Key = io.FnKey(filepath.Base(framefilepath))
	env, err := LoadEnv(o.Dir)
	if err != nil {
		return nil, err
	}
	env.Apply(&o.Data)

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, configErr("ReadFrame: cannot unmarshal frame file %q: %v", framefilepath, err)
	}

	// output directory
	if o.Data.DirOut == "" {
		o.Data.DirOut = filepath.Join(os.TempDir(), "goframe", o.Key)
	}

	// derived data
	err = o.PostProcess()
	return
}

// PostProcess resolves materials, converts units and checks all data
func (o *Frame) PostProcess() (err error) {

	// materials
	o.Mats = make(map[string]*ana.Material)
	for _, m := range o.Materials {
		if _, dup := o.Mats[m.Name]; dup {
			return configErr("material %q is defined more than once", m.Name)
		}
		if err = m.PostProcess(); err != nil {
			return configErr("%v", err)
		}
		o.Mats[m.Name] = m
	}

	// beams
	for _, beam := range o.Beams {
		if err = beam.Init(o.Mats, o.Data.Units); err != nil {
			return
		}
	}

	// check mode and acceleration
	switch o.Data.Mode {
	case "static":
	case "residual":
		if len(o.U) == 0 || len(o.U) != len(o.Uddot) {
			return configErr("residual mode requires \"u\" and \"uddot\" with the same length. %d != %d", len(o.U), len(o.Uddot))
		}
	default:
		return configErr("mode %q is invalid. options are \"static\" and \"residual\"", o.Data.Mode)
	}
	if o.Acc != nil && len(o.Acc) != 6 {
		return configErr("acceleration must have 6 components. %d is incorrect", len(o.Acc))
	}

	// check topology
	return Check(o.Beams, o.Joints, o.AllBcs())
}

// AllBcs returns the boundary conditions given in frame and in beams
func (o *Frame) AllBcs() (bcs []*Bc) {
	bcs = append(bcs, o.Bcs...)
	for _, beam := range o.Beams {
		for _, node := range beam.Bcs {
			bcs = append(bcs, &Bc{Beam: beam.Name, Node: node})
		}
	}
	return
}

// Check checks beams, joints and boundary conditions before assembly
//  Note: all beams must have been initialised with Beam.Init
func Check(beams []*Beam, joints []*Joint, bcs []*Bc) (err error) {
	if len(beams) == 0 {
		return configErr("empty beam set")
	}
	if len(bcs) == 0 {
		return configErr("no boundary conditions specified")
	}
	name2beam := make(map[string]*Beam)
	for _, beam := range beams {
		if !beam.ready {
			return configErr("beam %q has not been initialised", beam.Name)
		}
		if _, dup := name2beam[beam.Name]; dup {
			return configErr("beam %q is defined more than once", beam.Name)
		}
		name2beam[beam.Name] = beam
	}
	for _, jnt := range joints {
		if len(jnt.Beams) != len(jnt.Nodes) {
			return configErr("joint %q: number of beams and nodes must be equal. %d != %d", jnt.Name, len(jnt.Beams), len(jnt.Nodes))
		}
		if len(jnt.Beams) == 0 {
			return configErr("joint %q has no members", jnt.Name)
		}
		for i, name := range jnt.Beams {
			beam, ok := name2beam[name]
			if !ok {
				return configErr("joint %q: cannot find beam %q", jnt.Name, name)
			}
			if jnt.Nodes[i] < 0 || jnt.Nodes[i] >= beam.Nnodes() {
				return configErr("joint %q: node %d is out of range in beam %q with %d nodes", jnt.Name, jnt.Nodes[i], name, beam.Nnodes())
			}
		}
	}
	for _, bc := range bcs {
		beam, ok := name2beam[bc.Beam]
		if !ok {
			return configErr("boundary condition: cannot find beam %q", bc.Beam)
		}
		if bc.Node < 0 || bc.Node >= beam.Nnodes() {
			return configErr("boundary condition: node %d is out of range in beam %q with %d nodes", bc.Node, bc.Beam, beam.Nnodes())
		}
	}
	return
}

// LengthFactor returns the factor converting lengths given in units to meters
func LengthFactor(units string) (float64, error) {
	switch units {
	case "m", "meters", "":
		return 1.0, nil
	case "ft", "feet":
		return 0.304, nil
	}
	return 0, fmt.Errorf("%w: unit of length %q is not supported. options are \"m\" and \"ft\"", ErrUnits, units)
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
