// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element method solver for frames
package fem

import (
	"time"

	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a frame analysis read from a (.frm) file
type Main struct {
	Frame   *inp.Frame // input data
	Dom     *Domain    // domain
	Sol     *Solution  // solution; available after Run
	ShowMsg bool       // show messages
}

// NewMain returns a new Main structure
//  Input:
//   frmfilepath -- frame (.frm) filename including full path
//   verbose     -- show messages
func NewMain(frmfilepath string, verbose bool) (o *Main, err error) {

	// read input data
	o = new(Main)
	o.ShowMsg = verbose
	o.Frame, err = inp.ReadFrame(frmfilepath)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Frame (.frm) file read\n")
	}

	// allocate domain
	opt := Options{
		FullTensor: o.Frame.Data.FullTensor,
		Nworkers:   o.Frame.Data.Nworkers,
		MaxCond:    o.Frame.Data.MaxCond,
		Verbose:    verbose,
	}
	o.Dom, err = NewDomain(o.Frame.Beams, o.Frame.Joints, o.Frame.AllBcs(), o.Frame.Acc, opt)
	if err != nil {
		return nil, err
	}
	return
}

// Run assembles and solves the system or evaluates the residual, depending on mode
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// assembly
	if o.ShowMsg {
		io.Pf("> Assembling system\n")
	}
	err = o.Dom.Assemble()
	if err != nil {
		return
	}
	err = o.Dom.ApplyBcs()
	if err != nil {
		return
	}

	// solution
	if o.ShowMsg {
		io.Pf("> Running %s analysis\n", o.Frame.Data.Mode)
	}
	if o.Frame.Data.Mode == "residual" {
		o.Sol, err = o.Dom.Residual(o.Frame.U, o.Frame.Uddot)
		return
	}
	o.Sol, err = o.Dom.SolveStatic()
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with cpu time
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
			io.Pf("> max|R| = %g\n", o.Sol.ResidualNorm())
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
