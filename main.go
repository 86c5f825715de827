// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/goframe/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".frm", true)
	verbose := io.ArgToBool(1, true)
	withXlsx := io.ArgToBool(2, false)
	withPdf := io.ArgToBool(3, false)
	doprof := io.ArgToInt(4, 0)
	if doprof < 0 || doprof > 2 {
		doprof = 0
	}

	// message
	if verbose {
		io.PfWhite("\nGoframe -- Go linear finite element analysis of 3D frames\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"write spreadsheet", "withXlsx", withXlsx,
			"write report", "withPdf", withPdf,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.Prof(doprof == 2, false)()
	}

	// analysis data
	analysis, err := fem.NewMain(fnamepath, verbose)
	if err != nil {
		chk.Panic("cannot load frame:\n%v", err)
	}

	// run analysis
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	frame := analysis.Frame
	sum, err := out.NewSummary(frame.Key, frame.Data.Desc, analysis.Sol, out.BeamStress{})
	if err != nil {
		chk.Panic("cannot collect results:\n%v", err)
	}
	writers := []func(string) (string, error){sum.WriteJSON}
	if withXlsx {
		writers = append(writers, sum.WriteXlsx)
	}
	if withPdf {
		writers = append(writers, sum.WritePdf)
	}
	for _, write := range writers {
		fn, err := write(frame.Data.DirOut)
		if err != nil {
			chk.Panic("cannot write results:\n%v", err)
		}
		if verbose {
			io.Pf("> file <%s> written\n", fn)
		}
	}
}
