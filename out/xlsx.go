// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/xuri/excelize/v2"
)

// sheet names
const (
	SheetSummary = "summary"
	SheetDisp    = "displacements"
	SheetLoads   = "loads"
	SheetStress  = "stress"
)

// WriteXlsx writes the summary to the spreadsheet dirout/key.xlsx and returns the full filename.
//  sheets:
//   summary       -- global data, mass properties and max|R|
//   displacements -- one row per beam node: beam, node, x, y, z, ux, uy, uz, rx, ry, rz
//   loads         -- one row per element: beam, element and the 12 local end loads
//   stress        -- one row per element: beam, element and the stresses; only if available
func (o *Summary) WriteXlsx(dirout string) (fn string, err error) {

	f := excelize.NewFile()
	defer f.Close()

	// summary
	rows := [][]interface{}{
		{"key", o.Key},
		{"desc", o.Desc},
		{"mode", o.Mode},
		{"nnodes", o.Nnodes},
		{"dim", o.Dim},
		{"max|R|", o.MaxR},
		{"mass", o.Mass},
	}
	if len(o.Cg) == 3 {
		rows = append(rows, []interface{}{"cg", o.Cg[0], o.Cg[1], o.Cg[2]})
	}
	for i, row := range o.Inertia {
		rows = append(rows, []interface{}{"I" + "xyz"[i:i+1], row[0], row[1], row[2]})
	}
	err = addSheet(f, SheetSummary, nil, rows)
	if err != nil {
		return
	}

	// displacements
	header := []interface{}{"beam", "node", "x", "y", "z", "ux", "uy", "uz", "rx", "ry", "rz"}
	rows = nil
	for _, beam := range o.Beams {
		for i := range beam.X {
			row := []interface{}{beam.Name, i}
			for _, v := range [][]float64{beam.X[i], beam.Disp[i], beam.Rot[i]} {
				row = append(row, v[0], v[1], v[2])
			}
			rows = append(rows, row)
		}
	}
	err = addSheet(f, SheetDisp, header, rows)
	if err != nil {
		return
	}

	// element loads
	header = []interface{}{"beam", "element"}
	for _, key := range LoadKeys {
		header = append(header, key)
	}
	rows = nil
	for _, beam := range o.Beams {
		for e, fl := range beam.Loads {
			row := []interface{}{beam.Name, e}
			for _, v := range fl {
				row = append(row, v)
			}
			rows = append(rows, row)
		}
	}
	err = addSheet(f, SheetLoads, header, rows)
	if err != nil {
		return
	}

	// stresses
	rows = nil
	width := 0
	for _, beam := range o.Beams {
		for e, vals := range beam.Stress {
			row := []interface{}{beam.Name, e}
			for _, v := range vals {
				row = append(row, v)
			}
			rows = append(rows, row)
			if len(vals) > width {
				width = len(vals)
			}
		}
	}
	if len(rows) > 0 {
		header = []interface{}{"beam", "element"}
		for i := 0; i < width; i++ {
			if width == len(StressKeys) {
				header = append(header, StressKeys[i])
			} else {
				header = append(header, io.Sf("s%d", i))
			}
		}
		err = addSheet(f, SheetStress, header, rows)
		if err != nil {
			return
		}
	}

	// default sheet is not needed
	err = f.DeleteSheet("Sheet1")
	if err != nil {
		return "", chk.Err("cannot delete default sheet:\n%v", err)
	}

	// save
	fn, err = filename(dirout, o.Key, ".xlsx")
	if err != nil {
		return
	}
	err = f.SaveAs(fn)
	if err != nil {
		return "", chk.Err("cannot save spreadsheet %q:\n%v", fn, err)
	}
	return
}

// addSheet adds a sheet with an optional header followed by rows
func addSheet(f *excelize.File, name string, header []interface{}, rows [][]interface{}) (err error) {
	idx, err := f.NewSheet(name)
	if err != nil {
		return chk.Err("cannot add sheet %q:\n%v", name, err)
	}
	if name == SheetSummary {
		f.SetActiveSheet(idx)
	}
	if header != nil {
		rows = append([][]interface{}{header}, rows...)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return chk.Err("cannot compute cell name:\n%v", err)
		}
		err = f.SetSheetRow(name, cell, &row)
		if err != nil {
			return chk.Err("cannot write row %d of sheet %q:\n%v", i, name, err)
		}
	}
	return
}
