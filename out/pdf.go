// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/phpdave11/gofpdf"
)

// NumFmt is the number format used in reports
var NumFmt = "%.6g"

// WritePdf writes a one-page report with the summary to dirout/key.pdf and returns the full filename
func (o *Summary) WritePdf(dirout string) (fn string, err error) {

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Frame analysis: "+o.Key))
	pdf.Ln(12)
	if o.Desc != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(o.Desc), "", "L", false)
		pdf.Ln(4)
	}

	// global results
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		io.Sf("mode: %s", o.Mode),
		io.Sf("unique nodes: %d  equations: %d", o.Nnodes, o.Dim),
		io.Sf("max|R|: "+NumFmt, o.MaxR),
		io.Sf("mass: "+NumFmt, o.Mass),
	}
	if len(o.Cg) == 3 {
		lines = append(lines, io.Sf("cg: ("+NumFmt+", "+NumFmt+", "+NumFmt+")", o.Cg[0], o.Cg[1], o.Cg[2]))
	}
	for i, row := range o.Inertia {
		lines = append(lines, io.Sf("I%c: "+NumFmt+"  "+NumFmt+"  "+NumFmt, "xyz"[i], row[0], row[1], row[2]))
	}
	for _, l := range lines {
		pdf.Cell(0, 6, l)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// beams table
	widths := []float64{50, 20, 40, 40, 40}
	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range []string{"beam", "nodes", "max |u|", "max |rot|", "max sig"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, beam := range o.Beams {
		cells := []string{
			tr(beam.Name),
			io.Sf("%d", len(beam.X)),
			io.Sf(NumFmt, beam.MaxDisp),
			io.Sf(NumFmt, beam.MaxRot),
			io.Sf(NumFmt, beam.MaxSig),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	// save
	fn, err = filename(dirout, o.Key, ".pdf")
	if err != nil {
		return
	}
	err = pdf.OutputFileAndClose(fn)
	if err != nil {
		return "", chk.Err("cannot write report %q:\n%v", fn, err)
	}
	return
}
