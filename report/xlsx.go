// SPDX-License-Identifier: MIT
// Package: woc/report
//
// xlsx.go - spreadsheet export of scores and plot data.

package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/woc/crowd"
)

// Sheet names written by WriteXLSX.
const (
	SheetScores  = "Scores"
	SheetPiCurve = "PiCurve"
	SheetBars    = "Bars"
)

// WriteXLSX writes a workbook with three sheets to w: per-vertex scores, the
// π curve and the S bars (with the D legend beside them). scores may be nil.
func WriteXLSX(w io.Writer, s *Series, scores []crowd.Score) error {
	if s == nil {
		return ErrEmptyInput
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetScores); err != nil {
		return fmt.Errorf("report: rename sheet: %w", err)
	}
	for _, name := range []string{SheetPiCurve, SheetBars} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("report: new sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("report: header style: %w", err)
	}

	rows := make([][]interface{}, 0, len(scores))
	for _, sc := range scores {
		rows = append(rows, []interface{}{sc.Vertex, sc.S, sc.D, sc.Pi, sc.H})
	}
	if err = writeTable(f, SheetScores, header, []interface{}{"Vertex", "S", "D", "Pi", "H"}, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, p := range s.Curve {
		rows = append(rows, []interface{}{p.X, p.Y})
	}
	if err = writeTable(f, SheetPiCurve, header, []interface{}{"Proportion", "Pi"}, rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, b := range s.Bars {
		rows = append(rows, []interface{}{b.X, b.Width, b.Height, b.Pi, b.D, b.Shade})
	}
	if err = writeTable(f, SheetBars, header, []interface{}{"X", "Width", "S", "Pi", "D", "Shade"}, rows); err != nil {
		return err
	}
	for i, l := range s.Legend {
		cell, _ := excelize.CoordinatesToCellName(8, i+2)
		if err = f.SetSheetRow(SheetBars, cell, &[]interface{}{l.Label, l.Shade}); err != nil {
			return fmt.Errorf("report: legend row: %w", err)
		}
	}
	if err = f.SetSheetRow(SheetBars, "H1", &[]interface{}{"Legend", "Shade"}); err != nil {
		return fmt.Errorf("report: legend header: %w", err)
	}

	if _, err = f.WriteTo(w); err != nil {
		return fmt.Errorf("report: write workbook: %w", err)
	}

	return nil
}

func writeTable(f *excelize.File, sheet string, style int, head []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("report: %s header: %w", sheet, err)
	}
	last, _ := excelize.CoordinatesToCellName(len(head), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("report: %s header style: %w", sheet, err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("report: %s row %d: %w", sheet, i+2, err)
		}
	}

	return nil
}
