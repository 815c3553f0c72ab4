// Package report turns per-vertex (π, D, S) scores into the data behind the
// Sullivan plot (a π step curve over the cumulative share of vertices, with
// S bars grouped by (S, D) and coloured by D) and exports it as a workbook.
// It draws nothing itself.
package report
