// SPDX-License-Identifier: MIT
// Package: woc/report
//
// series.go - data behind the Sullivan plot.
//
// Input is one (π, D, S) triple per vertex. Triples are ordered by π, then
// D, then S. From that order:
//   - Curve is the π step function over the cumulative proportion of
//     vertices: for every distinct π it steps up at the share of vertices
//     with a smaller π.
//   - Bars has one bar per distinct (π, S, D): left edge at the running
//     proportion, width equal to the share of vertices with that (S, D),
//     height S, coloured by D.
//   - Legend lists the distinct D values.

package report

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Sentinel errors.
var (
	// ErrLengthMismatch is returned when the π, D and S slices differ in length.
	ErrLengthMismatch = errors.New("report: pis, ds and ses must have equal length")

	// ErrEmptyInput is returned when there are no triples.
	ErrEmptyInput = errors.New("report: no values")
)

// Point is one vertex of the π curve.
type Point struct {
	X float64 `json:"x"`
	Y int     `json:"y"`
}

// Bar is one S bar. Shade maps D into (0,1) over [min(D)-1, max(D)+1].
type Bar struct {
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Height int     `json:"height"`
	Pi     int     `json:"pi"`
	D      int     `json:"d"`
	Shade  float64 `json:"shade"`
}

// LegendEntry labels one D colour.
type LegendEntry struct {
	D     int     `json:"d"`
	Label string  `json:"label"`
	Shade float64 `json:"shade"`
}

// Series is the complete plot data.
type Series struct {
	Total  int           `json:"total"`
	Curve  []Point       `json:"curve"`
	Bars   []Bar         `json:"bars"`
	Legend []LegendEntry `json:"legend"`
}

type triple struct{ pi, d, s int }

// NewSeries builds the plot data from parallel π, D and S slices.
//
// Errors:
//   - ErrLengthMismatch if the lengths differ.
//   - ErrEmptyInput if they are empty.
func NewSeries(pis, ds, ses []int) (*Series, error) {
	if len(pis) != len(ds) || len(ds) != len(ses) {
		return nil, fmt.Errorf("%w: got %d, %d, %d", ErrLengthMismatch, len(pis), len(ds), len(ses))
	}
	if len(pis) == 0 {
		return nil, ErrEmptyInput
	}

	z := make([]triple, len(pis))
	for i := range pis {
		z[i] = triple{pi: pis[i], d: ds[i], s: ses[i]}
	}
	sort.Slice(z, func(i, j int) bool {
		a, b := z[i], z[j]
		if a.pi != b.pi {
			return a.pi < b.pi
		}
		if a.d != b.d {
			return a.d < b.d
		}
		return a.s < b.s
	})

	total := float64(len(z))
	shade := shader(ds)
	s := &Series{Total: len(z)}

	// π curve.
	s.Curve = append(s.Curve, Point{})
	cumulative := 0.0
	for i := 0; i < len(z); {
		j := i
		for j < len(z) && z[j].pi == z[i].pi {
			j++
		}
		prev := s.Curve[len(s.Curve)-1].Y
		s.Curve = append(s.Curve, Point{X: cumulative, Y: prev}, Point{X: cumulative, Y: z[i].pi})
		cumulative += float64(j-i) / total
		i = j
	}
	s.Curve = append(s.Curve, Point{X: 1, Y: z[len(z)-1].pi})

	// S bars.
	type sd struct{ s, d int }
	groups := make(map[sd]int)
	for _, t := range z {
		groups[sd{t.s, t.d}]++
	}
	seen := make(map[triple]bool)
	cumulative = 0
	for _, t := range z {
		if seen[t] {
			continue
		}
		seen[t] = true
		width := float64(groups[sd{t.s, t.d}]) / total
		s.Bars = append(s.Bars, Bar{X: cumulative, Width: width, Height: t.s, Pi: t.pi, D: t.d, Shade: shade(t.d)})
		cumulative += width
	}

	// D legend.
	distinct := make(map[int]struct{})
	for _, d := range ds {
		distinct[d] = struct{}{}
	}
	for d := range distinct {
		s.Legend = append(s.Legend, LegendEntry{D: d, Label: "D=" + strconv.Itoa(d), Shade: shade(d)})
	}
	sort.Slice(s.Legend, func(i, j int) bool { return s.Legend[i].D < s.Legend[j].D })

	return s, nil
}

// shader normalizes D over [min-1, max+1].
func shader(ds []int) func(int) float64 {
	lo, hi := ds[0], ds[0]
	for _, d := range ds[1:] {
		lo = min(lo, d)
		hi = max(hi, d)
	}
	lo, hi = lo-1, hi+1

	return func(d int) float64 { return float64(d-lo) / float64(hi-lo) }
}
