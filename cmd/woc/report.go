package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/woc/prune"
	"github.com/katalvlaran/woc/report"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		out      string
		doPrune  bool
		vertices []string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Score every vertex and export the Sullivan plot data as XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			if doPrune {
				if g, err = prune.Iteratively(g, a.pruneOptions()...); err != nil {
					return err
				}
			}
			scores, err := a.scoreVertices(cmd.Context(), g, vertices, a.cfg.Workers)
			if err != nil {
				return err
			}

			pis := make([]int, len(scores))
			ds := make([]int, len(scores))
			ses := make([]int, len(scores))
			for i, s := range scores {
				pis[i], ds[i], ses[i] = s.Pi, s.D, s.S
			}
			series, err := report.NewSeries(pis, ds, ses)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("woc: create %s: %w", out, err)
			}
			if err = report.WriteXLSX(f, series, scores); err != nil {
				f.Close()
				return err
			}
			if err = f.Close(); err != nil {
				return err
			}

			labels := make([]string, 0, len(series.Legend))
			for _, l := range series.Legend {
				labels = append(labels, l.Label)
			}
			_, err = fmt.Fprintf(a.stdout, "wrote %s: %d vertices, %d bars, legend %s\n",
				out, series.Total, len(series.Bars), strings.Join(labels, ", "))

			return err
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "XLSX output file")
	cmd.Flags().BoolVar(&doPrune, "prune", false, "prune the graph with the prune config first")
	cmd.Flags().StringSliceVar(&vertices, "vertex", nil, "vertex to include (repeatable; default all)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
