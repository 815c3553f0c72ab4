package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/woc/prune"
)

func newPruneCmd(a *app) *cobra.Command {
	var (
		out             string
		threshold       int
		weightThreshold float64
		weightKey       string
	)
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Iteratively prune low-degree vertices and light edges; write the result as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fl := cmd.Flags()
			if fl.Changed("threshold") {
				a.cfg.Prune.Threshold = threshold
			}
			if fl.Changed("weight-threshold") {
				a.cfg.Prune.WeightThreshold = &weightThreshold
			}
			if fl.Changed("weight-key") {
				a.cfg.Prune.WeightKey = weightKey
			}

			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			pruned, err := prune.Iteratively(g, a.pruneOptions()...)
			if err != nil {
				return err
			}
			a.log.Info("woc: pruned",
				slog.Int("vertices_before", g.VertexCount()), slog.Int("vertices_after", pruned.VertexCount()),
				slog.Int("edges_before", g.EdgeCount()), slog.Int("edges_after", pruned.EdgeCount()))

			if out == "" {
				return encodeGraph(a.stdout, pruned, a.cfg.Engine.NodeKey)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("woc: create %s: %w", out, err)
			}
			if err = encodeGraph(f, pruned, a.cfg.Engine.NodeKey); err != nil {
				f.Close()
				return err
			}

			return f.Close()
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	cmd.Flags().IntVar(&threshold, "threshold", prune.DefaultThreshold, "cut vertices with degree <= threshold")
	cmd.Flags().Float64Var(&weightThreshold, "weight-threshold", 0, "cut edges with weight <= this value")
	cmd.Flags().StringVar(&weightKey, "weight-key", prune.DefaultWeightKey, "edge attribute read for --weight-threshold")

	return cmd
}
