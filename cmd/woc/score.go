package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/woc/core"
	"github.com/katalvlaran/woc/crowd"
	"github.com/katalvlaran/woc/prune"
)

type scoreFlags struct {
	vertices []string
	output   string
	workers  int
	prune    bool
}

func newScoreCmd(a *app) *cobra.Command {
	var f scoreFlags
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute S, D, pi and h for vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.output != "text" && f.output != "json" {
				return fmt.Errorf("woc: --output must be text or json, got %q", f.output)
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			if f.prune {
				if g, err = prune.Iteratively(g, a.pruneOptions()...); err != nil {
					return err
				}
			}
			workers := a.cfg.Workers
			if cmd.Flags().Changed("workers") {
				workers = f.workers
			}
			scores, err := a.scoreVertices(cmd.Context(), g, f.vertices, workers)
			if err != nil {
				return err
			}

			return writeScores(a.stdout, f.output, scores)
		},
	}
	cmd.Flags().StringSliceVar(&f.vertices, "vertex", nil, "vertex to score (repeatable; default all)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "text", "text | json")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "parallel engines (default from config)")
	cmd.Flags().BoolVar(&f.prune, "prune", false, "prune the graph with the prune config first")

	return cmd
}

// scoreVertices evaluates ids (all vertices when empty) on up to workers
// goroutines. Each worker owns an Engine; g is only read. Results keep the
// order of ids.
func (a *app) scoreVertices(ctx context.Context, g *core.Graph, ids []string, workers int) ([]crowd.Score, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(ids) == 0 {
		ids = g.Vertices()
	}
	if workers < 1 {
		workers = 1
	}
	workers = min(workers, max(len(ids), 1))

	ctx, span := a.tracer().Start(ctx, "woc.score",
		trace.WithAttributes(
			attribute.String("run_id", a.runID),
			attribute.Int("vertices", len(ids)),
			attribute.Int("workers", workers)))
	defer span.End()

	out := make([]crowd.Score, len(ids))
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			return a.scoreStripe(ctx, g, ids, out, w, workers)
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	a.log.Info("woc: scored", slog.Int("vertices", len(ids)), slog.Int("workers", workers))

	return out, nil
}

// scoreStripe scores ids[w], ids[w+stride], ... into out.
func (a *app) scoreStripe(ctx context.Context, g *core.Graph, ids []string, out []crowd.Score, w, stride int) error {
	_, span := a.tracer().Start(ctx, "woc.score.worker", trace.WithAttributes(attribute.Int("worker", w)))
	defer span.End()

	e, err := a.newEngine(g)
	if err != nil {
		return err
	}
	n := 0
	for i := w; i < len(ids); i += stride {
		if err = ctx.Err(); err != nil {
			return err
		}
		sc, err := e.ScoresUpTo(ids[i], a.cfg.Engine.MaxH)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("woc: score %q: %w", ids[i], err)
		}
		out[i] = sc
		n++
	}
	span.SetAttributes(attribute.Int("scored", n))

	return nil
}

func writeScores(w io.Writer, format string, scores []crowd.Score) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(scores)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERTEX\tS\tD\tPI\tH")
	for _, s := range scores {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", s.Vertex, s.S, s.D, s.Pi, s.H)
	}

	return tw.Flush()
}
