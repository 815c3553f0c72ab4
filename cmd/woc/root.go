package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/woc/config"
	"github.com/katalvlaran/woc/core"
	"github.com/katalvlaran/woc/crowd"
	"github.com/katalvlaran/woc/prune"
)

const tracerName = "github.com/katalvlaran/woc/cmd/woc"

// app carries everything a command needs once flags are parsed.
type app struct {
	stdout, stderr io.Writer
	tp             trace.TracerProvider

	configPath string
	graphPath  string
	dataset    string

	cfg      *config.Config
	log      *slog.Logger
	runID    string
	registry *prometheus.Registry
	metrics  *crowd.Metrics
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, tp: otel.GetTracerProvider()}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "woc",
		Short:         "Wisdom-of-crowds vulnerability scores for information-flow graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			a.logMetrics()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (defaults, then file, then WOC_* env)")
	pf.StringVar(&a.graphPath, "graph", "", "YAML graph file")
	pf.StringVar(&a.dataset, "dataset", "", "built-in graph: florentine | florentine-undirected (default florentine)")

	root.AddCommand(newScoreCmd(a), newObserverCmd(a), newPruneCmd(a), newReportCmd(a))

	return root
}

// execute runs root and reports a failure on stderr.
func execute(root *cobra.Command, a *app) error {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(a.stderr, "woc:", err)
	}
	return err
}

// setup loads configuration, the logger and, if enabled, the metrics registry.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.runID = uuid.NewString()
	a.log = cfg.Log.NewLogger(a.stderr).With(slog.String("run_id", a.runID))

	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		if a.metrics, err = crowd.NewMetrics(a.registry, cfg.Metrics.Namespace); err != nil {
			return err
		}
	}
	a.log.Debug("woc: configured",
		slog.Int("max_m", cfg.Engine.MaxM),
		slog.String("node_key", cfg.Engine.NodeKey),
		slog.Int("workers", cfg.Workers),
		slog.Bool("metrics", cfg.Metrics.Enabled))

	return nil
}

// loadGraph returns the --graph file or the --dataset graph.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.graphPath != "" && a.dataset != "" {
		return nil, errors.New("woc: --graph and --dataset are mutually exclusive")
	}
	key := a.cfg.Engine.NodeKey
	if a.graphPath != "" {
		g, err := readGraphFile(a.graphPath, key)
		if err != nil {
			return nil, err
		}
		a.log.Info("woc: graph loaded", slog.String("path", a.graphPath),
			slog.Int("vertices", g.VertexCount()), slog.Int("edges", g.EdgeCount()))
		return g, nil
	}
	name := a.dataset
	if name == "" {
		name = datasetFlorentine
	}

	return buildDataset(name, key)
}

// pruneOptions maps the prune config section onto prune options.
func (a *app) pruneOptions() []prune.Option {
	pc := a.cfg.Prune
	opts := []prune.Option{
		prune.WithThreshold(pc.Threshold),
		prune.WithWeightKey(pc.WeightKey),
		prune.WithLogger(a.log),
	}
	if pc.WeightThreshold != nil {
		opts = append(opts, prune.WithWeightThreshold(*pc.WeightThreshold))
	}

	return opts
}

// newEngine builds an Engine from the engine config section.
func (a *app) newEngine(g *core.Graph) (*crowd.Engine, error) {
	return crowd.New(g,
		crowd.WithMaxM(a.cfg.Engine.MaxM),
		crowd.WithNodeKey(a.cfg.Engine.NodeKey),
		crowd.WithLogger(a.log),
		crowd.WithMetrics(a.metrics),
	)
}

func (a *app) tracer() trace.Tracer { return a.tp.Tracer(tracerName) }

// logMetrics writes every collected counter at Info level.
func (a *app) logMetrics() {
	if a.registry == nil {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		a.log.Warn("woc: gather metrics", slog.Any("err", err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{slog.String("name", mf.GetName()), slog.Float64("value", m.GetCounter().GetValue())}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, slog.String(lp.GetName(), lp.GetValue()))
			}
			a.log.Info("woc: metric", attrs...)
		}
	}
}
