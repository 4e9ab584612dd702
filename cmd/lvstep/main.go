// Command lvstep loads (or generates) a weighted graph, drives the stepping
// Dijkstra engine over it and prints the shortest-distance report.
//
//	lvstep -graph city.yaml -source A
//	lvstep -generate grid:4x4 -seed 3 -steps 10 -trace
//	lvstep -generate random:12:0.3 -dump yaml > fixture.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/lvstep/bfs"
	"github.com/katalvlaran/lvstep/builder"
	"github.com/katalvlaran/lvstep/core"
	"github.com/katalvlaran/lvstep/dijkstra"
	"github.com/katalvlaran/lvstep/graphio"
	"github.com/katalvlaran/lvstep/internal/config"
	"github.com/katalvlaran/lvstep/internal/logging"
	"github.com/katalvlaran/lvstep/observe"
)

const tracerName = "github.com/katalvlaran/lvstep"

var errUsage = errors.New("lvstep: usage")

type flags struct {
	config     string
	graph      string
	generate   string
	seed       int64
	undirected bool
	source     string
	steps      int
	trace      bool
	order      string
	dump       string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("lvstep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "config file path (TOML)")
	fs.StringVar(&f.graph, "graph", "", "graph document (.yaml, .yml or .toml)")
	fs.StringVar(&f.generate, "generate", "", "generate a fixture instead of loading one: path:N, cycle:N, star:N, complete:N, grid:RxC, random:N:P")
	fs.Int64Var(&f.seed, "seed", 1, "seed for -generate")
	fs.BoolVar(&f.undirected, "undirected", false, "make the -generate fixture undirected")
	fs.StringVar(&f.source, "source", "", "source vertex (overrides config and document)")
	fs.IntVar(&f.steps, "steps", 0, "step budget; 0 runs to completion")
	fs.BoolVar(&f.trace, "trace", false, "log every step")
	fs.StringVar(&f.order, "order", "", "pending edge order: weight, target or id")
	fs.StringVar(&f.dump, "dump", "", "write the graph as yaml or toml to stdout and exit")
	if err := fs.Parse(args); err != nil {
		return f, err
	}

	if (f.graph == "") == (f.generate == "") {
		return f, fmt.Errorf("%w: exactly one of -graph or -generate is required", errUsage)
	}
	if f.steps < 0 {
		return f, fmt.Errorf("%w: -steps must be >= 0", errUsage)
	}
	if f.dump != "" && f.dump != "yaml" && f.dump != "toml" {
		return f, fmt.Errorf("%w: -dump must be yaml or toml", errUsage)
	}

	return f, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.order != "" {
		cfg.Engine.EdgeOrder = f.order
	}
	if f.trace {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := logging.NewWithWriter(cfg.Logging, stderr)

	g, docSource, err := loadGraph(f)
	if err != nil {
		return err
	}

	source := firstNonEmpty(f.source, cfg.Engine.Source, docSource)
	if source == "" && f.generate != "" {
		if vs := g.Vertices(); len(vs) > 0 {
			source = vs[0]
		}
	}

	if f.dump != "" {
		doc := graphio.FromGraph(g, source)
		if f.dump == "toml" {
			return graphio.EncodeTOML(stdout, doc)
		}
		return graphio.EncodeYAML(stdout, doc)
	}

	registry := prometheus.NewRegistry()
	tracer := observe.NewTraceObserver(otel.Tracer(tracerName))
	opts := append(cfg.EngineOptions(),
		dijkstra.WithObserver(observe.NewLogObserver(logger)),
		dijkstra.WithObserver(observe.NewMetrics(registry)),
		dijkstra.WithObserver(tracer),
	)

	e, err := dijkstra.New(g, source, opts...)
	if err != nil {
		return err
	}
	reach, err := bfs.BFS(g, source, bfs.WithContext(ctx))
	if err != nil {
		return err
	}
	logger.Info("engine ready",
		slog.String("run_id", e.RunID()),
		slog.String("source", source),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("reachable", len(reach.Order)),
		slog.Int("edges", g.EdgeCount()),
		slog.String("edge_order", cfg.Engine.EdgeOrder),
	)

	budget := f.steps
	if budget == 0 {
		budget = -1
	}
	tracer.Start(ctx, e.RunID(), source)
	_, err = dijkstra.NewRunner(e, dijkstra.RunnerCallbacks{}).RunSteps(ctx, budget)
	tracer.End(err)
	if err != nil {
		return err
	}

	if !e.Done() {
		v, _ := e.CurrentVertex()
		fmt.Fprintf(stdout, "paused after %d steps: next=%s vertex=%s unvisited=%d\n",
			e.Steps(), e.Phase(), v, len(e.Unvisited()))
	}
	if _, err := e.Result().WriteTo(stdout); err != nil {
		return err
	}

	if cfg.Metrics.Addr != "" {
		return serveMetrics(ctx, cfg.Metrics, registry, logger)
	}

	return nil
}

func loadGraph(f flags) (*core.Graph, string, error) {
	if f.graph != "" {
		doc, g, err := graphio.LoadGraph(f.graph)
		if err != nil {
			return nil, "", err
		}
		return g, doc.Source, nil
	}

	ctor, err := builder.ParseFixture(f.generate)
	if err != nil {
		return nil, "", err
	}
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(!f.undirected), core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(f.seed), builder.WithIntWeight(1, 9), builder.WithExcelColumnIDs()},
		ctor,
	)
	if err != nil {
		return nil, "", err
	}

	return g, "", nil
}

// serveMetrics exposes the run's metrics until ctx is cancelled.
func serveMetrics(ctx context.Context, cfg config.MetricsConfig, registry *prometheus.Registry, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("lvstep: metrics listener: %w", err)
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	logger.Info("serving metrics", slog.String("addr", ln.Addr().String()), slog.String("path", cfg.Path))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
