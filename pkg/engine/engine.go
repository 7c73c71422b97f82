// Package engine orchestrates frequency assignment runs: it executes the
// requested coloring algorithms on a graph, evaluates each result, and
// picks the best assignment.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/DrSkyle/spectra/pkg/engine/coloring"
	"github.com/DrSkyle/spectra/pkg/engine/metrics"
	"github.com/DrSkyle/spectra/pkg/graph"
	"github.com/DrSkyle/spectra/pkg/telemetry"
	"github.com/DrSkyle/spectra/pkg/version"
)

// Config holds engine settings.
type Config struct {
	// Algorithms to run, by name. Empty means all registered algorithms.
	Algorithms []string

	JsonLogs bool

	// Telemetry config.
	OtelEndpoint  string // "http://localhost:4318" or via env
	SkipTelemetry bool   // Set true if embedding in an app that already has OTEL

	// Dependencies.
	Logger *slog.Logger
}

// RunResult is one algorithm's outcome on a graph.
type RunResult struct {
	Algorithm string
	Elapsed   time.Duration
	Summary   metrics.Summary
}

// Comparison holds the results of every requested algorithm. Best indexes
// the winner: fewest colors, ties broken by shorter elapsed time.
type Comparison struct {
	Runs []RunResult
	Best int
}

// BestRun returns the winning result.
func (c *Comparison) BestRun() RunResult {
	return c.Runs[c.Best]
}

// Engine is the runtime core.
type Engine struct {
	Logger *slog.Logger
	Tracer trace.Tracer

	config Config
}

// Option defines a functional configuration override.
type Option func(*Engine)

// New initializes the Engine.
func New(ctx context.Context, opts ...Option) (*Engine, error) {
	e := &Engine{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
		Tracer: otel.Tracer("spectra/engine"),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.config.JsonLogs {
		e.Logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	if !e.config.SkipTelemetry {
		shutdown, err := telemetry.Init(ctx, version.AppName, version.Current, e.config.OtelEndpoint)
		if err != nil {
			e.Logger.Warn("Telemetry failed", "error", err)
		} else {
			_ = shutdown
		}
	}

	return e, nil
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.Logger = l
	}
}

// WithConfig sets raw config.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.config = cfg
		if cfg.Logger != nil {
			e.Logger = cfg.Logger
		}
	}
}

// resolve maps names to algorithms, defaulting to every registered one.
func resolve(names []string) ([]coloring.Algorithm, error) {
	if len(names) == 0 {
		return coloring.All(), nil
	}
	algos := make([]coloring.Algorithm, 0, len(names))
	for _, name := range names {
		a, err := coloring.ByName(name)
		if err != nil {
			return nil, err
		}
		algos = append(algos, a)
	}
	return algos, nil
}

// Compare runs every configured algorithm on the graph and evaluates each
// coloring. The graph is left holding the last run's assignment; callers
// that export should Apply the winner first.
func (e *Engine) Compare(ctx context.Context, g *graph.Graph) (*Comparison, error) {
	return e.CompareAlgorithms(ctx, g, e.config.Algorithms)
}

// CompareAlgorithms is Compare with an explicit algorithm list; an empty
// list falls back to the engine's configured set.
func (e *Engine) CompareAlgorithms(ctx context.Context, g *graph.Graph, names []string) (*Comparison, error) {
	ctx, span := e.Tracer.Start(ctx, "Engine.Compare")
	defer span.End()

	if len(names) == 0 {
		names = e.config.Algorithms
	}
	algos, err := resolve(names)
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{Runs: make([]RunResult, 0, len(algos))}
	for _, algo := range algos {
		run := e.run(ctx, g, algo)
		cmp.Runs = append(cmp.Runs, run)
	}

	for i, run := range cmp.Runs {
		best := cmp.Runs[cmp.Best]
		if run.Summary.ChromaticNumber < best.Summary.ChromaticNumber ||
			(run.Summary.ChromaticNumber == best.Summary.ChromaticNumber && run.Elapsed < best.Elapsed) {
			cmp.Best = i
		}
	}

	span.SetAttributes(
		attribute.Int("graph.nodes", g.NumNodes()),
		attribute.Int("graph.edges", g.NumEdges()),
		attribute.String("compare.best", cmp.BestRun().Algorithm),
	)
	return cmp, nil
}

// Apply runs a single named algorithm, leaving its assignment on the graph.
func (e *Engine) Apply(ctx context.Context, g *graph.Graph, name string) (RunResult, error) {
	algo, err := coloring.ByName(name)
	if err != nil {
		return RunResult{}, err
	}
	return e.run(ctx, g, algo), nil
}

func (e *Engine) run(ctx context.Context, g *graph.Graph, algo coloring.Algorithm) RunResult {
	_, span := e.Tracer.Start(ctx, fmt.Sprintf("Color.%s", algo.Name()))
	defer span.End()

	res := algo.Color(g)
	summary := metrics.Summarize(g)

	span.SetAttributes(
		attribute.Int("coloring.colors", summary.ChromaticNumber),
		attribute.Int("coloring.conflicts", summary.Conflicts),
		attribute.Int64("coloring.elapsed_us", res.Elapsed.Microseconds()),
	)

	e.Logger.Info("coloring pass finished",
		"algorithm", algo.Name(),
		"colors", summary.ChromaticNumber,
		"conflicts", summary.Conflicts,
		"elapsed", res.Elapsed,
	)
	if summary.Conflicts > 0 {
		// Never expected: a conflicting assignment is an algorithm defect.
		e.Logger.Error("coloring produced conflicts",
			"algorithm", algo.Name(),
			"conflicts", summary.Conflicts,
		)
	}

	return RunResult{
		Algorithm: algo.Name(),
		Elapsed:   res.Elapsed,
		Summary:   summary,
	}
}
