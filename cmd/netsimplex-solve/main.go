// Package main is the command-line entry point for the netsimplex solver.
//
// It reads a transportation problem (node count, supplies, and arcs) as
// JSON from stdin or a file argument, runs Solve, and prints the resulting
// flow, node potentials, status, and stats as JSON on stdout.
//
// Configuration is loaded the same way the library's ambient stack loads
// it everywhere else: defaults, then an optional config.yaml, then
// NETSIMPLEX_-prefixed environment variables (see internal/solverconfig).
//
// Usage:
//
//	netsimplex-solve problem.json
//	cat problem.json | netsimplex-solve
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/flowmetric/netsimplex"
	"github.com/flowmetric/netsimplex/internal/obslog"
	"github.com/flowmetric/netsimplex/internal/obsmetrics"
	"github.com/flowmetric/netsimplex/internal/solverconfig"
)

// problem is the on-disk JSON shape accepted by this CLI. It is a thin
// wrapper around netsimplex.New's arguments, not part of the library API.
type problem struct {
	NodeCount int              `json:"node_count"`
	Supply    []float64        `json:"supply"`
	Arcs      []netsimplex.Arc `json:"arcs"`
}

func main() {
	cfg, err := solverconfig.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "netsimplex-solve: config: %v\n", err)
		os.Exit(1)
	}

	logger := obslog.New(obslog.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})

	if err := run(cfg, logger); err != nil {
		logger.Error("solve failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *solverconfig.Config, logger *slog.Logger) error {
	p, err := readProblem(os.Args[1:])
	if err != nil {
		return err
	}

	options := cfg.Solver.ToOptions()
	solver, err := netsimplex.New(p.NodeCount, p.Supply, p.Arcs, &options)
	if err != nil {
		return fmt.Errorf("building solver: %w", err)
	}

	start := time.Now()
	result := solver.Solve(context.Background(), logger)
	duration := time.Since(start)

	if solveErr := result.Err(); solveErr != nil {
		logger.Warn("solve did not reach optimal", "code", solveErr.Code, "error", solveErr)
	}

	if cfg.Metrics.Enabled {
		reportMetrics(cfg.Metrics, result, duration.Seconds(), logger)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// reportMetrics records one Solve call against a fresh Collector and logs
// the gathered Prometheus families as a metrics snapshot. This CLI runs
// one Solve call and exits, so there is no long-lived /metrics endpoint to
// scrape the way the teacher's services expose one via promhttp.Handler;
// logging the snapshot is this binary's substitute scrape target.
func reportMetrics(cfg solverconfig.MetricsConfig, result netsimplex.Result, durationSeconds float64, logger *slog.Logger) {
	collector := obsmetrics.New(cfg.Namespace, cfg.Subsystem)
	collector.Observe(result, durationSeconds)

	reg := prometheus.NewRegistry()
	if err := reg.Register(collector); err != nil {
		logger.Warn("metrics: failed to register collector", "error", err)
		return
	}

	families, err := reg.Gather()
	if err != nil {
		logger.Warn("metrics: failed to gather", "error", err)
		return
	}

	var buf bytes.Buffer
	for _, f := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, f); err != nil {
			logger.Warn("metrics: failed to encode family", "error", err)
			return
		}
	}

	logger.Info("metrics snapshot", "namespace", cfg.Namespace, "subsystem", cfg.Subsystem, "metrics", buf.String())
}

func readProblem(args []string) (problem, error) {
	var r io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return problem{}, fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	}

	var p problem
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return problem{}, fmt.Errorf("decoding problem: %w", err)
	}
	return p, nil
}
