package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmetric/netsimplex"
	"github.com/flowmetric/netsimplex/internal/solverconfig"
)

func TestReadProblemFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "problem.json")
	body := `{"node_count":2,"supply":[1,-1],"arcs":[{"Source":0,"Target":1,"Cost":3,"Capacity":1e18}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	p, err := readProblem([]string{path})
	require.NoError(t, err)
	assert.Equal(t, 2, p.NodeCount)
	assert.Equal(t, []float64{1, -1}, p.Supply)
	require.Len(t, p.Arcs, 1)
	assert.Equal(t, 0, p.Arcs[0].Source)
	assert.Equal(t, 1, p.Arcs[0].Target)
}

func TestReadProblemMissingFile(t *testing.T) {
	_, err := readProblem([]string{"/nonexistent/problem.json"})
	assert.Error(t, err)
}

func TestReadProblemInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := readProblem([]string{path})
	assert.Error(t, err)
}

func TestReportMetricsLogsASnapshot(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := solverconfig.MetricsConfig{Enabled: true, Namespace: "netsimplex", Subsystem: "solver"}
	result := netsimplex.Result{Status: netsimplex.StatusOptimal, Stats: netsimplex.Stats{Pivots: 2}, Iterations: 2}

	reportMetrics(cfg, result, 0.01, logger)

	out := buf.String()
	assert.Contains(t, out, "metrics snapshot")
	assert.Contains(t, out, "netsimplex_solver_pivots_total")
}
