package solverconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmetric/netsimplex/internal/solverconfig"
	"github.com/flowmetric/netsimplex/pricing"
)

func TestLoadDefaultsWithNoFileOrEnv(t *testing.T) {
	cfg, err := solverconfig.NewLoader(solverconfig.WithConfigPaths("/nonexistent/path.yaml")).Load()
	require.NoError(t, err)

	assert.Equal(t, 1e-9, cfg.Solver.Epsilon)
	assert.Equal(t, 10, cfg.Solver.BlockSizeFloor)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "netsimplex", cfg.Metrics.Namespace)
}

func TestLoadFromYAMLFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlBody := "solver:\n  epsilon: 0.001\n  max_iter: 500\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o644))

	cfg, err := solverconfig.NewLoader(solverconfig.WithConfigPaths(path)).Load()
	require.NoError(t, err)

	assert.Equal(t, 0.001, cfg.Solver.Epsilon)
	assert.Equal(t, 500, cfg.Solver.MaxIter)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unrelated defaults remain untouched.
	assert.Equal(t, 10, cfg.Solver.BlockSizeFloor)
}

func TestEnvOverridesFileAndDefaults(t *testing.T) {
	// Env keys map 1:1 onto "."-joined koanf paths (NETSIMPLEX_LOG_LEVEL ->
	// log.level); this only round-trips cleanly for two-segment keys, same
	// as the teacher's loader, so the override used here avoids a
	// single-segment name that itself contains an underscore (e.g.
	// max_iter would collide with the dot-joining scheme).
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))

	t.Setenv("NETSIMPLEX_LOG_LEVEL", "debug")

	cfg, err := solverconfig.NewLoader(solverconfig.WithConfigPaths(path)).Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestToOptionsWiresBlockSizeFloor(t *testing.T) {
	sc := solverconfig.SolverConfig{ArtCost: 7, Epsilon: 1e-6, MaxIter: 42, BlockSizeFloor: 3}
	opts := sc.ToOptions()

	assert.Equal(t, 7.0, opts.ArtCost)
	assert.Equal(t, 1e-6, opts.Epsilon)
	assert.Equal(t, 42, opts.MaxIter)
	require.NotNil(t, opts.PricingStrategy)
	bs, ok := opts.PricingStrategy.(*pricing.BlockSearch)
	require.True(t, ok)
	assert.Equal(t, 3, bs.Floor)
}
