package obslog_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowmetric/netsimplex/internal/obslog"
)

func TestDefaultConfigProducesJSONLogger(t *testing.T) {
	cfg := obslog.DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)

	logger := obslog.New(cfg)
	require.NotNil(t, logger)
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	cfg := obslog.Config{Level: "not-a-level", Format: "json", Output: "stdout"}
	logger := obslog.New(cfg)
	assert.False(t, logger.Enabled(nil, slog.LevelDebug))
	assert.True(t, logger.Enabled(nil, slog.LevelInfo))
}

func TestTextFormatProducesNonJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("hello", "key", "value")

	var out map[string]any
	assert.Error(t, json.Unmarshal(buf.Bytes(), &out), "text handler output should not parse as JSON")
}

func TestJSONHandlerProducesParsableOutput(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, nil)
	logger := slog.New(handler)
	logger.Info("hello", "key", "value")

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "hello", out["msg"])
	assert.Equal(t, "value", out["key"])
}
