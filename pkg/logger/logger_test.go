package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}

func TestNewWritesServiceAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Service: "storefront", Env: "test", Level: "info", Output: &buf})

	log.Debug("hidden")
	log.Info("cart add", slog.Int("product_id", 1))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "storefront", rec["service"])
	assert.Equal(t, "test", rec["env"])
	assert.Equal(t, "cart add", rec["msg"])
	assert.Equal(t, float64(1), rec["product_id"])
}
