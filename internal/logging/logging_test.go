package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONWithServiceAndComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New("debug", "json", &buf), "rpc")

	logger.Info().Str("path", "goals.getGoals").Msg("call")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, ServiceName, entry["service"])
	assert.Equal(t, "rpc", entry["component"])
	assert.Equal(t, "goals.getGoals", entry["path"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewFallsBackToInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("shouting", "json", &buf)

	logger.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Info().Msg("shown")
	assert.NotZero(t, buf.Len())
}
