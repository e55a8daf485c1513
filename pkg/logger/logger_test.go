package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-reportes/pkg/logger"
)

func TestNew_JSONConNivelYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "WARN", Name: "reportes", Output: &buf})

	l.Info().Msg("descartado")
	l.Component("report").Warn().Str("tenant", "shop-1").Msg("cache no disponible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "reportes", entry["app"])
	assert.Equal(t, "report", entry["component"])
	assert.Equal(t, "shop-1", entry["tenant"])
	assert.Equal(t, "cache no disponible", entry["message"])
}

func TestNop_NoEscribe(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("nada") })
}
