package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-reportes/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("REPORT_STORE", "postgres")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 60*time.Second, cfg.Report.CacheTTL())
	assert.True(t, cfg.Report.AllowUnknownOwner)
	assert.False(t, cfg.Redis.Enabled())
	assert.Empty(t, cfg.Report.AllowedRoles)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REPORT_STORE", "FILE")
	t.Setenv("REPORT_TIMEZONE", "Zona/Inexistente")
	t.Setenv("REPORT_CACHE_TTL_SECONDS", "abc")
	t.Setenv("REPORT_ALLOW_UNKNOWN_OWNER", "false")
	t.Setenv("REPORT_ALLOWED_ROLES", "admin, contador,,")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, config.StoreFile, cfg.Report.Store)
	assert.Equal(t, time.UTC, cfg.Report.Location(), "zona inválida cae en UTC")
	assert.Equal(t, 60, cfg.Report.CacheTTLSeconds, "un entero ilegible usa el valor por defecto")
	assert.False(t, cfg.Report.AllowUnknownOwner)
	assert.Equal(t, []string{"admin", "contador"}, cfg.Report.AllowedRoles)
}

func TestLoad_AlmacenInvalido(t *testing.T) {
	t.Setenv("REPORT_STORE", "mongo")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaContrasena(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "rep", SSLMode: "disable"}

	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/rep?sslmode=disable", c.DSN())
	assert.Equal(t, "postgres://x", config.DBConfig{DatabaseURL: "postgres://x"}.ConnectionString())
}
