package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-reportes/internal/application/dto"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/cache"
)

func TestNoopReportCache(t *testing.T) {
	c := cache.NoopReportCache{}
	require.NoError(t, c.Set(context.Background(), "k", &dto.ReportDTO{RunID: "x"}, time.Minute))

	got, ok, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRedisReportCache_SkipsWithoutTTL(t *testing.T) {
	// Sin TTL ni valor no se toca la red: no hace falta un Redis levantado.
	c := cache.NewRedisReportCache("127.0.0.1:1", "", 0)
	defer c.Close()

	assert.NoError(t, c.Set(context.Background(), "k", &dto.ReportDTO{RunID: "x"}, 0))
	assert.NoError(t, c.Set(context.Background(), "k", nil, time.Minute))
}

func TestRedisReportCache_Unreachable(t *testing.T) {
	c := cache.NewRedisReportCache("127.0.0.1:1", "", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))
	_, ok, err := c.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)
}
