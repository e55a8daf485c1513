// Package cache implementa ports.ReportCache.
package cache

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-reportes/internal/application/dto"
	"github.com/jhoicas/Inventario-reportes/internal/application/ports"
)

var (
	_ ports.ReportCache = NoopReportCache{}
	_ ports.ReportCache = (*RedisReportCache)(nil)
)

// NoopReportCache se usa cuando REDIS_ADDR está vacío: nunca hay hit.
type NoopReportCache struct{}

func (NoopReportCache) Get(_ context.Context, _ string) (*dto.ReportDTO, bool, error) {
	return nil, false, nil
}

func (NoopReportCache) Set(_ context.Context, _ string, _ *dto.ReportDTO, _ time.Duration) error {
	return nil
}
