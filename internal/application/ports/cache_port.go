package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-reportes/internal/application/dto"
)

// ReportCache puerto de salida para el cache de reportes calculados.
// Un error del cache nunca debe impedir responder: el caso de uso lo registra
// y recalcula.
type ReportCache interface {
	Get(ctx context.Context, key string) (*dto.ReportDTO, bool, error)
	Set(ctx context.Context, key string, value *dto.ReportDTO, ttl time.Duration) error
}
