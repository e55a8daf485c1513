package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Inventario-reportes/internal/application/dto"
)

// RedisReportCache guarda los reportes serializados en JSON.
type RedisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache crea el cliente; no abre conexión hasta el primer comando.
func NewRedisReportCache(addr string, password string, db int) *RedisReportCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisReportCache{client: client}
}

// Ping verifica que Redis responda.
func (c *RedisReportCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (c *RedisReportCache) Close() error {
	return c.client.Close()
}

// Get devuelve el reporte guardado; ok=false si la clave no existe.
func (c *RedisReportCache) Get(ctx context.Context, key string) (*dto.ReportDTO, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var resp dto.ReportDTO
	if err := json.Unmarshal(val, &resp); err != nil {
		return nil, false, err
	}
	return &resp, true, nil
}

// Set guarda el reporte con vencimiento. Con ttl <= 0 no guarda nada: el
// cache queda desactivado por config.
func (c *RedisReportCache) Set(ctx context.Context, key string, value *dto.ReportDTO, ttl time.Duration) error {
	if value == nil || ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}
