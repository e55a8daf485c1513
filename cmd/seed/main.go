// seed carga un directorio de snapshot (un archivo JSON por colección, el
// mismo formato que REPORT_STORE=file) en la tabla report_documents.
//
// Uso: go run ./cmd/seed [directorio]
// Por defecto usa REPORT_SNAPSHOT_PATH.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/filestore"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-reportes/pkg/config"
	"github.com/jhoicas/Inventario-reportes/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Name: "seed"})

	dir := cfg.Report.SnapshotPath
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, err := filestore.NewSnapshotRepository(dir, log)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("abrir directorio")
	}
	raw, err := source.ReadRaw(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("leer colecciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema report_documents")
	}

	written, err := postgres.NewDocumentWriter(pool).Import(ctx, raw)
	if err != nil {
		log.Fatal().Err(err).Msg("importar documentos")
	}
	log.Info().
		Str("dir", dir).
		Int("read", raw.Len()).
		Int("written", written).
		Msg("carga completada")
}
