package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-reportes/internal/application/ports"
	"github.com/jhoicas/Inventario-reportes/internal/application/reporting"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
	"github.com/jhoicas/Inventario-reportes/internal/domain/repository"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/cache"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/export"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/filestore"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Inventario-reportes/internal/interfaces/http"
	"github.com/jhoicas/Inventario-reportes/pkg/config"
	"github.com/jhoicas/Inventario-reportes/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Name:  cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Report.Store).
		Str("timezone", cfg.Report.Location().String()).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()

	// Almacén de registros
	var repo repository.SnapshotRepository
	switch cfg.Report.Store {
	case config.StoreFile:
		fileRepo, err := filestore.NewSnapshotRepository(cfg.Report.SnapshotPath, log)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Report.SnapshotPath).Msg("directorio de snapshot")
		}
		repo = fileRepo
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema report_documents")
		}
		repo = postgres.NewSnapshotRepository(pool, log)
	}

	// Cache de reportes (opcional)
	var reportCache ports.ReportCache = cache.NoopReportCache{}
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisReportCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			// Sin Redis el servicio sigue funcionando, solo sin cache.
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, cache desactivado")
			_ = redisCache.Close()
		} else {
			reportCache = redisCache
			defer redisCache.Close()
		}
		cancel()
	}

	policy := report.PolicyAllowUnknownOwner
	if !cfg.Report.AllowUnknownOwner {
		policy = report.PolicyDenyUnknownOwner
	}
	shop := report.ShopInfo{Name: cfg.Shop.Name, Phone: cfg.Shop.Phone, Address: cfg.Shop.Address}

	reportUC := reporting.NewReportUseCase(repo, reportCache, log, reporting.Config{
		Location: cfg.Report.Location(),
		CacheTTL: cfg.Report.CacheTTL(),
		Shop:     shop,
		Policy:   policy,
	})
	exportUC := reporting.NewExportUseCase(reportUC,
		export.CSVWriter{},
		export.XLSXWriter{},
		export.PDFWriter{Author: cfg.Shop.Name},
		export.JSONWriter{},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReportUC:     reportUC,
		ExportUC:     exportUC,
		JWTSecret:    cfg.JWT.Secret,
		AllowedRoles: cfg.Report.AllowedRoles,
		AppName:      cfg.App.Name,
		Log:          log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
