package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-reportes/internal/application/reporting"
	"github.com/jhoicas/Inventario-reportes/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportUC  *reporting.ReportUseCase
	ExportUC  *reporting.ExportUseCase
	JWTSecret string

	// AllowedRoles roles con acceso a /api; vacío = cualquier token válido.
	AllowedRoles []string
	AppName      string
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(deps.AllowedRoles...))

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.ExportUC, deps.Log)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/hourly", reportHandler.Hourly)
	reports.Get("/debtors", reportHandler.Debtors)
	reports.Get("/export", reportHandler.Export)

	// Recibos
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.ReportUC, deps.Log)
	invoices.Get("/:id/text", invoiceHandler.Text)
}
