package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-reportes/internal/application/dto"
	"github.com/jhoicas/Inventario-reportes/internal/application/reporting"
	"github.com/jhoicas/Inventario-reportes/pkg/logger"
)

// ReportHandler endpoints de reportes financieros (protegido).
type ReportHandler struct {
	reports *reporting.ReportUseCase
	exports *reporting.ExportUseCase
	log     *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *reporting.ReportUseCase, exports *reporting.ExportUseCase, log *logger.Logger) *ReportHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportHandler{reports: reports, exports: exports, log: log}
}

// Summary reporte completo del rango: métricas, series, pagos y cartera.
// GET /api/reports/summary?range=&start=&end=&mode=
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	tenant, ok := GetTenant(c)
	if !ok {
		return unauthorized(c)
	}
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.reports.Summary(c.UserContext(), tenant, q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Hourly serie por hora de un día.
// GET /api/reports/hourly?day=YYYY-MM-DD&mode=
func (h *ReportHandler) Hourly(c *fiber.Ctx) error {
	tenant, ok := GetTenant(c)
	if !ok {
		return unauthorized(c)
	}
	var q dto.HourlyQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.reports.Hourly(c.UserContext(), tenant, q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Debtors clientes con deuda, paginado.
// GET /api/reports/debtors?limit=&offset=
func (h *ReportHandler) Debtors(c *fiber.Ctx) error {
	tenant, ok := GetTenant(c)
	if !ok {
		return unauthorized(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de paginación inválidos"})
	}
	out, err := h.reports.Debtors(c.UserContext(), tenant, page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Export descarga las filas de resumen.
// GET /api/reports/export?format=csv|xlsx|pdf|json&range=...
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	tenant, ok := GetTenant(c)
	if !ok {
		return unauthorized(c)
	}
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	file, err := h.exports.Export(c.UserContext(), tenant, q, c.Query("format"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Attachment(file.Filename)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Body)
}
