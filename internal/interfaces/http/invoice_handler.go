package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-reportes/internal/application/reporting"
	"github.com/jhoicas/Inventario-reportes/pkg/logger"
)

// InvoiceHandler recibo de texto de un pedido (protegido).
type InvoiceHandler struct {
	reports *reporting.ReportUseCase
	log     *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(reports *reporting.ReportUseCase, log *logger.Logger) *InvoiceHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceHandler{reports: reports, log: log}
}

// Text recibo de ancho fijo listo para imprimir.
// GET /api/invoices/:id/text
func (h *InvoiceHandler) Text(c *fiber.Ctx) error {
	tenant, ok := GetTenant(c)
	if !ok {
		return unauthorized(c)
	}
	text, err := h.reports.InvoiceText(c.UserContext(), tenant, c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}
