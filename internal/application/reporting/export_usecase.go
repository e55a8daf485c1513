package reporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-reportes/internal/application/dto"
	"github.com/jhoicas/Inventario-reportes/internal/application/ports"
	"github.com/jhoicas/Inventario-reportes/internal/domain"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

// ExportUseCase genera archivos descargables con las filas de resumen.
type ExportUseCase struct {
	reports *ReportUseCase
	writers map[string]ports.SummaryWriter
}

// NewExportUseCase registra los escritores disponibles por formato.
func NewExportUseCase(reports *ReportUseCase, writers ...ports.SummaryWriter) *ExportUseCase {
	m := make(map[string]ports.SummaryWriter, len(writers))
	for _, w := range writers {
		m[w.Format()] = w
	}
	return &ExportUseCase{reports: reports, writers: m}
}

// Export renderiza el resumen del rango en el formato pedido (csv, xlsx, pdf, json).
func (uc *ExportUseCase) Export(ctx context.Context, tenant report.TenantIdentity, q dto.ReportQuery, format string) (*dto.ExportFileDTO, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "csv"
	}
	w, ok := uc.writers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato de exportación %q no soportado", domain.ErrInvalidInput, format)
	}

	rows, rng, err := uc.reports.SummaryRows(ctx, tenant, q)
	if err != nil {
		return nil, err
	}
	title := exportTitle(rng, report.ParseSaleMode(q.Mode))
	body, err := w.Write(title, rows)
	if err != nil {
		return nil, fmt.Errorf("reporting: export %s: %w", format, err)
	}
	return &dto.ExportFileDTO{
		Filename:    exportFilename(rng, format),
		ContentType: w.ContentType(),
		Body:        body,
	}, nil
}

func exportTitle(rng dto.RangeDTO, mode report.SaleMode) string {
	kind := "ventas normales"
	if mode == report.ModeDirect {
		kind = "ventas directas"
	}
	if !rng.Valid {
		return fmt.Sprintf("Reporte financiero (%s)", kind)
	}
	return fmt.Sprintf("Reporte financiero %s a %s (%s)",
		rng.Start.Format("02/01/2006"), rng.End.Format("02/01/2006"), kind)
}

func exportFilename(rng dto.RangeDTO, format string) string {
	if !rng.Valid {
		return "reporte." + format
	}
	return fmt.Sprintf("reporte_%s_%s.%s", rng.Start.Format("20060102"), rng.End.Format("20060102"), format)
}
