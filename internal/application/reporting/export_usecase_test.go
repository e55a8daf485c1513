package reporting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-reportes/internal/application/dto"
	"github.com/jhoicas/Inventario-reportes/internal/application/reporting"
	"github.com/jhoicas/Inventario-reportes/internal/domain"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

type fakeWriter struct {
	title string
	rows  []report.SummaryRow
	err   error
}

func (w *fakeWriter) Format() string      { return "csv" }
func (w *fakeWriter) ContentType() string { return "text/csv" }
func (w *fakeWriter) Write(title string, rows []report.SummaryRow) ([]byte, error) {
	w.title, w.rows = title, rows
	return []byte("ok"), w.err
}

func TestExport_RenderizaFilasDelRango(t *testing.T) {
	w := &fakeWriter{}
	uc := reporting.NewExportUseCase(newUseCase(newRepo(t), nil), w)

	file, err := uc.Export(context.Background(), shop1,
		dto.ReportQuery{Range: "custom", Start: "2024-03-01", End: "2024-03-10", Mode: "direct"}, "CSV")

	require.NoError(t, err)
	assert.Equal(t, "reporte_20240301_20240310.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, []byte("ok"), file.Body)
	assert.Equal(t, "Reporte financiero 01/03/2024 a 10/03/2024 (ventas directas)", w.title)
	assert.NotEmpty(t, w.rows)
}

func TestExport_FormatoDesconocido(t *testing.T) {
	uc := reporting.NewExportUseCase(newUseCase(newRepo(t), nil), &fakeWriter{})

	_, err := uc.Export(context.Background(), shop1, dto.ReportQuery{}, "docx")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_ErrorDelEscritor(t *testing.T) {
	uc := reporting.NewExportUseCase(newUseCase(newRepo(t), nil), &fakeWriter{err: errors.New("disco lleno")})

	_, err := uc.Export(context.Background(), shop1, dto.ReportQuery{}, "csv")

	assert.Error(t, err)
	assert.False(t, reporting.IsClientError(err))
}
