package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-reportes/internal/application/reporting"
	"github.com/jhoicas/Inventario-reportes/internal/domain"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
	"github.com/jhoicas/Inventario-reportes/internal/domain/repository"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/cache"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/export"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/filestore"
	apphttp "github.com/jhoicas/Inventario-reportes/internal/interfaces/http"
)

var fixedNow = time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC)

const ordersJSON = `[
	{"id":"o1","shopId":"shop-1","createdAt":"2024-03-10T09:00:00Z","totalAmount":100,"paymentMethod":"cash",
	 "customerId":"c1","items":[{"productId":"p1","name":"Arroz","price":100,"costPrice":60}]},
	{"id":"o2","shopId":"shop-2","createdAt":"2024-03-10T10:00:00Z","totalAmount":500,"items":[{"price":500}]}
]`

const customersJSON = `[{"id":"c1","shopId":"shop-1","name":"Ana","phone":"3001234567"}]`

type failingRepo struct{}

func (failingRepo) LoadSnapshot(context.Context, []string) (report.Snapshot, error) {
	return report.Snapshot{}, domain.ErrStoreUnavailable
}

// buildApp router completo sobre un directorio de snapshot temporal.
func buildApp(t *testing.T, repo repository.SnapshotRepository) *fiber.App {
	t.Helper()
	if repo == nil {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.json"), []byte(ordersJSON), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "customers.json"), []byte(customersJSON), 0o600))
		fs, err := filestore.NewSnapshotRepository(dir, nil)
		require.NoError(t, err)
		repo = fs
	}

	reports := reporting.NewReportUseCase(repo, cache.NoopReportCache{}, nil, reporting.Config{
		Location: time.UTC,
		Shop:     report.ShopInfo{Name: "Tienda Central"},
	}, reporting.WithClock(func() time.Time { return fixedNow }))
	exports := reporting.NewExportUseCase(reports, export.CSVWriter{}, export.JSONWriter{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ReportUC:  reports,
		ExportUC:  exports,
		JWTSecret: testJWTSecret,
		AppName:   "inventario-reportes",
	})
	return app
}

func TestHealth(t *testing.T) {
	resp := get(t, buildApp(t, nil), "/health", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestSummary_SoloPedidosDelTenant(t *testing.T) {
	resp := get(t, buildApp(t, nil), "/api/reports/summary?range=today", shopToken(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Range struct {
			Selector string `json:"selector"`
		} `json:"range"`
		Metrics struct {
			OrderCount   int    `json:"order_count"`
			TotalRevenue string `json:"total_revenue"`
			GrossProfit  string `json:"gross_profit"`
		} `json:"metrics"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "today", body.Range.Selector)
	assert.Equal(t, 1, body.Metrics.OrderCount)
	assert.Equal(t, "100", body.Metrics.TotalRevenue)
	assert.Equal(t, "40", body.Metrics.GrossProfit)
}

func TestSummary_SinToken(t *testing.T) {
	resp := get(t, buildApp(t, nil), "/api/reports/summary", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSummary_CustomInvalido_Retorna400(t *testing.T) {
	resp := get(t, buildApp(t, nil), "/api/reports/summary?range=custom&start=2024-03-10&end=2024-03-01", shopToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestSummary_StoreNoDisponible_Retorna503(t *testing.T) {
	resp := get(t, buildApp(t, failingRepo{}), "/api/reports/summary", shopToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "STORE_UNAVAILABLE")
}

func TestHourly(t *testing.T) {
	resp := get(t, buildApp(t, nil), "/api/reports/hourly?day=2024-03-10", shopToken(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Granularity string   `json:"granularity"`
		Labels      []string `json:"labels"`
		Revenue     []string `json:"revenue"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "hourly", body.Granularity)
	require.Len(t, body.Revenue, 24)
	assert.Equal(t, "09:00", body.Labels[9])
	assert.Equal(t, "100", body.Revenue[9])
}

func TestExport_CSV(t *testing.T) {
	resp := get(t, buildApp(t, nil), "/api/reports/export?format=csv&range=today", shopToken(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "reporte_20240310_20240310.csv")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Ingresos netos,100.00,money")
}

func TestExport_FormatoNoSoportado(t *testing.T) {
	resp := get(t, buildApp(t, nil), "/api/reports/export?format=docx", shopToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInvoiceText(t *testing.T) {
	app := buildApp(t, nil)

	resp := get(t, app, "/api/invoices/o1/text", shopToken(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Tienda Central")
	assert.Contains(t, string(body), "Ana")

	// pedido de otro tenant
	resp2 := get(t, app, "/api/invoices/o2/text", shopToken(t))
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestDebtors_SinMovimientos(t *testing.T) {
	resp := get(t, buildApp(t, nil), "/api/reports/debtors?limit=500", shopToken(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items []any `json:"items"`
		Page  struct {
			Limit int `json:"limit"`
			Total int `json:"total"`
		} `json:"page"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Items)
	assert.Equal(t, 100, body.Page.Limit, "limit acotado al máximo")
	assert.Equal(t, 0, body.Page.Total)
}
