package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

func TestEngine_AsignacionUnicaEntreVistas(t *testing.T) {
	e := storeEngine(t)
	r := storeRange()

	for _, mode := range []report.SaleMode{report.ModeNormal, report.ModeDirect} {
		pl := e.Profit(r, mode)

		seriesTotal := decimal.Zero
		for _, v := range e.Series(r, mode).Revenue() {
			seriesTotal = seriesTotal.Add(v)
		}
		hourlyTotal := decimal.Zero
		for _, d := range []string{"2024-03-08", "2024-03-09", "2024-03-10"} {
			for _, v := range e.HourlySeries(d, mode).Revenue() {
				hourlyTotal = hourlyTotal.Add(v)
			}
		}
		paymentsTotal := decimal.Zero
		for _, b := range e.Payments(r, mode).Buckets {
			paymentsTotal = paymentsTotal.Add(b.Amount)
		}

		assert.True(t, pl.TotalRevenue.Equal(seriesTotal), "serie %s", mode)
		assert.True(t, pl.TotalRevenue.Equal(hourlyTotal), "horas %s", mode)
		assert.True(t, pl.TotalRevenue.Equal(paymentsTotal), "pagos %s", mode)
	}
}

func TestEngine_MemoizaPorRangoYModo(t *testing.T) {
	e := storeEngine(t)
	r := storeRange()

	a1 := e.Allocations(r, report.ModeNormal)
	a2 := e.Allocations(report.ResolveRange(report.SelectorCustom, testNow, "2024-03-08", "2024-03-10"), report.ModeNormal)
	d := e.Allocations(r, report.ModeDirect)

	require.NotEmpty(t, a1)
	assert.Same(t, &a1[0], &a2[0])
	assert.NotSame(t, &a1[0], &d[0])
}

func TestEngineMetrics_Hoy(t *testing.T) {
	e := storeEngine(t)

	m := e.Metrics(e.ResolveRange(report.SelectorToday, "", ""), report.ModeNormal)

	assert.Equal(t, 2, m.OrderCount)
	assertMoney(t, "139.00", m.GrossSales)
	assertMoney(t, "20.00", m.TotalRefunds, "la devolución agregada de o2 cae el 8 de marzo")
	assertMoney(t, "119.00", m.TotalRevenue)
	assertMoney(t, "360.04", m.Receivables)
	assert.Equal(t, 2, m.DebtorCount)
	assert.Zero(t, m.Pending.Count)
}

func TestEngineReport_Completo(t *testing.T) {
	e := storeEngine(t)

	rep := e.Report(storeRange(), report.ModeNormal)

	assert.Equal(t, report.ModeNormal, rep.Mode)
	assertMoney(t, "419.00", rep.Metrics.TotalRevenue)
	assert.Len(t, rep.Series.Buckets, 3)
	assert.Len(t, rep.Payments.Buckets, 4)
	assert.Equal(t, 2, rep.Ledger.DebtorCount)
	assert.True(t, rep.Diagnostics.Empty())
}

func TestSummaryRows(t *testing.T) {
	rows := report.SummaryRows(storeEngine(t).Metrics(storeRange(), report.ModeNormal))

	require.NotEmpty(t, rows)
	assert.Equal(t, "Pedidos", rows[0].Label)
	assert.Equal(t, report.KindCount, rows[0].Kind)
	assert.Equal(t, "4", rows[0].Value.String())

	var margin report.SummaryRow
	for _, r := range rows {
		if r.Kind == report.KindPercent {
			margin = r
		}
	}
	assert.Equal(t, "Margen de utilidad", margin.Label)
	assert.Equal(t, "33.77", margin.Value.String())
}
