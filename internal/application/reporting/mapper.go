package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-reportes/internal/application/dto"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

func round(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

func roundAll(ds []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ds))
	for i, d := range ds {
		out[i] = round(d)
	}
	return out
}

func toRangeDTO(r report.Range, sel report.Selector) dto.RangeDTO {
	return dto.RangeDTO{Selector: string(sel), Start: r.Start, End: r.End, Valid: r.Valid()}
}

func toReportDTO(rep report.Report, sel report.Selector) *dto.ReportDTO {
	m := rep.Metrics
	return &dto.ReportDTO{
		Range: toRangeDTO(rep.Range, sel),
		Mode:  string(rep.Mode),
		Metrics: dto.MetricsDTO{
			OrderCount:      m.OrderCount,
			GrossSales:      round(m.GrossSales),
			TotalRefunds:    round(m.TotalRefunds),
			TotalRevenue:    round(m.TotalRevenue),
			DeliveryCharges: round(m.DeliveryCharges),
			GrossCOGS:       round(m.GrossCOGS),
			RefundedCOGS:    round(m.RefundedCOGS),
			NetCOGS:         round(m.NetCOGS),
			GrossProfit:     round(m.GrossProfit),
			PettyExpenses:   round(m.PettyExpenses),
			NetProfit:       round(m.NetProfit),
			ProfitMargin:    m.ProfitMargin,
			PurchaseOutflow: round(m.PurchaseOutflow),
			BusinessOutflow: round(m.BusinessOutflow),
			Receivables:     round(m.Receivables),
			Payables:        round(m.Payables),
			DebtorCount:     m.DebtorCount,
			PendingCount:    m.Pending.Count,
			PendingSales:    round(m.Pending.Sales),
			PendingProfit:   round(m.Pending.Profit),
			PendingDelivery: round(m.Pending.Delivery),
		},
		Series:   toSeriesDTO(rep.Series),
		Payments: toPaymentsDTO(rep.Payments),
		Ledger:   toLedgerDTO(rep.Ledger),
		Diagnostics: dto.DiagnosticsDTO{
			SkippedOrders:        rep.Diagnostics.SkippedOrders,
			SkippedExpenses:      rep.Diagnostics.SkippedExpenses,
			UnresolvedRefunds:    rep.Diagnostics.UnresolvedRefunds,
			UnmatchedRefundLines: rep.Diagnostics.UnmatchedRefundLines,
		},
	}
}

func toSeriesDTO(s report.Series) dto.SeriesDTO {
	return dto.SeriesDTO{
		Granularity: string(s.Granularity),
		Labels:      s.Labels(),
		Revenue:     roundAll(s.Revenue()),
		Expenses:    roundAll(s.Expenses()),
	}
}

func toPaymentsDTO(b report.PaymentBreakdown) dto.PaymentsDTO {
	out := dto.PaymentsDTO{
		Labels:  []string{},
		Amounts: []decimal.Decimal{},
		Counts:  []int{},
		Split: dto.SplitPaymentDTO{
			Cash:   round(b.Split.Cash),
			Online: round(b.Split.Online),
			Due:    round(b.Split.Due),
		},
	}
	for _, bk := range b.Visible() {
		out.Labels = append(out.Labels, bk.Label)
		out.Amounts = append(out.Amounts, round(bk.Amount))
		out.Counts = append(out.Counts, bk.Count)
	}
	for _, bk := range b.Buckets {
		out.Buckets = append(out.Buckets, dto.PaymentBucketDTO{
			Channel: string(bk.Channel),
			Label:   bk.Label,
			Count:   bk.Count,
			Gross:   round(bk.Gross),
			Refunds: round(bk.Refunds),
			Amount:  round(bk.Amount),
		})
	}
	return out
}

func toLedgerDTO(l report.LedgerSummary) dto.LedgerDTO {
	out := dto.LedgerDTO{
		Receivables: round(l.Receivables),
		Payables:    round(l.Payables),
		DebtorCount: l.DebtorCount,
		Debtors:     make([]dto.DebtorDTO, 0, len(l.Debtors)),
	}
	for _, d := range l.Debtors {
		out.Debtors = append(out.Debtors, dto.DebtorDTO{CustomerID: d.PartyID, Name: d.Name, Balance: round(d.Balance)})
	}
	return out
}
