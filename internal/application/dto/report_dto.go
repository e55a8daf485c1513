package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Query parameters ──────────────────────────────────────────────────────────

// ReportQuery parámetros para GET /api/reports/summary y /api/reports/export.
type ReportQuery struct {
	Range string `query:"range"` // today|7d|30d|1y|all|custom; desconocido = today
	Start string `query:"start"` // YYYY-MM-DD, solo custom
	End   string `query:"end"`   // YYYY-MM-DD, solo custom
	Mode  string `query:"mode"`  // normal|direct
}

// HourlyQuery parámetros para GET /api/reports/hourly.
type HourlyQuery struct {
	Day  string `query:"day"` // YYYY-MM-DD
	Mode string `query:"mode"`
}

// ── Reporte ───────────────────────────────────────────────────────────────────

// ReportDTO respuesta de GET /api/reports/summary.
type ReportDTO struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Cached      bool           `json:"cached"`
	Range       RangeDTO       `json:"range"`
	Mode        string         `json:"mode"`
	Metrics     MetricsDTO     `json:"metrics"`
	Series      SeriesDTO      `json:"series"`
	Payments    PaymentsDTO    `json:"payments"`
	Ledger      LedgerDTO      `json:"ledger"`
	Diagnostics DiagnosticsDTO `json:"diagnostics"`
}

// RangeDTO rango resuelto. Valid=false cuando las fechas custom no se pudieron leer.
type RangeDTO struct {
	Selector string    `json:"selector"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Valid    bool      `json:"valid"`
}

// MetricsDTO métricas escalares (montos redondeados a 2 decimales).
type MetricsDTO struct {
	OrderCount      int             `json:"order_count"`
	GrossSales      decimal.Decimal `json:"gross_sales"`
	TotalRefunds    decimal.Decimal `json:"total_refunds"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	DeliveryCharges decimal.Decimal `json:"delivery_charges"`
	GrossCOGS       decimal.Decimal `json:"gross_cogs"`
	RefundedCOGS    decimal.Decimal `json:"refunded_cogs"`
	NetCOGS         decimal.Decimal `json:"net_cogs"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	PettyExpenses   decimal.Decimal `json:"petty_expenses"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	ProfitMargin    decimal.Decimal `json:"profit_margin"` // %
	PurchaseOutflow decimal.Decimal `json:"purchase_outflow"`
	BusinessOutflow decimal.Decimal `json:"business_outflow"` // compras completadas + gastos menores
	Receivables     decimal.Decimal `json:"receivables"`
	Payables        decimal.Decimal `json:"payables"`
	DebtorCount     int             `json:"debtor_count"`
	PendingCount    int             `json:"pending_count"`
	PendingSales    decimal.Decimal `json:"pending_sales"`
	PendingProfit   decimal.Decimal `json:"pending_profit"`
	PendingDelivery decimal.Decimal `json:"pending_delivery"`
}

// SeriesDTO serie temporal con arreglos paralelos listos para graficar.
type SeriesDTO struct {
	Granularity string            `json:"granularity"` // hourly|daily|monthly
	Labels      []string          `json:"labels"`
	Revenue     []decimal.Decimal `json:"revenue"`
	Expenses    []decimal.Decimal `json:"expenses"`
}

// PaymentsDTO conciliación por método de pago. Labels/Amounts/Counts omiten
// los canales en cero; Buckets los conserva todos.
type PaymentsDTO struct {
	Labels  []string           `json:"labels"`
	Amounts []decimal.Decimal  `json:"amounts"`
	Counts  []int              `json:"counts"`
	Buckets []PaymentBucketDTO `json:"buckets"`
	Split   SplitPaymentDTO    `json:"split"`
}

// PaymentBucketDTO total de un canal.
type PaymentBucketDTO struct {
	Channel string          `json:"channel"`
	Label   string          `json:"label"`
	Count   int             `json:"count"`
	Gross   decimal.Decimal `json:"gross"`
	Refunds decimal.Decimal `json:"refunds"`
	Amount  decimal.Decimal `json:"amount"`
}

// SplitPaymentDTO desglose de pagos divididos.
type SplitPaymentDTO struct {
	Cash   decimal.Decimal `json:"cash"`
	Online decimal.Decimal `json:"online"`
	Due    decimal.Decimal `json:"due"`
}

// LedgerDTO cuentas por cobrar/pagar.
type LedgerDTO struct {
	Receivables decimal.Decimal `json:"receivables"`
	Payables    decimal.Decimal `json:"payables"`
	DebtorCount int             `json:"debtor_count"`
	Debtors     []DebtorDTO     `json:"debtors"`
}

// DebtorDTO cliente con saldo pendiente.
type DebtorDTO struct {
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
}

// DebtorsPageDTO respuesta de GET /api/reports/debtors.
type DebtorsPageDTO struct {
	Items []DebtorDTO  `json:"items"`
	Page  PageResponse `json:"page"`
}

// DiagnosticsDTO registros degradados durante el cálculo.
type DiagnosticsDTO struct {
	SkippedOrders        int `json:"skipped_orders"`
	SkippedExpenses      int `json:"skipped_expenses"`
	UnresolvedRefunds    int `json:"unresolved_refunds"`
	UnmatchedRefundLines int `json:"unmatched_refund_lines"`
}

// ── Exportación ───────────────────────────────────────────────────────────────

// ExportFileDTO archivo generado para descarga.
type ExportFileDTO struct {
	Filename    string
	ContentType string
	Body        []byte
}
