package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Options parámetros externos de una pasada de cálculo.
type Options struct {
	// Now instante actual provisto por el reloj del llamador; el motor nunca lee el reloj.
	Now time.Time
	// Location zona de los rangos y buckets. Por defecto la de Now.
	Location *time.Location
}

// Diagnostics registros degradados durante el cálculo. No son errores: el
// reporte igual se produce.
type Diagnostics struct {
	SkippedOrders        int `json:"skipped_orders"`
	SkippedExpenses      int `json:"skipped_expenses"`
	UnresolvedRefunds    int `json:"unresolved_refunds"`
	UnmatchedRefundLines int `json:"unmatched_refund_lines"`
}

// Empty indica que no hubo registros degradados.
func (d Diagnostics) Empty() bool { return d == Diagnostics{} }

// Metrics bundle de métricas escalares del rango y modo.
type Metrics struct {
	ProfitAndLoss
	Receivables decimal.Decimal `json:"receivables"`
	Payables    decimal.Decimal `json:"payables"`
	DebtorCount int             `json:"debtor_count"`
	Pending     PendingSummary  `json:"pending"`
}

// Report resultado completo de una consulta.
type Report struct {
	Range       Range            `json:"range"`
	Mode        SaleMode         `json:"mode"`
	Metrics     Metrics          `json:"metrics"`
	Series      Series           `json:"series"`
	Payments    PaymentBreakdown `json:"payments"`
	Ledger      LedgerSummary    `json:"ledger"`
	Diagnostics Diagnostics      `json:"diagnostics"`
}

type passKey struct {
	start, end int64
	mode       SaleMode
}

// pass resultados memoizados por (rango, modo).
type pass struct {
	orders      []NormalizedOrder
	allocations []Allocation
	pending     []NormalizedOrder
	petty       decimal.Decimal
	purchases   decimal.Decimal
	diag        Diagnostics
}

// Engine calcula reportes sobre un Snapshot inmutable. Memoiza pedidos
// normalizados y asignaciones de devoluciones por (rango, modo), de modo que
// todas las vistas (ingresos, series, horas, pagos) consumen la misma
// asignación. No es seguro para uso concurrente: cada request crea el suyo.
type Engine struct {
	snap   Snapshot
	now    time.Time
	loc    *time.Location
	passes map[passKey]*pass
	ledger *LedgerSummary
}

// NewEngine crea el motor para un snapshot ya filtrado por tenant.
func NewEngine(snap Snapshot, opts Options) *Engine {
	loc := opts.Location
	if loc == nil {
		loc = opts.Now.Location()
	}
	return &Engine{
		snap:   snap,
		now:    opts.Now.In(loc),
		loc:    loc,
		passes: make(map[passKey]*pass),
	}
}

// Now instante de referencia de la pasada.
func (e *Engine) Now() time.Time { return e.now }

// Location zona de la pasada.
func (e *Engine) Location() *time.Location { return e.loc }

// ResolveRange resuelve un selector contra el "now" de la pasada.
func (e *Engine) ResolveRange(sel Selector, customStart, customEnd string) Range {
	return ResolveRange(sel, e.now, customStart, customEnd)
}

func (e *Engine) pass(r Range, mode SaleMode) *pass {
	k := passKey{mode: mode}
	if r.Valid() {
		k.start, k.end = r.Start.UnixNano(), r.End.UnixNano()
	}
	if p, ok := e.passes[k]; ok {
		return p
	}
	p := &pass{}
	if r.Valid() {
		p.orders = NormalizeOrders(e.snap.Orders, r, mode, e.loc, &p.diag)
		p.allocations = NewRefundAllocator(e.snap.Orders, mode, e.loc).AllocateInRange(e.snap.Refunds, r, &p.diag)
		p.pending = PendingOrders(e.snap.Orders, r, mode, e.loc)
		p.petty = SumPettyExpenses(e.snap.PettyExpenses, r, e.loc, &p.diag)
		p.purchases = SumCompletedPurchases(e.snap.PurchaseOrders, r, e.loc)
	}
	e.passes[k] = p
	return p
}

// Orders pedidos normalizados del rango y modo.
func (e *Engine) Orders(r Range, mode SaleMode) []NormalizedOrder { return e.pass(r, mode).orders }

// Allocations devoluciones asignadas del rango y modo.
func (e *Engine) Allocations(r Range, mode SaleMode) []Allocation {
	return e.pass(r, mode).allocations
}

// PendingOrders pedidos online en curso.
func (e *Engine) PendingOrders(r Range, mode SaleMode) []NormalizedOrder {
	return e.pass(r, mode).pending
}

// Diagnostics registros degradados del rango y modo.
func (e *Engine) Diagnostics(r Range, mode SaleMode) Diagnostics { return e.pass(r, mode).diag }

// Profit estado de resultados.
func (e *Engine) Profit(r Range, mode SaleMode) ProfitAndLoss {
	p := e.pass(r, mode)
	return ComputeProfit(p.orders, p.allocations, p.petty, p.purchases, mode)
}

// Ledger saldos de clientes y proveedores. No depende del rango.
func (e *Engine) Ledger() LedgerSummary {
	if e.ledger == nil {
		l := SummarizeLedgers(e.snap.CustomerTransactions, e.snap.SupplierTransactions, e.snap.Customers)
		e.ledger = &l
	}
	return *e.ledger
}

// Metrics bundle de métricas escalares.
func (e *Engine) Metrics(r Range, mode SaleMode) Metrics {
	l := e.Ledger()
	return Metrics{
		ProfitAndLoss: e.Profit(r, mode),
		Receivables:   l.Receivables,
		Payables:      l.Payables,
		DebtorCount:   l.DebtorCount,
		Pending:       SummarizePending(e.PendingOrders(r, mode)),
	}
}

// Series serie diaria o mensual del rango.
func (e *Engine) Series(r Range, mode SaleMode) Series {
	p := e.pass(r, mode)
	return BuildSeries(r, p.orders, p.allocations, e.snap.PettyExpenses, e.loc)
}

// HourlySeries serie horaria de un día (YYYY-MM-DD).
func (e *Engine) HourlySeries(day string, mode SaleMode) Series {
	p := e.pass(DayRange(day, e.loc), mode)
	return BuildHourlySeries(day, p.orders, p.allocations, e.snap.PettyExpenses, e.loc)
}

// Payments conciliación por método de pago.
func (e *Engine) Payments(r Range, mode SaleMode) PaymentBreakdown {
	p := e.pass(r, mode)
	return AggregatePayments(p.orders, p.allocations)
}

// Invoice recibo de texto del pedido indicado. false si el pedido no existe.
func (e *Engine) Invoice(orderKey string, shop ShopInfo) (string, bool) {
	for i := range e.snap.Orders {
		o := &e.snap.Orders[i]
		if o.Key() != orderKey || o.SoftDeleted() {
			continue
		}
		custKey := o.CustomerID.String()
		for j := range e.snap.Customers {
			if custKey != "" && e.snap.Customers[j].Key() == custKey {
				return FormatInvoice(shop, o, &e.snap.Customers[j], e.loc), true
			}
		}
		return FormatInvoice(shop, o, nil, e.loc), true
	}
	return "", false
}

// SummaryRows filas de exportación del bundle de métricas.
func (e *Engine) SummaryRows(r Range, mode SaleMode) []SummaryRow {
	return SummaryRows(e.Metrics(r, mode))
}

// Report calcula el reporte completo.
func (e *Engine) Report(r Range, mode SaleMode) Report {
	return Report{
		Range:       r,
		Mode:        mode,
		Metrics:     e.Metrics(r, mode),
		Series:      e.Series(r, mode),
		Payments:    e.Payments(r, mode),
		Ledger:      e.Ledger(),
		Diagnostics: e.Diagnostics(r, mode),
	}
}
