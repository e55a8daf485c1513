package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-reportes/internal/domain/entity"
	"github.com/jhoicas/Inventario-reportes/pkg/amount"
)

var hundred = decimal.NewFromInt(100)

// ProfitAndLoss estado de resultados del rango y modo.
type ProfitAndLoss struct {
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
	ProfitMargin    decimal.Decimal `json:"profit_margin"`
	PurchaseOutflow decimal.Decimal `json:"purchase_outflow"`
	BusinessOutflow decimal.Decimal `json:"business_outflow"`
}

// ComputeProfit arma el estado de resultados:
//
//	ingreso neto   = Σ totales normalizados − Σ devoluciones asignadas
//	COGS neto      = Σ costo de líneas activas − Σ costo devuelto
//	utilidad bruta = ingreso neto − COGS neto
//	utilidad neta  = utilidad bruta − gastos menores (en modo directo no se restan)
//	margen %       = utilidad neta / ingreso neto × 100 (0 si no hay ingreso)
//
// Las compras completadas solo suman a la salida operativa, nunca a la utilidad.
func ComputeProfit(orders []NormalizedOrder, allocs []Allocation, petty, purchases decimal.Decimal, mode SaleMode) ProfitAndLoss {
	pl := ProfitAndLoss{OrderCount: len(orders), PettyExpenses: petty, PurchaseOutflow: purchases}
	for _, n := range orders {
		pl.GrossSales = pl.GrossSales.Add(n.Total)
		pl.DeliveryCharges = pl.DeliveryCharges.Add(n.DeliveryShare)
		pl.GrossCOGS = pl.GrossCOGS.Add(n.Cost)
	}
	for _, a := range allocs {
		pl.TotalRefunds = pl.TotalRefunds.Add(a.Amount)
		pl.RefundedCOGS = pl.RefundedCOGS.Add(a.Cost)
	}
	pl.TotalRevenue = pl.GrossSales.Sub(pl.TotalRefunds)
	pl.NetCOGS = pl.GrossCOGS.Sub(pl.RefundedCOGS)
	pl.GrossProfit = pl.TotalRevenue.Sub(pl.NetCOGS)
	pl.NetProfit = pl.GrossProfit
	if mode != ModeDirect {
		pl.NetProfit = pl.NetProfit.Sub(petty)
	}
	pl.ProfitMargin = amount.SafeDiv(pl.NetProfit, pl.TotalRevenue).Mul(hundred).Round(2)
	pl.BusinessOutflow = purchases.Add(petty)
	return pl
}

// SumPettyExpenses suma los gastos menores no borrados del rango.
func SumPettyExpenses(expenses []entity.PettyExpense, r Range, loc *time.Location, diag *Diagnostics) decimal.Decimal {
	total := decimal.Zero
	for i := range expenses {
		e := &expenses[i]
		if e.IsDeleted {
			continue
		}
		ts := e.Timestamp()
		if ts.IsZero() {
			if diag != nil {
				diag.SkippedExpenses++
			}
			continue
		}
		if r.Contains(ts.In(loc)) {
			total = total.Add(e.Value())
		}
	}
	return total
}

// SumCompletedPurchases suma las órdenes de compra completadas del rango.
func SumCompletedPurchases(pos []entity.PurchaseOrder, r Range, loc *time.Location) decimal.Decimal {
	total := decimal.Zero
	for i := range pos {
		p := &pos[i]
		if bool(p.IsDeleted) || !p.IsCompleted() {
			continue
		}
		ts := p.Timestamp()
		if ts.IsZero() || !r.Contains(ts.In(loc)) {
			continue
		}
		total = total.Add(p.TotalValue())
	}
	return total
}
