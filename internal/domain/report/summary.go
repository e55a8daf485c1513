package report

import "github.com/shopspring/decimal"

// ValueKind indica al escritor cómo formatear el valor.
type ValueKind string

const (
	KindMoney   ValueKind = "money"
	KindPercent ValueKind = "percent"
	KindCount   ValueKind = "count"
)

// SummaryRow par etiqueta/valor para los exportadores. El formato de moneda y
// el layout son responsabilidad del escritor.
type SummaryRow struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Kind  ValueKind       `json:"kind"`
}

func money(label string, v decimal.Decimal) SummaryRow {
	return SummaryRow{Label: label, Value: v, Kind: KindMoney}
}

func count(label string, n int) SummaryRow {
	return SummaryRow{Label: label, Value: decimal.NewFromInt(int64(n)), Kind: KindCount}
}

// SummaryRows filas del bundle de métricas en orden de presentación.
func SummaryRows(m Metrics) []SummaryRow {
	return []SummaryRow{
		count("Pedidos", m.OrderCount),
		money("Ventas brutas", m.GrossSales),
		money("Devoluciones", m.TotalRefunds),
		money("Ingresos netos", m.TotalRevenue),
		money("Cargos de envío", m.DeliveryCharges),
		money("Costo de ventas bruto", m.GrossCOGS),
		money("Costo devuelto", m.RefundedCOGS),
		money("Costo de ventas neto", m.NetCOGS),
		money("Utilidad bruta", m.GrossProfit),
		money("Gastos menores", m.PettyExpenses),
		money("Utilidad neta", m.NetProfit),
		{Label: "Margen de utilidad", Value: m.ProfitMargin, Kind: KindPercent},
		money("Compras completadas", m.PurchaseOutflow),
		money("Salida operativa", m.BusinessOutflow),
		money("Cuentas por cobrar", m.Receivables),
		money("Cuentas por pagar", m.Payables),
		count("Clientes con deuda", m.DebtorCount),
		count("Pedidos pendientes", m.Pending.Count),
		money("Ventas pendientes", m.Pending.Sales),
		money("Utilidad pendiente", m.Pending.Profit),
		money("Envío pendiente", m.Pending.Delivery),
	}
}
