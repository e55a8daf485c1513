package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-reportes/internal/domain/entity"
	"github.com/jhoicas/Inventario-reportes/pkg/amount"
)

// SaleMode partición de las líneas de pedido que se reporta.
type SaleMode string

const (
	// ModeNormal solo productos de catálogo.
	ModeNormal SaleMode = "normal"
	// ModeDirect solo líneas de venta directa.
	ModeDirect SaleMode = "direct"
)

// ParseSaleMode normaliza el modo; cualquier valor distinto de "direct" es normal.
func ParseSaleMode(s string) SaleMode {
	if SaleMode(strings.ToLower(strings.TrimSpace(s))) == ModeDirect {
		return ModeDirect
	}
	return ModeNormal
}

// Includes indica si la línea pertenece a la partición del modo.
func (m SaleMode) Includes(it *entity.OrderItem) bool {
	if m == ModeDirect {
		return it.IsDirect()
	}
	return !it.IsDirect()
}

// deliveryTolerance diferencia mínima para inferir un cargo de envío no declarado.
var deliveryTolerance = decimal.NewFromInt(1)

// Partition resultado de dividir las líneas de un pedido según el modo.
type Partition struct {
	Active     []entity.OrderItem
	ActiveSum  decimal.Decimal
	AllSum     decimal.Decimal
	ActiveCost decimal.Decimal
	// Factor fracción del valor de venta que corresponde al modo. 0 si las líneas suman 0.
	Factor decimal.Decimal
}

// PartitionOrder separa las líneas activas del pedido para el modo y calcula el
// factor proporcional activo/total. Los factores de ambos modos suman 1 cuando
// el pedido tiene valor de venta.
func PartitionOrder(o *entity.Order, mode SaleMode) Partition {
	var p Partition
	lines := o.Lines()
	for i := range lines {
		it := &lines[i]
		selling := it.SellingTotal()
		p.AllSum = p.AllSum.Add(selling)
		if mode.Includes(it) {
			p.Active = append(p.Active, *it)
			p.ActiveSum = p.ActiveSum.Add(selling)
			p.ActiveCost = p.ActiveCost.Add(it.CostTotal())
		}
	}
	p.Factor = amount.SafeDiv(p.ActiveSum, p.AllSum)
	return p
}

// OrderTotals total general y cargo de envío efectivos del pedido completo.
type OrderTotals struct {
	ItemSum  decimal.Decimal
	Discount decimal.Decimal
	Delivery decimal.Decimal
	Grand    decimal.Decimal
}

// ResolveTotals reconstruye el total general del pedido:
//   - envío: el declarado; si no hay, el excedente del total declarado sobre
//     (suma de líneas − descuento) cuando supera la tolerancia;
//   - total: el declarado si es > 0, si no suma − descuento + envío.
func ResolveTotals(o *entity.Order, itemSum decimal.Decimal) OrderTotals {
	t := OrderTotals{ItemSum: itemSum, Discount: o.DeclaredDiscount()}
	declared, hasTotal := o.DeclaredTotal()
	if d, ok := o.DeclaredDelivery(); ok {
		t.Delivery = d
	} else if hasTotal {
		excess := declared.Sub(itemSum.Sub(t.Discount))
		if excess.GreaterThan(deliveryTolerance) {
			t.Delivery = excess
		}
	}
	if hasTotal {
		t.Grand = declared
	} else {
		t.Grand = itemSum.Sub(t.Discount).Add(t.Delivery)
	}
	return t
}

// NormalizedOrder pedido reducido a la partición del modo activo. Total y
// DeliveryShare ya vienen multiplicados por el factor proporcional.
type NormalizedOrder struct {
	Order         *entity.Order
	Key           string
	At            time.Time
	Lines         []entity.OrderItem
	Factor        decimal.Decimal
	Grand         decimal.Decimal
	Total         decimal.Decimal
	DeliveryShare decimal.Decimal
	Cost          decimal.Decimal
}

// Profit utilidad bruta del pedido en la partición.
func (n NormalizedOrder) Profit() decimal.Decimal { return n.Total.Sub(n.Cost) }

// normalize aplica la partición y la asignación proporcional a un pedido.
// Devuelve false si el pedido no tiene líneas en el modo.
func normalize(o *entity.Order, at time.Time, mode SaleMode) (NormalizedOrder, bool) {
	p := PartitionOrder(o, mode)
	if len(p.Active) == 0 {
		return NormalizedOrder{}, false
	}
	totals := ResolveTotals(o, p.AllSum)
	return NormalizedOrder{
		Order:         o,
		Key:           o.Key(),
		At:            at,
		Lines:         p.Active,
		Factor:        p.Factor,
		Grand:         totals.Grand,
		Total:         p.Factor.Mul(totals.Grand),
		DeliveryShare: p.Factor.Mul(totals.Delivery),
		Cost:          p.ActiveCost,
	}, true
}

// NormalizeOrders produce la vista de ventas completadas: descarta borrados,
// pedidos online no entregados, fuera de rango o sin líneas en el modo.
// Los pedidos sin fecha legible se cuentan en diag.SkippedOrders.
func NormalizeOrders(orders []entity.Order, r Range, mode SaleMode, loc *time.Location, diag *Diagnostics) []NormalizedOrder {
	out := make([]NormalizedOrder, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		if o.SoftDeleted() {
			continue
		}
		if o.IsOnline() && o.DeliveryState() != entity.DeliveryStatusDelivered {
			continue
		}
		ts := o.Timestamp()
		if ts.IsZero() {
			if diag != nil {
				diag.SkippedOrders++
			}
			continue
		}
		at := ts.In(loc)
		if !r.Contains(at) {
			continue
		}
		if n, ok := normalize(o, at, mode); ok {
			out = append(out, n)
		}
	}
	return out
}

// PendingOrders vista de pedidos online en curso: ni entregados ni cancelados,
// dentro del rango y con líneas en el modo. Misma asignación proporcional.
func PendingOrders(orders []entity.Order, r Range, mode SaleMode, loc *time.Location) []NormalizedOrder {
	var out []NormalizedOrder
	for i := range orders {
		o := &orders[i]
		if o.SoftDeleted() || !o.IsOnline() {
			continue
		}
		if o.DeliveryState() == entity.DeliveryStatusDelivered || o.IsCancelled() {
			continue
		}
		ts := o.Timestamp()
		if ts.IsZero() {
			continue
		}
		at := ts.In(loc)
		if !r.Contains(at) {
			continue
		}
		if n, ok := normalize(o, at, mode); ok {
			out = append(out, n)
		}
	}
	return out
}

// PendingSummary totales de la vista de pendientes.
type PendingSummary struct {
	Count    int             `json:"count"`
	Sales    decimal.Decimal `json:"sales"`
	Profit   decimal.Decimal `json:"profit"`
	Delivery decimal.Decimal `json:"delivery"`
}

// SummarizePending acumula ventas, utilidad y envío de los pendientes.
func SummarizePending(pending []NormalizedOrder) PendingSummary {
	s := PendingSummary{Count: len(pending)}
	for _, n := range pending {
		s.Sales = s.Sales.Add(n.Total)
		s.Profit = s.Profit.Add(n.Profit())
		s.Delivery = s.Delivery.Add(n.DeliveryShare)
	}
	return s
}
