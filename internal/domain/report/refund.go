package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Inventario-reportes/internal/domain/entity"
)

// MatchStage etapa en la que se emparejó una línea de devolución.
type MatchStage int

const (
	MatchNone MatchStage = iota
	MatchByID
	MatchByName
)

// LineMatcher empareja líneas de devolución con las líneas del pedido original
// en dos etapas: primero por id de producto exacto y, si falla, por nombre
// (sin distinguir mayúsculas, recortado). No es seguro para uso concurrente.
type LineMatcher struct {
	fold cases.Caser
}

// NewLineMatcher crea un emparejador.
func NewLineMatcher() *LineMatcher {
	return &LineMatcher{fold: cases.Fold()}
}

// ByID primera línea cuyo id de producto coincide exactamente. -1 si no hay.
func (m *LineMatcher) ByID(line *entity.RefundLine, items []entity.OrderItem) int {
	key := line.Key()
	if key == "" {
		return -1
	}
	for i := range items {
		if items[i].Key() == key {
			return i
		}
	}
	return -1
}

// ByName primera línea con el mismo nombre normalizado. -1 si no hay.
func (m *LineMatcher) ByName(line *entity.RefundLine, items []entity.OrderItem) int {
	name := m.normalizeName(line.DisplayName())
	if name == "" {
		return -1
	}
	for i := range items {
		if m.normalizeName(items[i].DisplayName()) == name {
			return i
		}
	}
	return -1
}

// Match aplica las dos etapas en orden.
func (m *LineMatcher) Match(line *entity.RefundLine, items []entity.OrderItem) (int, MatchStage) {
	if i := m.ByID(line, items); i >= 0 {
		return i, MatchByID
	}
	if i := m.ByName(line, items); i >= 0 {
		return i, MatchByName
	}
	return -1, MatchNone
}

func (m *LineMatcher) normalizeName(s string) string {
	return m.fold.String(strings.TrimSpace(s))
}

// AllocatedLine aporte de una línea de devolución emparejada.
type AllocatedLine struct {
	ProductKey string          `json:"product_key"`
	Name       string          `json:"name"`
	Stage      MatchStage      `json:"stage"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	Amount     decimal.Decimal `json:"amount"`
	Cost       decimal.Decimal `json:"cost"`
}

// Allocation porción de una devolución atribuible al modo activo.
type Allocation struct {
	RefundKey string
	OrderKey  string
	// Order pedido original resuelto; nil si no se encontró.
	Order     *entity.Order
	At        time.Time
	Amount    decimal.Decimal
	Cost      decimal.Decimal
	ItemLevel bool
	Lines     []AllocatedLine
	Unmatched int
}

// RefundAllocator asigna devoluciones al modo activo. Indexa todos los pedidos
// del tenant (sin filtrar por rango ni estado) para resolver el pedido original.
type RefundAllocator struct {
	orders  map[string]*entity.Order
	mode    SaleMode
	loc     *time.Location
	matcher *LineMatcher
}

// NewRefundAllocator indexa los pedidos por su identificador. Ante claves
// duplicadas gana el primero.
func NewRefundAllocator(orders []entity.Order, mode SaleMode, loc *time.Location) *RefundAllocator {
	idx := make(map[string]*entity.Order, len(orders))
	for i := range orders {
		k := orders[i].Key()
		if k == "" {
			continue
		}
		if _, dup := idx[k]; !dup {
			idx[k] = &orders[i]
		}
	}
	return &RefundAllocator{orders: idx, mode: mode, loc: loc, matcher: NewLineMatcher()}
}

// OriginalOrder resuelve el pedido original de la devolución.
func (a *RefundAllocator) OriginalOrder(r *entity.Refund) *entity.Order {
	return a.orders[r.OrderKey()]
}

// EffectiveDate fecha de la devolución; si falta, la del pedido original; si
// tampoco existe, el epoch.
func (a *RefundAllocator) EffectiveDate(r *entity.Refund) time.Time {
	if ts := r.Timestamp(); !ts.IsZero() {
		return ts.In(a.loc)
	}
	if o := a.OriginalOrder(r); o != nil {
		if ts := o.Timestamp(); !ts.IsZero() {
			return ts.In(a.loc)
		}
	}
	return time.Unix(0, 0).In(a.loc)
}

// Allocate calcula el aporte de la devolución al modo:
//   - con líneas: cada línea se empareja contra todas las líneas del pedido
//     original y solo aportan las emparejadas que caen en la partición activa
//     (cantidad × tarifa, con el precio de venta original como respaldo);
//     el costo devuelto es cantidad × costo unitario original;
//   - sin líneas: monto agregado × factor proporcional del pedido original
//     (0 si el pedido no existe) y costo devuelto 0.
func (a *RefundAllocator) Allocate(r *entity.Refund) Allocation {
	order := a.OriginalOrder(r)
	al := Allocation{
		RefundKey: r.Key(),
		OrderKey:  r.OrderKey(),
		Order:     order,
		At:        a.EffectiveDate(r),
	}
	lines := r.Lines()
	if len(lines) == 0 {
		if order != nil {
			al.Amount = r.AggregateAmount().Mul(PartitionOrder(order, a.mode).Factor)
		}
		return al
	}

	al.ItemLevel = true
	var items []entity.OrderItem
	if order != nil {
		items = order.Lines()
	}
	for i := range lines {
		line := &lines[i]
		idx, stage := a.matcher.Match(line, items)
		if idx < 0 {
			al.Unmatched++
			continue
		}
		item := &items[idx]
		if !a.mode.Includes(item) {
			continue
		}
		qty := line.Units()
		rate, ok := line.RateValue()
		if !ok {
			rate = item.UnitSelling()
		}
		l := AllocatedLine{
			ProductKey: item.Key(),
			Name:       item.DisplayName(),
			Stage:      stage,
			Quantity:   qty,
			Rate:       rate,
			Amount:     qty.Mul(rate),
			Cost:       qty.Mul(item.UnitCostValue()),
		}
		al.Amount = al.Amount.Add(l.Amount)
		al.Cost = al.Cost.Add(l.Cost)
		al.Lines = append(al.Lines, l)
	}
	return al
}

// AllocateInRange asigna las devoluciones no borradas cuya fecha efectiva cae
// en el rango.
func (a *RefundAllocator) AllocateInRange(refunds []entity.Refund, r Range, diag *Diagnostics) []Allocation {
	out := make([]Allocation, 0, len(refunds))
	for i := range refunds {
		rf := &refunds[i]
		if rf.IsDeleted {
			continue
		}
		if !r.Contains(a.EffectiveDate(rf)) {
			continue
		}
		al := a.Allocate(rf)
		if diag != nil {
			if al.Order == nil {
				diag.UnresolvedRefunds++
			}
			diag.UnmatchedRefundLines += al.Unmatched
		}
		out = append(out, al)
	}
	return out
}
