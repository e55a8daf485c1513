package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-reportes/pkg/amount"
)

// Refund devolución asociada a un pedido. Puede traer líneas por producto o solo
// un monto agregado; si trae líneas, estas tienen prioridad para la asignación.
type Refund struct {
	Ownership
	ID    Ref `json:"id"`
	DocID Ref `json:"_id"`

	OrderID         Ref `json:"orderId"`
	OrderIDSnake    Ref `json:"order_id"`
	OriginalOrderID Ref `json:"originalOrderId"`

	Items       []RefundLine `json:"items"`
	RefundItems []RefundLine `json:"refundItems"`

	RefundAmount amount.Value `json:"refundAmount"`
	Amount       amount.Value `json:"amount"`
	TotalRefund  amount.Value `json:"totalRefund"`

	RefundDate Timestamp `json:"refundDate"`
	CreatedAt  Timestamp `json:"createdAt"`
	Date       Timestamp `json:"date"`

	Reason    Text `json:"reason"`
	IsDeleted Flag `json:"isDeleted"`
}

// Key identificador de la devolución.
func (r *Refund) Key() string { return FirstRef(r.ID, r.DocID) }

// OrderKey identificador del pedido original.
func (r *Refund) OrderKey() string { return FirstRef(r.OrderID, r.OrderIDSnake, r.OriginalOrderID) }

// Lines líneas de devolución por producto (vacío si solo hay monto agregado).
func (r *Refund) Lines() []RefundLine {
	if len(r.Items) > 0 {
		return r.Items
	}
	return r.RefundItems
}

// AggregateAmount monto agregado devuelto (0 si no viene).
func (r *Refund) AggregateAmount() decimal.Decimal {
	return amount.FirstPositiveOr(decimal.Zero, r.RefundAmount, r.Amount, r.TotalRefund)
}

// Timestamp fecha propia de la devolución (puede venir vacía).
func (r *Refund) Timestamp() Timestamp { return FirstTimestamp(r.RefundDate, r.CreatedAt, r.Date) }

// RefundLine línea de devolución: producto, cantidad y tarifa.
type RefundLine struct {
	ProductID      Ref  `json:"productId"`
	ProductIDSnake Ref  `json:"product_id"`
	ID             Ref  `json:"id"`
	SKU            Ref  `json:"sku"`
	Name           Text `json:"name"`
	ProductName    Text `json:"productName"`

	Quantity amount.Value `json:"quantity"`
	Qty      amount.Value `json:"qty"`

	Rate         amount.Value `json:"rate"`
	Price        amount.Value `json:"price"`
	SellingPrice amount.Value `json:"sellingPrice"`
}

// Key identificador de producto normalizado.
func (l *RefundLine) Key() string { return FirstRef(l.ProductID, l.ProductIDSnake, l.ID, l.SKU) }

// DisplayName nombre del producto devuelto.
func (l *RefundLine) DisplayName() string { return FirstText(l.Name, l.ProductName) }

// Units cantidad devuelta (0 si no viene: la línea no aporta).
func (l *RefundLine) Units() decimal.Decimal {
	return amount.FirstPositiveOr(decimal.Zero, l.Quantity, l.Qty)
}

// RateValue tarifa unitaria de la devolución, si viene informada.
func (l *RefundLine) RateValue() (decimal.Decimal, bool) {
	return amount.FirstPositive(l.Rate, l.Price, l.SellingPrice)
}
