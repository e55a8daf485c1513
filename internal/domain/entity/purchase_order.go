package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-reportes/pkg/amount"
)

// Estados de una orden de compra a proveedor.
const (
	PurchaseStatusPending    = "pending"
	PurchaseStatusInProgress = "in-progress"
	PurchaseStatusCompleted  = "completed"
	PurchaseStatusCancelled  = "cancelled"
)

// PurchaseOrder compra de inventario a un proveedor. Solo las completadas cuentan
// como salida operativa; nunca reducen la utilidad (son compra de activo).
type PurchaseOrder struct {
	Ownership
	ID           Ref  `json:"id"`
	DocID        Ref  `json:"_id"`
	SupplierID   Ref  `json:"supplierId"`
	SupplierName Text `json:"supplierName"`

	Items []PurchaseItem `json:"items"`

	TotalAmount amount.Value `json:"totalAmount"`
	Total       amount.Value `json:"total"`
	GrandTotal  amount.Value `json:"grandTotal"`

	Status      Text      `json:"status"`
	CompletedAt Timestamp `json:"completedAt"`
	ReceivedAt  Timestamp `json:"receivedAt"`
	CreatedAt   Timestamp `json:"createdAt"`

	IsDeleted Flag `json:"isDeleted"`
}

// Key identificador de la orden.
func (p *PurchaseOrder) Key() string { return FirstRef(p.ID, p.DocID) }

// IsCompleted estado completado.
func (p *PurchaseOrder) IsCompleted() bool { return p.Status.Lower() == PurchaseStatusCompleted }

// Timestamp fecha de completado; si falta, recepción o creación.
func (p *PurchaseOrder) Timestamp() Timestamp {
	return FirstTimestamp(p.CompletedAt, p.ReceivedAt, p.CreatedAt)
}

// TotalValue total declarado si es > 0; si no, suma de las líneas.
func (p *PurchaseOrder) TotalValue() decimal.Decimal {
	if d, ok := amount.FirstPositive(p.TotalAmount, p.Total, p.GrandTotal); ok {
		return d
	}
	sum := decimal.Zero
	for i := range p.Items {
		sum = sum.Add(p.Items[i].LineTotal())
	}
	return sum
}

// PurchaseItem línea de una orden de compra.
type PurchaseItem struct {
	ProductID Ref  `json:"productId"`
	Name      Text `json:"name"`

	Quantity amount.Value `json:"quantity"`
	Qty      amount.Value `json:"qty"`

	CostPrice     amount.Value `json:"costPrice"`
	PurchasePrice amount.Value `json:"purchasePrice"`
	Price         amount.Value `json:"price"`
	Total         amount.Value `json:"total"`
}

// LineTotal total explícito de la línea o costo × cantidad.
func (it *PurchaseItem) LineTotal() decimal.Decimal {
	if d, ok := amount.FirstPositive(it.Total); ok {
		return d
	}
	qty := amount.FirstPositiveOr(decimal.Zero, it.Quantity, it.Qty)
	cost := amount.FirstPositiveOr(decimal.Zero, it.CostPrice, it.PurchasePrice, it.Price)
	return qty.Mul(cost)
}
