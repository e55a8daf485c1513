package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-reportes/pkg/amount"
)

// Canales de origen y estados de entrega de pedidos online.
const (
	OrderSourceOnline = "online"

	DeliveryStatusDelivered = "delivered"
	DeliveryStatusCancelled = "cancelled"
	DeliveryStatusCanceled  = "canceled"
)

// Order representa una venta registrada por el subsistema de caja (POS) o la tienda online.
// El motor de reportes la trata como solo lectura; los montos llegan con varios alias.
type Order struct {
	Ownership
	ID      Ref `json:"id"`
	DocID   Ref `json:"_id"`
	OrderID Ref `json:"orderId"`

	CreatedAt Timestamp `json:"createdAt"`
	Date      Timestamp `json:"date"`
	OrderDate Timestamp `json:"orderDate"`

	OrderSource    Text `json:"orderSource"`
	Source         Text `json:"source"`
	DeliveryStatus Text `json:"deliveryStatus"`
	Status         Text `json:"status"`

	Items    []OrderItem `json:"items"`
	Products []OrderItem `json:"products"`

	TotalAmount    amount.Value `json:"totalAmount"`
	Total          amount.Value `json:"total"`
	GrandTotal     amount.Value `json:"grandTotal"`
	Discount       amount.Value `json:"discount"`
	DiscountAmount amount.Value `json:"discountAmount"`
	DeliveryCharge amount.Value `json:"deliveryCharge"`
	DeliveryFee    amount.Value `json:"deliveryFee"`
	ShippingCharge amount.Value `json:"shippingCharge"`

	PaymentMethod Text         `json:"paymentMethod"`
	PaymentMode   Text         `json:"paymentMode"`
	SplitPayment  SplitPayment `json:"splitPayment"`
	SplitDetails  SplitPayment `json:"splitDetails"`

	CustomerID    Ref  `json:"customerId"`
	CustomerName  Text `json:"customerName"`
	CustomerPhone Text `json:"customerPhone"`
	InvoiceNumber Text `json:"invoiceNumber"`

	IsDeleted Flag `json:"isDeleted"`
	Deleted   Flag `json:"deleted"`
}

// Key identificador del pedido (id, _id u orderId).
func (o *Order) Key() string { return FirstRef(o.ID, o.DocID, o.OrderID) }

// Timestamp instante de la venta (createdAt, date u orderDate).
func (o *Order) Timestamp() Timestamp { return FirstTimestamp(o.CreatedAt, o.Date, o.OrderDate) }

// SoftDeleted indica borrado lógico.
func (o *Order) SoftDeleted() bool { return bool(o.IsDeleted) || bool(o.Deleted) }

// IsOnline indica si el pedido viene del canal online (requiere estado de entrega).
func (o *Order) IsOnline() bool {
	src := o.OrderSource.Lower()
	if src == "" {
		src = o.Source.Lower()
	}
	return src == OrderSourceOnline
}

// DeliveryState estado de entrega normalizado (minúsculas, sin espacios).
func (o *Order) DeliveryState() string {
	if s := o.DeliveryStatus.Lower(); s != "" {
		return s
	}
	return o.Status.Lower()
}

// IsCancelled estado de entrega cancelado (acepta ambas grafías).
func (o *Order) IsCancelled() bool {
	s := o.DeliveryState()
	return s == DeliveryStatusCancelled || s == DeliveryStatusCanceled
}

// Lines líneas del pedido (items o products).
func (o *Order) Lines() []OrderItem {
	if len(o.Items) > 0 {
		return o.Items
	}
	return o.Products
}

// DeclaredTotal total declarado (totalAmount, total, grandTotal) si es > 0.
func (o *Order) DeclaredTotal() (decimal.Decimal, bool) {
	return amount.FirstPositive(o.TotalAmount, o.Total, o.GrandTotal)
}

// DeclaredDiscount descuento declarado (0 si no viene).
func (o *Order) DeclaredDiscount() decimal.Decimal {
	return amount.FirstPositiveOr(decimal.Zero, o.Discount, o.DiscountAmount)
}

// DeclaredDelivery cargo de envío declarado si es > 0.
func (o *Order) DeclaredDelivery() (decimal.Decimal, bool) {
	return amount.FirstPositive(o.DeliveryCharge, o.DeliveryFee, o.ShippingCharge)
}

// Method método de pago tal como fue registrado.
func (o *Order) Method() string { return FirstText(o.PaymentMethod, o.PaymentMode) }

// Split desglose registrado de un pago dividido.
func (o *Order) Split() SplitPayment {
	if o.SplitPayment.IsZero() {
		return o.SplitDetails
	}
	return o.SplitPayment
}

// OrderItem línea de un pedido. Cada línea pertenece a exactamente una categoría:
// venta directa (IsDirect) o producto normal de catálogo.
type OrderItem struct {
	ProductID      Ref  `json:"productId"`
	ProductIDSnake Ref  `json:"product_id"`
	ID             Ref  `json:"id"`
	SKU            Ref  `json:"sku"`
	Name           Text `json:"name"`
	ProductName    Text `json:"productName"`

	Quantity amount.Value `json:"quantity"`
	Qty      amount.Value `json:"qty"`

	SellingPrice amount.Value `json:"sellingPrice"`
	Price        amount.Value `json:"price"`
	Rate         amount.Value `json:"rate"`
	UnitPrice    amount.Value `json:"unitPrice"`
	TotalPrice   amount.Value `json:"totalPrice"`
	Subtotal     amount.Value `json:"subtotal"`

	CostPrice      amount.Value `json:"costPrice"`
	PurchasePrice  amount.Value `json:"purchasePrice"`
	UnitCost       amount.Value `json:"unitCost"`
	TotalCost      amount.Value `json:"totalCost"`
	TotalCostPrice amount.Value `json:"totalCostPrice"`

	IsDirectSale Flag `json:"isDirectSale"`
	DirectSale   Flag `json:"directSale"`
}

// Key identificador de producto normalizado (productId, product_id, id, sku).
func (it *OrderItem) Key() string { return FirstRef(it.ProductID, it.ProductIDSnake, it.ID, it.SKU) }

// DisplayName nombre visible del producto.
func (it *OrderItem) DisplayName() string { return FirstText(it.Name, it.ProductName) }

// IsDirect indica si la línea es de venta directa.
func (it *OrderItem) IsDirect() bool { return bool(it.IsDirectSale) || bool(it.DirectSale) }

// Units cantidad vendida; 1 si no viene informada.
func (it *OrderItem) Units() decimal.Decimal {
	return amount.FirstPositiveOr(decimal.NewFromInt(1), it.Quantity, it.Qty)
}

// UnitSelling precio unitario de venta.
func (it *OrderItem) UnitSelling() decimal.Decimal {
	return amount.FirstPositiveOr(decimal.Zero, it.SellingPrice, it.Price, it.Rate, it.UnitPrice)
}

// SellingTotal total de venta de la línea: campo total explícito si es > 0, si no unitario × cantidad.
func (it *OrderItem) SellingTotal() decimal.Decimal {
	if d, ok := amount.FirstPositive(it.TotalPrice, it.Subtotal); ok {
		return d
	}
	return it.UnitSelling().Mul(it.Units())
}

// CostTotal costo total de la línea: campo total explícito si es > 0, si no costo unitario × cantidad.
func (it *OrderItem) CostTotal() decimal.Decimal {
	if d, ok := amount.FirstPositive(it.TotalCost, it.TotalCostPrice); ok {
		return d
	}
	unit := amount.FirstPositiveOr(decimal.Zero, it.CostPrice, it.PurchasePrice, it.UnitCost)
	return unit.Mul(it.Units())
}

// UnitCostValue costo por unidad derivado del total (cantidad mínima 1).
func (it *OrderItem) UnitCostValue() decimal.Decimal {
	qty := it.Units()
	if qty.LessThan(decimal.NewFromInt(1)) {
		qty = decimal.NewFromInt(1)
	}
	return it.CostTotal().Div(qty)
}

// SplitPayment desglose registrado de un pago dividido.
type SplitPayment struct {
	Cash   amount.Value `json:"cash"`
	Online amount.Value `json:"online"`
	Due    amount.Value `json:"due"`
}

// IsZero indica que no se registró desglose.
func (s SplitPayment) IsZero() bool {
	return !s.Cash.Valid() && !s.Online.Valid() && !s.Due.Valid()
}
