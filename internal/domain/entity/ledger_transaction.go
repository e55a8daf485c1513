package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-reportes/pkg/amount"
)

// Tipos de movimiento del libro de clientes.
const (
	CustomerTxPayment         = "payment"
	CustomerTxPaymentReceived = "payment_received"
	CustomerTxCredit          = "credit"
	CustomerTxCreditSale      = "credit_sale"
)

// Tipos de movimiento del libro de proveedores.
const (
	SupplierTxPayment     = "payment"
	SupplierTxPaymentMade = "payment_made"
	SupplierTxPurchase    = "purchase"
	SupplierTxCredit      = "credit"
)

// LedgerTransaction movimiento del libro de un cliente o proveedor. El saldo nunca
// se guarda: siempre se recalcula reproduciendo los movimientos no borrados.
type LedgerTransaction struct {
	Ownership
	ID    Ref `json:"id"`
	DocID Ref `json:"_id"`

	PartyID    Ref `json:"partyId"`
	CustomerID Ref `json:"customerId"`
	SupplierID Ref `json:"supplierId"`

	Type            Text         `json:"type"`
	TransactionType Text         `json:"transactionType"`
	Amount          amount.Value `json:"amount"`
	Note            Text         `json:"note"`
	Date            Timestamp    `json:"date"`

	IsDeleted Flag `json:"isDeleted"`
}

// Key identificador del movimiento.
func (t *LedgerTransaction) Key() string { return FirstRef(t.ID, t.DocID) }

// PartyKey identificador del cliente o proveedor.
func (t *LedgerTransaction) PartyKey() string { return FirstRef(t.PartyID, t.CustomerID, t.SupplierID) }

// Kind tipo de movimiento normalizado.
func (t *LedgerTransaction) Kind() string {
	if k := t.Type.Lower(); k != "" {
		return k
	}
	return t.TransactionType.Lower()
}

// Value monto del movimiento (0 si falta o es inválido).
func (t *LedgerTransaction) Value() decimal.Decimal {
	return amount.FirstPositiveOr(decimal.Zero, t.Amount)
}
