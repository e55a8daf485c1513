package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-reportes/pkg/amount"
)

// PettyExpense gasto menor registrado directamente por el usuario (no derivado de ventas).
type PettyExpense struct {
	Ownership
	ID    Ref `json:"id"`
	DocID Ref `json:"_id"`

	Amount      amount.Value `json:"amount"`
	Category    Text         `json:"category"`
	Description Text         `json:"description"`

	Date      Timestamp `json:"date"`
	CreatedAt Timestamp `json:"createdAt"`

	IsDeleted Flag `json:"isDeleted"`
	IsSynced  Flag `json:"isSynced"`
}

// Key identificador del gasto.
func (e *PettyExpense) Key() string { return FirstRef(e.ID, e.DocID) }

// Timestamp fecha del gasto (date o createdAt).
func (e *PettyExpense) Timestamp() Timestamp { return FirstTimestamp(e.Date, e.CreatedAt) }

// Value monto del gasto (0 si falta o es inválido).
func (e *PettyExpense) Value() decimal.Decimal {
	return amount.FirstPositiveOr(decimal.Zero, e.Amount)
}
