package repository

import (
	"context"

	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

// Colecciones de registros que componen un snapshot.
const (
	CollectionOrders               = "orders"
	CollectionRefunds              = "refunds"
	CollectionPurchaseOrders       = "purchase_orders"
	CollectionPettyExpenses        = "petty_expenses"
	CollectionCustomerTransactions = "customer_transactions"
	CollectionSupplierTransactions = "supplier_transactions"
	CollectionCustomers            = "customers"
)

// Collections orden de carga.
var Collections = []string{
	CollectionOrders,
	CollectionRefunds,
	CollectionPurchaseOrders,
	CollectionPettyExpenses,
	CollectionCustomerTransactions,
	CollectionSupplierTransactions,
	CollectionCustomers,
}

// SnapshotRepository lectura de las colecciones de registros de origen.
// Las implementaciones son read-only.
type SnapshotRepository interface {
	// LoadSnapshot devuelve todas las colecciones en una lectura consistente.
	// ownerHint son los identificadores candidatos del tenant: la
	// implementación puede usarlos para acotar la lectura, pero siempre debe
	// incluir los registros sin dueño. El filtro de alcance definitivo lo
	// aplica el caso de uso.
	LoadSnapshot(ctx context.Context, ownerHint []string) (report.Snapshot, error)
}
