// Package report es el motor de agregación y asignación de los reportes
// financieros: alcance por tenant, rango de fechas, partición por modo de venta,
// asignación proporcional de devoluciones, COGS, conciliación por método de pago
// y series temporales.
//
// Todo el paquete es puro: no hace I/O, no lee el reloj (recibe "now") y no
// muta los registros de origen. Los datos sucios degradan a valores
// conservadores (normalmente cero) en lugar de devolver error.
package report

import (
	"strings"

	"github.com/jhoicas/Inventario-reportes/internal/domain/entity"
)

// ScopePolicy decide qué hacer con registros que no exponen ningún campo de dueño.
type ScopePolicy int

const (
	// PolicyAllowUnknownOwner deja pasar registros sin dueño (registros legados
	// previos al multi-tenant siguen visibles). Es el comportamiento por defecto.
	PolicyAllowUnknownOwner ScopePolicy = iota
	// PolicyDenyUnknownOwner descarta registros sin dueño.
	PolicyDenyUnknownOwner
)

// TenantIdentity identificadores del tenant actual entregados por el
// colaborador de autenticación. Cualquiera de ellos puede aparecer como dueño
// en los registros.
type TenantIdentity struct {
	UserID     string `json:"user_id"`
	UID        string `json:"uid"`
	SellerID   string `json:"seller_id"`
	ShopID     string `json:"shop_id"`
	StoreID    string `json:"store_id"`
	TenantID   string `json:"tenant_id"`
	BusinessID string `json:"business_id"`
	OwnerID    string `json:"owner_id"`
	CompanyID  string `json:"company_id"`
}

// Candidates normaliza y deduplica los identificadores del tenant.
func (t TenantIdentity) Candidates() CandidateSet {
	return NewCandidateSet(
		t.UserID, t.UID, t.SellerID, t.ShopID, t.StoreID,
		t.TenantID, t.BusinessID, t.OwnerID, t.CompanyID,
	)
}

// CandidateSet conjunto de identificadores candidatos del tenant actual.
type CandidateSet struct {
	ids []string
	set map[string]struct{}
}

// NewCandidateSet recorta, descarta vacíos y deduplica conservando el orden.
func NewCandidateSet(values ...string) CandidateSet {
	cs := CandidateSet{set: make(map[string]struct{}, len(values))}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := cs.set[v]; dup {
			continue
		}
		cs.set[v] = struct{}{}
		cs.ids = append(cs.ids, v)
	}
	return cs
}

// Len cantidad de candidatos distintos.
func (c CandidateSet) Len() int { return len(c.ids) }

// IDs candidatos en orden de aparición.
func (c CandidateSet) IDs() []string { return append([]string(nil), c.ids...) }

// Contains comparación exacta (sensible a mayúsculas) tras normalizar.
func (c CandidateSet) Contains(id string) bool {
	_, ok := c.set[strings.TrimSpace(id)]
	return ok
}

// ScopeFilter restringe colecciones de registros al tenant actual.
type ScopeFilter struct {
	candidates CandidateSet
	policy     ScopePolicy
}

// NewScopeFilter construye el filtro. Con candidatos vacíos el alcance queda desactivado.
func NewScopeFilter(candidates CandidateSet, policy ScopePolicy) ScopeFilter {
	return ScopeFilter{candidates: candidates, policy: policy}
}

// Allows decide si un registro pertenece al tenant:
//   - sin candidatos: alcance desactivado, todo pasa;
//   - registro sin ningún campo de dueño: pasa según la política (permisiva por defecto);
//   - si no, algún dueño informado debe coincidir con un candidato.
func (f ScopeFilter) Allows(rec entity.Owned) bool {
	if f.candidates.Len() == 0 {
		return true
	}
	owners := rec.OwnerRefs()
	if len(owners) == 0 {
		return f.policy == PolicyAllowUnknownOwner
	}
	for _, o := range owners {
		if f.candidates.Contains(o) {
			return true
		}
	}
	return false
}

// Scope devuelve una copia con los registros que pasan el filtro.
func Scope[T entity.Owned](f ScopeFilter, records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if f.Allows(r) {
			out = append(out, r)
		}
	}
	return out
}

// Snapshot colecciones de registros de origen, internamente consistentes para
// una pasada de cálculo.
type Snapshot struct {
	Orders               []entity.Order             `json:"orders"`
	Refunds              []entity.Refund            `json:"refunds"`
	PurchaseOrders       []entity.PurchaseOrder     `json:"purchaseOrders"`
	PettyExpenses        []entity.PettyExpense      `json:"pettyExpenses"`
	CustomerTransactions []entity.LedgerTransaction `json:"customerTransactions"`
	SupplierTransactions []entity.LedgerTransaction `json:"supplierTransactions"`
	Customers            []entity.Customer          `json:"customers"`
}

// Scoped aplica el filtro de tenant a todas las colecciones.
func (s Snapshot) Scoped(f ScopeFilter) Snapshot {
	return Snapshot{
		Orders:               Scope(f, s.Orders),
		Refunds:              Scope(f, s.Refunds),
		PurchaseOrders:       Scope(f, s.PurchaseOrders),
		PettyExpenses:        Scope(f, s.PettyExpenses),
		CustomerTransactions: Scope(f, s.CustomerTransactions),
		SupplierTransactions: Scope(f, s.SupplierTransactions),
		Customers:            Scope(f, s.Customers),
	}
}
