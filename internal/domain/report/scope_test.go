package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-reportes/internal/domain/entity"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

func TestTenantIdentity_Candidates_NormalizaYDeduplica(t *testing.T) {
	id := report.TenantIdentity{UserID: " u-1 ", UID: "u-1", ShopID: "shop-1", StoreID: "", CompanyID: "shop-1"}

	c := id.Candidates()

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"u-1", "shop-1"}, c.IDs())
	assert.True(t, c.Contains("shop-1"))
	assert.False(t, c.Contains("SHOP-1"), "la comparación es sensible a mayúsculas")
}

func TestScopeFilter_SinCandidatosNoFiltra(t *testing.T) {
	var orders []entity.Order
	decode(t, `[{"id":"a","sellerId":"x"},{"id":"b","sellerId":"y"}]`, &orders)

	got := report.Scope(report.NewScopeFilter(report.NewCandidateSet(), report.PolicyAllowUnknownOwner), orders)

	assert.Len(t, got, 2)
}

func TestScopeFilter_DuenoDesconocidoSegunPolitica(t *testing.T) {
	var orders []entity.Order
	decode(t, `[
		{"id":"legacy"},
		{"id":"mine","shop_id":"shop-1"},
		{"id":"other","seller":{"id":"shop-2"}},
		{"id":"nested","seller":{"_id":"shop-1"}},
		{"id":"numeric","userId":42}
	]`, &orders)
	candidates := report.TenantIdentity{ShopID: "shop-1", UserID: "42"}.Candidates()

	permissive := report.Scope(report.NewScopeFilter(candidates, report.PolicyAllowUnknownOwner), orders)
	strict := report.Scope(report.NewScopeFilter(candidates, report.PolicyDenyUnknownOwner), orders)

	keys := func(os []entity.Order) []string {
		var out []string
		for i := range os {
			out = append(out, os[i].Key())
		}
		return out
	}
	assert.Equal(t, []string{"legacy", "mine", "nested", "numeric"}, keys(permissive))
	assert.Equal(t, []string{"mine", "nested", "numeric"}, keys(strict))
}

func TestSnapshot_Scoped_FiltraTodasLasColecciones(t *testing.T) {
	snap := snapshotFrom(t, `{
		"orders": [{"id":"o1","sellerId":"shop-1"},{"id":"o2","sellerId":"shop-2"}],
		"refunds": [{"id":"r1","tenantId":"shop-2"}],
		"pettyExpenses": [{"id":"e1","ownerId":"shop-1"}],
		"customerTransactions": [{"id":"t1","businessId":"shop-2"}],
		"customers": [{"id":"c1"}]
	}`)

	scoped := snap.Scoped(report.NewScopeFilter(report.NewCandidateSet("shop-1"), report.PolicyAllowUnknownOwner))

	assert.Len(t, scoped.Orders, 1)
	assert.Empty(t, scoped.Refunds)
	assert.Len(t, scoped.PettyExpenses, 1)
	assert.Empty(t, scoped.CustomerTransactions)
	assert.Len(t, scoped.Customers, 1)
	assert.Len(t, snap.Orders, 2, "el snapshot original no se muta")
}
