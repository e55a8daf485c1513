package reporting_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-reportes/internal/application/dto"
	"github.com/jhoicas/Inventario-reportes/internal/application/reporting"
	"github.com/jhoicas/Inventario-reportes/internal/domain"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

var fixedNow = time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC)

const tenantSnapshot = `{
	"orders": [
		{"id":"o1","shopId":"shop-1","createdAt":"2024-03-10T09:00:00","totalAmount":100,"paymentMethod":"cash",
		 "customerId":"c1","items":[{"productId":"p1","name":"Arroz","price":100,"costPrice":60}]},
		{"id":"o2","shopId":"shop-2","createdAt":"2024-03-10T10:00:00","totalAmount":500,"items":[{"price":500}]},
		{"id":"legacy","createdAt":"2024-03-10T11:00:00","totalAmount":10,"items":[{"price":10}]}
	],
	"customers": [{"id":"c1","shopId":"shop-1","name":"Ana"}]
}`

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeRepo struct {
	snap  report.Snapshot
	err   error
	calls int
	hints []string
}

func (r *fakeRepo) LoadSnapshot(_ context.Context, ownerHint []string) (report.Snapshot, error) {
	r.calls++
	r.hints = ownerHint
	return r.snap, r.err
}

type fakeCache struct {
	items  map[string]*dto.ReportDTO
	getErr error
	setErr error
}

func (c *fakeCache) Get(_ context.Context, key string) (*dto.ReportDTO, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.items[key]
	if !ok {
		return nil, false, nil
	}
	cp := *v
	return &cp, true, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value *dto.ReportDTO, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.items[key] = value
	return nil
}

func newRepo(t *testing.T) *fakeRepo {
	t.Helper()
	var snap report.Snapshot
	require.NoError(t, json.Unmarshal([]byte(tenantSnapshot), &snap))
	return &fakeRepo{snap: snap}
}

func newUseCase(repo *fakeRepo, cache *fakeCache) *reporting.ReportUseCase {
	cfg := reporting.Config{
		Location: time.UTC,
		CacheTTL: time.Minute,
		Shop:     report.ShopInfo{Name: "Tienda Central"},
	}
	if cache == nil {
		return reporting.NewReportUseCase(repo, nil, nil, cfg, reporting.WithClock(func() time.Time { return fixedNow }))
	}
	return reporting.NewReportUseCase(repo, cache, nil, cfg, reporting.WithClock(func() time.Time { return fixedNow }))
}

var shop1 = report.TenantIdentity{ShopID: "shop-1", UserID: "u-1"}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestSummary_AplicaAlcanceDelTenant(t *testing.T) {
	repo := newRepo(t)
	uc := newUseCase(repo, nil)

	out, err := uc.Summary(context.Background(), shop1, dto.ReportQuery{Range: "today"})

	require.NoError(t, err)
	assert.Equal(t, []string{"u-1", "shop-1"}, repo.hints)
	assert.Equal(t, 2, out.Metrics.OrderCount, "o1 propio + legado sin dueño")
	assert.Equal(t, "110", out.Metrics.TotalRevenue.String())
	assert.Equal(t, "today", out.Range.Selector)
	assert.Equal(t, "normal", out.Mode)
	assert.NotEmpty(t, out.RunID)
	assert.Equal(t, fixedNow, out.GeneratedAt)
	assert.Equal(t, []string{"Cash"}, out.Payments.Labels)
	assert.Len(t, out.Payments.Buckets, 4)
}

func TestSummary_UsaCache(t *testing.T) {
	repo := newRepo(t)
	cache := &fakeCache{items: map[string]*dto.ReportDTO{}}
	uc := newUseCase(repo, cache)

	first, err := uc.Summary(context.Background(), shop1, dto.ReportQuery{Range: "7d"})
	require.NoError(t, err)
	second, err := uc.Summary(context.Background(), shop1, dto.ReportQuery{Range: "7d"})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.RunID, second.RunID)

	_, err = uc.Summary(context.Background(), shop1, dto.ReportQuery{Range: "7d", Mode: "direct"})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls, "otro modo es otra clave")
}

func TestSummary_ErrorDeCacheNoFallaLaSolicitud(t *testing.T) {
	repo := newRepo(t)
	cache := &fakeCache{items: map[string]*dto.ReportDTO{}, getErr: errors.New("redis caído"), setErr: errors.New("redis caído")}

	out, err := newUseCase(repo, cache).Summary(context.Background(), shop1, dto.ReportQuery{})

	require.NoError(t, err)
	assert.False(t, out.Cached)
}

func TestSummary_CustomInvalido(t *testing.T) {
	uc := newUseCase(newRepo(t), nil)

	_, err := uc.Summary(context.Background(), shop1, dto.ReportQuery{Range: "custom", Start: "2024-03-10", End: "2024-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, reporting.IsClientError(err))

	_, err = uc.Summary(context.Background(), shop1, dto.ReportQuery{Range: "custom", Start: "ayer"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummary_ErrorDelRepositorio(t *testing.T) {
	repo := &fakeRepo{err: domain.ErrStoreUnavailable}

	_, err := newUseCase(repo, nil).Summary(context.Background(), shop1, dto.ReportQuery{})

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.False(t, reporting.IsClientError(err))
}

func TestHourly(t *testing.T) {
	uc := newUseCase(newRepo(t), nil)

	s, err := uc.Hourly(context.Background(), shop1, dto.HourlyQuery{Day: "2024-03-10"})
	require.NoError(t, err)
	assert.Equal(t, "hourly", s.Granularity)
	require.Len(t, s.Revenue, 24)
	assert.Equal(t, "100", s.Revenue[9].String())

	_, err = uc.Hourly(context.Background(), shop1, dto.HourlyQuery{Day: "10-03-2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceText(t *testing.T) {
	uc := newUseCase(newRepo(t), nil)

	text, err := uc.InvoiceText(context.Background(), shop1, "o1")
	require.NoError(t, err)
	assert.Contains(t, text, "Tienda Central")
	assert.Contains(t, text, "Ana")

	_, err = uc.InvoiceText(context.Background(), shop1, "o2")
	assert.ErrorIs(t, err, domain.ErrNotFound, "el pedido de otro tenant no es visible")
}

func TestDebtors_Paginado(t *testing.T) {
	var snap report.Snapshot
	require.NoError(t, json.Unmarshal([]byte(`{
		"customerTransactions": [
			{"id":"t1","shopId":"shop-1","customerId":"c1","type":"credit_sale","amount":50},
			{"id":"t2","shopId":"shop-1","customerId":"c2","type":"credit","amount":80},
			{"id":"t3","shopId":"shop-1","customerId":"c3","type":"credit","amount":20},
			{"id":"t4","shopId":"shop-1","customerId":"c3","type":"payment","amount":20},
			{"id":"t5","shopId":"shop-2","customerId":"c9","type":"credit","amount":999}
		],
		"customers": [{"id":"c2","shopId":"shop-1","name":"Beto"}]
	}`), &snap))
	uc := newUseCase(&fakeRepo{snap: snap}, nil)

	first, err := uc.Debtors(context.Background(), shop1, dto.PageRequest{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, dto.PageResponse{Limit: 1, Offset: 0, Total: 2}, first.Page)
	require.Len(t, first.Items, 1)
	assert.Equal(t, "c2", first.Items[0].CustomerID)
	assert.Equal(t, "Beto", first.Items[0].Name)
	assert.Equal(t, "80", first.Items[0].Balance.String())

	second, err := uc.Debtors(context.Background(), shop1, dto.PageRequest{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "c1", second.Items[0].CustomerID)

	past, err := uc.Debtors(context.Background(), shop1, dto.PageRequest{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, past.Items)
	assert.Equal(t, dto.DefaultPageLimit, past.Page.Limit)
}
