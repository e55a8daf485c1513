// Package reporting contiene los casos de uso del motor de reportes: carga del
// snapshot del tenant, cálculo, cache y exportación.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-reportes/internal/application/dto"
	"github.com/jhoicas/Inventario-reportes/internal/application/ports"
	"github.com/jhoicas/Inventario-reportes/internal/domain"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
	"github.com/jhoicas/Inventario-reportes/internal/domain/repository"
	"github.com/jhoicas/Inventario-reportes/pkg/logger"
)

// Config parámetros del caso de uso.
type Config struct {
	Location *time.Location
	CacheTTL time.Duration
	Shop     report.ShopInfo
	Policy   report.ScopePolicy
}

// Option personaliza el caso de uso.
type Option func(*ReportUseCase)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *ReportUseCase) { uc.now = now }
}

// ReportUseCase calcula reportes financieros por tenant.
//
// Flujo: identidad -> snapshot (repositorio) -> filtro de alcance -> motor ->
// DTO -> cache. Cada llamada crea su propio motor sobre su propio snapshot.
type ReportUseCase struct {
	repo  repository.SnapshotRepository
	cache ports.ReportCache
	log   *logger.Logger
	cfg   Config
	now   func() time.Time
}

// NewReportUseCase construye el caso de uso. cache y log pueden ser nil.
func NewReportUseCase(repo repository.SnapshotRepository, cache ports.ReportCache, log *logger.Logger, cfg Config, opts ...Option) *ReportUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if log == nil {
		log = logger.Nop()
	}
	uc := &ReportUseCase{repo: repo, cache: cache, log: log.Component("reporting"), cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ── Resolución de parámetros ──────────────────────────────────────────────────

type resolvedQuery struct {
	selector report.Selector
	rng      report.Range
	mode     report.SaleMode
	now      time.Time
}

func (uc *ReportUseCase) resolve(q dto.ReportQuery) (resolvedQuery, error) {
	now := uc.now().In(uc.cfg.Location)
	sel := report.ParseSelector(q.Range)
	rq := resolvedQuery{
		selector: sel,
		rng:      report.ResolveRange(sel, now, q.Start, q.End),
		mode:     report.ParseSaleMode(q.Mode),
		now:      now,
	}
	if sel == report.SelectorCustom && !rq.rng.Valid() {
		return rq, fmt.Errorf("%w: rango custom requiere start <= end en formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return rq, nil
}

// engine carga el snapshot del tenant y construye el motor.
func (uc *ReportUseCase) engine(ctx context.Context, tenant report.TenantIdentity, now time.Time) (*report.Engine, error) {
	candidates := tenant.Candidates()
	snap, err := uc.repo.LoadSnapshot(ctx, candidates.IDs())
	if err != nil {
		return nil, fmt.Errorf("reporting: snapshot: %w", err)
	}
	scoped := snap.Scoped(report.NewScopeFilter(candidates, uc.cfg.Policy))
	return report.NewEngine(scoped, report.Options{Now: now, Location: uc.cfg.Location}), nil
}

func cacheKey(tenant report.TenantIdentity, rq resolvedQuery) string {
	return fmt.Sprintf("report:v1:%s:%d:%d:%s",
		strings.Join(tenant.Candidates().IDs(), ","),
		rq.rng.Start.UnixMilli(), rq.rng.End.UnixMilli(), rq.mode)
}

// ── Casos de uso ──────────────────────────────────────────────────────────────

// Summary calcula el reporte completo del rango y modo. Usa el cache si está
// configurado; los errores del cache solo se registran.
func (uc *ReportUseCase) Summary(ctx context.Context, tenant report.TenantIdentity, q dto.ReportQuery) (*dto.ReportDTO, error) {
	rq, err := uc.resolve(q)
	if err != nil {
		return nil, err
	}

	key := cacheKey(tenant, rq)
	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, key)
		switch {
		case err != nil:
			uc.log.Warn().Err(err).Str("key", key).Msg("cache de reportes no disponible")
		case ok:
			cached.Cached = true
			return cached, nil
		}
	}

	start := time.Now()
	eng, err := uc.engine(ctx, tenant, rq.now)
	if err != nil {
		return nil, err
	}
	rep := eng.Report(rq.rng, rq.mode)
	out := toReportDTO(rep, rq.selector)
	out.RunID = uuid.NewString()
	out.GeneratedAt = rq.now

	var ev *zerolog.Event
	if rep.Diagnostics.Empty() {
		ev = uc.log.Debug()
	} else {
		ev = uc.log.Info()
	}
	ev.Str("run_id", out.RunID).
		Str("range", string(rq.selector)).
		Str("mode", string(rq.mode)).
		Int("orders", rep.Metrics.OrderCount).
		Int("skipped_orders", rep.Diagnostics.SkippedOrders).
		Int("unresolved_refunds", rep.Diagnostics.UnresolvedRefunds).
		Int("unmatched_refund_lines", rep.Diagnostics.UnmatchedRefundLines).
		Dur("took", time.Since(start)).
		Msg("reporte calculado")

	if uc.cache != nil && uc.cfg.CacheTTL > 0 {
		if err := uc.cache.Set(ctx, key, out, uc.cfg.CacheTTL); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar el reporte en cache")
		}
	}
	return out, nil
}

// Hourly serie horaria de un día (YYYY-MM-DD).
func (uc *ReportUseCase) Hourly(ctx context.Context, tenant report.TenantIdentity, q dto.HourlyQuery) (*dto.SeriesDTO, error) {
	if !report.DayRange(q.Day, uc.cfg.Location).Valid() {
		return nil, fmt.Errorf("%w: day debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	eng, err := uc.engine(ctx, tenant, uc.now().In(uc.cfg.Location))
	if err != nil {
		return nil, err
	}
	s := toSeriesDTO(eng.HourlySeries(q.Day, report.ParseSaleMode(q.Mode)))
	return &s, nil
}

// SummaryRows filas de resumen para los exportadores, con el rango resuelto.
func (uc *ReportUseCase) SummaryRows(ctx context.Context, tenant report.TenantIdentity, q dto.ReportQuery) ([]report.SummaryRow, dto.RangeDTO, error) {
	rq, err := uc.resolve(q)
	if err != nil {
		return nil, dto.RangeDTO{}, err
	}
	eng, err := uc.engine(ctx, tenant, rq.now)
	if err != nil {
		return nil, dto.RangeDTO{}, err
	}
	return eng.SummaryRows(rq.rng, rq.mode), toRangeDTO(rq.rng, rq.selector), nil
}

// Debtors página de clientes con saldo pendiente, de mayor a menor saldo.
// El saldo no depende del rango: se reproduce el libro completo.
func (uc *ReportUseCase) Debtors(ctx context.Context, tenant report.TenantIdentity, page dto.PageRequest) (*dto.DebtorsPageDTO, error) {
	page.DefaultPage()
	eng, err := uc.engine(ctx, tenant, uc.now().In(uc.cfg.Location))
	if err != nil {
		return nil, err
	}
	all := toLedgerDTO(eng.Ledger()).Debtors
	from := min(page.Offset, len(all))
	to := min(from+page.Limit, len(all))
	return &dto.DebtorsPageDTO{
		Items: all[from:to],
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(all)},
	}, nil
}

// InvoiceText recibo de texto del pedido. domain.ErrNotFound si el pedido no
// existe o no pertenece al tenant.
func (uc *ReportUseCase) InvoiceText(ctx context.Context, tenant report.TenantIdentity, orderID string) (string, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return "", fmt.Errorf("%w: id de pedido vacío", domain.ErrInvalidInput)
	}
	eng, err := uc.engine(ctx, tenant, uc.now().In(uc.cfg.Location))
	if err != nil {
		return "", err
	}
	text, ok := eng.Invoice(orderID, uc.cfg.Shop)
	if !ok {
		return "", fmt.Errorf("pedido %s: %w", orderID, domain.ErrNotFound)
	}
	return text, nil
}

// IsClientError indica errores atribuibles a la solicitud.
func IsClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound)
}
