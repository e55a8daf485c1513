package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-reportes/internal/domain/entity"
)

// Granularity resolución de las series temporales.
type Granularity string

const (
	GranularityHourly  Granularity = "hourly"
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
)

// dailyLimit rangos de hasta 60 días se agrupan por día; más largos, por mes.
const dailyLimit = 60 * 24 * time.Hour

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
	hourKeyLayout  = "15"
)

// Bucket punto de una serie.
type Bucket struct {
	Key     string          `json:"key"`
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
}

// Series serie temporal de ingresos netos y gastos menores.
type Series struct {
	Granularity Granularity `json:"granularity"`
	Buckets     []Bucket    `json:"buckets"`
}

// Labels etiquetas en orden.
func (s Series) Labels() []string {
	out := make([]string, len(s.Buckets))
	for i, b := range s.Buckets {
		out[i] = b.Label
	}
	return out
}

// Revenue valores de ingreso en orden.
func (s Series) Revenue() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s.Buckets))
	for i, b := range s.Buckets {
		out[i] = b.Revenue
	}
	return out
}

// Expenses valores de gasto en orden.
func (s Series) Expenses() []decimal.Decimal {
	out := make([]decimal.Decimal, len(s.Buckets))
	for i, b := range s.Buckets {
		out[i] = b.Expense
	}
	return out
}

// ChooseGranularity diaria hasta 60 días, mensual por encima.
func ChooseGranularity(r Range) Granularity {
	if r.End.Sub(r.Start) <= dailyLimit {
		return GranularityDaily
	}
	return GranularityMonthly
}

// DailyKeys un bucket por día calendario entre los extremos (inclusive).
func DailyKeys(r Range) []time.Time {
	if !r.Valid() {
		return nil
	}
	var out []time.Time
	last := startOfDay(r.End)
	for d := startOfDay(r.Start); !d.After(last); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// MonthlyKeys un bucket por mes calendario. El cursor siempre salta al día 1
// del mes siguiente: partir del 31 no se salta febrero.
func MonthlyKeys(r Range) []time.Time {
	if !r.Valid() {
		return nil
	}
	var out []time.Time
	y, m, _ := r.End.Date()
	last := time.Date(y, m, 1, 0, 0, 0, 0, r.End.Location())
	y, m, _ = r.Start.Date()
	for d := time.Date(y, m, 1, 0, 0, 0, 0, r.Start.Location()); !d.After(last); d = time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, d.Location()) {
		out = append(out, d)
	}
	return out
}

type seriesLayout struct {
	granularity Granularity
	keyLayout   string
	labelLayout string
}

var (
	dailyLayout   = seriesLayout{GranularityDaily, dayKeyLayout, "02 Jan"}
	monthlyLayout = seriesLayout{GranularityMonthly, monthKeyLayout, "Jan 2006"}
	hourlyLayout  = seriesLayout{GranularityHourly, hourKeyLayout, "15:00"}
)

// fill arma los buckets vacíos y acumula ingresos netos (ventas − devoluciones)
// y gastos menores según la clave formateada de cada instante.
func (sp seriesLayout) fill(points []time.Time, orders []NormalizedOrder, allocs []Allocation, expenses []expensePoint) Series {
	s := Series{Granularity: sp.granularity, Buckets: make([]Bucket, len(points))}
	idx := make(map[string]int, len(points))
	for i, p := range points {
		k := p.Format(sp.keyLayout)
		s.Buckets[i] = Bucket{Key: k, Label: p.Format(sp.labelLayout)}
		idx[k] = i
	}
	for _, n := range orders {
		if i, ok := idx[n.At.Format(sp.keyLayout)]; ok {
			s.Buckets[i].Revenue = s.Buckets[i].Revenue.Add(n.Total)
		}
	}
	for _, a := range allocs {
		if i, ok := idx[a.At.Format(sp.keyLayout)]; ok {
			s.Buckets[i].Revenue = s.Buckets[i].Revenue.Sub(a.Amount)
		}
	}
	for _, e := range expenses {
		if i, ok := idx[e.at.Format(sp.keyLayout)]; ok {
			s.Buckets[i].Expense = s.Buckets[i].Expense.Add(e.value)
		}
	}
	return s
}

type expensePoint struct {
	at    time.Time
	value decimal.Decimal
}

func expensePoints(expenses []entity.PettyExpense, r Range, loc *time.Location) []expensePoint {
	var out []expensePoint
	for i := range expenses {
		e := &expenses[i]
		if e.IsDeleted {
			continue
		}
		ts := e.Timestamp()
		if ts.IsZero() {
			continue
		}
		at := ts.In(loc)
		if r.Contains(at) {
			out = append(out, expensePoint{at: at, value: e.Value()})
		}
	}
	return out
}

// BuildSeries serie diaria o mensual del rango. Rango inválido: serie vacía.
func BuildSeries(r Range, orders []NormalizedOrder, allocs []Allocation, expenses []entity.PettyExpense, loc *time.Location) Series {
	g := ChooseGranularity(r)
	if !r.Valid() {
		return Series{Granularity: g}
	}
	pts := expensePoints(expenses, r, loc)
	if g == GranularityDaily {
		return dailyLayout.fill(DailyKeys(r), orders, allocs, pts)
	}
	return monthlyLayout.fill(MonthlyKeys(r), orders, allocs, pts)
}

// BuildHourlySeries 24 buckets horarios del día indicado (YYYY-MM-DD), uno por
// hora de reloj local. Solo cuentan los registros cuyo día formateado coincide con day.
func BuildHourlySeries(day string, orders []NormalizedOrder, allocs []Allocation, expenses []entity.PettyExpense, loc *time.Location) Series {
	r := DayRange(day, loc)
	if !r.Valid() {
		return Series{Granularity: GranularityHourly}
	}
	// Franjas de reloj 00..23: en días con cambio de horario sumar horas a
	// r.Start repite o salta una franja.
	y, m, d := r.Start.Date()
	points := make([]time.Time, 24)
	for h := range points {
		points[h] = time.Date(y, m, d, h, 0, 0, 0, time.UTC)
	}
	sameDay := func(t time.Time) bool { return t.Format(dayKeyLayout) == r.Start.Format(dayKeyLayout) }

	var os []NormalizedOrder
	for _, n := range orders {
		if sameDay(n.At) {
			os = append(os, n)
		}
	}
	var as []Allocation
	for _, a := range allocs {
		if sameDay(a.At) {
			as = append(as, a)
		}
	}
	return hourlyLayout.fill(points, os, as, expensePoints(expenses, r, loc))
}
