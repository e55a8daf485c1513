package report

import (
	"strings"
	"time"
)

// Selector selector simbólico de rango.
type Selector string

const (
	SelectorToday  Selector = "today"
	Selector7d     Selector = "7d"
	Selector30d    Selector = "30d"
	Selector1y     Selector = "1y"
	SelectorAll    Selector = "all"
	SelectorCustom Selector = "custom"
)

const dateLayout = "2006-01-02"

// ParseSelector normaliza el selector; valores desconocidos caen en "today".
func ParseSelector(s string) Selector {
	switch sel := Selector(strings.ToLower(strings.TrimSpace(s))); sel {
	case SelectorToday, Selector7d, Selector30d, Selector1y, SelectorAll, SelectorCustom:
		return sel
	default:
		return SelectorToday
	}
}

// Range intervalo inclusivo [Start, End]. El valor cero es un rango inválido:
// no contiene ningún instante y las series generadas quedan vacías.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid indica que ambos extremos existen y Start <= End.
func (r Range) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start)
}

// Contains pertenencia inclusiva en ambos extremos.
func (r Range) Contains(t time.Time) bool {
	if !r.Valid() || t.IsZero() {
		return false
	}
	return !t.Before(r.Start) && !t.After(r.End)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// ResolveRange traduce un selector (y, para custom, fechas YYYY-MM-DD) a un
// rango inclusivo en la zona de now:
//   - today:  00:00:00.000 a 23:59:59.999 del día de now;
//   - 7d/30d/1y: fin = fin del día de now, inicio = fin menos N días/años;
//   - all:    inicio = epoch;
//   - custom: medianoche de start a 23:59:59.999 de end.
//
// Fechas custom ilegibles producen un rango inválido (no un error).
func ResolveRange(sel Selector, now time.Time, customStart, customEnd string) Range {
	end := endOfDay(now)
	switch sel {
	case Selector7d:
		return Range{Start: end.AddDate(0, 0, -7), End: end}
	case Selector30d:
		return Range{Start: end.AddDate(0, 0, -30), End: end}
	case Selector1y:
		return Range{Start: end.AddDate(-1, 0, 0), End: end}
	case SelectorAll:
		return Range{Start: time.Unix(0, 0).In(now.Location()), End: end}
	case SelectorCustom:
		start, errS := time.ParseInLocation(dateLayout, strings.TrimSpace(customStart), now.Location())
		last, errE := time.ParseInLocation(dateLayout, strings.TrimSpace(customEnd), now.Location())
		if errS != nil || errE != nil {
			return Range{}
		}
		return Range{Start: startOfDay(start), End: endOfDay(last)}
	default:
		return Range{Start: startOfDay(now), End: end}
	}
}

// DayRange rango de un día calendario (YYYY-MM-DD) en loc.
func DayRange(day string, loc *time.Location) Range {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(day), loc)
	if err != nil {
		return Range{}
	}
	return Range{Start: startOfDay(d), End: endOfDay(d)}
}
