package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Timestamp instante de un registro. Los valores sin zona horaria ("2024-03-01",
// "2024-03-01T10:00:00") son "flotantes": se interpretan en la zona del reporte.
// El valor cero significa fecha ausente o ilegible.
type Timestamp struct {
	t        time.Time
	floating bool
}

var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02T15:04:05.000Z0700",
	}
	floatingLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

// At construye un Timestamp con zona explícita.
func At(t time.Time) Timestamp { return Timestamp{t: t} }

// ParseTimestamp interpreta un string de fecha; devuelve cero si no se reconoce.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{t: t}
		}
	}
	for _, layout := range floatingLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{t: t, floating: true}
		}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return fromEpoch(n)
	}
	return Timestamp{}
}

// fromEpoch acepta segundos o milisegundos (>= 1e11 se asume milisegundos).
func fromEpoch(n float64) Timestamp {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Timestamp{}
	}
	if math.Abs(n) >= 1e11 {
		return Timestamp{t: time.UnixMilli(int64(n)).UTC()}
	}
	sec, frac := math.Modf(n)
	return Timestamp{t: time.Unix(int64(sec), int64(frac*1e9)).UTC()}
}

// UnmarshalJSON acepta strings, epoch numérico y objetos tipo Firestore/Mongo
// ({"seconds": ..}, {"_seconds": ..}, {"$date": ..}). Nunca devuelve error.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	*ts = Timestamp{}
	raw := bytes.TrimSpace(b)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			*ts = ParseTimestamp(s)
		}
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil
		}
		if v, ok := obj["$date"]; ok {
			return ts.UnmarshalJSON(v)
		}
		for _, k := range []string{"seconds", "_seconds"} {
			v, ok := obj[k]
			if !ok {
				continue
			}
			sec, err := strconv.ParseInt(strings.Trim(string(v), `"`), 10, 64)
			if err != nil {
				return nil
			}
			var nanos int64
			for _, nk := range []string{"nanoseconds", "_nanoseconds"} {
				if nv, ok := obj[nk]; ok {
					nanos, _ = strconv.ParseInt(strings.Trim(string(nv), `"`), 10, 64)
				}
			}
			*ts = Timestamp{t: time.Unix(sec, nanos).UTC()}
			return nil
		}
	default:
		if n, err := strconv.ParseFloat(string(raw), 64); err == nil {
			*ts = fromEpoch(n)
		}
	}
	return nil
}

// MarshalJSON serializa en RFC3339 (o null si está ausente).
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	if ts.floating {
		return json.Marshal(ts.t.Format("2006-01-02T15:04:05.999999999"))
	}
	return json.Marshal(ts.t.Format(time.RFC3339Nano))
}

// IsZero indica fecha ausente o ilegible.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// In devuelve el instante en la zona indicada. Los valores flotantes conservan
// su hora de pared y se anclan a loc.
func (ts Timestamp) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	if ts.floating {
		y, m, d := ts.t.Date()
		h, mi, s := ts.t.Clock()
		return time.Date(y, m, d, h, mi, s, ts.t.Nanosecond(), loc)
	}
	return ts.t.In(loc)
}

// FirstTimestamp devuelve el primer Timestamp informado.
func FirstTimestamp(ts ...Timestamp) Timestamp {
	for _, t := range ts {
		if !t.IsZero() {
			return t
		}
	}
	return Timestamp{}
}
