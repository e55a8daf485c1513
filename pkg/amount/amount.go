// Package amount resuelve montos que llegan con varios alias por campo
// (precio, rate, total, totalAmount...) desde registros heterogéneos.
//
// Un Value nunca falla al decodificar: números, strings numéricos y null se
// aceptan; cualquier otra cosa (NaN, texto, booleanos) queda como ausente.
package amount

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Value es un monto opcional. El valor cero (Value{}) representa "ausente".
type Value struct {
	d  decimal.Decimal
	ok bool
}

// New construye un Value presente.
func New(d decimal.Decimal) Value { return Value{d: d, ok: true} }

// NewFromFloat construye un Value; NaN e infinitos quedan como ausentes.
func NewFromFloat(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{d: decimal.NewFromFloat(f), ok: true}
}

// NewFromInt construye un Value entero.
func NewFromInt(n int64) Value { return Value{d: decimal.NewFromInt(n), ok: true} }

// Parse interpreta un string numérico ("1200", " 12.5 ", "1,200.50").
func Parse(s string) Value {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return Value{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}
	}
	return Value{d: d, ok: true}
}

// Valid indica si el campo venía informado con un número.
func (v Value) Valid() bool { return v.ok }

// Decimal devuelve el monto, o cero si está ausente.
func (v Value) Decimal() decimal.Decimal {
	if !v.ok {
		return decimal.Zero
	}
	return v.d
}

// IsPositive es true solo para montos presentes y > 0.
func (v Value) IsPositive() bool { return v.ok && v.d.IsPositive() }

// UnmarshalJSON acepta número, string numérico o null. Nunca devuelve error:
// un campo mal formado se trata como ausente.
func (v *Value) UnmarshalJSON(b []byte) error {
	*v = Value{}
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		*v = Parse(s)
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	*v = Value{d: d, ok: true}
	return nil
}

// MarshalJSON serializa null cuando está ausente.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return []byte(v.d.String()), nil
}

// FirstPositive recorre los alias en orden y devuelve el primero presente y > 0.
func FirstPositive(vals ...Value) (decimal.Decimal, bool) {
	for _, v := range vals {
		if v.IsPositive() {
			return v.d, true
		}
	}
	return decimal.Zero, false
}

// FirstPositiveOr es FirstPositive con valor por defecto.
func FirstPositiveOr(def decimal.Decimal, vals ...Value) decimal.Decimal {
	if d, ok := FirstPositive(vals...); ok {
		return d
	}
	return def
}

// SafeDiv divide protegiendo la división por cero (devuelve 0).
func SafeDiv(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}
