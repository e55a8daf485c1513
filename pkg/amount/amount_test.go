package amount_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-reportes/pkg/amount"
)

func TestValue_UnmarshalJSON_AceptaNumerosYStrings(t *testing.T) {
	var payload struct {
		A amount.Value `json:"a"`
		B amount.Value `json:"b"`
		C amount.Value `json:"c"`
		D amount.Value `json:"d"`
		E amount.Value `json:"e"`
		F amount.Value `json:"f"`
	}
	raw := `{"a": 12.5, "b": " 1,200.50 ", "c": null, "d": "NaN", "e": true, "f": "abc"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	assert.True(t, payload.A.Valid())
	assert.Equal(t, "12.5", payload.A.Decimal().String())
	assert.True(t, payload.B.Valid())
	assert.Equal(t, "1200.5", payload.B.Decimal().String())

	// Campos mal formados quedan ausentes, nunca rompen la decodificación.
	assert.False(t, payload.C.Valid())
	assert.False(t, payload.D.Valid())
	assert.False(t, payload.E.Valid())
	assert.False(t, payload.F.Valid())
	assert.True(t, payload.F.Decimal().IsZero())
}

func TestFirstPositive_RespetaOrdenDeAlias(t *testing.T) {
	got, ok := amount.FirstPositive(amount.Value{}, amount.NewFromInt(0), amount.NewFromInt(-3), amount.NewFromInt(7), amount.NewFromInt(9))
	require.True(t, ok)
	assert.Equal(t, "7", got.String())

	_, ok = amount.FirstPositive(amount.Value{}, amount.NewFromInt(0))
	assert.False(t, ok)
}

func TestFirstPositiveOr_DevuelveDefecto(t *testing.T) {
	def := decimal.NewFromInt(1)
	assert.True(t, amount.FirstPositiveOr(def, amount.Parse("")).Equal(def))
	assert.Equal(t, "4", amount.FirstPositiveOr(def, amount.Parse("4")).String())
}

func TestNewFromFloat_NoFinitoEsAusente(t *testing.T) {
	assert.False(t, amount.NewFromFloat(math.NaN()).Valid())
	assert.False(t, amount.NewFromFloat(math.Inf(1)).Valid())
	assert.True(t, amount.NewFromFloat(2.25).Valid())
}

func TestSafeDiv_DivisionPorCero(t *testing.T) {
	assert.True(t, amount.SafeDiv(decimal.NewFromInt(5), decimal.Zero).IsZero())
	assert.Equal(t, "0.5", amount.SafeDiv(decimal.NewFromInt(1), decimal.NewFromInt(2)).String())
}
