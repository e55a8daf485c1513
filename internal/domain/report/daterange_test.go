package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

func TestResolveRange_HoyNoDependeDeLaHora(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	early := time.Date(2024, time.March, 10, 0, 0, 1, 0, bogota)
	late := time.Date(2024, time.March, 10, 23, 59, 58, 0, bogota)

	a := report.ResolveRange(report.SelectorToday, early, "", "")
	b := report.ResolveRange(report.SelectorToday, late, "", "")

	assert.Equal(t, a, b)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, bogota), a.Start)
	assert.Equal(t, time.Date(2024, time.March, 10, 23, 59, 59, int(999*time.Millisecond), bogota), a.End)
}

func TestResolveRange_VentanasRelativas(t *testing.T) {
	endOfToday := time.Date(2024, time.March, 10, 23, 59, 59, int(999*time.Millisecond), time.UTC)

	r7 := report.ResolveRange(report.Selector7d, testNow, "", "")
	r1y := report.ResolveRange(report.Selector1y, testNow, "", "")
	all := report.ResolveRange(report.SelectorAll, testNow, "", "")

	assert.Equal(t, endOfToday, r7.End)
	assert.Equal(t, endOfToday.AddDate(0, 0, -7), r7.Start)
	assert.Equal(t, endOfToday.AddDate(-1, 0, 0), r1y.Start)
	assert.Equal(t, int64(0), all.Start.Unix())
	assert.True(t, all.Contains(time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestResolveRange_Custom(t *testing.T) {
	r := report.ResolveRange(report.SelectorCustom, testNow, "2024-01-31", "2024-03-01")

	assert.True(t, r.Valid())
	assert.Equal(t, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, 1, r.End.Day())
	assert.Equal(t, 23, r.End.Hour())

	invalid := report.ResolveRange(report.SelectorCustom, testNow, "31/01/2024", "")
	assert.False(t, invalid.Valid())
	assert.False(t, invalid.Contains(testNow))
}

func TestParseSelector_DesconocidoEsHoy(t *testing.T) {
	assert.Equal(t, report.SelectorToday, report.ParseSelector("quarter"))
	assert.Equal(t, report.Selector30d, report.ParseSelector(" 30D "))
}
