// Package export implementa ports.SummaryWriter para CSV, XLSX, PDF y JSON.
package export

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

// Encabezados de la tabla de resumen.
const (
	headerLabel = "Concepto"
	headerValue = "Valor"
)

// printer formato de números para lectura humana (PDF): separador de miles y
// coma decimal de español latinoamericano.
var printer = message.NewPrinter(language.LatinAmericanSpanish)

// displayValue valor formateado para mostrar.
func displayValue(r report.SummaryRow) string {
	switch r.Kind {
	case report.KindCount:
		return printer.Sprintf("%d", r.Value.IntPart())
	case report.KindPercent:
		return printer.Sprintf("%.2f", r.Value.Round(2).InexactFloat64()) + " %"
	default:
		return "$ " + printer.Sprintf("%.2f", r.Value.Round(2).InexactFloat64())
	}
}

// plainValue valor legible por máquina (CSV): punto decimal, sin miles.
func plainValue(r report.SummaryRow) string {
	if r.Kind == report.KindCount {
		return r.Value.StringFixed(0)
	}
	return r.Value.StringFixed(2)
}
