package export

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inventario-reportes/internal/application/ports"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Writer ────────────────────────────────────────────────────────────────────

var _ ports.SummaryWriter = PDFWriter{}

// PDFWriter resumen en A4: título, tabla Concepto/Valor y pie.
type PDFWriter struct {
	Author string
}

func (PDFWriter) Format() string      { return "pdf" }
func (PDFWriter) ContentType() string { return "application/pdf" }

func (w PDFWriter) Write(title string, rows []report.SummaryRow) ([]byte, error) {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true)
	if w.Author != "" {
		b = b.WithAuthor(w.Author, true)
	}

	m := maroto.New(b.Build())

	m.AddRows(titleRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(summaryRows(rows)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(title string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 3,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorWhite, Top: 2, Left: 2, Right: 2,
		}))
	}
	return row.New(8).Add(
		h(headerLabel, 8, align.Left),
		h(headerValue, 4, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// summaryRows una fila por concepto, con fondo alterno.
func summaryRows(rows []report.SummaryRow) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for i, r := range rows {
		style := props.Text{Size: 9, Top: 1.5}
		if r.Label == "Utilidad neta" {
			style.Style = fontstyle.Bold
		}
		labelProps, valueProps := style, style
		labelProps.Left = 2
		valueProps.Align, valueProps.Right = align.Right, 2

		rw := row.New(7).Add(
			col.New(8).Add(text.New(r.Label, labelProps)),
			col.New(4).Add(text.New(displayValue(r), valueProps)),
		)
		if i%2 == 1 {
			rw.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		out = append(out, rw)
	}
	return out
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Montos redondeados a dos decimales. Margen de utilidad sobre ingresos netos.",
			props.Text{Size: 7, Color: colorGray, Top: 3}),
	))
}
