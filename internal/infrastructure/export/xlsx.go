package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-reportes/internal/application/ports"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

var _ ports.SummaryWriter = XLSXWriter{}

// SheetName hoja única del libro exportado.
const SheetName = "Resumen"

// Primera fila de datos (1 = título, 2 = vacía, 3 = encabezados).
const firstDataRow = 4

// XLSXWriter libro de una hoja con celdas numéricas y formato de número.
type XLSXWriter struct{}

func (XLSXWriter) Format() string { return "xlsx" }
func (XLSXWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXWriter) Write(title string, rows []report.SummaryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	st, err := newSheetStyles(f)
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilos: %w", err)
	}

	set := func(cell string, value any, style int) error {
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return err
		}
		if style == 0 {
			return nil
		}
		return f.SetCellStyle(SheetName, cell, cell, style)
	}

	// ── Título y encabezados ──
	if err := set("A1", title, st.title); err != nil {
		return nil, fmt.Errorf("xlsx: título: %w", err)
	}
	if err := f.MergeCell(SheetName, "A1", "B1"); err != nil {
		return nil, fmt.Errorf("xlsx: título: %w", err)
	}
	if err := set("A3", headerLabel, st.header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	if err := set("B3", headerValue, st.header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}

	// ── Filas ──
	for i, r := range rows {
		n := firstDataRow + i
		labelCell, _ := excelize.CoordinatesToCellName(1, n)
		valueCell, _ := excelize.CoordinatesToCellName(2, n)

		if err := set(labelCell, r.Label, 0); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", n, err)
		}
		var value any
		style := st.money
		switch r.Kind {
		case report.KindCount:
			value, style = r.Value.IntPart(), st.count
		case report.KindPercent:
			value, style = r.Value.Round(2).InexactFloat64(), st.percent
		default:
			value = r.Value.Round(2).InexactFloat64()
		}
		if err := set(valueCell, value, style); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", n, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 32); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "B", 18); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

type sheetStyles struct {
	title, header, money, percent, count int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var (
		st  sheetStyles
		err error
	)
	moneyFmt := `"$" #,##0.00`
	percentFmt := `0.00" %"`

	if st.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13, Color: "00467F"},
	}); err != nil {
		return st, err
	}
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return st, err
	}
	if st.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt}); err != nil {
		return st, err
	}
	if st.percent, err = f.NewStyle(&excelize.Style{CustomNumFmt: &percentFmt}); err != nil {
		return st, err
	}
	// 3 = "#,##0"
	if st.count, err = f.NewStyle(&excelize.Style{NumFmt: 3}); err != nil {
		return st, err
	}
	return st, nil
}
