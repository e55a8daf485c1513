package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/Inventario-reportes/internal/application/ports"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

var _ ports.SummaryWriter = CSVWriter{}

// utf8BOM hace que Excel abra el archivo como UTF-8 (tildes en las etiquetas).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter una fila por concepto: Concepto, Valor, Tipo.
type CSVWriter struct{}

func (CSVWriter) Format() string      { return "csv" }
func (CSVWriter) ContentType() string { return "text/csv; charset=utf-8" }

func (CSVWriter) Write(title string, rows []report.SummaryRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	records := make([][]string, 0, len(rows)+2)
	records = append(records,
		[]string{title, "", ""},
		[]string{headerLabel, headerValue, "Tipo"},
	)
	for _, r := range rows {
		records = append(records, []string{r.Label, plainValue(r), string(r.Kind)})
	}
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return buf.Bytes(), nil
}
