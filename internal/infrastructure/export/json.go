package export

import (
	"encoding/json"

	"github.com/jhoicas/Inventario-reportes/internal/application/ports"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

var _ ports.SummaryWriter = JSONWriter{}

// JSONWriter documento {"title": ..., "rows": [...]}; los montos van como string.
type JSONWriter struct{}

type jsonSummary struct {
	Title string              `json:"title"`
	Rows  []report.SummaryRow `json:"rows"`
}

func (JSONWriter) Format() string      { return "json" }
func (JSONWriter) ContentType() string { return "application/json" }

func (JSONWriter) Write(title string, rows []report.SummaryRow) ([]byte, error) {
	if rows == nil {
		rows = []report.SummaryRow{}
	}
	return json.MarshalIndent(jsonSummary{Title: title, Rows: rows}, "", "  ")
}
