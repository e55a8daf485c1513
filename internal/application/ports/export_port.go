package ports

import "github.com/jhoicas/Inventario-reportes/internal/domain/report"

// SummaryWriter renderiza las filas de resumen a un formato de archivo.
// El formato de moneda y el layout son responsabilidad del escritor.
type SummaryWriter interface {
	Format() string
	ContentType() string
	Write(title string, rows []report.SummaryRow) ([]byte, error)
}
