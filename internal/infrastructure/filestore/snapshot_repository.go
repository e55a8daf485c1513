// Package filestore implementa el repositorio de snapshots sobre un directorio
// con un archivo JSON por colección (orders.json, refunds.json, ...). Cada
// archivo contiene un arreglo de documentos; un archivo ausente equivale a una
// colección vacía.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/Inventario-reportes/internal/domain"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
	"github.com/jhoicas/Inventario-reportes/internal/domain/repository"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/documents"
	"github.com/jhoicas/Inventario-reportes/pkg/logger"
)

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository lee el directorio completo en cada llamada; el contenido
// puede cambiar entre peticiones sin reiniciar el servicio.
type SnapshotRepository struct {
	dir string
	log *logger.Logger
}

// NewSnapshotRepository valida que dir exista y sea un directorio.
func NewSnapshotRepository(dir string, log *logger.Logger) (*SnapshotRepository, error) {
	if log == nil {
		log = logger.Nop()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s no es un directorio", domain.ErrStoreUnavailable, dir)
	}
	return &SnapshotRepository{dir: dir, log: log.Component("file_snapshot")}, nil
}

// LoadSnapshot ignora ownerHint: el filtro de tenant lo aplica el caso de uso.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context, _ []string) (report.Snapshot, error) {
	raw, err := r.ReadRaw(ctx)
	if err != nil {
		return report.Snapshot{}, err
	}
	res, err := documents.Decode(ctx, raw)
	if err != nil {
		return report.Snapshot{}, err
	}
	if res.Skipped > 0 {
		r.log.Warn().Int("skipped", res.Skipped).Str("dir", r.dir).Msg("documentos ilegibles descartados")
	}
	return res.Snapshot, nil
}

// ReadRaw devuelve los documentos crudos de todas las colecciones.
func (r *SnapshotRepository) ReadRaw(ctx context.Context) (documents.Raw, error) {
	raw := documents.Raw{}
	for _, c := range repository.Collections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		docs, err := readCollection(filepath.Join(r.dir, c+".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, c, err)
		}
		raw[c] = docs
	}
	return raw, nil
}

func readCollection(path string) ([]json.RawMessage, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var docs []json.RawMessage
	if err := json.Unmarshal(b, &docs); err != nil {
		return nil, fmt.Errorf("se esperaba un arreglo JSON: %w", err)
	}
	return docs, nil
}
