package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-reportes/internal/domain"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
	"github.com/jhoicas/Inventario-reportes/internal/domain/repository"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/documents"
	"github.com/jhoicas/Inventario-reportes/pkg/logger"
)

// Asegura que SnapshotRepository implementa la interfaz del dominio.
var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// Todas las colecciones en una sola sentencia, dentro de una transacción
// REPEATABLE READ de solo lectura (ver TxRunner.RunReadOnly).
const loadDocumentsSQL = `
	SELECT collection, doc
	FROM report_documents
	WHERE collection = ANY($1)
	  AND (cardinality($2::text[]) = 0 OR cardinality(owner_ids) = 0 OR owner_ids && $2::text[])`

// SnapshotRepository implementación de repository.SnapshotRepository con pgx.
type SnapshotRepository struct {
	tx  *TxRunner
	log *logger.Logger
}

// NewSnapshotRepository construye el repositorio.
func NewSnapshotRepository(pool *pgxpool.Pool, log *logger.Logger) *SnapshotRepository {
	if log == nil {
		log = logger.Nop()
	}
	return &SnapshotRepository{tx: NewTxRunner(pool), log: log.Component("postgres_snapshot")}
}

// LoadSnapshot lee los documentos del tenant (y los sin dueño) y los decodifica.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context, ownerHint []string) (report.Snapshot, error) {
	if ownerHint == nil {
		ownerHint = []string{}
	}
	var raw documents.Raw
	err := r.tx.RunReadOnly(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, loadDocumentsSQL, repository.Collections, ownerHint)
		if err != nil {
			return err
		}
		raw, err = scanDocuments(rows)
		return err
	})
	if err != nil {
		return report.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	res, err := documents.Decode(ctx, raw)
	if err != nil {
		return report.Snapshot{}, err
	}
	if res.Skipped > 0 {
		r.log.Warn().Int("skipped", res.Skipped).Msg("documentos ilegibles descartados")
	}
	r.log.Debug().Int("documents", raw.Len()).Int("owner_hints", len(ownerHint)).Msg("snapshot cargado")
	return res.Snapshot, nil
}

func scanDocuments(rows pgx.Rows) (documents.Raw, error) {
	defer rows.Close()
	raw := documents.Raw{}
	for rows.Next() {
		var (
			collection string
			doc        []byte
		)
		if err := rows.Scan(&collection, &doc); err != nil {
			return nil, err
		}
		raw.Add(collection, json.RawMessage(doc))
	}
	return raw, rows.Err()
}

// ── Escritura (carga de datos) ───────────────────────────────────────────────

const upsertDocumentSQL = `
	INSERT INTO report_documents (collection, doc_id, owner_ids, doc, updated_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (collection, doc_id)
	DO UPDATE SET owner_ids = EXCLUDED.owner_ids, doc = EXCLUDED.doc, updated_at = now()`

// ErrUnknownCollection colección fuera de repository.Collections.
var ErrUnknownCollection = errors.New("colección desconocida")

// DocumentWriter carga documentos crudos en report_documents.
type DocumentWriter struct {
	tx *TxRunner
}

// NewDocumentWriter construye el writer sobre el pool.
func NewDocumentWriter(pool *pgxpool.Pool) *DocumentWriter {
	return &DocumentWriter{tx: NewTxRunner(pool)}
}

// Import hace upsert de todas las colecciones en una sola transacción y
// devuelve cuántos documentos escribió. Los documentos que no son objetos
// JSON se omiten.
func (w *DocumentWriter) Import(ctx context.Context, raw documents.Raw) (int, error) {
	for collection := range raw {
		if !slices.Contains(repository.Collections, collection) {
			return 0, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
		}
	}

	written := 0
	err := w.tx.Run(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for collection, docs := range raw {
			for _, doc := range docs {
				meta, err := documents.ReadMeta(collection, doc)
				if err != nil {
					continue
				}
				owners := meta.Owners
				if owners == nil {
					owners = []string{}
				}
				batch.Queue(upsertDocumentSQL, collection, meta.ID, owners, []byte(doc))
			}
		}
		if batch.Len() == 0 {
			return nil
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("upsert documentos: %w", err)
		}
		written = batch.Len()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}
