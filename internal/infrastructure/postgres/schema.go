package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaSQL tabla única de documentos de origen. Cada fila es un registro
// JSON de una colección; owner_ids guarda los identificadores de dueño
// extraídos al escribir para poder acotar la lectura por tenant.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS report_documents (
	collection  TEXT        NOT NULL,
	doc_id      TEXT        NOT NULL,
	owner_ids   TEXT[]      NOT NULL DEFAULT '{}',
	doc         JSONB       NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, doc_id)
);
CREATE INDEX IF NOT EXISTS report_documents_owner_ids_idx
	ON report_documents USING GIN (owner_ids);
`

// EnsureSchema crea la tabla de documentos si no existe.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
