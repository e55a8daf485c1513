package postgres_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-reportes/internal/domain/repository"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/documents"
	"github.com/jhoicas/Inventario-reportes/internal/infrastructure/postgres"
)

// testPool requiere REPORT_TEST_DATABASE_URL; sin ella la prueba se omite.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("REPORT_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("REPORT_TEST_DATABASE_URL no definida")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.EnsureSchema(ctx, pool))
	return pool
}

func TestSnapshotRepository_ImportarYCargar(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	shop := "shop-" + uuid.NewString()
	other := "shop-" + uuid.NewString()
	orderKey := "ord-" + uuid.NewString()
	foreignKey := "ord-" + uuid.NewString()
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(),
			`DELETE FROM report_documents WHERE owner_ids && $1::text[]`, []string{shop, other})
	})

	raw := documents.Raw{}
	raw.Add(repository.CollectionOrders, json.RawMessage(`{"orderId":"`+orderKey+`","sellerId":"`+shop+`","totalAmount":100}`))
	raw.Add(repository.CollectionOrders, json.RawMessage(`{"id":"`+foreignKey+`","sellerId":"`+other+`","totalAmount":999}`))

	w := postgres.NewDocumentWriter(pool)
	n, err := w.Import(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	_, err = w.Import(ctx, raw)
	require.NoError(t, err)

	var stored int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM report_documents WHERE collection = $1 AND doc_id = $2`,
		repository.CollectionOrders, orderKey).Scan(&stored))
	assert.Equal(t, 1, stored, "reimportar no duplica el pedido")

	snap, err := postgres.NewSnapshotRepository(pool, nil).LoadSnapshot(ctx, []string{shop})
	require.NoError(t, err)
	var keys []string
	for i := range snap.Orders {
		keys = append(keys, snap.Orders[i].Key())
	}
	assert.Contains(t, keys, orderKey)
	assert.NotContains(t, keys, foreignKey)
}

func TestDocumentWriter_ColeccionDesconocida(t *testing.T) {
	pool := testPool(t)
	raw := documents.Raw{}
	raw.Add("facturas", json.RawMessage(`{"id":"x"}`))

	_, err := postgres.NewDocumentWriter(pool).Import(context.Background(), raw)
	assert.ErrorIs(t, err, postgres.ErrUnknownCollection)
}
