// Package documents decodifica colecciones de documentos JSON crudos en un
// report.Snapshot. Lo comparten los stores de PostgreSQL y de archivos.
package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Inventario-reportes/internal/domain/entity"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
	"github.com/jhoicas/Inventario-reportes/internal/domain/repository"
)

// Raw documentos crudos por colección (ver repository.Collections).
type Raw map[string][]json.RawMessage

// Add agrega un documento a la colección.
func (r Raw) Add(collection string, doc json.RawMessage) {
	r[collection] = append(r[collection], doc)
}

// Len total de documentos.
func (r Raw) Len() int {
	n := 0
	for _, docs := range r {
		n += len(docs)
	}
	return n
}

// Result snapshot decodificado y cantidad de documentos descartados por no
// ser un objeto JSON válido.
type Result struct {
	Snapshot report.Snapshot
	Skipped  int
}

// Decode decodifica cada colección en paralelo. Un documento ilegible se
// descarta (cuenta en Skipped) sin abortar el resto; solo la cancelación del
// contexto devuelve error.
func Decode(ctx context.Context, raw Raw) (Result, error) {
	var (
		snap    report.Snapshot
		skipped atomic.Int64
	)
	g, gctx := errgroup.WithContext(ctx)

	decodeInto(gctx, g, raw[repository.CollectionOrders], &snap.Orders, &skipped)
	decodeInto(gctx, g, raw[repository.CollectionRefunds], &snap.Refunds, &skipped)
	decodeInto(gctx, g, raw[repository.CollectionPurchaseOrders], &snap.PurchaseOrders, &skipped)
	decodeInto(gctx, g, raw[repository.CollectionPettyExpenses], &snap.PettyExpenses, &skipped)
	decodeInto(gctx, g, raw[repository.CollectionCustomerTransactions], &snap.CustomerTransactions, &skipped)
	decodeInto(gctx, g, raw[repository.CollectionSupplierTransactions], &snap.SupplierTransactions, &skipped)
	decodeInto(gctx, g, raw[repository.CollectionCustomers], &snap.Customers, &skipped)

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{Snapshot: snap, Skipped: int(skipped.Load())}, nil
}

// decodeInto cada goroutine escribe solo en su propio slice de destino.
func decodeInto[T any](ctx context.Context, g *errgroup.Group, docs []json.RawMessage, dst *[]T, skipped *atomic.Int64) {
	g.Go(func() error {
		out := make([]T, 0, len(docs))
		for i, doc := range docs {
			if i%256 == 0 {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("decode: %w", err)
				}
			}
			var v T
			if err := json.Unmarshal(doc, &v); err != nil {
				skipped.Add(1)
				continue
			}
			out = append(out, v)
		}
		*dst = out
		return nil
	})
}

// Meta identificador y dueños de un documento, extraídos al escribir.
type Meta struct {
	ID     string
	Owners []string
}

type metaDoc struct {
	entity.Ownership
	ID      entity.Ref `json:"id"`
	DocID   entity.Ref `json:"_id"`
	OrderID entity.Ref `json:"orderId"`
}

// key mismos alias que Key() de la entidad de cada colección. En devoluciones
// orderId referencia al pedido, no identifica el documento.
func (m metaDoc) key(collection string) string {
	if collection == repository.CollectionOrders {
		return entity.FirstRef(m.ID, m.DocID, m.OrderID)
	}
	return entity.FirstRef(m.ID, m.DocID)
}

// ReadMeta extrae id y dueños de un documento de la colección. Si no trae id
// se deriva un UUID v5 del contenido: reimportar el mismo documento no lo duplica.
func ReadMeta(collection string, doc json.RawMessage) (Meta, error) {
	var m metaDoc
	if err := json.Unmarshal(doc, &m); err != nil {
		return Meta{}, fmt.Errorf("documento inválido: %w", err)
	}
	id := m.key(collection)
	if id == "" {
		id = uuid.NewSHA1(uuid.NameSpaceOID, append([]byte(collection+"\x00"), doc...)).String()
	}
	return Meta{ID: id, Owners: m.OwnerRefs()}, nil
}
