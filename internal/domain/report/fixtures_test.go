package report_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
)

// testNow 10 de marzo de 2024, 18:00 UTC.
var testNow = time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC)

// mixedOrder pedido de 118: una línea normal y una directa de 50 cada una,
// sin envío declarado.
const mixedOrder = `{
	"id": "o1", "sellerId": "shop-1", "createdAt": "2024-03-10T10:30:00",
	"totalAmount": 118, "discount": 0, "paymentMethod": "cash",
	"items": [
		{"productId": "p1", "name": "Arroz 5kg", "sellingPrice": 50, "quantity": 1, "costPrice": 30},
		{"productId": "d1", "name": "Servicio", "sellingPrice": "50", "quantity": 1, "costPrice": 10, "isDirectSale": true}
	]
}`

func decode(t *testing.T, raw string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(raw), v))
}

func snapshotFrom(t *testing.T, raw string) report.Snapshot {
	t.Helper()
	var s report.Snapshot
	decode(t, raw, &s)
	return s
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2), msgAndArgs...)
}

func day(t *testing.T, s string) report.Range {
	t.Helper()
	r := report.DayRange(s, time.UTC)
	require.True(t, r.Valid())
	return r
}

// storeSnapshot tres días de operación de una tienda (8 al 10 de marzo de 2024).
const storeSnapshot = `{
	"orders": [
		` + mixedOrder + `,
		{"id":"o2","sellerId":"shop-1","createdAt":"2024-03-08T15:00:00","totalAmount":200,"paymentMethod":"UPI",
		 "items":[{"productId":"p2","name":"Aceite","sellingPrice":100,"quantity":2,"totalCost":120}]},
		{"id":"o3","sellerId":"shop-1","createdAt":"2024-03-09T11:00:00","grandTotal":150,"paymentMethod":"split",
		 "splitPayment":{"cash":100,"online":50},
		 "items":[{"productId":"p3","name":"Azúcar","sellingPrice":150,"quantity":1,"costPrice":90}]},
		{"id":"o4","sellerId":"shop-1","createdAt":"2024-03-10T16:00:00","totalAmount":80,"paymentMethod":"credit",
		 "customerId":"c1","items":[{"productId":"p4","name":"Sal","sellingPrice":80,"quantity":1,"costPrice":50}]}
	],
	"refunds": [
		{"id":"r1","orderId":"o1","refundDate":"2024-03-10T12:00:00","items":[{"productId":"p1","quantity":1,"rate":20}]},
		{"id":"r2","orderId":"o2","refundAmount":50}
	],
	"pettyExpenses": [
		{"id":"e1","amount":5,"date":"2024-03-10"},
		{"id":"e2","amount":"12.5","createdAt":"2024-03-09T08:00:00"},
		{"id":"e3","amount":1000,"date":"2024-03-10","isDeleted":true}
	],
	"purchaseOrders": [
		{"id":"po1","status":"completed","completedAt":"2024-03-09T10:00:00","items":[{"quantity":10,"costPrice":20}]},
		{"id":"po2","status":"pending","createdAt":"2024-03-09","totalAmount":999}
	],
	"customerTransactions": [
		{"customerId":"c1","type":"credit","amount":100},
		{"customerId":"c1","type":"payment","amount":40},
		{"customerId":"c1","type":"credit","amount":500,"isDeleted":true},
		{"customerId":"c2","type":"credit_sale","amount":0.04},
		{"customerId":"c3","transactionType":"credit","amount":300}
	],
	"supplierTransactions": [
		{"supplierId":"s1","type":"purchase","amount":1000},
		{"supplierId":"s1","type":"payment_made","amount":400}
	],
	"customers": [
		{"id":"c1","name":"Ana","phone":"3001234567"},
		{"id":"c3","name":"Luis"}
	]
}`

func storeEngine(t *testing.T) *report.Engine {
	t.Helper()
	return report.NewEngine(snapshotFrom(t, storeSnapshot), report.Options{Now: testNow, Location: time.UTC})
}

func storeRange() report.Range {
	return report.ResolveRange(report.SelectorCustom, testNow, "2024-03-08", "2024-03-10")
}
