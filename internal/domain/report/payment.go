package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PaymentChannel canal de conciliación de pagos.
type PaymentChannel string

const (
	ChannelCash   PaymentChannel = "cash"
	ChannelOnline PaymentChannel = "online"
	ChannelDue    PaymentChannel = "due"
	ChannelSplit  PaymentChannel = "split"
)

// Channels orden fijo de presentación.
var Channels = []PaymentChannel{ChannelCash, ChannelOnline, ChannelDue, ChannelSplit}

var channelLabels = map[PaymentChannel]string{
	ChannelCash:   "Cash",
	ChannelOnline: "Online",
	ChannelDue:    "Due",
	ChannelSplit:  "Split",
}

// Label etiqueta visible del canal.
func (c PaymentChannel) Label() string { return channelLabels[c] }

// ClassifyPayment clasifica el método registrado: split → split; tarjeta,
// UPI u online → online; due o crédito → due; cualquier otro → cash.
func ClassifyPayment(method string) PaymentChannel {
	m := strings.ToLower(strings.TrimSpace(method))
	switch {
	case strings.Contains(m, "split"):
		return ChannelSplit
	case strings.Contains(m, "card"), strings.Contains(m, "upi"), strings.Contains(m, "online"):
		return ChannelOnline
	case strings.Contains(m, "due"), strings.Contains(m, "credit"):
		return ChannelDue
	default:
		return ChannelCash
	}
}

// PaymentBucket total de un canal: ventas normalizadas menos devoluciones
// asignadas a pedidos de ese canal.
type PaymentBucket struct {
	Channel PaymentChannel  `json:"channel"`
	Label   string          `json:"label"`
	Count   int             `json:"count"`
	Gross   decimal.Decimal `json:"gross"`
	Refunds decimal.Decimal `json:"refunds"`
	Amount  decimal.Decimal `json:"amount"`
}

// SplitBreakdown desglose crudo de los pagos divididos registrados.
type SplitBreakdown struct {
	Cash   decimal.Decimal `json:"cash"`
	Online decimal.Decimal `json:"online"`
	Due    decimal.Decimal `json:"due"`
}

// PaymentBreakdown conciliación por canal. Buckets conserva siempre los cuatro
// canales en orden fijo.
type PaymentBreakdown struct {
	Buckets []PaymentBucket `json:"buckets"`
	Split   SplitBreakdown  `json:"split"`
}

// Visible canales con monto distinto de cero (para gráficos de torta).
func (b PaymentBreakdown) Visible() []PaymentBucket {
	var out []PaymentBucket
	for _, bk := range b.Buckets {
		if !bk.Amount.IsZero() {
			out = append(out, bk)
		}
	}
	return out
}

// Bucket devuelve el canal pedido.
func (b PaymentBreakdown) Bucket(c PaymentChannel) PaymentBucket {
	for _, bk := range b.Buckets {
		if bk.Channel == c {
			return bk
		}
	}
	return PaymentBucket{Channel: c, Label: c.Label()}
}

// AggregatePayments concilia ventas y devoluciones por canal. Las devoluciones
// se restan del canal del pedido original; sin pedido resuelto no restan de
// ningún canal.
func AggregatePayments(orders []NormalizedOrder, allocs []Allocation) PaymentBreakdown {
	idx := make(map[PaymentChannel]*PaymentBucket, len(Channels))
	b := PaymentBreakdown{Buckets: make([]PaymentBucket, len(Channels))}
	for i, c := range Channels {
		b.Buckets[i] = PaymentBucket{Channel: c, Label: c.Label()}
		idx[c] = &b.Buckets[i]
	}
	for _, n := range orders {
		c := ClassifyPayment(n.Order.Method())
		bk := idx[c]
		bk.Count++
		bk.Gross = bk.Gross.Add(n.Total)
		if c == ChannelSplit {
			sp := n.Order.Split()
			b.Split.Cash = b.Split.Cash.Add(sp.Cash.Decimal())
			b.Split.Online = b.Split.Online.Add(sp.Online.Decimal())
			b.Split.Due = b.Split.Due.Add(sp.Due.Decimal())
		}
	}
	for _, a := range allocs {
		if a.Order == nil {
			continue
		}
		bk := idx[ClassifyPayment(a.Order.Method())]
		bk.Refunds = bk.Refunds.Add(a.Amount)
	}
	for i := range b.Buckets {
		b.Buckets[i].Amount = b.Buckets[i].Gross.Sub(b.Buckets[i].Refunds)
	}
	return b
}
