package report

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-reportes/internal/domain/entity"
	"github.com/jhoicas/Inventario-reportes/pkg/amount"
)

// Anchos del recibo de texto plano.
const (
	receiptWidth = 40
	colName      = 12
	colQty       = 5
	colRate      = 9
	colAmount    = 10

	// NullPlaceholder se imprime en lugar de cualquier campo ausente.
	NullPlaceholder = "null"

	receiptFooter = "Gracias por su compra"
)

// ShopInfo encabezado del comercio.
type ShopInfo struct {
	Name    string
	Phone   string
	Address string
}

func orNull(s string) string {
	if strings.TrimSpace(s) == "" {
		return NullPlaceholder
	}
	return strings.TrimSpace(s)
}

func moneyOrNull(d decimal.Decimal, ok bool) string {
	if !ok {
		return NullPlaceholder
	}
	return d.StringFixed(2)
}

func qtyOrNull(d decimal.Decimal, ok bool) string {
	if !ok {
		return NullPlaceholder
	}
	return d.Round(3).String()
}

func fit(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w, ""), w)
}

func right(s string, w int) string { return runewidth.FillLeft(s, w) }

func center(s string) string {
	pad := (receiptWidth - runewidth.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func keyValue(b *strings.Builder, key, value string) {
	spaces := receiptWidth - runewidth.StringWidth(key) - runewidth.StringWidth(value)
	if spaces < 1 {
		spaces = 1
	}
	b.WriteString(key)
	b.WriteString(strings.Repeat(" ", spaces))
	b.WriteString(value)
	b.WriteByte('\n')
}

func itemRow(b *strings.Builder, name, qty, rate, amt string) {
	b.WriteString(fit(name, colName))
	b.WriteByte(' ')
	b.WriteString(right(qty, colQty))
	b.WriteByte(' ')
	b.WriteString(right(rate, colRate))
	b.WriteByte(' ')
	b.WriteString(right(amt, colAmount))
	b.WriteByte('\n')
}

// FormatInvoice arma el recibo de texto de ancho fijo para compartir por
// mensajería: encabezado del comercio, bloque de cliente, tabla de líneas,
// totales y pie fijo. Los campos ausentes se imprimen como "null"; nunca se
// omite una línea. customer puede ser nil.
func FormatInvoice(shop ShopInfo, o *entity.Order, customer *entity.Customer, loc *time.Location) string {
	var b strings.Builder
	sep := strings.Repeat("=", receiptWidth) + "\n"
	dash := strings.Repeat("-", receiptWidth) + "\n"

	b.WriteString(sep)
	b.WriteString(center(orNull(shop.Name)) + "\n")
	b.WriteString(center("Tel: "+orNull(shop.Phone)) + "\n")
	b.WriteString(center(orNull(shop.Address)) + "\n")
	b.WriteString(sep)

	invoiceNo := o.InvoiceNumber.String()
	if invoiceNo == "" {
		invoiceNo = o.Key()
	}
	date := ""
	if ts := o.Timestamp(); !ts.IsZero() {
		date = ts.In(loc).Format("02/01/2006 15:04")
	}
	keyValue(&b, "Factura:", orNull(invoiceNo))
	keyValue(&b, "Fecha:", orNull(date))

	var name, phone, address string
	if customer != nil {
		name, phone, address = customer.Name.String(), customer.Phone.String(), customer.Address.String()
	}
	if name == "" {
		name = o.CustomerName.String()
	}
	if phone == "" {
		phone = o.CustomerPhone.String()
	}
	b.WriteString(dash)
	keyValue(&b, "Cliente:", orNull(name))
	keyValue(&b, "Teléfono:", orNull(phone))
	keyValue(&b, "Dirección:", orNull(address))
	b.WriteString(dash)

	itemRow(&b, "Producto", "Cant", "Precio", "Importe")
	b.WriteString(dash)
	subtotal := decimal.Zero
	lines := o.Lines()
	for i := range lines {
		it := &lines[i]
		qty, qtyOK := amount.FirstPositive(it.Quantity, it.Qty)
		rate := it.UnitSelling()
		total := it.SellingTotal()
		subtotal = subtotal.Add(total)
		itemRow(&b,
			orNull(it.DisplayName()),
			qtyOrNull(qty, qtyOK),
			moneyOrNull(rate, rate.IsPositive()),
			moneyOrNull(total, total.IsPositive()),
		)
	}
	b.WriteString(dash)

	discount, discOK := amount.FirstPositive(o.Discount, o.DiscountAmount)
	delivery, delOK := o.DeclaredDelivery()
	grand, grandOK := o.DeclaredTotal()
	keyValue(&b, "Subtotal:", moneyOrNull(subtotal, len(lines) > 0))
	keyValue(&b, "Descuento:", moneyOrNull(discount, discOK))
	keyValue(&b, "Envío:", moneyOrNull(delivery, delOK))
	keyValue(&b, "TOTAL:", moneyOrNull(grand, grandOK))
	keyValue(&b, "Pago:", orNull(o.Method()))
	b.WriteString(sep)
	b.WriteString(center(receiptFooter) + "\n")
	return b.String()
}
