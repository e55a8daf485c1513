package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-reportes/internal/domain/entity"
)

// PartyKind tipo de contraparte de un libro.
type PartyKind string

const (
	PartyCustomer PartyKind = "customer"
	PartySupplier PartyKind = "supplier"
)

// LedgerEffect efecto de un movimiento sobre el saldo.
type LedgerEffect int

const (
	EffectNone LedgerEffect = iota
	// EffectPayment reduce el saldo.
	EffectPayment
	// EffectCredit aumenta el saldo.
	EffectCredit
)

// DebtThreshold saldo mínimo para considerar deudor a un cliente.
var DebtThreshold = decimal.NewFromFloat(0.05)

var ledgerEffects = map[PartyKind]map[string]LedgerEffect{
	PartyCustomer: {
		entity.CustomerTxPayment:         EffectPayment,
		entity.CustomerTxPaymentReceived: EffectPayment,
		entity.CustomerTxCredit:          EffectCredit,
		entity.CustomerTxCreditSale:      EffectCredit,
	},
	PartySupplier: {
		entity.SupplierTxPayment:     EffectPayment,
		entity.SupplierTxPaymentMade: EffectPayment,
		entity.SupplierTxPurchase:    EffectCredit,
		entity.SupplierTxCredit:      EffectCredit,
	},
}

// ClassifyLedgerType efecto del tipo de movimiento según el libro.
// Tipos desconocidos no afectan el saldo.
func ClassifyLedgerType(kind PartyKind, txType string) LedgerEffect {
	return ledgerEffects[kind][txType]
}

// Balance saldo reproducido de los movimientos no borrados: pagos restan,
// créditos suman.
func Balance(kind PartyKind, txs []entity.LedgerTransaction) decimal.Decimal {
	total := decimal.Zero
	for i := range txs {
		total = total.Add(signedValue(kind, &txs[i]))
	}
	return total
}

func signedValue(kind PartyKind, t *entity.LedgerTransaction) decimal.Decimal {
	if t.IsDeleted {
		return decimal.Zero
	}
	switch ClassifyLedgerType(kind, t.Kind()) {
	case EffectPayment:
		return t.Value().Neg()
	case EffectCredit:
		return t.Value()
	default:
		return decimal.Zero
	}
}

// BalancesByParty saldo por contraparte.
func BalancesByParty(kind PartyKind, txs []entity.LedgerTransaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for i := range txs {
		t := &txs[i]
		party := t.PartyKey()
		if party == "" {
			continue
		}
		out[party] = out[party].Add(signedValue(kind, t))
	}
	return out
}

// PartyBalance saldo de una contraparte.
type PartyBalance struct {
	PartyID string          `json:"party_id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// LedgerSummary cuentas por cobrar y por pagar.
type LedgerSummary struct {
	Receivables decimal.Decimal `json:"receivables"`
	Payables    decimal.Decimal `json:"payables"`
	DebtorCount int             `json:"debtor_count"`
	Debtors     []PartyBalance  `json:"debtors"`
}

// SummarizeLedgers calcula saldos totales y la lista de deudores (clientes con
// saldo mayor al umbral), ordenada de mayor a menor saldo.
func SummarizeLedgers(customerTxs, supplierTxs []entity.LedgerTransaction, customers []entity.Customer) LedgerSummary {
	s := LedgerSummary{
		Receivables: Balance(PartyCustomer, customerTxs),
		Payables:    Balance(PartySupplier, supplierTxs),
	}
	names := make(map[string]string, len(customers))
	for i := range customers {
		names[customers[i].Key()] = customers[i].Name.String()
	}
	for party, bal := range BalancesByParty(PartyCustomer, customerTxs) {
		if bal.GreaterThan(DebtThreshold) {
			s.Debtors = append(s.Debtors, PartyBalance{PartyID: party, Name: names[party], Balance: bal})
		}
	}
	sort.Slice(s.Debtors, func(i, j int) bool {
		if !s.Debtors[i].Balance.Equal(s.Debtors[j].Balance) {
			return s.Debtors[i].Balance.GreaterThan(s.Debtors[j].Balance)
		}
		return s.Debtors[i].PartyID < s.Debtors[j].PartyID
	})
	s.DebtorCount = len(s.Debtors)
	return s
}
