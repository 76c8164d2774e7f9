package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies how an invoice was settled.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCheque       PaymentMethod = "Cheque"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
)

// Payment records a settlement against an invoice. Payments are plain
// records, not numbered documents, so they carry a uuid.
type Payment struct {
	PaymentID   string
	InvoiceNo   string
	PaymentDate time.Time
	Amount      decimal.Decimal
	Method      PaymentMethod
	Reference   string
}
