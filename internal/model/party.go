package model

import "github.com/shopspring/decimal"

// Customer is a sales counterparty. CreditLimit is recorded but never
// enforced; OutstandingBalance is mutated only by invoice finalize and
// payment.
type Customer struct {
	CustomerID         string
	Name               string
	Address            string
	Phone              string
	TaxID              string
	CreditLimit        decimal.Decimal
	OutstandingBalance decimal.Decimal
}

// Supplier is a purchasing counterparty, tracked the same way as a
// Customer.
type Supplier struct {
	SupplierID         string
	Name               string
	Address            string
	Phone              string
	TaxID              string
	CreditLimit        decimal.Decimal
	OutstandingBalance decimal.Decimal
}
