package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of a sales or purchase invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "Draft"
	InvoiceStatusPosted    InvoiceStatus = "Posted"
	InvoiceStatusPaid      InvoiceStatus = "Paid"
	InvoiceStatusCancelled InvoiceStatus = "Cancelled"
)

// OrderStatus is the lifecycle state of a purchase order. Received and
// Cancelled are declared but no core operation produces them.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "Draft"
	OrderStatusOrdered   OrderStatus = "Ordered"
	OrderStatusReceived  OrderStatus = "Received"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// LineItem is a single line on an invoice or purchase order. Amounts
// are derived, never stored: totals are recomputed from items on
// finalize.
type LineItem struct {
	ItemID    string
	ItemName  string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal // percent, 0-100
	VATRate   decimal.Decimal // percent
}

var oneHundred = decimal.NewFromInt(100)

// Amount returns the line amount before VAT:
// quantity * unit_price * (1 - discount/100).
func (li LineItem) Amount() decimal.Decimal {
	subtotal := li.Quantity.Mul(li.UnitPrice)
	discount := subtotal.Mul(li.Discount).Div(oneHundred)
	return subtotal.Sub(discount)
}

// VATAmount returns the VAT portion: amount * vat_rate/100.
func (li LineItem) VATAmount() decimal.Decimal {
	return li.Amount().Mul(li.VATRate).Div(oneHundred)
}

// Total returns the VAT-inclusive line total.
func (li LineItem) Total() decimal.Decimal {
	return li.Amount().Add(li.VATAmount())
}

// SalesInvoice is a customer-facing tax invoice. TotalAmount excludes
// VAT; TotalVAT carries the VAT separately. Both stay zero until
// Finalize recomputes them from the items.
type SalesInvoice struct {
	InvoiceNo    string
	CustomerID   string
	CustomerName string
	InvoiceDate  time.Time
	DueDate      time.Time
	Items        []LineItem
	Status       InvoiceStatus
	TotalAmount  decimal.Decimal
	TotalVAT     decimal.Decimal
	Notes        string
}

// PurchaseInvoice is a supplier invoice, with the same totals
// convention as SalesInvoice.
type PurchaseInvoice struct {
	InvoiceNo    string
	SupplierID   string
	SupplierName string
	InvoiceDate  time.Time
	DueDate      time.Time
	Items        []LineItem
	Status       InvoiceStatus
	TotalAmount  decimal.Decimal
	TotalVAT     decimal.Decimal
}

// PurchaseOrder is an order to a supplier. Unlike invoices, TotalAmount
// is VAT-inclusive: the sum of each item's Total.
type PurchaseOrder struct {
	PONo             string
	SupplierID       string
	SupplierName     string
	OrderDate        time.Time
	ExpectedDelivery time.Time
	Items            []LineItem
	Status           OrderStatus
	TotalAmount      decimal.Decimal
}
