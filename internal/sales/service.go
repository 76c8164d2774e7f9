// Package sales implements the sales invoice lifecycle: creation,
// line items, finalize with the customer balance bump, and payment.
package sales

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/party"
	"github.com/siambooks/siambooks/internal/seq"
	"github.com/siambooks/siambooks/internal/shared"
)

// Service manages sales invoices for one directory of customers. The
// service mutex serializes all invoice mutations, and the finalize ->
// balance-bump pair runs inside one critical section with the bump
// applied only after every check has passed, so both effects land or
// neither does.
type Service struct {
	mu         sync.Mutex
	directory  *party.Directory
	invoices   map[string]*model.SalesInvoice
	order      []string
	payments   map[string][]model.Payment
	applied    map[string]decimal.Decimal // balance contribution per invoice
	invoiceNos *seq.Counter
}

// NewService creates a sales Service against a counterparty directory.
func NewService(directory *party.Directory) *Service {
	return &Service{
		directory:  directory,
		invoices:   make(map[string]*model.SalesInvoice),
		payments:   make(map[string][]model.Payment),
		applied:    make(map[string]decimal.Decimal),
		invoiceNos: seq.NewCounter("INV", seq.DocWidth),
	}
}

// Summary aggregates invoices over a date range.
type Summary struct {
	TotalSales     decimal.Decimal
	TotalVAT       decimal.Decimal
	InvoiceCount   int
	AverageInvoice decimal.Decimal
}

// CreateInvoice opens a Draft invoice for an existing customer.
func (s *Service) CreateInvoice(customerID string, invoiceDate, dueDate time.Time) (model.SalesInvoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.directory.Customer(customerID)
	if !ok {
		return model.SalesInvoice{}, fmt.Errorf("customer %s: %w", customerID, shared.ErrNotFound)
	}

	inv := &model.SalesInvoice{
		InvoiceNo:    s.invoiceNos.Next(),
		CustomerID:   customerID,
		CustomerName: customer.Name,
		InvoiceDate:  invoiceDate,
		DueDate:      dueDate,
		Status:       model.InvoiceStatusDraft,
	}
	s.invoices[inv.InvoiceNo] = inv
	s.order = append(s.order, inv.InvoiceNo)
	return *inv, nil
}

// AddItem appends a line item to an invoice. Totals stay untouched
// until Finalize recomputes them.
func (s *Service) AddItem(invoiceNo string, item model.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[invoiceNo]
	if !ok {
		return fmt.Errorf("invoice %s: %w", invoiceNo, shared.ErrNotFound)
	}
	inv.Items = append(inv.Items, item)
	return nil
}

// Finalize recomputes the invoice totals from its items, marks it
// Posted, and raises the customer's outstanding balance by
// total+VAT. Finalizing again with unchanged items is a no-op for the
// balance: the recomputed contribution replaces the prior one instead
// of accumulating.
func (s *Service) Finalize(invoiceNo string) (model.SalesInvoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[invoiceNo]
	if !ok {
		return model.SalesInvoice{}, fmt.Errorf("invoice %s: %w", invoiceNo, shared.ErrNotFound)
	}

	totalAmount := decimal.Zero
	totalVAT := decimal.Zero
	for _, item := range inv.Items {
		totalAmount = totalAmount.Add(item.Amount())
		totalVAT = totalVAT.Add(item.VATAmount())
	}

	contribution := totalAmount.Add(totalVAT)
	delta := contribution.Sub(s.applied[invoiceNo])
	if err := s.directory.AdjustCustomerBalance(inv.CustomerID, delta); err != nil {
		return model.SalesInvoice{}, fmt.Errorf("finalize %s: %w", invoiceNo, err)
	}

	s.applied[invoiceNo] = contribution
	inv.TotalAmount = totalAmount
	inv.TotalVAT = totalVAT
	inv.Status = model.InvoiceStatusPosted
	return *inv, nil
}

// RecordPayment settles an invoice in full. Partial settlement is not
// supported: amounts below total+VAT fail without mutation. On success
// the invoice becomes Paid, the customer's outstanding balance drops by
// the invoice total, and a Payment record is kept.
func (s *Service) RecordPayment(invoiceNo string, amount decimal.Decimal, method model.PaymentMethod) (model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[invoiceNo]
	if !ok {
		return model.Payment{}, fmt.Errorf("invoice %s: %w", invoiceNo, shared.ErrNotFound)
	}

	due := inv.TotalAmount.Add(inv.TotalVAT)
	if amount.LessThan(due) {
		return model.Payment{}, fmt.Errorf("invoice %s: paid %s of %s: %w",
			invoiceNo, amount.StringFixed(2), due.StringFixed(2), shared.ErrInsufficientPayment)
	}
	if err := s.directory.AdjustCustomerBalance(inv.CustomerID, due.Neg()); err != nil {
		return model.Payment{}, fmt.Errorf("payment for %s: %w", invoiceNo, err)
	}

	s.applied[invoiceNo] = s.applied[invoiceNo].Sub(due)
	inv.Status = model.InvoiceStatusPaid
	payment := model.Payment{
		PaymentID:   uuid.NewString(),
		InvoiceNo:   invoiceNo,
		PaymentDate: time.Now(),
		Amount:      amount,
		Method:      method,
	}
	s.payments[invoiceNo] = append(s.payments[invoiceNo], payment)
	return payment, nil
}

// Invoice returns an invoice by number.
func (s *Service) Invoice(invoiceNo string) (model.SalesInvoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[invoiceNo]
	if !ok {
		return model.SalesInvoice{}, false
	}
	return snapshot(inv), true
}

// Invoices returns all invoices in creation order.
func (s *Service) Invoices() []model.SalesInvoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.SalesInvoice, 0, len(s.order))
	for _, no := range s.order {
		result = append(result, snapshot(s.invoices[no]))
	}
	return result
}

// Outstanding returns a customer's invoices not yet Paid.
func (s *Service) Outstanding(customerID string) []model.SalesInvoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.SalesInvoice
	for _, no := range s.order {
		inv := s.invoices[no]
		if inv.CustomerID == customerID && inv.Status != model.InvoiceStatusPaid {
			result = append(result, snapshot(inv))
		}
	}
	return result
}

// Payments returns the payments recorded against an invoice.
func (s *Service) Payments(invoiceNo string) []model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Payment(nil), s.payments[invoiceNo]...)
}

// Summarize aggregates invoices whose date falls in the inclusive
// range. The average is zero when no invoice matches.
func (s *Service) Summarize(from, to time.Time) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum Summary
	sum.TotalSales = decimal.Zero
	sum.TotalVAT = decimal.Zero
	for _, no := range s.order {
		inv := s.invoices[no]
		if inv.InvoiceDate.Before(from) || inv.InvoiceDate.After(to) {
			continue
		}
		sum.TotalSales = sum.TotalSales.Add(inv.TotalAmount)
		sum.TotalVAT = sum.TotalVAT.Add(inv.TotalVAT)
		sum.InvoiceCount++
	}
	sum.AverageInvoice = decimal.Zero
	if sum.InvoiceCount > 0 {
		sum.AverageInvoice = sum.TotalSales.Div(decimal.NewFromInt(int64(sum.InvoiceCount)))
	}
	return sum
}

func snapshot(inv *model.SalesInvoice) model.SalesInvoice {
	out := *inv
	out.Items = append([]model.LineItem(nil), inv.Items...)
	return out
}
