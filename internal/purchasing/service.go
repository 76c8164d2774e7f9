// Package purchasing implements purchase orders and supplier invoices.
// Purchase invoices follow the same lifecycle as sales invoices;
// purchase orders total differently (VAT-inclusive) and stop at
// Ordered.
package purchasing

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

// Service manages purchase orders and purchase invoices against one
// directory of suppliers. The mutex covers the full
// read-check-mutate sequence of every operation, including the
// finalize -> supplier-balance bump pair.
type Service struct {
	mu        sync.Mutex
	directory *party.Directory

	orders     map[string]*model.PurchaseOrder
	orderNos   []string
	invoices   map[string]*model.PurchaseInvoice
	invoiceNos []string
	payments   map[string][]model.Payment
	applied    map[string]decimal.Decimal

	poSeq  *seq.Counter
	invSeq *seq.Counter
}

// NewService creates a purchasing Service.
func NewService(directory *party.Directory) *Service {
	return &Service{
		directory: directory,
		orders:    make(map[string]*model.PurchaseOrder),
		invoices:  make(map[string]*model.PurchaseInvoice),
		payments:  make(map[string][]model.Payment),
		applied:   make(map[string]decimal.Decimal),
		poSeq:     seq.NewCounter("PO", seq.DocWidth),
		invSeq:    seq.NewCounter("PINV", seq.DocWidth),
	}
}

// Summary aggregates purchase invoices over a date range.
type Summary struct {
	TotalPurchases decimal.Decimal
	TotalVAT       decimal.Decimal
	InvoiceCount   int
	AverageInvoice decimal.Decimal
}

// CreateOrder opens a Draft purchase order for an existing supplier.
func (s *Service) CreateOrder(supplierID string, orderDate, expectedDelivery time.Time) (model.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	supplier, ok := s.directory.Supplier(supplierID)
	if !ok {
		return model.PurchaseOrder{}, fmt.Errorf("supplier %s: %w", supplierID, shared.ErrNotFound)
	}

	po := &model.PurchaseOrder{
		PONo:             s.poSeq.Next(),
		SupplierID:       supplierID,
		SupplierName:     supplier.Name,
		OrderDate:        orderDate,
		ExpectedDelivery: expectedDelivery,
		Status:           model.OrderStatusDraft,
	}
	s.orders[po.PONo] = po
	s.orderNos = append(s.orderNos, po.PONo)
	return *po, nil
}

// AddOrderItem appends a line item to a purchase order.
func (s *Service) AddOrderItem(poNo string, item model.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	po, ok := s.orders[poNo]
	if !ok {
		return fmt.Errorf("purchase order %s: %w", poNo, shared.ErrNotFound)
	}
	po.Items = append(po.Items, item)
	return nil
}

// FinalizeOrder totals a purchase order and marks it Ordered. Unlike
// invoice totals, the order total is VAT-inclusive: the sum of each
// item's Total. No supplier balance moves until the matching invoice
// is finalized.
func (s *Service) FinalizeOrder(poNo string) (model.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	po, ok := s.orders[poNo]
	if !ok {
		return model.PurchaseOrder{}, fmt.Errorf("purchase order %s: %w", poNo, shared.ErrNotFound)
	}

	total := decimal.Zero
	for _, item := range po.Items {
		total = total.Add(item.Total())
	}
	po.TotalAmount = total
	po.Status = model.OrderStatusOrdered
	return orderSnapshot(po), nil
}

// Order returns a purchase order by number.
func (s *Service) Order(poNo string) (model.PurchaseOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	po, ok := s.orders[poNo]
	if !ok {
		return model.PurchaseOrder{}, false
	}
	return orderSnapshot(po), true
}

// Orders returns all purchase orders in creation order.
func (s *Service) Orders() []model.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.PurchaseOrder, 0, len(s.orderNos))
	for _, no := range s.orderNos {
		result = append(result, orderSnapshot(s.orders[no]))
	}
	return result
}

// CreateInvoice opens a Draft purchase invoice for an existing
// supplier.
func (s *Service) CreateInvoice(supplierID string, invoiceDate, dueDate time.Time) (model.PurchaseInvoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	supplier, ok := s.directory.Supplier(supplierID)
	if !ok {
		return model.PurchaseInvoice{}, fmt.Errorf("supplier %s: %w", supplierID, shared.ErrNotFound)
	}

	inv := &model.PurchaseInvoice{
		InvoiceNo:    s.invSeq.Next(),
		SupplierID:   supplierID,
		SupplierName: supplier.Name,
		InvoiceDate:  invoiceDate,
		DueDate:      dueDate,
		Status:       model.InvoiceStatusDraft,
	}
	s.invoices[inv.InvoiceNo] = inv
	s.invoiceNos = append(s.invoiceNos, inv.InvoiceNo)
	return *inv, nil
}

// AddInvoiceItem appends a line item to a purchase invoice.
func (s *Service) AddInvoiceItem(invoiceNo string, item model.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[invoiceNo]
	if !ok {
		return fmt.Errorf("purchase invoice %s: %w", invoiceNo, shared.ErrNotFound)
	}
	inv.Items = append(inv.Items, item)
	return nil
}

// FinalizeInvoice recomputes totals (VAT-exclusive amount, VAT held
// separately), marks the invoice Posted, and raises the supplier's
// outstanding balance by total+VAT. The recomputed contribution
// replaces the prior one, so repeated finalizes bump the balance once.
func (s *Service) FinalizeInvoice(invoiceNo string) (model.PurchaseInvoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[invoiceNo]
	if !ok {
		return model.PurchaseInvoice{}, fmt.Errorf("purchase invoice %s: %w", invoiceNo, shared.ErrNotFound)
	}

	totalAmount := decimal.Zero
	totalVAT := decimal.Zero
	for _, item := range inv.Items {
		totalAmount = totalAmount.Add(item.Amount())
		totalVAT = totalVAT.Add(item.VATAmount())
	}

	contribution := totalAmount.Add(totalVAT)
	delta := contribution.Sub(s.applied[invoiceNo])
	if err := s.directory.AdjustSupplierBalance(inv.SupplierID, delta); err != nil {
		return model.PurchaseInvoice{}, fmt.Errorf("finalize %s: %w", invoiceNo, err)
	}

	s.applied[invoiceNo] = contribution
	inv.TotalAmount = totalAmount
	inv.TotalVAT = totalVAT
	inv.Status = model.InvoiceStatusPosted
	return invoiceSnapshot(inv), nil
}

// RecordPayment settles a purchase invoice in full, mirroring the
// sales side: under-amount payments fail without mutation.
func (s *Service) RecordPayment(invoiceNo string, amount decimal.Decimal, method model.PaymentMethod) (model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[invoiceNo]
	if !ok {
		return model.Payment{}, fmt.Errorf("purchase invoice %s: %w", invoiceNo, shared.ErrNotFound)
	}

	due := inv.TotalAmount.Add(inv.TotalVAT)
	if amount.LessThan(due) {
		return model.Payment{}, fmt.Errorf("purchase invoice %s: paid %s of %s: %w",
			invoiceNo, amount.StringFixed(2), due.StringFixed(2), shared.ErrInsufficientPayment)
	}
	if err := s.directory.AdjustSupplierBalance(inv.SupplierID, due.Neg()); err != nil {
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

// Invoice returns a purchase invoice by number.
func (s *Service) Invoice(invoiceNo string) (model.PurchaseInvoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[invoiceNo]
	if !ok {
		return model.PurchaseInvoice{}, false
	}
	return invoiceSnapshot(inv), true
}

// Invoices returns all purchase invoices in creation order.
func (s *Service) Invoices() []model.PurchaseInvoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.PurchaseInvoice, 0, len(s.invoiceNos))
	for _, no := range s.invoiceNos {
		result = append(result, invoiceSnapshot(s.invoices[no]))
	}
	return result
}

// Outstanding returns a supplier's invoices not yet Paid.
func (s *Service) Outstanding(supplierID string) []model.PurchaseInvoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.PurchaseInvoice
	for _, no := range s.invoiceNos {
		inv := s.invoices[no]
		if inv.SupplierID == supplierID && inv.Status != model.InvoiceStatusPaid {
			result = append(result, invoiceSnapshot(inv))
		}
	}
	return result
}

// Payments returns the payments recorded against a purchase invoice.
func (s *Service) Payments(invoiceNo string) []model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.Payment(nil), s.payments[invoiceNo]...)
}

// Summarize aggregates purchase invoices whose date falls in the
// inclusive range.
func (s *Service) Summarize(from, to time.Time) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum Summary
	sum.TotalPurchases = decimal.Zero
	sum.TotalVAT = decimal.Zero
	for _, no := range s.invoiceNos {
		inv := s.invoices[no]
		if inv.InvoiceDate.Before(from) || inv.InvoiceDate.After(to) {
			continue
		}
		sum.TotalPurchases = sum.TotalPurchases.Add(inv.TotalAmount)
		sum.TotalVAT = sum.TotalVAT.Add(inv.TotalVAT)
		sum.InvoiceCount++
	}
	sum.AverageInvoice = decimal.Zero
	if sum.InvoiceCount > 0 {
		sum.AverageInvoice = sum.TotalPurchases.Div(decimal.NewFromInt(int64(sum.InvoiceCount)))
	}
	return sum
}

func orderSnapshot(po *model.PurchaseOrder) model.PurchaseOrder {
	out := *po
	out.Items = append([]model.LineItem(nil), po.Items...)
	return out
}

func invoiceSnapshot(inv *model.PurchaseInvoice) model.PurchaseInvoice {
	out := *inv
	out.Items = append([]model.LineItem(nil), inv.Items...)
	return out
}
