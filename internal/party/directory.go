// Package party is the counterparty directory: customers and suppliers
// with their running outstanding balances. Balances are mutated only by
// the invoice engines on finalize and payment.
package party

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/shared"
)

// Directory stores customers and suppliers keyed by business id.
type Directory struct {
	mu            sync.RWMutex
	customers     map[string]*model.Customer
	customerOrder []string
	suppliers     map[string]*model.Supplier
	supplierOrder []string
}

// NewDirectory creates an empty Directory.
func NewDirectory() *Directory {
	return &Directory{
		customers: make(map[string]*model.Customer),
		suppliers: make(map[string]*model.Supplier),
	}
}

// CreateCustomer stores a customer. Re-using an existing id replaces
// the prior record, including its outstanding balance; adapters that
// re-register counterparties on startup rely on this upsert.
func (d *Directory) CreateCustomer(id, name, address, phone, taxID string, creditLimit decimal.Decimal) model.Customer {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.customers[id]; !exists {
		d.customerOrder = append(d.customerOrder, id)
	}
	c := &model.Customer{
		CustomerID:  id,
		Name:        name,
		Address:     address,
		Phone:       phone,
		TaxID:       taxID,
		CreditLimit: creditLimit,
	}
	d.customers[id] = c
	return *c
}

// CreateSupplier stores a supplier, with the same upsert semantics as
// CreateCustomer.
func (d *Directory) CreateSupplier(id, name, address, phone, taxID string, creditLimit decimal.Decimal) model.Supplier {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.suppliers[id]; !exists {
		d.supplierOrder = append(d.supplierOrder, id)
	}
	s := &model.Supplier{
		SupplierID:  id,
		Name:        name,
		Address:     address,
		Phone:       phone,
		TaxID:       taxID,
		CreditLimit: creditLimit,
	}
	d.suppliers[id] = s
	return *s
}

// Customer returns a customer by id.
func (d *Directory) Customer(id string) (model.Customer, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.customers[id]
	if !ok {
		return model.Customer{}, false
	}
	return *c, true
}

// Supplier returns a supplier by id.
func (d *Directory) Supplier(id string) (model.Supplier, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s, ok := d.suppliers[id]
	if !ok {
		return model.Supplier{}, false
	}
	return *s, true
}

// Customers returns all customers in insertion order.
func (d *Directory) Customers() []model.Customer {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]model.Customer, 0, len(d.customerOrder))
	for _, id := range d.customerOrder {
		result = append(result, *d.customers[id])
	}
	return result
}

// Suppliers returns all suppliers in insertion order.
func (d *Directory) Suppliers() []model.Supplier {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]model.Supplier, 0, len(d.supplierOrder))
	for _, id := range d.supplierOrder {
		result = append(result, *d.suppliers[id])
	}
	return result
}

// AdjustCustomerBalance adds a signed delta to a customer's
// outstanding balance. Called by the sales engine inside its own
// critical section, after all validation has passed.
func (d *Directory) AdjustCustomerBalance(id string, delta decimal.Decimal) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.customers[id]
	if !ok {
		return fmt.Errorf("customer %s: %w", id, shared.ErrNotFound)
	}
	c.OutstandingBalance = c.OutstandingBalance.Add(delta)
	return nil
}

// AdjustSupplierBalance adds a signed delta to a supplier's
// outstanding balance.
func (d *Directory) AdjustSupplierBalance(id string, delta decimal.Decimal) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.suppliers[id]
	if !ok {
		return fmt.Errorf("supplier %s: %w", id, shared.ErrNotFound)
	}
	s.OutstandingBalance = s.OutstandingBalance.Add(delta)
	return nil
}
