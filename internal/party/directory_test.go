package party

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siambooks/siambooks/internal/shared"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateCustomer(t *testing.T) {
	dir := NewDirectory()

	c := dir.CreateCustomer("C001", "Acme Ltd", "1 Main St", "02-123-4567", "0105540000001", dec("100000"))
	assert.Equal(t, "C001", c.CustomerID)
	assert.True(t, c.OutstandingBalance.IsZero())

	got, ok := dir.Customer("C001")
	require.True(t, ok)
	assert.Equal(t, "Acme Ltd", got.Name)
}

func TestCreateCustomerUpsert(t *testing.T) {
	dir := NewDirectory()

	dir.CreateCustomer("C001", "Acme Ltd", "", "", "", dec("100000"))
	require.NoError(t, dir.AdjustCustomerBalance("C001", dec("500.00")))

	// Re-using the id replaces the record, balance included.
	dir.CreateCustomer("C001", "Acme Limited", "", "", "", dec("200000"))

	got, ok := dir.Customer("C001")
	require.True(t, ok)
	assert.Equal(t, "Acme Limited", got.Name)
	assert.True(t, got.OutstandingBalance.IsZero())
	assert.Len(t, dir.Customers(), 1)
}

func TestSupplierRoundTrip(t *testing.T) {
	dir := NewDirectory()

	dir.CreateSupplier("S001", "Parts Co", "", "", "", dec("50000"))
	dir.CreateSupplier("S002", "Paper Co", "", "", "", dec("25000"))

	suppliers := dir.Suppliers()
	require.Len(t, suppliers, 2)
	assert.Equal(t, "S001", suppliers[0].SupplierID, "insertion order")

	_, ok := dir.Supplier("S999")
	assert.False(t, ok)
}

func TestAdjustBalances(t *testing.T) {
	dir := NewDirectory()
	dir.CreateCustomer("C001", "Acme", "", "", "", dec("100000"))
	dir.CreateSupplier("S001", "Parts", "", "", "", dec("100000"))

	require.NoError(t, dir.AdjustCustomerBalance("C001", dec("192.60")))
	require.NoError(t, dir.AdjustCustomerBalance("C001", dec("-192.60")))
	c, _ := dir.Customer("C001")
	assert.True(t, c.OutstandingBalance.IsZero())

	require.NoError(t, dir.AdjustSupplierBalance("S001", dec("107.00")))
	s, _ := dir.Supplier("S001")
	assert.True(t, s.OutstandingBalance.Equal(dec("107.00")))

	assert.ErrorIs(t, dir.AdjustCustomerBalance("C999", dec("1")), shared.ErrNotFound)
	assert.ErrorIs(t, dir.AdjustSupplierBalance("S999", dec("1")), shared.ErrNotFound)
}
