package purchasing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/party"
	"github.com/siambooks/siambooks/internal/shared"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func newPurchasing(t *testing.T) (*Service, *party.Directory) {
	t.Helper()
	dir := party.NewDirectory()
	dir.CreateSupplier("S001", "Parts Co", "9 Dock Rd", "02-765-4321", "", dec("100000"))
	return NewService(dir), dir
}

func partItem() model.LineItem {
	return model.LineItem{
		ItemID:    "P-100",
		ItemName:  "Bearing",
		Quantity:  dec("2"),
		UnitPrice: dec("100.00"),
		Discount:  dec("10"),
		VATRate:   dec("7"),
	}
}

func TestCreateOrder(t *testing.T) {
	svc, _ := newPurchasing(t)

	po, err := svc.CreateOrder("S001", date(2025, 3, 1), date(2025, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, "PO000001", po.PONo)
	assert.Equal(t, model.OrderStatusDraft, po.Status)

	_, err = svc.CreateOrder("S999", date(2025, 3, 1), date(2025, 3, 15))
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestFinalizeOrderVATInclusiveTotal(t *testing.T) {
	svc, dir := newPurchasing(t)

	po, err := svc.CreateOrder("S001", date(2025, 3, 1), date(2025, 3, 15))
	require.NoError(t, err)
	require.NoError(t, svc.AddOrderItem(po.PONo, partItem()))

	got, err := svc.FinalizeOrder(po.PONo)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusOrdered, got.Status)
	// PO totals include VAT, unlike invoice totals.
	assert.True(t, got.TotalAmount.Equal(dec("192.60")), "total = %s", got.TotalAmount)

	// No supplier balance movement from a PO.
	s, _ := dir.Supplier("S001")
	assert.True(t, s.OutstandingBalance.IsZero())
}

func TestFinalizeOrderUnknown(t *testing.T) {
	svc, _ := newPurchasing(t)

	_, err := svc.FinalizeOrder("PO999999")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPurchaseInvoiceLifecycle(t *testing.T) {
	svc, dir := newPurchasing(t)

	inv, err := svc.CreateInvoice("S001", date(2025, 3, 5), date(2025, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, "PINV000001", inv.InvoiceNo)
	require.NoError(t, svc.AddInvoiceItem(inv.InvoiceNo, partItem()))

	got, err := svc.FinalizeInvoice(inv.InvoiceNo)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPosted, got.Status)
	// Invoice totals are VAT-exclusive, VAT held separately.
	assert.True(t, got.TotalAmount.Equal(dec("180.00")))
	assert.True(t, got.TotalVAT.Equal(dec("12.60")))

	s, _ := dir.Supplier("S001")
	assert.True(t, s.OutstandingBalance.Equal(dec("192.60")))

	payment, err := svc.RecordPayment(inv.InvoiceNo, dec("192.60"), model.PaymentMethodCheque)
	require.NoError(t, err)
	assert.NotEmpty(t, payment.PaymentID)

	s, _ = dir.Supplier("S001")
	assert.True(t, s.OutstandingBalance.IsZero())
	paid, _ := svc.Invoice(inv.InvoiceNo)
	assert.Equal(t, model.InvoiceStatusPaid, paid.Status)
}

func TestFinalizeInvoiceIdempotent(t *testing.T) {
	svc, dir := newPurchasing(t)

	inv, err := svc.CreateInvoice("S001", date(2025, 3, 5), date(2025, 4, 5))
	require.NoError(t, err)
	require.NoError(t, svc.AddInvoiceItem(inv.InvoiceNo, partItem()))

	_, err = svc.FinalizeInvoice(inv.InvoiceNo)
	require.NoError(t, err)
	_, err = svc.FinalizeInvoice(inv.InvoiceNo)
	require.NoError(t, err)

	s, _ := dir.Supplier("S001")
	assert.True(t, s.OutstandingBalance.Equal(dec("192.60")), "one bump for two finalizes")
}

func TestRecordPaymentInsufficient(t *testing.T) {
	svc, dir := newPurchasing(t)

	inv, err := svc.CreateInvoice("S001", date(2025, 3, 5), date(2025, 4, 5))
	require.NoError(t, err)
	require.NoError(t, svc.AddInvoiceItem(inv.InvoiceNo, partItem()))
	_, err = svc.FinalizeInvoice(inv.InvoiceNo)
	require.NoError(t, err)

	_, err = svc.RecordPayment(inv.InvoiceNo, dec("192.59"), model.PaymentMethodCash)
	assert.ErrorIs(t, err, shared.ErrInsufficientPayment)

	s, _ := dir.Supplier("S001")
	assert.True(t, s.OutstandingBalance.Equal(dec("192.60")))
}

func TestOutstandingAndSummary(t *testing.T) {
	svc, _ := newPurchasing(t)

	inv1, err := svc.CreateInvoice("S001", date(2025, 3, 5), date(2025, 4, 5))
	require.NoError(t, err)
	require.NoError(t, svc.AddInvoiceItem(inv1.InvoiceNo, partItem()))
	_, err = svc.FinalizeInvoice(inv1.InvoiceNo)
	require.NoError(t, err)

	inv2, err := svc.CreateInvoice("S001", date(2025, 3, 20), date(2025, 4, 20))
	require.NoError(t, err)

	assert.Len(t, svc.Outstanding("S001"), 2)

	_, err = svc.RecordPayment(inv1.InvoiceNo, dec("192.60"), model.PaymentMethodCash)
	require.NoError(t, err)
	outstanding := svc.Outstanding("S001")
	require.Len(t, outstanding, 1)
	assert.Equal(t, inv2.InvoiceNo, outstanding[0].InvoiceNo)

	sum := svc.Summarize(date(2025, 3, 1), date(2025, 3, 31))
	assert.Equal(t, 2, sum.InvoiceCount)
	assert.True(t, sum.TotalPurchases.Equal(dec("180.00")), "draft invoice contributes zero")
	assert.True(t, sum.AverageInvoice.Equal(dec("90.00")))
}
