package sales

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

func newSales(t *testing.T) (*Service, *party.Directory) {
	t.Helper()
	dir := party.NewDirectory()
	dir.CreateCustomer("C001", "Acme Ltd", "1 Main St", "02-123-4567", "", dec("100000"))
	return NewService(dir), dir
}

func widgetItem() model.LineItem {
	return model.LineItem{
		ItemID:    "SKU-1",
		ItemName:  "Widget",
		Quantity:  dec("2"),
		UnitPrice: dec("100.00"),
		Discount:  dec("10"),
		VATRate:   dec("7"),
	}
}

func TestCreateInvoice(t *testing.T) {
	svc, _ := newSales(t)

	inv, err := svc.CreateInvoice("C001", date(2025, 1, 15), date(2025, 2, 15))
	require.NoError(t, err)
	assert.Equal(t, "INV000001", inv.InvoiceNo)
	assert.Equal(t, "Acme Ltd", inv.CustomerName)
	assert.Equal(t, model.InvoiceStatusDraft, inv.Status)
	assert.True(t, inv.TotalAmount.IsZero())

	inv2, err := svc.CreateInvoice("C001", date(2025, 1, 16), date(2025, 2, 16))
	require.NoError(t, err)
	assert.Equal(t, "INV000002", inv2.InvoiceNo)
}

func TestCreateInvoiceUnknownCustomer(t *testing.T) {
	svc, _ := newSales(t)

	_, err := svc.CreateInvoice("C999", date(2025, 1, 15), date(2025, 2, 15))
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAddItemUnknownInvoice(t *testing.T) {
	svc, _ := newSales(t)

	err := svc.AddItem("INV999999", widgetItem())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestFinalize(t *testing.T) {
	svc, dir := newSales(t)

	inv, err := svc.CreateInvoice("C001", date(2025, 1, 15), date(2025, 2, 15))
	require.NoError(t, err)
	require.NoError(t, svc.AddItem(inv.InvoiceNo, widgetItem()))

	got, err := svc.Finalize(inv.InvoiceNo)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPosted, got.Status)
	assert.True(t, got.TotalAmount.Equal(dec("180.00")), "amount = %s", got.TotalAmount)
	assert.True(t, got.TotalVAT.Equal(dec("12.60")), "vat = %s", got.TotalVAT)

	c, _ := dir.Customer("C001")
	assert.True(t, c.OutstandingBalance.Equal(dec("192.60")))
}

func TestFinalizeIdempotent(t *testing.T) {
	svc, dir := newSales(t)

	inv, err := svc.CreateInvoice("C001", date(2025, 1, 15), date(2025, 2, 15))
	require.NoError(t, err)
	require.NoError(t, svc.AddItem(inv.InvoiceNo, widgetItem()))

	first, err := svc.Finalize(inv.InvoiceNo)
	require.NoError(t, err)
	second, err := svc.Finalize(inv.InvoiceNo)
	require.NoError(t, err)

	assert.True(t, first.TotalAmount.Equal(second.TotalAmount))
	assert.True(t, first.TotalVAT.Equal(second.TotalVAT))

	// Exactly one balance bump despite two finalizes.
	c, _ := dir.Customer("C001")
	assert.True(t, c.OutstandingBalance.Equal(dec("192.60")), "balance = %s", c.OutstandingBalance)
}

func TestFinalizeAfterAddingMoreItems(t *testing.T) {
	svc, dir := newSales(t)

	inv, err := svc.CreateInvoice("C001", date(2025, 1, 15), date(2025, 2, 15))
	require.NoError(t, err)
	require.NoError(t, svc.AddItem(inv.InvoiceNo, widgetItem()))
	_, err = svc.Finalize(inv.InvoiceNo)
	require.NoError(t, err)

	require.NoError(t, svc.AddItem(inv.InvoiceNo, widgetItem()))
	got, err := svc.Finalize(inv.InvoiceNo)
	require.NoError(t, err)

	assert.True(t, got.TotalAmount.Equal(dec("360.00")))
	c, _ := dir.Customer("C001")
	assert.True(t, c.OutstandingBalance.Equal(dec("385.20")), "balance reflects the replaced contribution")
}

func TestRecordPayment(t *testing.T) {
	svc, dir := newSales(t)

	inv, err := svc.CreateInvoice("C001", date(2025, 1, 15), date(2025, 2, 15))
	require.NoError(t, err)
	require.NoError(t, svc.AddItem(inv.InvoiceNo, widgetItem()))
	_, err = svc.Finalize(inv.InvoiceNo)
	require.NoError(t, err)

	payment, err := svc.RecordPayment(inv.InvoiceNo, dec("192.60"), model.PaymentMethodBankTransfer)
	require.NoError(t, err)
	assert.NotEmpty(t, payment.PaymentID)
	assert.Equal(t, model.PaymentMethodBankTransfer, payment.Method)

	got, _ := svc.Invoice(inv.InvoiceNo)
	assert.Equal(t, model.InvoiceStatusPaid, got.Status)

	c, _ := dir.Customer("C001")
	assert.True(t, c.OutstandingBalance.IsZero())

	assert.Len(t, svc.Payments(inv.InvoiceNo), 1)
}

func TestRecordPaymentInsufficient(t *testing.T) {
	svc, dir := newSales(t)

	inv, err := svc.CreateInvoice("C001", date(2025, 1, 15), date(2025, 2, 15))
	require.NoError(t, err)
	require.NoError(t, svc.AddItem(inv.InvoiceNo, widgetItem()))
	_, err = svc.Finalize(inv.InvoiceNo)
	require.NoError(t, err)

	_, err = svc.RecordPayment(inv.InvoiceNo, dec("100.00"), model.PaymentMethodCash)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrInsufficientPayment)

	// No mutation on failure.
	got, _ := svc.Invoice(inv.InvoiceNo)
	assert.Equal(t, model.InvoiceStatusPosted, got.Status)
	c, _ := dir.Customer("C001")
	assert.True(t, c.OutstandingBalance.Equal(dec("192.60")))
	assert.Empty(t, svc.Payments(inv.InvoiceNo))
}

func TestOutstanding(t *testing.T) {
	svc, _ := newSales(t)

	inv1, err := svc.CreateInvoice("C001", date(2025, 1, 10), date(2025, 2, 10))
	require.NoError(t, err)
	require.NoError(t, svc.AddItem(inv1.InvoiceNo, widgetItem()))
	_, err = svc.Finalize(inv1.InvoiceNo)
	require.NoError(t, err)

	inv2, err := svc.CreateInvoice("C001", date(2025, 1, 20), date(2025, 2, 20))
	require.NoError(t, err)

	_, err = svc.RecordPayment(inv1.InvoiceNo, dec("192.60"), model.PaymentMethodCash)
	require.NoError(t, err)

	outstanding := svc.Outstanding("C001")
	require.Len(t, outstanding, 1, "Draft invoices count as outstanding, Paid ones do not")
	assert.Equal(t, inv2.InvoiceNo, outstanding[0].InvoiceNo)
}

func TestSummarize(t *testing.T) {
	svc, _ := newSales(t)

	for _, day := range []int{5, 15, 25} {
		inv, err := svc.CreateInvoice("C001", date(2025, 1, day), date(2025, 2, day))
		require.NoError(t, err)
		require.NoError(t, svc.AddItem(inv.InvoiceNo, widgetItem()))
		_, err = svc.Finalize(inv.InvoiceNo)
		require.NoError(t, err)
	}

	sum := svc.Summarize(date(2025, 1, 5), date(2025, 1, 15))
	assert.Equal(t, 2, sum.InvoiceCount, "range is inclusive on both ends")
	assert.True(t, sum.TotalSales.Equal(dec("360.00")))
	assert.True(t, sum.TotalVAT.Equal(dec("25.20")))
	assert.True(t, sum.AverageInvoice.Equal(dec("180.00")))
}

func TestSummarizeEmptyRange(t *testing.T) {
	svc, _ := newSales(t)

	sum := svc.Summarize(date(2030, 1, 1), date(2030, 12, 31))
	assert.Zero(t, sum.InvoiceCount)
	assert.True(t, sum.AverageInvoice.IsZero())
}
