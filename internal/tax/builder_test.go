package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/shared"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateReport(t *testing.T) {
	b := NewBuilder()

	report, err := b.CreateReport(1, 2025)
	require.NoError(t, err)
	assert.Equal(t, "TAX202501", report.ReportNo)
	assert.Equal(t, model.TaxReportDraft, report.Status)
	assert.True(t, report.NetVAT.IsZero())
}

func TestCreateReportMonthOutOfRange(t *testing.T) {
	b := NewBuilder()

	_, err := b.CreateReport(0, 2025)
	assert.ErrorIs(t, err, shared.ErrMonthOutOfRange)
	_, err = b.CreateReport(13, 2025)
	assert.ErrorIs(t, err, shared.ErrMonthOutOfRange)
}

func TestCreateReportSamePeriodReplaces(t *testing.T) {
	b := NewBuilder()

	_, err := b.CreateReport(1, 2025)
	require.NoError(t, err)
	require.NoError(t, b.SetTotals("TAX202501", dec("100"), dec("7"), dec("50"), dec("3.50")))

	_, err = b.CreateReport(1, 2025)
	require.NoError(t, err)

	report, ok := b.Report("TAX202501")
	require.True(t, ok)
	assert.True(t, report.TotalSalesVAT.IsZero(), "recreating the period resets the shell")
	assert.Len(t, b.Reports(), 1)
}

func TestNetVAT(t *testing.T) {
	b := NewBuilder()

	_, err := b.CreateReport(3, 2025)
	require.NoError(t, err)
	require.NoError(t, b.SetTotals("TAX202503", dec("10000.00"), dec("700.00"), dec("4000.00"), dec("280.00")))

	net, err := b.NetVAT("TAX202503")
	require.NoError(t, err)
	assert.True(t, net.Equal(dec("420.00")))

	report, _ := b.Report("TAX202503")
	assert.True(t, report.NetVAT.Equal(dec("420.00")), "net VAT is stored on the report")
}

func TestNetVATUnknownReport(t *testing.T) {
	b := NewBuilder()

	_, err := b.NetVAT("TAX209901")
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.ErrorIs(t, b.SetTotals("TAX209901", dec("1"), dec("1"), dec("1"), dec("1")), shared.ErrNotFound)
}
