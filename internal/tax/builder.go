// Package tax builds monthly VAT report shells. The caller populates
// the totals from finalized invoices; the builder performs no
// aggregation itself.
package tax

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/seq"
	"github.com/siambooks/siambooks/internal/shared"
)

// Builder stores tax reports keyed by report number. Reports are keyed
// by period, so creating the same month again replaces the shell.
type Builder struct {
	mu      sync.Mutex
	reports map[string]*model.TaxReport
	order   []string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{reports: make(map[string]*model.TaxReport)}
}

// CreateReport allocates a Draft report for a month and year, numbered
// "TAX{year}{month:02d}".
func (b *Builder) CreateReport(month, year int) (model.TaxReport, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if month < 1 || month > 12 {
		return model.TaxReport{}, fmt.Errorf("report month %d: %w", month, shared.ErrMonthOutOfRange)
	}

	report := &model.TaxReport{
		ReportNo:    seq.TaxReportNo(year, month),
		ReportMonth: month,
		ReportYear:  year,
		Status:      model.TaxReportDraft,
	}
	if _, exists := b.reports[report.ReportNo]; !exists {
		b.order = append(b.order, report.ReportNo)
	}
	b.reports[report.ReportNo] = report
	return *report, nil
}

// SetTotals populates a report's invoice and VAT totals. The caller
// supplies sums over the period's finalized invoices.
func (b *Builder) SetTotals(reportNo string, salesInvoice, salesVAT, purchase, purchaseVAT decimal.Decimal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	report, ok := b.reports[reportNo]
	if !ok {
		return fmt.Errorf("tax report %s: %w", reportNo, shared.ErrNotFound)
	}
	report.TotalSalesInvoice = salesInvoice
	report.TotalSalesVAT = salesVAT
	report.TotalPurchase = purchase
	report.TotalPurchaseVAT = purchaseVAT
	return nil
}

// NetVAT computes, stores and returns sales VAT minus purchase VAT for
// a report.
func (b *Builder) NetVAT(reportNo string) (decimal.Decimal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	report, ok := b.reports[reportNo]
	if !ok {
		return decimal.Zero, fmt.Errorf("tax report %s: %w", reportNo, shared.ErrNotFound)
	}
	report.NetVAT = report.TotalSalesVAT.Sub(report.TotalPurchaseVAT)
	return report.NetVAT, nil
}

// Report returns a report by number.
func (b *Builder) Report(reportNo string) (model.TaxReport, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	report, ok := b.reports[reportNo]
	if !ok {
		return model.TaxReport{}, false
	}
	return *report, true
}

// Reports returns all reports in creation order.
func (b *Builder) Reports() []model.TaxReport {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := make([]model.TaxReport, 0, len(b.order))
	for _, no := range b.order {
		result = append(result, *b.reports[no])
	}
	return result
}
