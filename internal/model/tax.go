package model

import "github.com/shopspring/decimal"

// TaxReportStatus is the filing state of a VAT report.
type TaxReportStatus string

const (
	TaxReportDraft     TaxReportStatus = "Draft"
	TaxReportSubmitted TaxReportStatus = "Submitted"
)

// TaxReport is a monthly VAT report shell. The totals are populated by
// the caller from finalized invoices; the report itself only derives
// NetVAT = sales VAT - purchase VAT.
type TaxReport struct {
	ReportNo          string // "TAX{year}{month:02d}"
	ReportMonth       int    // 1-12
	ReportYear        int
	TotalSalesInvoice decimal.Decimal
	TotalSalesVAT     decimal.Decimal
	TotalPurchase     decimal.Decimal
	TotalPurchaseVAT  decimal.Decimal
	NetVAT            decimal.Decimal
	Status            TaxReportStatus
}
