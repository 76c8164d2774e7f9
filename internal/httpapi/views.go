package httpapi

import (
	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/model"
)

// View types are the wire snapshots of core entities. decimal.Decimal
// marshals as a quoted string, which keeps amounts exact on the wire.

type accountView struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

func toAccountView(a model.Account) accountView {
	return accountView{
		Code:    a.Code,
		Name:    a.Name,
		Type:    string(a.Type),
		Balance: a.Balance,
	}
}

type entryView struct {
	EntryID     string          `json:"entry_id"`
	VoucherNo   string          `json:"voucher_no"`
	Date        string          `json:"date"`
	AccountCode string          `json:"account_code"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Status      string          `json:"status"`
}

func toEntryView(e model.VoucherEntry) entryView {
	return entryView{
		EntryID:     e.EntryID,
		VoucherNo:   e.VoucherNo,
		Date:        e.Date.Format(dateFormat),
		AccountCode: e.AccountCode,
		Description: e.Description,
		Debit:       e.Debit,
		Credit:      e.Credit,
		Status:      string(e.Status),
	}
}

type itemView struct {
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	VATRate   decimal.Decimal `json:"vat_rate"`
	Amount    decimal.Decimal `json:"amount"`
	VATAmount decimal.Decimal `json:"vat_amount"`
	Total     decimal.Decimal `json:"total"`
}

func toItemView(li model.LineItem) itemView {
	return itemView{
		ItemID:    li.ItemID,
		ItemName:  li.ItemName,
		Quantity:  li.Quantity,
		UnitPrice: li.UnitPrice,
		Discount:  li.Discount,
		VATRate:   li.VATRate,
		Amount:    li.Amount(),
		VATAmount: li.VATAmount(),
		Total:     li.Total(),
	}
}

func toItemViews(items []model.LineItem) []itemView {
	out := make([]itemView, 0, len(items))
	for _, li := range items {
		out = append(out, toItemView(li))
	}
	return out
}

type salesInvoiceView struct {
	InvoiceNo    string          `json:"invoice_no"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	InvoiceDate  string          `json:"invoice_date"`
	DueDate      string          `json:"due_date"`
	Items        []itemView      `json:"items"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalVAT     decimal.Decimal `json:"total_vat"`
	Notes        string          `json:"notes,omitempty"`
}

func toSalesInvoiceView(inv model.SalesInvoice) salesInvoiceView {
	return salesInvoiceView{
		InvoiceNo:    inv.InvoiceNo,
		CustomerID:   inv.CustomerID,
		CustomerName: inv.CustomerName,
		InvoiceDate:  inv.InvoiceDate.Format(dateFormat),
		DueDate:      inv.DueDate.Format(dateFormat),
		Items:        toItemViews(inv.Items),
		Status:       string(inv.Status),
		TotalAmount:  inv.TotalAmount,
		TotalVAT:     inv.TotalVAT,
		Notes:        inv.Notes,
	}
}

type purchaseInvoiceView struct {
	InvoiceNo    string          `json:"invoice_no"`
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	InvoiceDate  string          `json:"invoice_date"`
	DueDate      string          `json:"due_date"`
	Items        []itemView      `json:"items"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalVAT     decimal.Decimal `json:"total_vat"`
}

func toPurchaseInvoiceView(inv model.PurchaseInvoice) purchaseInvoiceView {
	return purchaseInvoiceView{
		InvoiceNo:    inv.InvoiceNo,
		SupplierID:   inv.SupplierID,
		SupplierName: inv.SupplierName,
		InvoiceDate:  inv.InvoiceDate.Format(dateFormat),
		DueDate:      inv.DueDate.Format(dateFormat),
		Items:        toItemViews(inv.Items),
		Status:       string(inv.Status),
		TotalAmount:  inv.TotalAmount,
		TotalVAT:     inv.TotalVAT,
	}
}

type purchaseOrderView struct {
	PONo             string          `json:"po_no"`
	SupplierID       string          `json:"supplier_id"`
	SupplierName     string          `json:"supplier_name"`
	OrderDate        string          `json:"order_date"`
	ExpectedDelivery string          `json:"expected_delivery"`
	Items            []itemView      `json:"items"`
	Status           string          `json:"status"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}

func toPurchaseOrderView(po model.PurchaseOrder) purchaseOrderView {
	return purchaseOrderView{
		PONo:             po.PONo,
		SupplierID:       po.SupplierID,
		SupplierName:     po.SupplierName,
		OrderDate:        po.OrderDate.Format(dateFormat),
		ExpectedDelivery: po.ExpectedDelivery.Format(dateFormat),
		Items:            toItemViews(po.Items),
		Status:           string(po.Status),
		TotalAmount:      po.TotalAmount,
	}
}

type customerView struct {
	CustomerID         string          `json:"customer_id"`
	Name               string          `json:"name"`
	Address            string          `json:"address,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	TaxID              string          `json:"tax_id,omitempty"`
	CreditLimit        decimal.Decimal `json:"credit_limit"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

func toCustomerView(c model.Customer) customerView {
	return customerView{
		CustomerID:         c.CustomerID,
		Name:               c.Name,
		Address:            c.Address,
		Phone:              c.Phone,
		TaxID:              c.TaxID,
		CreditLimit:        c.CreditLimit,
		OutstandingBalance: c.OutstandingBalance,
	}
}

type supplierView struct {
	SupplierID         string          `json:"supplier_id"`
	Name               string          `json:"name"`
	Address            string          `json:"address,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	TaxID              string          `json:"tax_id,omitempty"`
	CreditLimit        decimal.Decimal `json:"credit_limit"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

func toSupplierView(s model.Supplier) supplierView {
	return supplierView{
		SupplierID:         s.SupplierID,
		Name:               s.Name,
		Address:            s.Address,
		Phone:              s.Phone,
		TaxID:              s.TaxID,
		CreditLimit:        s.CreditLimit,
		OutstandingBalance: s.OutstandingBalance,
	}
}

type paymentView struct {
	PaymentID   string          `json:"payment_id"`
	InvoiceNo   string          `json:"invoice_no"`
	PaymentDate string          `json:"payment_date"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
}

func toPaymentView(p model.Payment) paymentView {
	return paymentView{
		PaymentID:   p.PaymentID,
		InvoiceNo:   p.InvoiceNo,
		PaymentDate: p.PaymentDate.Format(dateFormat),
		Amount:      p.Amount,
		Method:      string(p.Method),
	}
}

type chequeView struct {
	ChequeNo     string          `json:"cheque_no"`
	IssueDate    string          `json:"issue_date"`
	Amount       decimal.Decimal `json:"amount"`
	Payee        string          `json:"payee"`
	BankName     string          `json:"bank_name"`
	Status       string          `json:"status"`
	ClearingDate string          `json:"clearing_date,omitempty"`
}

func toChequeView(c model.Cheque) chequeView {
	v := chequeView{
		ChequeNo:  c.ChequeNo,
		IssueDate: c.IssueDate.Format(dateFormat),
		Amount:    c.Amount,
		Payee:     c.Payee,
		BankName:  c.BankName,
		Status:    string(c.Status),
	}
	if c.ClearingDate != nil {
		v.ClearingDate = c.ClearingDate.Format(dateFormat)
	}
	return v
}

type assetView struct {
	AssetID                 string          `json:"asset_id"`
	Name                    string          `json:"name"`
	PurchaseDate            string          `json:"purchase_date"`
	Cost                    decimal.Decimal `json:"cost"`
	Method                  string          `json:"depreciation_method"`
	UsefulLifeYears         int             `json:"useful_life_years"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulated_depreciation"`
	BookValue               decimal.Decimal `json:"book_value"`
	Department              string          `json:"department,omitempty"`
}

func toAssetView(a model.FixedAsset) assetView {
	return assetView{
		AssetID:                 a.AssetID,
		Name:                    a.Name,
		PurchaseDate:            a.PurchaseDate.Format(dateFormat),
		Cost:                    a.Cost,
		Method:                  string(a.Method),
		UsefulLifeYears:         a.UsefulLifeYears,
		AccumulatedDepreciation: a.AccumulatedDepreciation,
		BookValue:               a.BookValue(),
		Department:              a.Department,
	}
}

type taxReportView struct {
	ReportNo          string          `json:"report_no"`
	ReportMonth       int             `json:"report_month"`
	ReportYear        int             `json:"report_year"`
	TotalSalesInvoice decimal.Decimal `json:"total_sales_invoice"`
	TotalSalesVAT     decimal.Decimal `json:"total_sales_vat"`
	TotalPurchase     decimal.Decimal `json:"total_purchase_invoice"`
	TotalPurchaseVAT  decimal.Decimal `json:"total_purchase_vat"`
	NetVAT            decimal.Decimal `json:"net_vat"`
	Status            string          `json:"status"`
}

func toTaxReportView(t model.TaxReport) taxReportView {
	return taxReportView{
		ReportNo:          t.ReportNo,
		ReportMonth:       t.ReportMonth,
		ReportYear:        t.ReportYear,
		TotalSalesInvoice: t.TotalSalesInvoice,
		TotalSalesVAT:     t.TotalSalesVAT,
		TotalPurchase:     t.TotalPurchase,
		TotalPurchaseVAT:  t.TotalPurchaseVAT,
		NetVAT:            t.NetVAT,
		Status:            string(t.Status),
	}
}
