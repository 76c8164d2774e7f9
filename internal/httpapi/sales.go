package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/sales"
)

type createSalesInvoiceRequest struct {
	CustomerID  string `json:"customer_id" validate:"required"`
	InvoiceDate string `json:"invoice_date" validate:"required"`
	DueDate     string `json:"due_date" validate:"required"`
}

type addLineItemRequest struct {
	ItemName  string           `json:"item_name" validate:"required"`
	Quantity  decimal.Decimal  `json:"quantity"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	Discount  decimal.Decimal  `json:"discount"`
	VATRate   *decimal.Decimal `json:"vat_rate"`
}

// lineItem builds the core line item, applying the configured VAT rate
// when the request omits one. Line items are not numbered documents,
// so they get a uuid like payments do.
func (req addLineItemRequest) lineItem(defaultVAT decimal.Decimal) model.LineItem {
	vat := defaultVAT
	if req.VATRate != nil {
		vat = *req.VATRate
	}
	return model.LineItem{
		ItemID:    uuid.NewString(),
		ItemName:  req.ItemName,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Discount:  req.Discount,
		VATRate:   vat,
	}
}

type recordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method" validate:"required,oneof=Cash Cheque 'Bank Transfer' 'Credit Card'"`
}

type summaryView struct {
	Total          decimal.Decimal `json:"total"`
	TotalVAT       decimal.Decimal `json:"total_vat"`
	InvoiceCount   int             `json:"invoice_count"`
	AverageInvoice decimal.Decimal `json:"average_invoice"`
}

func (s *Server) mountSalesRoutes(r chi.Router) {
	r.Route("/sales", func(r chi.Router) {
		r.Get("/invoices", s.handleListSalesInvoices)
		r.Post("/invoices", s.handleCreateSalesInvoice)
		r.Get("/invoices/{no}", s.handleGetSalesInvoice)
		r.Post("/invoices/{no}/items", s.handleAddSalesItem)
		r.Post("/invoices/{no}/finalize", s.handleFinalizeSalesInvoice)
		r.Post("/invoices/{no}/payments", s.handleRecordSalesPayment)
		r.Get("/invoices/{no}/payments", s.handleListSalesPayments)
		r.Get("/outstanding", s.handleSalesOutstanding)
		r.Get("/summary", s.handleSalesSummary)
	})
}

func (s *Server) handleListSalesInvoices(w http.ResponseWriter, r *http.Request) {
	invoices := s.services.Sales.Invoices()
	out := make([]salesInvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toSalesInvoiceView(inv))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateSalesInvoice(w http.ResponseWriter, r *http.Request) {
	var req createSalesInvoiceRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}
	invoiceDate, err := parseDate(req.InvoiceDate)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	inv, err := s.services.Sales.CreateInvoice(req.CustomerID, invoiceDate, dueDate)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toSalesInvoiceView(inv))
}

func (s *Server) handleGetSalesInvoice(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	inv, ok := s.services.Sales.Invoice(no)
	if !ok {
		s.renderError(w, r, notFound("invoice", no))
		return
	}
	s.writeJSON(w, http.StatusOK, toSalesInvoiceView(inv))
}

func (s *Server) handleAddSalesItem(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	var req addLineItemRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	item := req.lineItem(s.defaultVAT)
	if err := s.services.Sales.AddItem(no, item); err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toItemView(item))
}

func (s *Server) handleFinalizeSalesInvoice(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	inv, err := s.services.Sales.Finalize(no)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toSalesInvoiceView(inv))
}

func (s *Server) handleRecordSalesPayment(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	var req recordPaymentRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	p, err := s.services.Sales.RecordPayment(no, req.Amount, model.PaymentMethod(req.Method))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toPaymentView(p))
}

func (s *Server) handleListSalesPayments(w http.ResponseWriter, r *http.Request) {
	payments := s.services.Sales.Payments(chi.URLParam(r, "no"))
	out := make([]paymentView, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentView(p))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSalesOutstanding(w http.ResponseWriter, r *http.Request) {
	invoices := s.services.Sales.Outstanding(r.URL.Query().Get("customer_id"))
	out := make([]salesInvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toSalesInvoiceView(inv))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSalesSummary(w http.ResponseWriter, r *http.Request) {
	from, err := parseDate(r.URL.Query().Get("from"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	to, err := parseDate(r.URL.Query().Get("to"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toSalesSummaryView(s.services.Sales.Summarize(from, to)))
}

func toSalesSummaryView(sum sales.Summary) summaryView {
	return summaryView{
		Total:          sum.TotalSales,
		TotalVAT:       sum.TotalVAT,
		InvoiceCount:   sum.InvoiceCount,
		AverageInvoice: sum.AverageInvoice,
	}
}
