package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/purchasing"
)

type createPurchaseOrderRequest struct {
	SupplierID       string `json:"supplier_id" validate:"required"`
	OrderDate        string `json:"order_date" validate:"required"`
	ExpectedDelivery string `json:"expected_delivery" validate:"required"`
}

type createPurchaseInvoiceRequest struct {
	SupplierID  string `json:"supplier_id" validate:"required"`
	InvoiceDate string `json:"invoice_date" validate:"required"`
	DueDate     string `json:"due_date" validate:"required"`
}

func (s *Server) mountPurchasingRoutes(r chi.Router) {
	r.Route("/purchase-orders", func(r chi.Router) {
		r.Get("/", s.handleListPurchaseOrders)
		r.Post("/", s.handleCreatePurchaseOrder)
		r.Get("/{no}", s.handleGetPurchaseOrder)
		r.Post("/{no}/items", s.handleAddOrderItem)
		r.Post("/{no}/finalize", s.handleFinalizeOrder)
	})
	r.Route("/purchasing", func(r chi.Router) {
		r.Get("/invoices", s.handleListPurchaseInvoices)
		r.Post("/invoices", s.handleCreatePurchaseInvoice)
		r.Get("/invoices/{no}", s.handleGetPurchaseInvoice)
		r.Post("/invoices/{no}/items", s.handleAddPurchaseItem)
		r.Post("/invoices/{no}/finalize", s.handleFinalizePurchaseInvoice)
		r.Post("/invoices/{no}/payments", s.handleRecordPurchasePayment)
		r.Get("/invoices/{no}/payments", s.handleListPurchasePayments)
		r.Get("/outstanding", s.handlePurchasingOutstanding)
		r.Get("/summary", s.handlePurchasingSummary)
	})
}

func (s *Server) handleListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	orders := s.services.Purchasing.Orders()
	out := make([]purchaseOrderView, 0, len(orders))
	for _, po := range orders {
		out = append(out, toPurchaseOrderView(po))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var req createPurchaseOrderRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}
	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	expected, err := parseDate(req.ExpectedDelivery)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	po, err := s.services.Purchasing.CreateOrder(req.SupplierID, orderDate, expected)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toPurchaseOrderView(po))
}

func (s *Server) handleGetPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	po, ok := s.services.Purchasing.Order(no)
	if !ok {
		s.renderError(w, r, notFound("purchase order", no))
		return
	}
	s.writeJSON(w, http.StatusOK, toPurchaseOrderView(po))
}

func (s *Server) handleAddOrderItem(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	var req addLineItemRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	item := req.lineItem(s.defaultVAT)
	if err := s.services.Purchasing.AddOrderItem(no, item); err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toItemView(item))
}

func (s *Server) handleFinalizeOrder(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	po, err := s.services.Purchasing.FinalizeOrder(no)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPurchaseOrderView(po))
}

func (s *Server) handleListPurchaseInvoices(w http.ResponseWriter, r *http.Request) {
	invoices := s.services.Purchasing.Invoices()
	out := make([]purchaseInvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toPurchaseInvoiceView(inv))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatePurchaseInvoice(w http.ResponseWriter, r *http.Request) {
	var req createPurchaseInvoiceRequest
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

	inv, err := s.services.Purchasing.CreateInvoice(req.SupplierID, invoiceDate, dueDate)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toPurchaseInvoiceView(inv))
}

func (s *Server) handleGetPurchaseInvoice(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	inv, ok := s.services.Purchasing.Invoice(no)
	if !ok {
		s.renderError(w, r, notFound("invoice", no))
		return
	}
	s.writeJSON(w, http.StatusOK, toPurchaseInvoiceView(inv))
}

func (s *Server) handleAddPurchaseItem(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	var req addLineItemRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	item := req.lineItem(s.defaultVAT)
	if err := s.services.Purchasing.AddInvoiceItem(no, item); err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toItemView(item))
}

func (s *Server) handleFinalizePurchaseInvoice(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	inv, err := s.services.Purchasing.FinalizeInvoice(no)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toPurchaseInvoiceView(inv))
}

func (s *Server) handleRecordPurchasePayment(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	var req recordPaymentRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	p, err := s.services.Purchasing.RecordPayment(no, req.Amount, model.PaymentMethod(req.Method))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toPaymentView(p))
}

func (s *Server) handleListPurchasePayments(w http.ResponseWriter, r *http.Request) {
	payments := s.services.Purchasing.Payments(chi.URLParam(r, "no"))
	out := make([]paymentView, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentView(p))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePurchasingOutstanding(w http.ResponseWriter, r *http.Request) {
	invoices := s.services.Purchasing.Outstanding(r.URL.Query().Get("supplier_id"))
	out := make([]purchaseInvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toPurchaseInvoiceView(inv))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePurchasingSummary(w http.ResponseWriter, r *http.Request) {
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
	s.writeJSON(w, http.StatusOK, toPurchasingSummaryView(s.services.Purchasing.Summarize(from, to)))
}

func toPurchasingSummaryView(sum purchasing.Summary) summaryView {
	return summaryView{
		Total:          sum.TotalPurchases,
		TotalVAT:       sum.TotalVAT,
		InvoiceCount:   sum.InvoiceCount,
		AverageInvoice: sum.AverageInvoice,
	}
}
