package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type createTaxReportRequest struct {
	Month int `json:"month" validate:"min=1,max=12"`
	Year  int `json:"year" validate:"required"`
}

type setTaxTotalsRequest struct {
	TotalSalesInvoice decimal.Decimal `json:"total_sales_invoice"`
	TotalSalesVAT     decimal.Decimal `json:"total_sales_vat"`
	TotalPurchase     decimal.Decimal `json:"total_purchase_invoice"`
	TotalPurchaseVAT  decimal.Decimal `json:"total_purchase_vat"`
}

type netVATView struct {
	ReportNo string          `json:"report_no"`
	NetVAT   decimal.Decimal `json:"net_vat"`
}

func (s *Server) mountTaxRoutes(r chi.Router) {
	r.Route("/tax/reports", func(r chi.Router) {
		r.Get("/", s.handleListTaxReports)
		r.Post("/", s.handleCreateTaxReport)
		r.Get("/{no}", s.handleGetTaxReport)
		r.Put("/{no}/totals", s.handleSetTaxTotals)
		r.Get("/{no}/net-vat", s.handleNetVAT)
	})
}

func (s *Server) handleListTaxReports(w http.ResponseWriter, r *http.Request) {
	reports := s.services.Tax.Reports()
	out := make([]taxReportView, 0, len(reports))
	for _, t := range reports {
		out = append(out, toTaxReportView(t))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTaxReport(w http.ResponseWriter, r *http.Request) {
	var req createTaxReportRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	report, err := s.services.Tax.CreateReport(req.Month, req.Year)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toTaxReportView(report))
}

func (s *Server) handleGetTaxReport(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	report, ok := s.services.Tax.Report(no)
	if !ok {
		s.renderError(w, r, notFound("tax report", no))
		return
	}
	s.writeJSON(w, http.StatusOK, toTaxReportView(report))
}

func (s *Server) handleSetTaxTotals(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	var req setTaxTotalsRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	if err := s.services.Tax.SetTotals(no, req.TotalSalesInvoice, req.TotalSalesVAT, req.TotalPurchase, req.TotalPurchaseVAT); err != nil {
		s.renderError(w, r, err)
		return
	}
	report, ok := s.services.Tax.Report(no)
	if !ok {
		s.renderError(w, r, notFound("tax report", no))
		return
	}
	s.writeJSON(w, http.StatusOK, toTaxReportView(report))
}

func (s *Server) handleNetVAT(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	net, err := s.services.Tax.NetVAT(no)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, netVATView{ReportNo: no, NetVAT: net})
}
