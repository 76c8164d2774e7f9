package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type createPartyRequest struct {
	ID          string           `json:"id" validate:"required"`
	Name        string           `json:"name" validate:"required"`
	Address     string           `json:"address"`
	Phone       string           `json:"phone"`
	TaxID       string           `json:"tax_id"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
}

// creditLimit returns the requested limit, falling back to the
// configured business default when the field is omitted.
func (req createPartyRequest) creditLimit(fallback decimal.Decimal) decimal.Decimal {
	if req.CreditLimit == nil {
		return fallback
	}
	return *req.CreditLimit
}

func (s *Server) mountPartyRoutes(r chi.Router) {
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", s.handleListCustomers)
		r.Post("/", s.handleCreateCustomer)
		r.Get("/{id}", s.handleGetCustomer)
	})
	r.Route("/suppliers", func(r chi.Router) {
		r.Get("/", s.handleListSuppliers)
		r.Post("/", s.handleCreateSupplier)
		r.Get("/{id}", s.handleGetSupplier)
	})
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers := s.services.Directory.Customers()
	out := make([]customerView, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerView(c))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createPartyRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	c := s.services.Directory.CreateCustomer(req.ID, req.Name, req.Address, req.Phone, req.TaxID, req.creditLimit(s.defaultCredit))
	s.writeJSON(w, http.StatusCreated, toCustomerView(c))
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, ok := s.services.Directory.Customer(id)
	if !ok {
		s.renderError(w, r, notFound("customer", id))
		return
	}
	s.writeJSON(w, http.StatusOK, toCustomerView(c))
}

func (s *Server) handleListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers := s.services.Directory.Suppliers()
	out := make([]supplierView, 0, len(suppliers))
	for _, sp := range suppliers {
		out = append(out, toSupplierView(sp))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req createPartyRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	sp := s.services.Directory.CreateSupplier(req.ID, req.Name, req.Address, req.Phone, req.TaxID, req.creditLimit(s.defaultCredit))
	s.writeJSON(w, http.StatusCreated, toSupplierView(sp))
}

func (s *Server) handleGetSupplier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sp, ok := s.services.Directory.Supplier(id)
	if !ok {
		s.renderError(w, r, notFound("supplier", id))
		return
	}
	s.writeJSON(w, http.StatusOK, toSupplierView(sp))
}
