// Package httpapi exposes the bookkeeping core over a JSON API. The
// adapter stays thin: it decodes requests, calls the core, and renders
// snapshots with decimal amounts serialized as strings.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/accounts"
	"github.com/siambooks/siambooks/internal/assets"
	"github.com/siambooks/siambooks/internal/banking"
	"github.com/siambooks/siambooks/internal/budget"
	"github.com/siambooks/siambooks/internal/config"
	"github.com/siambooks/siambooks/internal/ledger"
	"github.com/siambooks/siambooks/internal/party"
	"github.com/siambooks/siambooks/internal/purchasing"
	"github.com/siambooks/siambooks/internal/sales"
	"github.com/siambooks/siambooks/internal/tax"
)

// Services bundles one set of books: a chart of accounts with its
// ledger, a counterparty directory shared by both invoice engines, and
// the remaining registers.
type Services struct {
	Accounts   *accounts.Service
	Ledger     *ledger.Service
	Directory  *party.Directory
	Sales      *sales.Service
	Purchasing *purchasing.Service
	Banking    *banking.Service
	Assets     *assets.Register
	Budgets    *budget.Tracker
	Tax        *tax.Builder
}

// NewServices wires a fresh in-memory set of books.
func NewServices() Services {
	accts := accounts.NewService()
	directory := party.NewDirectory()
	return Services{
		Accounts:   accts,
		Ledger:     ledger.NewService(accts),
		Directory:  directory,
		Sales:      sales.NewService(directory),
		Purchasing: purchasing.NewService(directory),
		Banking:    banking.NewService(),
		Assets:     assets.NewRegister(),
		Budgets:    budget.NewTracker(),
		Tax:        tax.NewBuilder(),
	}
}

// Server handles the JSON API.
type Server struct {
	logger        *slog.Logger
	services      Services
	validate      *validator.Validate
	defaultVAT    decimal.Decimal
	defaultCredit decimal.Decimal
}

// NewServer builds a Server. The business config supplies the VAT rate
// and credit limit applied when a request omits them.
func NewServer(logger *slog.Logger, cfg *config.Config, services Services) (*Server, error) {
	defaultVAT, err := decimal.NewFromString(cfg.VAT.DefaultRate)
	if err != nil {
		return nil, err
	}
	defaultCredit, err := decimal.NewFromString(cfg.Credit.DefaultLimit)
	if err != nil {
		return nil, err
	}
	return &Server{
		logger:        logger,
		services:      services,
		validate:      validator.New(),
		defaultVAT:    defaultVAT,
		defaultCredit: defaultCredit,
	}, nil
}

// Router assembles the chi router with middleware and all routes.
func (s *Server) Router(cfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(cfg.RequestLimit, cfg.RequestWindow))

	r.Route("/api", func(r chi.Router) {
		s.mountLedgerRoutes(r)
		s.mountPartyRoutes(r)
		s.mountSalesRoutes(r)
		s.mountPurchasingRoutes(r)
		s.mountBankingRoutes(r)
		s.mountAssetRoutes(r)
		s.mountBudgetRoutes(r)
		s.mountTaxRoutes(r)
	})
	return r
}
