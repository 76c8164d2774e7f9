package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/ledger"
	"github.com/siambooks/siambooks/internal/model"
)

type createAccountRequest struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=Asset Liability Equity Revenue Expense"`
}

type addEntryRequest struct {
	VoucherNo   string          `json:"voucher_no" validate:"required"`
	Date        string          `json:"date" validate:"required"`
	AccountCode string          `json:"account_code" validate:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

type postVoucherRequest struct {
	VoucherNo string `json:"voucher_no" validate:"required"`
}

type trialBalanceLineView struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Balance     decimal.Decimal `json:"balance"`
}

func (s *Server) mountLedgerRoutes(r chi.Router) {
	r.Route("/ledger", func(r chi.Router) {
		r.Get("/accounts", s.handleListAccounts)
		r.Post("/accounts", s.handleCreateAccount)
		r.Get("/accounts/{code}", s.handleGetAccount)
		r.Post("/entries", s.handleAddEntry)
		r.Get("/entries", s.handleListEntries)
		r.Get("/entries.csv", s.handleExportEntries)
		r.Post("/post", s.handlePostVoucher)
		r.Get("/vouchers/{no}", s.handleGetVoucher)
		r.Get("/trial-balance", s.handleTrialBalance)
		r.Get("/trial-balance.csv", s.handleExportTrialBalance)
	})
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accts := s.services.Accounts.All()
	out := make([]accountView, 0, len(accts))
	for _, a := range accts {
		out = append(out, toAccountView(a))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	acct, err := s.services.Accounts.Add(req.Code, req.Name, model.AccountType(req.Type))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toAccountView(acct))
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	acct, ok := s.services.Accounts.Get(code)
	if !ok {
		s.renderError(w, r, notFound("account", code))
		return
	}
	s.writeJSON(w, http.StatusOK, toAccountView(acct))
}

func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	entry, err := s.services.Ledger.AddEntry(req.VoucherNo, date, req.AccountCode, req.Debit, req.Credit, req.Description)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toEntryView(entry))
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	entries := s.services.Ledger.Entries()
	out := make([]entryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryView(e))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePostVoucher(w http.ResponseWriter, r *http.Request) {
	var req postVoucherRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	if err := s.services.Ledger.PostVoucher(req.VoucherNo); err != nil {
		s.renderError(w, r, err)
		return
	}
	s.handleVoucherEntries(w, req.VoucherNo)
}

func (s *Server) handleGetVoucher(w http.ResponseWriter, r *http.Request) {
	s.handleVoucherEntries(w, chi.URLParam(r, "no"))
}

func (s *Server) handleVoucherEntries(w http.ResponseWriter, voucherNo string) {
	entries := s.services.Ledger.VoucherEntries(voucherNo)
	out := make([]entryView, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryView(e))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTrialBalance(w http.ResponseWriter, r *http.Request) {
	lines := s.services.Ledger.TrialBalance()
	out := make([]trialBalanceLineView, 0, len(lines))
	for _, l := range lines {
		out = append(out, trialBalanceLineView{
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			Balance:     l.Balance,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleExportEntries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="entries.csv"`)
	if err := ledger.WriteEntries(w, s.services.Ledger.Entries()); err != nil {
		s.logger.Error("writing entries csv", "error", err)
	}
}

func (s *Server) handleExportTrialBalance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trial-balance.csv"`)
	if err := ledger.WriteTrialBalance(w, s.services.Ledger.TrialBalance()); err != nil {
		s.logger.Error("writing trial balance csv", "error", err)
	}
}
