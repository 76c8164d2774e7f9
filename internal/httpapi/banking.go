package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/model"
)

type cashMovementRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type chequeRequest struct {
	ChequeNo  string          `json:"cheque_no" validate:"required"`
	IssueDate string          `json:"issue_date" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Payee     string          `json:"payee" validate:"required"`
	BankName  string          `json:"bank_name"`
}

type clearChequeRequest struct {
	ClearingDate string `json:"clearing_date" validate:"required"`
}

type cashBalanceView struct {
	Balance decimal.Decimal `json:"balance"`
}

func (s *Server) mountBankingRoutes(r chi.Router) {
	r.Route("/banking", func(r chi.Router) {
		r.Get("/balance", s.handleCashBalance)
		r.Post("/deposit", s.handleDepositCash)
		r.Post("/withdraw", s.handleWithdrawCash)
		r.Get("/cheques/received", s.handleListReceivedCheques)
		r.Post("/cheques/received", s.handleReceiveCheque)
		r.Get("/cheques/issued", s.handleListIssuedCheques)
		r.Post("/cheques/issued", s.handleIssueCheque)
		r.Get("/cheques/outstanding", s.handleOutstandingCheques)
		r.Post("/cheques/{no}/deposit", s.handleDepositCheque)
		r.Post("/cheques/{no}/clear", s.handleClearCheque)
	})
}

func (s *Server) handleCashBalance(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, cashBalanceView{Balance: s.services.Banking.CashBalance()})
}

func (s *Server) handleDepositCash(w http.ResponseWriter, r *http.Request) {
	var req cashMovementRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	balance, err := s.services.Banking.DepositCash(req.Amount)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, cashBalanceView{Balance: balance})
}

func (s *Server) handleWithdrawCash(w http.ResponseWriter, r *http.Request) {
	var req cashMovementRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	balance, err := s.services.Banking.WithdrawCash(req.Amount)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, cashBalanceView{Balance: balance})
}

func (s *Server) handleReceiveCheque(w http.ResponseWriter, r *http.Request) {
	var req chequeRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}
	issueDate, err := parseDate(req.IssueDate)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	c := s.services.Banking.ReceiveCheque(req.ChequeNo, issueDate, req.Amount, req.Payee, req.BankName)
	s.writeJSON(w, http.StatusCreated, toChequeView(c))
}

func (s *Server) handleIssueCheque(w http.ResponseWriter, r *http.Request) {
	var req chequeRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}
	issueDate, err := parseDate(req.IssueDate)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	c := s.services.Banking.IssueCheque(req.ChequeNo, issueDate, req.Amount, req.Payee, req.BankName)
	s.writeJSON(w, http.StatusCreated, toChequeView(c))
}

func (s *Server) handleDepositCheque(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	if !s.services.Banking.DepositCheque(no) {
		s.renderError(w, r, notFound("received cheque", no))
		return
	}
	s.chequeByNo(w, r, no)
}

func (s *Server) handleClearCheque(w http.ResponseWriter, r *http.Request) {
	no := chi.URLParam(r, "no")
	var req clearChequeRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}
	clearingDate, err := parseDate(req.ClearingDate)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	if !s.services.Banking.ClearCheque(no, clearingDate) {
		s.renderError(w, r, notFound("received cheque", no))
		return
	}
	s.chequeByNo(w, r, no)
}

func (s *Server) chequeByNo(w http.ResponseWriter, r *http.Request, no string) {
	for _, c := range s.services.Banking.ReceivedCheques() {
		if c.ChequeNo == no {
			s.writeJSON(w, http.StatusOK, toChequeView(c))
			return
		}
	}
	s.renderError(w, r, notFound("received cheque", no))
}

func (s *Server) handleListReceivedCheques(w http.ResponseWriter, r *http.Request) {
	s.writeChequeList(w, s.services.Banking.ReceivedCheques())
}

func (s *Server) handleListIssuedCheques(w http.ResponseWriter, r *http.Request) {
	s.writeChequeList(w, s.services.Banking.IssuedCheques())
}

func (s *Server) handleOutstandingCheques(w http.ResponseWriter, r *http.Request) {
	s.writeChequeList(w, s.services.Banking.OutstandingCheques())
}

func (s *Server) writeChequeList(w http.ResponseWriter, cheques []model.Cheque) {
	out := make([]chequeView, 0, len(cheques))
	for _, c := range cheques {
		out = append(out, toChequeView(c))
	}
	s.writeJSON(w, http.StatusOK, out)
}
