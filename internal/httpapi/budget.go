package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/model"
)

type createBudgetRequest struct {
	FiscalYear  int               `json:"fiscal_year" validate:"required"`
	AccountCode string            `json:"account_code" validate:"required"`
	Department  string            `json:"department"`
	Monthly     []decimal.Decimal `json:"monthly_budget" validate:"len=12"`
}

type recordActualRequest struct {
	Month  int             `json:"month" validate:"min=1,max=12"`
	Amount decimal.Decimal `json:"amount"`
}

type budgetView struct {
	BudgetID       string            `json:"budget_id"`
	FiscalYear     int               `json:"fiscal_year"`
	AccountCode    string            `json:"account_code"`
	Department     string            `json:"department,omitempty"`
	MonthlyBudget  []decimal.Decimal `json:"monthly_budget"`
	ActualSpending []decimal.Decimal `json:"actual_spending"`
}

type varianceMonthView struct {
	Month    int             `json:"month"`
	Budget   decimal.Decimal `json:"budget"`
	Actual   decimal.Decimal `json:"actual"`
	Variance decimal.Decimal `json:"variance"`
}

type varianceReportView struct {
	BudgetID    string              `json:"budget_id"`
	FiscalYear  int                 `json:"fiscal_year"`
	AccountCode string              `json:"account_code"`
	Department  string              `json:"department,omitempty"`
	Months      []varianceMonthView `json:"months"`
}

func toBudgetView(b model.BudgetAllocation) budgetView {
	return budgetView{
		BudgetID:       b.BudgetID,
		FiscalYear:     b.FiscalYear,
		AccountCode:    b.AccountCode,
		Department:     b.Department,
		MonthlyBudget:  b.MonthlyBudget[:],
		ActualSpending: b.ActualSpending[:],
	}
}

func (s *Server) mountBudgetRoutes(r chi.Router) {
	r.Route("/budgets", func(r chi.Router) {
		r.Get("/", s.handleListBudgets)
		r.Post("/", s.handleCreateBudget)
		r.Get("/{id}", s.handleGetBudget)
		r.Post("/{id}/actuals", s.handleRecordActual)
		r.Get("/{id}/variance", s.handleVarianceReport)
	})
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets := s.services.Budgets.Budgets()
	out := make([]budgetView, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, toBudgetView(b))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	var monthly [model.MonthsPerYear]decimal.Decimal
	copy(monthly[:], req.Monthly)
	b := s.services.Budgets.Create(req.FiscalYear, req.AccountCode, req.Department, monthly)
	s.writeJSON(w, http.StatusCreated, toBudgetView(b))
}

func (s *Server) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b, ok := s.services.Budgets.Budget(id)
	if !ok {
		s.renderError(w, r, notFound("budget", id))
		return
	}
	s.writeJSON(w, http.StatusOK, toBudgetView(b))
}

func (s *Server) handleRecordActual(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req recordActualRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	// Months are 1-12 on the wire, 0-11 in storage.
	if err := s.services.Budgets.RecordActual(id, req.Month-1, req.Amount); err != nil {
		s.renderError(w, r, err)
		return
	}
	b, ok := s.services.Budgets.Budget(id)
	if !ok {
		s.renderError(w, r, notFound("budget", id))
		return
	}
	s.writeJSON(w, http.StatusOK, toBudgetView(b))
}

func (s *Server) handleVarianceReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, err := s.services.Budgets.VarianceReport(id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	months := make([]varianceMonthView, 0, len(report.Months))
	for _, m := range report.Months {
		months = append(months, varianceMonthView{
			Month:    m.Month,
			Budget:   m.Budget,
			Actual:   m.Actual,
			Variance: m.Variance,
		})
	}
	s.writeJSON(w, http.StatusOK, varianceReportView{
		BudgetID:    report.BudgetID,
		FiscalYear:  report.FiscalYear,
		AccountCode: report.AccountCode,
		Department:  report.Department,
		Months:      months,
	})
}
