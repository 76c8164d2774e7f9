// Package budget tracks monthly budget allocations against actual
// spending.
package budget

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/seq"
	"github.com/siambooks/siambooks/internal/shared"
)

// Tracker stores budget allocations keyed by generated budget id.
type Tracker struct {
	mu        sync.Mutex
	budgets   map[string]*model.BudgetAllocation
	order     []string
	budgetIDs *seq.Counter
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		budgets:   make(map[string]*model.BudgetAllocation),
		budgetIDs: seq.NewCounter("BDG", seq.DocWidth),
	}
}

// MonthLine is one month of a variance report. Month is 1-12 for
// display; storage is indexed 0-11.
type MonthLine struct {
	Month    int
	Budget   decimal.Decimal
	Actual   decimal.Decimal
	Variance decimal.Decimal
}

// Report is a full-year budget variance report.
type Report struct {
	BudgetID    string
	FiscalYear  int
	AccountCode string
	Department  string
	Months      []MonthLine
}

// Create allocates a budget for a fiscal year, account and department.
func (t *Tracker) Create(fiscalYear int, accountCode, department string, monthly [model.MonthsPerYear]decimal.Decimal) model.BudgetAllocation {
	t.mu.Lock()
	defer t.mu.Unlock()

	b := &model.BudgetAllocation{
		BudgetID:      t.budgetIDs.Next(),
		FiscalYear:    fiscalYear,
		AccountCode:   accountCode,
		Department:    department,
		MonthlyBudget: monthly,
	}
	t.budgets[b.BudgetID] = b
	t.order = append(t.order, b.BudgetID)
	return *b
}

// RecordActual sets (not adds) a month's actual spending. Month is
// 0-11.
func (t *Tracker) RecordActual(budgetID string, month int, amount decimal.Decimal) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	b, ok := t.budgets[budgetID]
	if !ok {
		return fmt.Errorf("budget %s: %w", budgetID, shared.ErrNotFound)
	}
	if month < 0 || month >= model.MonthsPerYear {
		return fmt.Errorf("budget %s month %d: %w", budgetID, month, shared.ErrMonthOutOfRange)
	}
	b.ActualSpending[month] = amount
	return nil
}

// Variance returns budget minus actual for a month (0-11).
func (t *Tracker) Variance(budgetID string, month int) (decimal.Decimal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	b, ok := t.budgets[budgetID]
	if !ok {
		return decimal.Zero, fmt.Errorf("budget %s: %w", budgetID, shared.ErrNotFound)
	}
	if month < 0 || month >= model.MonthsPerYear {
		return decimal.Zero, fmt.Errorf("budget %s month %d: %w", budgetID, month, shared.ErrMonthOutOfRange)
	}
	return b.Variance(month), nil
}

// VarianceReport returns budget, actual and variance for all twelve
// months.
func (t *Tracker) VarianceReport(budgetID string) (Report, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	b, ok := t.budgets[budgetID]
	if !ok {
		return Report{}, fmt.Errorf("budget %s: %w", budgetID, shared.ErrNotFound)
	}

	report := Report{
		BudgetID:    b.BudgetID,
		FiscalYear:  b.FiscalYear,
		AccountCode: b.AccountCode,
		Department:  b.Department,
		Months:      make([]MonthLine, 0, model.MonthsPerYear),
	}
	for m := 0; m < model.MonthsPerYear; m++ {
		report.Months = append(report.Months, MonthLine{
			Month:    m + 1,
			Budget:   b.MonthlyBudget[m],
			Actual:   b.ActualSpending[m],
			Variance: b.Variance(m),
		})
	}
	return report, nil
}

// Budget returns a budget by id.
func (t *Tracker) Budget(budgetID string) (model.BudgetAllocation, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	b, ok := t.budgets[budgetID]
	if !ok {
		return model.BudgetAllocation{}, false
	}
	return *b, true
}

// Budgets returns all budgets in creation order.
func (t *Tracker) Budgets() []model.BudgetAllocation {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := make([]model.BudgetAllocation, 0, len(t.order))
	for _, id := range t.order {
		result = append(result, *t.budgets[id])
	}
	return result
}
