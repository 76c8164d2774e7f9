package model

import "github.com/shopspring/decimal"

// MonthsPerYear is the length of the monthly budget and actual arrays.
const MonthsPerYear = 12

// BudgetAllocation is a fiscal-year budget for one account and
// department, tracked month by month. Months are indexed 0-11.
type BudgetAllocation struct {
	BudgetID       string
	FiscalYear     int
	AccountCode    string
	Department     string
	MonthlyBudget  [MonthsPerYear]decimal.Decimal
	ActualSpending [MonthsPerYear]decimal.Decimal
}

// Variance returns budget minus actual for a month (0-11). Callers
// validate the month; out-of-range panics like any slice index.
func (b BudgetAllocation) Variance(month int) decimal.Decimal {
	return b.MonthlyBudget[month].Sub(b.ActualSpending[month])
}
