package accounts

import "github.com/siambooks/siambooks/internal/model"

// DefaultChart returns the chart of accounts installed at
// construction.
func DefaultChart() []model.Account {
	return []model.Account{
		{Code: "1000", Name: "Cash", Type: model.AccountTypeAsset},
		{Code: "1100", Name: "Accounts Receivable", Type: model.AccountTypeAsset},
		{Code: "1200", Name: "Inventory", Type: model.AccountTypeAsset},
		{Code: "1500", Name: "Fixed Assets", Type: model.AccountTypeAsset},
		{Code: "2000", Name: "Accounts Payable", Type: model.AccountTypeLiability},
		{Code: "2100", Name: "Tax Payable", Type: model.AccountTypeLiability},
		{Code: "3000", Name: "Owner Equity", Type: model.AccountTypeEquity},
		{Code: "4000", Name: "Sales Revenue", Type: model.AccountTypeRevenue},
		{Code: "4100", Name: "Service Revenue", Type: model.AccountTypeRevenue},
		{Code: "5000", Name: "Cost of Goods Sold", Type: model.AccountTypeExpense},
		{Code: "5100", Name: "Operating Expenses", Type: model.AccountTypeExpense},
		{Code: "5200", Name: "Depreciation Expense", Type: model.AccountTypeExpense},
	}
}
