package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeEquity    AccountType = "Equity"
	AccountTypeRevenue   AccountType = "Revenue"
	AccountTypeExpense   AccountType = "Expense"
)

// Account is a general ledger account. Balance carries the running
// posted balance under the debit-positive convention: posting adds
// debits and subtracts credits regardless of account type.
type Account struct {
	Code    string
	Name    string
	Type    AccountType
	Balance decimal.Decimal
}
