// Package shared holds the error taxonomy every core service reports
// failures through. Callers match with errors.Is; services wrap these
// with context via fmt.Errorf("...: %w", ...).
package shared

import "errors"

var (
	// ErrNotFound indicates an unknown account, document, counterparty,
	// asset, budget or report.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateAccount occurs when an account code is already taken.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrInvalidEntry occurs when a voucher entry carries both a debit
	// and a credit, or a negative amount.
	ErrInvalidEntry = errors.New("invalid voucher entry")
	// ErrUnbalancedVoucher occurs when posting a voucher whose debits
	// and credits differ.
	ErrUnbalancedVoucher = errors.New("voucher does not balance")
	// ErrInvalidAmount occurs for non-positive cash amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds occurs when a cash withdrawal exceeds the
	// balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientPayment occurs when a payment is below the invoice
	// total; partial settlement is not supported.
	ErrInsufficientPayment = errors.New("payment below invoice total")
	// ErrCapacityExceeded occurs when recorded depreciation would push
	// accumulated depreciation past the asset cost.
	ErrCapacityExceeded = errors.New("depreciation exceeds asset cost")
	// ErrMonthOutOfRange occurs for month indexes outside the fiscal
	// year.
	ErrMonthOutOfRange = errors.New("month out of range")
)
