// Package ledger implements balanced double-entry voucher posting
// against the chart of accounts.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/accounts"
	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/seq"
	"github.com/siambooks/siambooks/internal/shared"
)

// Service holds voucher entries and posts balanced vouchers to account
// balances. All mutating operations serialize on the service mutex, so
// the check-then-apply sequence of PostVoucher is atomic with respect
// to concurrent callers.
type Service struct {
	mu       sync.Mutex
	accounts *accounts.Service
	entries  []*model.VoucherEntry
	entryIDs *seq.Counter
}

// NewService creates a ledger posting into the given chart of accounts.
func NewService(accts *accounts.Service) *Service {
	return &Service{
		accounts: accts,
		entryIDs: seq.NewCounter("E", 0),
	}
}

// TrialBalanceLine is one row of the trial balance.
type TrialBalanceLine struct {
	AccountCode string
	AccountName string
	Balance     decimal.Decimal
}

// AddEntry appends a Draft entry to a voucher dated at the given day.
// An entry may carry a debit or a credit, never both, and never a
// negative amount.
func (s *Service) AddEntry(voucherNo string, date time.Time, accountCode string, debit, credit decimal.Decimal, description string) (model.VoucherEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.accounts.Exists(accountCode) {
		return model.VoucherEntry{}, fmt.Errorf("account %s: %w", accountCode, shared.ErrNotFound)
	}
	if debit.IsPositive() && credit.IsPositive() {
		return model.VoucherEntry{}, fmt.Errorf("voucher %s: entry has both debit and credit: %w", voucherNo, shared.ErrInvalidEntry)
	}
	if debit.IsNegative() || credit.IsNegative() {
		return model.VoucherEntry{}, fmt.Errorf("voucher %s: negative amount: %w", voucherNo, shared.ErrInvalidEntry)
	}

	entry := &model.VoucherEntry{
		EntryID:     s.entryIDs.Next(),
		VoucherNo:   voucherNo,
		Date:        date,
		AccountCode: accountCode,
		Description: description,
		Debit:       debit,
		Credit:      credit,
		Status:      model.EntryStatusDraft,
	}
	s.entries = append(s.entries, entry)
	return *entry, nil
}

// PostVoucher applies a voucher's entries to account balances once its
// debits and credits balance. Each entry applies individually: debits
// add to the account balance, credits subtract. This debit-positive
// convention means credit-normal accounts (Revenue, Liability, Equity)
// show negative balances in the trial balance; display inversion is the
// adapter's concern. On an unbalanced voucher nothing mutates.
func (s *Service) PostVoucher(voucherNo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var voucher []*model.VoucherEntry
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range s.entries {
		if e.VoucherNo != voucherNo {
			continue
		}
		voucher = append(voucher, e)
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	if !totalDebit.Equal(totalCredit) {
		return fmt.Errorf("voucher %s: debits %s != credits %s: %w",
			voucherNo, totalDebit.StringFixed(2), totalCredit.StringFixed(2), shared.ErrUnbalancedVoucher)
	}

	for _, e := range voucher {
		delta := e.Debit
		if !e.Debit.IsPositive() {
			delta = e.Credit.Neg()
		}
		if err := s.accounts.Apply(e.AccountCode, delta); err != nil {
			return fmt.Errorf("posting voucher %s: %w", voucherNo, err)
		}
		e.Status = model.EntryStatusPosted
	}
	return nil
}

// VoucherEntries returns the entries of one voucher, in entry order.
func (s *Service) VoucherEntries(voucherNo string) []model.VoucherEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.VoucherEntry
	for _, e := range s.entries {
		if e.VoucherNo == voucherNo {
			result = append(result, *e)
		}
	}
	return result
}

// Entries returns every entry in the ledger, in entry order.
func (s *Service) Entries() []model.VoucherEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.VoucherEntry, 0, len(s.entries))
	for _, e := range s.entries {
		result = append(result, *e)
	}
	return result
}

// TrialBalance lists every account with a non-zero balance, in account
// insertion order.
func (s *Service) TrialBalance() []TrialBalanceLine {
	var lines []TrialBalanceLine
	for _, a := range s.accounts.All() {
		if a.Balance.IsZero() {
			continue
		}
		lines = append(lines, TrialBalanceLine{
			AccountCode: a.Code,
			AccountName: a.Name,
			Balance:     a.Balance,
		})
	}
	return lines
}
