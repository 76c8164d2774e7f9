package accounts

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/shared"
)

// Service is the chart of accounts: the account registry plus each
// account's running posted balance. Accounts are created at
// construction or by Add and never deleted.
type Service struct {
	mu     sync.RWMutex
	order  []string
	byCode map[string]*model.Account
}

// NewService creates a Service pre-loaded with the default chart.
func NewService() *Service {
	s := &Service{byCode: make(map[string]*model.Account)}
	for _, a := range DefaultChart() {
		acct := a
		s.order = append(s.order, acct.Code)
		s.byCode[acct.Code] = &acct
	}
	return s
}

// Add registers a new account with a zero balance.
func (s *Service) Add(code, name string, accountType model.AccountType) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byCode[code]; ok {
		return model.Account{}, fmt.Errorf("account %s: %w", code, shared.ErrDuplicateAccount)
	}
	acct := &model.Account{Code: code, Name: name, Type: accountType}
	s.order = append(s.order, code)
	s.byCode[code] = acct
	return *acct, nil
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byCode[code]
	if !ok {
		return model.Account{}, false
	}
	return *a, true
}

// Exists reports whether an account code exists.
func (s *Service) Exists(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byCode[code]
	return ok
}

// BalanceOf returns the posted balance of an account, or zero for an
// unknown code.
func (s *Service) BalanceOf(code string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byCode[code]
	if !ok {
		return decimal.Zero
	}
	return a.Balance
}

// All returns every account, in insertion order.
func (s *Service) All() []model.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Account, 0, len(s.order))
	for _, code := range s.order {
		result = append(result, *s.byCode[code])
	}
	return result
}

// Apply adds a signed delta to an account's balance. Used by voucher
// posting, which validates the whole voucher before applying any delta.
func (s *Service) Apply(code string, delta decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byCode[code]
	if !ok {
		return fmt.Errorf("account %s: %w", code, shared.ErrNotFound)
	}
	a.Balance = a.Balance.Add(delta)
	return nil
}
