// Package banking tracks the cash balance and the cheque lifecycle.
package banking

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/shared"
)

// Service holds the cash balance and the received and issued cheque
// registers. Only received cheques transition (In Hand -> Deposited ->
// Cleared); issued cheques stay In Hand and are reconciled outside
// this system.
type Service struct {
	mu            sync.Mutex
	cash          decimal.Decimal
	received      map[string]*model.Cheque
	receivedOrder []string
	issued        map[string]*model.Cheque
	issuedOrder   []string
}

// NewService creates a Service with a zero cash balance.
func NewService() *Service {
	return &Service{
		cash:     decimal.Zero,
		received: make(map[string]*model.Cheque),
		issued:   make(map[string]*model.Cheque),
	}
}

// DepositCash adds to the cash balance and returns the new balance.
func (s *Service) DepositCash(amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("deposit %s: %w", amount, shared.ErrInvalidAmount)
	}
	s.cash = s.cash.Add(amount)
	return s.cash, nil
}

// WithdrawCash removes from the cash balance. Withdrawals above the
// balance fail without mutation.
func (s *Service) WithdrawCash(amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("withdrawal %s: %w", amount, shared.ErrInvalidAmount)
	}
	if amount.GreaterThan(s.cash) {
		return decimal.Zero, fmt.Errorf("withdrawal %s exceeds balance %s: %w",
			amount.StringFixed(2), s.cash.StringFixed(2), shared.ErrInsufficientFunds)
	}
	s.cash = s.cash.Sub(amount)
	return s.cash, nil
}

// CashBalance returns the current cash balance.
func (s *Service) CashBalance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cash
}

// ReceiveCheque records an incoming cheque, In Hand.
func (s *Service) ReceiveCheque(chequeNo string, issueDate time.Time, amount decimal.Decimal, payee, bankName string) model.Cheque {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &model.Cheque{
		ChequeNo:  chequeNo,
		IssueDate: issueDate,
		Amount:    amount,
		Payee:     payee,
		BankName:  bankName,
		Status:    model.ChequeStatusInHand,
	}
	if _, exists := s.received[chequeNo]; !exists {
		s.receivedOrder = append(s.receivedOrder, chequeNo)
	}
	s.received[chequeNo] = c
	return *c
}

// IssueCheque records an outgoing cheque, In Hand.
func (s *Service) IssueCheque(chequeNo string, issueDate time.Time, amount decimal.Decimal, payee, bankName string) model.Cheque {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &model.Cheque{
		ChequeNo:  chequeNo,
		IssueDate: issueDate,
		Amount:    amount,
		Payee:     payee,
		BankName:  bankName,
		Status:    model.ChequeStatusInHand,
	}
	if _, exists := s.issued[chequeNo]; !exists {
		s.issuedOrder = append(s.issuedOrder, chequeNo)
	}
	s.issued[chequeNo] = c
	return *c
}

// DepositCheque marks a received cheque Deposited. Unknown cheque
// numbers are a no-op returning false.
func (s *Service) DepositCheque(chequeNo string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.received[chequeNo]
	if !ok {
		return false
	}
	c.Status = model.ChequeStatusDeposited
	return true
}

// ClearCheque marks a received cheque Cleared and stamps the clearing
// date. Unknown cheque numbers are a no-op returning false.
func (s *Service) ClearCheque(chequeNo string, clearingDate time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.received[chequeNo]
	if !ok {
		return false
	}
	c.Status = model.ChequeStatusCleared
	d := clearingDate
	c.ClearingDate = &d
	return true
}

// OutstandingCheques returns issued cheques still In Hand.
func (s *Service) OutstandingCheques() []model.Cheque {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []model.Cheque
	for _, no := range s.issuedOrder {
		if c := s.issued[no]; c.Status == model.ChequeStatusInHand {
			result = append(result, *c)
		}
	}
	return result
}

// ReceivedCheques returns all received cheques in receipt order.
func (s *Service) ReceivedCheques() []model.Cheque {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Cheque, 0, len(s.receivedOrder))
	for _, no := range s.receivedOrder {
		result = append(result, *s.received[no])
	}
	return result
}

// IssuedCheques returns all issued cheques in issue order.
func (s *Service) IssuedCheques() []model.Cheque {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]model.Cheque, 0, len(s.issuedOrder))
	for _, no := range s.issuedOrder {
		result = append(result, *s.issued[no])
	}
	return result
}
