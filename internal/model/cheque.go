package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChequeStatus is the clearing state of a cheque. Returned is declared
// but no core operation produces it.
type ChequeStatus string

const (
	ChequeStatusInHand    ChequeStatus = "In Hand"
	ChequeStatusDeposited ChequeStatus = "Deposited"
	ChequeStatusCleared   ChequeStatus = "Cleared"
	ChequeStatusReturned  ChequeStatus = "Returned"
)

// Cheque is a received or issued cheque. Only received cheques move
// through In Hand -> Deposited -> Cleared; issued cheques stay In Hand.
type Cheque struct {
	ChequeNo     string
	IssueDate    time.Time
	Amount       decimal.Decimal
	Payee        string
	BankName     string
	Status       ChequeStatus
	ClearingDate *time.Time
}
