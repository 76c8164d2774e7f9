package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus is the lifecycle state of a voucher entry.
type EntryStatus string

const (
	EntryStatusDraft  EntryStatus = "Draft"
	EntryStatusPosted EntryStatus = "Posted"
)

// VoucherEntry is one side of a double-entry voucher. Entries sharing a
// voucher number form a voucher, which must balance before posting.
// An entry never carries both a debit and a credit.
type VoucherEntry struct {
	EntryID     string
	VoucherNo   string
	Date        time.Time
	AccountCode string
	Description string
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
	Status      EntryStatus
}
