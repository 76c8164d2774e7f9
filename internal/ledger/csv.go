package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/siambooks/siambooks/internal/model"
)

// EntriesHeader is the CSV header for a voucher entry export.
const EntriesHeader = "entry_id,voucher_no,date,account_code,description,debit,credit,status"

// TrialBalanceHeader is the CSV header for a trial balance export.
const TrialBalanceHeader = "account_code,account_name,balance"

const (
	entryFields  = 8
	dateFormat   = "2006-01-02"
	colEntryID   = 0
	colVoucherNo = 1
	colDate      = 2
	colAcctCode  = 3
	colDesc      = 4
	colDebit     = 5
	colCredit    = 6
	colStatus    = 7
)

// MarshalEntry converts a VoucherEntry to a CSV row.
func MarshalEntry(e model.VoucherEntry) []string {
	row := make([]string, entryFields)
	row[colEntryID] = e.EntryID
	row[colVoucherNo] = e.VoucherNo
	row[colDate] = e.Date.Format(dateFormat)
	row[colAcctCode] = e.AccountCode
	row[colDesc] = e.Description

	if !e.Debit.IsZero() {
		row[colDebit] = e.Debit.StringFixed(2)
	}
	if !e.Credit.IsZero() {
		row[colCredit] = e.Credit.StringFixed(2)
	}

	row[colStatus] = string(e.Status)
	return row
}

// WriteEntries writes voucher entries as CSV (including header).
func WriteEntries(w io.Writer, entries []model.VoucherEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(EntriesHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteTrialBalance writes trial balance lines as CSV (including
// header).
func WriteTrialBalance(w io.Writer, lines []TrialBalanceLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TrialBalanceHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, line := range lines {
		row := []string{line.AccountCode, line.AccountName, line.Balance.StringFixed(2)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
