package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siambooks/siambooks/internal/model"
)

func TestWriteEntries(t *testing.T) {
	entries := []model.VoucherEntry{
		{
			EntryID:     "E1",
			VoucherNo:   "V001",
			Date:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			AccountCode: "1000",
			Description: "cash sale",
			Debit:       decimal.RequireFromString("1000.00"),
			Status:      model.EntryStatusPosted,
		},
		{
			EntryID:     "E2",
			VoucherNo:   "V001",
			Date:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			AccountCode: "4000",
			Description: "cash sale",
			Credit:      decimal.RequireFromString("1000.00"),
			Status:      model.EntryStatusPosted,
		},
	}

	var sb strings.Builder
	require.NoError(t, WriteEntries(&sb, entries))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, EntriesHeader, lines[0])
	assert.Equal(t, "E1,V001,2025-01-15,1000,cash sale,1000.00,,Posted", lines[1])
	assert.Equal(t, "E2,V001,2025-01-15,4000,cash sale,,1000.00,Posted", lines[2])
}

func TestWriteTrialBalance(t *testing.T) {
	tb := []TrialBalanceLine{
		{AccountCode: "1000", AccountName: "Cash", Balance: decimal.RequireFromString("1000.00")},
		{AccountCode: "4000", AccountName: "Sales Revenue", Balance: decimal.RequireFromString("-1000.00")},
	}

	var sb strings.Builder
	require.NoError(t, WriteTrialBalance(&sb, tb))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, TrialBalanceHeader, lines[0])
	assert.Equal(t, "1000,Cash,1000.00", lines[1])
	assert.Equal(t, "4000,Sales Revenue,-1000.00", lines[2])
}
