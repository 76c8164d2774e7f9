package accounts

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/shared"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewServiceInstallsDefaultChart(t *testing.T) {
	svc := NewService()

	all := svc.All()
	assert.Len(t, all, 12)
	assert.Equal(t, "1000", all[0].Code, "insertion order starts with Cash")
	assert.Equal(t, "5200", all[len(all)-1].Code)

	cash, ok := svc.Get("1000")
	require.True(t, ok)
	assert.Equal(t, model.AccountTypeAsset, cash.Type)
	assert.True(t, cash.Balance.IsZero())
}

func TestAddAccount(t *testing.T) {
	svc := NewService()

	acct, err := svc.Add("6000", "Interest Expense", model.AccountTypeExpense)
	require.NoError(t, err)
	assert.Equal(t, "6000", acct.Code)
	assert.True(t, svc.Exists("6000"))

	all := svc.All()
	assert.Equal(t, "6000", all[len(all)-1].Code, "new account appends in insertion order")
}

func TestAddDuplicateAccount(t *testing.T) {
	svc := NewService()

	_, err := svc.Add("1000", "Cash Again", model.AccountTypeAsset)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrDuplicateAccount)
}

func TestBalanceOfUnknownAccountIsZero(t *testing.T) {
	svc := NewService()

	assert.True(t, svc.BalanceOf("9999").IsZero())
}

func TestApply(t *testing.T) {
	svc := NewService()

	require.NoError(t, svc.Apply("1000", dec("250.00")))
	require.NoError(t, svc.Apply("1000", dec("-50.00")))
	assert.True(t, svc.BalanceOf("1000").Equal(dec("200.00")))

	err := svc.Apply("9999", dec("1.00"))
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
