package assets

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/shared"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var purchased = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestRegisterAsset(t *testing.T) {
	reg := NewRegister()

	asset, err := reg.RegisterAsset("Laser Printer", purchased, dec("1200.00"), model.DepreciationStraightLine, 1, "Office")
	require.NoError(t, err)
	assert.Equal(t, "FA000001", asset.AssetID)
	assert.True(t, asset.AccumulatedDepreciation.IsZero())

	second, err := reg.RegisterAsset("Delivery Van", purchased, dec("600000.00"), model.DepreciationStraightLine, 5, "Logistics")
	require.NoError(t, err)
	assert.Equal(t, "FA000002", second.AssetID)
}

func TestRegisterAssetInvalidLife(t *testing.T) {
	reg := NewRegister()

	_, err := reg.RegisterAsset("Broken", purchased, dec("100.00"), model.DepreciationStraightLine, 0, "")
	assert.ErrorIs(t, err, shared.ErrInvalidAmount)
}

func TestMonthlyDepreciationStraightLine(t *testing.T) {
	reg := NewRegister()

	asset, err := reg.RegisterAsset("Laser Printer", purchased, dec("1200.00"), model.DepreciationStraightLine, 1, "Office")
	require.NoError(t, err)

	monthly, err := reg.MonthlyDepreciation(asset.AssetID)
	require.NoError(t, err)
	assert.True(t, monthly.Equal(dec("100.00")), "monthly = %s", monthly)
}

func TestMonthlyDepreciationDiminishingIsZero(t *testing.T) {
	reg := NewRegister()

	asset, err := reg.RegisterAsset("Press", purchased, dec("90000.00"), model.DepreciationDiminishing, 10, "Plant")
	require.NoError(t, err)

	monthly, err := reg.MonthlyDepreciation(asset.AssetID)
	require.NoError(t, err)
	assert.True(t, monthly.IsZero())
}

func TestMonthlyDepreciationUnknownAsset(t *testing.T) {
	reg := NewRegister()

	_, err := reg.MonthlyDepreciation("FA999999")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestRecordDepreciationCapacity(t *testing.T) {
	reg := NewRegister()

	asset, err := reg.RegisterAsset("Laser Printer", purchased, dec("1200.00"), model.DepreciationStraightLine, 1, "Office")
	require.NoError(t, err)

	require.NoError(t, reg.RecordDepreciation(asset.AssetID, dec("600.00")))

	err = reg.RecordDepreciation(asset.AssetID, dec("700.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrCapacityExceeded)

	got, _ := reg.Asset(asset.AssetID)
	assert.True(t, got.AccumulatedDepreciation.Equal(dec("600.00")), "failed accrual leaves accumulation untouched")

	bv, err := reg.BookValue(asset.AssetID)
	require.NoError(t, err)
	assert.True(t, bv.Equal(dec("600.00")))
}

func TestRecordDepreciationToExactCost(t *testing.T) {
	reg := NewRegister()

	asset, err := reg.RegisterAsset("Laser Printer", purchased, dec("1200.00"), model.DepreciationStraightLine, 1, "Office")
	require.NoError(t, err)

	require.NoError(t, reg.RecordDepreciation(asset.AssetID, dec("1200.00")))

	bv, err := reg.BookValue(asset.AssetID)
	require.NoError(t, err)
	assert.True(t, bv.IsZero(), "book value may reach zero, never below")
}

func TestReport(t *testing.T) {
	reg := NewRegister()

	asset, err := reg.RegisterAsset("Laser Printer", purchased, dec("1200.00"), model.DepreciationStraightLine, 1, "Office")
	require.NoError(t, err)
	require.NoError(t, reg.RecordDepreciation(asset.AssetID, dec("450.00")))

	report := reg.Report()
	require.Len(t, report, 1)
	assert.Equal(t, asset.AssetID, report[0].AssetID)
	assert.True(t, report[0].BookValue.Equal(dec("750.00")))
}
