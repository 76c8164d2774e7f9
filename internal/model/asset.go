package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationMethod is a closed set of depreciation schedules.
// Diminishing value is declared in the register but has no accrual
// formula yet; it depreciates at zero.
type DepreciationMethod string

const (
	DepreciationStraightLine DepreciationMethod = "Straight Line"
	DepreciationDiminishing  DepreciationMethod = "Diminishing Value"
)

// FixedAsset is a registered asset accruing depreciation.
// AccumulatedDepreciation never exceeds Cost.
type FixedAsset struct {
	AssetID                 string
	Name                    string
	PurchaseDate            time.Time
	Cost                    decimal.Decimal
	Method                  DepreciationMethod
	UsefulLifeYears         int
	AccumulatedDepreciation decimal.Decimal
	Department              string
}

// BookValue returns cost minus accumulated depreciation, never
// negative by construction.
func (a FixedAsset) BookValue() decimal.Decimal {
	return a.Cost.Sub(a.AccumulatedDepreciation)
}
