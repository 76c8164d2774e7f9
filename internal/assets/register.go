// Package assets implements the fixed asset register and depreciation
// accrual.
package assets

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/model"
	"github.com/siambooks/siambooks/internal/seq"
	"github.com/siambooks/siambooks/internal/shared"
)

var monthsInYear = decimal.NewFromInt(12)

// Register stores fixed assets and accrues depreciation against them.
// Accumulated depreciation never exceeds cost; RecordDepreciation
// rejects any increment that would cross the line.
type Register struct {
	mu       sync.Mutex
	assets   map[string]*model.FixedAsset
	order    []string
	assetIDs *seq.Counter
}

// NewRegister creates an empty Register.
func NewRegister() *Register {
	return &Register{
		assets:   make(map[string]*model.FixedAsset),
		assetIDs: seq.NewCounter("FA", seq.DocWidth),
	}
}

// Line is one row of the asset register report.
type Line struct {
	AssetID                 string
	Name                    string
	Cost                    decimal.Decimal
	AccumulatedDepreciation decimal.Decimal
	BookValue               decimal.Decimal
}

// RegisterAsset adds an asset with zero accumulated depreciation.
func (r *Register) RegisterAsset(name string, purchaseDate time.Time, cost decimal.Decimal, method model.DepreciationMethod, usefulLifeYears int, department string) (model.FixedAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if usefulLifeYears <= 0 {
		return model.FixedAsset{}, fmt.Errorf("useful life %d years: %w", usefulLifeYears, shared.ErrInvalidAmount)
	}

	asset := &model.FixedAsset{
		AssetID:                 r.assetIDs.Next(),
		Name:                    name,
		PurchaseDate:            purchaseDate,
		Cost:                    cost,
		Method:                  method,
		UsefulLifeYears:         usefulLifeYears,
		AccumulatedDepreciation: decimal.Zero,
		Department:              department,
	}
	r.assets[asset.AssetID] = asset
	r.order = append(r.order, asset.AssetID)
	return *asset, nil
}

// MonthlyDepreciation returns one month's depreciation for an asset.
// Straight line accrues cost/life/12; diminishing value has no accrual
// formula yet and yields zero.
func (r *Register) MonthlyDepreciation(assetID string) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset, ok := r.assets[assetID]
	if !ok {
		return decimal.Zero, fmt.Errorf("asset %s: %w", assetID, shared.ErrNotFound)
	}

	switch asset.Method {
	case model.DepreciationStraightLine:
		annual := asset.Cost.Div(decimal.NewFromInt(int64(asset.UsefulLifeYears)))
		return annual.Div(monthsInYear), nil
	case model.DepreciationDiminishing:
		return decimal.Zero, nil
	default:
		return decimal.Zero, nil
	}
}

// RecordDepreciation accrues depreciation against an asset. Increments
// that would push accumulated depreciation past cost fail without
// mutation.
func (r *Register) RecordDepreciation(assetID string, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset, ok := r.assets[assetID]
	if !ok {
		return fmt.Errorf("asset %s: %w", assetID, shared.ErrNotFound)
	}
	if asset.AccumulatedDepreciation.Add(amount).GreaterThan(asset.Cost) {
		return fmt.Errorf("asset %s: accumulated %s + %s exceeds cost %s: %w",
			assetID, asset.AccumulatedDepreciation.StringFixed(2), amount.StringFixed(2),
			asset.Cost.StringFixed(2), shared.ErrCapacityExceeded)
	}
	asset.AccumulatedDepreciation = asset.AccumulatedDepreciation.Add(amount)
	return nil
}

// BookValue returns cost minus accumulated depreciation for an asset.
func (r *Register) BookValue(assetID string) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset, ok := r.assets[assetID]
	if !ok {
		return decimal.Zero, fmt.Errorf("asset %s: %w", assetID, shared.ErrNotFound)
	}
	return asset.BookValue(), nil
}

// Asset returns an asset by id.
func (r *Register) Asset(assetID string) (model.FixedAsset, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset, ok := r.assets[assetID]
	if !ok {
		return model.FixedAsset{}, false
	}
	return *asset, true
}

// Assets returns all assets in registration order.
func (r *Register) Assets() []model.FixedAsset {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]model.FixedAsset, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.assets[id])
	}
	return result
}

// Report returns the asset register: cost, accumulated depreciation
// and book value per asset.
func (r *Register) Report() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]Line, 0, len(r.order))
	for _, id := range r.order {
		a := r.assets[id]
		result = append(result, Line{
			AssetID:                 a.AssetID,
			Name:                    a.Name,
			Cost:                    a.Cost,
			AccumulatedDepreciation: a.AccumulatedDepreciation,
			BookValue:               a.BookValue(),
		})
	}
	return result
}
