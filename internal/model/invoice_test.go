package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLineItemAmounts(t *testing.T) {
	item := LineItem{
		ItemID:    "SKU-1",
		ItemName:  "Widget",
		Quantity:  dec("2"),
		UnitPrice: dec("100.00"),
		Discount:  dec("10"),
		VATRate:   dec("7"),
	}

	assert.True(t, item.Amount().Equal(dec("180.00")), "amount = %s", item.Amount())
	assert.True(t, item.VATAmount().Equal(dec("12.60")), "vat = %s", item.VATAmount())
	assert.True(t, item.Total().Equal(dec("192.60")), "total = %s", item.Total())
}

func TestLineItemNoDiscountNoVAT(t *testing.T) {
	item := LineItem{Quantity: dec("3"), UnitPrice: dec("19.99")}

	assert.True(t, item.Amount().Equal(dec("59.97")))
	assert.True(t, item.VATAmount().IsZero())
	assert.True(t, item.Total().Equal(dec("59.97")))
}

func TestLineItemFullDiscount(t *testing.T) {
	item := LineItem{
		Quantity:  dec("5"),
		UnitPrice: dec("42.00"),
		Discount:  dec("100"),
		VATRate:   dec("7"),
	}

	assert.True(t, item.Amount().IsZero())
	assert.True(t, item.VATAmount().IsZero())
	assert.True(t, item.Total().IsZero())
}

func TestLineItemTotalIsAmountPlusVAT(t *testing.T) {
	cases := []struct {
		qty, price, discount, vat string
	}{
		{"1", "0.01", "0", "7"},
		{"7", "13.37", "12.5", "7"},
		{"1000", "999.99", "3", "10"},
		{"0", "50.00", "0", "7"},
	}
	for _, tc := range cases {
		item := LineItem{
			Quantity:  dec(tc.qty),
			UnitPrice: dec(tc.price),
			Discount:  dec(tc.discount),
			VATRate:   dec(tc.vat),
		}
		sum := item.Amount().Add(item.VATAmount())
		assert.True(t, item.Total().Equal(sum),
			"qty=%s price=%s: total %s != amount+vat %s", tc.qty, tc.price, item.Total(), sum)
	}
}

func TestFixedAssetBookValue(t *testing.T) {
	asset := FixedAsset{
		Cost:                    dec("1200.00"),
		AccumulatedDepreciation: dec("450.00"),
	}
	assert.True(t, asset.BookValue().Equal(dec("750.00")))
}

func TestBudgetVariance(t *testing.T) {
	var b BudgetAllocation
	b.MonthlyBudget[3] = dec("500.00")
	b.ActualSpending[3] = dec("620.00")

	assert.True(t, b.Variance(3).Equal(dec("-120.00")))
	assert.True(t, b.Variance(0).IsZero())
}
