package record

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	v := decimal.RequireFromString(s)
	return &v
}

func TestNotionals(t *testing.T) {
	t.Parallel()

	tr := TradeRecord{
		BuyQuantity: d(t, "100"), BuyPrice: d(t, "2.5"),
		SellQuantity: d(t, "10"), SellPrice: d(t, "3"),
	}
	assert.True(t, tr.BuyNotional().Equal(decimal.RequireFromString("250")))
	assert.True(t, tr.SellNotional().Equal(decimal.RequireFromString("30")))
	assert.True(t, tr.TotalNotional().Equal(decimal.RequireFromString("280")))
}

func TestIncompleteLegHasZeroNotional(t *testing.T) {
	t.Parallel()

	tr := TradeRecord{BuyQuantity: d(t, "100")}
	assert.False(t, tr.HasBuyLeg())
	assert.True(t, tr.BuyNotional().IsZero())
	assert.False(t, tr.HasSellLeg())
}
