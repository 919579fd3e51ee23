package score

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/refdata/record"
)

func dec(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return &d
}

func baseTrade(t *testing.T) record.TradeRecord {
	t.Helper()
	return record.TradeRecord{
		Account:     "ACC-1",
		Type:        "BOND",
		BuyQuantity: dec(t, "10"),
		BuyPrice:    dec(t, "10"),
		Status:      "PENDING",
		Benchmark:   "UST10Y",
	}
}

func TestRiskNotionalTiers(t *testing.T) {
	t.Parallel()

	tr := baseTrade(t) // notional 100
	assert.Equal(t, 0, Risk(tr))

	tr.BuyQuantity = dec(t, "1000")
	tr.BuyPrice = dec(t, "100.01") // 100,010
	assert.Equal(t, 1, Risk(tr))

	tr.BuyPrice = dec(t, "2000") // 2,000,000
	assert.Equal(t, 3, Risk(tr))
}

func TestRiskNotionalBoundary(t *testing.T) {
	t.Parallel()

	// Exactly 1,000,000 stays in the >100,000 tier.
	tr := baseTrade(t)
	tr.BuyQuantity = dec(t, "1000")
	tr.BuyPrice = dec(t, "1000")
	assert.Equal(t, 1, Risk(tr))

	tr.BuyQuantity = dec(t, "1000001")
	tr.BuyPrice = dec(t, "1")
	assert.Equal(t, 3, Risk(tr))
}

func TestRiskNotionalSumsBothLegs(t *testing.T) {
	t.Parallel()

	tr := baseTrade(t)
	tr.BuyQuantity = dec(t, "600000")
	tr.BuyPrice = dec(t, "1")
	tr.SellQuantity = dec(t, "600000")
	tr.SellPrice = dec(t, "1")
	assert.Equal(t, 3, Risk(tr)) // 1,200,000 combined
}

func TestRiskComplexInstrumentTypes(t *testing.T) {
	t.Parallel()

	for _, typ := range []string{"IR_SWAP", "FX_OPTION", "CREDIT_DERIVATIVE", "swaption"} {
		tr := baseTrade(t)
		tr.Type = typ
		assert.Equal(t, 2, Risk(tr), typ)
	}
}

func TestRiskMissingBenchmark(t *testing.T) {
	t.Parallel()

	tr := baseTrade(t)
	tr.Benchmark = "   "
	assert.Equal(t, 1, Risk(tr))
}

func TestRiskNonPendingStatus(t *testing.T) {
	t.Parallel()

	tr := baseTrade(t)
	tr.Status = "EXECUTED"
	assert.Equal(t, 1, Risk(tr))

	tr.Status = ""
	assert.Equal(t, 0, Risk(tr))
}

func TestRiskCap(t *testing.T) {
	t.Parallel()

	tr := record.TradeRecord{
		Type:         "TOTAL_RETURN_SWAP",
		BuyQuantity:  dec(t, "10000"),
		BuyPrice:     dec(t, "1000"),
		SellQuantity: dec(t, "10000"),
		SellPrice:    dec(t, "1000"),
		Status:       "EXECUTED",
	}
	// 3 + 2 + 1 + 1 = 7, already at the cap.
	assert.Equal(t, MaxRisk, Risk(tr))
}
