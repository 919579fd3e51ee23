package record

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade sides recognized by the consistency rules. Side itself is free text;
// only BUY and SELL carry cross-field constraints.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"
)

// StandardStatuses is the set of trade statuses the admin screens offer.
// A status outside this set is allowed (logged, never rejected).
var StandardStatuses = map[string]bool{
	"PENDING":   true,
	"EXECUTED":  true,
	"CANCELLED": true,
	"FAILED":    true,
	"SETTLED":   true,
}

// TradeRecord is a candidate or stored trade. Optional text fields use ""
// for absent; optional numerics and dates use nil. ID is "" until the store
// assigns one.
type TradeRecord struct {
	ID string

	Account string
	Type    string

	BuyQuantity  *decimal.Decimal
	BuyPrice     *decimal.Decimal
	SellQuantity *decimal.Decimal
	SellPrice    *decimal.Decimal

	TradeDate    *time.Time
	CreationDate *time.Time
	RevisionDate *time.Time

	Side         string
	Status       string
	Trader       string
	Benchmark    string
	Book         string
	Security     string
	CreationName string
	RevisionName string
	DealName     string
	DealType     string
	SourceListID string
}

// HasBuyLeg reports whether both buy quantity and buy price are present.
func (t *TradeRecord) HasBuyLeg() bool {
	return t.BuyQuantity != nil && t.BuyPrice != nil
}

// HasSellLeg reports whether both sell quantity and sell price are present.
func (t *TradeRecord) HasSellLeg() bool {
	return t.SellQuantity != nil && t.SellPrice != nil
}

// BuyNotional returns quantity × price for the buy leg, zero if incomplete.
func (t *TradeRecord) BuyNotional() decimal.Decimal {
	if !t.HasBuyLeg() {
		return decimal.Zero
	}
	return t.BuyQuantity.Mul(*t.BuyPrice)
}

// SellNotional returns quantity × price for the sell leg, zero if incomplete.
func (t *TradeRecord) SellNotional() decimal.Decimal {
	if !t.HasSellLeg() {
		return decimal.Zero
	}
	return t.SellQuantity.Mul(*t.SellPrice)
}

// TotalNotional is the sum of both leg notionals.
func (t *TradeRecord) TotalNotional() decimal.Decimal {
	return t.BuyNotional().Add(t.SellNotional())
}
