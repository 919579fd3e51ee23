package validate

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/refdata/record"
)

// checkTradeConsistency runs the cross-field trade rules: declared side must
// match an actual leg, dates must be ordered, and no single leg may exceed
// the notional ceiling. A non-standard status is reported but never fatal.
func checkTradeConsistency(cfg Config, log *zap.Logger, now time.Time, t *record.TradeRecord) error {
	side := strings.ToUpper(strings.TrimSpace(t.Side))
	switch side {
	case record.SideBuy:
		if !t.HasBuyLeg() {
			return fail(KindConsistency, "side", "Side is BUY but the trade has no buy operation")
		}
	case record.SideSell:
		if !t.HasSellLeg() {
			return fail(KindConsistency, "side", "Side is SELL but the trade has no sell operation")
		}
	}

	if status := strings.ToUpper(strings.TrimSpace(t.Status)); status != "" && !record.StandardStatuses[status] {
		// Extensibility over strictness: unknown statuses pass through.
		log.Warn("non-standard trade status",
			zap.String("status", t.Status),
			zap.String("account", t.Account))
	}

	if t.TradeDate != nil && t.TradeDate.After(now.Add(24*time.Hour)) {
		return fail(KindConsistency, "tradeDate", "Trade date cannot be more than one day in the future")
	}
	if t.CreationDate != nil && t.RevisionDate != nil && t.RevisionDate.Before(*t.CreationDate) {
		return fail(KindConsistency, "revisionDate", "Revision date cannot be before creation date")
	}

	if buy := t.BuyNotional(); buy.GreaterThan(cfg.MaxLegNotional) {
		return fail(KindLimit, "buyQuantity",
			fmt.Sprintf("Buy notional %s exceeds the maximum allowed %s", buy.String(), cfg.MaxLegNotional.String()))
	}
	if sell := t.SellNotional(); sell.GreaterThan(cfg.MaxLegNotional) {
		return fail(KindLimit, "sellQuantity",
			fmt.Sprintf("Sell notional %s exceeds the maximum allowed %s", sell.String(), cfg.MaxLegNotional.String()))
	}
	return nil
}

// checkRatingConsistency classifies each present agency grade and reports
// cross-agency divergence. Divergence is a real-world occurrence, not an
// error: the record is accepted.
func checkRatingConsistency(log *zap.Logger, r *record.RatingRecord) error {
	if r.InvestmentGrade() && r.SpeculativeGrade() {
		log.Warn("rating agencies diverge on grade classification",
			zap.String("moodys", r.MoodysRating),
			zap.String("sandP", r.SandPRating),
			zap.String("fitch", r.FitchRating))
	}
	return nil
}
