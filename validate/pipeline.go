// Package validate is the business validation and normalization engine that
// runs inside every reference-data save. It takes a candidate record plus a
// repository lookup capability and returns either a normalized record ready
// for persistence or a typed *Error. The engine fails fast, holds no mutable
// state, and performs exactly one repository read (the uniqueness check).
package validate

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/refdata/record"
)

// Pipeline orchestrates validation, normalization and uniqueness per record
// kind. Construct once and share; safe for concurrent use.
type Pipeline struct {
	cfg     Config
	log     *zap.Logger
	rules   RuleLookup
	ratings RatingLookup

	// Now is the clock used for timestamps; tests override it.
	Now func() time.Time
}

// New builds a pipeline around the given thresholds and repository lookups.
// A nil logger falls back to zap.NewNop.
func New(cfg Config, log *zap.Logger, rules RuleLookup, ratings RatingLookup) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		cfg:     cfg,
		log:     log,
		rules:   rules,
		ratings: ratings,
		Now:     time.Now,
	}
}

// PrepareTrade validates and normalizes a candidate trade. existingID is the
// identity of the record being updated, "" on create.
func (p *Pipeline) PrepareTrade(ctx context.Context, existingID string, t record.TradeRecord) (record.TradeRecord, error) {
	t.ID = existingID
	if err := validateTradeFields(&t); err != nil {
		return record.TradeRecord{}, err
	}
	if err := checkTradeConsistency(p.cfg, p.log, p.Now(), &t); err != nil {
		return record.TradeRecord{}, err
	}
	normalizeTrade(&t, p.Now())
	return t, nil
}

// PrepareRule validates, normalizes and uniqueness-checks a candidate rule.
func (p *Pipeline) PrepareRule(ctx context.Context, existingID string, r record.RuleRecord) (record.RuleRecord, error) {
	r.ID = existingID
	if err := validateRuleFields(&r); err != nil {
		return record.RuleRecord{}, err
	}
	if err := validateRuleContent(&r); err != nil {
		return record.RuleRecord{}, err
	}
	normalizeRule(&r)
	if err := checkRuleNameUnique(ctx, p.rules, r.Name, existingID); err != nil {
		return record.RuleRecord{}, err
	}
	return r, nil
}

// PrepareRating validates and normalizes a candidate rating, auto-assigning
// the next free order number when none is supplied.
func (p *Pipeline) PrepareRating(ctx context.Context, existingID string, r record.RatingRecord) (record.RatingRecord, error) {
	r.ID = existingID
	if err := validateRatingFields(&r); err != nil {
		return record.RatingRecord{}, err
	}
	if err := checkRatingConsistency(p.log, &r); err != nil {
		return record.RatingRecord{}, err
	}
	normalizeRating(&r)

	if r.OrderNumber == 0 {
		max, err := p.ratings.MaxOrderNumber(ctx)
		if err != nil {
			return record.RatingRecord{}, err
		}
		r.OrderNumber = max + 1
		return r, nil
	}
	if err := checkOrderNumberUnique(ctx, p.ratings, r.OrderNumber, existingID); err != nil {
		return record.RatingRecord{}, err
	}
	return r, nil
}

// ValidTrade is the non-throwing probe used by pre-submission checks. It
// runs the pure validation steps only; no repository read, no mutation.
func (p *Pipeline) ValidTrade(t record.TradeRecord) bool {
	if err := validateTradeFields(&t); err != nil {
		return false
	}
	return checkTradeConsistency(p.cfg, zap.NewNop(), p.Now(), &t) == nil
}

// ValidRule probes a rule without touching the repository.
func (p *Pipeline) ValidRule(r record.RuleRecord) bool {
	if err := validateRuleFields(&r); err != nil {
		return false
	}
	return validateRuleContent(&r) == nil
}

// ValidRating probes a rating without touching the repository.
func (p *Pipeline) ValidRating(r record.RatingRecord) bool {
	return validateRatingFields(&r) == nil
}
