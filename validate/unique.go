package validate

import (
	"context"
	"fmt"

	"github.com/rustyeddy/refdata/record"
)

// RuleLookup is the slice of the repository the engine needs for rules.
// FindRuleByName returns nil when no rule carries the name.
type RuleLookup interface {
	FindRuleByName(ctx context.Context, name string) (*record.RuleRecord, error)
}

// RatingLookup is the slice of the repository the engine needs for ratings.
// FindRatingByOrderNumber returns nil when the ordinal is unused;
// MaxOrderNumber returns 0 when no ratings exist.
type RatingLookup interface {
	FindRatingByOrderNumber(ctx context.Context, n int) (*record.RatingRecord, error)
	MaxOrderNumber(ctx context.Context) (int, error)
}

// The uniqueness check is a plain read; the caller writes afterwards. Two
// concurrent saves of the same natural key can both pass here, so the store
// schema carries UNIQUE constraints as the backstop.

func checkRuleNameUnique(ctx context.Context, lookup RuleLookup, name, excludeID string) error {
	existing, err := lookup.FindRuleByName(ctx, name)
	if err != nil {
		return fmt.Errorf("lookup rule by name: %w", err)
	}
	if existing != nil && existing.ID != excludeID {
		return fail(KindDuplicate, "name",
			fmt.Sprintf("%s already exists. Each rule must have a unique name.", name))
	}
	return nil
}

func checkOrderNumberUnique(ctx context.Context, lookup RatingLookup, n int, excludeID string) error {
	existing, err := lookup.FindRatingByOrderNumber(ctx, n)
	if err != nil {
		return fmt.Errorf("lookup rating by order number: %w", err)
	}
	if existing != nil && existing.ID != excludeID {
		return fail(KindDuplicate, "orderNumber",
			fmt.Sprintf("%d already exists. Each rating must have a unique order number.", n))
	}
	return nil
}
