package validate

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rustyeddy/refdata/record"
)

// In-memory lookup fakes standing in for the repository.

type fakeRules struct {
	byName map[string]*record.RuleRecord
}

func (f *fakeRules) FindRuleByName(_ context.Context, name string) (*record.RuleRecord, error) {
	return f.byName[name], nil
}

type fakeRatings struct {
	byOrder map[int]*record.RatingRecord
	max     int
}

func (f *fakeRatings) FindRatingByOrderNumber(_ context.Context, n int) (*record.RatingRecord, error) {
	return f.byOrder[n], nil
}

func (f *fakeRatings) MaxOrderNumber(_ context.Context) (int, error) {
	return f.max, nil
}

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newPipeline(t *testing.T) (*Pipeline, *fakeRules, *fakeRatings) {
	t.Helper()

	rules := &fakeRules{byName: map[string]*record.RuleRecord{}}
	ratings := &fakeRatings{byOrder: map[int]*record.RatingRecord{}}
	p := New(DefaultConfig(), zap.NewNop(), rules, ratings)
	p.Now = func() time.Time { return testNow }
	return p, rules, ratings
}

func dec(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return &d
}

func validTrade(t *testing.T) record.TradeRecord {
	t.Helper()
	return record.TradeRecord{
		Account:     "ACC-1",
		Type:        "BOND",
		BuyQuantity: dec(t, "100"),
		BuyPrice:    dec(t, "10.5"),
		Side:        "BUY",
		Status:      "PENDING",
		Benchmark:   "UST10Y",
	}
}

func validRule(t *testing.T) record.RuleRecord {
	t.Helper()
	return record.RuleRecord{
		Name:        "position-limit",
		Description: "position limit breach alert",
	}
}

func longString(n int) string {
	return strings.Repeat("a", n)
}
