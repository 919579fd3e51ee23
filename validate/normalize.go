package validate

import (
	"strings"
	"time"

	"github.com/rustyeddy/refdata/record"
)

// Normalization trims every string field, upper-cases the code-like trade
// fields, and leaves "" for blank optionals. Running it twice is a no-op on
// the string fields; only the revision timestamp moves per save.

func normalizeTrade(t *record.TradeRecord, now time.Time) {
	t.Account = strings.ToUpper(strings.TrimSpace(t.Account))
	t.Type = strings.ToUpper(strings.TrimSpace(t.Type))
	t.Side = strings.ToUpper(strings.TrimSpace(t.Side))
	t.Status = strings.ToUpper(strings.TrimSpace(t.Status))

	t.Trader = strings.TrimSpace(t.Trader)
	t.Benchmark = strings.TrimSpace(t.Benchmark)
	t.Book = strings.TrimSpace(t.Book)
	t.Security = strings.TrimSpace(t.Security)
	t.CreationName = strings.TrimSpace(t.CreationName)
	t.RevisionName = strings.TrimSpace(t.RevisionName)
	t.DealName = strings.TrimSpace(t.DealName)
	t.DealType = strings.TrimSpace(t.DealType)
	t.SourceListID = strings.TrimSpace(t.SourceListID)

	if t.ID == "" {
		stamp := now
		t.CreationDate = &stamp
	}
	stamp := now
	t.RevisionDate = &stamp
}

func normalizeRule(r *record.RuleRecord) {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.JSON = strings.TrimSpace(r.JSON)
	r.Template = strings.TrimSpace(r.Template)
	r.SQLStr = strings.TrimSpace(r.SQLStr)
	r.SQLPart = strings.TrimSpace(r.SQLPart)
}

func normalizeRating(r *record.RatingRecord) {
	r.MoodysRating = strings.TrimSpace(r.MoodysRating)
	r.SandPRating = strings.TrimSpace(r.SandPRating)
	r.FitchRating = strings.TrimSpace(r.FitchRating)
}
